package console

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// clearLine moves the cursor to column 0 and erases the line.
const clearLine = "\r\033[K"

// Spinner redraws "<frame> message" on a single line until stopped.
type Spinner struct {
	w       io.Writer
	message string
	frames  []string
	fps     time.Duration

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// StartSpinner begins animating message on w. Callers must call Stop before
// writing anything else to w.
func StartSpinner(w io.Writer, message string) *Spinner {
	s := &Spinner{
		w:       w,
		message: message,
		frames:  spinner.MiniDot.Frames,
		fps:     spinner.MiniDot.FPS,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go s.loop()
	return s
}

// Spinner starts a spinner on the reporter's output.
func (r *Reporter) Spinner(message string) *Spinner {
	return StartSpinner(r.Out, message)
}

func (s *Spinner) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.fps)
	defer ticker.Stop()

	i := 0
	s.draw(i)
	for {
		select {
		case <-s.stop:
			fmt.Fprint(s.w, clearLine)
			return
		case <-ticker.C:
			i = (i + 1) % len(s.frames)
			s.draw(i)
		}
	}
}

func (s *Spinner) draw(i int) {
	fmt.Fprintf(s.w, "\r%s %s", accentStyle.Render(s.frames[i]), s.message)
}

// Stop halts the animation, clears the line, and returns once the drawing
// goroutine has exited. Calling Stop more than once is safe.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}
