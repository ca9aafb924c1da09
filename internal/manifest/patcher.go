package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileName is the manifest file at the root of a provisioned project.
const FileName = "package.json"

// ParseError reports manifest content that is not a JSON object.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing manifest: %v", e.Err)
	}
	return fmt.Sprintf("parsing manifest %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Document is a top-level JSON object whose keys keep their source order.
// Values are kept as raw JSON and are never re-encoded.
type Document struct {
	keys   []string
	values map[string]json.RawMessage
}

// Path returns the manifest path inside a project directory.
func Path(projectDir string) string {
	return filepath.Join(projectDir, FileName)
}

// Decode parses data as a JSON object. Duplicate keys keep their first
// position and their last value, matching JSON.parse.
func Decode(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, &ParseError{Err: errors.New("top-level value is not an object")}
	}

	doc := &Document{values: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		key, ok := tok.(string)
		if !ok {
			return nil, &ParseError{Err: fmt.Errorf("unexpected token %v", tok)}
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, &ParseError{Err: fmt.Errorf("value of %q: %w", key, err)}
		}
		if _, seen := doc.values[key]; !seen {
			doc.keys = append(doc.keys, key)
		}
		doc.values[key] = raw
	}

	if _, err := dec.Token(); err != nil {
		return nil, &ParseError{Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Err: errors.New("unexpected data after top-level object")}
	}
	return doc, nil
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Get returns the raw JSON value of key.
func (d *Document) Get(key string) (json.RawMessage, bool) {
	v, ok := d.values[key]
	return v, ok
}

// String returns the value of key when it is a JSON string.
func (d *Document) String(key string) (string, bool) {
	raw, ok := d.values[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// SetString sets key to the string value s, appending key when absent.
func (d *Document) SetString(key, s string) error {
	raw, err := marshalString(s)
	if err != nil {
		return err
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = raw
	return nil
}

// MarshalIndent renders the document with 2-space indentation and a trailing
// newline.
func (d *Document) MarshalIndent() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			compact.WriteByte(',')
		}
		kb, err := marshalString(k)
		if err != nil {
			return nil, err
		}
		compact.Write(kb)
		compact.WriteByte(':')
		compact.Write(d.values[k])
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("formatting manifest: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// marshalString encodes s as a JSON string without HTML escaping.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encoding %q: %w", s, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// PatchName sets the name field of the manifest at path to name, verbatim,
// and rewrites the whole file.
func PatchName(path, name string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest %s: %w", path, err)
	}

	doc, err := Decode(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return err
	}

	if err := doc.SetString("name", name); err != nil {
		return err
	}

	out, err := doc.MarshalIndent()
	if err != nil {
		return err
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, out, mode); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
