package cli

import (
	"fmt"
	"strings"

	"github.com/fiasuz/create-fias/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.create-fias/config.yaml.

Known keys: ` + strings.Join(config.Keys, ", ") + `.
Each key can also be set through the environment, e.g. CREATE_FIAS_PACKAGE_MANAGER.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if key == config.KeyPackageManager {
			if err := validatePackageManager(value); err != nil {
				return err
			}
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		var value string
		switch args[0] {
		case config.KeyTemplateRepo:
			value = config.TemplateRepo()
		case config.KeyPackageManager:
			value = config.PackageManager()
		case config.KeyCommitMessage:
			value = config.CommitMessage()
		default:
			value = config.Get(args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}
