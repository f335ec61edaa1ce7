package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"odgrip/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Write a config file with the default settings to --config, or to the
default location. An existing file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		defer a.Close()

		svc := config.NewConfigServiceAt(configPath, a.bus)
		if _, err := os.Stat(svc.Path()); err == nil && !configForce {
			return fmt.Errorf("%s already exists, use --force to overwrite", svc.Path())
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}

		if err := svc.Save(config.DefaultConfig()); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), svc.Path())
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), config.NewConfigServiceAt(configPath, nil).Path())
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
