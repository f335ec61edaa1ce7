// Package cli wires the command line: the interactive form and the
// non-interactive subcommands that share its composition rules.
package cli

import (
	"github.com/spf13/cobra"

	"odgrip/internal/config"
)

var (
	configPath   string
	backendFlag  string
	categoryFlag string
	typeFlag     string
)

var rootCmd = &cobra.Command{
	Use:   "odgrip [query...]",
	Short: "Search open directory listings",
	Long: `odgrip - search open directory listings

Composes web searches that find "Index of" pages for a file query and
opens them in the browser. Without a subcommand it starts the interactive
form, prefilled with any query and flags given.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVarP(&backendFlag, "backend", "b", "", "search backend: google, startpage or filepursuit")
	flags.StringVarP(&categoryFlag, "category", "c", "", "category label, e.g. Books (google and startpage)")
	flags.StringVarP(&typeFlag, "type", "t", "", "file type: all, ebook, video, audio, mobile, archive (filepursuit)")

	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}
