package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"odgrip/internal/domain"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories a web search can be narrowed to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		defer a.Close()

		cat, err := a.cfg.Catalogue()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, c := range cat.List() {
			pattern := c.Pattern
			if c.IsAny() {
				pattern = "(no restriction)"
			}
			fmt.Fprintf(out, "%-24s %s\n", c.Label, pattern)
		}
		return nil
	},
}

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List search backends and FilePursuit types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, b := range domain.Backends() {
			note := "narrowed by category"
			if b == domain.BackendFilePursuit {
				types := make([]string, 0, len(domain.SubTypes()))
				for _, t := range domain.SubTypes() {
					types = append(types, string(t))
				}
				note = "narrowed by type: " + strings.Join(types, ", ")
			}
			fmt.Fprintf(out, "%-12s %s\n", b.String(), note)
		}
		return nil
	},
}
