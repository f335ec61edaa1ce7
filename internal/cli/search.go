package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"odgrip/internal/compose"
	"odgrip/internal/dispatch"
	"odgrip/internal/domain"
	"odgrip/internal/eventbus"
)

var urlCmd = &cobra.Command{
	Use:   "url <query...>",
	Short: "Print the search URL for a query",
	Example: `  odgrip url -c books 1984
  odgrip url -b filepursuit -t archive GTA V`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		defer a.Close()

		req, err := a.compose(args)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), req.URL)
		return err
	},
}

var openCmd = &cobra.Command{
	Use:   "open <query...>",
	Short: "Compose a search and send it to the configured dispatcher",
	Long: `Compose a search and send it to the configured dispatcher.

The dispatcher is chosen by the "dispatch" setting: browser opens the URL,
clipboard copies it and print writes it to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		defer a.Close()

		req, err := a.compose(args)
		if err != nil {
			return err
		}

		d, err := dispatch.New(a.cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		a.bus.Publish(eventbus.QueryComposedEvent{Request: req})
		if err := dispatch.NewService(d, a.bus).Send(cmd.Context(), req); err != nil {
			return fmt.Errorf("could not send via %s: %w", d.Name(), err)
		}
		return nil
	},
}

// compose builds the request for the command line selection
func (a *app) compose(args []string) (domain.Request, error) {
	state, err := a.buildState(args)
	if err != nil {
		return domain.Request{}, err
	}

	req, err := compose.Compose(state)
	if errors.Is(err, compose.ErrEmptyQuery) {
		a.bus.Publish(eventbus.EmptyQueryRejectedEvent{Backend: state.Backend})
		return domain.Request{}, fmt.Errorf("nothing to search for: %w", err)
	}
	return req, err
}
