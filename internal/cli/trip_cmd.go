package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rihla/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTripCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "trip BOOKING_ID",
		Short: "Show a trip and manage its checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snap, err := app.Checklist.Load(ctx, args[0])
			if err != nil {
				return fmt.Errorf("load trip: %w", err)
			}

			if plain || !app.Interactive {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTrip(snap))
				return nil
			}

			model := newChecklistModel(app, args[0])
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print the trip without the interactive checklist")

	return cmd
}
