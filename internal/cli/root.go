package cli

import (
	"github.com/alexanderramin/rihla/internal/app"
	"github.com/alexanderramin/rihla/internal/audio"
	"github.com/spf13/cobra"
)

// App holds the use cases and devices the CLI commands run against.
type App struct {
	Checklist app.ChecklistSyncUseCase
	Capture   app.CaptureUseCase
	Prefs     app.PrefsUseCase
	Player    audio.Player

	// Gallery stages image paths for the capture source between the
	// presentation layer and the pipeline.
	Gallery *PathHolder

	// Interactive enables the TUI surfaces. Set from isatty at startup.
	Interactive bool
}

// NewRootCmd creates the top-level "rihla" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "rihla",
		Short: "Pilgrimage trip companion",
	}

	root.AddCommand(
		newTripCmd(app),
		newAnalyzeCmd(app),
		newPrefsCmd(app),
	)

	return root
}
