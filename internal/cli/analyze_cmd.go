package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rihla/internal/cli/formatter"
	"github.com/alexanderramin/rihla/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var file string
	var camera, play, plain bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a landmark photo and hear its story",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" || camera || plain || !app.Interactive {
				return runAnalyzeOnce(cmd, app, file, camera, play)
			}

			model := newCaptureModel(app)
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Image file to analyze")
	cmd.Flags().BoolVar(&camera, "camera", false, "Capture a frame with the configured camera command")
	cmd.Flags().BoolVar(&play, "play", false, "Play the audio narration when available")
	cmd.Flags().BoolVar(&plain, "plain", false, "Run without the interactive screen")

	return cmd
}

// runAnalyzeOnce drives the full pipeline in one pass for scripted use.
func runAnalyzeOnce(cmd *cobra.Command, app *App, file string, camera, play bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	kind := domain.SourceGallery
	if camera {
		kind = domain.SourceCamera
	} else {
		if file == "" {
			return fmt.Errorf("either --file or --camera is required")
		}
		app.Gallery.Set(file)
	}

	if err := app.Capture.Select(ctx, kind); err != nil {
		return fmt.Errorf("select image: %w", err)
	}

	spin := formatter.NewSpinner("Analyzing image…")
	spin.Start()
	result, err := app.Capture.Submit(ctx)
	spin.Stop()
	if err != nil {
		app.Capture.Cancel()
		return fmt.Errorf("analyze: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAnalysis(result))

	if play && result.AudioAvailable {
		if err := app.Player.Play(ctx, result.Analysis.AudioURL); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render("Narration playback failed."))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Playing narration…"))
		}
	}

	app.Capture.Dismiss()
	return nil
}
