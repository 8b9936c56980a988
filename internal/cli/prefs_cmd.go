package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/alexanderramin/rihla/internal/cli/formatter"
	"github.com/alexanderramin/rihla/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show and change stored preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrefsShow(cmd, app)
		},
	}

	cmd.AddCommand(newPrefsSetCmd(app))

	return cmd
}

func runPrefsShow(cmd *cobra.Command, app *App) error {
	ctx := context.Background()

	profile, err := app.Prefs.Profile(ctx)
	if err != nil {
		return err
	}
	all, err := app.Prefs.All(ctx)
	if err != nil {
		return err
	}

	b := fmt.Sprintf("%s %s\n%s %s\n",
		formatter.Dim("User:  "), formatter.Bold(profile.UserID),
		formatter.Dim("Locale:"), formatter.Bold(profile.Locale))

	extras := make([][]string, 0, len(all))
	keys := make([]string, 0, len(all))
	for k := range all {
		if k == domain.PrefUserID || k == domain.PrefLocale {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		extras = append(extras, []string{formatter.Dim(k), all[k]})
	}
	if len(extras) > 0 {
		b += "\n" + formatter.RenderTable([]string{"KEY", "VALUE"}, extras)
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Preferences", b))
	return nil
}

// localeValue is a pflag.Value that only accepts supported narration
// languages.
type localeValue string

var _ pflag.Value = (*localeValue)(nil)

func (l *localeValue) String() string { return string(*l) }

func (l *localeValue) Set(v string) error {
	switch v {
	case "en", "ar", "ur", "fr":
		*l = localeValue(v)
		return nil
	}
	return fmt.Errorf("unsupported locale %q (use en, ar, ur or fr)", v)
}

func (l *localeValue) Type() string { return "locale" }

func newPrefsSetCmd(app *App) *cobra.Command {
	var userID string
	var locale localeValue

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the user ID and locale",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			user, lang := userID, string(locale)
			if user == "" && lang == "" {
				if !app.Interactive {
					return fmt.Errorf("either --user or --locale is required")
				}
				if err := promptProfile(ctx, app, &user, &lang); err != nil {
					return err
				}
			}

			prefs := domain.Preferences{UserID: user, Locale: lang}
			if err := app.Prefs.SetProfile(ctx, prefs); err != nil {
				return fmt.Errorf("save preferences: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Preferences saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User identifier sent with uploads")
	cmd.Flags().Var(&locale, "locale", "Narration language (en, ar, ur, fr)")

	return cmd
}

// promptProfile collects the profile interactively, pre-filled with the
// stored values.
func promptProfile(ctx context.Context, app *App, userID, locale *string) error {
	current, err := app.Prefs.Profile(ctx)
	if err != nil {
		return err
	}
	*userID = current.UserID
	*locale = current.Locale

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("User ID").
				Description("Sent with photo uploads").
				Value(userID),
			huh.NewSelect[string]().
				Title("Narration language").
				Options(
					huh.NewOption("English", "en"),
					huh.NewOption("العربية", "ar"),
					huh.NewOption("اردو", "ur"),
					huh.NewOption("Français", "fr"),
				).
				Value(locale),
		),
	).WithTheme(rihlaHuhTheme()).WithShowHelp(false)

	return form.Run()
}
