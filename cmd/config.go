package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/spf13/cobra"
)

var settingKeys = []string{"max_history", "window_size", "min_required", "prior.player", "prior.banker", "prior.tie"}

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the estimator settings",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetCmd(app),
	)

	return cmd
}

type settingsView struct {
	Path        string             `json:"path"`
	MaxHistory  int                `json:"max_history"`
	WindowSize  int                `json:"window_size"`
	MinRequired int                `json:"min_required"`
	Prior       map[string]float64 `json:"prior"`
}

func newConfigShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := app.settings
			if asJSON {
				view := settingsView{
					Path:        app.repo.Path(),
					MaxHistory:  s.MaxHistory,
					WindowSize:  s.WindowSize,
					MinRequired: s.MinRequired,
					Prior:       make(map[string]float64, 3),
				}
				for _, symbol := range domain.Symbols() {
					view.Prior[strings.ToLower(symbol.Name())] = s.Prior[symbol]
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "path\t%s\n", app.repo.Path())
			_, _ = fmt.Fprintf(out, "max_history\t%d\n", s.MaxHistory)
			_, _ = fmt.Fprintf(out, "window_size\t%d\n", s.WindowSize)
			_, _ = fmt.Fprintf(out, "min_required\t%d\n", s.MinRequired)
			for _, symbol := range domain.Symbols() {
				_, _ = fmt.Fprintf(out, "prior.%s\t%g\n", strings.ToLower(symbol.Name()), s.Prior[symbol])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newConfigSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Change one setting and save it",
		Long:      "Keys: " + strings.Join(settingKeys, ", "),
		Args:      cobra.ExactArgs(2),
		ValidArgs: settingKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.repo.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}

			settings, err = setSetting(settings, args[0], args[1])
			if err != nil {
				return err
			}

			if err := app.repo.Save(cmd.Context(), settings); err != nil {
				return fmt.Errorf("save settings: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
			return err
		},
	}
}

func setSetting(settings domain.Settings, key, raw string) (domain.Settings, error) {
	prior := make(domain.Prior, 3)
	for symbol, v := range settings.Prior {
		prior[symbol] = v
	}
	settings.Prior = prior

	if name, ok := strings.CutPrefix(key, "prior."); ok {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return settings, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidSettings, key)
		}
		symbol, err := domain.ParseSymbol(name)
		if err != nil {
			return settings, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidSettings, key)
		}
		settings.Prior[symbol] = value
		return settings, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return settings, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidSettings, key)
	}

	switch key {
	case "max_history":
		settings.MaxHistory = value
	case "window_size":
		settings.WindowSize = value
	case "min_required":
		settings.MinRequired = value
	default:
		return settings, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidSettings, key)
	}
	return settings, nil
}
