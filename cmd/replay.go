package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/baccarat-tracker/internal/adapters/notify/writer"
	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/spf13/cobra"
)

func newReplayCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [outcomes...]",
		Short: "Feed a recorded sequence and print stats and the next estimate",
		Long:  "replay accepts results as arguments (\"P B B T\", \"PBBT\" or \"player,banker\") or, without arguments, from stdin. It prints the statistics and the estimate for the next result.",
		Example: "  bt replay PPPPPPPBBBBBTTT\n" +
			"  echo 'P B B T' | bt replay --json",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read outcomes: %w", err)
				}
				args = []string{string(data)}
			}

			outcomes, err := domain.ParseSequence(args...)
			if err != nil {
				return err
			}

			format, err := outputFormat(cmd, isTerminal(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			session, err := cmd.Flags().GetString(flagSession)
			if err != nil {
				return err
			}

			return runReplay(cmd.Context(), app, cmd.OutOrStdout(), format, domain.SessionKey(session), outcomes)
		},
	}

	addOutputFlags(cmd)
	return cmd
}

func runReplay(ctx context.Context, app *app, out io.Writer, format writer.Format, key domain.SessionKey, outcomes []domain.Symbol) error {
	tracker := app.newTracker()
	for _, outcome := range outcomes {
		if _, err := tracker.Add(ctx, key, outcome); err != nil {
			return err
		}
	}

	dispatcher := app.newDispatcher(tracker, out, writer.Options{Format: format})
	for _, command := range []string{"/stats", "/next"} {
		if err := dispatcher.Handle(ctx, key, command); err != nil {
			return err
		}
		if format != writer.FormatJSON && command == "/stats" {
			if _, err := fmt.Fprintln(out, strings.Repeat("─", 32)); err != nil {
				return err
			}
		}
	}
	return nil
}
