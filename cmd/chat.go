package cmd

import (
	"os"

	"github.com/bnema/baccarat-tracker/internal/adapters/chat"
	"github.com/bnema/baccarat-tracker/internal/adapters/notify/writer"
	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newChatCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Record results interactively (P, B, T, /stats, /next, /undo, /reset)",
		Long:  "chat reads one message per line, like the buttons and commands of a chat bot: P/B/T (or Player/Banker/Tie) add a result, /stats shows statistics, /next estimates the next result, /undo removes the last result, /reset clears the session and /quit leaves.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			interactive := isTerminal(in)

			format, err := outputFormat(cmd, interactive)
			if err != nil {
				return err
			}
			session, err := cmd.Flags().GetString(flagSession)
			if err != nil {
				return err
			}

			dispatcher := app.newDispatcher(app.newTracker(), cmd.OutOrStdout(), writer.Options{
				Format:       format,
				ShowKeyboard: interactive,
			})

			opts := chat.LoopOptions{Greet: interactive}
			if interactive {
				opts.PromptOut = cmd.OutOrStdout()
			}
			return chat.NewLoop(dispatcher, domain.SessionKey(session), opts).Run(cmd.Context(), in)
		},
	}

	addOutputFlags(cmd)
	return cmd
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
