package cmd

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "bt",
		Short:         "Baccarat tracker (bt): record Player/Banker/Tie results and estimate the next one",
		Long:          "bt keeps a rolling history of Player/Banker/Tie results per session, reports counts, percentages and streaks, and gives a smoothed estimate of the next outcome. Use it interactively (chat), over HTTP (serve), or on a recorded sequence (replay).",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return app.wire(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagLogLevel, "warn", "Log level (debug|info|warn|error); env BT_LOG_LEVEL")
	flags.Int(flagWindow, 0, "Override the prediction window size for this run")
	flags.Int(flagMin, 0, "Override the minimum results required for a prediction for this run")

	rootCmd.AddCommand(
		newVersionCmd(),
		newChatCmd(app),
		newReplayCmd(app),
		newServeCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
