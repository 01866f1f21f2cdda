package cmd

import (
	"github.com/jsphweid/harmonywheel/constants"
	"github.com/jsphweid/harmonywheel/logging"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "harmonywheel",
	Short: "Chord detection, scale degrees and voicings",
	Long: `harmonywheel analyses the notes held on a keyboard: it names the chord,
labels it with a roman numeral in the selected key and voices chords for playback.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(logLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
