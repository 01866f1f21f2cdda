package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/harmonywheel/constants"
	"github.com/jsphweid/harmonywheel/midi"
	"github.com/jsphweid/harmonywheel/modifier"
	"github.com/jsphweid/harmonywheel/session"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
	"go.uber.org/zap"
)

var (
	listenIn   int
	listenOut  int
	listenKey  string
	listenMode string
	listenWait time.Duration
)

func init() {
	rootCmd.AddCommand(listenCmd)
	listenCmd.Flags().IntVar(&listenIn, "in", constants.GetMidiIn(), "midi in port number")
	listenCmd.Flags().IntVar(&listenOut, "out", constants.GetMidiOut(), "midi out port to echo to, -1 for none")
	listenCmd.Flags().StringVar(&listenKey, "key", "", "key root used for spelling and numerals")
	listenCmd.Flags().StringVar(&listenMode, "mode", "major", "major or minor")
	listenCmd.Flags().DurationVar(&listenWait, "wait", 40*time.Millisecond, "settle time before printing a chord")
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a midi device",
	Long:  `Listens to a midi in port and prints the chord whenever the held notes change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen(cmd.Context())
	},
}

func listen(ctx context.Context) error {
	defer gomidi.CloseDriver()

	key, err := parseKey(listenKey, listenMode)
	if err != nil {
		return err
	}

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithModeListener(func(c modifier.Change) {
			logger.Info("mode changed", zap.Stringer("mode", c.Mode), zap.Bool("on", c.On))
		}),
	}
	if listenOut >= 0 {
		out, err := midi.OpenOutput(listenOut, 0)
		if err != nil {
			return err
		}
		opts = append(opts, session.WithOutput(out))
	}
	sess := session.New(opts...)

	// chords land one key at a time; print once they settle
	debounced := debounce.New(listenWait)
	printChord := func() {
		st := sess.Snapshot(key)
		if st.Chord == nil {
			fmt.Println("-")
			return
		}
		fmt.Printf("%s\t%s\n", st.Symbol, numeral(key, st.Chord))
	}

	stop, err := midi.Listen(listenIn, sess, logger, func() {
		debounced(printChord)
	})
	if err != nil {
		return err
	}
	defer stop()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()
	<-ctx.Done()

	sess.Blur()
	logger.Info("stopped listening")
	return nil
}
