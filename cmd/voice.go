package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jsphweid/harmonywheel/chord"
	"github.com/jsphweid/harmonywheel/constants"
	"github.com/jsphweid/harmonywheel/sample"
	"github.com/jsphweid/harmonywheel/voicing"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	voiceInversion int
	voiceOctave    int
	voiceStyle     string
	voiceKey       string
	voiceOut       string
)

func init() {
	rootCmd.AddCommand(voiceCmd)
	voiceCmd.Flags().IntVar(&voiceInversion, "inversion", 0, "0 for root position, 1..3 for inversions")
	voiceCmd.Flags().IntVar(&voiceOctave, "octave", constants.GetBaseOctave(), "base octave")
	voiceCmd.Flags().StringVar(&voiceStyle, "style", "open", "open or closed")
	voiceCmd.Flags().StringVar(&voiceKey, "key", "", "key root used for spelling")
	voiceCmd.Flags().StringVar(&voiceOut, "out", "", "write the voicing to this .mid file")
}

var voiceCmd = &cobra.Command{
	Use:   "voice <tone>...",
	Short: "Voices a chord",
	Long:  `Assigns octaves to chord tones given in root-position order, e.g. "voice C E G --inversion 1".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return voice(args)
	},
}

func voice(args []string) error {
	key, err := parseKey(voiceKey, "")
	if err != nil {
		return err
	}
	tones, err := parseTones(args)
	if err != nil {
		return err
	}

	notes := voicing.Voice(tones, voiceInversion, voiceOctave, voicing.ParseStyle(voiceStyle))
	var names []string
	for _, n := range noteNames(notes, key) {
		names = append(names, n.Name)
	}
	fmt.Println(strings.Join(names, " "))
	if sym := chord.Symbol(notes, key); sym != "" {
		fmt.Println(sym)
	}

	if voiceOut == "" {
		return nil
	}
	dat, err := sample.Bytes(sample.Chord(notes, constants.DefaultVelocity, 4))
	if err != nil {
		return err
	}
	if err := os.WriteFile(voiceOut, dat, 0644); err != nil {
		return errors.Wrap(err, "writing midi file")
	}
	logger.Info("wrote voicing", zap.String("path", voiceOut))
	return nil
}
