package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsphweid/harmonywheel/midi"
	"github.com/spf13/cobra"
)

var (
	inspectKey  string
	inspectMode string
	inspectJSON bool
)

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectKey, "key", "", "key root used for spelling and numerals")
	inspectCmd.Flags().StringVar(&inspectMode, "mode", "major", "major or minor")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "print the timeline as json")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Lists the chords in a midi file",
	Long:  `Replays a Standard MIDI File and prints every chord change with its offset.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	key, err := parseKey(inspectKey, inspectMode)
	if err != nil {
		return err
	}
	s, err := midi.ReadFile(path)
	if err != nil {
		return err
	}
	events, err := midi.Timeline(s, key)
	if err != nil {
		return err
	}

	if inspectJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	}
	for _, evt := range events {
		fmt.Printf("%8dms\t%s\t%s\n", evt.OffsetMillis, evt.Symbol, numeral(key, &evt.Chord))
	}
	return nil
}
