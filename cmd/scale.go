package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonywheel/spelling"
	"github.com/spf13/cobra"
)

var scaleMode string

func init() {
	rootCmd.AddCommand(scaleCmd)
	scaleCmd.Flags().StringVar(&scaleMode, "mode", "major", "major, or minor for the relative minor")
}

var scaleCmd = &cobra.Command{
	Use:   "scale <key>",
	Short: "Prints the diatonic chords of a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := spelling.ParseKey(args[0], scaleMode)
		if err != nil {
			return err
		}
		res := describeScale(k)
		fmt.Printf("%s %s (tonic %s)\n", res.Key, res.Mode, res.Tonic)
		for _, d := range res.Degrees {
			fmt.Printf("%d\t%-5s\t%-6s\t%-7s\t%s\n", d.Degree, d.Numeral, d.Triad, d.Seventh, d.Ninth)
		}
		return nil
	},
}
