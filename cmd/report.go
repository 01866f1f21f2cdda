package cmd

import (
	"fmt"
	"sort"

	"github.com/jsphweid/harmonywheel/file"
	"github.com/jsphweid/harmonywheel/midi"
	"github.com/jsphweid/harmonywheel/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reportMax  int
	reportTop  int
	reportKey  string
	reportMode string
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().IntVar(&reportMax, "max", 0, "stop after this many files, 0 for all")
	reportCmd.Flags().IntVar(&reportTop, "top", 20, "how many chords to list")
	reportCmd.Flags().StringVar(&reportKey, "key", "", "key root used for spelling and numerals")
	reportCmd.Flags().StringVar(&reportMode, "mode", "major", "major or minor")
}

var reportCmd = &cobra.Command{
	Use:   "report <dir>",
	Short: "Counts chords across a directory of midi files",
	Long:  `Builds the chord timeline of every .mid file under a directory and reports how often each chord occurs.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return report(args[0])
	},
}

type chordCount struct {
	label string
	count int
}

type chordReport struct {
	numFiles   int
	numSkipped int
	numChords  int
	symbols    map[string]int
	numerals   map[string]int
}

func newChordReport() *chordReport {
	return &chordReport{
		symbols:  make(map[string]int),
		numerals: make(map[string]int),
	}
}

func (r *chordReport) add(events []model.ChordEvent, key *model.Key) {
	r.numFiles++
	for i := range events {
		r.numChords++
		r.symbols[events[i].Symbol]++
		if n := numeral(key, &events[i].Chord); n != "" {
			r.numerals[n]++
		}
	}
}

// ranked orders by count, ties alphabetically, and keeps at most top.
func ranked(counts map[string]int, top int) []chordCount {
	res := make([]chordCount, 0, len(counts))
	for label, count := range counts {
		res = append(res, chordCount{label, count})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].count != res[j].count {
			return res[i].count > res[j].count
		}
		return res[i].label < res[j].label
	})
	if top > 0 && len(res) > top {
		res = res[:top]
	}
	return res
}

func analyzeFiles(paths []string, key *model.Key) *chordReport {
	r := newChordReport()
	for _, path := range paths {
		s, err := midi.ReadFile(path)
		if err == nil {
			var events []model.ChordEvent
			if events, err = midi.Timeline(s, key); err == nil {
				r.add(events, key)
				continue
			}
		}
		logger.Warn("skipping midi file", zap.String("path", path), zap.Error(err))
		r.numSkipped++
	}
	return r
}

func report(dir string) error {
	key, err := parseKey(reportKey, reportMode)
	if err != nil {
		return err
	}
	paths, err := file.GatherMidiPaths(dir, reportMax)
	if err != nil {
		return err
	}
	logger.Info("analyzing midi files", zap.Int("files", len(paths)))

	r := analyzeFiles(paths, key)
	fmt.Printf("files: %d (skipped %d)\n", r.numFiles, r.numSkipped)
	fmt.Printf("chord changes: %d\n", r.numChords)
	for _, c := range ranked(r.symbols, reportTop) {
		fmt.Printf("%8d\t%s\n", c.count, c.label)
	}
	if key != nil {
		fmt.Println("numerals:")
		for _, c := range ranked(r.numerals, reportTop) {
			fmt.Printf("%8d\t%s\n", c.count, c.label)
		}
	}
	return nil
}
