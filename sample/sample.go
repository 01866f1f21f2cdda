package sample

import (
	"bytes"

	"github.com/jsphweid/harmonywheel/constants"
	"github.com/jsphweid/harmonywheel/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Chord builds a single-track file that strikes every note together and
// holds them for beats quarter notes.
func Chord(notes []model.Note, velocity uint8, beats uint32) *smf.SMF {
	if beats == 0 {
		beats = 4
	}
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(constants.SampleTicksPerQuarter)

	var track smf.Track
	for _, n := range notes {
		track.Add(0, midi.NoteOn(0, n.MIDI(), velocity))
	}
	length := beats * constants.SampleTicksPerQuarter
	for i, n := range notes {
		var delta uint32
		if i == 0 {
			delta = length
		}
		track.Add(delta, midi.NoteOff(0, n.MIDI()))
	}
	track.Close(0)
	res.Tracks = append(res.Tracks, track)
	return res
}

// Bytes encodes s as a Standard MIDI File.
func Bytes(s *smf.SMF) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "encoding midi file")
	}
	return buf.Bytes(), nil
}
