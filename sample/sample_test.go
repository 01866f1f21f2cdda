package sample

import (
	"bytes"
	"testing"

	"github.com/jsphweid/harmonywheel/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestChord(t *testing.T) {
	notes := []model.Note{
		{Class: model.C, Octave: 3},
		{Class: model.E, Octave: 3},
		{Class: model.G, Octave: 3},
	}
	s := Chord(notes, 100, 0)
	require.Len(t, s.Tracks, 1)
	// every note on, every note off, end of track
	assert.Len(t, s.Tracks[0], 2*len(notes)+1)

	var ticks uint32
	for _, evt := range s.Tracks[0] {
		ticks += evt.Delta
	}
	assert.Equal(t, uint32(4*960), ticks)

	dat, err := Bytes(s)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(dat, []byte("MThd")))

	back, err := smf.ReadFrom(bytes.NewReader(dat))
	require.NoError(t, err)
	assert.Len(t, back.Tracks, 1)
}
