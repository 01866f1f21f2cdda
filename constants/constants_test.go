package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("HARMONY_ADDR", "")
	t.Setenv("HARMONY_BASE_OCTAVE", "")
	t.Setenv("HARMONY_MIDI_OUT", "not a number")

	assert := assert.New(t)
	assert.Equal(DefaultAddr, GetAddr())
	assert.Equal(DefaultBaseOctave, GetBaseOctave())
	assert.Equal(DefaultMidiOut, GetMidiOut())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HARMONY_ADDR", ":9000")
	t.Setenv("HARMONY_MIDI_IN", "2")
	t.Setenv("HARMONY_LOG_LEVEL", "debug")

	assert := assert.New(t)
	assert.Equal(":9000", GetAddr())
	assert.Equal(2, GetMidiIn())
	assert.Equal("debug", GetLogLevel())
}
