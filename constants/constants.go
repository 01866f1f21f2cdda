package constants

import (
	"os"
	"strconv"
)

const (
	DefaultAddr       = ":8080"
	DefaultLogLevel   = "info"
	DefaultMidiIn     = 0
	DefaultMidiOut    = -1 // no echo port
	DefaultBaseOctave = 4
	DefaultVelocity   = 100

	SampleTicksPerQuarter = 960
)

func GetAddr() string {
	if addr := os.Getenv("HARMONY_ADDR"); addr != "" {
		return addr
	}
	return DefaultAddr
}

func GetLogLevel() string {
	if level := os.Getenv("HARMONY_LOG_LEVEL"); level != "" {
		return level
	}
	return DefaultLogLevel
}

func GetMidiIn() int {
	return getInt("HARMONY_MIDI_IN", DefaultMidiIn)
}

func GetMidiOut() int {
	return getInt("HARMONY_MIDI_OUT", DefaultMidiOut)
}

func GetBaseOctave() int {
	return getInt("HARMONY_BASE_OCTAVE", DefaultBaseOctave)
}

func getInt(name string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return fallback
	}
	return v
}
