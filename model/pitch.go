package model

import (
	"errors"

	"github.com/jsphweid/harmonywheel/util"
)

var (
	ErrBadPitch   = errors.New("unknown pitch name")
	ErrBadNote    = errors.New("malformed note")
	ErrBadMode    = errors.New("unknown mode")
	ErrBadQuality = errors.New("unknown chord quality")
)

// PitchClass is one of the 12 chromatic note identities, C=0. It carries
// no spelling: names are chosen by the spelling package at display time.
type PitchClass int

const (
	C PitchClass = iota
	Db
	D
	Eb
	E
	F
	Gb
	G
	Ab
	A
	Bb
	B
)

const NumPitchClasses = 12

// Normalize wraps p back into 0..11.
func (p PitchClass) Normalize() PitchClass {
	return util.Mod(p, NumPitchClasses)
}

// Transpose moves p up by semitones, wrapping around the octave.
func (p PitchClass) Transpose(semitones int) PitchClass {
	return (p + PitchClass(semitones)).Normalize()
}

// Interval is the ascending distance in semitones from p to q.
func (p PitchClass) Interval(q PitchClass) int {
	return int((q - p).Normalize())
}

// keyboard range of the on-screen piano
const (
	MinOctave = 0
	MaxOctave = 8
)

// Note is a pitch class in a concrete octave. C(n) is the lowest C below C(n+1).
type Note struct {
	Class  PitchClass `json:"class"`
	Octave int        `json:"octave"`
}

// Pitch is the absolute pitch used for ordering: octave*12 + pitch class.
func (n Note) Pitch() int {
	return n.Octave*NumPitchClasses + int(n.Class)
}

// Normalize wraps the pitch class and clamps the octave into the keyboard range.
func (n Note) Normalize() Note {
	n.Class = n.Class.Normalize()
	n.Octave = util.Clamp(n.Octave, MinOctave, MaxOctave)
	return n
}

// MIDI returns the MIDI key number, C4 = 60.
func (n Note) MIDI() uint8 {
	return uint8(util.Clamp(n.Pitch()+NumPitchClasses, 0, 127))
}

// NoteFromMIDI maps a MIDI key number onto the keyboard range.
func NoteFromMIDI(key uint8) Note {
	return Note{
		Class:  PitchClass(key % NumPitchClasses),
		Octave: int(key/NumPitchClasses) - 1,
	}.Normalize()
}
