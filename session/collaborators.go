package session

import "github.com/jsphweid/harmonywheel/model"

// Source tags who asked for a note.
type Source string

const (
	Keyboard Source = "keyboard"
	Pointer  Source = "pointer"
	MIDI     Source = "midi" // decoded from an external device, never echoed back
	Program  Source = "program"
)

// External sources are not forwarded to the MIDI output.
func (s Source) External() bool {
	return s == MIDI
}

// ParseSource accepts the four source names.
func ParseSource(s string) (Source, bool) {
	switch src := Source(s); src {
	case Keyboard, Pointer, MIDI, Program:
		return src, true
	}
	return "", false
}

// Audio plays and stops concrete notes. It is called with the session lock
// held and must not call back into the session.
type Audio interface {
	PlayNotes(notes []model.Note)
	StopNotes(notes []model.Note)
	StopAll()
}

// Output forwards locally played notes to a MIDI device. Same locking rule
// as Audio.
type Output interface {
	NoteOn(n model.Note, velocity uint8) error
	NoteOff(n model.Note) error
}

type nopAudio struct{}

func (nopAudio) PlayNotes([]model.Note) {}
func (nopAudio) StopNotes([]model.Note) {}
func (nopAudio) StopAll()               {}

type nopOutput struct{}

func (nopOutput) NoteOn(model.Note, uint8) error { return nil }
func (nopOutput) NoteOff(model.Note) error       { return nil }
