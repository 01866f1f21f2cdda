package midi

import (
	"github.com/jsphweid/harmonywheel/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
)

// Output encodes session notes as note-on/note-off on one channel.
type Output struct {
	send    func(msg midi.Message) error
	channel uint8
}

// NewOutput wraps a send function, as returned by midi.SendTo.
func NewOutput(send func(msg midi.Message) error, channel uint8) *Output {
	return &Output{send: send, channel: channel & 0x0f}
}

// OpenOutput opens output port for sending on channel.
func OpenOutput(port int, channel uint8) (*Output, error) {
	out, err := midi.OutPort(port)
	if err != nil {
		return nil, errors.Wrapf(err, "opening midi out port %d", port)
	}
	send, err := midi.SendTo(out)
	if err != nil {
		return nil, errors.Wrapf(err, "sending to midi out port %d", port)
	}
	return NewOutput(send, channel), nil
}

func (o *Output) NoteOn(n model.Note, velocity uint8) error {
	return o.send(midi.NoteOn(o.channel, n.MIDI(), velocity))
}

func (o *Output) NoteOff(n model.Note) error {
	return o.send(midi.NoteOff(o.channel, n.MIDI()))
}
