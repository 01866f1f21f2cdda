// Package midi connects sessions to MIDI devices and files.
package midi

import (
	"github.com/jsphweid/harmonywheel/model"
	"github.com/jsphweid/harmonywheel/session"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"go.uber.org/zap"
)

// Handle applies one decoded message to sess from the external MIDI source
// and reports whether it was a note message.
func Handle(sess *session.Session, msg midi.Message) bool {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		sess.Add(model.NoteFromMIDI(key), session.MIDI, vel)
		return true
	case msg.GetNoteEnd(&ch, &key):
		sess.Remove(model.NoteFromMIDI(key), session.MIDI)
		return true
	}
	return false
}

// Listen feeds note messages from port into sess until stop is called.
// onNote runs after each note message is applied.
func Listen(port int, sess *session.Session, log *zap.Logger, onNote func()) (stop func(), err error) {
	in, err := midi.InPort(port)
	if err != nil {
		return nil, errors.Wrapf(err, "opening midi in port %d", port)
	}
	log.Info("midi in connected", zap.Int("port", port), zap.String("device", in.String()))
	return ListenTo(in, sess, log, onNote)
}

// ListenTo is Listen for an already resolved port.
func ListenTo(in drivers.In, sess *session.Session, log *zap.Logger, onNote func()) (stop func(), err error) {
	stop, err = midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		if !Handle(sess, msg) {
			log.Debug("midi message ignored", zap.String("msg", msg.String()))
			return
		}
		if onNote != nil {
			onNote()
		}
	}, midi.HandleError(func(listenErr error) {
		log.Warn("midi listener error", zap.Error(listenErr))
	}))
	if err != nil {
		return nil, errors.Wrap(err, "listening to midi in")
	}
	return stop, nil
}
