package midi

import (
	"sort"

	"github.com/jsphweid/harmonywheel/model"
	"github.com/jsphweid/harmonywheel/session"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

type reducedEvent struct {
	offset    int64 // microseconds
	isNoteOff bool
	note      model.Note
}

func reduce(s *smf.SMF) []reducedEvent {
	var res []reducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				res = append(res, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: velocity == 0,
					note:      model.NoteFromMIDI(key),
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				res = append(res, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: true,
					note:      model.NoteFromMIDI(key),
				})
			}
		}
	}

	// earlier offsets first, note offs before note ons at the same offset
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].offset != res[j].offset {
			return res[i].offset < res[j].offset
		}
		return res[i].isNoteOff && !res[j].isNoteOff
	})
	return res
}

// Timeline replays every note of s through a session and records each
// chord change, spelled for key. Silence or an unreadable cluster ends the
// current chord, so the same chord struck twice shows up twice.
func Timeline(s *smf.SMF, key *model.Key) (events []model.ChordEvent, e error) {
	defer func() {
		if r := recover(); r != nil {
			events = nil
			e = errors.Errorf("replaying midi file: %v", r)
		}
	}()

	reduced := reduce(s)
	sess := session.New()
	var last string
	for i, evt := range reduced {
		if evt.isNoteOff {
			sess.Remove(evt.note, session.MIDI)
		} else {
			sess.Add(evt.note, session.MIDI, 0)
		}
		// only look once every event at this offset is applied
		if i+1 < len(reduced) && reduced[i+1].offset == evt.offset {
			continue
		}

		id := sess.Chord(key)
		if id == nil {
			last = ""
			continue
		}
		if sym := id.Symbol(); sym != last {
			last = sym
			events = append(events, model.ChordEvent{
				OffsetMillis: uint32(evt.offset / 1000),
				Chord:        *id,
				Symbol:       sym,
			})
		}
	}
	return events, nil
}
