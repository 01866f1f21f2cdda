// Package voicing assigns octaves to an abstract chord so that the bass is
// always the lowest sounding note.
package voicing

import (
	"strings"

	"github.com/jsphweid/harmonywheel/model"
	"github.com/jsphweid/harmonywheel/util"
)

type Style int

const (
	// Open puts the bass one octave below the base octave, as chord-display
	// playback does.
	Open Style = iota
	// Closed keeps the bass in the base octave and pushes only the tones
	// that precede it up.
	Closed
)

func (s Style) String() string {
	if s == Closed {
		return "closed"
	}
	return "open"
}

// ParseStyle accepts "open" and "closed"; anything else is Open.
func ParseStyle(s string) Style {
	if strings.EqualFold(strings.TrimSpace(s), "closed") {
		return Closed
	}
	return Open
}

// ClampInversion fits inversion into 0..size-1.
func ClampInversion(inversion, size int) int {
	if size <= 0 {
		return 0
	}
	return util.Clamp(inversion, 0, size-1)
}

// Rotate moves the first inversion tones to the end. The result is a copy.
func Rotate(tones []model.PitchClass, inversion int) []model.PitchClass {
	inversion = ClampInversion(inversion, len(tones))
	res := make([]model.PitchClass, 0, len(tones))
	res = append(res, tones[inversion:]...)
	res = append(res, tones[:inversion]...)
	return res
}

// Voice places tones, given in root-position order, above a bass chosen by
// inversion. A tone whose pitch class precedes the bass's goes up an
// octave; any tone that would still not sit above its predecessor keeps
// climbing, so the output strictly ascends. A voicing that would climb past
// MaxOctave is moved down whole octaves until its top note fits.
func Voice(tones []model.PitchClass, inversion, baseOctave int, style Style) []model.Note {
	if len(tones) == 0 {
		return nil
	}
	normalized := make([]model.PitchClass, len(tones))
	for i, t := range tones {
		normalized[i] = t.Normalize()
	}
	rotated := Rotate(normalized, inversion)

	bassOctave := baseOctave
	if style == Open {
		bassOctave--
	}
	bassOctave = util.Clamp(bassOctave, model.MinOctave, model.MaxOctave)

	bass := model.Note{Class: rotated[0], Octave: bassOctave}
	res := []model.Note{bass}
	prev := bass.Pitch()
	for _, pc := range rotated[1:] {
		n := model.Note{Class: pc, Octave: bassOctave}
		if pc < bass.Class {
			n.Octave++
		}
		for n.Pitch() <= prev {
			n.Octave++
		}
		res = append(res, n)
		prev = n.Pitch()
	}

	if excess := res[len(res)-1].Octave - model.MaxOctave; excess > 0 {
		excess = util.Min(excess, res[0].Octave-model.MinOctave)
		for i := range res {
			res[i].Octave -= excess
		}
	}
	return res
}

// VoiceChord voices an abstract chord.
func VoiceChord(c model.ChordTones, inversion, baseOctave int, style Style) []model.Note {
	return Voice(c.Tones, inversion, baseOctave, style)
}
