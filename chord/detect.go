// Package chord infers a single chord identity from an unordered set of
// sounding notes.
package chord

import (
	"github.com/jsphweid/harmonywheel/model"
	"github.com/jsphweid/harmonywheel/spelling"
)

const (
	MinClasses = 3
	MaxClasses = 5

	// a bass that would sit past the third inversion is reported as a
	// root-position chord with a bass annotation
	maxInversion = 3
)

// Detect returns the best chord reading of notes, spelled for key, or nil.
// A nil key spells with sharps. Duplicates and insertion order do not
// matter.
func Detect(notes []model.Note, key *model.Key) *model.ChordIdentity {
	classes := Classes(notes)
	if len(classes) < MinClasses || len(classes) > MaxClasses {
		return nil
	}
	best, ok := Best(Candidates(classes), len(classes))
	if !ok {
		return nil
	}
	return Identify(best, key)
}

// Identify turns a candidate into a spelled chord identity.
func Identify(c Candidate, key *model.Key) *model.ChordIdentity {
	id := &model.ChordIdentity{
		Root:     c.Root,
		Quality:  c.Quality,
		RootName: spelling.Spell(c.Root, key),
	}
	if !c.Slash {
		return id
	}
	bass := c.Bass
	id.Bass = &bass
	id.BassName = spelling.Spell(bass, key)
	id.Inversion = Inversion(c.Quality.Tones(c.Root), bass)
	return id
}

// Inversion is the position of bass in tones, or 0 when bass is not a
// chord tone or sits beyond the third inversion.
func Inversion(tones []model.PitchClass, bass model.PitchClass) int {
	for i, t := range tones {
		if t == bass.Normalize() {
			if i > maxInversion {
				return 0
			}
			return i
		}
	}
	return 0
}

// Symbol is Detect rendered as text, "" when there is no chord.
func Symbol(notes []model.Note, key *model.Key) string {
	if id := Detect(notes, key); id != nil {
		return id.Symbol()
	}
	return ""
}
