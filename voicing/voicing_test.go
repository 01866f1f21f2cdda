package voicing

import (
	"fmt"
	"testing"

	"github.com/jsphweid/harmonywheel/model"
	"github.com/stretchr/testify/assert"
)

func n(pc model.PitchClass, octave int) model.Note {
	return model.Note{Class: pc, Octave: octave}
}

var cMajor = []model.PitchClass{model.C, model.E, model.G}

func TestVoiceFirstInversion(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]model.Note{n(model.E, 2), n(model.G, 2), n(model.C, 3)}, Voice(cMajor, 1, 3, Open))
	assert.Equal([]model.Note{n(model.E, 3), n(model.G, 3), n(model.C, 4)}, Voice(cMajor, 1, 3, Closed))
}

func TestVoiceClampsInversion(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]model.Note{n(model.G, 3), n(model.C, 4), n(model.E, 4)}, Voice(cMajor, 5, 4, Open))
	assert.Equal(Voice(cMajor, 0, 4, Open), Voice(cMajor, -1, 4, Open))
}

func TestVoiceSevenths(t *testing.T) {
	cmaj7 := model.MajorSeventh.Tones(model.C)
	assert.Equal(t, []model.Note{n(model.B, 4), n(model.C, 5), n(model.E, 5), n(model.G, 5)}, Voice(cmaj7, 3, 4, Closed))

	c9 := model.DominantNinth.Tones(model.C)
	assert.Equal(t,
		[]model.Note{n(model.C, 3), n(model.E, 3), n(model.G, 3), n(model.Bb, 3), n(model.D, 4)},
		Voice(c9, 0, 4, Open))
}

func TestVoiceFitsUnderTopOctave(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]model.Note{n(model.E, 7), n(model.G, 7), n(model.C, 8)}, Voice(cMajor, 1, 8, Closed))

	c9 := model.DominantNinth.Tones(model.C)
	assert.Equal(
		[]model.Note{n(model.Bb, 6), n(model.D, 7), n(model.C, 8), n(model.E, 8), n(model.G, 8)},
		Voice(c9, 3, 8, Closed))
}

func TestVoiceEmpty(t *testing.T) {
	assert.Nil(t, Voice(nil, 0, 4, Open))
}

func TestVoiceClampsOctave(t *testing.T) {
	notes := Voice(cMajor, 0, 0, Open)
	assert.Equal(t, model.MinOctave, notes[0].Octave)
}

func TestVoiceAscends(t *testing.T) {
	for _, q := range model.Qualities() {
		for root := model.PitchClass(0); root < model.NumPitchClasses; root++ {
			tones := q.Tones(root)
			for inv := 0; inv <= 3; inv++ {
				for octave := model.MinOctave; octave <= model.MaxOctave; octave++ {
					for _, style := range []Style{Open, Closed} {
						name := fmt.Sprintf("%s root %d inv %d octave %d %s", q, root, inv, octave, style)
						notes := Voice(tones, inv, octave, style)
						if !assert.Len(t, notes, len(tones), name) {
							continue
						}
						assert.Equal(t, Rotate(tones, inv)[0], notes[0].Class, name)
						for i := 1; i < len(notes); i++ {
							assert.Less(t, notes[i-1].Pitch(), notes[i].Pitch(), name)
						}
						for _, note := range notes {
							assert.GreaterOrEqual(t, note.Octave, model.MinOctave, name)
							assert.LessOrEqual(t, note.Octave, model.MaxOctave, name)
						}
					}
				}
			}
		}
	}
}

func TestRotate(t *testing.T) {
	tones := []model.PitchClass{model.C, model.E, model.G}
	assert.Equal(t, []model.PitchClass{model.G, model.C, model.E}, Rotate(tones, 2))
	assert.Equal(t, []model.PitchClass{model.C, model.E, model.G}, tones)
}

func TestParseStyle(t *testing.T) {
	assert.Equal(t, Closed, ParseStyle(" Closed"))
	assert.Equal(t, Open, ParseStyle("open"))
	assert.Equal(t, Open, ParseStyle("drop2"))
}
