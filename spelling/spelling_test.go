package spelling

import (
	"fmt"
	"testing"

	"github.com/jsphweid/harmonywheel/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsesFlatSpelling(t *testing.T) {
	flat := []model.PitchClass{model.F, model.Bb, model.Eb, model.Ab, model.Db, model.Gb}
	sharp := []model.PitchClass{model.C, model.G, model.D, model.A, model.E, model.B}

	for _, pc := range flat {
		assert.True(t, UsesFlatSpelling(pc), ToFlatSpelling(pc))
	}
	for _, pc := range sharp {
		assert.False(t, UsesFlatSpelling(pc), ToSharpSpelling(pc))
	}
}

func TestUsesFlatSpellingName(t *testing.T) {
	assert := assert.New(t)
	for _, name := range []string{"F", "Bb", "Eb", "Ab", "Db", "Gb", "Cb", "B♭"} {
		assert.True(UsesFlatSpellingName(name), name)
	}
	for _, name := range []string{"C", "B", "F#", "C#", "A"} {
		assert.False(UsesFlatSpellingName(name), name)
	}
}

func TestSpellingRoundTrip(t *testing.T) {
	for pc := model.PitchClass(0); pc < model.NumPitchClasses; pc++ {
		t.Run(fmt.Sprintf("pitch class %d", pc), func(t *testing.T) {
			assert := assert.New(t)
			sharp := ToSharp(ToFlatSpelling(pc))
			assert.Equal(ToSharpSpelling(pc), sharp)

			back, err := Parse(sharp)
			assert.NoError(err)
			assert.Equal(pc, back)

			back, err = Parse(ToFlat(ToSharpSpelling(pc)))
			assert.NoError(err)
			assert.Equal(pc, back)
		})
	}
}

func TestSpell(t *testing.T) {
	f := model.Key{Root: model.F}
	g := model.Key{Root: model.G}

	assert := assert.New(t)
	assert.Equal("A#", Spell(model.Bb, nil))
	assert.Equal("Bb", Spell(model.Bb, &f))
	assert.Equal("F#", Spell(model.Gb, &g))
	assert.Equal("Eb4", SpellNote(model.Note{Class: model.Eb, Octave: 4}, &f))
}

func TestSpellIsOrderIndependent(t *testing.T) {
	f := model.Key{Root: model.F}
	first := Spell(model.Db, &f)
	Spell(model.Db, nil)
	Spell(model.Db, &model.Key{Root: model.E})
	assert.Equal(t, first, Spell(model.Db, &f))
}

func TestRespellSymbols(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Dbm7/Ab", ToFlat("C#m7/G#"))
	assert.Equal("A#maj7", ToSharp("Bbmaj7"))
	assert.Equal("C7/E", ToFlat("C7/E"))
	assert.Equal("G#4", ToSharp("Ab4"))
}

func TestParse(t *testing.T) {
	cases := map[string]model.PitchClass{
		"C":  model.C,
		"c#": model.Db,
		"Db": model.Db,
		"E♭": model.Eb,
		"F♯": model.Gb,
		"B#": model.C,
		"Cb": model.B,
		"bb": model.Bb,
	}
	for in, want := range cases {
		got, err := Parse(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "H", "C#x", "4"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, model.ErrBadPitch, bad)
	}
}

func TestParseNote(t *testing.T) {
	assert := assert.New(t)
	n, err := ParseNote("Bb4")
	assert.NoError(err)
	assert.Equal(model.Note{Class: model.Bb, Octave: 4}, n)

	n, err = ParseNote("C-1")
	assert.NoError(err)
	assert.Equal(model.Note{Class: model.C, Octave: -1}, n)

	_, err = ParseNote("C")
	assert.ErrorIs(err, model.ErrBadNote)
	_, err = ParseNote("X4")
	assert.ErrorIs(err, model.ErrBadNote)
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("Cb", "major")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(model.B, k.Root)
	assert.Equal(model.SpellFlat, k.Spelling)
	assert.True(KeyUsesFlats(k))

	k, err = ParseKey("F#", "minor")
	assert.NoError(err)
	assert.Equal(model.Gb, k.Root)
	assert.Equal(model.Minor, k.Mode)
	assert.Equal("F#", KeyName(k))

	k, err = ParseKey("b", "")
	assert.NoError(err)
	assert.Equal(model.SpellAuto, k.Spelling)
	assert.False(KeyUsesFlats(k))

	_, err = ParseKey("C", "lydian")
	assert.ErrorIs(err, model.ErrBadMode)
}

func TestCbRootByPitchClassSpellsSharp(t *testing.T) {
	pc, err := Parse("Cb")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.False(UsesFlatSpelling(pc))
	assert.Equal("B", KeyName(model.Key{Root: pc}))

	k, err := ParseKey("Cb", "")
	assert.NoError(err)
	assert.True(KeyUsesFlats(k))
}
