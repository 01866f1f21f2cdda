// Package spelling is the single source of truth for note names. Pitch
// classes are plain integers everywhere else; a name is picked here, from
// the key being displayed.
package spelling

import (
	"strconv"
	"strings"

	"github.com/jsphweid/harmonywheel/model"
)

var sharpNames = [model.NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [model.NumPitchClasses]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// the conventionally flat major keys
var flatKeyNames = map[string]bool{
	"F": true, "Bb": true, "Eb": true, "Ab": true, "Db": true, "Gb": true, "Cb": true,
}

var letters = map[byte]model.PitchClass{
	'C': model.C, 'D': model.D, 'E': model.E, 'F': model.F, 'G': model.G, 'A': model.A, 'B': model.B,
}

// UsesFlatSpelling reports whether the key rooted on root is written with
// flats. Of the enharmonic pairs, Db and Gb spell flat and B spells sharp;
// a Cb key needs an explicit flat spelling, see ParseKey. A Cb root passed
// here by pitch class is 11 and spells sharp.
func UsesFlatSpelling(root model.PitchClass) bool {
	return flatKeyNames[flatNames[root.Normalize()]]
}

// UsesFlatSpellingName is UsesFlatSpelling for a key written by name.
func UsesFlatSpellingName(name string) bool {
	return flatKeyNames[canonical(name)]
}

// KeyUsesFlats applies the key's explicit spelling before falling back to its root.
func KeyUsesFlats(k model.Key) bool {
	switch k.Spelling {
	case model.SpellFlat:
		return true
	case model.SpellSharp:
		return false
	}
	return UsesFlatSpelling(k.Root)
}

func ToFlatSpelling(pc model.PitchClass) string {
	return flatNames[pc.Normalize()]
}

func ToSharpSpelling(pc model.PitchClass) string {
	return sharpNames[pc.Normalize()]
}

// Spell names pc for key. A nil key spells sharp.
func Spell(pc model.PitchClass, key *model.Key) string {
	if key != nil && KeyUsesFlats(*key) {
		return ToFlatSpelling(pc)
	}
	return ToSharpSpelling(pc)
}

// SpellNote names a note with its octave, e.g. "Bb4".
func SpellNote(n model.Note, key *model.Key) string {
	return Spell(n.Class, key) + strconv.Itoa(n.Octave)
}

// KeyName is the display name of the key's root.
func KeyName(k model.Key) string {
	return Spell(k.Root, &k)
}

// ToFlat respells every pitch name in a note name or chord symbol with
// flats: "C#m7/G#" becomes "Dbm7/Ab".
func ToFlat(name string) string {
	return respell(name, ToFlatSpelling)
}

// ToSharp respells with sharps: "Dbm7/Ab" becomes "C#m7/G#".
func ToSharp(name string) string {
	return respell(name, ToSharpSpelling)
}

func respell(name string, spell func(model.PitchClass) string) string {
	parts := strings.Split(name, "/")
	for i, part := range parts {
		pc, n := parsePrefix(part)
		if n == 0 {
			continue
		}
		parts[i] = spell(pc) + part[n:]
	}
	return strings.Join(parts, "/")
}

// Parse reads a pitch name: a letter followed by any number of sharps or
// flats, ASCII or unicode. "B#" is C, "Cb" is B.
func Parse(name string) (model.PitchClass, error) {
	name = strings.TrimSpace(name)
	pc, n := parsePrefix(name)
	if n == 0 || n != len(name) {
		return 0, model.ErrBadPitch
	}
	return pc, nil
}

// ParseNote reads a note name with octave, e.g. "C#4" or "Eb-1".
func ParseNote(name string) (model.Note, error) {
	name = strings.TrimSpace(name)
	pc, n := parsePrefix(name)
	if n == 0 {
		return model.Note{}, model.ErrBadNote
	}
	octave, err := strconv.Atoi(name[n:])
	if err != nil {
		return model.Note{}, model.ErrBadNote
	}
	return model.Note{Class: pc, Octave: octave}, nil
}

// ParseKey reads a key root and mode. A root written with an accidental
// keeps that accidental for display; a natural root spells by convention.
func ParseKey(root, mode string) (model.Key, error) {
	pc, err := Parse(root)
	if err != nil {
		return model.Key{}, err
	}
	m, err := model.ParseMode(mode)
	if err != nil {
		return model.Key{}, err
	}
	k := model.Key{Root: pc, Mode: m}
	accidentals := strings.TrimSpace(root)[1:]
	switch {
	case strings.ContainsAny(accidentals, "b♭"):
		k.Spelling = model.SpellFlat
	case strings.ContainsAny(accidentals, "#♯"):
		k.Spelling = model.SpellSharp
	}
	return k, nil
}

func parsePrefix(s string) (model.PitchClass, int) {
	if s == "" {
		return 0, 0
	}
	pc, ok := letters[strings.ToUpper(s[:1])[0]]
	if !ok {
		return 0, 0
	}
	i := 1
	for i < len(s) {
		switch {
		case s[i] == '#':
			pc++
			i++
		case s[i] == 'b':
			pc--
			i++
		case strings.HasPrefix(s[i:], "♯"):
			pc++
			i += len("♯")
		case strings.HasPrefix(s[i:], "♭"):
			pc--
			i += len("♭")
		default:
			return pc.Normalize(), i
		}
	}
	return pc.Normalize(), i
}

func canonical(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "♭", "b")
	name = strings.ReplaceAll(name, "♯", "#")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
