package scale

import (
	"strings"

	"github.com/jsphweid/harmonywheel/model"
)

var majorNumerals = [Degrees]string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}
var minorNumerals = [Degrees]string{"i", "ii°", "♭III", "iv", "v", "♭VI", "♭VII"}

// degree letters before any quality marking
var majorLetters = [Degrees]string{"I", "II", "III", "IV", "V", "VI", "VII"}
var minorLetters = [Degrees]string{"I", "II", "♭III", "IV", "V", "♭VI", "♭VII"}

// flats win over sharps: distance 1 is ♭II, never ♯I
var chromaticLetters = [model.NumPitchClasses]string{
	"I", "♭II", "II", "♭III", "III", "IV", "♭V", "V", "♭VI", "VI", "♭VII", "VII",
}

// RomanNumeral is the fixed diatonic label of degree 1..7 in mode, "" when
// the degree is out of range.
func RomanNumeral(degree int, mode model.Mode) string {
	if degree < 1 || degree > Degrees {
		return ""
	}
	if mode == model.Minor {
		return minorNumerals[degree-1]
	}
	return majorNumerals[degree-1]
}

// ChromaticRomanNumeral labels a chord whose root lies distance semitones
// above the tonic, marked for its quality.
func ChromaticRomanNumeral(distance int, q model.Quality) string {
	return decorate(chromaticLetters[model.PitchClass(distance).Normalize()], q)
}

// ChordNumeral labels a detected chord in k: by scale degree when the root
// is diatonic, by chromatic distance from the tonic otherwise.
func ChordNumeral(k model.Key, c model.ChordIdentity) string {
	if degree, ok := Membership(k, c.Root); ok {
		letters := majorLetters
		if k.Mode == model.Minor {
			letters = minorLetters
		}
		return decorate(letters[degree-1], c.Quality)
	}
	return ChromaticRomanNumeral(Tonic(k).Interval(c.Root), c.Quality)
}

func decorate(numeral string, q model.Quality) string {
	if q.HasMinorThird() {
		numeral = strings.ToLower(numeral)
	}
	return numeral + mark(q) + extension(q)
}

func mark(q model.Quality) string {
	switch q {
	case model.Diminished, model.DiminishedSeventh:
		return "°"
	case model.HalfDiminished, model.HalfDiminishedNinth:
		return "ø"
	case model.Augmented, model.AugmentedSeventh, model.MajorSeventhSharpFive:
		return "+"
	}
	return ""
}

func extension(q model.Quality) string {
	switch q {
	case model.Sus2, model.Sus4, model.AddNine:
		return q.Suffix()
	case model.Sixth, model.MinorSixth:
		return "6"
	case model.MajorSeventh, model.MajorSeventhSharpFive:
		return "maj7"
	case model.MinorSeventh, model.DominantSeventh, model.HalfDiminished,
		model.DiminishedSeventh, model.AugmentedSeventh:
		return "7"
	case model.DominantFlatFive:
		return "7♭5"
	case model.MajorNinth:
		return "maj9"
	case model.MinorNinth, model.DominantNinth, model.HalfDiminishedNinth:
		return "9"
	case model.MinorSeventhFlatNine:
		return "7♭9"
	}
	return ""
}
