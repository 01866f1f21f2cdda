// Package scale answers diatonic questions about a key. Minor mode is the
// relative minor of the selected root: C minor-mode is A natural minor.
package scale

import "github.com/jsphweid/harmonywheel/model"

const Degrees = 7

var majorSteps = [Degrees]int{0, 2, 4, 5, 7, 9, 11}
var minorSteps = [Degrees]int{0, 2, 3, 5, 7, 8, 10}

var majorTriads = [Degrees]model.Quality{
	model.MajorTriad, model.MinorTriad, model.MinorTriad, model.MajorTriad,
	model.MajorTriad, model.MinorTriad, model.Diminished,
}

var minorTriads = [Degrees]model.Quality{
	model.MinorTriad, model.Diminished, model.MajorTriad, model.MinorTriad,
	model.MinorTriad, model.MajorTriad, model.MajorTriad,
}

var majorSevenths = [Degrees]model.Quality{
	model.MajorSeventh, model.MinorSeventh, model.MinorSeventh, model.MajorSeventh,
	model.DominantSeventh, model.MinorSeventh, model.HalfDiminished,
}

var minorSevenths = [Degrees]model.Quality{
	model.MinorSeventh, model.HalfDiminished, model.MajorSeventh, model.MinorSeventh,
	model.MinorSeventh, model.MajorSeventh, model.DominantSeventh,
}

// RelativeMinor is the root of the minor key sharing root's signature.
func RelativeMinor(root model.PitchClass) model.PitchClass {
	return root.Transpose(9)
}

// Tonic is degree 1 of the key: the root itself in major, its relative
// minor in minor.
func Tonic(k model.Key) model.PitchClass {
	if k.Mode == model.Minor {
		return RelativeMinor(k.Root)
	}
	return k.Root.Normalize()
}

// Scale lists the seven scale tones starting on the tonic.
func Scale(k model.Key) [Degrees]model.PitchClass {
	steps := majorSteps
	if k.Mode == model.Minor {
		steps = minorSteps
	}
	tonic := Tonic(k)
	var res [Degrees]model.PitchClass
	for i, st := range steps {
		res[i] = tonic.Transpose(st)
	}
	return res
}

// Membership returns the 1-based scale degree of pc, or false when pc is
// not in the scale.
func Membership(k model.Key, pc model.PitchClass) (int, bool) {
	pc = pc.Normalize()
	for i, s := range Scale(k) {
		if s == pc {
			return i + 1, true
		}
	}
	return 0, false
}

// DiatonicTriad is the triad built on degree 1..7.
func DiatonicTriad(k model.Key, degree int) (model.ChordTones, bool) {
	qualities := majorTriads
	if k.Mode == model.Minor {
		qualities = minorTriads
	}
	return diatonic(k, degree, qualities)
}

// DiatonicSeventh is the four-note seventh chord built on degree 1..7.
func DiatonicSeventh(k model.Key, degree int) (model.ChordTones, bool) {
	qualities := majorSevenths
	if k.Mode == model.Minor {
		qualities = minorSevenths
	}
	return diatonic(k, degree, qualities)
}

// DiatonicNinth stacks the scale tone a ninth above the root onto the
// diatonic seventh.
func DiatonicNinth(k model.Key, degree int) (model.ChordTones, bool) {
	seventh, ok := DiatonicSeventh(k, degree)
	if !ok {
		return model.ChordTones{}, false
	}
	ninth := Scale(k)[degree%Degrees]
	q, ok := ninthQuality(seventh.Quality, seventh.Root.Interval(ninth))
	if !ok {
		return model.ChordTones{}, false
	}
	return model.NewChordTones(seventh.Root, q), true
}

func ninthQuality(seventh model.Quality, ninth int) (model.Quality, bool) {
	switch {
	case seventh == model.MajorSeventh && ninth == 2:
		return model.MajorNinth, true
	case seventh == model.MinorSeventh && ninth == 2:
		return model.MinorNinth, true
	case seventh == model.DominantSeventh && ninth == 2:
		return model.DominantNinth, true
	case seventh == model.MinorSeventh && ninth == 1:
		return model.MinorSeventhFlatNine, true
	case seventh == model.HalfDiminished && ninth == 1:
		return model.HalfDiminishedNinth, true
	}
	return 0, false
}

func diatonic(k model.Key, degree int, qualities [Degrees]model.Quality) (model.ChordTones, bool) {
	if degree < 1 || degree > Degrees {
		return model.ChordTones{}, false
	}
	root := Scale(k)[degree-1]
	return model.NewChordTones(root, qualities[degree-1]), true
}
