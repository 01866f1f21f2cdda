package model

// Quality is the interval shape of a chord, independent of its root.
type Quality int

const (
	MajorTriad Quality = iota
	MinorTriad
	Diminished
	Augmented
	Sus2
	Sus4
	Sixth
	MinorSixth
	AddNine
	MajorSeventh
	MinorSeventh
	DominantSeventh
	HalfDiminished
	DiminishedSeventh
	AugmentedSeventh
	DominantFlatFive
	MajorSeventhSharpFive
	MajorNinth
	MinorNinth
	DominantNinth
	MinorSeventhFlatNine
	HalfDiminishedNinth

	numQualities
)

type shape struct {
	suffix    string
	intervals []int // stacking order from the root, may exceed an octave
}

var shapes = [numQualities]shape{
	MajorTriad:            {"", []int{0, 4, 7}},
	MinorTriad:            {"m", []int{0, 3, 7}},
	Diminished:            {"dim", []int{0, 3, 6}},
	Augmented:             {"aug", []int{0, 4, 8}},
	Sus2:                  {"sus2", []int{0, 2, 7}},
	Sus4:                  {"sus4", []int{0, 5, 7}},
	Sixth:                 {"6", []int{0, 4, 7, 9}},
	MinorSixth:            {"m6", []int{0, 3, 7, 9}},
	AddNine:               {"add9", []int{0, 4, 7, 14}},
	MajorSeventh:          {"maj7", []int{0, 4, 7, 11}},
	MinorSeventh:          {"m7", []int{0, 3, 7, 10}},
	DominantSeventh:       {"7", []int{0, 4, 7, 10}},
	HalfDiminished:        {"m7b5", []int{0, 3, 6, 10}},
	DiminishedSeventh:     {"dim7", []int{0, 3, 6, 9}},
	AugmentedSeventh:      {"7#5", []int{0, 4, 8, 10}},
	DominantFlatFive:      {"7b5", []int{0, 4, 6, 10}},
	MajorSeventhSharpFive: {"maj7#5", []int{0, 4, 8, 11}},
	MajorNinth:            {"maj9", []int{0, 4, 7, 11, 14}},
	MinorNinth:            {"m9", []int{0, 3, 7, 10, 14}},
	DominantNinth:         {"9", []int{0, 4, 7, 10, 14}},
	MinorSeventhFlatNine:  {"m7b9", []int{0, 3, 7, 10, 13}},
	HalfDiminishedNinth:   {"m7b5b9", []int{0, 3, 6, 10, 13}},
}

// Qualities lists every known quality in matching order.
func Qualities() []Quality {
	res := make([]Quality, 0, numQualities)
	for q := Quality(0); q < numQualities; q++ {
		res = append(res, q)
	}
	return res
}

func (q Quality) Valid() bool {
	return q >= 0 && q < numQualities
}

// Suffix is the chord-symbol suffix, "" for a major triad.
func (q Quality) Suffix() string {
	if !q.Valid() {
		return ""
	}
	return shapes[q].suffix
}

func (q Quality) String() string {
	if q == MajorTriad {
		return "maj"
	}
	return q.Suffix()
}

// Intervals returns the semitone offsets from the root in stacking order.
func (q Quality) Intervals() []int {
	if !q.Valid() {
		return nil
	}
	res := make([]int, len(shapes[q].intervals))
	copy(res, shapes[q].intervals)
	return res
}

// Size is the number of distinct pitch classes in the chord.
func (q Quality) Size() int {
	if !q.Valid() {
		return 0
	}
	return len(shapes[q].intervals)
}

// Tones builds the chord's pitch classes on root, in root-position order.
func (q Quality) Tones(root PitchClass) []PitchClass {
	var res []PitchClass
	for _, iv := range q.Intervals() {
		res = append(res, root.Transpose(iv))
	}
	return res
}

func (q Quality) IsTriad() bool {
	return q.Size() == 3
}

func (q Quality) IsSeventh() bool {
	switch q {
	case MajorSeventh, MinorSeventh, DominantSeventh, HalfDiminished, DiminishedSeventh,
		AugmentedSeventh, DominantFlatFive, MajorSeventhSharpFive:
		return true
	}
	return false
}

func (q Quality) IsNinth() bool {
	switch q {
	case MajorNinth, MinorNinth, DominantNinth, MinorSeventhFlatNine, HalfDiminishedNinth:
		return true
	}
	return false
}

// HasMinorThird reports whether the chord is built on a minor third.
func (q Quality) HasMinorThird() bool {
	switch q {
	case MinorTriad, Diminished, MinorSixth, MinorSeventh, HalfDiminished, DiminishedSeventh,
		MinorNinth, MinorSeventhFlatNine, HalfDiminishedNinth:
		return true
	}
	return false
}

// AlteredFifth is true for a raised or lowered fifth outside the
// diminished and half-diminished families.
func (q Quality) AlteredFifth() bool {
	switch q {
	case Augmented, AugmentedSeventh, DominantFlatFive, MajorSeventhSharpFive:
		return true
	}
	return false
}

// Colored is true for sixth, suspended and added-tone chords.
func (q Quality) Colored() bool {
	switch q {
	case Sus2, Sus4, Sixth, MinorSixth, AddNine:
		return true
	}
	return false
}

// ChordTones is an abstract chord: a root, its quality and the pitch
// classes in root-position order.
type ChordTones struct {
	Root    PitchClass   `json:"root"`
	Quality Quality      `json:"quality"`
	Tones   []PitchClass `json:"tones"`
}

// NewChordTones spells out q on root.
func NewChordTones(root PitchClass, q Quality) ChordTones {
	root = root.Normalize()
	return ChordTones{Root: root, Quality: q, Tones: q.Tones(root)}
}

// ChordIdentity is the single best reading of a set of active notes.
// Bass is nil for root position.
type ChordIdentity struct {
	Root      PitchClass  `json:"root"`
	Quality   Quality     `json:"quality"`
	Bass      *PitchClass `json:"bass,omitempty"`
	Inversion int         `json:"inversion"`
	RootName  string      `json:"root_name"`
	BassName  string      `json:"bass_name,omitempty"`
}

// Symbol renders the chord as text, e.g. "C7" or "C7/E".
func (c ChordIdentity) Symbol() string {
	s := c.RootName + c.Quality.Suffix()
	if c.Bass != nil {
		s += "/" + c.BassName
	}
	return s
}

// Tones returns the chord's pitch classes in root-position order.
func (c ChordIdentity) Tones() []PitchClass {
	return c.Quality.Tones(c.Root)
}

// ChordEvent is a detected chord at an offset into a MIDI file.
type ChordEvent struct {
	OffsetMillis uint32        `json:"offset_ms"`
	Chord        ChordIdentity `json:"chord"`
	Symbol       string        `json:"symbol"`
}

func (q Quality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// ParseQuality reads a chord-symbol suffix. Both "" and "maj" are the
// major triad.
func ParseQuality(s string) (Quality, bool) {
	for _, q := range Qualities() {
		if q.Suffix() == s || q.String() == s {
			return q, true
		}
	}
	return 0, false
}

func (q *Quality) UnmarshalText(text []byte) error {
	res, ok := ParseQuality(string(text))
	if !ok {
		return ErrBadQuality
	}
	*q = res
	return nil
}
