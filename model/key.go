package model

import "strings"

type Mode int

const (
	Major Mode = iota
	Minor
)

func (m Mode) String() string {
	if m == Minor {
		return "minor"
	}
	return "major"
}

// ParseMode accepts "major", "minor" and their short forms. Empty means major.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "major", "maj", "ionian":
		return Major, nil
	case "minor", "min", "aeolian":
		return Minor, nil
	}
	return Major, ErrBadMode
}

// Spelling forces a key's accidentals. SpellAuto decides from the root.
type Spelling int

const (
	SpellAuto Spelling = iota
	SpellSharp
	SpellFlat
)

// Key is the selected position on the circle of fifths. Minor mode always
// means the relative minor of Root, never the parallel minor.
type Key struct {
	Root     PitchClass `json:"root"`
	Mode     Mode       `json:"mode"`
	Spelling Spelling   `json:"spelling"`
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	res, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = res
	return nil
}
