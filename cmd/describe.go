package cmd

import (
	"github.com/jsphweid/harmonywheel/model"
	"github.com/jsphweid/harmonywheel/scale"
	"github.com/jsphweid/harmonywheel/spelling"
)

func parseKey(root, mode string) (*model.Key, error) {
	if root == "" {
		return nil, nil
	}
	k, err := spelling.ParseKey(root, mode)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func parseTones(names []string) ([]model.PitchClass, error) {
	res := make([]model.PitchClass, 0, len(names))
	for _, name := range names {
		pc, err := spelling.Parse(name)
		if err != nil {
			return nil, err
		}
		res = append(res, pc)
	}
	return res, nil
}

func parseNotes(names []string) ([]model.Note, error) {
	res := make([]model.Note, 0, len(names))
	for _, name := range names {
		n, err := spelling.ParseNote(name)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

func noteNames(notes []model.Note, key *model.Key) []model.NoteName {
	res := make([]model.NoteName, 0, len(notes))
	for _, n := range notes {
		res = append(res, model.NoteName{
			Name:   spelling.SpellNote(n, key),
			Class:  int(n.Class),
			Octave: n.Octave,
		})
	}
	return res
}

func numeral(key *model.Key, c *model.ChordIdentity) string {
	if key == nil || c == nil {
		return ""
	}
	return scale.ChordNumeral(*key, *c)
}

func symbolOf(c model.ChordTones, key *model.Key) string {
	return model.ChordIdentity{
		Root:     c.Root,
		Quality:  c.Quality,
		RootName: spelling.Spell(c.Root, key),
	}.Symbol()
}

func describeScale(k model.Key) model.ScaleResponse {
	res := model.ScaleResponse{
		Key:   spelling.KeyName(k),
		Mode:  k.Mode,
		Tonic: spelling.Spell(scale.Tonic(k), &k),
	}
	tones := scale.Scale(k)
	for d := 1; d <= scale.Degrees; d++ {
		info := model.DegreeInfo{
			Degree:  d,
			Root:    spelling.Spell(tones[d-1], &k),
			Numeral: scale.RomanNumeral(d, k.Mode),
		}
		if triad, ok := scale.DiatonicTriad(k, d); ok {
			info.Triad = symbolOf(triad, &k)
			for _, t := range triad.Tones {
				info.Tones = append(info.Tones, spelling.Spell(t, &k))
			}
		}
		if seventh, ok := scale.DiatonicSeventh(k, d); ok {
			info.Seventh = symbolOf(seventh, &k)
		}
		if ninth, ok := scale.DiatonicNinth(k, d); ok {
			info.Ninth = symbolOf(ninth, &k)
		}
		res.Degrees = append(res.Degrees, info)
	}
	return res
}
