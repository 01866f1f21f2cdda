package chord

import (
	"sort"

	"github.com/jsphweid/harmonywheel/model"
)

// Candidate is one reading of a pitch-class set as a known chord shape.
type Candidate struct {
	Root    model.PitchClass
	Quality model.Quality
	Bass    model.PitchClass
	Slash   bool // bass is not the root
}

// Classes reduces notes to their distinct pitch classes, ordered by the
// absolute pitch of each class's lowest occurrence. Index 0 is the
// sounding bass.
func Classes(notes []model.Note) []model.PitchClass {
	sorted := make([]model.Note, len(notes))
	for i, n := range notes {
		sorted[i] = n.Normalize()
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pitch() < sorted[j].Pitch()
	})

	var res []model.PitchClass
	seen := make(map[model.PitchClass]bool)
	for _, n := range sorted {
		if seen[n.Class] {
			continue
		}
		seen[n.Class] = true
		res = append(res, n.Class)
	}
	return res
}

// Candidates matches classes against every shape, trying each class as the
// root in bass-up order. The first element of classes is the bass.
func Candidates(classes []model.PitchClass) []Candidate {
	if len(classes) == 0 {
		return nil
	}
	bass := classes[0]
	var res []Candidate
	for _, root := range classes {
		set := intervalSet(root, classes)
		for _, q := range model.Qualities() {
			if q.Size() != len(classes) || !matches(q, set) {
				continue
			}
			res = append(res, Candidate{Root: root, Quality: q, Bass: bass, Slash: root != bass})
		}
	}
	return res
}

func intervalSet(root model.PitchClass, classes []model.PitchClass) map[int]bool {
	set := make(map[int]bool, len(classes))
	for _, pc := range classes {
		set[root.Interval(pc)] = true
	}
	return set
}

func matches(q model.Quality, set map[int]bool) bool {
	for _, iv := range q.Intervals() {
		if !set[iv%model.NumPitchClasses] {
			return false
		}
	}
	return true
}
