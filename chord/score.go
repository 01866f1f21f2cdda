package chord

const (
	alteredFifthPenalty = 10
	coloredPenalty      = 1
	slashPenalty        = 2
	ninthBonus          = 3
)

// Score ranks a candidate; higher is better. unique is the number of
// distinct pitch classes that produced it.
func Score(c Candidate, unique int) int {
	var s int
	switch {
	case c.Quality.AlteredFifth():
		s -= alteredFifthPenalty
	case c.Quality.Colored():
		s -= coloredPenalty
	}
	if c.Slash {
		s -= slashPenalty
	}
	if unique == 5 && c.Quality.IsNinth() {
		s += ninthBonus
	}
	return s
}

// Better reports whether a strictly outranks b.
func Better(a, b Candidate, unique int) bool {
	return Score(a, unique) > Score(b, unique)
}

// Best picks the top candidate. Ties keep the earliest in matching order.
func Best(cands []Candidate, unique int) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if Better(c, best, unique) {
			best = c
		}
	}
	return best, true
}
