package match

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/volunteerhub/internal/normalize"
)

type Mode int

const (
	// Exact compares tags as stored.
	Exact Mode = iota
	// Folded compares tags after case folding and trimming.
	Folded
)

type Scorer struct {
	mode Mode
}

func NewScorer(mode Mode) Scorer {
	return Scorer{mode: mode}
}

// Score is the number of distinct tags present in both a and b.
func (s Scorer) Score(a, b []string) int {
	return s.set(a).Intersect(s.set(b)).Cardinality()
}

func (s Scorer) set(tags []string) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, tag := range tags {
		if s.mode == Folded {
			tag = normalize.Tag(tag)
		}
		set.Add(tag)
	}
	return set
}

// Score compares tags exactly.
func Score(a, b []string) int {
	return NewScorer(Exact).Score(a, b)
}
