package landing

import (
	"math/rand/v2"
)

// Shuffler picks the idea in focus.
type Shuffler struct {
	ideas   []Idea
	current int
	rng     *rand.Rand
}

// NewShuffler starts on a random idea. A zero seed draws a random seed.
func NewShuffler(ideas []Idea, seed int64) *Shuffler {
	var src rand.Source
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	}
	s := &Shuffler{ideas: ideas, rng: rand.New(src)}
	if len(ideas) > 0 {
		s.current = s.rng.IntN(len(ideas))
	}
	return s
}

// Index is the position of the idea in focus.
func (s *Shuffler) Index() int { return s.current }

// Current returns the idea in focus. ok is false for an empty library.
func (s *Shuffler) Current() (Idea, bool) {
	if len(s.ideas) == 0 {
		return Idea{}, false
	}
	return s.ideas[s.current], true
}

// Next moves to a different idea whenever there is more than one and returns
// the new index.
func (s *Shuffler) Next() int {
	n := len(s.ideas)
	if n == 0 {
		return 0
	}
	next := s.rng.IntN(n)
	for next == s.current && n > 1 {
		next = s.rng.IntN(n)
	}
	s.current = next
	return next
}
