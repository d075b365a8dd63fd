package sheet

import (
	"fmt"
	"math/rand"

	"github.com/youruser/bingoapp/internal/phrases"
)

// Sampler draws sheets from a phrase pool. It is not safe for concurrent use.
type Sampler struct {
	rng  *rand.Rand
	opts Options
}

// NewSampler returns a Sampler whose output is fully determined by seed.
func NewSampler(seed int64, opts Options) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed)), opts: opts}
}

// Sample draws one sheet per player, in player order.
// Nothing is returned unless every player could be filled.
func (s *Sampler) Sample(pool phrases.Pool, players []string) ([]Sheet, error) {
	if err := ValidatePlayers(players); err != nil {
		return nil, err
	}
	sheets := make([]Sheet, 0, len(players))
	for _, player := range players {
		space := Candidates(pool, players, player, s.opts, s.rng)
		if len(space) < Cells {
			return nil, fmt.Errorf("%w for %s: have %d, need %d", ErrInsufficientPhrases, player, len(space), Cells)
		}
		picked := make([]string, 0, Cells)
		for _, idx := range s.rng.Perm(len(space))[:Cells] {
			picked = append(picked, space[idx])
		}
		sh, err := NewSheet(player, picked)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sh)
	}
	return sheets, nil
}
