package sheet

import (
	"math/rand"
	"strings"

	"github.com/youruser/bingoapp/internal/phrases"
)

// randomsCutoff is the group size from which the randoms pool is left out.
const randomsCutoff = 5

// DefaultSelfSentinel fills a placeholder when nobody else is playing.
const DefaultSelfSentinel = "you"

type Options struct {
	// SelfSentinel replaces the placeholder when there are no other players.
	SelfSentinel string
	// IncludeOwnPool adds the player's own dedicated phrases to their sheet.
	IncludeOwnPool bool
}

func (o Options) sentinel() string {
	if o.SelfSentinel == "" {
		return DefaultSelfSentinel
	}
	return o.SelfSentinel
}

// Candidates builds the distinct phrases eligible for player's sheet.
// The result is freshly allocated; pool is never modified.
func Candidates(pool phrases.Pool, players []string, player string, opt Options, rng *rand.Rand) []string {
	var space []string
	space = append(space, pool.Category(phrases.CategoryAll)...)
	if len(players) < randomsCutoff {
		space = append(space, pool.Category(phrases.CategoryRandoms)...)
	}

	others := make([]string, 0, len(players))
	for _, p := range players {
		if p == player {
			if opt.IncludeOwnPool && !phrases.IsReserved(p) {
				space = append(space, pool.Category(p)...)
			}
			continue
		}
		others = append(others, p)
		if !phrases.IsReserved(p) {
			space = append(space, pool.Category(p)...)
		}
	}

	for _, tmpl := range pool.Category(phrases.CategoryParameterized) {
		name := opt.sentinel()
		if len(others) > 0 {
			name = others[rng.Intn(len(others))]
		}
		space = append(space, strings.Replace(tmpl, phrases.Placeholder, name, 1))
	}

	return dedupe(space)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
