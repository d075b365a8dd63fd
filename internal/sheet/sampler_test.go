package sheet

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/bingoapp/internal/phrases"
)

func numbered(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s %d", prefix, i)
	}
	return out
}

func defaultPool(t *testing.T) phrases.Pool {
	t.Helper()
	p, err := phrases.Default()
	require.NoError(t, err)
	return p
}

func TestSampleProducesDistinctSheets(t *testing.T) {
	pool := defaultPool(t)
	groups := [][]string{
		{"markus"},
		{"markus", "sven"},
		{"markus", "sven", "helen"},
		{"markus", "sven", "helen", "hanna"},
		{"markus", "sven", "helen", "hanna", "tita"},
		{"markus", "sven", "helen", "hanna", "tita", "seb"},
		{"someone", "unknown"},
	}
	for _, players := range groups {
		t.Run(strings.Join(players, ","), func(t *testing.T) {
			sheets, err := NewSampler(42, Options{}).Sample(pool, players)
			require.NoError(t, err)
			require.Len(t, sheets, len(players))
			for i, sh := range sheets {
				assert.Equal(t, players[i], sh.Player)
				got := sh.Phrases()
				assert.Len(t, got, Cells)
				seen := map[string]bool{}
				for _, p := range got {
					assert.NotEmpty(t, p)
					assert.False(t, seen[p], "duplicate phrase %q", p)
					seen[p] = true
				}
			}
		})
	}
}

func TestSampleIsDeterministicForSeed(t *testing.T) {
	pool := defaultPool(t)
	players := []string{"markus", "sven"}

	a, err := NewSampler(7, Options{}).Sample(pool, players)
	require.NoError(t, err)
	b, err := NewSampler(7, Options{}).Sample(pool, players)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewSampler(8, Options{}).Sample(pool, players)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRandomsOnlyForSmallGroups(t *testing.T) {
	pool := phrases.NewPool(map[string][]string{
		phrases.CategoryAll:     numbered("shared", 30),
		phrases.CategoryRandoms: {"random guest"},
	})
	rng := rand.New(rand.NewSource(1))

	small := []string{"a", "b", "c", "d"}
	assert.Contains(t, Candidates(pool, small, "a", Options{}, rng), "random guest")

	large := []string{"a", "b", "c", "d", "e"}
	assert.NotContains(t, Candidates(pool, large, "a", Options{}, rng), "random guest")
}

func TestCandidatesUseOtherPlayersPools(t *testing.T) {
	pool := phrases.NewPool(map[string][]string{
		phrases.CategoryAll: {"shared"},
		"markus":            {"Markus bommer lineup"},
		"sven":              {"Sven spiller CS2"},
	})
	rng := rand.New(rand.NewSource(1))
	players := []string{"markus", "sven"}

	got := Candidates(pool, players, "markus", Options{}, rng)
	assert.Equal(t, []string{"shared", "Sven spiller CS2"}, got)

	got = Candidates(pool, players, "markus", Options{IncludeOwnPool: true}, rng)
	assert.Equal(t, []string{"shared", "Markus bommer lineup", "Sven spiller CS2"}, got)
}

func TestParameterizedNeverUsesOwnName(t *testing.T) {
	pool := phrases.NewPool(map[string][]string{
		phrases.CategoryParameterized: {"{} acer", "{} clutcher", "{} topfragger"},
	})
	players := []string{"markus", "sven", "helen"}
	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, player := range players {
			for _, c := range Candidates(pool, players, player, Options{}, rng) {
				assert.False(t, strings.HasPrefix(c, player+" "), "seed %d: %q on %s's sheet", seed, c, player)
				assert.NotContains(t, c, phrases.Placeholder)
			}
		}
	}
}

func TestParameterizedFallsBackToSentinel(t *testing.T) {
	pool := phrases.NewPool(map[string][]string{
		phrases.CategoryParameterized: {"{} acer"},
	})
	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, []string{"you acer"}, Candidates(pool, []string{"solo"}, "solo", Options{}, rng))
	assert.Equal(t, []string{"du acer"}, Candidates(pool, []string{"solo"}, "solo", Options{SelfSentinel: "du"}, rng))
}

func TestCandidatesDoNotMutatePool(t *testing.T) {
	pool := phrases.NewPool(map[string][]string{
		phrases.CategoryAll:     numbered("shared", 25),
		phrases.CategoryRandoms: {"random guest"},
	})
	s := NewSampler(1, Options{})
	for i := 0; i < 5; i++ {
		_, err := s.Sample(pool, []string{"a", "b"})
		require.NoError(t, err)
	}
	assert.Len(t, pool.Category(phrases.CategoryAll), 25)
	assert.Len(t, pool.Category(phrases.CategoryRandoms), 1)
}

func TestSampleInsufficientPhrases(t *testing.T) {
	pool := phrases.NewPool(map[string][]string{
		phrases.CategoryAll: append(numbered("shared", 20), "dup", "dup", "dup", "dup", "dup", "dup"),
	})
	_, err := NewSampler(1, Options{}).Sample(pool, []string{"markus"})
	require.ErrorIs(t, err, ErrInsufficientPhrases)
	assert.Contains(t, err.Error(), "markus")
}

func TestSampleRejectsBadPlayerLists(t *testing.T) {
	pool := defaultPool(t)
	cases := []struct {
		players []string
		want    error
	}{
		{nil, ErrPlayerCount},
		{[]string{"a", "b", "c", "d", "e", "f", "g"}, ErrPlayerCount},
		{[]string{"a", "a"}, ErrDuplicatePlayer},
		{[]string{"a", ""}, ErrEmptyPlayer},
	}
	for _, tc := range cases {
		_, err := NewSampler(1, Options{}).Sample(pool, tc.players)
		assert.ErrorIs(t, err, tc.want, "players %v", tc.players)
	}
}
