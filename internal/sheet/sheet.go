package sheet

import (
	"errors"
	"fmt"
	"strings"
)

// GridSize is the number of rows and columns on a sheet.
const GridSize = 5

// Cells is the number of phrases on one sheet.
const Cells = GridSize * GridSize

// MaxPlayers is the largest supported group.
const MaxPlayers = 6

var (
	ErrPlayerCount         = errors.New("player count out of range")
	ErrEmptyPlayer         = errors.New("empty player name")
	ErrDuplicatePlayer     = errors.New("duplicate player name")
	ErrInsufficientPhrases = errors.New("not enough distinct phrases")
)

// Sheet is one player's 5x5 grid, row-major.
type Sheet struct {
	Player string                     `json:"player"`
	Grid   [GridSize][GridSize]string `json:"grid"`
}

// NewSheet lays out exactly Cells phrases row by row.
func NewSheet(player string, phrases []string) (Sheet, error) {
	if len(phrases) != Cells {
		return Sheet{}, fmt.Errorf("sheet for %s needs %d phrases, got %d", player, Cells, len(phrases))
	}
	s := Sheet{Player: player}
	for i, p := range phrases {
		s.Grid[i/GridSize][i%GridSize] = p
	}
	return s, nil
}

// Phrases returns the cells in row-major order.
func (s Sheet) Phrases() []string {
	out := make([]string, 0, Cells)
	for _, row := range s.Grid {
		out = append(out, row[:]...)
	}
	return out
}

// ParsePlayers splits a comma separated list of names and validates it.
func ParsePlayers(arg string) ([]string, error) {
	parts := strings.Split(arg, ",")
	players := make([]string, 0, len(parts))
	for _, p := range parts {
		players = append(players, strings.TrimSpace(p))
	}
	if err := ValidatePlayers(players); err != nil {
		return nil, err
	}
	return players, nil
}

// ValidatePlayers checks 0 < n <= MaxPlayers and that names are non-empty and unique.
func ValidatePlayers(players []string) error {
	if len(players) == 0 || len(players) > MaxPlayers {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrPlayerCount, len(players), MaxPlayers)
	}
	seen := make(map[string]struct{}, len(players))
	for _, p := range players {
		if p == "" {
			return ErrEmptyPlayer
		}
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}
