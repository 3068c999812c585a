package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// SelfPlayConfig holds settings for batch random-move games.
type SelfPlayConfig struct {
	// Games is the number of games to play
	Games int

	// Workers bounds how many games run at once (0 = one per CPU)
	Workers int

	// MaxPlies ends a game as undecided after this many plies
	MaxPlies int

	// Seed feeds the move picker; each game derives its own stream from it
	Seed int64

	// Promotion is the kind a pawn reaching the last rank becomes
	Promotion chess.Kind

	// SkipDuplicates drops games ending in an already seen final position
	SkipDuplicates bool

	// DuplicateCapacity bounds the remembered final positions (0 = unlimited)
	DuplicateCapacity int
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		Games:     1,
		MaxPlies:  500,
		Seed:      1,
		Promotion: chess.Queen,
	}
}

// Validate checks that the self-play configuration is usable.
func (s *SelfPlayConfig) Validate() error {
	if s.Games < 0 {
		return fmt.Errorf("negative game count (%d): %w", s.Games, errors.ErrInvalidConfig)
	}
	if s.Workers < 0 {
		return fmt.Errorf("negative worker count (%d): %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.MaxPlies <= 0 {
		return fmt.Errorf("ply limit must be positive (%d): %w", s.MaxPlies, errors.ErrInvalidConfig)
	}
	if s.DuplicateCapacity < 0 {
		return fmt.Errorf("negative duplicate capacity (%d): %w", s.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	if !s.Promotion.CanPromoteTo() {
		return fmt.Errorf("cannot promote to %v: %w", s.Promotion, errors.ErrInvalidConfig)
	}
	return nil
}
