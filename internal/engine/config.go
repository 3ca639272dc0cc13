package engine

import (
	"math/rand/v2"
	"time"
)

// GameConfig holds configuration for creating a new game.
type GameConfig struct {
	// Rand shuffles the deck. It is used once, when the game starts.
	Rand *rand.Rand
}

// DefaultConfig seeds a fresh shuffle from the clock.
func DefaultConfig() GameConfig {
	seed := uint64(time.Now().UnixNano())
	return GameConfig{Rand: rand.New(rand.NewPCG(seed, seed>>1))}
}

// SeededConfig returns a config whose deal is fully determined by seed.
func SeededConfig(seed uint64) GameConfig {
	return GameConfig{Rand: rand.New(rand.NewPCG(seed, seed))}
}
