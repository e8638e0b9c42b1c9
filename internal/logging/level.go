package logging

import (
	"errors"
	"fmt"
)

// Rank is the numeric severity of a level. It orders levels and keys every
// per-level table in this package.
type Rank int

const (
	// RankDebug is for verbose diagnostics, only emitted with log-debug on.
	RankDebug Rank = iota
	// RankInfo is for normal operational events.
	RankInfo
	// RankWarning is for unexpected conditions that do not stop the operation.
	RankWarning
	// RankError is for failures that affect functionality.
	RankError
	// RankCritical is for failures the process may not survive.
	RankCritical
)

// ErrRankOutOfRange reports a rank outside the registry.
var ErrRankOutOfRange = errors.New("log rank out of range")

// Level describes one severity level.
type Level struct {
	Name  string
	Rank  Rank
	Glyph string
}

var levelRegistry = map[Rank]Level{
	RankDebug:    {Name: "DEBUG", Rank: RankDebug, Glyph: "🕸️"},
	RankInfo:     {Name: "INFO", Rank: RankInfo, Glyph: "ℹ️"},
	RankWarning:  {Name: "WARNING", Rank: RankWarning, Glyph: "⚠️"},
	RankError:    {Name: "ERROR", Rank: RankError, Glyph: "🚨"},
	RankCritical: {Name: "CRITICAL", Rank: RankCritical, Glyph: "🚨🚨"},
}

var rankOrder = []Rank{RankDebug, RankInfo, RankWarning, RankError, RankCritical}

// LevelAt resolves a rank to its level.
func LevelAt(rank Rank) (Level, error) {
	level, ok := levelRegistry[rank]
	if !ok {
		return Level{}, fmt.Errorf("%w: %d", ErrRankOutOfRange, int(rank))
	}
	return level, nil
}

// Levels returns every level in ascending severity.
func Levels() []Level {
	out := make([]Level, 0, len(rankOrder))
	for _, rank := range rankOrder {
		out = append(out, levelRegistry[rank])
	}
	return out
}

// String returns the canonical level name for the rank.
func (r Rank) String() string {
	if level, ok := levelRegistry[r]; ok {
		return level.Name
	}
	return "UNKNOWN"
}
