package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLevelAt(t *testing.T) {
	tests := []struct {
		rank  Rank
		name  string
		glyph string
	}{
		{RankDebug, "DEBUG", "🕸️"},
		{RankInfo, "INFO", "ℹ️"},
		{RankWarning, "WARNING", "⚠️"},
		{RankError, "ERROR", "🚨"},
		{RankCritical, "CRITICAL", "🚨🚨"},
	}
	for _, tt := range tests {
		level, err := LevelAt(tt.rank)
		if err != nil {
			t.Fatalf("LevelAt(%d) returned error: %v", tt.rank, err)
		}
		if level.Name != tt.name || level.Glyph != tt.glyph || level.Rank != tt.rank {
			t.Errorf("LevelAt(%d) = %+v", tt.rank, level)
		}
		if got := tt.rank.String(); got != tt.name {
			t.Errorf("Rank(%d).String() = %q, want %q", tt.rank, got, tt.name)
		}
	}
}

func TestLevelAtOutOfRange(t *testing.T) {
	for _, rank := range []Rank{-1, 5, 100} {
		if _, err := LevelAt(rank); !errors.Is(err, ErrRankOutOfRange) {
			t.Errorf("LevelAt(%d) error = %v, want ErrRankOutOfRange", rank, err)
		}
	}
	if got := Rank(9).String(); got != "UNKNOWN" {
		t.Errorf("Rank(9).String() = %q", got)
	}
}

func TestLevelsAreDenseAndOrdered(t *testing.T) {
	levels := Levels()
	if len(levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(levels))
	}
	for i, level := range levels {
		if level.Rank != Rank(i) {
			t.Errorf("levels[%d].Rank = %d", i, level.Rank)
		}
	}
}

func TestLevelTableListsEveryLevel(t *testing.T) {
	var out bytes.Buffer
	PrintLevelInfo(&out)

	table := out.String()
	for _, want := range []string{"Logging Levels", "RANK", "GLYPH", "LEVEL", "BADGE", "[w]"} {
		if !strings.Contains(table, want) {
			t.Errorf("expected level table to contain %q:\n%s", want, table)
		}
	}
	for _, level := range Levels() {
		if !strings.Contains(table, level.Name) || !strings.Contains(table, level.Glyph) {
			t.Errorf("expected level table to list %s %s:\n%s", level.Name, level.Glyph, table)
		}
	}
}
