package scoring

import (
	"strings"
	"testing"
)

func TestScoreFormattingFullResume(t *testing.T) {
	// All five section signals plus a word count in the ideal band. The raw
	// sum is 120; the clamp holds it at 100.
	text := "Contact: jane@example.com phone 555-123-4567\n" +
		"Summary of qualifications\n" +
		"Experience at several companies\n" +
		"Education and degree details\n" +
		"Skills and tools\n" +
		strings.Repeat("banana ", 400)
	got := scoreFormatting(text)
	if got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestScoreFormattingNoSignals(t *testing.T) {
	got := scoreFormatting("banana banana banana")
	if got != 0 {
		t.Fatalf("expected 0 for tiny text without sections, got %v", got)
	}
}

func TestScoreFormattingLengthBonusOnly(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  float64
	}{
		{"below minimum", 150, 0},
		{"above 200", 250, 10},
		{"ideal band", 500, 20},
		{"over long", 900, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text := strings.TrimSpace(strings.Repeat("banana ", tc.words))
			if got := scoreFormatting(text); got != tc.want {
				t.Fatalf("words=%d: expected %v, got %v", tc.words, tc.want, got)
			}
		})
	}
}

func TestScoreFormattingSectionPoints(t *testing.T) {
	// Two signals, no length bonus.
	got := scoreFormatting("Experience\nEducation")
	if got != 40 {
		t.Fatalf("expected 40 for two sections, got %v", got)
	}
}
