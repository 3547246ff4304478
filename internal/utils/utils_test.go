package utils_test

import (
	"note-keeper/internal/utils"
	"testing"
)

func TestCountChars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "ascii", in: "Basic Koala Facts", want: 17},
		{name: "multi-byte runes count once", in: "äöü", want: 3},
		{name: "emoji", in: "🐨🐨", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.CountChars(tt.in); got != tt.want {
				t.Errorf("CountChars(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		matchCount int
		pageSize   int
		want       int
	}{
		{name: "exact fit", matchCount: 10, pageSize: 5, want: 2},
		{name: "remainder adds a page", matchCount: 11, pageSize: 5, want: 3},
		{name: "no matches", matchCount: 0, pageSize: 5, want: 0},
		{name: "zero page size", matchCount: 10, pageSize: 0, want: 0},
		{name: "negative page size", matchCount: 10, pageSize: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.CalculateTotalPages(tt.matchCount, tt.pageSize); got != tt.want {
				t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.matchCount, tt.pageSize, got, tt.want)
			}
		})
	}
}
