package qdrantdb

import "testing"

func TestPointIDDeterministic(t *testing.T) {
	a := PointID("The flyover work resumes next week.")
	b := PointID("The flyover work resumes next week.")
	if a != b {
		t.Errorf("same content produced different IDs: %s vs %s", a, b)
	}
}

func TestPointIDDistinct(t *testing.T) {
	a := PointID("The flyover work resumes next week.")
	b := PointID("The flyover work resumes next month.")
	if a == b {
		t.Errorf("different content produced the same ID: %s", a)
	}
}

func TestCollectionName(t *testing.T) {
	tests := []struct {
		locality string
		want     string
	}{
		{"adyar", "news_adyar"},
		{"mylapore", "news_mylapore"},
	}

	for _, tt := range tests {
		t.Run(tt.locality, func(t *testing.T) {
			if got := CollectionName(tt.locality); got != tt.want {
				t.Errorf("CollectionName(%q) = %q, want %q", tt.locality, got, tt.want)
			}
		})
	}
}
