package rag

import (
	"strings"
	"testing"
)

func TestParseSummary(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		category     string
		wantHeadline string
		wantShort    string
	}{
		{
			name: "numbered sections",
			content: "Adyar Residents Rally for Cleaner Canals\n" +
				"1. A compelling headline\n" +
				"2. Volunteers cleared twelve tonnes of silt from the canal banks.\n" +
				"3. The drive resumes next weekend.",
			category:     "community_social",
			wantHeadline: "Adyar Residents Rally for Cleaner Canals",
			wantShort: "2. Volunteers cleared twelve tonnes of silt from the canal banks. " +
				"3. The drive resumes next weekend.",
		},
		{
			name: "headline label and hash markers stripped",
			content: "## HEADLINE: San Thome Church Marks Festival Week\n" +
				"2. Parish volunteers hosted the annual fair.",
			category:     "cultural_events",
			wantHeadline: "San Thome Church Marks Festival Week",
			wantShort:    "2. Parish volunteers hosted the annual fair.",
		},
		{
			name: "bold line skipped as headline",
			content: "**Summary**\n" +
				"Kapaleeshwarar Tank Restoration Begins\n" +
				"2. Work started on Monday.",
			category:     "infrastructure_news",
			wantHeadline: "Kapaleeshwarar Tank Restoration Begins",
			wantShort:    "2. Work started on Monday.",
		},
		{
			name:         "line mentioning sentence count is collected",
			content:      "Weekly Roundup\nHere is a 2-3 sentence summary of the week.",
			category:     "general_weekly",
			wantHeadline: "Weekly Roundup",
			wantShort:    "Here is a 2-3 sentence summary of the week.",
		},
		{
			name:         "fallbacks when every line is numbered or bulleted",
			content:      "1. first\n- second",
			category:     "classifieds_marketplace",
			wantHeadline: "Classifieds Marketplace Updates",
			wantShort:    "1. first\n- second...",
		},
		{
			name:         "indented numbered lines are not collected",
			content:      "Headline Line\n  2. indented numbered line",
			category:     "health_education",
			wantHeadline: "Headline Line",
			wantShort:    "Headline Line\n  2. indented numbered line...",
		},
		{
			name:         "empty output",
			content:      "",
			category:     "general_weekly",
			wantHeadline: "General Weekly Updates",
			wantShort:    "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSummary(tt.content, tt.category)
			if got.Headline != tt.wantHeadline {
				t.Errorf("headline = %q, want %q", got.Headline, tt.wantHeadline)
			}
			if got.ShortSummary != tt.wantShort {
				t.Errorf("short summary = %q, want %q", got.ShortSummary, tt.wantShort)
			}
		})
	}
}

func TestParseSummaryTruncation(t *testing.T) {
	content := strings.Repeat("a", 250)
	got := parseSummary(content, "general_weekly")

	if want := strings.Repeat("a", 80); got.Headline != want {
		t.Errorf("headline length = %d, want 80 runes", len(got.Headline))
	}
	if want := strings.Repeat("a", 200) + "..."; got.ShortSummary != want {
		t.Errorf("short summary = %d chars, want 200 runes plus ellipsis", len(got.ShortSummary))
	}
}

func TestFallbackHeadline(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"community_social", "Community Social Updates"},
		{"obituaries_personal", "Obituaries Personal Updates"},
		{"general_weekly", "General Weekly Updates"},
	}
	for _, tt := range tests {
		if got := fallbackHeadline(tt.category); got != tt.want {
			t.Errorf("fallbackHeadline(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}
