package dashboard

import (
	"reflect"
	"strings"
	"testing"

	"hyperlocal/repository"
)

func TestBuildArticles(t *testing.T) {
	records := []repository.Summary{
		{
			Locality:        "adyar",
			Category:        "community_social",
			Headline:        "## Adyar Beach Cleanup Gathers 300 Volunteers",
			ShortSummary:    "2. Volunteers removed two tonnes of waste.",
			DetailedContent: "Volunteers removed two tonnes of waste on Sunday.",
		},
		{
			Locality:     "mylapore",
			Category:     "cultural_events",
			Headline:     "Content Not Available",
			ShortSummary: "Unable to generate summary: rate limited",
			Error:        "rate limited",
		},
		{Locality: "adyar", Category: "general_weekly", Headline: "", DetailedContent: "body"},
		{Locality: "adyar", Category: "general_weekly", Headline: "Headline Only", DetailedContent: ""},
	}

	articles := BuildArticles(records)
	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1 publishable record", len(articles))
	}
	a := articles[0]
	if a.ID != 0 {
		t.Errorf("ID = %d, want 0", a.ID)
	}
	if a.Headline != "Adyar Beach Cleanup Gathers 300 Volunteers" {
		t.Errorf("headline = %q, want heading markers stripped", a.Headline)
	}
	if a.CategoryClass != "community-social" {
		t.Errorf("CategoryClass = %q, want %q", a.CategoryClass, "community-social")
	}
	if a.CategoryDisplay != "Community Social" {
		t.Errorf("CategoryDisplay = %q, want %q", a.CategoryDisplay, "Community Social")
	}
	if a.CardSummary != "2. Volunteers removed two tonnes of waste." {
		t.Errorf("CardSummary = %q", a.CardSummary)
	}
}

func TestBuildArticlesSummaryFallsBackToContent(t *testing.T) {
	records := []repository.Summary{{
		Locality:        "mylapore",
		Category:        "infrastructure_news",
		Headline:        "Tank Works Resume",
		ShortSummary:    "Tank Works Resume",
		DetailedContent: "The tank restoration resumed this week.",
	}}

	articles := BuildArticles(records)
	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1", len(articles))
	}
	if got := articles[0].CardSummary; got != "The tank restoration resumed this week." {
		t.Errorf("CardSummary = %q, want the detailed content fallback", got)
	}
}

func TestBuildArticlesTruncatesCardSummary(t *testing.T) {
	records := []repository.Summary{{
		Locality:        "adyar",
		Category:        "general_weekly",
		Headline:        "Weekly Roundup",
		ShortSummary:    strings.Repeat("x", 200),
		DetailedContent: "body",
	}}

	articles := BuildArticles(records)
	want := strings.Repeat("x", 150) + "..."
	if got := articles[0].CardSummary; got != want {
		t.Errorf("CardSummary has %d chars, want 150 runes plus ellipsis", len(got))
	}
}

func TestContentLines(t *testing.T) {
	content := "First paragraph.\n\n## Schedule\nWork runs through Friday."
	want := []string{"First paragraph.", "Schedule", "Work runs through Friday."}
	if got := contentLines(content); !reflect.DeepEqual(got, want) {
		t.Errorf("contentLines = %q, want %q", got, want)
	}
}

func TestCategoryDisplay(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"community_social", "Community Social"},
		{"classifieds_marketplace", "Classifieds Marketplace"},
		{"general_weekly", "General Weekly"},
	}
	for _, tt := range tests {
		if got := categoryDisplay(tt.category); got != tt.want {
			t.Errorf("categoryDisplay(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}
