package crawler

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestContentQuality(t *testing.T) {
	brief := `The corporation began desilting the storm water drains along the
	beach road on Monday. Workers cleared the stretch between the junction and
	the bus depot before noon. Residents of the nearby colony said flooding had
	worsened every monsoon for the past three years. The ward councillor visited
	the site and promised that the remaining culverts would be cleared within
	two weeks. Shopkeepers on the stretch welcomed the work but asked that the
	silt heaps be removed quickly. A second crew is expected to take up the
	lanes behind the market next week. Officials said the schedule depends on
	the availability of lorries to cart away the debris. The civic body has set
	aside funds for the work under the monsoon preparedness plan.`

	score, words := contentQuality(brief)
	if words < 80 {
		t.Fatalf("test fixture too short: %d words", words)
	}
	if score < qualityThreshold {
		t.Errorf("news brief should pass the gate, score = %.1f", score)
	}

	navJunk := "Home News Sports Contact About Login"
	score, _ = contentQuality(navJunk)
	if score >= qualityThreshold {
		t.Errorf("navigation junk should fail the gate, score = %.1f", score)
	}

	score, words = contentQuality("")
	if score != 0 || words != 0 {
		t.Errorf("empty text should score 0, got %.1f with %d words", score, words)
	}
}

func TestExtractArticle(t *testing.T) {
	page := `<!DOCTYPE html>
<html>
<head><title>Storm water drain work begins</title></head>
<body>
<header><a href="/">Home</a> <a href="/epaper">E-Paper</a></header>
<article>
<h1>Storm water drain work begins on beach road</h1>
<p>The corporation began desilting the storm water drains along the beach road
on Monday. Workers cleared the stretch between the junction and the bus depot
before noon. Residents of the nearby colony said flooding had worsened every
monsoon for the past three years.</p>
<p>The ward councillor visited the site and promised that the remaining
culverts would be cleared within two weeks. Shopkeepers on the stretch
welcomed the work but asked that the silt heaps be removed quickly. A second
crew is expected to take up the lanes behind the market next week.</p>
<p>Officials said the schedule depends on the availability of lorries to cart
away the debris. The civic body has set aside funds for the work under the
monsoon preparedness plan and expects to finish before the rains arrive in
October this year.</p>
</article>
<footer>Contact us at the office</footer>
</body>
</html>`

	c, err := NewCrawler("https://mylaporetimes.com", nil, nil, zap.NewNop(), testConfig())
	if err != nil {
		t.Fatalf("NewCrawler() error = %v", err)
	}

	article, err := c.ExtractArticle([]byte(page), "https://mylaporetimes.com/news/drain-work")
	if err != nil {
		t.Fatalf("ExtractArticle() error = %v", err)
	}
	if article == nil {
		t.Fatal("expected article to pass the quality gate")
	}

	if article.WordCount < 80 {
		t.Errorf("WordCount = %d, want at least 80", article.WordCount)
	}
	if !strings.Contains(article.Text, "desilting the storm water drains") {
		t.Errorf("article text missing body content: %q", article.Text)
	}
	if article.Score < qualityThreshold {
		t.Errorf("Score = %.1f, want at least %d", article.Score, qualityThreshold)
	}
}

func TestExtractArticleRejectsThinPages(t *testing.T) {
	page := `<html><head><title>Links</title></head><body>
<p>Quick links for readers.</p>
<a href="/one">One</a> <a href="/two">Two</a>
</body></html>`

	c, err := NewCrawler("https://mylaporetimes.com", nil, nil, zap.NewNop(), testConfig())
	if err != nil {
		t.Fatalf("NewCrawler() error = %v", err)
	}

	article, err := c.ExtractArticle([]byte(page), "https://mylaporetimes.com/links")
	if err == nil && article != nil {
		t.Errorf("thin page should not produce an article, got %q", article.Text)
	}
}
