package crawler

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// Article is the cleaned text of one HTML news page.
type Article struct {
	URL       string
	Title     string
	Text      string
	Markdown  string
	WordCount int
	Score     float64
}

// ExtractArticle pulls article text out of an HTML page. Trafilatura runs
// first, readability covers pages trafilatura rejects, and pages below the
// quality gate return nil without error.
func (w *Crawler) ExtractArticle(body []byte, pageURL string) (*Article, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page url %s: %w", pageURL, err)
	}

	title, contentHTML, textContent, err := w.extractWithTrafilatura(body, parsedURL)
	if err != nil {
		w.logger.Debug("trafilatura extraction failed, trying readability",
			zap.String("url", pageURL),
			zap.Error(err))
		title, contentHTML, textContent, err = extractWithReadability(body, parsedURL)
		if err != nil {
			return nil, err
		}
	}

	score, wordCount := contentQuality(textContent)
	if score < qualityThreshold {
		w.logger.Debug("page below quality gate",
			zap.String("url", pageURL),
			zap.Float64("score", score),
			zap.Int("word_count", wordCount))
		return nil, nil
	}

	textMd := ""
	if contentHTML != "" {
		textMd, err = htmltomarkdown.ConvertString(contentHTML)
		if err != nil {
			return nil, fmt.Errorf("failed to convert content to markdown: %w", err)
		}
	}

	w.logger.Info("article extracted",
		zap.String("url", pageURL),
		zap.String("title", title),
		zap.Int("word_count", wordCount),
		zap.Float64("score", score))

	return &Article{
		URL:       pageURL,
		Title:     title,
		Text:      textContent,
		Markdown:  textMd,
		WordCount: wordCount,
		Score:     score,
	}, nil
}

func (w *Crawler) extractWithTrafilatura(body []byte, pageURL *url.URL) (title, contentHTML, textContent string, err error) {
	opts := trafilatura.Options{
		OriginalURL: pageURL,
	}

	result, err := trafilatura.Extract(bytes.NewReader(body), opts)
	if err != nil {
		return "", "", "", err
	}
	if result.ContentNode == nil {
		return "", "", "", fmt.Errorf("no content node in %s", pageURL)
	}

	htmlStr, err := renderNodeToString(result.ContentNode)
	if err != nil {
		return "", "", "", err
	}
	return result.Metadata.Title, htmlStr, result.ContentText, nil
}

func extractWithReadability(body []byte, pageURL *url.URL) (title, contentHTML, textContent string, err error) {
	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(body), pageURL)
	if err != nil {
		return "", "", "", err
	}
	return article.Title, article.Content, article.TextContent, nil
}

const qualityThreshold = 67

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// contentQuality scores extracted text on length, vocabulary richness and
// sentence structure. Local news briefs are short, so the length floor sits
// at 80 words.
func contentQuality(text string) (float64, int) {
	words := strings.Fields(text)
	wordCount := len(words)
	if wordCount == 0 {
		return 0, 0
	}

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.Trim(w, ".,!?\"'():;[]{}"))
		if w != "" {
			unique[w] = struct{}{}
		}
	}
	vocabRichness := float64(len(unique)) / float64(wordCount)

	sentences := sentenceSplit.Split(text, -1)
	sentenceCount := len(sentences)
	if sentenceCount == 0 {
		sentenceCount = 1
	}
	avgSentenceLength := float64(wordCount) / float64(sentenceCount)

	score := (0.50*lengthScore(wordCount) + 0.30*richnessScore(vocabRichness) + 0.20*sentenceScore(sentenceCount, avgSentenceLength)) * 100
	return score, wordCount
}

func lengthScore(wordCount int) float64 {
	switch {
	case wordCount < 80:
		return 0.0
	case wordCount > 10000:
		return 0.7
	default:
		return 1.0
	}
}

func richnessScore(vocabRichness float64) float64 {
	switch {
	case vocabRichness < 0.25:
		return 0.0
	case vocabRichness > 0.85:
		return 0.8
	default:
		return 1.0
	}
}

func sentenceScore(sentenceCount int, avgSentenceLength float64) float64 {
	if sentenceCount < 3 {
		return 0.0
	}
	if avgSentenceLength < 8 || avgSentenceLength > 40 {
		return 0.7
	}
	return 1.0
}

func renderNodeToString(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
