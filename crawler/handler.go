package crawler

import (
	"context"
	"net/url"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// OnRequest records visits and cuts the crawl short once the PDF cap is
// reached.
func (w *Crawler) OnRequest() colly.RequestCallback {
	return func(r *colly.Request) {
		if w.pdfs.Full() {
			r.Abort()
			return
		}
		w.visits.RecordVisit(r.URL.String())
	}
}

// OnHTML routes discovered links: PDF links go to the tracker, internal
// page links back into the crawl frontier.
func (w *Crawler) OnHTML() colly.HTMLCallback {
	return func(e *colly.HTMLElement) {
		link := e.Attr("href")
		absoluteURL := e.Request.AbsoluteURL(link)
		if absoluteURL == "" {
			return
		}

		if IsPDFLink(absoluteURL) {
			w.recordPDF(absoluteURL)
			return
		}

		if w.pdfs.Full() {
			return
		}

		u, err := url.ParseRequestURI(absoluteURL)
		if err != nil {
			w.logger.Debug("failed to parse URL",
				zap.String("url", absoluteURL),
				zap.Error(err))
			return
		}
		if !w.validator.IsInternal(u) {
			return
		}
		if shouldSkipURL(absoluteURL) {
			w.logger.Debug("skipping low-value URL", zap.String("url", absoluteURL))
			return
		}
		if !w.visits.ShouldVisit(absoluteURL) {
			return
		}

		e.Request.Visit(absoluteURL)
	}
}

func (w *Crawler) recordPDF(absoluteURL string) {
	if w.state != nil {
		fetched, err := w.state.IsPDFFetched(absoluteURL)
		if err != nil {
			w.logger.Error("failed to read pdf state",
				zap.String("url", absoluteURL),
				zap.Error(err))
		}
		if fetched {
			w.logger.Debug("pdf fetched in a previous run", zap.String("url", absoluteURL))
			return
		}
	}
	if w.pdfs.Add(absoluteURL) {
		w.logger.Info("found pdf link", zap.String("url", absoluteURL))
	}
}

// OnError logs failures and retries a request up to MaxRetries times.
func (w *Crawler) OnError(collector *colly.Collector) colly.ErrorCallback {
	return func(r *colly.Response, err error) {
		if r == nil {
			w.logger.Error("request failed", zap.Error(err))
			return
		}

		w.logger.Error("HTTP error",
			zap.String("url", r.Request.URL.String()),
			zap.Int("status_code", r.StatusCode),
			zap.Error(err))

		retryCount, _ := r.Ctx.GetAny("retryCount").(int)
		if retryCount >= w.config.MaxRetries {
			return
		}
		r.Ctx.Put("retryCount", retryCount+1)

		w.logger.Info("retrying request",
			zap.String("url", r.Request.URL.String()),
			zap.Int("retry_attempt", retryCount+1))

		if err := collector.Request("GET", r.Request.URL.String(), nil, r.Ctx, nil); err != nil {
			w.logger.Error("failed to resubmit request",
				zap.String("url", r.Request.URL.String()),
				zap.Error(err))
		}
	}
}

// OnResponse extracts article text from HTML pages and keeps what passes
// the quality gate and the relevance filter.
func (w *Crawler) OnResponse(ctx context.Context) colly.ResponseCallback {
	return func(r *colly.Response) {
		pageURL := r.Request.URL.String()
		w.logger.Info("visited",
			zap.String("url", pageURL),
			zap.Int("status_code", r.StatusCode))

		contentType := strings.ToLower(r.Headers.Get("Content-Type"))
		if !strings.Contains(contentType, "text/html") {
			return
		}

		if !pageWorthExtracting(r.Body) {
			w.logger.Debug("page skipped by dom gate", zap.String("url", pageURL))
			return
		}

		article, err := w.ExtractArticle(r.Body, pageURL)
		if err != nil {
			w.logger.Debug("failed to extract article",
				zap.String("url", pageURL),
				zap.Error(err))
			return
		}
		if article == nil {
			return
		}

		if w.relevance != nil {
			relevant, score, err := w.relevance.IsContentRelevant(ctx, article.Text)
			if err != nil {
				w.logger.Error("relevance check failed",
					zap.String("url", pageURL),
					zap.Error(err))
				return
			}
			if !relevant {
				w.logger.Debug("article not relevant",
					zap.String("url", pageURL),
					zap.Float32("score", score))
				return
			}
		}

		w.keepArticle(article)
	}
}
