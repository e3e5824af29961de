package crawler

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// Browser renders a page in headless Chrome and harvests its links. Used
// for e-paper sites that only populate the issue list from JavaScript.
type Browser struct {
	logger          *zap.Logger
	timeout         time.Duration
	ChromedpOptions []chromedp.ExecAllocatorOption
}

func NewBrowser(logger *zap.Logger, userAgent string) *Browser {
	return &Browser{
		logger:  logger,
		timeout: 60 * time.Second,
		ChromedpOptions: append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.DisableGPU,
			chromedp.NoSandbox,
			chromedp.Headless,
			chromedp.UserAgent(userAgent),

			// Stealth options
			chromedp.Flag("accept-language", "en-US,en;q=0.9"),
			chromedp.Flag("disable-blink-features", "AutomationControlled"),
			chromedp.Flag("exclude-switches", "enable-automation"),
			chromedp.Flag("disable-extensions", ""),
		),
	}
}

// ExtractRenderedLinks navigates to the page, waits for the body and
// returns every absolute a[href] the rendered DOM contains.
func (b *Browser) ExtractRenderedLinks(ctx context.Context, pageURL string) ([]string, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, b.ChromedpOptions...)
	defer allocCancel()
	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()
	timeoutCtx, timeoutCancel := context.WithTimeout(taskCtx, b.timeout)
	defer timeoutCancel()

	var docStatus int64
	chromedp.ListenTarget(timeoutCtx, func(ev interface{}) {
		if resp, ok := ev.(*network.EventResponseReceived); ok {
			if resp.Type == network.ResourceTypeDocument {
				docStatus = resp.Response.Status
			}
		}
	})

	b.logger.Info("rendering page in headless browser", zap.String("url", pageURL))

	var hrefs []string
	err := chromedp.Run(timeoutCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible("body"),
		chromedp.Evaluate(`
			Object.defineProperty(navigator, 'webdriver', {
				get: () => undefined,
			});
		`, nil),
		chromedp.Evaluate(`
			Array.from(document.querySelectorAll('a[href]'))
				.map(a => a.href)
				.filter(href => href && !href.startsWith('javascript:'))
		`, &hrefs),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", pageURL, err)
	}

	b.logger.Info("rendered page",
		zap.String("url", pageURL),
		zap.Int64("document_status", docStatus),
		zap.Int("links", len(hrefs)))

	return hrefs, nil
}
