package ingestion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// minStaticTextLength is the extracted length below which a fetched page is assumed
// to be a JavaScript app that needs a real browser to render its content.
const minStaticTextLength = 500

func needsBrowser(text string) bool {
	return len(strings.TrimSpace(text)) < minStaticTextLength
}

// RenderFunc returns the fully rendered HTML of a page.
type RenderFunc func(ctx context.Context, url string) (string, error)

// ChromeRenderer renders pages in headless Chrome. Chrome or Chromium must be
// installed.
func ChromeRenderer(timeout time.Duration) RenderFunc {
	return func(ctx context.Context, url string) (string, error) {
		allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
			append(chromedp.DefaultExecAllocatorOptions[:],
				chromedp.Flag("headless", true),
				chromedp.Flag("disable-gpu", true),
				chromedp.Flag("no-sandbox", true),
				chromedp.Flag("disable-dev-shm-usage", true),
			)...,
		)
		defer cancelAlloc()

		browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
		defer cancelBrowser()

		browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
		defer cancelTimeout()

		var html string
		err := chromedp.Run(browserCtx,
			chromedp.Navigate(url),
			chromedp.WaitReady("body"),
			chromedp.Sleep(2*time.Second),
			chromedp.OuterHTML("html", &html),
		)
		if err != nil {
			return "", fmt.Errorf("browser rendering failed: %w", err)
		}
		return html, nil
	}
}
