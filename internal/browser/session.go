// Package browser drives a headless Chrome instance through chromedp and
// exposes the live page through the dom.Page interface, so the fill pipeline
// runs identically against a real browser and an in-memory snapshot.
package browser

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/jonathan/autofill-engine/internal/dom"
)

// Options controls session startup.
type Options struct {
	Headless bool
	Timeout  time.Duration
	Verbose  bool
}

// Session owns a browser tab for the lifetime of one application attempt.
// Requires Chrome/Chromium to be installed on the system.
type Session struct {
	ctx     context.Context
	cancels []context.CancelFunc
	page    *page
	verbose bool
}

func NewSession(ctx context.Context, opts Options) (*Session, error) {
	if opts.Timeout == 0 {
		opts.Timeout = 120 * time.Second
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", opts.Headless),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, opts.Timeout)

	s := &Session{
		ctx:     browserCtx,
		cancels: []context.CancelFunc{cancelTimeout, cancelBrowser, cancelAlloc},
		verbose: opts.Verbose,
	}
	s.page = &page{ctx: browserCtx}

	// Launch eagerly so startup failures surface here instead of on the
	// first navigation.
	if err := chromedp.Run(browserCtx); err != nil {
		s.Close()
		return nil, fmt.Errorf("starting browser: %w", err)
	}
	return s, nil
}

// Navigate loads the given URL and waits for the document body plus a short
// settle delay for script-rendered forms.
func (s *Session) Navigate(url string) error {
	if s.verbose {
		log.Printf("[BROWSER] Navigating to: %s", url)
	}
	err := chromedp.Run(s.ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
	)
	if err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	return nil
}

// Location returns the tab's current URL.
func (s *Session) Location() (string, error) {
	var url string
	if err := chromedp.Run(s.ctx, chromedp.Location(&url)); err != nil {
		return "", fmt.Errorf("reading location: %w", err)
	}
	return url, nil
}

// HTML returns the rendered document markup.
func (s *Session) HTML() (string, error) {
	var html string
	if err := chromedp.Run(s.ctx, chromedp.OuterHTML("html", &html)); err != nil {
		return "", fmt.Errorf("reading page HTML: %w", err)
	}
	if s.verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}
	return html, nil
}

// Page returns the live page as a dom.Page.
func (s *Session) Page() dom.Page {
	return s.page
}

func (s *Session) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}
