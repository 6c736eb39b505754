// Package session owns the Playwright lifecycle. One Session wraps the
// driver and a launched Chromium; each scenario gets its own isolated
// context and page so no DOM state leaks between scenarios.
package session

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/prianti29/swaglab-heist/internal/config"
	"github.com/prianti29/swaglab-heist/internal/obs"
)

var log = obs.Pkg("session")

// Session holds a running Playwright driver and browser.
type Session struct {
	cfg     *config.Config
	pw      *playwright.Playwright
	browser playwright.Browser
}

// Start launches the Playwright driver and a Chromium browser.
// Browsers must already be installed via
// `go run github.com/playwright-community/playwright-go/cmd/playwright install chromium`.
func Start(cfg *config.Config) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		opts.SlowMo = playwright.Float(float64(cfg.SlowMo.Milliseconds()))
	}

	browser, err := pw.Chromium.Launch(opts)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	log.Info("browser session started", "headless", cfg.Headless, "base_url", cfg.BaseURL)
	return &Session{cfg: cfg, pw: pw, browser: browser}, nil
}

// NewPage creates a fresh context and page with the configured default
// timeouts. The returned cleanup closes both; scenarios own their page
// exclusively for their duration.
func (s *Session) NewPage() (playwright.Page, func(), error) {
	ctx, err := s.browser.NewContext()
	if err != nil {
		return nil, nil, fmt.Errorf("create browser context: %w", err)
	}

	timeoutMS := float64(s.cfg.Timeout.Milliseconds())
	ctx.SetDefaultTimeout(timeoutMS)
	ctx.SetDefaultNavigationTimeout(timeoutMS)

	page, err := ctx.NewPage()
	if err != nil {
		_ = ctx.Close()
		return nil, nil, fmt.Errorf("create page: %w", err)
	}
	page.SetDefaultTimeout(timeoutMS)
	page.SetDefaultNavigationTimeout(timeoutMS)

	cleanup := func() {
		_ = page.Close()
		_ = ctx.Close()
	}
	return page, cleanup, nil
}

// Config returns the configuration the session was started with.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Close tears down the browser and the driver, in that order.
func (s *Session) Close() {
	if s.browser != nil {
		_ = s.browser.Close()
	}
	if s.pw != nil {
		_ = s.pw.Stop()
	}
	log.Info("browser session closed")
}
