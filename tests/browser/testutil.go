// Package browser holds the end-to-end scenario suite for the Swag Labs
// storefront. All scenario files acquire the shared fixture via
// setupSuite(t) and drive the site exclusively through page objects.
package browser

import (
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/prianti29/swaglab-heist/internal/config"
	"github.com/prianti29/swaglab-heist/internal/obs"
	"github.com/prianti29/swaglab-heist/internal/pages"
	"github.com/prianti29/swaglab-heist/internal/session"
)

var (
	suiteMu      sync.Mutex
	sharedSuite  *suiteEnv
	suiteSkipMsg string
)

// suiteEnv is the shared fixture: one configuration, one Playwright
// driver, one launched browser. Scenarios never share a page.
type suiteEnv struct {
	Cfg     *config.Config
	Session *session.Session
}

// setupSuite returns the shared fixture, starting it on first use.
// Skips the test when Playwright, Chromium, or the storefront itself is
// unavailable, so the suite degrades to a no-op off-network.
func setupSuite(t *testing.T) *suiteEnv {
	t.Helper()

	suiteMu.Lock()
	defer suiteMu.Unlock()

	if suiteSkipMsg != "" {
		t.Skip(suiteSkipMsg)
	}
	if sharedSuite != nil {
		return sharedSuite
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load configuration: %v", err)
	}

	if err := probeStorefront(cfg.BaseURL); err != nil {
		suiteSkipMsg = "storefront unreachable: " + err.Error()
		t.Skip(suiteSkipMsg)
	}

	sess, err := session.Start(cfg)
	if err != nil {
		suiteSkipMsg = "browser unavailable: " + err.Error()
		t.Skip(suiteSkipMsg)
	}

	sharedSuite = &suiteEnv{Cfg: cfg, Session: sess}
	return sharedSuite
}

// probeStorefront checks the target answers HTTP before any browser
// starts. A plain GET is enough; status is irrelevant.
func probeStorefront(baseURL string) error {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(baseURL)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// newBundle gives the scenario a fresh isolated page with every page
// object bound to it. The page and its context close with the test.
func (env *suiteEnv) newBundle(t *testing.T) *pages.Bundle {
	t.Helper()

	page, cleanup, err := env.Session.NewPage()
	if err != nil {
		t.Fatalf("create page: %v", err)
	}
	t.Cleanup(cleanup)
	return pages.NewBundle(page, env.Cfg)
}

// loggedIn opens the storefront and signs in as the standard user,
// leaving the browser on the inventory screen.
func loggedIn(t *testing.T, env *suiteEnv) *pages.Bundle {
	t.Helper()

	b := env.newBundle(t)
	if err := b.Login.Goto(); err != nil {
		t.Fatalf("open login screen: %v", err)
	}
	if err := b.Login.Login(config.StandardUser); err != nil {
		t.Fatalf("login as standard_user: %v", err)
	}
	if err := b.Inventory.VerifyOn(); err != nil {
		t.Fatalf("expected inventory after login: %v", err)
	}
	return b
}

func cleanupSuite() {
	suiteMu.Lock()
	defer suiteMu.Unlock()
	if sharedSuite != nil {
		sharedSuite.Session.Close()
		sharedSuite = nil
	}
}

func TestMain(m *testing.M) {
	obs.Init()
	code := m.Run()
	cleanupSuite()
	os.Exit(code)
}
