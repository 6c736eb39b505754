// Package pages holds the page objects of the storefront suite. Each
// screen gets one type composing the locator, action, and wait layers
// into named domain operations. Action methods only act; verification
// methods return coded errors carrying expected vs actual values.
package pages

import (
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/prianti29/swaglab-heist/internal/actions"
	"github.com/prianti29/swaglab-heist/internal/config"
	"github.com/prianti29/swaglab-heist/internal/errs"
	"github.com/prianti29/swaglab-heist/internal/locator"
	"github.com/prianti29/swaglab-heist/internal/wait"
)

// LoginPage drives the credential form at the storefront root.
type LoginPage struct {
	page playwright.Page
	cfg  *config.Config
}

// NewLoginPage binds a login page object to a browser page.
func NewLoginPage(page playwright.Page, cfg *config.Config) *LoginPage {
	return &LoginPage{page: page, cfg: cfg}
}

// Goto navigates to the login screen.
func (p *LoginPage) Goto() error {
	if _, err := p.page.Goto(p.cfg.BaseURL+"/", playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return errs.Wrap(errs.NavigationUnexpected, "navigate to login screen", err)
	}
	return nil
}

// Login fills the credential form and submits it. Some profiles render
// a sluggish login button, so the click races "button gone" against
// "error shown" and retries on a bounded loop; an exhausted loop is
// left for the caller's follow-up verification to judge.
func (p *LoginPage) Login(creds config.Credentials) error {
	if err := actions.Fill(locator.UsernameInput(p.page), "username input", creds.Username); err != nil {
		return err
	}
	if err := actions.Fill(locator.PasswordInput(p.page), "password input", creds.Password); err != nil {
		return err
	}

	loginButton := p.page.Locator(locator.SelLoginButton)
	errorBox := p.page.Locator(locator.SelErrorBox)
	return wait.ClickUntilSettled(
		func() error { return actions.Click(loginButton, "login button") },
		[]wait.Condition{
			wait.Hidden(loginButton, "login button"),
			wait.Visible(errorBox, "login error"),
		},
		p.cfg.LoginSettleTimeout,
		p.cfg.LoginClickAttempts,
	)
}

// VerifyVisible asserts the login screen is rendered.
func (p *LoginPage) VerifyVisible() error {
	return wait.Until(wait.Visible(p.page.Locator(locator.SelLoginLogo), "login logo"), p.cfg.Timeout)
}

// VerifyTitle asserts the document title is the storefront's.
func (p *LoginPage) VerifyTitle() error {
	title, err := p.page.Title()
	if err != nil {
		return errs.Wrap(errs.Internal, "read page title", err)
	}
	if title != "Swag Labs" {
		return errs.Errorf(errs.AssertionMismatch, "page title: expected %q, actual %q", "Swag Labs", title)
	}
	return nil
}

// VerifyErrorContains asserts the rejection banner is visible and its
// text contains the expected fragment.
func (p *LoginPage) VerifyErrorContains(expected string) error {
	errorBox := p.page.Locator(locator.SelErrorBox)
	if err := wait.Until(wait.Visible(errorBox, "login error"), p.cfg.Timeout); err != nil {
		return err
	}
	text, err := errorBox.InnerText()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "read login error text", err)
	}
	if !strings.Contains(text, expected) {
		return errs.Errorf(errs.AssertionMismatch,
			"login error: expected text containing %q, actual %q", expected, text)
	}
	return nil
}
