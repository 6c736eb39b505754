package pages

import (
	"regexp"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/prianti29/swaglab-heist/internal/actions"
	"github.com/prianti29/swaglab-heist/internal/config"
	"github.com/prianti29/swaglab-heist/internal/errs"
	"github.com/prianti29/swaglab-heist/internal/locator"
)

// SocialLink names a footer social media icon.
type SocialLink string

const (
	SocialTwitter  SocialLink = "twitter"
	SocialFacebook SocialLink = "facebook"
	SocialLinkedIn SocialLink = "linkedin"
)

// The destinations the icons must land on. Twitter tolerates the x.com
// rebrand.
var socialURLPatterns = map[SocialLink]*regexp.Regexp{
	SocialTwitter:  regexp.MustCompile(`(twitter\.com|x\.com)/saucelabs`),
	SocialFacebook: regexp.MustCompile(`facebook\.com/saucelabs`),
	SocialLinkedIn: regexp.MustCompile(`linkedin\.com/company/sauce-labs`),
}

var socialSelectors = map[SocialLink]string{
	SocialTwitter:  locator.SelTwitterLink,
	SocialFacebook: locator.SelFacebookLink,
	SocialLinkedIn: locator.SelLinkedInLink,
}

// FooterPage drives the footer rendered on every post-login screen.
type FooterPage struct {
	page playwright.Page
	cfg  *config.Config
}

// NewFooterPage binds a footer page object to a browser page.
func NewFooterPage(page playwright.Page, cfg *config.Config) *FooterPage {
	return &FooterPage{page: page, cfg: cfg}
}

// VerifySocialRedirection clicks a social icon, adopts the tab it
// opens, and asserts the tab lands on the expected site. The secondary
// tab is closed on success and failure alike.
func (p *FooterPage) VerifySocialRedirection(link SocialLink) error {
	sel, ok := socialSelectors[link]
	if !ok {
		return errs.Errorf(errs.ElementNotFound, "unknown social link %q", link)
	}
	pattern := socialURLPatterns[link]

	var clickErr error
	newPage, err := p.page.Context().ExpectPage(func() error {
		clickErr = actions.Click(p.page.Locator(sel), string(link)+" icon")
		return clickErr
	}, playwright.BrowserContextExpectPageOptions{
		Timeout: playwright.Float(float64(p.cfg.Timeout.Milliseconds())),
	})
	if clickErr != nil {
		// Dispatch failure, not a missing tab.
		return clickErr
	}
	if err != nil {
		return errs.Wrap(errs.ConditionTimeout, "no tab opened for the "+string(link)+" icon", err)
	}
	defer newPage.Close()

	if err := newPage.WaitForURL(pattern, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(p.cfg.Timeout.Milliseconds())),
	}); err != nil {
		return errs.Errorf(errs.NavigationUnexpected,
			"%s icon: expected a URL matching %s, actual %s", link, pattern, newPage.URL())
	}
	return nil
}

// VerifyCopyright asserts the footer copyright mentions Sauce Labs.
func (p *FooterPage) VerifyCopyright() error {
	text, err := p.page.Locator(locator.SelCopyright).InnerText()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "read footer copyright", err)
	}
	if !strings.Contains(text, "Sauce Labs") {
		return errs.Errorf(errs.AssertionMismatch,
			"footer copyright: expected a Sauce Labs notice, actual %q", text)
	}
	return nil
}
