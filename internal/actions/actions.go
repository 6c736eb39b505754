// Package actions dispatches user actions against resolved elements.
// It does no waiting of its own: callers establish their wait contract
// first, and a dispatch that still fails surfaces as an
// ElementNotInteractable coded error naming the semantic element.
package actions

import (
	"github.com/playwright-community/playwright-go"

	"github.com/prianti29/swaglab-heist/internal/errs"
)

// Fill replaces the element's value with text.
func Fill(el playwright.Locator, desc, text string) error {
	if err := el.Fill(text); err != nil {
		return errs.Wrap(errs.ElementNotInteractable, "fill "+desc, err)
	}
	return nil
}

// ClearAndFill clears the element before filling, for fields reused
// across iterations without a navigation in between.
func ClearAndFill(el playwright.Locator, desc, text string) error {
	if err := el.Clear(); err != nil {
		return errs.Wrap(errs.ElementNotInteractable, "clear "+desc, err)
	}
	return Fill(el, desc, text)
}

// Click clicks the element.
func Click(el playwright.Locator, desc string) error {
	if err := el.Click(); err != nil {
		return errs.Wrap(errs.ElementNotInteractable, "click "+desc, err)
	}
	return nil
}

// SelectOption selects the option with the given value.
func SelectOption(el playwright.Locator, desc, value string) error {
	if _, err := el.SelectOption(playwright.SelectOptionValues{
		Values: playwright.StringSlice(value),
	}); err != nil {
		return errs.Wrap(errs.ElementNotInteractable, "select "+value+" in "+desc, err)
	}
	return nil
}
