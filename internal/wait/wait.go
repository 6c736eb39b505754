// Package wait blocks until named conditions become true. Conditions
// lean on the driver's event-driven waits where it has one and fall
// back to bounded polling otherwise; nothing here busy-loops. RaceFirst
// waits on several conditions at once and takes whichever resolves
// first, which is the building block of the login-click retry loop.
package wait

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/prianti29/swaglab-heist/internal/errs"
	"github.com/prianti29/swaglab-heist/internal/obs"
)

var log = obs.Pkg("wait")

// Condition is a named wait: Wait blocks until the condition holds or
// the timeout elapses, returning a non-nil error on timeout.
type Condition struct {
	Desc string
	Wait func(timeout time.Duration) error
}

// Visible waits for the element to be visible.
func Visible(el playwright.Locator, desc string) Condition {
	return locatorState(el, desc+" visible", playwright.WaitForSelectorStateVisible)
}

// Hidden waits for the element to be hidden or detached.
func Hidden(el playwright.Locator, desc string) Condition {
	return locatorState(el, desc+" hidden", playwright.WaitForSelectorStateHidden)
}

func locatorState(el playwright.Locator, desc string, state *playwright.WaitForSelectorState) Condition {
	return Condition{
		Desc: desc,
		Wait: func(timeout time.Duration) error {
			return el.WaitFor(playwright.LocatorWaitForOptions{
				State:   state,
				Timeout: playwright.Float(float64(timeout.Milliseconds())),
			})
		},
	}
}

// TextIs polls the element until its text equals expected. The driver
// has no subscription primitive for arbitrary text equality, so this
// is the bounded-polling fallback.
func TextIs(el playwright.Locator, desc, expected string) Condition {
	return Condition{
		Desc: fmt.Sprintf("%s text == %q", desc, expected),
		Wait: func(timeout time.Duration) error {
			deadline := time.Now().Add(timeout)
			for {
				text, err := el.InnerText(playwright.LocatorInnerTextOptions{
					Timeout: playwright.Float(float64(timeout.Milliseconds())),
				})
				if err == nil && strings.TrimSpace(text) == expected {
					return nil
				}
				if time.Now().After(deadline) {
					if err != nil {
						return err
					}
					return fmt.Errorf("text is %q", strings.TrimSpace(text))
				}
				time.Sleep(100 * time.Millisecond)
			}
		},
	}
}

// URLMatches waits for the page URL to match the glob or regexp pattern.
func URLMatches(page playwright.Page, pattern string) Condition {
	return Condition{
		Desc: fmt.Sprintf("url matches %q", pattern),
		Wait: func(timeout time.Duration) error {
			return page.WaitForURL(pattern, playwright.PageWaitForURLOptions{
				Timeout: playwright.Float(float64(timeout.Milliseconds())),
			})
		},
	}
}

// Until blocks on a single condition, failing with a ConditionTimeout
// error carrying the condition description and elapsed time.
func Until(c Condition, timeout time.Duration) error {
	start := time.Now()
	if err := c.Wait(timeout); err != nil {
		return errs.Wrap(
			errs.ConditionTimeout,
			fmt.Sprintf("condition %q not met after %s", c.Desc, time.Since(start).Round(time.Millisecond)),
			err,
		)
	}
	return nil
}

type raceResult struct {
	idx int
	err error
}

// RaceFirst waits on all conditions at once and returns the index of
// the first to resolve. Losing waiters are abandoned; they hit their
// own timeout in the background. If no condition resolves within the
// timeout, it fails with ConditionTimeout naming every condition.
func RaceFirst(conds []Condition, timeout time.Duration) (int, error) {
	if len(conds) == 0 {
		return -1, errs.New(errs.ConditionTimeout, "no conditions to wait on")
	}

	start := time.Now()
	results := make(chan raceResult, len(conds))
	for i, c := range conds {
		go func(idx int, c Condition) {
			results <- raceResult{idx: idx, err: c.Wait(timeout)}
		}(i, c)
	}

	var failed int
	for res := range results {
		if res.err == nil {
			return res.idx, nil
		}
		failed++
		if failed == len(conds) {
			break
		}
	}

	descs := make([]string, len(conds))
	for i, c := range conds {
		descs[i] = c.Desc
	}
	return -1, errs.Errorf(
		errs.ConditionTimeout,
		"none of [%s] met after %s",
		strings.Join(descs, "; "),
		time.Since(start).Round(time.Millisecond),
	)
}

// ClickUntilSettled clicks and races the settle conditions, retrying
// the click when neither resolves within perAttempt, up to attempts.
// Exhausting the attempts is not an error: this is a best-effort nudge
// for targets with unresponsive buttons, and follow-up assertions are
// expected to surface any unmet expectation. Only a failed click
// dispatch itself is returned.
func ClickUntilSettled(click func() error, settle []Condition, perAttempt time.Duration, attempts int) error {
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := click(); err != nil {
			return err
		}
		idx, err := RaceFirst(settle, perAttempt)
		if err == nil {
			log.Debug("click settled", "attempt", attempt, "condition", settle[idx].Desc)
			return nil
		}
		log.Warn("click did not settle, retrying", "attempt", attempt, "of", attempts)
	}
	log.Warn("click never settled, leaving outcome to follow-up assertions", "attempts", attempts)
	return nil
}
