package errs

import (
	"errors"
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

var allCodes = []Code{
	ElementNotFound,
	ElementNotInteractable,
	ConditionTimeout,
	AssertionMismatch,
	NavigationUnexpected,
	Internal,
}

func testCodeOf_RoundtripForTypedErrors(t *rapid.T) {
	code := rapid.SampledFrom(allCodes).Draw(t, "code")
	message := rapid.StringMatching(`[a-zA-Z0-9 _:\-]{1,80}`).Draw(t, "message")

	err := New(code, message)
	if got := CodeOf(err); got != code {
		t.Fatalf("CodeOf(New) mismatch: got=%q want=%q", got, code)
	}
	if got := MessageOf(err); got != message {
		t.Fatalf("MessageOf(New) mismatch: got=%q want=%q", got, message)
	}
}

func TestCodeOf_RoundtripForTypedErrors(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testCodeOf_RoundtripForTypedErrors)
}

func testCodeOf_SurvivesWrapping(t *rapid.T) {
	code := rapid.SampledFrom(allCodes).Draw(t, "code")
	message := rapid.StringMatching(`[a-zA-Z0-9 _:\-]{1,80}`).Draw(t, "message")
	cause := errors.New(rapid.StringMatching(`[a-zA-Z0-9 _:\-]{1,80}`).Draw(t, "cause"))

	err := Wrap(code, message, cause)
	wrapped := fmt.Errorf("outer: %w", err)

	if got := CodeOf(wrapped); got != code {
		t.Fatalf("CodeOf(wrapped) mismatch: got=%q want=%q", got, code)
	}
	if got := MessageOf(wrapped); got != message {
		t.Fatalf("MessageOf(wrapped) mismatch: got=%q want=%q", got, message)
	}
	if !IsCode(wrapped, code) {
		t.Fatalf("IsCode(wrapped, %q) = false, want true", code)
	}
	if !errors.Is(wrapped, err) {
		t.Fatal("wrapped error should match the coded error via errors.Is")
	}
}

func TestCodeOf_SurvivesWrapping(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testCodeOf_SurvivesWrapping)
}

func TestCodeOf_UntypedError(t *testing.T) {
	t.Parallel()

	plain := errors.New("raw driver failure")
	if got := CodeOf(plain); got != Internal {
		t.Fatalf("CodeOf(plain) = %q, want %q", got, Internal)
	}
	if got := MessageOf(plain); got != "raw driver failure" {
		t.Fatalf("MessageOf(plain) = %q, want raw text", got)
	}
	if IsCode(plain, AssertionMismatch) {
		t.Fatal("IsCode(plain, AssertionMismatch) = true, want false")
	}
}

func TestIsCode_WalksNestedCodedErrors(t *testing.T) {
	t.Parallel()

	inner := New(ConditionTimeout, "badge never appeared")
	outer := Wrap(AssertionMismatch, "cart count check failed", inner)

	if !IsCode(outer, AssertionMismatch) {
		t.Fatal("IsCode should match the outermost code")
	}
	if !IsCode(outer, ConditionTimeout) {
		t.Fatal("IsCode should match a code buried in the cause chain")
	}
	if IsCode(outer, ElementNotFound) {
		t.Fatal("IsCode should reject a code absent from the chain")
	}
}

func TestError_EmptyMessageFallsBackToCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("element detached from DOM")
	err := Wrap(ElementNotInteractable, "", cause)
	if got := err.Error(); got != "element detached from DOM" {
		t.Fatalf("Error() = %q, want cause text", got)
	}
	if got := errors.Unwrap(err); got != cause {
		t.Fatalf("Unwrap = %v, want cause", got)
	}
}
