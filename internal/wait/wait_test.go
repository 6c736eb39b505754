package wait

import (
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prianti29/swaglab-heist/internal/errs"
	"github.com/prianti29/swaglab-heist/internal/obs"
)

func TestMain(m *testing.M) {
	restore := obs.SetOutputForTests(io.Discard)
	defer restore()
	m.Run()
}

func resolveAfter(d time.Duration) Condition {
	return Condition{
		Desc: "resolves after " + d.String(),
		Wait: func(timeout time.Duration) error {
			if d > timeout {
				time.Sleep(timeout)
				return errors.New("timed out")
			}
			time.Sleep(d)
			return nil
		},
	}
}

func neverResolves() Condition {
	return Condition{
		Desc: "never resolves",
		Wait: func(timeout time.Duration) error {
			time.Sleep(timeout)
			return errors.New("timed out")
		},
	}
}

func TestUntil_Success(t *testing.T) {
	t.Parallel()
	if err := Until(resolveAfter(time.Millisecond), time.Second); err != nil {
		t.Fatalf("Until failed: %v", err)
	}
}

func TestUntil_TimeoutCarriesDescription(t *testing.T) {
	t.Parallel()
	err := Until(neverResolves(), 20*time.Millisecond)
	if err == nil {
		t.Fatal("Until should fail on timeout")
	}
	if !errs.IsCode(err, errs.ConditionTimeout) {
		t.Fatalf("code = %q, want condition_timeout", errs.CodeOf(err))
	}
	msg := errs.MessageOf(err)
	if want := `condition "never resolves" not met`; !strings.Contains(msg, want) {
		t.Fatalf("message %q should contain %q", msg, want)
	}
}

func TestRaceFirst_FirstToResolveWins(t *testing.T) {
	t.Parallel()
	idx, err := RaceFirst([]Condition{
		resolveAfter(150 * time.Millisecond),
		resolveAfter(5 * time.Millisecond),
		neverResolves(),
	}, time.Second)
	if err != nil {
		t.Fatalf("RaceFirst failed: %v", err)
	}
	if idx != 1 {
		t.Fatalf("winning index = %d, want 1", idx)
	}
}

func TestRaceFirst_AllTimeOut(t *testing.T) {
	t.Parallel()
	_, err := RaceFirst([]Condition{neverResolves(), neverResolves()}, 20*time.Millisecond)
	if err == nil {
		t.Fatal("RaceFirst should fail when nothing resolves")
	}
	if !errs.IsCode(err, errs.ConditionTimeout) {
		t.Fatalf("code = %q, want condition_timeout", errs.CodeOf(err))
	}
}

func TestRaceFirst_NoConditions(t *testing.T) {
	t.Parallel()
	if _, err := RaceFirst(nil, time.Second); err == nil {
		t.Fatal("RaceFirst with no conditions should fail")
	}
}

func TestClickUntilSettled_StopsOnFirstSettle(t *testing.T) {
	t.Parallel()
	var clicks atomic.Int32
	err := ClickUntilSettled(
		func() error { clicks.Add(1); return nil },
		[]Condition{resolveAfter(time.Millisecond)},
		100*time.Millisecond,
		3,
	)
	if err != nil {
		t.Fatalf("ClickUntilSettled failed: %v", err)
	}
	if got := clicks.Load(); got != 1 {
		t.Fatalf("click count = %d, want 1", got)
	}
}

func TestClickUntilSettled_RetriesUpToCapThenReturnsNil(t *testing.T) {
	t.Parallel()
	var clicks atomic.Int32
	err := ClickUntilSettled(
		func() error { clicks.Add(1); return nil },
		[]Condition{neverResolves()},
		10*time.Millisecond,
		3,
	)
	if err != nil {
		t.Fatalf("exhausted attempts should not be an error, got: %v", err)
	}
	if got := clicks.Load(); got != 3 {
		t.Fatalf("click count = %d, want the full attempt cap of 3", got)
	}
}

func TestClickUntilSettled_SettlesOnLaterAttempt(t *testing.T) {
	t.Parallel()
	var clicks atomic.Int32
	settle := Condition{
		Desc: "settles on second attempt",
		Wait: func(timeout time.Duration) error {
			if clicks.Load() >= 2 {
				return nil
			}
			time.Sleep(timeout)
			return errors.New("timed out")
		},
	}
	err := ClickUntilSettled(
		func() error { clicks.Add(1); return nil },
		[]Condition{settle},
		10*time.Millisecond,
		3,
	)
	if err != nil {
		t.Fatalf("ClickUntilSettled failed: %v", err)
	}
	if got := clicks.Load(); got != 2 {
		t.Fatalf("click count = %d, want 2", got)
	}
}

func TestClickUntilSettled_ClickDispatchFailurePropagates(t *testing.T) {
	t.Parallel()
	boom := errs.New(errs.ElementNotInteractable, "click login button")
	err := ClickUntilSettled(
		func() error { return boom },
		[]Condition{neverResolves()},
		10*time.Millisecond,
		3,
	)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the dispatch failure", err)
	}
}
