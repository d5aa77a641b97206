package job

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/error404/rfid-client/client/internal/keyqueue"
)

var (
	_ keyqueue.Job     = Func(nil)
	_ keyqueue.Skipper = Skippable{}
)

func TestFunc_NilGuard(t *testing.T) {
	t.Parallel()
	var f Func
	if err := f.Run(context.Background()); !errors.Is(err, ErrNilJobFunc) {
		t.Fatalf("expected ErrNilJobFunc, got %v", err)
	}
}

func TestFunc_PropagatesError(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("refused")
	if err := New(func(context.Context) error { return sentinel }).Run(context.Background()); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel, got %v", err)
	}
}

func TestWithSkip(t *testing.T) {
	t.Parallel()
	var ran bool
	var skipped error
	j := WithSkip(func(context.Context) error { ran = true; return nil }, func(err error) { skipped = err })

	if err := j.Run(context.Background()); err != nil || !ran {
		t.Fatalf("run: ran=%v err=%v", ran, err)
	}
	j.Skip(context.Canceled)
	if !errors.Is(skipped, context.Canceled) {
		t.Fatalf("skip hook got %v", skipped)
	}

	// A nil hook is tolerated.
	Skippable{Func: New(func(context.Context) error { return nil })}.Skip(context.Canceled)
}

func TestBucketLabel_DeterministicAndRange(t *testing.T) {
	t.Parallel()
	for _, key := range []string{"", "get_data", "A1", "04:A2:2B:1C", "rfid with spaces"} {
		got := BucketLabel(key)
		if got != BucketLabel(key) {
			t.Fatalf("BucketLabel not deterministic for %q", key)
		}
		n, err := strconv.Atoi(got)
		if err != nil || n < 0 || n > 31 {
			t.Fatalf("BucketLabel out of range for %q: %s", key, got)
		}
	}
}
