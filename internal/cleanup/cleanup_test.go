package cleanup

import (
	"errors"
	"testing"
)

func TestRunAll_LIFOAndJoin(t *testing.T) {
	var order []int
	boom := errors.New("boom")
	Register(func() error { order = append(order, 1); return nil })
	Register(func() error { order = append(order, 2); return boom })
	Register(nil)

	err := RunAll()
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined error to wrap boom, got %v", err)
	}
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("expected LIFO order, got %v", order)
	}
	if err := RunAll(); err != nil {
		t.Fatalf("expected hooks to run once, got %v", err)
	}
}
