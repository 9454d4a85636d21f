package catalog

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDebouncerRunsOnlyLatest(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	got := make(chan string, 3)

	for _, q := range []string{"p", "pi", "pik"} {
		d.Trigger(func() { got <- q })
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case q := <-got:
		assert.Equal(t, "pik", q)
	case <-time.After(time.Second):
		t.Fatal("debounced call never ran")
	}

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, got)
	assert.False(t, d.Pending())
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	assert.True(t, d.Pending())
	assert.True(t, d.Cancel())
	assert.False(t, d.Cancel())

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestDebouncerSeparatedTriggersBothRun(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	time.Sleep(40 * time.Millisecond)
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(40 * time.Millisecond)

	assert.Equal(t, int32(2), calls.Load())
}
