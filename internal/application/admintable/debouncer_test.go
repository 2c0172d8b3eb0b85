package admintable

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	clock := &virtualClock{}
	d := NewDebouncer(300*time.Millisecond, clock.AfterFunc)

	var calls atomic.Int32
	var last atomic.Value
	trigger := func(v string) {
		d.Trigger(func() {
			calls.Add(1)
			last.Store(v)
		})
	}

	trigger("a")
	clock.Advance(50 * time.Millisecond)
	trigger("ab")
	clock.Advance(50 * time.Millisecond)
	trigger("abc")

	clock.Advance(299 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	clock.Advance(time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "abc", last.Load())

	clock.Advance(time.Second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_SeparateBurstsFireSeparately(t *testing.T) {
	clock := &virtualClock{}
	d := NewDebouncer(300*time.Millisecond, clock.AfterFunc)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	clock.Advance(400 * time.Millisecond)
	d.Trigger(func() { calls.Add(1) })
	clock.Advance(400 * time.Millisecond)

	assert.Equal(t, int32(2), calls.Load())
}

func TestDebouncer_Stop(t *testing.T) {
	clock := &virtualClock{}
	d := NewDebouncer(0, clock.AfterFunc)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	clock.Advance(time.Second)

	assert.Equal(t, int32(0), calls.Load())
}

func TestDebouncer_RealTimer(t *testing.T) {
	d := NewDebouncer(10*time.Millisecond, nil)
	done := make(chan struct{})
	d.Trigger(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced call never fired")
	}
}
