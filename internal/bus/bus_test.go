package bus

import (
	"testing"

	"go.uber.org/zap"
)

func newTestBus() *Bus {
	return New(zap.NewNop().Sugar())
}

func TestPublishRegistrationOrder(t *testing.T) {
	b := newTestBus()

	var got []string
	b.Subscribe("evt", "first", func(any) { got = append(got, "first") })
	b.Subscribe("evt", "second", func(any) { got = append(got, "second") })
	b.Subscribe("evt", "third", func(any) { got = append(got, "third") })

	b.Publish("evt", nil)

	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("expected %d invocations, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestSubscribeIdempotentPerID(t *testing.T) {
	b := newTestBus()

	calls := 0
	b.Subscribe("evt", "dup", func(any) { calls++ })
	b.Subscribe("evt", "dup", func(any) { calls++ })

	b.Publish("evt", nil)

	if calls != 1 {
		t.Errorf("expected 1 invocation for duplicate subscription, got %d", calls)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := newTestBus()

	calls := 0
	b.Subscribe("evt", "sub", func(any) { calls++ })
	b.Unsubscribe("evt", "sub")
	b.Unsubscribe("evt", "never-registered") // no-op

	b.Publish("evt", nil)

	if calls != 0 {
		t.Errorf("expected 0 invocations after unsubscribe, got %d", calls)
	}
}

func TestPublishSnapshotsSubscribers(t *testing.T) {
	b := newTestBus()

	lateCalls := 0
	b.Subscribe("evt", "adder", func(any) {
		b.Subscribe("evt", "late", func(any) { lateCalls++ })
	})

	b.Publish("evt", nil)
	if lateCalls != 0 {
		t.Fatalf("handler added during publish was invoked in the same publish")
	}

	b.Publish("evt", nil)
	if lateCalls != 1 {
		t.Errorf("expected late handler to run on next publish, got %d calls", lateCalls)
	}
}

func TestHandlerPanicIsolation(t *testing.T) {
	b := newTestBus()

	survived := false
	b.Subscribe("evt", "bad", func(any) { panic("boom") })
	b.Subscribe("evt", "good", func(any) { survived = true })

	b.Publish("evt", nil)

	if !survived {
		t.Error("handler after a panicking handler did not run")
	}
}

func TestPayloadDelivered(t *testing.T) {
	b := newTestBus()

	var got any
	b.Subscribe("evt", "sub", func(p any) { got = p })

	b.Publish("evt", 42)

	if got != 42 {
		t.Errorf("expected payload 42, got %v", got)
	}
}
