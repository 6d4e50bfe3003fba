package event

import (
	"testing"
)

func TestDispatchOrderAndTyping(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(GoldChanged, ListenerFunc(func(e Event) { order = append(order, "first") }))
	d.Subscribe(GoldChanged, ListenerFunc(func(e Event) {
		p, ok := e.Payload.(GoldChangedPayload)
		if !ok {
			t.Errorf("expected GoldChangedPayload, got %T", e.Payload)
		}
		if p.Delta != 5 {
			t.Errorf("expected delta 5, got %d", p.Delta)
		}
		order = append(order, "second")
	}))
	d.Subscribe(EnemySpawned, ListenerFunc(func(e Event) { order = append(order, "other") }))

	d.Publish(1.5, GoldChangedPayload{Delta: 5, Total: 5})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected [first second], got %v", order)
	}
}

func TestSharedPayloadCarriesKind(t *testing.T) {
	d := NewDispatcher()
	got := EventType(0)
	d.Subscribe(BossShockwave, ListenerFunc(func(e Event) { got = e.Type }))
	d.Publish(0, BossPayload{Kind: BossShockwave, Lane: 1})
	if got != BossShockwave {
		t.Errorf("expected BossShockwave, got %s", got)
	}
}

func TestPanickingSubscriberDoesNotStopDispatch(t *testing.T) {
	d := NewDispatcher()
	reached := false
	d.Subscribe(WaveStarted, ListenerFunc(func(e Event) { panic("boom") }))
	d.Subscribe(WaveStarted, ListenerFunc(func(e Event) { reached = true }))

	d.Publish(0, WavePayload{Kind: WaveStarted})

	if !reached {
		t.Error("second subscriber should still run after the first panicked")
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	sub := d.Subscribe(ComboReset, ListenerFunc(func(e Event) { calls++ }))
	d.Publish(0, ComboPayload{})
	d.Unsubscribe(sub)
	d.Publish(0, ComboPayload{})
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if d.HandlerCount(ComboReset) != 0 {
		t.Errorf("expected no handlers left")
	}
}

func TestSubscribeUndefinedTypePanics(t *testing.T) {
	d := NewDispatcher()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for undefined event type")
		}
	}()
	d.Subscribe(EventType(9999), ListenerFunc(func(e Event) {}))
}

func TestAllTypesHaveNames(t *testing.T) {
	for _, et := range AllTypes() {
		if !et.Valid() {
			t.Errorf("%d should be valid", int(et))
		}
		if et.String() == "" || et.String() == "Unknown" {
			t.Errorf("event type %d has no name", int(et))
		}
	}
}
