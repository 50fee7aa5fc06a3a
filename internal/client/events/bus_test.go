package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublish_InvokesHandlersInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var order []string

	bus.On("test", func(any) { order = append(order, "first") })
	bus.On("test", func(any) { order = append(order, "second") })
	bus.On("test", func(any) { order = append(order, "third") })

	bus.Publish("test", nil)

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestPublish_DeliversPayload(t *testing.T) {
	bus := NewBus()
	var got any

	bus.On(SyncComplete, func(payload any) { got = payload })

	bus.Publish(SyncComplete, "payload-value")

	assert.Equal(t, "payload-value", got)
}

func TestPublish_UnknownEventIsNoOp(t *testing.T) {
	bus := NewBus()

	assert.NotPanics(t, func() {
		bus.Publish("nobody-listens", nil)
	})
}

func TestOff_RemovesOnlyTheGivenSubscription(t *testing.T) {
	bus := NewBus()
	var calls []string

	subA := bus.On("test", func(any) { calls = append(calls, "a") })
	bus.On("test", func(any) { calls = append(calls, "b") })

	bus.Off(subA)
	bus.Publish("test", nil)

	assert.Equal(t, []string{"b"}, calls)
}

func TestOff_DuringDispatchIsSafe(t *testing.T) {
	bus := NewBus()
	var calls int

	var sub Subscription
	sub = bus.On("test", func(any) {
		calls++
		bus.Off(sub)
	})
	bus.On("test", func(any) { calls++ })

	bus.Publish("test", nil)
	bus.Publish("test", nil)

	// First publish reaches both handlers, second only the remaining one.
	assert.Equal(t, 3, calls)
}

func TestOn_SeparateEventsDoNotInterfere(t *testing.T) {
	bus := NewBus()
	var conflictCalls, completeCalls int

	bus.On(Conflict, func(any) { conflictCalls++ })
	bus.On(SyncComplete, func(any) { completeCalls++ })

	bus.Publish(Conflict, nil)

	assert.Equal(t, 1, conflictCalls)
	assert.Equal(t, 0, completeCalls)
}
