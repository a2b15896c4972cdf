package sse

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_SubscribeAndCleanup(t *testing.T) {
	hub := NewHub()

	_, cleanupA := hub.Subscribe("ADM001")
	_, cleanupB := hub.Subscribe("ADM001")
	_, cleanupC := hub.Subscribe("ADM002")

	assert.Equal(t, 2, hub.SubscriberCount("ADM001"))
	assert.Equal(t, 3, hub.TotalSubscribers())

	cleanupA()
	cleanupA()
	assert.Equal(t, 1, hub.SubscriberCount("ADM001"))

	cleanupB()
	cleanupC()
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestHub_PublishTargetsOneSubscriber(t *testing.T) {
	hub := NewHub()

	mine, cleanupMine := hub.Subscribe("ADM001")
	defer cleanupMine()
	other, cleanupOther := hub.Subscribe("ADM002")
	defer cleanupOther()

	hub.Publish("ADM001", Event{Event: "ping"})

	select {
	case ev := <-mine:
		assert.Equal(t, "ping", ev.Event)
	default:
		t.Fatal("expected event for ADM001")
	}

	select {
	case <-other:
		t.Fatal("ADM002 should not receive ADM001 events")
	default:
	}
}

func TestHub_PublishClockEventBroadcasts(t *testing.T) {
	hub := NewHub()

	a, cleanupA := hub.Subscribe("ADM001")
	defer cleanupA()
	b, cleanupB := hub.Subscribe("ADM002")
	defer cleanupB()

	event := attendance.ClockEvent{
		Type:       attendance.EventClockIn,
		EmployeeID: "EMP001",
		RecordID:   "rec-1",
		At:         time.Date(2024, time.January, 2, 1, 0, 0, 0, time.UTC),
	}
	hub.PublishClockEvent(event)

	for _, ch := range []<-chan Event{a, b} {
		select {
		case ev := <-ch:
			assert.Equal(t, attendance.EventClockIn, ev.Event)
			data, ok := ev.Data.(attendance.ClockEvent)
			require.True(t, ok)
			assert.Equal(t, "EMP001", data.EmployeeID)
		default:
			t.Fatal("expected broadcast event")
		}
	}
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("ADM001")
	defer cleanup()

	for i := 0; i < subscriberBuffer*2; i++ {
		hub.Broadcast(Event{Event: "tick"})
	}

	assert.Len(t, ch, subscriberBuffer)
}
