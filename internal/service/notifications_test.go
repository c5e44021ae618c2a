package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationHub_PublishSubscribe(t *testing.T) {
	hub := NewNotificationHub(4)

	first, unsubscribeFirst := hub.Subscribe()
	second, unsubscribeSecond := hub.Subscribe()
	defer unsubscribeSecond()
	assert.Equal(t, 2, hub.Subscribers())

	msg := Message{Type: EventUserRegistered, Payload: map[string]any{"id": int64(4)}}
	hub.Publish(msg)

	assert.Equal(t, msg, <-first)
	assert.Equal(t, msg, <-second)

	unsubscribeFirst()
	unsubscribeFirst()
	assert.Equal(t, 1, hub.Subscribers())

	_, ok := <-first
	assert.False(t, ok)

	hub.Publish(Message{Type: EventReferralRewarded})
	got := <-second
	assert.Equal(t, EventReferralRewarded, got.Type)
}

func TestNotificationHub_FullSubscriberDoesNotBlock(t *testing.T) {
	hub := NewNotificationHub(1)
	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	hub.Publish(Message{Type: "first"})
	hub.Publish(Message{Type: "second"})

	require.Len(t, ch, 1)
	got := <-ch
	assert.Equal(t, "first", got.Type)
}

func TestNotificationHub_DefaultBuffer(t *testing.T) {
	hub := NewNotificationHub(0)
	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	assert.Equal(t, DefaultSubscriberBuffer, cap(ch))
}
