package websocket

import (
	"context"
	"encoding/json"
	"slices"
	"testing"
	"time"

	"github.com/mgfilms/site-service/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

// detachedClient has no connection; tests read its send channel directly.
func detachedClient(hub *Hub, adminID int64) *Client {
	return &Client{send: make(chan []byte, 4), adminID: adminID, hub: hub}
}

func receive(t *testing.T, c *Client) types.Event {
	t.Helper()
	select {
	case data, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		var ev types.Event
		require.NoError(t, json.Unmarshal(data, &ev))
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return types.Event{}
}

func TestHub_BroadcastAll(t *testing.T) {
	hub := startHub(t)
	a, b := detachedClient(hub, 1), detachedClient(hub, 2)
	hub.RegisterClient(a)
	hub.RegisterClient(b)

	assert.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	hub.BroadcastAll(types.NewEvent(types.EventInquiryReceived, map[string]string{"name": "Asha"}))

	assert.Equal(t, types.EventInquiryReceived, receive(t, a).Type)
	assert.Equal(t, types.EventInquiryReceived, receive(t, b).Type)
}

func TestHub_BroadcastToAdmins(t *testing.T) {
	hub := startHub(t)
	a, b := detachedClient(hub, 1), detachedClient(hub, 2)
	hub.RegisterClient(a)
	hub.RegisterClient(b)

	hub.BroadcastToAdmins([]int64{2}, types.NewEvent(types.EventContentChanged, nil))

	assert.Equal(t, types.EventContentChanged, receive(t, b).Type)
	assert.Len(t, a.send, 0)
}

func TestHub_NewerConnectionReplacesOlder(t *testing.T) {
	hub := startHub(t)
	old, fresh := detachedClient(hub, 7), detachedClient(hub, 7)
	hub.RegisterClient(old)
	hub.RegisterClient(fresh)

	_, open := <-old.send
	assert.False(t, open)

	// The stale client's late unregister must not drop the fresh one.
	hub.UnregisterClient(old)
	assert.Equal(t, []int64{7}, hub.ConnectedAdmins())

	hub.UnregisterClient(fresh)
	assert.Eventually(t, func() bool { return !slices.Contains(hub.ConnectedAdmins(), 7) }, time.Second, 10*time.Millisecond)
}

func TestClient_SendEventBufferFull(t *testing.T) {
	c := &Client{send: make(chan []byte, 1)}
	require.NoError(t, c.SendEvent(types.NewEvent(types.EventContentChanged, nil)))
	assert.ErrorIs(t, c.SendEvent(types.NewEvent(types.EventContentChanged, nil)), ErrSendBufferFull)
}

func TestHub_StoppedHubDoesNotBlock(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	live := detachedClient(hub, 1)
	hub.RegisterClient(live)
	cancel()
	<-stopped

	_, open := <-live.send
	assert.False(t, open)

	finished := make(chan struct{})
	go func() {
		hub.UnregisterClient(live)
		late := detachedClient(hub, 2)
		hub.RegisterClient(late)
		_, open := <-late.send
		assert.False(t, open)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("register/unregister blocked after the hub stopped")
	}
	assert.Zero(t, hub.ClientCount())
}
