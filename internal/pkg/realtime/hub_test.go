package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(h *Hub) *Client {
	c := NewClient(nil, h)
	h.Register(c)
	return c
}

func receive(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case raw := <-c.Send:
		var env Envelope
		require.NoError(t, json.Unmarshal(raw, &env))
		return env
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Envelope{}
	}
}

func assertSilent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case raw := <-c.Send:
		t.Fatalf("unexpected message: %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEmitToUserReachesOnlyUserRoom(t *testing.T) {
	h := NewHub()
	defer h.Close()

	alice1 := newTestClient(h)
	alice2 := newTestClient(h)
	bob := newTestClient(h)

	h.JoinUserRoom(alice1, 1)
	h.JoinUserRoom(alice2, 1)
	h.JoinUserRoom(bob, 2)

	h.EmitToUser(1, EventNewNotification, map[string]interface{}{"text": "hi"})

	for _, c := range []*Client{alice1, alice2} {
		env := receive(t, c)
		assert.Equal(t, EventNewNotification, env.Event)
		payload, ok := env.Payload.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "hi", payload["text"])
		assert.False(t, env.Timestamp.IsZero())
	}
	assertSilent(t, bob)
}

func TestEmitToAdminsReachesOnlyAdminRoom(t *testing.T) {
	h := NewHub()
	defer h.Close()

	admin := newTestClient(h)
	user := newTestClient(h)

	h.JoinAdminRoom(admin)
	h.JoinUserRoom(user, 7)

	h.EmitToAdmins(EventNewTrainerApplication, map[string]interface{}{"id": 3})

	env := receive(t, admin)
	assert.Equal(t, EventNewTrainerApplication, env.Event)
	assertSilent(t, user)
}

func TestEmitToEmptyRoomIsSilentlyDropped(t *testing.T) {
	h := NewHub()
	defer h.Close()

	// No connections at all; must not panic or block.
	h.EmitToUser(42, EventCartUpdated, nil)
	h.EmitToAdmins(EventNewNotification, nil)
}

func TestConnectionMayHoldMultipleRooms(t *testing.T) {
	h := NewHub()
	defer h.Close()

	c := newTestClient(h)
	h.JoinUserRoom(c, 1)
	h.JoinAdminRoom(c)

	h.EmitToUser(1, EventCartUpdated, nil)
	assert.Equal(t, EventCartUpdated, receive(t, c).Event)

	h.EmitToAdmins(EventNewTrainerApplication, nil)
	assert.Equal(t, EventNewTrainerApplication, receive(t, c).Event)
}

func TestUnregisterRemovesAllRoomMemberships(t *testing.T) {
	h := NewHub()
	defer h.Close()

	c := newTestClient(h)
	h.JoinUserRoom(c, 1)
	h.JoinAdminRoom(c)
	require.Equal(t, 1, h.RoomSize(UserRoom(1)))
	require.Equal(t, 1, h.RoomSize(AdminRoom))

	h.Unregister(c)

	assert.Equal(t, 0, h.RoomSize(UserRoom(1)))
	assert.Equal(t, 0, h.RoomSize(AdminRoom))

	// Emitting after disconnect is a no-op.
	h.EmitToUser(1, EventNewNotification, nil)
}

func TestHandleMessageJoinsAndCartUpdate(t *testing.T) {
	h := NewHub()
	defer h.Close()

	c := newTestClient(h)

	h.HandleMessage(c, []byte(`{"type":"join-user-room","userId":5}`))
	assert.Equal(t, 1, h.RoomSize(UserRoom(5)))

	h.HandleMessage(c, []byte(`{"type":"join-admin-room"}`))
	assert.Equal(t, 1, h.RoomSize(AdminRoom))

	h.HandleMessage(c, []byte(`{"type":"update-cart","userId":5}`))
	env := receive(t, c)
	assert.Equal(t, EventCartUpdated, env.Event)
}

func TestHandleMessageIgnoresGarbage(t *testing.T) {
	h := NewHub()
	defer h.Close()

	c := newTestClient(h)
	h.HandleMessage(c, []byte(`not json`))
	h.HandleMessage(c, []byte(`{"type":"no-such-type"}`))
	assertSilent(t, c)
}

func TestSlowClientDropsInsteadOfBlocking(t *testing.T) {
	h := NewHub()
	defer h.Close()

	c := newTestClient(h)
	h.JoinUserRoom(c, 1)

	// Fill the buffer past capacity; emits must never block.
	for i := 0; i < sendBuffer+10; i++ {
		h.EmitToUser(1, EventNewNotification, map[string]interface{}{"seq": i})
	}

	assert.Len(t, c.Send, sendBuffer)
}
