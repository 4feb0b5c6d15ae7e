package daemon

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/events"
)

func setupTestDaemon(t *testing.T) (*Server, string) {
	t.Helper()
	socketPath := filepath.Join(t.TempDir(), "hito.sock")

	server, err := NewServer(socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = server.Shutdown() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() { _ = server.Start(ctx) }()

	return server, socketPath
}

type rawClient struct {
	conn net.Conn
	enc  *json.Encoder
	dec  *json.Decoder
}

func connectRawClient(t *testing.T, socketPath string) *rawClient {
	t.Helper()
	conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return &rawClient{conn: conn, enc: json.NewEncoder(conn), dec: json.NewDecoder(conn)}
}

func (r *rawClient) subscribe(t *testing.T, sub events.SubscribeMessage) {
	t.Helper()
	require.NoError(t, r.enc.Encode(events.Message{Version: events.ProtocolVersion, Type: "subscribe", Subscribe: &sub}))
}

func (r *rawClient) publish(t *testing.T, e events.Event) {
	t.Helper()
	require.NoError(t, r.enc.Encode(events.Message{Version: events.ProtocolVersion, Type: "event", Event: &e}))
}

// nextEvent returns the next event message or nil after timeout
func (r *rawClient) nextEvent(t *testing.T, timeout time.Duration) *events.Event {
	t.Helper()
	require.NoError(t, r.conn.SetReadDeadline(time.Now().Add(timeout)))
	for {
		var msg events.Message
		if err := r.dec.Decode(&msg); err != nil {
			return nil
		}
		if msg.Type == "event" {
			return msg.Event
		}
	}
}

// waitForClients polls until the daemon has registered n clients
func waitForClients(t *testing.T, s *Server, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return s.hub.len() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestNewServer_StaleSocketCleanup(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "nested", "hito.sock")
	require.NoError(t, os.MkdirAll(filepath.Dir(socketPath), 0o700))
	require.NoError(t, os.WriteFile(socketPath, []byte("stale"), 0o600))

	server, err := NewServer(socketPath)
	require.NoError(t, err)
	defer func() { _ = server.Shutdown() }()

	info, err := os.Stat(socketPath)
	require.NoError(t, err)
	assert.Equal(t, os.ModeSocket, info.Mode()&os.ModeSocket)
}

func TestNewServer_EnvBuffers(t *testing.T) {
	t.Setenv("HITO_DAEMON_CLIENT_BUFFER", "3")
	t.Setenv("HITO_DAEMON_BROADCAST_BUFFER", "bogus")

	server, err := NewServer(filepath.Join(t.TempDir(), "hito.sock"))
	require.NoError(t, err)
	defer func() { _ = server.Shutdown() }()

	assert.Equal(t, 3, server.clientBuffer)
	assert.Equal(t, 100, cap(server.broadcast))
}

func TestBroadcast_BoardFiltering(t *testing.T) {
	server, socketPath := setupTestDaemon(t)

	onBoard := connectRawClient(t, socketPath)
	onBoard.subscribe(t, events.SubscribeMessage{OrgID: "o1", BoardID: "b1"})
	otherBoard := connectRawClient(t, socketPath)
	otherBoard.subscribe(t, events.SubscribeMessage{OrgID: "o1", BoardID: "b2"})
	publisher := connectRawClient(t, socketPath)
	waitForClients(t, server, 3)

	// Let the subscriptions land before publishing
	time.Sleep(50 * time.Millisecond)
	publisher.publish(t, events.Event{Type: events.EventBoardChanged, OrgID: "o1", BoardID: "b1", ItemID: "i1"})

	got := onBoard.nextEvent(t, 2*time.Second)
	require.NotNil(t, got)
	assert.Equal(t, "i1", string(got.ItemID))
	assert.Positive(t, got.SequenceID)

	assert.Nil(t, otherBoard.nextEvent(t, 150*time.Millisecond), "board b2 must not see b1 events")
}

func TestBroadcast_OrgWideEvent(t *testing.T) {
	server, socketPath := setupTestDaemon(t)

	a := connectRawClient(t, socketPath)
	a.subscribe(t, events.SubscribeMessage{OrgID: "o1", BoardID: "b1"})
	b := connectRawClient(t, socketPath)
	b.subscribe(t, events.SubscribeMessage{OrgID: "o1", BoardID: "b2"})
	other := connectRawClient(t, socketPath)
	other.subscribe(t, events.SubscribeMessage{OrgID: "o2", BoardID: "b3"})
	waitForClients(t, server, 3)
	time.Sleep(50 * time.Millisecond)

	// A lane edit touches every board of the organization
	a.publish(t, events.Event{Type: events.EventBoardChanged, OrgID: "o1"})

	assert.NotNil(t, a.nextEvent(t, 2*time.Second))
	assert.NotNil(t, b.nextEvent(t, 2*time.Second))
	assert.Nil(t, other.nextEvent(t, 150*time.Millisecond))

	snap := server.Metrics().Snapshot()
	assert.Equal(t, int64(1), snap.OrgWide)
	assert.Equal(t, int64(1), snap.Filtered)
}

func TestBroadcast_SequenceNumbersIncrease(t *testing.T) {
	server, socketPath := setupTestDaemon(t)

	c := connectRawClient(t, socketPath)
	c.subscribe(t, events.SubscribeMessage{})
	waitForClients(t, server, 1)
	time.Sleep(50 * time.Millisecond)

	for i := 0; i < 3; i++ {
		require.NoError(t, server.Broadcast(events.Event{Type: events.EventBoardChanged, BoardID: "b1"}))
	}

	var last int64
	for i := 0; i < 3; i++ {
		e := c.nextEvent(t, 2*time.Second)
		require.NotNil(t, e)
		assert.Greater(t, e.SequenceID, last)
		last = e.SequenceID
	}

	snap := server.Metrics().Snapshot()
	assert.Equal(t, int64(3), snap.Broadcasts)
	assert.Equal(t, int64(3), snap.Delivered)
	assert.Equal(t, int32(1), snap.Clients)
}

func TestBroadcast_EventClientRoundTrip(t *testing.T) {
	server, socketPath := setupTestDaemon(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	watcher, err := events.NewClient(socketPath, 10*time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()
	assert.ErrorIs(t, watcher.Subscribe("o1", "b1"), events.ErrNotConnected)
	require.NoError(t, watcher.Connect(ctx))

	updates, err := watcher.Listen(ctx)
	require.NoError(t, err)

	publisher, err := events.NewClient(socketPath, 10*time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = publisher.Close() }()
	require.NoError(t, publisher.Connect(ctx))

	waitForClients(t, server, 2)
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, publisher.SendEvent(events.Event{Type: events.EventBoardChanged, OrgID: "o1", BoardID: "b1"}))

	select {
	case e := <-updates:
		assert.Equal(t, "b1", string(e.BoardID))
	case <-ctx.Done():
		t.Fatal("watcher never received the published event")
	}
}

func TestShutdown_Idempotent(t *testing.T) {
	server, socketPath := setupTestDaemon(t)
	connectRawClient(t, socketPath)
	waitForClients(t, server, 1)

	require.NoError(t, server.Shutdown())
	require.NoError(t, server.Shutdown())

	assert.Equal(t, 0, server.hub.len())
	_, err := os.Stat(socketPath)
	assert.True(t, os.IsNotExist(err), "socket file should be removed")
	assert.ErrorIs(t, server.Broadcast(events.Event{Type: events.EventBoardChanged}), ErrShuttingDown)
}

func TestEvictStale(t *testing.T) {
	server, socketPath := setupTestDaemon(t)
	connectRawClient(t, socketPath)
	connectRawClient(t, socketPath)
	waitForClients(t, server, 2)

	subs := server.hub.list()
	subs[0].touch(time.Now().Add(-2 * staleAfter))

	assert.Equal(t, 1, server.evictStale(time.Now()))
	assert.Equal(t, 1, server.hub.len())
	assert.Equal(t, int32(1), server.Metrics().Snapshot().Clients)
}
