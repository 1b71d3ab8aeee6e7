package notification

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialHub upgrades one real websocket connection, registers its server side
// with the hub, and returns the client side for reading.
func dialHub(t *testing.T, hub *Hub, userID int64) *websocket.Conn {
	t.Helper()

	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	registered := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(userID, conn)
		close(registered)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientConn.Close() })

	<-registered
	return clientConn
}

func TestHub_ConcurrentBroadcast(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	clientConn := dialHub(t, hub, 1)

	const events = 50
	var wg sync.WaitGroup
	wg.Add(events)
	for i := 0; i < events; i++ {
		go func() {
			defer wg.Done()
			hub.Broadcast(Event{Type: TypeBookingCreated, BookingID: 1, At: time.Now().UTC()})
		}()
	}
	wg.Wait()

	_ = clientConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for i := 0; i < events; i++ {
		var ev Event
		require.NoError(t, clientConn.ReadJSON(&ev))
		assert.Equal(t, TypeBookingCreated, ev.Type)
	}
}

func TestHub_RegisterReplacesConnection(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	first := dialHub(t, hub, 7)
	second := dialHub(t, hub, 7)

	assert.Equal(t, 1, hub.ConnectedCount())

	hub.Broadcast(Event{Type: TypeBookingPaid, BookingID: 2, At: time.Now().UTC()})

	_ = second.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev Event
	require.NoError(t, second.ReadJSON(&ev))
	assert.Equal(t, TypeBookingPaid, ev.Type)

	// The first connection was closed on replacement.
	_ = first.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := first.ReadMessage()
	assert.Error(t, err)
}

func TestHub_UnregisterDropsConnection(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	dialHub(t, hub, 3)
	assert.Equal(t, 1, hub.ConnectedCount())

	hub.Unregister(3)
	assert.Equal(t, 0, hub.ConnectedCount())

	// Broadcasting into an empty hub is a no-op.
	hub.Broadcast(Event{Type: TypeBookingCancelled, At: time.Now().UTC()})
}
