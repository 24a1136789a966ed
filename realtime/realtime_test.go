package realtime

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"pokedex/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu       sync.Mutex
	received []CatalogEvent
	failWith error
	closed   bool

	// stall, when set, blocks every write until Close
	stall chan struct{}
}

func (c *fakeClient) WriteJSON(v interface{}) error {
	if c.stall != nil {
		<-c.stall
		return errors.New("use of closed connection")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failWith != nil {
		return c.failWith
	}
	c.received = append(c.received, v.(CatalogEvent))
	return nil
}

func (c *fakeClient) SetWriteDeadline(time.Time) error {
	return nil
}

func (c *fakeClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed && c.stall != nil {
		close(c.stall)
	}
	c.closed = true
	return nil
}

func (c *fakeClient) events() []CatalogEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]CatalogEvent(nil), c.received...)
}

func (c *fakeClient) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestHubPublishesToAllClients(t *testing.T) {
	hub := NewHub(quietLogger())
	a, b := &fakeClient{}, &fakeClient{}
	hub.Register(a)
	hub.Register(b)

	hub.Publish(CatalogEvent{Type: EventCreated, Pokemon: &models.Pokemon{ID: "1", Name: "bulbasaur", No: 1}})

	require.Eventually(t, func() bool { return len(a.events()) == 1 && len(b.events()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, EventCreated, a.events()[0].Type)
	assert.Equal(t, "bulbasaur", b.events()[0].Pokemon.Name)
}

func TestHubKeepsEventOrder(t *testing.T) {
	hub := NewHub(quietLogger())
	client := &fakeClient{}
	hub.Register(client)

	hub.Publish(CatalogEvent{Type: EventCreated})
	hub.Publish(CatalogEvent{Type: EventUpdated})
	hub.Publish(CatalogEvent{Type: EventDeleted})

	require.Eventually(t, func() bool { return len(client.events()) == 3 }, time.Second, 5*time.Millisecond)
	got := client.events()
	assert.Equal(t, []string{EventCreated, EventUpdated, EventDeleted}, []string{got[0].Type, got[1].Type, got[2].Type})
}

func TestHubDropsFailingClients(t *testing.T) {
	hub := NewHub(quietLogger())
	healthy := &fakeClient{}
	broken := &fakeClient{failWith: errors.New("broken pipe")}
	hub.Register(healthy)
	hub.Register(broken)

	hub.Publish(CatalogEvent{Type: EventDeleted, ID: "abc"})

	require.Eventually(t, broken.isClosed, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return len(healthy.events()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestHubPublishDoesNotWaitForStalledClient(t *testing.T) {
	hub := NewHub(quietLogger())
	stalled := &fakeClient{stall: make(chan struct{})}
	hub.Register(stalled)

	done := make(chan struct{})
	go func() {
		for i := 0; i < sendBufferSize+2; i++ {
			hub.Publish(CatalogEvent{Type: EventSeeded})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a client that never reads")
	}

	require.Eventually(t, stalled.isClosed, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, hub.Count())

	next := &fakeClient{}
	hub.Register(next)
	hub.Publish(CatalogEvent{Type: EventCreated})
	assert.Eventually(t, func() bool { return len(next.events()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub(quietLogger())
	client := &fakeClient{}
	hub.Register(client)
	hub.Unregister(client)
	hub.Unregister(client)

	hub.Publish(CatalogEvent{Type: EventSeeded})

	assert.Empty(t, client.events())
	assert.Equal(t, 0, hub.Count())
}
