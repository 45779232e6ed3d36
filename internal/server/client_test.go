package server

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/tower-race/internal/protocol"
)

func TestClient_SendMessageAfterClose(t *testing.T) {
	t.Parallel()

	c := NewClient(nil, nil)
	c.Close()

	// Must be a silent no-op, not a send on a closed channel
	c.SendMessage(protocol.MustNewMessage(protocol.MsgPong, nil))
}

func TestClient_ConcurrentSendAndClose(t *testing.T) {
	t.Parallel()

	// Hammer SendMessage against a concurrent Close: the channel may be
	// closed at any point, and no interleaving may panic.
	for i := 0; i < 50; i++ {
		c := NewClient(nil, nil)
		msg := protocol.MustNewMessage(protocol.MsgPong, nil)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 300; j++ {
				c.SendMessage(msg)
			}
		}()
		go func() {
			defer wg.Done()
			c.Close()
		}()
		wg.Wait()
	}
}

func TestClient_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	c := NewClient(nil, nil)
	c.Close()
	c.Close()
}

func TestClient_Accessors(t *testing.T) {
	t.Parallel()

	c := NewClient(nil, nil)
	assert.NotEmpty(t, c.GetID())

	c.SetName("Alice")
	assert.Equal(t, "Alice", c.GetName())
	c.SetRoom("ABC123")
	assert.Equal(t, "ABC123", c.GetRoom())
}
