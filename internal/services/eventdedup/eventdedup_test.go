package eventdedup

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeduplicator_FirstSeen(t *testing.T) {
	t.Parallel()

	t.Run("repeated id", func(t *testing.T) {
		d := New(time.Minute)
		id := uuid.NewString()

		assert.True(t, d.FirstSeen(id))
		assert.False(t, d.FirstSeen(id))
		assert.True(t, d.FirstSeen(uuid.NewString()))
	})

	t.Run("empty id is never deduplicated", func(t *testing.T) {
		d := New(time.Minute)
		assert.True(t, d.FirstSeen(""))
		assert.True(t, d.FirstSeen(""))
	})

	t.Run("forget", func(t *testing.T) {
		d := New(time.Minute)
		id := uuid.NewString()

		assert.True(t, d.FirstSeen(id))
		d.Forget(id)
		assert.True(t, d.FirstSeen(id))
	})

	t.Run("expiry", func(t *testing.T) {
		d := New(20 * time.Millisecond)
		id := uuid.NewString()

		assert.True(t, d.FirstSeen(id))
		assert.Eventually(t, func() bool {
			return d.FirstSeen(id)
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("concurrent deliveries", func(t *testing.T) {
		d := New(time.Minute)
		id := uuid.NewString()

		var first atomic.Int32
		var wg sync.WaitGroup
		for range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if d.FirstSeen(id) {
					first.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), first.Load())
	})
}
