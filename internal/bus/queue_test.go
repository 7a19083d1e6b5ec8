package bus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue(10)
	q.PushTask([]byte("first"))
	q.PushTask([]byte("second"))
	q.PushTask([]byte("third"))

	for _, want := range []string{"first", "second", "third"} {
		f, err := q.Pop(time.Second)
		require.NoError(t, err)
		assert.False(t, f.Stop)
		assert.Equal(t, want, string(f.Data))
	}
}

func TestQueue_Pop_Timeout(t *testing.T) {
	q := NewQueue(10)

	start := time.Now()
	_, err := q.Pop(50 * time.Millisecond)
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, ErrTimeout)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
}

func TestQueue_Pop_ClosedAfterDrain(t *testing.T) {
	q := NewQueue(10)
	q.PushTask([]byte("pending"))
	q.Close()

	f, err := q.Pop(time.Second)
	require.NoError(t, err)
	assert.Equal(t, "pending", string(f.Data))

	_, err = q.Pop(time.Second)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestQueue_StopFrame(t *testing.T) {
	q := NewQueue(10)
	q.PushStop()

	f, err := q.Pop(time.Second)
	require.NoError(t, err)
	assert.True(t, f.Stop)
	assert.Nil(t, f.Data)
}

func TestQueue_StopDoesNotJumpQueue(t *testing.T) {
	q := NewQueue(10)
	q.PushTask([]byte("task"))
	q.PushStop()

	f, err := q.Pop(time.Second)
	require.NoError(t, err)
	assert.False(t, f.Stop)

	f, err = q.Pop(time.Second)
	require.NoError(t, err)
	assert.True(t, f.Stop)
}

func TestQueue_ConcurrentPush(t *testing.T) {
	q := NewQueue(200)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.PushTask([]byte("msg"))
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, q.Len())
}

func TestResultQueue_PushPop(t *testing.T) {
	q := NewResultQueue(10)
	q.Push([]byte("result"))
	assert.Equal(t, 1, q.Len())

	data, err := q.Pop(time.Second)
	require.NoError(t, err)
	assert.Equal(t, "result", string(data))
	assert.Equal(t, 0, q.Len())
}

func TestResultQueue_Pop_Timeout(t *testing.T) {
	q := NewResultQueue(10)
	_, err := q.Pop(20 * time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
}
