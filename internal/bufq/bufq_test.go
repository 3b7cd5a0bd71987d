//go:build unit

package bufq

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"

	"github.com/gostonefire/bufkvs/internal/model"
)

func TestQueue_Append(t *testing.T) {
	t.Run("appends records in order", func(t *testing.T) {
		// Prepare
		q := New(Conf{})

		// Execute
		for i := 0; i < 10; i++ {
			err := q.Append(model.Pair{Key: fmt.Sprintf("key-%d", i), Value: []byte{uint8(i)}})
			assert.NoErrorf(t, err, "appends record #%d", i)
		}

		// Check
		assert.Equal(t, uint32(10), q.Count(), "correct number of records")
		for i := uint32(0); i < 10; i++ {
			pair, err := q.ReadAt(i)
			assert.NoErrorf(t, err, "reads record #%d", i)
			assert.Equal(t, fmt.Sprintf("key-%d", i), pair.Key, "records kept in append order")
		}
	})

	t.Run("throws correct error when configured maximum is reached", func(t *testing.T) {
		// Prepare
		q := New(Conf{PairNumMax: 2})

		err := q.Append(model.Pair{Key: "a", Value: []byte{1}})
		assert.NoError(t, err, "appends first record")
		err = q.Append(model.Pair{Key: "b", Value: []byte{2}})
		assert.NoError(t, err, "appends second record")

		// Execute
		err = q.Append(model.Pair{Key: "c", Value: []byte{3}})

		// Check
		assert.ErrorIs(t, err, QueueFull{}, "get correct error")
		assert.Equal(t, uint32(2), q.Count(), "queue left unchanged")
	})
}

func TestQueue_ReadAt(t *testing.T) {
	t.Run("throws correct error when index is out of range", func(t *testing.T) {
		// Prepare
		q := New(Conf{})
		err := q.Append(model.Pair{Key: "a", Value: []byte{1}})
		assert.NoError(t, err, "appends record")

		// Execute
		_, err = q.ReadAt(1)

		// Check
		assert.ErrorIs(t, err, OutOfRange{}, "get correct error")
	})

	t.Run("returned pointer addresses the stored record", func(t *testing.T) {
		// Prepare
		q := New(Conf{})
		err := q.Append(model.Pair{Key: "a", Value: []byte{1}})
		assert.NoError(t, err, "appends record")

		// Execute
		pair, err := q.ReadAt(0)
		assert.NoError(t, err, "reads record")
		pair.Value = []byte{9}

		// Check
		pair, err = q.ReadAt(0)
		assert.NoError(t, err, "reads record again")
		assert.Equal(t, []byte{9}, pair.Value, "change visible through a new read")
	})
}

func TestQueue_RemoveAt(t *testing.T) {
	t.Run("removes a record and preserves order of the rest", func(t *testing.T) {
		// Prepare
		q := New(Conf{})
		for _, key := range []string{"a", "b", "c"} {
			err := q.Append(model.Pair{Key: key, Value: []byte{1}})
			assert.NoError(t, err, "appends record")
		}

		// Execute
		err := q.RemoveAt(1)

		// Check
		assert.NoError(t, err, "removes record")
		assert.Equal(t, uint32(2), q.Count(), "one record less")

		pair, err := q.ReadAt(0)
		assert.NoError(t, err, "reads first record")
		assert.Equal(t, "a", pair.Key, "first record kept")
		pair, err = q.ReadAt(1)
		assert.NoError(t, err, "reads second record")
		assert.Equal(t, "c", pair.Key, "last record shifted down")
	})

	t.Run("throws correct error when index is out of range", func(t *testing.T) {
		// Prepare
		q := New(Conf{})

		// Execute
		err := q.RemoveAt(0)

		// Check
		assert.ErrorIs(t, err, OutOfRange{}, "get correct error")
	})
}

func TestQueue_Traverse(t *testing.T) {
	t.Run("visits all records forward", func(t *testing.T) {
		// Prepare
		q := New(Conf{})
		for _, key := range []string{"a", "b", "c"} {
			err := q.Append(model.Pair{Key: key, Value: []byte{1}})
			assert.NoError(t, err, "appends record")
		}

		// Execute
		var visited []string
		stopped, err := q.Traverse(Forward, func(pair *model.Pair, idx, num uint32) bool {
			assert.Equal(t, uint32(3), num, "correct total in callback")
			visited = append(visited, pair.Key)
			return true
		})

		// Check
		assert.NoError(t, err, "traverses queue")
		assert.False(t, stopped, "traversal ran to completion")
		assert.Equal(t, []string{"a", "b", "c"}, visited, "visited in storage order")
	})

	t.Run("visits all records backward", func(t *testing.T) {
		// Prepare
		q := New(Conf{})
		for _, key := range []string{"a", "b", "c"} {
			err := q.Append(model.Pair{Key: key, Value: []byte{1}})
			assert.NoError(t, err, "appends record")
		}

		// Execute
		var visited []string
		stopped, err := q.Traverse(Backward, func(pair *model.Pair, idx, num uint32) bool {
			visited = append(visited, pair.Key)
			return true
		})

		// Check
		assert.NoError(t, err, "traverses queue")
		assert.False(t, stopped, "traversal ran to completion")
		assert.Equal(t, []string{"c", "b", "a"}, visited, "visited in reverse storage order")
	})

	t.Run("halts immediately when the visitor stops", func(t *testing.T) {
		// Prepare
		q := New(Conf{})
		for _, key := range []string{"a", "b", "c"} {
			err := q.Append(model.Pair{Key: key, Value: []byte{1}})
			assert.NoError(t, err, "appends record")
		}

		// Execute
		var visits int
		stopped, err := q.Traverse(Forward, func(pair *model.Pair, idx, num uint32) bool {
			visits++
			return pair.Key != "b"
		})

		// Check
		assert.NoError(t, err, "traverses queue")
		assert.True(t, stopped, "traversal reports stop")
		assert.Equal(t, 2, visits, "no records visited after the stop")
	})

	t.Run("empty queue traverses without visits", func(t *testing.T) {
		// Prepare
		q := New(Conf{})

		// Execute
		stopped, err := q.Traverse(Forward, func(pair *model.Pair, idx, num uint32) bool {
			assert.Fail(t, "no visits expected")
			return true
		})

		// Check
		assert.NoError(t, err, "traverses queue")
		assert.False(t, stopped, "traversal ran to completion")
	})
}

func TestQueueErrors(t *testing.T) {
	t.Run("errors match with errors.Is", func(t *testing.T) {
		// Execute and Check
		assert.True(t, errors.Is(OutOfRange{}, OutOfRange{}), "out of range matches itself")
		assert.True(t, errors.Is(QueueFull{}, QueueFull{}), "queue full matches itself")
		assert.False(t, errors.Is(OutOfRange{}, QueueFull{}), "different errors do not match")
	})
}
