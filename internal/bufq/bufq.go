package bufq

import (
	"github.com/gostonefire/bufkvs/internal/model"
)

// Direction - Traversal direction through the records of a queue
type Direction int

const (
	// Forward - Traverse from the first appended record towards the last
	Forward Direction = iota
	// Backward - Traverse from the last appended record towards the first
	Backward
)

// Visitor - Callback invoked by Traverse for every visited record.
//   - pair is a pointer to the stored record, valid until the next mutation of the queue
//   - idx is the storage index of the record
//   - num is the total number of records in the queue
//
// Returning true continues the traversal, returning false stops it immediately.
type Visitor func(pair *model.Pair, idx, num uint32) bool

// Conf - Configuration for a new queue
//   - PairNumMax is the maximum number of records the queue will accept, 0 means unbounded
type Conf struct {
	PairNumMax uint32
}

// Queue - An ordered, appendable and randomly indexable sequence of pair
// records. Records keep their relative order across removals.
type Queue struct {
	conf  Conf
	pairs []model.Pair
}

// New - Returns a new empty queue
func New(conf Conf) *Queue {
	return &Queue{conf: conf}
}

// Append - Appends a record to the end of the queue.
// It returns an error of type QueueFull if the queue has a configured maximum
// number of records and that maximum is already reached.
func (Q *Queue) Append(pair model.Pair) (err error) {
	if Q.conf.PairNumMax > 0 && uint32(len(Q.pairs)) >= Q.conf.PairNumMax {
		err = QueueFull{}
		return
	}

	Q.pairs = append(Q.pairs, pair)

	return
}

// RemoveAt - Removes the record at the given storage index, shifting any
// subsequent records one step down.
// It returns an error of type OutOfRange if the index is outside the queue.
func (Q *Queue) RemoveAt(idx uint32) (err error) {
	if idx >= uint32(len(Q.pairs)) {
		err = OutOfRange{}
		return
	}

	Q.pairs = append(Q.pairs[:idx], Q.pairs[idx+1:]...)

	return
}

// ReadAt - Returns a pointer to the record at the given storage index.
// The pointer is valid until the next mutation of the queue.
// It returns an error of type OutOfRange if the index is outside the queue.
func (Q *Queue) ReadAt(idx uint32) (pair *model.Pair, err error) {
	if idx >= uint32(len(Q.pairs)) {
		err = OutOfRange{}
		return
	}

	pair = &Q.pairs[idx]

	return
}

// Count - Returns the current number of records in the queue
func (Q *Queue) Count() uint32 {
	return uint32(len(Q.pairs))
}

// Traverse - Visits every record in the queue in the given direction.
// The traversal halts immediately when the visitor returns false, in which
// case stopped is true. A completed traversal returns stopped false.
func (Q *Queue) Traverse(dir Direction, visit Visitor) (stopped bool, err error) {
	num := uint32(len(Q.pairs))

	if dir == Backward {
		for i := int(num) - 1; i >= 0; i-- {
			if !visit(&Q.pairs[i], uint32(i), num) {
				stopped = true
				return
			}
		}
		return
	}

	for i := uint32(0); i < num; i++ {
		if !visit(&Q.pairs[i], i, num) {
			stopped = true
			return
		}
	}

	return
}
