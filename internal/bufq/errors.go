package bufq

// OutOfRange - Custom error to inform that a record index is outside the
// current number of records in the queue
type OutOfRange struct {
	msg string
}

// Error - Used to notify that a record index was out of range
func (E OutOfRange) Error() string {
	if E.msg == "" {
		return "record index out of range"
	}
	return E.msg
}

// QueueFull - Custom error to inform that the queue has reached its configured
// maximum number of records and can't take more
type QueueFull struct {
	msg string
}

// Error - Used to notify that the queue is full
func (E QueueFull) Error() string {
	if E.msg == "" {
		return "queue full"
	}
	return E.msg
}
