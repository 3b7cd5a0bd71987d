package model

// Pair - Represents one key/value association stored in a bucket.
// The Key is a copy of the caller's key at insert time and is never replaced
// for the lifetime of the pair. The Value slice is exclusively owned by the
// pair and is swapped out as a whole on update.
type Pair struct {
	Key   string
	Value []byte
}
