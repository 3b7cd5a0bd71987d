package bufkvs

import (
	"github.com/gostonefire/bufkvs/hashfunc"
	"github.com/gostonefire/bufkvs/internal/bufq"
	"github.com/gostonefire/bufkvs/internal/model"
)

// DefaultBucketNum - Number of buckets used when Config.BucketNum is left zero
const DefaultBucketNum uint32 = 128

// DefaultPairNumMax - Pair ceiling used when Config.PairNumMax is left zero
const DefaultPairNumMax uint32 = 1024

// PairStore - Interface for any per-bucket record storage implementation
type PairStore interface {
	Append(pair model.Pair) (err error)
	RemoveAt(idx uint32) (err error)
	ReadAt(idx uint32) (pair *model.Pair, err error)
	Count() uint32
	Traverse(dir bufq.Direction, visit bufq.Visitor) (stopped bool, err error)
}

// Config - Optional configuration for a new key value set. Every field is
// independently optional, a zero/nil field falls back to its default.
//   - HashFunc is the bucket selection hash, defaults to hashfunc.DJB2
//   - BucketNum is the number of buckets, fixed for the lifetime of the set, defaults to DefaultBucketNum
//   - PairNumMax is the maximum number of key/value pairs the set will accept, defaults to DefaultPairNumMax
type Config struct {
	HashFunc   hashfunc.Hash
	BucketNum  uint32
	PairNumMax uint32
}

// Stat - Status of the key value set
//   - PairNum is the number of key/value pairs currently stored
type Stat struct {
	PairNum uint32
}

// KeyValueSet - An in-memory set of key/value pairs addressed by
// null-terminated-string style keys. Keys are distributed over a fixed number
// of buckets, each bucket holding its pairs in insertion order.
//
// The set is not safe for concurrent use, callers needing that must provide
// external synchronization around every operation.
type KeyValueSet struct {
	hashFunc   hashfunc.Hash
	bucketNum  uint32
	pairNumMax uint32
	pairNum    uint32
	buckets    []PairStore
}

// New - Returns a new empty key value set.
// A nil conf selects all defaults, and any zero/nil field in a supplied conf
// falls back to its default independently of the other fields.
// Bucket storage is created lazily, a fresh set holds no storage at all.
func New(conf *Config) *KeyValueSet {
	hashFunc := hashfunc.Hash(hashfunc.DJB2)
	bucketNum := DefaultBucketNum
	pairNumMax := DefaultPairNumMax

	if conf != nil {
		if conf.HashFunc != nil {
			hashFunc = conf.HashFunc
		}
		if conf.BucketNum != 0 {
			bucketNum = conf.BucketNum
		}
		if conf.PairNumMax != 0 {
			pairNumMax = conf.PairNumMax
		}
	}

	return &KeyValueSet{
		hashFunc:   hashFunc,
		bucketNum:  bucketNum,
		pairNumMax: pairNumMax,
		buckets:    make([]PairStore, bucketNum),
	}
}

// Free - Empties every bucket and releases the bucket table.
// The set must not be used after a call to Free.
func (K *KeyValueSet) Free() {
	K.Empty()
	K.buckets = nil
}

// Stat - Returns status of the key value set
func (K *KeyValueSet) Stat() Stat {
	return Stat{PairNum: K.pairNum}
}
