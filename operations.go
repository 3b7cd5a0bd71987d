package bufkvs

import (
	"errors"
	"fmt"

	"github.com/gostonefire/bufkvs/internal/bufq"
	"github.com/gostonefire/bufkvs/internal/model"
	"github.com/gostonefire/bufkvs/internal/utils"
)

// ForEachFunc - Callback invoked by ForEach for every stored pair.
//   - key is the pair's key
//   - value is a borrowed view of the pair's value, see Get for its validity rules
//   - idx is a running index over the whole traversal, 0 through PairNum - 1
//   - num is the total number of pairs in the set
//
// Returning true continues the traversal, returning false stops it immediately.
type ForEachFunc func(key string, value []byte, idx, num uint32) bool

// searchResult - Holds the location of a found pair. It is a value local to
// each call, the engine keeps no search state between operations.
type searchResult struct {
	bucketNo uint32
	pairIdx  uint32
	pair     *model.Pair
}

// Put - Inserts a new key/value pair or updates the value of an existing one.
// The set stores its own copies of both key and value, independent of the
// lifetime of the caller's buffers. On update the old value is replaced as a
// whole while the stored key is left untouched.
//   - key is the key to insert or update
//   - value is the value bytes, must contain at least one byte
//
// It returns:
//   - err is of type CeilingReached if a new key would exceed the configured
//     maximum number of pairs, or a standard error if something went wrong.
//     Updating an existing key is never subject to the ceiling.
func (K *KeyValueSet) Put(key string, value []byte) (err error) {
	// Check validity of the value
	if len(value) == 0 {
		err = fmt.Errorf("value must contain at least one byte")
		return
	}

	res, err := K.search(key)
	if err == nil {
		// Existing key, install a fresh copy of the new value
		res.pair.Value = utils.CopyBytes(value)
		return
	} else if !errors.Is(err, KeyNotFound{}) {
		return
	}
	err = nil

	if K.pairNum >= K.pairNumMax {
		err = CeilingReached{}
		return
	}

	bucketNo := K.bucketNo(key)
	if K.buckets[bucketNo] == nil {
		K.buckets[bucketNo] = bufq.New(bufq.Conf{})
	}

	err = K.buckets[bucketNo].Append(model.Pair{Key: key, Value: utils.CopyBytes(value)})
	if err != nil {
		err = fmt.Errorf("error while appending new pair to bucket storage: %s", err)
		return
	}

	K.pairNum++

	return
}

// Get - Gets the value stored under the given key.
//   - key is the key to look up
//
// It returns:
//   - value is a borrowed view of the stored value. The caller must not modify
//     it, and it is invalidated by a later Put of the same key, a Drop of the
//     key, Empty or Free.
//   - err is of type KeyNotFound if the key is absent, or a standard error if
//     something went wrong
func (K *KeyValueSet) Get(key string) (value []byte, err error) {
	res, err := K.search(key)
	if err != nil {
		return
	}

	value = res.pair.Value

	return
}

// Has - Returns true if the given key is present in the set
func (K *KeyValueSet) Has(key string) bool {
	_, err := K.search(key)
	return err == nil
}

// Drop - Removes the pair stored under the given key.
// The bucket's storage is left in place even if the drop made it empty, lazy
// teardown happens only through Empty or Free.
//   - key is the key to remove
//
// It returns:
//   - err is of type KeyNotFound if the key is absent, or a standard error if
//     something went wrong
func (K *KeyValueSet) Drop(key string) (err error) {
	res, err := K.search(key)
	if err != nil {
		return
	}

	err = K.buckets[res.bucketNo].RemoveAt(res.pairIdx)
	if err != nil {
		err = fmt.Errorf("error while removing pair from bucket storage: %s", err)
		return
	}

	K.pairNum--

	return
}

// Empty - Removes every pair and tears down all bucket storage, leaving the
// set as it was right after New. It is safe to call on an already empty set.
func (K *KeyValueSet) Empty() {
	for i := range K.buckets {
		K.buckets[i] = nil
	}
	K.pairNum = 0
}

// ForEach - Visits every stored pair, buckets in ascending order and pairs
// within a bucket in storage order. The visitor is handed a running index over
// the whole traversal together with the total number of pairs.
// The traversal halts immediately when the visitor returns false, across
// bucket boundaries, and no further pairs are visited.
//   - visit is the callback to invoke per pair
//
// It returns:
//   - stopped is true if the visitor stopped the traversal, false if it ran to completion
//   - err is a standard error if something went wrong in the bucket storage
func (K *KeyValueSet) ForEach(visit ForEachFunc) (stopped bool, err error) {
	var pair *model.Pair
	var pairIdx uint32

	for _, bucket := range K.buckets {
		if bucket == nil {
			continue
		}

		num := bucket.Count()
		for j := uint32(0); j < num; j++ {
			pair, err = bucket.ReadAt(j)
			if err != nil {
				err = fmt.Errorf("error while reading pair from bucket storage: %s", err)
				return
			}

			if !visit(pair.Key, pair.Value, pairIdx, K.pairNum) {
				stopped = true
				return
			}
			pairIdx++
		}
	}

	return
}

// bucketNo - Returns which bucket number the given key hashes to
func (K *KeyValueSet) bucketNo(key string) uint32 {
	return K.hashFunc(key) % K.bucketNum
}

// search - Locates the pair stored under the given key. This is the single
// source of truth for key existence, underlying Put, Get, Has and Drop.
// A pair matches when its stored key is byte-identical to the search key, and
// the scan of the bucket halts on the first match.
//
// It returns:
//   - res holds the bucket number, storage index and a pointer to the pair
//   - err is of type KeyNotFound if the key is absent, or a standard error if
//     something went wrong
func (K *KeyValueSet) search(key string) (res searchResult, err error) {
	bucketNo := K.bucketNo(key)
	bucket := K.buckets[bucketNo]
	if bucket == nil {
		err = KeyNotFound{}
		return
	}

	stopped, err := bucket.Traverse(bufq.Forward, func(pair *model.Pair, idx, num uint32) bool {
		if pair.Key == key {
			res = searchResult{bucketNo: bucketNo, pairIdx: idx, pair: pair}
			return false
		}
		return true
	})
	if err != nil {
		err = fmt.Errorf("error while scanning bucket storage: %s", err)
		return
	}

	if !stopped {
		err = KeyNotFound{}
	}

	return
}
