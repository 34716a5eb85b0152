// Copyright 2024 The Solaris Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cache

import (
	"fmt"

	"github.com/solarisdb/bcache/container/iterable"
	"github.com/solarisdb/bcache/errors"
)

type (
	// Cache implements container with limited size capacity and the pull out discipline
	// provided by a Policy. The container never holds more than maxSize elements: adding
	// a new key to the full container pulls the policy replacement candidate out first.
	// The key set of the policy is always equal to the key set of the container.
	Cache[K comparable, V any] struct {
		maxSize  int
		entries  *iterable.Map[K, V]
		policy   Policy[K]
		onEraseF OnEraseElemF[K, V]
		stats    Stats
	}

	// OnEraseElemF function type for the callback which is called once for every element
	// leaving the cache by the policy pull out or by the Remove call. The callback must
	// not call the cache it is invoked from
	OnEraseElemF[K comparable, V any] func(k K, v V)

	// Stats contains the counters of the cache usage
	Stats struct {
		// Hits is the number of the requests served from the cache
		Hits int
		// Misses is the number of the requests for the keys which were not in the cache
		Misses int
		// Evictions is the number of the elements pulled out by the policy due to the
		// capacity pressure. The Remove and Clear calls are not counted here
		Evictions int
	}
)

// NewCache creates new cache object. It expects the maximum cache size (maxSize), the
// pull out discipline (policy) and the optional on erase callback (onEraseF) in the
// parameters. The policy must be a dedicated instance, it cannot be shared between caches
func NewCache[K comparable, V any](maxSize int, policy Policy[K], onEraseF OnEraseElemF[K, V]) (*Cache[K, V], error) {
	if maxSize < 1 {
		return nil, fmt.Errorf("NewCache(): the maxSize=%d, but it cannot be less than 1: %w", maxSize, errors.ErrInvalid)
	}
	if policy == nil {
		return nil, fmt.Errorf("NewCache(): the policy must not be nil: %w", errors.ErrInvalid)
	}
	c := new(Cache[K, V])
	c.maxSize = maxSize
	c.entries = iterable.NewMap[K, V]()
	c.policy = policy
	c.onEraseF = onEraseF
	return c, nil
}

// Put adds the value v for the key k or updates the existing one. Updating an existing
// key counts as an access for the policy. If the key is new and the cache is full, the
// policy replacement candidate is pulled out (with the on erase callback call) to free
// the room first. The function never fails
func (c *Cache[K, V]) Put(k K, v V) {
	if _, ok := c.entries.Get(k); ok {
		c.entries.Remove(k)
		c.entries.Add(k, v)
		c.policy.Touch(k)
		c.stats.Hits++
		return
	}
	if c.entries.Len() >= c.maxSize {
		c.evict()
	}
	c.policy.Insert(k)
	c.entries.Add(k, v)
}

// TryGet returns the value by the key k, if it is in the cache. The successful lookup
// counts as an access for the policy, so it may affect who is pulled out next
func (c *Cache[K, V]) TryGet(k K) (V, bool) {
	v, ok := c.entries.Get(k)
	if !ok {
		c.stats.Misses++
		return v, false
	}
	c.policy.Touch(k)
	c.stats.Hits++
	return v, true
}

// Get returns the value by the key k. ErrNotExist is returned if the key is not
// in the cache
func (c *Cache[K, V]) Get(k K) (V, error) {
	v, ok := c.TryGet(k)
	if !ok {
		return v, fmt.Errorf("Get(): no value for the key=%v: %w", k, errors.ErrNotExist)
	}
	return v, nil
}

// Cached returns whether the key k is in the cache. The check is not counted as
// an access, the policy state is not affected
func (c *Cache[K, V]) Cached(k K) bool {
	_, ok := c.entries.Get(k)
	return ok
}

// Size returns the current number of the elements in the cache
func (c *Cache[K, V]) Size() int {
	return c.entries.Len()
}

// Remove deletes the element by the key k. It returns true if the element was in the
// cache and false if it was not found. The on erase callback is called for the
// removed element
func (c *Cache[K, V]) Remove(k K) bool {
	v, ok := c.entries.Get(k)
	if !ok {
		return false
	}
	c.erase(k, v)
	return true
}

// Clear cleans up the cache removing all elements. The on erase callback is NOT called
// for the removed elements, the bulk cleanup is silent
func (c *Cache[K, V]) Clear() {
	it := c.entries.Iterator()
	for it.HasNext() {
		e, ok := it.Next()
		if !ok {
			continue
		}
		c.policy.Erase(e.Key)
	}
	it.Close()
	c.entries = iterable.NewMap[K, V]()
}

// Iterator returns the iterator over the cache elements. The traversal order is the
// order of the underlying storage, it says nothing about who is pulled out next.
// The cache must not be changed while the iterator is in use
func (c *Cache[K, V]) Iterator() iterable.Iterator[iterable.MapEntry[K, V]] {
	return c.entries.Iterator()
}

// Stats returns the cache usage counters
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}

// evict pulls out the policy replacement candidate. It must be called when the cache
// is full only, so the policy is never empty here
func (c *Cache[K, V]) evict() {
	k, err := c.policy.ReplacementCandidate()
	if err != nil {
		// the policy key set diverged from the cache key set, this is a bug
		panic(err)
	}
	v, _ := c.entries.Get(k)
	c.erase(k, v)
	c.stats.Evictions++
}

// erase removes the key from the policy and the storage keeping both in sync. The
// callback is called after the policy forgets the key, but before the storage slot
// is released
func (c *Cache[K, V]) erase(k K, v V) {
	c.policy.Erase(k)
	if c.onEraseF != nil {
		c.onEraseF(k, v)
	}
	c.entries.Remove(k)
}
