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
	"time"

	"github.com/solarisdb/bcache/errors"
)

type (
	// ExpirableCache - wrapper around Cache that checks if the value reached its
	// expires at timestamp. The expired values are dropped on access and reported
	// as misses. There is no background sweeping, the expired values which are
	// never requested stay in the cache until the policy pulls them out
	ExpirableCache[K comparable, V CacheItem] struct {
		*Cache[K, V]
	}

	// ExpirableItem - a helper struct for the expirable cache.
	// Allows to store any value in cache with an expires at timestamp.
	ExpirableItem[V any] struct {
		Value     V
		ExpiresAt time.Time
	}

	// CacheItem - interface for ExpirableItem that needs to be implemented
	// in order to work with ExpirableCache cache
	CacheItem interface {
		GetValue() any
		GetExpiresAt() time.Time
	}
)

// NewExpirableCache creates the new ExpirableCache object, see NewCache for the
// parameters description
func NewExpirableCache[K comparable, V CacheItem](maxSize int, policy Policy[K], onEraseF OnEraseElemF[K, V]) (*ExpirableCache[K, V], error) {
	c, err := NewCache[K, V](maxSize, policy, onEraseF)
	if err != nil {
		return nil, err
	}
	ec := new(ExpirableCache[K, V])
	ec.Cache = c
	return ec, nil
}

// TryGet returns the value by the key k, if it is in the cache and not expired yet.
// The expired value is removed from the cache (with the on erase callback call) and
// the miss is reported
func (p *ExpirableCache[K, V]) TryGet(k K) (V, bool) {
	v, ok := p.Cache.TryGet(k)
	if !ok {
		return v, false
	}
	if v.GetExpiresAt().Before(time.Now()) {
		p.Remove(k)
		return *new(V), false
	}
	return v, true
}

// Get returns the value by the key k. ErrNotExist is returned if the key is not
// in the cache or the value is expired
func (p *ExpirableCache[K, V]) Get(k K) (V, error) {
	v, ok := p.TryGet(k)
	if !ok {
		return v, fmt.Errorf("Get(): no value for the key=%v: %w", k, errors.ErrNotExist)
	}
	return v, nil
}

// NewCacheItem wraps the value with the expires at timestamp
func NewCacheItem[V any](value V, expiresAt time.Time) ExpirableItem[V] {
	return ExpirableItem[V]{
		Value:     value,
		ExpiresAt: expiresAt,
	}
}

func (i ExpirableItem[V]) GetValue() any {
	return i.Value
}

func (i ExpirableItem[V]) GetExpiresAt() time.Time {
	return i.ExpiresAt
}
