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

	"github.com/solarisdb/bcache/errors"
)

// LRUPolicy implements the Least Recently Used pull out discipline: the key which
// was not accessed for the longest time is the one to be pulled out first. Both the
// insertion and the touch make the key the most recently used one.
type LRUPolicy[K comparable] struct {
	order *keyList[K]
}

var _ Policy[int] = (*LRUPolicy[int])(nil)

// NewLRUPolicy creates the new LRUPolicy instance
func NewLRUPolicy[K comparable]() *LRUPolicy[K] {
	return &LRUPolicy[K]{order: newKeyList[K]()}
}

// Insert records the new key k as the most recently used one. The order is not
// changed if the key is already tracked
func (p *LRUPolicy[K]) Insert(k K) {
	p.order.pushFront(k)
}

// Touch makes the key k the most recently used one. The call is ignored if the key
// is not tracked
func (p *LRUPolicy[K]) Touch(k K) {
	p.order.moveToFront(k)
}

// Erase removes the key k from the tracking
func (p *LRUPolicy[K]) Erase(k K) {
	p.order.remove(k)
}

// ReplacementCandidate returns the least recently used key
func (p *LRUPolicy[K]) ReplacementCandidate() (K, error) {
	k, ok := p.order.back()
	if !ok {
		return k, fmt.Errorf("ReplacementCandidate(): no keys are tracked by the LRU policy: %w", errors.ErrInternal)
	}
	return k, nil
}
