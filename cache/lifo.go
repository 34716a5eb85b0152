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

// LIFOPolicy implements the Last-In-First-Out pull out discipline: the key which
// was inserted last is the one to be pulled out first. Accesses don't affect the order.
type LIFOPolicy[K comparable] struct {
	order *keyList[K]
}

var _ Policy[int] = (*LIFOPolicy[int])(nil)

// NewLIFOPolicy creates the new LIFOPolicy instance
func NewLIFOPolicy[K comparable]() *LIFOPolicy[K] {
	return &LIFOPolicy[K]{order: newKeyList[K]()}
}

// Insert records the new key k. The order is not changed if the key is already tracked
func (p *LIFOPolicy[K]) Insert(k K) {
	p.order.pushFront(k)
}

// Touch does nothing, LIFO doesn't care about accesses
func (p *LIFOPolicy[K]) Touch(k K) {}

// Erase removes the key k from the tracking
func (p *LIFOPolicy[K]) Erase(k K) {
	p.order.remove(k)
}

// ReplacementCandidate returns the most recently inserted key
func (p *LIFOPolicy[K]) ReplacementCandidate() (K, error) {
	k, ok := p.order.front()
	if !ok {
		return k, fmt.Errorf("ReplacementCandidate(): no keys are tracked by the LIFO policy: %w", errors.ErrInternal)
	}
	return k, nil
}
