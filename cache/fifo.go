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

// FIFOPolicy implements the First-In-First-Out pull out discipline: the key which
// was inserted first is the one to be pulled out first. Accesses don't affect the order.
type FIFOPolicy[K comparable] struct {
	order *keyList[K]
}

var _ Policy[int] = (*FIFOPolicy[int])(nil)

// NewFIFOPolicy creates the new FIFOPolicy instance
func NewFIFOPolicy[K comparable]() *FIFOPolicy[K] {
	return &FIFOPolicy[K]{order: newKeyList[K]()}
}

// Insert records the new key k. The order is not changed if the key is already tracked
func (p *FIFOPolicy[K]) Insert(k K) {
	p.order.pushFront(k)
}

// Touch does nothing, FIFO doesn't care about accesses
func (p *FIFOPolicy[K]) Touch(k K) {}

// Erase removes the key k from the tracking
func (p *FIFOPolicy[K]) Erase(k K) {
	p.order.remove(k)
}

// ReplacementCandidate returns the oldest inserted key
func (p *FIFOPolicy[K]) ReplacementCandidate() (K, error) {
	k, ok := p.order.back()
	if !ok {
		return k, fmt.Errorf("ReplacementCandidate(): no keys are tracked by the FIFO policy: %w", errors.ErrInternal)
	}
	return k, nil
}
