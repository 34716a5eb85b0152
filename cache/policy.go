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

type (
	// Policy defines the pull out discipline for the Cache. The policy tracks keys only,
	// it never sees the values. The Cache keeps the policy key set equal to its own key
	// set: every key added to the cache is Insert-ed into the policy and every key removed
	// from the cache is Erase-d from it.
	Policy[K comparable] interface {
		// Insert records the new key k. The call must be safe for a key which is already
		// tracked, this case the order of the tracked keys is not changed
		Insert(k K)

		// Touch records that the key k was accessed. The call is ignored if the key is
		// not tracked
		Touch(k K)

		// Erase removes the key k from the tracking. The call is ignored if the key is
		// not tracked
		Erase(k K)

		// ReplacementCandidate returns the key that should be pulled out next. It returns
		// an error wrapping errors.ErrInternal if no keys are tracked
		ReplacementCandidate() (K, error)
	}

	// NonePolicy tracks the keys membership only and doesn't follow any pull out order.
	// Its ReplacementCandidate returns an arbitrary tracked key
	NonePolicy[K comparable] struct {
		keys map[K]struct{}
	}
)

var _ Policy[int] = (*NonePolicy[int])(nil)

// NewNonePolicy creates the new NonePolicy instance
func NewNonePolicy[K comparable]() *NonePolicy[K] {
	return &NonePolicy[K]{keys: make(map[K]struct{})}
}

// Insert records the new key k
func (p *NonePolicy[K]) Insert(k K) {
	p.keys[k] = struct{}{}
}

// Touch does nothing, the policy doesn't distinguish accessed keys
func (p *NonePolicy[K]) Touch(k K) {}

// Erase removes the key k from the tracking
func (p *NonePolicy[K]) Erase(k K) {
	delete(p.keys, k)
}

// ReplacementCandidate returns any tracked key, there is no order guarantee
func (p *NonePolicy[K]) ReplacementCandidate() (K, error) {
	for k := range p.keys {
		return k, nil
	}
	return *new(K), fmt.Errorf("ReplacementCandidate(): no keys are tracked by the policy: %w", errors.ErrInternal)
}
