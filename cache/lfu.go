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
	"container/heap"
	"fmt"

	"github.com/solarisdb/bcache/errors"
)

type (
	// LFUPolicy implements the Least Frequently Used pull out discipline: the key with
	// the lowest number of accesses is the one to be pulled out first. The insertion
	// counts as the first access, every touch adds one more.
	LFUPolicy[K comparable] struct {
		heap  lfuHeap[K]
		items map[K]*lfuItem[K]
	}

	lfuItem[K comparable] struct {
		key  K
		uses int
		// idx is the position of the item in the heap
		idx int
	}

	// lfuHeap is the min-heap of the items by the uses count
	lfuHeap[K comparable] []*lfuItem[K]
)

var _ Policy[int] = (*LFUPolicy[int])(nil)

// NewLFUPolicy creates the new LFUPolicy instance
func NewLFUPolicy[K comparable]() *LFUPolicy[K] {
	return &LFUPolicy[K]{items: make(map[K]*lfuItem[K])}
}

// Insert records the new key k with one use. The uses count is not changed if the
// key is already tracked
func (p *LFUPolicy[K]) Insert(k K) {
	if _, ok := p.items[k]; ok {
		return
	}
	it := &lfuItem[K]{key: k, uses: 1}
	heap.Push(&p.heap, it)
	p.items[k] = it
}

// Touch adds one use to the key k. The call is ignored if the key is not tracked
func (p *LFUPolicy[K]) Touch(k K) {
	if it, ok := p.items[k]; ok {
		it.uses++
		heap.Fix(&p.heap, it.idx)
	}
}

// Erase removes the key k from the tracking
func (p *LFUPolicy[K]) Erase(k K) {
	if it, ok := p.items[k]; ok {
		heap.Remove(&p.heap, it.idx)
		delete(p.items, k)
	}
}

// ReplacementCandidate returns the key with the lowest uses count
func (p *LFUPolicy[K]) ReplacementCandidate() (K, error) {
	if len(p.heap) == 0 {
		return *new(K), fmt.Errorf("ReplacementCandidate(): no keys are tracked by the LFU policy: %w", errors.ErrInternal)
	}
	return p.heap[0].key, nil
}

func (h lfuHeap[K]) Len() int { return len(h) }

func (h lfuHeap[K]) Less(i, j int) bool {
	return h[i].uses < h[j].uses
}

func (h lfuHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].idx = i
	h[j].idx = j
}

func (h *lfuHeap[K]) Push(x any) {
	it := x.(*lfuItem[K])
	it.idx = len(*h)
	*h = append(*h, it)
}

func (h *lfuHeap[K]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.idx = -1
	*h = old[:n-1]
	return it
}
