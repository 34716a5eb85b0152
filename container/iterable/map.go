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
package iterable

import (
	"fmt"
)

type (
	// Map implements a map with an iterator capability. The iterator allows considering
	// elements from start to end in the order the elements were added into the map.
	// The Map is owned by a single goroutine and must not be changed while an iterator
	// is in use: any mutation invalidates the iterators created before the mutation.
	Map[K comparable, V any] struct {
		vals map[K]*mapItem[K, V]
		head *mapItem[K, V]
		tail *mapItem[K, V]
	}

	// MapEntry implements a record in the Map, which contains Key and the Value for the record
	MapEntry[K comparable, V any] struct {
		Key   K
		Value V
	}

	// mapIterator provides an iterator pattern over the Map structure. It implements
	// the Iterator interface, which allows to move through the Map elements
	mapIterator[K comparable, V any] struct {
		ptr *mapItem[K, V]
	}

	mapItem[K comparable, V any] struct {
		prev *mapItem[K, V]
		next *mapItem[K, V]
		key  K
		val  V
	}
)

// NewMap creates the new instance of Map[K, V]
func NewMap[K comparable, V any]() *Map[K, V] {
	im := new(Map[K, V])
	im.vals = make(map[K]*mapItem[K, V])
	return im
}

// Add allows adding new key-value pair into the map. The function returns error if the key already
// exists in the map
func (im *Map[K, V]) Add(k K, v V) error {
	if _, ok := im.vals[k]; ok {
		return fmt.Errorf("the Map already has value for the key=%v", k)
	}
	it := &mapItem[K, V]{prev: im.tail, key: k, val: v}
	if im.tail != nil {
		im.tail.next = it
	} else {
		im.head = it
	}
	im.tail = it
	im.vals[k] = it
	return nil
}

// Get allows returning value by its key
func (im *Map[K, V]) Get(k K) (V, bool) {
	if it, ok := im.vals[k]; ok {
		return it.val, true
	}
	return *new(V), false
}

// Remove removes the value by its key
func (im *Map[K, V]) Remove(k K) {
	it, ok := im.vals[k]
	if !ok {
		return
	}
	if it.prev != nil {
		it.prev.next = it.next
	} else {
		im.head = it.next
	}
	if it.next != nil {
		it.next.prev = it.prev
	} else {
		im.tail = it.prev
	}
	it.prev, it.next = nil, nil
	delete(im.vals, k)
}

// Len returns current map size
func (im *Map[K, V]) Len() int {
	return len(im.vals)
}

// First returns the first added key and whether the key exists or not
func (im *Map[K, V]) First() (K, bool) {
	if im.head == nil {
		return *new(K), false
	}
	return im.head.key, true
}

// Iterator returns &mapIterator[K, V] object, which implements the Iterator[MapEntry[K, V]] interface
func (im *Map[K, V]) Iterator() Iterator[MapEntry[K, V]] {
	return &mapIterator[K, V]{ptr: im.head}
}

// HasNext returns true if the map contains next element for the iterator. Please see Next() function
func (it *mapIterator[K, V]) HasNext() bool {
	return it.ptr != nil
}

// Next returns the next element and shifts the iterator to next one if it exists.
// This function may return default values for K and V types, if the Next element does
// not exist
func (it *mapIterator[K, V]) Next() (MapEntry[K, V], bool) {
	if it.ptr == nil {
		return MapEntry[K, V]{}, false
	}
	e := MapEntry[K, V]{it.ptr.key, it.ptr.val}
	it.ptr = it.ptr.next
	return e, true
}

// Close closes the iterator. The iterator object must not be used after the call.
func (it *mapIterator[K, V]) Close() error {
	it.ptr = nil
	return nil
}
