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

type (
	// keyList is a doubly-linked list of keys paired with the key->node index. The pairing
	// gives O(1) for all the operations including removal and move-to-front, which the
	// order-based policies (FIFO, LIFO, LRU) are built on
	keyList[K comparable] struct {
		head  *keyNode[K]
		tail  *keyNode[K]
		index map[K]*keyNode[K]
	}

	keyNode[K comparable] struct {
		prev *keyNode[K]
		next *keyNode[K]
		key  K
	}
)

func newKeyList[K comparable]() *keyList[K] {
	return &keyList[K]{index: make(map[K]*keyNode[K])}
}

func (l *keyList[K]) len() int {
	return len(l.index)
}

func (l *keyList[K]) contains(k K) bool {
	_, ok := l.index[k]
	return ok
}

// pushFront adds the key k to the front of the list. The call is ignored if the
// key is already in the list
func (l *keyList[K]) pushFront(k K) {
	if _, ok := l.index[k]; ok {
		return
	}
	n := &keyNode[K]{next: l.head, key: k}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.index[k] = n
}

// moveToFront moves the key k node to the front of the list keeping the rest of
// the order intact. The call is ignored if the key is not in the list
func (l *keyList[K]) moveToFront(k K) {
	n, ok := l.index[k]
	if !ok || n == l.head {
		return
	}
	l.unlink(n)
	n.prev, n.next = nil, l.head
	l.head.prev = n
	l.head = n
}

// remove removes the key k from the list. The call is ignored if the key is not
// in the list
func (l *keyList[K]) remove(k K) {
	n, ok := l.index[k]
	if !ok {
		return
	}
	l.unlink(n)
	n.prev, n.next = nil, nil
	delete(l.index, k)
}

// front returns the most recently pushed key
func (l *keyList[K]) front() (K, bool) {
	if l.head == nil {
		return *new(K), false
	}
	return l.head.key, true
}

// back returns the oldest pushed key
func (l *keyList[K]) back() (K, bool) {
	if l.tail == nil {
		return *new(K), false
	}
	return l.tail.key, true
}

func (l *keyList[K]) unlink(n *keyNode[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
}
