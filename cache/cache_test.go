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
	"testing"

	"github.com/solarisdb/bcache/errors"
	"github.com/stretchr/testify/assert"
)

func BenchmarkCache_TryGet(b *testing.B) {
	c, _ := NewCache[string, string](1, NewLRUPolicy[string](), nil)
	c.Put("aa", "bb")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.TryGet("aa")
	}
}

func BenchmarkCache_PutEvict(b *testing.B) {
	c, _ := NewCache[int, int](1000, NewLRUPolicy[int](), nil)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.Put(i, i)
	}
}

func TestNewCache(t *testing.T) {
	c, err := NewCache[string, string](1, NewLRUPolicy[string](), nil)
	assert.Nil(t, err)
	assert.NotNil(t, c)

	_, err = NewCache[string, string](0, NewLRUPolicy[string](), nil)
	assert.ErrorIs(t, err, errors.ErrInvalid)
	_, err = NewCache[string, string](-1, NewLRUPolicy[string](), nil)
	assert.ErrorIs(t, err, errors.ErrInvalid)
	_, err = NewCache[string, string](1, nil, nil)
	assert.ErrorIs(t, err, errors.ErrInvalid)
}

func TestCache_PutGet(t *testing.T) {
	c, err := NewCache[string, int](2, NewLRUPolicy[string](), nil)
	assert.Nil(t, err)

	c.Put("a", 1)
	assert.Equal(t, 1, c.Size())

	v, err := c.Get("a")
	assert.Nil(t, err)
	assert.Equal(t, 1, v)

	_, err = c.Get("b")
	assert.ErrorIs(t, err, errors.ErrNotExist)

	v, ok := c.TryGet("b")
	assert.False(t, ok)
	assert.Equal(t, 0, v)

	assert.True(t, c.Cached("a"))
	assert.False(t, c.Cached("b"))
}

func TestCache_PutUpdates(t *testing.T) {
	c, err := NewCache[string, int](3, NewLRUPolicy[string](), nil)
	assert.Nil(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	c.Put("a", 10)
	assert.Equal(t, 3, c.Size())

	v, err := c.Get("a")
	assert.Nil(t, err)
	assert.Equal(t, 10, v)

	// the update counted as an access, so "a" is not the candidate anymore
	c.Put("d", 4)
	assert.True(t, c.Cached("a"))
	assert.False(t, c.Cached("b"))
}

func TestCache_NeverExceedsCapacity(t *testing.T) {
	c, err := NewCache[int, int](5, NewFIFOPolicy[int](), nil)
	assert.Nil(t, err)
	for i := 0; i < 100; i++ {
		c.Put(i, i)
		assert.LessOrEqual(t, c.Size(), 5)
		c.TryGet(i / 2)
	}
	assert.Equal(t, 5, c.Size())
}

func TestCache_FIFOEviction(t *testing.T) {
	c, err := NewCache[string, int](3, NewFIFOPolicy[string](), nil)
	assert.Nil(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	// the accesses must not save "a" from the eviction
	c.TryGet("a")
	c.TryGet("b")

	c.Put("d", 4)
	assert.False(t, c.Cached("a"))
	assert.True(t, c.Cached("b"))
	assert.True(t, c.Cached("c"))
	assert.True(t, c.Cached("d"))
}

func TestCache_LIFOEviction(t *testing.T) {
	c, err := NewCache[string, int](3, NewLIFOPolicy[string](), nil)
	assert.Nil(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	c.Put("d", 4)
	assert.False(t, c.Cached("c"))
	assert.True(t, c.Cached("a"))
	assert.True(t, c.Cached("b"))
	assert.True(t, c.Cached("d"))
}

func TestCache_LRUEviction(t *testing.T) {
	c, err := NewCache[string, int](3, NewLRUPolicy[string](), nil)
	assert.Nil(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	c.TryGet("a")

	c.Put("d", 4)
	assert.False(t, c.Cached("b"))
	assert.True(t, c.Cached("a"))
	assert.True(t, c.Cached("c"))
	assert.True(t, c.Cached("d"))
}

func TestCache_NoneEviction(t *testing.T) {
	c, err := NewCache[int, int](3, NewNonePolicy[int](), nil)
	assert.Nil(t, err)
	for i := 0; i < 10; i++ {
		c.Put(i, i)
	}
	// no order guarantee, but the capacity must hold
	assert.Equal(t, 3, c.Size())
}

func TestCache_Remove(t *testing.T) {
	erased := []string{}
	c, err := NewCache[string, int](3, NewLRUPolicy[string](), func(k string, v int) {
		erased = append(erased, fmt.Sprintf("%s=%d", k, v))
	})
	assert.Nil(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	assert.False(t, c.Remove("c"))
	assert.Equal(t, 2, c.Size())

	assert.True(t, c.Remove("a"))
	assert.Equal(t, 1, c.Size())
	assert.Equal(t, []string{"a=1"}, erased)
	assert.False(t, c.Remove("a"))

	// the removed key must not be the replacement candidate anymore
	c.Put("c", 3)
	c.Put("d", 4)
	c.Put("e", 5)
	assert.False(t, c.Cached("b"))
	assert.Equal(t, []string{"a=1", "b=2"}, erased)
}

func TestCache_OnEraseF(t *testing.T) {
	erased := map[string]int{}
	c, err := NewCache[string, int](2, NewFIFOPolicy[string](), func(k string, v int) {
		erased[k] = erased[k] + 1
	})
	assert.Nil(t, err)

	c.Put("a", 1)
	c.Put("a", 2)
	c.Put("b", 2)
	assert.Equal(t, 0, len(erased))

	c.Put("c", 3)
	assert.Equal(t, 1, erased["a"])

	c.Put("d", 4)
	assert.Equal(t, 1, erased["b"])
	assert.Equal(t, 2, len(erased))
}

// the hook must see the value which was current at the eviction moment
func TestCache_OnEraseFValue(t *testing.T) {
	var gotK string
	var gotV int
	c, err := NewCache[string, int](1, NewFIFOPolicy[string](), func(k string, v int) {
		gotK, gotV = k, v
	})
	assert.Nil(t, err)

	c.Put("a", 1)
	c.Put("a", 42)
	c.Put("b", 2)
	assert.Equal(t, "a", gotK)
	assert.Equal(t, 42, gotV)
}

func TestCache_Clear(t *testing.T) {
	erased := 0
	c, err := NewCache[int, int](10, NewLRUPolicy[int](), func(k, v int) {
		erased++
	})
	assert.Nil(t, err)

	for i := 0; i < 10; i++ {
		c.Put(i, i)
	}
	c.Clear()
	assert.Equal(t, 0, c.Size())
	// the bulk cleanup is silent
	assert.Equal(t, 0, erased)

	// the policy is empty too, the cache is fully usable after the cleanup
	for i := 0; i < 20; i++ {
		c.Put(i, i)
	}
	assert.Equal(t, 10, c.Size())
	assert.Equal(t, 10, erased)
}

func TestCache_Iterator(t *testing.T) {
	c, err := NewCache[int, int](5, NewLRUPolicy[int](), nil)
	assert.Nil(t, err)
	for i := 0; i < 5; i++ {
		c.Put(i, i*i)
	}
	c.Remove(2)

	visited := map[int]int{}
	it := c.Iterator()
	for it.HasNext() {
		e, ok := it.Next()
		assert.True(t, ok)
		visited[e.Key] = e.Value
	}
	assert.Nil(t, it.Close())

	assert.Equal(t, c.Size(), len(visited))
	for k, v := range visited {
		assert.True(t, c.Cached(k))
		assert.Equal(t, k*k, v)
	}
}

func TestCache_Stats(t *testing.T) {
	c, err := NewCache[string, int](2, NewLRUPolicy[string](), nil)
	assert.Nil(t, err)

	c.TryGet("a")
	c.Put("a", 1)
	c.TryGet("a")
	c.Put("a", 2)
	c.Get("b")
	c.Put("b", 2)
	c.Put("c", 3)

	s := c.Stats()
	assert.Equal(t, 2, s.Hits)
	assert.Equal(t, 2, s.Misses)
	assert.Equal(t, 1, s.Evictions)

	// Cached and Remove don't count
	c.Cached("b")
	c.Remove("b")
	assert.Equal(t, s, c.Stats())
}
