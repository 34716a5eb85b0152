// Copyright 2024 The Solaris Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
/*
Package cache contains the container with limited size capacity and a pluggable
pull out discipline. The container uses golang generics, so it can be instantiated
for different key and value types. The discipline is provided via the Policy
interface, the package offers the None, FIFO, LIFO, LRU and LFU implementations
out of the box.

The package objects are not safe for the concurrent use. The containers are
supposed to be owned by one goroutine, callers that need to share a cache between
goroutines should wrap it with their own synchronization.
*/
package cache
