// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tagset provides an ordered set of markup tag names.
package tagset

import (
	"github.com/tidwall/btree"
)

// Set is an ordered set of tag names. Membership checks are the hot path;
// iteration yields tags in lexical order.
//
// A zero value is ready to use.
type Set struct {
	tree btree.Map[string, struct{}]
}

// Insert adds tags to the set. Duplicates are absorbed.
func (s *Set) Insert(tags ...string) {
	for _, tag := range tags {
		s.tree.Set(tag, struct{}{})
	}
}

// Has reports whether tag is in the set.
func (s *Set) Has(tag string) bool {
	_, ok := s.tree.Get(tag)
	return ok
}

// Len returns the number of tags in the set.
func (s *Set) Len() int {
	return s.tree.Len()
}

// Values returns the tags in lexical order.
func (s *Set) Values() []string {
	values := make([]string, 0, s.tree.Len())
	iter := s.tree.Iter()
	for more := iter.First(); more; more = iter.Next() {
		values = append(values, iter.Key())
	}
	return values
}

// Clear removes every tag from the set.
func (s *Set) Clear() {
	s.tree = btree.Map[string, struct{}]{}
}
