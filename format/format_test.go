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

package format_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/markout/format"
)

// Decisions the table tests below check against.
var (
	nothing  = format.Decision{}
	linefeed = format.Decision{Linefeed: true}
)

// indentTo is a linefeed decision that also moves the indentation to n
// spaces.
func indentTo(n int) format.Decision {
	return format.Decision{Linefeed: true, SetIndent: true, Indent: n}
}

// A step is one event of a replayed document and the decision the formatter
// under test is expected to make for it.
type step struct {
	next format.Event
	want format.Decision
}

// replay drives f through a document's event sequence, checking the decision
// made before each event and evolving the state the way a writer would.
func replay(t *testing.T, f format.Formatter, steps []step) {
	t.Helper()
	state := new(format.State)
	for i, s := range steps {
		state.Next = s.next
		got := f.Decide(state)
		if diff := cmp.Diff(s.want, got); diff != "" {
			t.Errorf("step %d, %v -> %v: wrong decision (-want +got):\n%s", i, state.Last, state.Next, diff)
		}
		advance(state, got)
	}
}

// advance applies a decision to state and commits state.Next, mirroring what
// a writer does between events.
func advance(state *format.State, d format.Decision) {
	if d.SetIndent {
		state.Indent = d.Indent
	}
	switch state.Next.Kind {
	case format.KindOpening:
		state.Open = append(state.Open, state.Next.Tag)
	case format.KindClosing:
		state.Open = state.Open[:len(state.Open)-1]
	}
	state.Last = state.Next
}

func TestEventZeroValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, format.Initial(), format.Event{})
	assert.Equal(t, format.KindInitial, format.Event{}.Kind)
}

func TestEventString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Initial", format.Initial().String())
	assert.Equal(t, "Opening(div)", format.Opening("div").String())
	assert.Equal(t, "Closing(div)", format.Closing("div").String())
	assert.Equal(t, "SelfClosing(img)", format.SelfClosing("img").String())
	assert.Equal(t, "Text", format.Text().String())
	assert.Equal(t, "LineFeed", format.LineFeed().String())
	assert.Equal(t, "format.Kind(42)", format.Kind(42).String())
}

func TestRuleString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "IndentAlways", format.IndentAlways.String())
	assert.Equal(t, "LfAlways", format.LfAlways.String())
	assert.Equal(t, "LfClosing", format.LfClosing.String())
	assert.Equal(t, "format.Rule(0)", format.Rule(0).String())
}
