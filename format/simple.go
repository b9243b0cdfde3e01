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

package format

import (
	"github.com/bufbuild/markout/internal/ext/slicesx"
)

// NoFormatting never breaks the line, producing the whole document as a
// single line of text.
type NoFormatting struct {
	step int
}

// NewNoFormatting returns a new [NoFormatting].
func NewNoFormatting() *NoFormatting {
	return &NoFormatting{step: DefaultIndentStep}
}

// Decide implements [Formatter].
func (f *NoFormatting) Decide(*State) Decision {
	return Decision{}
}

// SetIndentStep implements [Formatter]. The step is tracked but never used.
func (f *NoFormatting) SetIndentStep(step int) {
	f.step = step
}

// IndentStep implements [Formatter].
func (f *NoFormatting) IndentStep() int {
	return f.step
}

// Reset implements [Formatter].
func (f *NoFormatting) Reset() {
	f.step = DefaultIndentStep
}

// AlwaysIndentAlwaysLf puts every tag and every block of text on a line of
// its own, one indentation level per open tag. Tag names are ignored
// entirely; for per-tag control use [AutoIndent].
//
// The one exception is an empty pair, whose closing tag shares neither
// indentation change nor line with its content: <p> directly followed by
// </p> breaks the line between the two but does not indent.
type AlwaysIndentAlwaysLf struct {
	step int
}

// NewAlwaysIndentAlwaysLf returns a new [AlwaysIndentAlwaysLf].
func NewAlwaysIndentAlwaysLf() *AlwaysIndentAlwaysLf {
	return &AlwaysIndentAlwaysLf{step: DefaultIndentStep}
}

// Decide implements [Formatter].
func (f *AlwaysIndentAlwaysLf) Decide(state *State) Decision {
	if state.Next.Kind == KindClosing {
		if state.Last.Kind == KindOpening {
			return Decision{Linefeed: true}
		}
		return indentLess(state.Indent, f.step)
	}
	switch state.Last.Kind {
	case KindInitial, KindClosing, KindSelfClosing:
		return Decision{Linefeed: true}
	case KindOpening:
		if slicesx.Among(state.Next.Kind, KindOpening, KindSelfClosing, KindText) {
			return indentMore(state.Indent, f.step)
		}
	}
	return Decision{}
}

// SetIndentStep implements [Formatter].
func (f *AlwaysIndentAlwaysLf) SetIndentStep(step int) {
	f.step = step
}

// IndentStep implements [Formatter].
func (f *AlwaysIndentAlwaysLf) IndentStep() int {
	return f.step
}

// Reset implements [Formatter].
func (f *AlwaysIndentAlwaysLf) Reset() {
	f.step = DefaultIndentStep
}
