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

// Package format decides where linefeeds and indentation go in a streaming
// markup document.
//
// A [Formatter] never sees the document text. It sees a [State]: the event
// most recently written, the event about to be written, the open-tag stack,
// and the current indentation. From that window it returns a [Decision],
// which the writer applies before emitting the next piece of markup.
//
// Three formatters are provided. [NoFormatting] emits everything on one
// line, [AlwaysIndentAlwaysLf] puts every element on its own line, and
// [AutoIndent] lays documents out from per-tag rules.
package format

import (
	"fmt"
)

// DefaultIndentStep is the number of spaces one indentation level adds when
// a formatter is not configured otherwise.
const DefaultIndentStep = 4

// Kind classifies the events a markup writer feeds to a [Formatter].
type Kind byte

const (
	// KindInitial is the state before anything has been written. It is the
	// zero value, and only ever appears as [State].Last.
	KindInitial Kind = iota
	// KindOpening is an opening tag, such as <div>.
	KindOpening
	// KindClosing is a closing tag, such as </div>.
	KindClosing
	// KindSelfClosing is a tag with no matching closer, such as <img>.
	KindSelfClosing
	// KindText is raw text content.
	KindText
	// KindLineFeed is an explicit line break requested by the caller.
	KindLineFeed
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindInitial:
		return "Initial"
	case KindOpening:
		return "Opening"
	case KindClosing:
		return "Closing"
	case KindSelfClosing:
		return "SelfClosing"
	case KindText:
		return "Text"
	case KindLineFeed:
		return "LineFeed"
	default:
		return fmt.Sprintf("format.Kind(%d)", int(k))
	}
}

// Event is a single step of a markup document: a tag together with the role
// it plays, or a tagless step such as text content.
//
// The zero value is the Initial event.
type Event struct {
	Kind Kind
	// Tag is the tag name for Opening, Closing, and SelfClosing events, and
	// empty otherwise.
	Tag string
}

// Initial returns the event representing the start of a document.
func Initial() Event {
	return Event{}
}

// Opening returns an opening tag event.
func Opening(tag string) Event {
	return Event{Kind: KindOpening, Tag: tag}
}

// Closing returns a closing tag event.
func Closing(tag string) Event {
	return Event{Kind: KindClosing, Tag: tag}
}

// SelfClosing returns a self-closing tag event.
func SelfClosing(tag string) Event {
	return Event{Kind: KindSelfClosing, Tag: tag}
}

// Text returns a text content event.
func Text() Event {
	return Event{Kind: KindText}
}

// LineFeed returns an explicit line break event.
func LineFeed() Event {
	return Event{Kind: KindLineFeed}
}

// String implements [fmt.Stringer].
func (e Event) String() string {
	if e.Tag == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Tag)
}

// State is the window a [Formatter] sees when deciding how to lay out the
// next piece of markup.
type State struct {
	// Open is the stack of currently open tag names, outermost first. The
	// tag of a pending Opening event is pushed after its decision is made,
	// and the tag of a Closing event is popped after its decision is made.
	Open []string
	// Last is the most recently written event.
	Last Event
	// Next is the event about to be written.
	Next Event
	// Indent is the active indentation, in spaces.
	Indent int
}

// Decision is a [Formatter]'s answer for a single state transition: whether
// to start a new line before the next piece of markup, and optionally a new
// indentation to use from here on.
type Decision struct {
	// Linefeed starts a new line, at the active indentation, before the next
	// piece of markup.
	Linefeed bool
	// SetIndent changes the active indentation to Indent. The change applies
	// before Linefeed is honored.
	SetIndent bool
	// Indent is the new indentation in spaces. Meaningful only when
	// SetIndent is set.
	Indent int
}

// indentMore returns a decision that indents one level deeper and breaks
// the line.
func indentMore(indent, step int) Decision {
	return Decision{Linefeed: true, SetIndent: true, Indent: indent + step}
}

// indentLess is the inverse of [indentMore]. Indentation saturates at zero.
func indentLess(indent, step int) Decision {
	indent -= step
	if indent < 0 {
		indent = 0
	}
	return Decision{Linefeed: true, SetIndent: true, Indent: indent}
}

// Formatter decides the layout of a streaming markup document.
//
// Formatters are stateful: [AutoIndent] keeps indentation bookkeeping that
// spans the whole document, so a formatter must not be shared by two
// documents at once, and must be [Formatter.Reset] (or discarded) between
// documents. None of the methods are safe for concurrent use.
type Formatter interface {
	// Decide inspects the transition from state.Last to state.Next and
	// returns the layout change to apply before state.Next is written.
	Decide(state *State) Decision

	// SetIndentStep changes the number of spaces per indentation level.
	SetIndentStep(step int)

	// IndentStep reports the number of spaces per indentation level.
	IndentStep() int

	// Reset restores the formatter to its just-constructed configuration.
	// Callers only invoke this between documents, when no tags are open.
	Reset()
}
