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
	"fmt"
	"slices"

	"github.com/bufbuild/markout/internal/ext/slicesx"
	"github.com/bufbuild/markout/internal/tagset"
)

// Rule selects one of [AutoIndent]'s per-tag behaviors.
type Rule byte

const (
	// IndentAlways indents the content of a tag by one level, closing tag
	// on its own line.
	IndentAlways Rule = 1 + iota
	// LfAlways puts every occurrence of a tag on its own line, without
	// indenting its content.
	LfAlways
	// LfClosing breaks the line each time a tag is done, that is, after its
	// closing tag or after a self-closing occurrence.
	LfClosing
)

// String implements [fmt.Stringer].
func (r Rule) String() string {
	switch r {
	case IndentAlways:
		return "IndentAlways"
	case LfAlways:
		return "LfAlways"
	case LfClosing:
		return "LfClosing"
	default:
		return fmt.Sprintf("format.Rule(%d)", int(r))
	}
}

// ConflictError is returned by [AutoIndent.Register] when tags are added
// under a rule that cannot coexist with a rule they already belong to.
// Registration is all-or-nothing: when this error is returned, none of the
// tags were registered, not even the unoffending ones.
type ConflictError struct {
	// Rule is the rule the registration was for.
	Rule Rule
	// Existing is the rule the offending tags already belong to.
	Existing Rule
	// Tags are the offending tags, in lexical order.
	Tags []string
}

// Error implements error.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot add %v to rule %v: already registered under rule %v", e.Tags, e.Rule, e.Existing)
}

// AutoIndent lays out a document from per-tag rules.
//
// Tags registered under [IndentAlways] indent their content; tags under
// [LfAlways] sit on lines of their own; tags under [LfClosing] break the
// line once they are done. A tag may belong to both IndentAlways and
// LfClosing, but LfAlways subsumes the other two and coexists with neither.
// Unregistered tags flow with the surrounding text. An explicit line break
// right after an opening tag indents that tag's content as if it were
// registered under IndentAlways.
//
// With no rules registered, AutoIndent emits everything on one line, like
// [NoFormatting].
type AutoIndent struct {
	step int

	indentAlways tagset.Set
	lfAlways     tagset.Set
	lfClosing    tagset.Set

	// decisions records, for each enclosing tag whose content has begun,
	// whether that content was indented. An opening tag followed directly
	// by its closing tag never gets an entry.
	decisions []bool
}

// NewAutoIndent returns an [AutoIndent] with no rules registered.
func NewAutoIndent() *AutoIndent {
	return &AutoIndent{step: DefaultIndentStep}
}

// Register adds tags under rule.
//
// If any tag already belongs to a rule that cannot coexist with rule, no
// tags are registered and a [*ConflictError] names every offender.
// Registering a tag twice under the same rule is a no-op.
func (f *AutoIndent) Register(rule Rule, tags ...string) error {
	var forbidden []Rule
	switch rule {
	case IndentAlways, LfClosing:
		forbidden = []Rule{LfAlways}
	case LfAlways:
		forbidden = []Rule{IndentAlways, LfClosing}
	default:
		return fmt.Errorf("unknown rule %v", rule)
	}

	for _, existing := range forbidden {
		var offending []string
		for _, tag := range tags {
			if f.rule(existing).Has(tag) {
				offending = append(offending, tag)
			}
		}
		if len(offending) > 0 {
			slices.Sort(offending)
			offending = slices.Compact(offending)
			return &ConflictError{Rule: rule, Existing: existing, Tags: offending}
		}
	}

	f.rule(rule).Insert(tags...)
	return nil
}

// RegisterHTMLDefaults registers a rule set that lays out everyday HTML
// documents well: html on its own lines, the top-level sectioning tags
// indenting their content, and title, link, and div breaking the line when
// they are done.
func (f *AutoIndent) RegisterHTMLDefaults() error {
	if err := f.Register(IndentAlways, "head", "body", "section", "header", "footer", "nav"); err != nil {
		return err
	}
	if err := f.Register(LfAlways, "html"); err != nil {
		return err
	}
	return f.Register(LfClosing, "title", "link", "div")
}

func (f *AutoIndent) rule(rule Rule) *tagset.Set {
	switch rule {
	case IndentAlways:
		return &f.indentAlways
	case LfAlways:
		return &f.lfAlways
	case LfClosing:
		return &f.lfClosing
	default:
		panic(fmt.Sprintf("format: unknown rule %v", rule))
	}
}

// Depth reports how many enclosing tags the formatter is tracking an
// indentation decision for. It is zero exactly when every opened tag has
// been closed again.
func (f *AutoIndent) Depth() int {
	return len(f.decisions)
}

// Decide implements [Formatter].
func (f *AutoIndent) Decide(state *State) Decision {
	if state.Next.Kind == KindClosing {
		return f.decideClosing(state)
	}

	switch state.Last.Kind {
	case KindInitial:
		return Decision{Linefeed: true}

	case KindOpening:
		// The first event inside state.Last's pair settles whether that
		// pair's content is indented. An explicit line break asks for
		// indentation unless the tag is laid out by LfAlways.
		explicit := state.Next.Kind == KindLineFeed && !f.lfAlways.Has(state.Last.Tag)
		indent := explicit || f.indentAlways.Has(state.Last.Tag)
		f.decisions = append(f.decisions, indent)
		switch {
		case indent:
			return indentMore(state.Indent, f.step)
		case f.lfAlways.Has(state.Last.Tag):
			return Decision{Linefeed: true}
		}

	case KindClosing:
		if f.indentAlways.Has(state.Last.Tag) || f.lfAlways.Has(state.Last.Tag) || f.lfClosing.Has(state.Last.Tag) {
			return Decision{Linefeed: true}
		}

	case KindSelfClosing:
		if f.lfClosing.Has(state.Last.Tag) {
			return Decision{Linefeed: true}
		}
	}

	return Decision{}
}

func (f *AutoIndent) decideClosing(state *State) Decision {
	if state.Last.Kind == KindOpening {
		// Empty pair: state.Next closes state.Last before any content
		// settled an indentation decision, so there is nothing to pop.
		if f.lfAlways.Has(state.Last.Tag) {
			return Decision{Linefeed: true}
		}
		return Decision{}
	}

	indented, ok := slicesx.Pop(&f.decisions)
	if !ok {
		panic(fmt.Sprintf("format: no indentation decision on record for closing %q", state.Next.Tag))
	}
	if indented {
		return indentLess(state.Indent, f.step)
	}
	if (f.indentAlways.Has(state.Last.Tag) && state.Last.Kind == KindClosing) ||
		f.lfAlways.Has(state.Last.Tag) ||
		(f.lfClosing.Has(state.Last.Tag) && slicesx.Among(state.Last.Kind, KindClosing, KindSelfClosing)) {
		return Decision{Linefeed: true}
	}
	return Decision{}
}

// SetIndentStep implements [Formatter].
func (f *AutoIndent) SetIndentStep(step int) {
	f.step = step
}

// IndentStep implements [Formatter].
func (f *AutoIndent) IndentStep() int {
	return f.step
}

// Reset implements [Formatter]. All rules are dropped. Like every use of a
// formatter, this must not happen in the middle of a document; [AutoIndent.Depth]
// tells whether a document is still open.
func (f *AutoIndent) Reset() {
	f.step = DefaultIndentStep
	f.indentAlways.Clear()
	f.lfAlways.Clear()
	f.lfClosing.Clear()
	f.decisions = f.decisions[:0]
}
