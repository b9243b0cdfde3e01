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

package markout

import (
	"strings"

	"github.com/bufbuild/markout/format"
	"github.com/bufbuild/markout/internal/ext/slicesx"
	"github.com/bufbuild/markout/syntax"
)

// pending tracks the deferred terminator of the most recent tag head. The
// head of an opening or self-closing tag stays open across calls so that
// attributes can still be attached to it; the next event (or [Writer.Finalize])
// writes the terminator.
type pending byte

const (
	pendingNone pending = iota
	pendingOpening
	pendingSelfClosing
)

// Writer emits a markup document call by call: open a tag, attach
// attributes, write text, close tags, and so on. A [format.Formatter]
// decides where linefeeds and indentation go; a [syntax.Dialect] decides how
// tags and attributes are spelled.
//
// Calls that make no sense in the writer's current state fail with a
// [*UsageError] and leave the document untouched; the writer remains usable.
// Errors from the [Document] sink are returned as is, and a writer whose
// sink has failed must be discarded.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	doc       Document
	dialect   syntax.Dialect
	formatter format.Formatter

	state     format.State
	pending   pending
	wroteAttr bool
	finalized bool

	// indent is "\n" followed by state.Indent spaces, rebuilt whenever the
	// formatter changes the indentation.
	indent string
	pos    Position
}

// Option configures a [Writer] at construction.
type Option func(*Writer)

// WithFormatter selects the formatter that decides linefeeds and
// indentation. The default is a [*format.AutoIndent] with no rules
// registered, which emits everything on a single line.
func WithFormatter(f format.Formatter) Option {
	return func(w *Writer) {
		w.formatter = f
	}
}

// NewWriter starts a new document in doc, immediately writing dialect's
// preamble.
func NewWriter(doc Document, dialect syntax.Dialect, opts ...Option) (*Writer, error) {
	w := &Writer{
		doc:       doc,
		dialect:   dialect,
		formatter: format.NewAutoIndent(),
		indent:    "\n",
		pos:       Position{Line: 1, Column: 1},
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.write(dialect.Preamble); err != nil {
		return nil, err
	}
	return w, nil
}

// Open writes an opening tag. Its head stays open: attributes attached with
// [Writer.Attr] land inside it, and the terminator (">" in HTML) is written
// by whatever call comes next.
func (w *Writer) Open(tag string) error {
	if w.finalized {
		return w.usage("open", tag, ErrFinalized)
	}
	before, _, ok := w.dialect.Delims(format.KindOpening)
	if !ok {
		return w.usage("open", tag, ErrUnsupported)
	}
	if err := w.flushPending(); err != nil {
		return err
	}
	next := format.Opening(tag)
	if err := w.step(next); err != nil {
		return err
	}
	if err := w.write(before + tag); err != nil {
		return err
	}
	w.pending = pendingOpening
	w.wroteAttr = false
	w.advance(next)
	return nil
}

// Close writes the closing tag of the most recently opened tag.
func (w *Writer) Close() error {
	if w.finalized {
		return w.usage("close", "", ErrFinalized)
	}
	tag, ok := slicesx.Last(w.state.Open)
	if !ok {
		return w.usage("close", "", ErrUnbalanced)
	}
	before, after, ok := w.dialect.Delims(format.KindClosing)
	if !ok {
		return w.usage("close", tag, ErrUnsupported)
	}
	if err := w.flushPending(); err != nil {
		return err
	}
	next := format.Closing(tag)
	if err := w.step(next); err != nil {
		return err
	}
	// Nothing attaches to a closing tag, so its terminator is not deferred.
	if err := w.write(before + tag + after); err != nil {
		return err
	}
	w.advance(next)
	return nil
}

// CloseAll closes every open tag, innermost first.
func (w *Writer) CloseAll() error {
	for len(w.state.Open) > 0 {
		if err := w.Close(); err != nil {
			return err
		}
	}
	return nil
}

// SelfClosing writes a self-closing tag. Like [Writer.Open], it leaves the
// tag head open for attributes; the terminator (">" in HTML, " />" in XML)
// is written by the next call.
func (w *Writer) SelfClosing(tag string) error {
	if w.finalized {
		return w.usage("self-closing", tag, ErrFinalized)
	}
	before, _, ok := w.dialect.Delims(format.KindSelfClosing)
	if !ok {
		return w.usage("self-closing", tag, ErrUnsupported)
	}
	if err := w.flushPending(); err != nil {
		return err
	}
	next := format.SelfClosing(tag)
	if err := w.step(next); err != nil {
		return err
	}
	if err := w.write(before + tag); err != nil {
		return err
	}
	w.pending = pendingSelfClosing
	w.wroteAttr = false
	w.advance(next)
	return nil
}

// Attr attaches one name="value" attribute to the tag head most recently
// opened by [Writer.Open] or [Writer.SelfClosing]. It must come before any
// content: once text, another tag, or a linefeed has been written, the head
// is terminated and attributes are rejected.
func (w *Writer) Attr(name, value string) error {
	if w.finalized {
		return w.usage("attr", name, ErrFinalized)
	}
	if w.pending == pendingNone {
		return w.usage("attr", name, ErrNoPendingTag)
	}
	attrs := w.dialect.Attrs
	if attrs == nil {
		return w.usage("attr", name, ErrUnsupported)
	}
	sep := attrs.PairSep
	if !w.wroteAttr {
		sep = attrs.Initiator
	}
	text := sep +
		attrs.NameBefore + name + attrs.NameAfter +
		attrs.NameSep +
		attrs.ValueBefore + value + attrs.ValueAfter
	if err := w.write(text); err != nil {
		return err
	}
	w.wroteAttr = true
	return nil
}

// Attrs attaches attributes given as alternating name, value arguments:
//
//	w.Attrs("href", "index.html", "rel", "home")
func (w *Writer) Attrs(kv ...string) error {
	if len(kv)%2 != 0 {
		return w.usage("attrs", "", ErrAttrPairs)
	}
	for i := 0; i < len(kv); i += 2 {
		if err := w.Attr(kv[i], kv[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// Text writes text content as is. No escaping of any kind is applied.
func (w *Writer) Text(text string) error {
	if w.finalized {
		return w.usage("text", "", ErrFinalized)
	}
	if err := w.flushPending(); err != nil {
		return err
	}
	next := format.Text()
	if err := w.step(next); err != nil {
		return err
	}
	if err := w.write(text); err != nil {
		return err
	}
	w.advance(next)
	return nil
}

// OpenClose writes a tag pair around text in one call:
//
//	w.OpenClose("title", "Home")
//
// produces <title>Home</title>.
func (w *Writer) OpenClose(tag, text string) error {
	if err := w.Open(tag); err != nil {
		return err
	}
	if err := w.Text(text); err != nil {
		return err
	}
	return w.Close()
}

// Linefeed breaks the line by hand. Exactly one line break is written, at
// the active indentation, no matter what the formatter decides; but the
// formatter still sees the event, and [format.AutoIndent] answers a line
// break directly after an opening tag by indenting that tag's content.
func (w *Writer) Linefeed() error {
	if w.finalized {
		return w.usage("linefeed", "", ErrFinalized)
	}
	if err := w.flushPending(); err != nil {
		return err
	}
	next := format.LineFeed()
	w.state.Next = next
	decision := w.formatter.Decide(&w.state)
	decision.Linefeed = true
	if err := w.apply(decision); err != nil {
		return err
	}
	w.advance(next)
	return nil
}

// Finalize writes the deferred terminator of the last tag head, flushes the
// document if its sink is buffered, and retires the writer: every call
// after Finalize fails with [ErrFinalized].
//
// Finalize does not close open tags; use [Writer.CloseAll] first for a
// balanced document.
func (w *Writer) Finalize() error {
	if w.finalized {
		return w.usage("finalize", "", ErrFinalized)
	}
	if err := w.flushPending(); err != nil {
		return err
	}
	w.finalized = true
	if f, ok := w.doc.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Depth reports the number of currently open tags.
func (w *Writer) Depth() int {
	return len(w.state.Open)
}

// Pos reports the writer's position in the produced document: the location
// the next byte will be written at.
func (w *Writer) Pos() Position {
	return w.pos
}

// step consults the formatter about next and applies its decision.
func (w *Writer) step(next format.Event) error {
	w.state.Next = next
	return w.apply(w.formatter.Decide(&w.state))
}

// apply applies a layout decision: indentation changes first, then the
// line break.
func (w *Writer) apply(d format.Decision) error {
	if d.SetIndent {
		w.state.Indent = d.Indent
		w.indent = "\n" + strings.Repeat(" ", d.Indent)
	}
	if d.Linefeed {
		return w.write(w.indent)
	}
	return nil
}

// advance commits next as the last event and keeps the open-tag stack in
// step.
func (w *Writer) advance(next format.Event) {
	switch next.Kind {
	case format.KindOpening:
		w.state.Open = append(w.state.Open, next.Tag)
	case format.KindClosing:
		slicesx.Pop(&w.state.Open)
	}
	w.state.Last = next
}

// flushPending terminates the most recent tag head, if one is still open.
func (w *Writer) flushPending() error {
	var after string
	switch w.pending {
	case pendingOpening:
		_, after, _ = w.dialect.Delims(format.KindOpening)
	case pendingSelfClosing:
		_, after, _ = w.dialect.Delims(format.KindSelfClosing)
	default:
		return nil
	}
	w.pending = pendingNone
	return w.write(after)
}

func (w *Writer) write(s string) error {
	if s == "" {
		return nil
	}
	if _, err := w.doc.WriteString(s); err != nil {
		return err
	}
	w.pos = w.pos.advance(s)
	return nil
}

func (w *Writer) usage(op, tag string, err error) error {
	return &UsageError{Op: op, Tag: tag, Pos: w.pos, Err: err}
}
