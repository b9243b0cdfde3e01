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

// Package syntax describes how a markup language spells its structure: the
// delimiters around tags and attributes, and the preamble a document starts
// with.
//
// A [Dialect] is pure data. [HTML] and [XML] are the stock dialects; custom
// languages are made by filling in the structs directly. A nil sub-struct
// means the dialect has no such construct at all: a dialect with a nil
// SelfClosing cannot write self-closing tags, and a writer asked to will
// refuse.
package syntax

import (
	"github.com/bufbuild/markout/format"
)

// TagDelims is the text written around opening and closing tag names.
type TagDelims struct {
	// OpenBefore and OpenAfter wrap an opening tag name: <div>.
	OpenBefore, OpenAfter string
	// CloseBefore and CloseAfter wrap a closing tag name: </div>.
	CloseBefore, CloseAfter string
}

// SelfClosingDelims is the text written around a self-closing tag name.
type SelfClosingDelims struct {
	Before, After string
}

// AttrDelims is the text written around attributes inside a tag head.
type AttrDelims struct {
	// Initiator separates the tag name from its first attribute.
	Initiator string
	// NameBefore and NameAfter wrap each attribute name.
	NameBefore, NameAfter string
	// NameSep separates an attribute name from its value.
	NameSep string
	// ValueBefore and ValueAfter wrap each attribute value.
	ValueBefore, ValueAfter string
	// PairSep separates consecutive attributes of the same tag.
	PairSep string
}

// Dialect describes one markup language.
type Dialect struct {
	// Name identifies the dialect, for error messages.
	Name string
	// Preamble is written once at the top of every document, before any
	// other content. May be empty.
	Preamble string
	// Tags, SelfClosing, and Attrs carry the delimiter sets for tag pairs,
	// self-closing tags, and attributes. A nil entry means the construct
	// does not exist in this dialect.
	Tags        *TagDelims
	SelfClosing *SelfClosingDelims
	Attrs       *AttrDelims
}

// Delims returns the text written immediately before and after a tag name
// for the given event kind.
//
// ok is false when the dialect has no construct for kind; that includes all
// tagless kinds.
func (d Dialect) Delims(kind format.Kind) (before, after string, ok bool) {
	switch kind {
	case format.KindOpening:
		if d.Tags == nil {
			return "", "", false
		}
		return d.Tags.OpenBefore, d.Tags.OpenAfter, true
	case format.KindClosing:
		if d.Tags == nil {
			return "", "", false
		}
		return d.Tags.CloseBefore, d.Tags.CloseAfter, true
	case format.KindSelfClosing:
		if d.SelfClosing == nil {
			return "", "", false
		}
		return d.SelfClosing.Before, d.SelfClosing.After, true
	default:
		return "", "", false
	}
}

// HTML returns the HTML dialect: a doctype preamble, self-closing tags
// written like opening tags, and space-separated name="value" attributes.
func HTML() Dialect {
	return Dialect{
		Name:     "html",
		Preamble: "<!DOCTYPE html>",
		Tags: &TagDelims{
			OpenBefore:  "<",
			OpenAfter:   ">",
			CloseBefore: "</",
			CloseAfter:  ">",
		},
		SelfClosing: &SelfClosingDelims{Before: "<", After: ">"},
		Attrs:       defaultAttrs(),
	}
}

// XML returns the XML dialect: an XML declaration as the preamble, " />"
// terminated self-closing tags, and space-separated name="value"
// attributes.
func XML() Dialect {
	return Dialect{
		Name:     "xml",
		Preamble: `<?xml version="1.0" encoding="UTF-8"?>`,
		Tags: &TagDelims{
			OpenBefore:  "<",
			OpenAfter:   ">",
			CloseBefore: "</",
			CloseAfter:  ">",
		},
		SelfClosing: &SelfClosingDelims{Before: "<", After: " />"},
		Attrs:       defaultAttrs(),
	}
}

func defaultAttrs() *AttrDelims {
	return &AttrDelims{
		Initiator:   " ",
		NameSep:     "=",
		ValueBefore: `"`,
		ValueAfter:  `"`,
		PairSep:     " ",
	}
}
