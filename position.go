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
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the rendered width a tab advances to a multiple of, for
// the purposes of column accounting.
const TabstopWidth = 4

// Position is a location in the produced document. The [Writer] tracks it
// as it writes, and stamps it onto every [UsageError].
type Position struct {
	// Offset is the byte offset from the start of the document.
	Offset int
	// Line is the one-indexed line number.
	Line int
	// Column is the one-indexed column, counted in display cells rather
	// than bytes: grapheme clusters count their terminal width, and tabs
	// advance to the next multiple of [TabstopWidth].
	Column int
}

// String implements [fmt.Stringer], rendering the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// advance returns the position just past text written at p.
func (p Position) advance(text string) Position {
	p.Offset += len(text)

	if nl := strings.LastIndexByte(text, '\n'); nl != -1 {
		p.Line += strings.Count(text[:nl], "\n") + 1
		p.Column = 1
		text = text[nl+1:]
	}

	// We can't just take uniseg.StringWidth of the remainder, because that
	// would not respect tabstops.
	col := p.Column - 1
	for text != "" {
		chunk := text
		tab := strings.IndexByte(text, '\t')
		if tab == -1 {
			text = ""
		} else {
			chunk, text = text[:tab], text[tab+1:]
		}
		col += uniseg.StringWidth(chunk)
		if tab != -1 {
			col += TabstopWidth - (col % TabstopWidth)
		}
	}
	p.Column = col + 1
	return p
}
