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

package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/markout/format"
	"github.com/bufbuild/markout/syntax"
)

func TestHTML(t *testing.T) {
	t.Parallel()

	d := syntax.HTML()
	assert.Equal(t, "html", d.Name)
	assert.Equal(t, "<!DOCTYPE html>", d.Preamble)

	before, after, ok := d.Delims(format.KindOpening)
	require.True(t, ok)
	assert.Equal(t, "<", before)
	assert.Equal(t, ">", after)

	before, after, ok = d.Delims(format.KindClosing)
	require.True(t, ok)
	assert.Equal(t, "</", before)
	assert.Equal(t, ">", after)

	before, after, ok = d.Delims(format.KindSelfClosing)
	require.True(t, ok)
	assert.Equal(t, "<", before)
	assert.Equal(t, ">", after)

	require.NotNil(t, d.Attrs)
	assert.Equal(t, " ", d.Attrs.Initiator)
	assert.Equal(t, "=", d.Attrs.NameSep)
	assert.Equal(t, `"`, d.Attrs.ValueBefore)
	assert.Equal(t, `"`, d.Attrs.ValueAfter)
	assert.Equal(t, " ", d.Attrs.PairSep)
	assert.Empty(t, d.Attrs.NameBefore)
	assert.Empty(t, d.Attrs.NameAfter)
}

func TestXML(t *testing.T) {
	t.Parallel()

	d := syntax.XML()
	assert.Equal(t, "xml", d.Name)
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`, d.Preamble)

	before, after, ok := d.Delims(format.KindSelfClosing)
	require.True(t, ok)
	assert.Equal(t, "<", before)
	assert.Equal(t, " />", after)
}

func TestDelimsCapabilities(t *testing.T) {
	t.Parallel()

	// An empty dialect can spell nothing.
	var empty syntax.Dialect
	for _, kind := range []format.Kind{
		format.KindOpening,
		format.KindClosing,
		format.KindSelfClosing,
	} {
		_, _, ok := empty.Delims(kind)
		assert.False(t, ok, "kind %v", kind)
	}

	// Tagless kinds have no delimiters in any dialect.
	for _, kind := range []format.Kind{
		format.KindInitial,
		format.KindText,
		format.KindLineFeed,
	} {
		_, _, ok := syntax.HTML().Delims(kind)
		assert.False(t, ok, "kind %v", kind)
	}

	// A pairs-only dialect rejects just the self-closing kind.
	pairsOnly := syntax.Dialect{
		Name: "pairs",
		Tags: &syntax.TagDelims{OpenBefore: "[", OpenAfter: "]", CloseBefore: "[/", CloseAfter: "]"},
	}
	_, _, ok := pairsOnly.Delims(format.KindOpening)
	assert.True(t, ok)
	_, _, ok = pairsOnly.Delims(format.KindSelfClosing)
	assert.False(t, ok)
}
