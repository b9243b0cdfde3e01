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

package markout_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/markout"
)

func TestUsageErrorMessage(t *testing.T) {
	t.Parallel()

	err := &markout.UsageError{
		Op:  "open",
		Tag: "div",
		Pos: markout.Position{Offset: 15, Line: 1, Column: 16},
		Err: markout.ErrFinalized,
	}
	assert.Equal(t, `1:16: open "div": document already finalized`, err.Error())

	err = &markout.UsageError{
		Op:  "close",
		Pos: markout.Position{Offset: 40, Line: 3, Column: 5},
		Err: markout.ErrUnbalanced,
	}
	assert.Equal(t, "3:5: close: no open tag to close", err.Error())
}

func TestUsageErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := error(&markout.UsageError{Op: "attr", Tag: "href", Err: markout.ErrNoPendingTag})
	assert.ErrorIs(t, err, markout.ErrNoPendingTag)
	assert.NotErrorIs(t, err, markout.ErrUnbalanced)

	var usage *markout.UsageError
	require.ErrorAs(t, err, &usage)
	assert.Equal(t, "attr", usage.Op)
	assert.Equal(t, "href", usage.Tag)
}

func TestSentinelsDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		markout.ErrUnbalanced,
		markout.ErrNoPendingTag,
		markout.ErrUnsupported,
		markout.ErrFinalized,
		markout.ErrAttrPairs,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}
