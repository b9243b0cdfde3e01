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
	"errors"
	"fmt"
)

// The causes a [*UsageError] can wrap.
var (
	// ErrUnbalanced means a close was requested with no tag open.
	ErrUnbalanced = errors.New("no open tag to close")
	// ErrNoPendingTag means an attribute arrived while no tag head was
	// still open to attach it to.
	ErrNoPendingTag = errors.New("no pending tag to attach attributes to")
	// ErrUnsupported means the dialect has no spelling for the requested
	// construct.
	ErrUnsupported = errors.New("construct not supported by dialect")
	// ErrFinalized means the writer was used after [Writer.Finalize].
	ErrFinalized = errors.New("document already finalized")
	// ErrAttrPairs means [Writer.Attrs] was called with an odd number of
	// arguments.
	ErrAttrPairs = errors.New("attributes must come in name, value pairs")
)

// UsageError reports a call the writer cannot honor in its current state.
//
// Usage errors are recoverable: the failing call writes nothing, and the
// writer carries on exactly as if the call had not been made.
type UsageError struct {
	// Op is the operation that failed: "open", "close", "attr", and so on.
	Op string
	// Tag is the tag or attribute name involved, when there is one.
	Tag string
	// Pos is where in the document the writer stood.
	Pos Position
	// Err is the cause, one of the Err sentinels above.
	Err error
}

// Error implements error.
func (e *UsageError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("%v: %s %q: %v", e.Pos, e.Op, e.Tag, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", e.Pos, e.Op, e.Err)
}

// Unwrap returns the sentinel cause, for use with [errors.Is].
func (e *UsageError) Unwrap() error {
	return e.Err
}
