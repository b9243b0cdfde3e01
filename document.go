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
	"bufio"
	"io"
	"os"
	"strings"
)

// Document receives the text of a markup document as a [Writer] produces
// it. Writes arrive strictly in document order from a single goroutine.
//
// If a Document also implements interface{ Flush() error }, the writer
// flushes it during [Writer.Finalize].
type Document interface {
	WriteString(s string) (n int, err error)
}

// Buffer is an in-memory [Document].
//
// A zero value is ready to use.
type Buffer struct {
	b strings.Builder
}

// WriteString implements [Document]. It never fails.
func (b *Buffer) WriteString(s string) (int, error) {
	return b.b.WriteString(s)
}

// String returns everything written so far.
func (b *Buffer) String() string {
	return b.b.String()
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return b.b.Len()
}

// Reset discards everything written so far.
func (b *Buffer) Reset() {
	b.b.Reset()
}

// File is a buffered [Document] backed by a file on disk. Output accumulates
// in memory until [File.Flush] (which [Writer.Finalize] calls) or
// [File.Close].
type File struct {
	f *os.File
	w *bufio.Writer
}

// CreateFile creates or truncates the named file and returns it as a
// document sink. The caller owns the file and must [File.Close] it once the
// document is finalized.
func CreateFile(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &File{f: f, w: bufio.NewWriter(f)}, nil
}

// WriteString implements [Document].
func (f *File) WriteString(s string) (int, error) {
	return f.w.WriteString(s)
}

// Flush writes everything buffered so far to the file.
func (f *File) Flush() error {
	return f.w.Flush()
}

// Close flushes buffered output and closes the file.
func (f *File) Close() error {
	flushErr := f.w.Flush()
	closeErr := f.f.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// Wrap adapts any [io.Writer] into a [Document]. Writers that already
// implement [Document], such as [*bytes.Buffer] or [*os.File], are returned
// as is.
func Wrap(w io.Writer) Document {
	if d, ok := w.(Document); ok {
		return d
	}
	return writerDocument{w}
}

type writerDocument struct {
	w io.Writer
}

func (d writerDocument) WriteString(s string) (int, error) {
	return io.WriteString(d.w, s)
}
