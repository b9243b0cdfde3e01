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

// Package markout writes markup documents, such as HTML and XML, as a
// stream of calls, formatting the output as it goes.
//
// A [Writer] couples three pieces: a [Document] sink the text lands in, a
// [syntax.Dialect] that spells tags and attributes, and a
// [format.Formatter] that decides where linefeeds and indentation go. The
// caller drives the writer one construct at a time and never concatenates
// markup by hand:
//
//	var buf markout.Buffer
//	f := format.NewAutoIndent()
//	_ = f.Register(format.IndentAlways, "body")
//	_ = f.Register(format.LfAlways, "html")
//
//	w, _ := markout.NewWriter(&buf, syntax.HTML(), markout.WithFormatter(f))
//	_ = w.Open("html")
//	_ = w.Open("body")
//	_ = w.OpenClose("h1", "Hello")
//	_ = w.CloseAll()
//	_ = w.Finalize()
//
// which produces
//
//	<!DOCTYPE html>
//	<html>
//	<body>
//	    <h1>Hello</h1>
//	</body>
//	</html>
//
// The head of the most recent tag stays open until the next call, so
// attributes can be attached after the fact with [Writer.Attr]; the writer
// terminates the head the moment any other content arrives.
//
// Misuse, such as closing more tags than were opened, fails with a
// recoverable [*UsageError] and leaves the document untouched. The writer
// performs no escaping and no validation of tag or attribute names; it
// writes exactly what it is told, where the dialect and formatter tell it
// to.
package markout
