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

// Package golden provides a mechanism for managing golden test corpora:
// directories of test inputs whose expected outputs live in files right
// next to them.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// A Corpus describes a test data corpus. This is essentially a way for
// doing table-driven tests where the "table" is in your file system.
type Corpus struct {
	// Root is the root of the corpus directory, relative to the file that
	// calls [Corpus.Run].
	Root string

	// Refresh is the name of an environment variable to consult for
	// whether to run in refresh mode: its value is a glob, and every test
	// whose name matches it has its expected outputs regenerated from the
	// actual ones instead of compared.
	Refresh string

	// Extension is the file extension (without a dot) of the files that
	// define a test case, e.g. "yaml".
	Extension string

	// Outputs are the outputs each test produces, found by appending
	// their extensions to the input's name. A missing output file is
	// treated as expecting empty output.
	Outputs []Output

	// Test executes one test case from the corpus. It returns the actual
	// outputs, corresponding to the elements of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output represents one output of a test case.
type Output struct {
	// Extension is a suffix to the name of the test case's input file: if
	// [Corpus.Extension] is "yaml" and this is "out", the expected output
	// of "doc.yaml" lives in "doc.yaml.out".
	Extension string

	// Compare compares actual and expected output, returning an empty
	// string on match and an error message otherwise. Nil means compare
	// byte for byte.
	Compare Compare
}

// Compare is a comparison function between strings, used in [Output].
//
// Returns the empty string if the strings match, otherwise an error
// message.
type Compare func(got, want string) string

// Run executes every test case in the corpus as a subtest of t.
func (c Corpus) Run(t *testing.T) {
	dir := callerDir()
	root := filepath.Join(dir, c.Root)
	t.Logf("golden: searching for files in %q", root)

	var tests []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(path.Ext(p), ".") == c.Extension {
			tests = append(tests, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("golden: error while walking testdata:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob %q in $%s", refresh, c.Refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing test data because %s=%s", c.Refresh, refresh)
		// A refresh run must never be mistaken for a passing test run.
		t.Fail()
	}

	for _, input := range tests {
		name, _ := filepath.Rel(dir, input)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(input)
			if err != nil {
				t.Fatalf("golden: error while loading input file %q: %v", input, err)
			}

			results := c.Test(t, name, string(text))

			matched, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				path := fmt.Sprint(input, ".", output.Extension)
				if matched {
					c.refresh(t, path, results[i])
				} else {
					c.compare(t, path, output, results[i])
				}
			}
		})
	}
}

func (c Corpus) compare(t *testing.T, path string, output Output, got string) {
	want, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		t.Logf("golden: error while loading output file %q: %v", path, err)
		t.Fail()
		return
	}

	compare := output.Compare
	if compare == nil {
		compare = diffCompare
	}
	if msg := compare(got, string(want)); msg != "" {
		t.Logf("output mismatch for %q:\n%s", path, msg)
		t.Fail()
	}
}

func (c Corpus) refresh(t *testing.T, path, got string) {
	if got == "" {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			t.Logf("golden: error while deleting output file %q: %v", path, err)
			t.Fail()
		}
		return
	}
	if err := os.WriteFile(path, []byte(got), 0o666); err != nil {
		t.Logf("golden: error while writing output file %q: %v", path, err)
		t.Fail()
	}
}

func diffCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	// Colorize the diff so it's easier to read. We're looking for lines
	// that start with a - or a +.
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "+") {
			lines[i] = "\033[1;92m" + line + "\033[0m"
		} else if strings.HasPrefix(line, "-") {
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir() string {
	// Skip callerDir and Run to land on the test file that called Run.
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
