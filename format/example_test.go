// Copyright 2026 The blockdoc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package format_test

import (
	"bytes"
	"os"

	"github.com/crazyants/blockdoc"
	"github.com/crazyants/blockdoc/blocks"
	"github.com/crazyants/blockdoc/format"
	"github.com/crazyants/blockdoc/inlines"
)

func ExampleFormat() {
	markdown := "Hello, World!\n" +
		"===\n" +
		"\n" +
		"A shortcut reference to [the docs] looks nicer collapsed.\n" +
		"\n" +
		"[the docs]: https://example.com/docs\n"

	// Block phase: recognize document structure line by line.
	blockEngine, err := blockdoc.NewEngine(blocks.Default(), inlines.Default())
	if err != nil {
		panic(err)
	}
	doc := blockEngine.ParseLines(blockdoc.NewTextReader([]byte(markdown)))

	// Collect link reference definitions the block phase found.
	refs := make(blockdoc.ReferenceMap)
	refs.Extract(doc.AsNode())

	// Inline phase: resolve emphasis, links, and other span-level syntax,
	// now that reference definitions are known.
	inlineEngine, err := blockdoc.NewEngine(blocks.Default(), inlines.Default(), blockdoc.WithReferences(refs))
	if err != nil {
		panic(err)
	}
	inlineEngine.ProcessInlines(doc)

	out := new(bytes.Buffer)
	if err := format.Format(out, doc); err != nil {
		// Writing in-memory shouldn't fail.
		panic(err)
	}
	os.Stdout.Write(out.Bytes())
	// Output:
	// # Hello, World!
	//
	// A shortcut reference to [the docs](https://example.com/docs) looks nicer collapsed.
	//
	// [the docs]: https://example.com/docs
}
