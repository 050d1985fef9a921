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

package blockdoc_test

import (
	"fmt"
	"os"

	"github.com/crazyants/blockdoc"
	"github.com/crazyants/blockdoc/blocks"
	"github.com/crazyants/blockdoc/inlines"
	"github.com/crazyants/blockdoc/render/html"
)

// Example demonstrates the two-phase pipeline: parse block structure line
// by line, extract any link reference definitions the block phase found,
// then run the inline phase against a second engine that knows about
// those references.
func Example() {
	markdown := "Hello, [World]!\n" +
		"===\n\n" +
		"[World]: https://example.com/\n"

	blockEngine, err := blockdoc.NewEngine(blocks.Default(), inlines.Default())
	if err != nil {
		panic(err)
	}
	doc := blockEngine.ParseLines(blockdoc.NewTextReader([]byte(markdown)))

	refs := make(blockdoc.ReferenceMap)
	refs.Extract(doc.AsNode())

	inlineEngine, err := blockdoc.NewEngine(blocks.Default(), inlines.Default(), blockdoc.WithReferences(refs))
	if err != nil {
		panic(err)
	}
	inlineEngine.ProcessInlines(doc)

	r := new(html.Renderer)
	if err := r.Render(os.Stdout, doc); err != nil {
		panic(err)
	}
	// Output:
	// <h1>Hello, <a href="https://example.com/">World</a>!</h1>
}

// ExampleBlock_walk shows how to walk a parsed tree with [blockdoc.Walk]
// instead of recursing over [blockdoc.Block.Children] by hand.
func ExampleBlock_walk() {
	blockEngine, err := blockdoc.NewEngine(blocks.Default(), inlines.Default())
	if err != nil {
		panic(err)
	}
	doc := blockEngine.ParseLines(blockdoc.NewTextReader([]byte("# One\n\nTwo\n")))

	depth := make(map[blockdoc.Node]int)
	blockdoc.Walk(doc.AsNode(), &blockdoc.WalkOptions{
		Pre: func(c *blockdoc.Cursor) bool {
			d := -1
			if p := c.Parent(); !p.IsZero() {
				d = depth[p] + 1
			}
			depth[c.Node()] = d
			if d < 0 {
				return true // the document root itself; not printed
			}
			name := "block"
			if b := c.Node().Block(); b != nil {
				switch b.Parser() {
				case blocks.ATXHeading:
					name = "heading"
				case blocks.Paragraph:
					name = "paragraph"
				}
			}
			fmt.Printf("%*s%s\n", d*2, "", name)
			return true
		},
	})
	// Output:
	// heading
	// paragraph
}
