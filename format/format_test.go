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

package format

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/crazyants/blockdoc"
	"github.com/crazyants/blockdoc/blocks"
	"github.com/crazyants/blockdoc/inlines"
)

func parseDocument(t *testing.T, markdown string) *blockdoc.Block {
	t.Helper()
	blockEngine, err := blockdoc.NewEngine(blocks.Default(), inlines.Default())
	if err != nil {
		t.Fatal(err)
	}
	doc := blockEngine.ParseLines(blockdoc.NewTextReader([]byte(markdown)))

	refs := make(blockdoc.ReferenceMap)
	refs.Extract(doc.AsNode())

	inlineEngine, err := blockdoc.NewEngine(blocks.Default(), inlines.Default(), blockdoc.WithReferences(refs))
	if err != nil {
		t.Fatal(err)
	}
	inlineEngine.ProcessInlines(doc)
	return doc
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Paragraph",
			in:   "Hello, World!\n",
			want: "Hello, World!\n",
		},
		{
			name: "ATXHeading",
			in:   "## Title\n",
			want: "## Title\n",
		},
		{
			name: "ThematicBreak",
			in:   "Above\n\n***\n\nBelow\n",
			want: "Above\n\n---\n\nBelow\n",
		},
		{
			name: "Emphasis",
			in:   "*soft* and **strong**\n",
			want: "*soft* and **strong**\n",
		},
		{
			name: "CodeSpan",
			in:   "Use `fmt.Println`.\n",
			want: "Use `fmt.Println`.\n",
		},
		{
			name: "InlineLink",
			in:   "See [the docs](https://example.com/ \"Docs\").\n",
			want: "See [the docs](https://example.com/ \"Docs\").\n",
		},
		{
			name: "ShortcutReferenceCollapses",
			in:   "A [link] to somewhere.\n\n[link]: https://example.com/\n",
			want: "A [link](https://example.com/) to somewhere.\n\n[link]: https://example.com/\n",
		},
		{
			name: "TightBulletList",
			in:   "- one\n- two\n",
			want: "- one\n- two\n",
		},
		{
			name: "BlockQuote",
			in:   "> quoted text\n",
			want: "> quoted text\n",
		},
		{
			name: "FencedCode",
			in:   "```go\nfmt.Println(1)\n```\n",
			want: "```go\nfmt.Println(1)\n```\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc := parseDocument(t, test.in)
			var buf bytes.Buffer
			if err := Format(&buf, doc); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != test.want {
				t.Errorf("Format(%q) = %q; want %q", test.in, got, test.want)
			}
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	const in = "# Title\n\n" +
		"A paragraph with *emphasis*, **strong**, and `code`.\n\n" +
		"- one\n- two\n- three\n\n" +
		"> a quote\n\n" +
		"[a link](https://example.com/ \"title\")\n"

	doc := parseDocument(t, in)
	var first bytes.Buffer
	if err := Format(&first, doc); err != nil {
		t.Fatal(err)
	}

	reparsed := parseDocument(t, first.String())
	var second bytes.Buffer
	if err := Format(&second, reparsed); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(first.String(), second.String()); diff != "" {
		t.Errorf("Format is not idempotent (-first +second):\n%s", diff)
	}
}
