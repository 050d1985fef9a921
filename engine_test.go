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
	"testing"

	"github.com/crazyants/blockdoc"
	"github.com/crazyants/blockdoc/blocks"
	"github.com/crazyants/blockdoc/inlines"
)

func parseLines(markdown string) *blockdoc.Block {
	e, err := blockdoc.NewEngine(blocks.Default(), inlines.Default())
	if err != nil {
		panic(err)
	}
	return e.ParseLines(blockdoc.NewTextReader([]byte(markdown)))
}

func TestParseLinesBlockKinds(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		parser blockdoc.BlockParser
	}{
		{"Paragraph", "plain text\n", blocks.Paragraph},
		{"ATXHeading", "## heading\n", blocks.ATXHeading},
		{"ThematicBreak", "---\n", blocks.ThematicBreak},
		{"FencedCode", "```\ncode\n```\n", blocks.FencedCode},
		{"IndentedCode", "    code\n", blocks.IndentedCode},
		{"BlockQuote", "> quoted\n", blocks.BlockQuote},
		{"List", "- item\n", blocks.List},
		{"HTMLBlock", "<div>\n</div>\n", blocks.HTMLBlock},
		{"LinkReferenceDefinition", "[x]: /y\n", blocks.LinkReferenceDefinition},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc := parseLines(test.in)
			if doc.ChildCount() == 0 {
				t.Fatalf("ParseLines(%q) produced no top-level blocks", test.in)
			}
			if got := doc.Children()[0].Parser(); got != test.parser {
				t.Errorf("ParseLines(%q) first block parser = %T; want %T", test.in, got, test.parser)
			}
		})
	}
}

func TestSetextHeadingPromotesParagraph(t *testing.T) {
	doc := parseLines("Title\n=====\n")
	if doc.ChildCount() != 1 {
		t.Fatalf("got %d top-level blocks; want 1", doc.ChildCount())
	}
	b := doc.Children()[0]
	if b.Parser() != blocks.Paragraph {
		t.Fatalf("setext heading parser = %T; want %T", b.Parser(), blocks.Paragraph)
	}
	sh, ok := b.Data().(*blocks.SetextHeadingData)
	if !ok {
		t.Fatalf("Data() = %#v; want *blocks.SetextHeadingData", b.Data())
	}
	if sh.Level != 1 {
		t.Errorf("Level = %d; want 1", sh.Level)
	}
}

func TestListTightness(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"Tight", "- one\n- two\n", true},
		{"Loose", "- one\n\n- two\n", false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc := parseLines(test.in)
			list := doc.Children()[0]
			data := list.Data().(*blocks.ListData)
			if data.Tight != test.want {
				t.Errorf("Tight = %v; want %v", data.Tight, test.want)
			}
		})
	}
}

func TestProcessInlinesResolvesShortcutReference(t *testing.T) {
	e, err := blockdoc.NewEngine(blocks.Default(), inlines.Default())
	if err != nil {
		t.Fatal(err)
	}
	doc := e.ParseLines(blockdoc.NewTextReader([]byte("A [link] here.\n\n[link]: /dest \"Title\"\n")))

	refs := make(blockdoc.ReferenceMap)
	refs.Extract(doc.AsNode())

	e2, err := blockdoc.NewEngine(blocks.Default(), inlines.Default(), blockdoc.WithReferences(refs))
	if err != nil {
		t.Fatal(err)
	}
	e2.ProcessInlines(doc)

	para := doc.Children()[0]
	var link *blockdoc.Inline
	for _, c := range para.Inline().Children() {
		if c.Parser() == inlines.LinkOpen {
			link = c
			break
		}
	}
	if link == nil {
		t.Fatal("no LinkOpen inline found")
	}
	data := link.Data().(*inlines.LinkData)
	if !data.Matched {
		t.Fatal("shortcut reference did not match")
	}
	if data.Destination != "/dest" {
		t.Errorf("Destination = %q; want %q", data.Destination, "/dest")
	}
	if got, want := data.Title, "Title"; got != want {
		t.Errorf("Title = %q; want %q", got, want)
	}
}

func TestEngineInvariantViolationError(t *testing.T) {
	var err error = &blockdoc.EngineInvariantViolation{Parser: blocks.Paragraph, Line: 3, Reason: "test"}
	if err.Error() == "" {
		t.Fatal("Error() returned empty string")
	}
	_ = fmt.Sprintf("%v", err)
}
