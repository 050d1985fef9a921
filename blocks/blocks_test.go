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

package blocks_test

import (
	"testing"

	"github.com/crazyants/blockdoc"
	"github.com/crazyants/blockdoc/blocks"
	"github.com/crazyants/blockdoc/inlines"
)

func parseLines(t *testing.T, markdown string) *blockdoc.Block {
	t.Helper()
	e, err := blockdoc.NewEngine(blocks.Default(), inlines.Default())
	if err != nil {
		t.Fatal(err)
	}
	return e.ParseLines(blockdoc.NewTextReader([]byte(markdown)))
}

func TestOrderedListCapturesStartAndDelimiter(t *testing.T) {
	doc := parseLines(t, "7) one\n8) two\n")
	list := doc.Children()[0]
	data := list.Data().(*blocks.ListData)
	if !data.Ordered {
		t.Fatal("Ordered = false; want true")
	}
	if data.Start != 7 {
		t.Errorf("Start = %d; want 7", data.Start)
	}
	if data.Delim != ')' {
		t.Errorf("Delim = %q; want ')'", data.Delim)
	}
}

func TestFencedCodeCapturesInfoString(t *testing.T) {
	doc := parseLines(t, "```go extra\ncode\n```\n")
	block := doc.Children()[0]
	data := block.Data().(*blocks.FencedCodeData)
	if data.Info != "go extra" {
		t.Errorf("Info = %q; want %q", data.Info, "go extra")
	}
}

func TestBlockQuoteLazyContinuation(t *testing.T) {
	doc := parseLines(t, "> one\nlazy\n")
	bq := doc.Children()[0]
	if bq.Parser() != blocks.BlockQuote {
		t.Fatalf("parser = %T; want BlockQuote", bq.Parser())
	}
	if bq.ChildCount() != 1 {
		t.Fatalf("ChildCount() = %d; want 1 (lazy line joins the same paragraph)", bq.ChildCount())
	}
}

func TestHTMLBlockStopsAtBlankLine(t *testing.T) {
	doc := parseLines(t, "<div>\nhello\n</div>\n\npara\n")
	if doc.ChildCount() != 2 {
		t.Fatalf("ChildCount() = %d; want 2", doc.ChildCount())
	}
	if doc.Children()[0].Parser() != blocks.HTMLBlock {
		t.Errorf("first block parser = %T; want HTMLBlock", doc.Children()[0].Parser())
	}
	if doc.Children()[1].Parser() != blocks.Paragraph {
		t.Errorf("second block parser = %T; want Paragraph", doc.Children()[1].Parser())
	}
}

func TestLinkReferenceDefinitionData(t *testing.T) {
	doc := parseLines(t, "[foo]: /url \"title\"\n")
	def := doc.Children()[0]
	if def.Parser() != blocks.LinkReferenceDefinition {
		t.Fatalf("parser = %T; want LinkReferenceDefinition", def.Parser())
	}
	refs := make(blockdoc.ReferenceMap)
	refs.Extract(doc.AsNode())
	entry, ok := refs["foo"]
	if !ok {
		t.Fatal("reference map has no entry for \"foo\"")
	}
	if entry.Destination != "/url" {
		t.Errorf("Destination = %q; want %q", entry.Destination, "/url")
	}
}

func TestIndentedCodeRequiresFourSpaces(t *testing.T) {
	doc := parseLines(t, "   not code\n")
	if doc.Children()[0].Parser() != blocks.Paragraph {
		t.Errorf("three-space indent parsed as %T; want Paragraph", doc.Children()[0].Parser())
	}

	doc = parseLines(t, "    code\n")
	if doc.Children()[0].Parser() != blocks.IndentedCode {
		t.Errorf("four-space indent parsed as %T; want IndentedCode", doc.Children()[0].Parser())
	}
}
