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

package inlines_test

import (
	"testing"

	"github.com/crazyants/blockdoc"
	"github.com/crazyants/blockdoc/blocks"
	"github.com/crazyants/blockdoc/inlines"
)

func resolveInlines(t *testing.T, markdown string) *blockdoc.Inline {
	t.Helper()
	e, err := blockdoc.NewEngine(blocks.Default(), inlines.Default())
	if err != nil {
		t.Fatal(err)
	}
	doc := e.ParseLines(blockdoc.NewTextReader([]byte(markdown)))
	e.ProcessInlines(doc)
	return doc.Children()[0].Inline()
}

func findChild(in *blockdoc.Inline, p blockdoc.InlineParser) *blockdoc.Inline {
	for i := 0; i < in.ChildCount(); i++ {
		if c := in.Child(i); c.Parser() == p {
			return c
		}
	}
	return nil
}

func TestCodeSpanStripsSurroundingSpace(t *testing.T) {
	root := resolveInlines(t, "` a `\n")
	span := findChild(root, inlines.CodeSpan)
	if span == nil {
		t.Fatal("no CodeSpan child found")
	}
	data := span.Data().(*inlines.CodeSpanData)
	if string(data.Content) != "a" {
		t.Errorf("Content = %q; want %q", data.Content, "a")
	}
}

func TestCodeSpanRequiresMatchingBacktickRun(t *testing.T) {
	root := resolveInlines(t, "``a`\n")
	if findChild(root, inlines.CodeSpan) != nil {
		t.Fatal("unmatched backtick run parsed as a CodeSpan")
	}
}

func TestHardLineBreakFromBackslash(t *testing.T) {
	root := resolveInlines(t, "a\\\nb\n")
	lb := findChild(root, inlines.LineBreak)
	if lb == nil {
		t.Fatal("no LineBreak child found")
	}
	if !lb.Data().(*inlines.LineBreakData).Hard {
		t.Error("backslash line ending produced a soft break; want hard")
	}
}

func TestSoftLineBreakIsNotHard(t *testing.T) {
	root := resolveInlines(t, "a\nb\n")
	lb := findChild(root, inlines.LineBreak)
	if lb == nil {
		t.Fatal("no LineBreak child found")
	}
	if lb.Data().(*inlines.LineBreakData).Hard {
		t.Error("plain line ending produced a hard break; want soft")
	}
}

func TestAutolinkRecognizesAbsoluteURI(t *testing.T) {
	root := resolveInlines(t, "<https://example.com/>\n")
	a := findChild(root, inlines.Angle)
	if a == nil {
		t.Fatal("no Angle child found")
	}
	data, ok := a.Data().(*inlines.AutolinkData)
	if !ok {
		t.Fatalf("Data() = %#v; want *AutolinkData", a.Data())
	}
	if data.Destination != "https://example.com/" {
		t.Errorf("Destination = %q; want %q", data.Destination, "https://example.com/")
	}
	if data.IsEmail {
		t.Error("IsEmail = true; want false")
	}
}

func TestAutolinkRecognizesEmail(t *testing.T) {
	root := resolveInlines(t, "<foo@example.com>\n")
	a := findChild(root, inlines.Angle)
	if a == nil {
		t.Fatal("no Angle child found")
	}
	data := a.Data().(*inlines.AutolinkData)
	if !data.IsEmail {
		t.Error("IsEmail = false; want true")
	}
}

func TestAngleFallsBackToRawHTML(t *testing.T) {
	root := resolveInlines(t, "<span class=\"x\">\n")
	a := findChild(root, inlines.Angle)
	if a == nil {
		t.Fatal("no Angle child found")
	}
	if _, ok := a.Data().(*inlines.RawHTMLData); !ok {
		t.Fatalf("Data() = %#v; want *RawHTMLData", a.Data())
	}
}

func TestInlineLinkMatchesDestinationAndTitle(t *testing.T) {
	root := resolveInlines(t, `[text](/dest "a title")`+"\n")
	link := findChild(root, inlines.LinkOpen)
	if link == nil {
		t.Fatal("no LinkOpen child found")
	}
	data := link.Data().(*inlines.LinkData)
	if !data.Matched {
		t.Fatal("Matched = false; want true")
	}
	if data.Destination != "/dest" {
		t.Errorf("Destination = %q; want %q", data.Destination, "/dest")
	}
	if !data.TitlePresent || data.Title != "a title" {
		t.Errorf("Title = %q, TitlePresent = %v; want %q, true", data.Title, data.TitlePresent, "a title")
	}
}

func TestImageSetsIsImage(t *testing.T) {
	root := resolveInlines(t, "![alt](/img.png)\n")
	link := findChild(root, inlines.LinkOpen)
	if link == nil {
		t.Fatal("no LinkOpen child found")
	}
	data := link.Data().(*inlines.LinkData)
	if !data.IsImage {
		t.Error("IsImage = false; want true")
	}
}

func TestUnresolvedBracketIsNotMatched(t *testing.T) {
	root := resolveInlines(t, "[no link here\n")
	link := findChild(root, inlines.LinkOpen)
	if link == nil {
		t.Fatal("no LinkOpen child found")
	}
	if link.Data().(*inlines.LinkData).Matched {
		t.Error("Matched = true for a bracket with no closing construct")
	}
}
