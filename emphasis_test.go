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
	"testing"

	"github.com/crazyants/blockdoc"
	"github.com/crazyants/blockdoc/blocks"
	"github.com/crazyants/blockdoc/inlines"
)

func parseAndResolveInlines(markdown string) *blockdoc.Inline {
	e, err := blockdoc.NewEngine(blocks.Default(), inlines.Default())
	if err != nil {
		panic(err)
	}
	doc := e.ParseLines(blockdoc.NewTextReader([]byte(markdown)))
	e.ProcessInlines(doc)
	return doc.Children()[0].Inline()
}

func TestEmphasisResolvesSingleRun(t *testing.T) {
	root := parseAndResolveInlines("*soft*\n")
	if root.ChildCount() != 1 {
		t.Fatalf("ChildCount() = %d; want 1", root.ChildCount())
	}
	mark := root.Child(0)
	if mark.Parser() != inlines.EmphasisMark {
		t.Fatalf("parser = %T; want %T", mark.Parser(), inlines.EmphasisMark)
	}
	if mark.Data().(*inlines.EmphasisData).Strong {
		t.Error("single '*' run resolved to Strong; want plain emphasis")
	}
}

func TestEmphasisResolvesDoubleRunAsStrong(t *testing.T) {
	root := parseAndResolveInlines("**strong**\n")
	mark := root.Child(0)
	if mark.Parser() != inlines.EmphasisMark {
		t.Fatalf("parser = %T; want %T", mark.Parser(), inlines.EmphasisMark)
	}
	if !mark.Data().(*inlines.EmphasisData).Strong {
		t.Error("double '*' run did not resolve to Strong")
	}
}

func TestUnmatchedEmphasisRendersLiteralDelimiters(t *testing.T) {
	root := parseAndResolveInlines("a * b\n")
	var found bool
	for i := 0; i < root.ChildCount(); i++ {
		c := root.Child(i)
		if c.Parser() != inlines.Emphasis {
			continue
		}
		found = true
		d := c.Data().(*blockdoc.EmphasisDelimiter)
		if d.Count != 1 {
			t.Errorf("leftover delimiter Count = %d; want 1", d.Count)
		}
	}
	if !found {
		t.Fatal("expected an unmatched Emphasis delimiter to survive in the tree")
	}
}

func TestNestedEmphasisInsideStrong(t *testing.T) {
	root := parseAndResolveInlines("**a *b* c**\n")
	outer := root.Child(0)
	if outer.Parser() != inlines.EmphasisMark || !outer.Data().(*inlines.EmphasisData).Strong {
		t.Fatal("expected outer node to be a strong EmphasisMark")
	}
	var innerFound bool
	for i := 0; i < outer.ChildCount(); i++ {
		c := outer.Child(i)
		if c.Parser() == inlines.EmphasisMark && !c.Data().(*inlines.EmphasisData).Strong {
			innerFound = true
		}
	}
	if !innerFound {
		t.Fatal("expected a plain emphasis node nested inside the strong node")
	}
}
