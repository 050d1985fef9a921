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

package html_test

import (
	"bytes"
	"testing"

	"github.com/crazyants/blockdoc"
	"github.com/crazyants/blockdoc/blocks"
	"github.com/crazyants/blockdoc/inlines"
	"github.com/crazyants/blockdoc/internal/normhtml"
	"github.com/crazyants/blockdoc/render/html"
)

func render(t *testing.T, r *html.Renderer, markdown string) string {
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

	var buf bytes.Buffer
	if err := r.Render(&buf, doc); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func assertNormalizedEqual(t *testing.T, got, want string) {
	t.Helper()
	gotNorm := string(normhtml.NormalizeHTML([]byte(got)))
	wantNorm := string(normhtml.NormalizeHTML([]byte(want)))
	if gotNorm != wantNorm {
		t.Errorf("rendered HTML differs after normalization:\n got: %s\nwant: %s", gotNorm, wantNorm)
	}
}

func TestRenderBasicBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Paragraph", "hello\n", "<p>hello</p>"},
		{"ATXHeading", "## Title\n", "<h2>Title</h2>"},
		{"SetextHeading", "Title\n===\n", "<h1>Title</h1>"},
		{"ThematicBreak", "---\n", "<hr />"},
		{"TightList", "- one\n- two\n", "<ul><li>one</li><li>two</li></ul>"},
		{"LooseList", "- one\n\n- two\n", "<ul><li><p>one</p></li><li><p>two</p></li></ul>"},
		{"OrderedListStart", "3. one\n4. two\n", `<ol start="3"><li>one</li><li>two</li></ol>`},
		{"BlockQuote", "> quoted\n", "<blockquote><p>quoted</p></blockquote>"},
		{"FencedCode", "```go\nfmt.Println(1)\n```\n", "<pre><code class=\"language-go\">fmt.Println(1)\n</code></pre>"},
		{"IndentedCode", "    code\n", "<pre><code>code\n</code></pre>"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := render(t, new(html.Renderer), test.in)
			assertNormalizedEqual(t, got, test.want)
		})
	}
}

func TestRenderInlines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Emphasis", "*a*\n", "<p><em>a</em></p>"},
		{"Strong", "**a**\n", "<p><strong>a</strong></p>"},
		{"CodeSpan", "`a`\n", "<p><code>a</code></p>"},
		{"InlineLink", `[text](/dest "title")` + "\n", `<p><a href="/dest" title="title">text</a></p>`},
		{"Image", "![alt](/img.png)\n", `<p><img src="/img.png" alt="alt" /></p>`},
		{"Autolink", "<https://example.com/>\n", `<p><a href="https://example.com/">https://example.com/</a></p>`},
		{"HardBreak", "a  \nb\n", "<p>a<br />\nb</p>"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := render(t, new(html.Renderer), test.in)
			assertNormalizedEqual(t, got, test.want)
		})
	}
}

func TestRenderEscapesText(t *testing.T) {
	got := render(t, new(html.Renderer), "a < b & c\n")
	assertNormalizedEqual(t, got, "<p>a &lt; b &amp; c</p>")
}

func TestRenderIgnoreRaw(t *testing.T) {
	r := &html.Renderer{IgnoreRaw: true}
	got := render(t, r, "<div>hi</div>\n")
	if bytes.Contains([]byte(got), []byte("<div>")) {
		t.Errorf("IgnoreRaw did not drop raw HTML: %q", got)
	}
}

func TestRenderFilterTagGFM(t *testing.T) {
	r := &html.Renderer{FilterTag: html.FilterTagGFM}
	got := render(t, r, "<script>alert(1)</script>\n")
	if !bytes.Contains([]byte(got), []byte("&lt;script")) {
		t.Errorf("FilterTagGFM did not escape <script>: %q", got)
	}
}

func TestSoftBreakBehavior(t *testing.T) {
	tests := []struct {
		name     string
		behavior html.SoftBreakBehavior
		want     string
	}{
		{"Preserve", html.SoftBreakPreserve, "<p>a\nb</p>"},
		{"Space", html.SoftBreakSpace, "<p>a b</p>"},
		{"Hard", html.SoftBreakHarden, "<p>a<br />\nb</p>"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := &html.Renderer{SoftBreakBehavior: test.behavior}
			got := render(t, r, "a\nb\n")
			assertNormalizedEqual(t, got, test.want)
		})
	}
}

func TestNormalizeURI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/a b", "/a%20b"},
		{"/café", "/caf%C3%A9"},
		{"/already%20encoded", "/already%20encoded"},
	}
	for _, test := range tests {
		if got := html.NormalizeURI(test.in); got != test.want {
			t.Errorf("NormalizeURI(%q) = %q; want %q", test.in, got, test.want)
		}
	}
}
