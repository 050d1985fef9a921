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

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/crazyants/blockdoc"
	"github.com/crazyants/blockdoc/blocks"
	"github.com/crazyants/blockdoc/format"
	"github.com/crazyants/blockdoc/inlines"
	"github.com/crazyants/blockdoc/render/html"
)

// parseDocument runs the two-phase pipeline: a first engine recognizes
// block structure and surfaces any link
// reference definitions, then a second engine (built with those
// references attached) resolves inline spans against them.
func parseDocument(source []byte, opts []blockdoc.EngineOption) (*blockdoc.Block, error) {
	blockEngine, err := blockdoc.NewEngine(blocks.Default(), inlines.Default(), opts...)
	if err != nil {
		return nil, fmt.Errorf("construct block engine: %w", err)
	}
	doc := blockEngine.ParseLines(blockdoc.NewTextReader(source))

	refs := make(blockdoc.ReferenceMap)
	refs.Extract(doc.AsNode())

	inlineOpts := append(append([]blockdoc.EngineOption(nil), opts...), blockdoc.WithReferences(refs))
	inlineEngine, err := blockdoc.NewEngine(blocks.Default(), inlines.Default(), inlineOpts...)
	if err != nil {
		return nil, fmt.Errorf("construct inline engine: %w", err)
	}
	inlineEngine.ProcessInlines(doc)

	return doc, nil
}

func renderHTML(ctx *cli.Context, w io.Writer, doc *blockdoc.Block) error {
	r := &html.Renderer{
		IgnoreRaw: ctx.Bool("ignore-raw"),
	}
	switch b := ctx.String("soft-break"); b {
	case "preserve":
		r.SoftBreakBehavior = html.SoftBreakPreserve
	case "space":
		r.SoftBreakBehavior = html.SoftBreakSpace
	case "hard":
		r.SoftBreakBehavior = html.SoftBreakHarden
	default:
		return cli.Exit(fmt.Sprintf("unknown --soft-break value %q", b), 2)
	}
	if ctx.Bool("filter-tags") {
		r.FilterTag = html.FilterTagGFM
	}
	if err := r.Render(w, doc); err != nil {
		return cli.Exit(fmt.Sprintf("render: %v", err), 1)
	}
	return nil
}

func renderMarkdown(w io.Writer, doc *blockdoc.Block) error {
	if err := format.Format(w, doc); err != nil {
		return cli.Exit(fmt.Sprintf("format: %v", err), 1)
	}
	return nil
}
