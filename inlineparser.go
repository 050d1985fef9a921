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

package blockdoc

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// InlineParser recognizes one kind of span-level structure inside a
// leaf's accumulated text during the inline phase.
type InlineParser interface {
	// Match inspects and advances state's line-group cursor starting at
	// the current position. On success, it either creates a new inline
	// node and records it via state.SetInline, or mutates already-open
	// inlines in place (for instance, closing a code span) and calls
	// state.SetInline(nil) to signal that no new node was produced. On
	// failure it returns false and must leave the cursor as it found it;
	// the caller restores it regardless.
	Match(state *InlineState) bool
}

// InlineFirstChars is an optional capability: an [InlineParser] that
// implements it is only ever tried when the current byte is one of the
// returned characters, via the engine's dispatch table. Parsers that
// don't implement it (or return an empty slice) are tried, in
// registration order, on every character as a fallback.
type InlineFirstChars interface {
	// FirstChars returns the ASCII bytes (each < 128) that can start a
	// match. Declaring a byte >= 128 is a configuration error.
	FirstChars() []byte
}

// InlineCloser is an optional capability for an [InlineParser] whose
// nodes are closable: its CloseInline hook runs once, when the to-close
// queue is drained at the end of a leaf's lines.
type InlineCloser interface {
	CloseInline(in *Inline)
}

// inlineDispatch is the engine's fixed, 128-entry first-character lookup
// built once at construction from the registered [InlineParser] list.
type inlineDispatch struct {
	byFirstChar [128]InlineParser
	regular     []InlineParser
}

// buildInlineDispatch builds the dispatch table, collecting every
// configuration problem it finds (rather than stopping at the first) so
// that fixing a parser registration doesn't require relaunching one
// error at a time.
func buildInlineDispatch(parsers []InlineParser) (*inlineDispatch, error) {
	d := &inlineDispatch{}
	var errs *multierror.Error
	for _, p := range parsers {
		fc, ok := p.(InlineFirstChars)
		if !ok {
			d.regular = append(d.regular, p)
			continue
		}
		chars := fc.FirstChars()
		if len(chars) == 0 {
			d.regular = append(d.regular, p)
			continue
		}
		for _, c := range chars {
			if c >= 128 {
				errs = multierror.Append(errs, &ConfigError{Reason: fmt.Sprintf("inline parser %T declares non-ASCII first char %d", p, c)})
				continue
			}
			if d.byFirstChar[c] != nil {
				errs = multierror.Append(errs, &ConfigError{Reason: fmt.Sprintf("inline parsers %T and %T both claim first char %q", d.byFirstChar[c], p, rune(c))})
				continue
			}
			d.byFirstChar[c] = p
		}
	}
	if errs != nil {
		return nil, errs.ErrorOrNil()
	}
	return d, nil
}
