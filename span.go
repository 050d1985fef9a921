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

// Span is a half-open byte range [Start, End) into a leaf's [LineGroup]
// text, or into a single line's bytes. A zero Span with Start == End == -1
// is the null span; use [NullSpan] to construct one.
type Span struct {
	Start int
	End   int
}

// NullSpan returns an invalid span, used as the zero value for nodes that
// have no well-defined source position (e.g. the document root).
func NullSpan() Span {
	return Span{Start: -1, End: -1}
}

// IsValid reports whether the span has non-negative, ordered bounds.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	if !s.IsValid() {
		return 0
	}
	return s.End - s.Start
}
