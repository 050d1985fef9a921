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

import "fmt"

// ConfigError reports a problem detected at [NewEngine] construction time:
// a parser declared an out-of-range first character, or two parsers
// claimed the same one. Construction fails fast rather than silently
// letting one registration shadow another.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "blockdoc: configuration error: " + e.Reason
}

// EngineInvariantViolation reports a bug in a [BlockParser]: it broke one
// of the driver's structural invariants, such as staging a block while
// not the deepest block on the open stack, or staging further blocks
// after a leaf. Malformed Markdown never produces this error; only a
// misbehaving parser does.
type EngineInvariantViolation struct {
	Reason string
	Line   int
	Parser BlockParser
}

func (e *EngineInvariantViolation) Error() string {
	return fmt.Sprintf("blockdoc: invariant violation at line %d (parser %T): %s", e.Line, e.Parser, e.Reason)
}
