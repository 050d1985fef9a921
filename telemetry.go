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

	"go.uber.org/zap"
)

// Tracer receives a line-oriented trace of the engine's block-phase
// decisions: which parser matched which line, and why a line closed a
// block. It is the only side channel the engine exposes; when no Tracer
// is configured, tracing costs nothing beyond a nil check per line.
type Tracer interface {
	Trace(line string)
}

// TracerFunc adapts a plain function to a [Tracer].
type TracerFunc func(line string)

func (f TracerFunc) Trace(line string) {
	f(line)
}

func (e *Engine) tracef(format string, args ...any) {
	if e.tracer == nil {
		return
	}
	e.tracer.Trace(fmt.Sprintf(format, args...))
}

// zapTracer adapts a [zap.Logger] to [Tracer], for callers whose ambient
// logging is already zap-based and want engine trace lines folded into
// the same sink at debug level.
type zapTracer struct {
	log *zap.Logger
}

// NewZapTracer wraps log as a [Tracer]. Each traced line is logged at
// debug level under the "blockdoc" logger name.
func NewZapTracer(log *zap.Logger) Tracer {
	return &zapTracer{log: log.Named("blockdoc")}
}

func (t *zapTracer) Trace(line string) {
	t.log.Debug(line)
}
