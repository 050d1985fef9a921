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

import "github.com/prometheus/client_golang/prometheus"

// Metrics receives counts of driver-level events. It is a second,
// numeric-only side channel alongside [Tracer]: where Tracer is for
// humans reading a line-oriented log, Metrics is for aggregation. A nil
// Metrics (the default) costs nothing beyond a nil check per event.
type Metrics interface {
	LineProcessed()
	BlockOpened()
	BlockClosed()
	LeafInlinesProcessed()
}

// WithMetrics attaches a Metrics sink to the engine.
func WithMetrics(m Metrics) EngineOption {
	return func(e *Engine) { e.metrics = m }
}

func (e *Engine) recordLine() {
	if e.metrics != nil {
		e.metrics.LineProcessed()
	}
}

func (e *Engine) recordBlockOpened() {
	if e.metrics != nil {
		e.metrics.BlockOpened()
	}
}

func (e *Engine) recordBlockClosed() {
	if e.metrics != nil {
		e.metrics.BlockClosed()
	}
}

func (e *Engine) recordLeafProcessed() {
	if e.metrics != nil {
		e.metrics.LeafInlinesProcessed()
	}
}

// prometheusMetrics is the stock [Metrics] implementation, registering
// four counters under the "blockdoc_" namespace.
type prometheusMetrics struct {
	lines   prometheus.Counter
	opened  prometheus.Counter
	closed  prometheus.Counter
	leaves  prometheus.Counter
}

// NewPrometheusMetrics registers blockdoc's counters against reg and
// returns a [Metrics] backed by them. Pass [prometheus.DefaultRegisterer]
// to use the global registry.
func NewPrometheusMetrics(reg prometheus.Registerer) Metrics {
	m := &prometheusMetrics{
		lines: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blockdoc_lines_processed_total",
			Help: "Source lines consumed by the block phase.",
		}),
		opened: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blockdoc_blocks_opened_total",
			Help: "Blocks attached to the open-block stack.",
		}),
		closed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blockdoc_blocks_closed_total",
			Help: "Blocks sealed by the block phase.",
		}),
		leaves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blockdoc_leaf_inlines_processed_total",
			Help: "Leaf blocks that completed the inline phase.",
		}),
	}
	reg.MustRegister(m.lines, m.opened, m.closed, m.leaves)
	return m
}

func (m *prometheusMetrics) LineProcessed()         { m.lines.Inc() }
func (m *prometheusMetrics) BlockOpened()           { m.opened.Inc() }
func (m *prometheusMetrics) BlockClosed()           { m.closed.Inc() }
func (m *prometheusMetrics) LeafInlinesProcessed()  { m.leaves.Inc() }
