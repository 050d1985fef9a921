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
	"strings"
	"sync"
)

// builderPool hands out scratch [strings.Builder] values to block and
// inline parsers that need to assemble text (decoding escapes, joining
// wrapped lines) without allocating on every call. It is backed by
// [sync.Pool], so it is safe to share across the goroutines the inline
// phase fans out across; per §5 of the design, that safety is exactly
// what lets leaves be processed in parallel without a dedicated pool per
// worker.
type builderPool struct {
	pool sync.Pool
}

func newBuilderPool() *builderPool {
	return &builderPool{
		pool: sync.Pool{
			New: func() any { return new(strings.Builder) },
		},
	}
}

// Get borrows a reset builder. Every caller must return it via Put on
// every exit path, including early returns on parse failure.
func (p *builderPool) Get() *strings.Builder {
	return p.pool.Get().(*strings.Builder)
}

// Put returns b to the pool after resetting it.
func (p *builderPool) Put(b *strings.Builder) {
	b.Reset()
	p.pool.Put(b)
}
