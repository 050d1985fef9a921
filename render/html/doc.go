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

// Package html renders a parsed [blockdoc.Block] tree, with its inline
// phase already run, to HTML. It knows about the concrete block and
// inline kinds the [github.com/crazyants/blockdoc/blocks] and
// [github.com/crazyants/blockdoc/inlines] packages produce; the core
// engine itself has no opinion on output format.
package html
