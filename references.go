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

// ReferenceMatcher reports whether a normalized link label has a known
// definition. [InlineState.References] exposes one so that link-reference
// inline parsers can decide whether "[foo][bar]" resolves without the
// engine depending on any particular link syntax.
type ReferenceMatcher interface {
	MatchReference(normalizedLabel string) bool
}

// LinkDefinition is the resolved data of a link reference definition.
type LinkDefinition struct {
	Destination  string
	Title        string
	TitlePresent bool
}

// ReferenceMap is a mapping of normalized labels to link definitions. It
// implements [ReferenceMatcher].
type ReferenceMap map[string]LinkDefinition

// MatchReference reports whether the normalized label appears in the map.
func (m ReferenceMap) MatchReference(normalizedLabel string) bool {
	_, ok := m[normalizedLabel]
	return ok
}

// Resolve returns the definition for a normalized label, if any. Inline
// parsers that need more than a yes/no match (the destination and title
// of a resolved reference-style link) type-assert
// [InlineState.References] against an interface declaring Resolve, since
// [ReferenceMatcher] itself only promises MatchReference.
func (m ReferenceMap) Resolve(normalizedLabel string) (LinkDefinition, bool) {
	def, ok := m[normalizedLabel]
	return def, ok
}

// linkReferenceData is the duck-typed shape a block's [Block.Data] must
// have for [ReferenceMap.Extract] to recognize it as a link reference
// definition, without this package depending on the concrete block
// parser package that produces them.
type linkReferenceData interface {
	ReferenceLabel() string
	ReferenceDestination() string
	ReferenceTitle() (title string, present bool)
}

// Extract walks the block tree rooted at node, adding every link
// reference definition it finds to m. In case of conflicts, Extract
// keeps the first definition in source order and ignores the rest, per
// CommonMark's rule that earlier definitions win.
func (m ReferenceMap) Extract(node Node) {
	Walk(node, &WalkOptions{
		Pre: func(c *Cursor) bool {
			b := c.Node().Block()
			if b == nil {
				return true
			}
			ref, ok := b.Data().(linkReferenceData)
			if !ok {
				return true
			}
			label := ref.ReferenceLabel()
			if _, exists := m[label]; label != "" && !exists {
				def := LinkDefinition{Destination: ref.ReferenceDestination()}
				def.Title, def.TitlePresent = ref.ReferenceTitle()
				m[label] = def
			}
			return false
		},
	})
}
