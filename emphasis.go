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

// EmphasisDelimiter is the payload an emphasis-aware [InlineParser]
// attaches, via the leaf it builds with [InlineState.NewLeaf], to a delimiter
// run (a maximal sequence of '*' or '_', or whatever characters a given
// InlineParser chooses to treat this way). The engine's post-pass, run
// once per leaf after the main scan, pairs up openers and closers
// left-to-right with the "rule of 3" and replaces matched runs with a
// single or double-strength wrapper node built by MakeSingle/MakeDouble.
//
// A delimiter leaf that is never matched (or is only partially consumed)
// survives the post-pass as plain leftover text: callers are expected to
// render an EmphasisDelimiter whose Count is still positive as Count
// literal instances of Char.
type EmphasisDelimiter struct {
	Char      byte
	Count     int
	CanOpen   bool
	CanClose  bool
	MakeSingle func(children []*Inline) *Inline
	MakeDouble func(children []*Inline) *Inline

	// origCount freezes the run's length at first sight, for the
	// CommonMark "multiple of 3" rule, which is defined in terms of the
	// delimiter runs' original lengths, not however much of them remain
	// unmatched partway through resolution.
	origCount int
}

// resolveEmphasis runs the delimiter-stack post-pass over every
// container reachable from root, including containers created earlier
// in the leaf's scan (such as a link's text) whose own children were
// never revisited by the linear scan that produced them.
func resolveEmphasis(root *Inline) {
	var walk func(c *Inline)
	walk = func(c *Inline) {
		c.children = resolveDelimiters(c.children)
		for _, child := range c.children {
			if child.IsContainer() {
				walk(child)
			}
		}
	}
	walk(root)
}

type delimNode struct {
	inline     *Inline
	prev, next *delimNode
}

// resolveDelimiters applies the delimiter-stack algorithm to a single
// container's direct children, returning the replacement slice. Matched
// delimiter runs are spliced out and replaced by a single wrapper node;
// unmatched or partially-matched runs are left as-is (their remaining
// Count tells the caller how many literal characters are left).
func resolveDelimiters(children []*Inline) []*Inline {
	if len(children) == 0 {
		return children
	}

	nodes := make([]*delimNode, len(children))
	for i, c := range children {
		nodes[i] = &delimNode{inline: c}
	}
	for i, n := range nodes {
		if i > 0 {
			n.prev = nodes[i-1]
		}
		if i+1 < len(nodes) {
			n.next = nodes[i+1]
		}
	}
	head := nodes[0]

	var stack []*delimNode
	for cur := head; cur != nil; {
		next := cur.next
		d, ok := cur.inline.Data().(*EmphasisDelimiter)
		if !ok || d.Count <= 0 {
			cur = next
			continue
		}
		if d.origCount == 0 {
			d.origCount = d.Count
		}

		if d.CanClose {
			for d.Count > 0 {
				opener := findOpener(stack, d)
				if opener == nil {
					break
				}
				od := opener.inline.Data().(*EmphasisDelimiter)

				use := 1
				if od.Count >= 2 && d.Count >= 2 {
					use = 2
				}
				od.Count -= use
				d.Count -= use

				var inner []*Inline
				for n := opener.next; n != cur; n = n.next {
					inner = append(inner, n.inline)
				}
				var wrapped *Inline
				if use == 2 {
					wrapped = d.MakeDouble(inner)
				} else {
					wrapped = d.MakeSingle(inner)
				}
				wrapped.container = true
				wrapped.children = inner
				for _, c := range inner {
					c.parent = wrapped
				}

				wrapNode := &delimNode{inline: wrapped, prev: opener, next: cur}
				opener.next = wrapNode
				cur.prev = wrapNode

				if od.Count == 0 {
					detach(opener)
					stack = removeFromStack(stack, opener)
					if head == opener {
						head = wrapNode
					}
				}
			}
			if d.Count == 0 {
				detach(cur)
				if head == cur {
					head = cur.next
				}
			} else if d.CanOpen {
				stack = append(stack, cur)
			}
		} else if d.CanOpen {
			stack = append(stack, cur)
		}
		cur = next
	}

	var out []*Inline
	for n := head; n != nil; n = n.next {
		out = append(out, n.inline)
	}
	return out
}

// findOpener scans the delimiter stack from the top for the nearest
// still-live opener matching closer's character and satisfying
// CommonMark's rule of 3: when either side can both open and close, the
// two runs' original lengths may not sum to a multiple of 3 unless both
// lengths are themselves multiples of 3.
func findOpener(stack []*delimNode, closer *EmphasisDelimiter) *delimNode {
	for i := len(stack) - 1; i >= 0; i-- {
		n := stack[i]
		od := n.inline.Data().(*EmphasisDelimiter)
		if od.Count <= 0 || od.Char != closer.Char {
			continue
		}
		if (od.CanOpen && od.CanClose) || (closer.CanOpen && closer.CanClose) {
			sum := od.origCount + closer.origCount
			if sum%3 == 0 && od.origCount%3 != 0 {
				continue
			}
		}
		return n
	}
	return nil
}

func removeFromStack(stack []*delimNode, n *delimNode) []*delimNode {
	for i, s := range stack {
		if s == n {
			return append(stack[:i], stack[i+1:]...)
		}
	}
	return stack
}

// detach unlinks n from the list, stitching its neighbors together.
func detach(n *delimNode) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
}
