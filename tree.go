package main

import (
	"strings"

	"github.com/truj/midica-sub006/filter"
)

const (
	rootTypeName  = "MIDI Messages"
	typeSeparator = "/"
)

// typeNode is a node in the message type tree, e.g.
// MIDI Messages > Channel > Voice > Note On.
type typeNode struct {
	name     string
	parent   *typeNode
	children []*typeNode
	count    int // messages at or below this node
}

func newTypeTree() *typeNode {
	return &typeNode{name: rootTypeName}
}

// Parent implements filter.Node. The root has no parent.
func (n *typeNode) Parent() filter.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *typeNode) child(name string) *typeNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// add walks or creates the nodes for path and counts one message on each.
func (n *typeNode) add(path string) *typeNode {
	cur := n
	cur.count++
	for _, part := range splitTypePath(path) {
		next := cur.child(part)
		if next == nil {
			next = &typeNode{name: part, parent: cur}
			cur.children = append(cur.children, next)
		}
		next.count++
		cur = next
	}
	return cur
}

// find returns the node for path, or nil. An empty path is the root.
// A single name that is not a child of n matches the first node of that
// name anywhere below n, ignoring case.
func (n *typeNode) find(path string) *typeNode {
	if found := n.findPath(path); found != nil {
		return found
	}
	parts := splitTypePath(path)
	if len(parts) != 1 {
		return nil
	}
	var match *typeNode
	n.walk(func(c *typeNode) {
		if match == nil && strings.EqualFold(c.name, parts[0]) {
			match = c
		}
	})
	return match
}

func (n *typeNode) findPath(path string) *typeNode {
	cur := n
	parts := splitTypePath(path)
	if len(parts) > 0 && n.parent == nil && strings.EqualFold(parts[0], n.name) {
		parts = parts[1:]
	}
	for _, part := range parts {
		cur = cur.child(part)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// path is the slash-separated path below the root.
func (n *typeNode) path() string {
	var parts []string
	for cur := n; cur != nil && cur.parent != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, typeSeparator)
}

// walk visits n and its descendants depth first in insertion order.
func (n *typeNode) walk(fn func(*typeNode)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}

func splitTypePath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, typeSeparator) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
