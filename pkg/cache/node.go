package cache

import (
	"context"
	"slices"
	"strings"

	"github.com/mikekulinski/zkclient/pkg/zookeeper"
)

// NodeCache follows a single node.
type NodeCache struct {
	tree *TreeCache
}

func NewNodeCache(client Client, path string, opts ...Option) *NodeCache {
	return &NodeCache{tree: NewTreeCache(client, path, append(opts, WithMaxDepth(0))...)}
}

func (n *NodeCache) AddListener(l Listener) { n.tree.AddListener(l) }

func (n *NodeCache) Start(ctx context.Context) error { return n.tree.Start(ctx) }

func (n *NodeCache) Close() error { return n.tree.Close() }

func (n *NodeCache) State() State { return n.tree.State() }

// Current returns the cached node, false if it does not exist.
func (n *NodeCache) Current() (*ChildData, bool) {
	return n.tree.CurrentData(n.tree.Root())
}

// ChildrenCache follows the direct children of a node. Only events about
// children reach its listeners.
type ChildrenCache struct {
	tree *TreeCache
}

func NewChildrenCache(client Client, path string, opts ...Option) *ChildrenCache {
	return &ChildrenCache{tree: NewTreeCache(client, path, append(opts, WithMaxDepth(1))...)}
}

func (c *ChildrenCache) AddListener(l Listener) {
	root := c.tree.Root()
	c.tree.AddListener(func(event Event) {
		switch event.Type {
		case NodeAdded, NodeUpdated, NodeRemoved:
			if event.Path == root {
				return
			}
		}
		l(event)
	})
}

func (c *ChildrenCache) Start(ctx context.Context) error { return c.tree.Start(ctx) }

func (c *ChildrenCache) Close() error { return c.tree.Close() }

func (c *ChildrenCache) State() State { return c.tree.State() }

// Children returns the cached children ordered by name.
func (c *ChildrenCache) Children() []*ChildData {
	children := c.tree.CurrentChildren(c.tree.Root())
	out := make([]*ChildData, 0, len(children))
	for _, child := range children {
		out = append(out, child)
	}
	slices.SortFunc(out, func(a, b *ChildData) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out
}

// Child returns the cached child called name.
func (c *ChildrenCache) Child(name string) (*ChildData, bool) {
	return c.tree.CurrentData(zookeeper.Join(c.tree.Root(), name))
}
