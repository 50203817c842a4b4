package znode

import (
	"sort"
	"time"

	pbzk "github.com/mikekulinski/zkclient/proto"
)

type ZNodeType int

const (
	ZNodeType_STANDARD ZNodeType = iota
	ZNodeType_EPHEMERAL
)

type ZNode struct {
	// ZNode metadata.
	// Name is the full path of the node.
	Name     string
	Version  int64
	Cversion int64
	Czxid    int64
	Mzxid    int64
	Ctime    time.Time
	Mtime    time.Time
	Children map[string]*ZNode
	NodeType ZNodeType
	// Owner is the session that created the node. It only matters for ephemeral nodes.
	Owner              string
	NextSequentialNode int64

	// Data is the data stored here by the client.
	Data []byte
}

func NewZNode(name string, nodeType ZNodeType, owner string, data []byte) *ZNode {
	return &ZNode{
		Name: name,
		// Init the children to an empty map instead of nil to avoid panics when writing to
		// a nil map.
		Children: map[string]*ZNode{},
		NodeType: nodeType,
		Owner:    owner,
		Data:     data,
	}
}

// ChildNames returns the names of the children in lexical order, which for
// sequential children is creation order.
func (z *ZNode) ChildNames() []string {
	names := make([]string, 0, len(z.Children))
	for name := range z.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (z *ZNode) Stat() *pbzk.Stat {
	stat := &pbzk.Stat{
		Czxid:       z.Czxid,
		Mzxid:       z.Mzxid,
		CtimeMs:     z.Ctime.UnixMilli(),
		MtimeMs:     z.Mtime.UnixMilli(),
		Version:     z.Version,
		Cversion:    z.Cversion,
		NumChildren: int64(len(z.Children)),
	}
	if z.NodeType == ZNodeType_EPHEMERAL {
		stat.EphemeralOwner = z.Owner
	}
	return stat
}

// snapshot copies z for use outside the DB lock. The copy's Children map
// keeps the names only.
func (z *ZNode) snapshot() *ZNode {
	cp := *z
	cp.Data = append([]byte(nil), z.Data...)
	cp.Children = make(map[string]*ZNode, len(z.Children))
	for name := range z.Children {
		cp.Children[name] = nil
	}
	return &cp
}
