package znode

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	pbzk "github.com/mikekulinski/zkclient/proto"
)

// DB is the source of truth for all the data stored in the Zookeeper server. It also controls the
// locking mechanism, so it can be abstracted away from the caller.
//
// Writes go through two steps. Prepare validates a transaction against the current tree and
// resolves anything the request left open (sequential names, the next version). Apply then
// mutates the tree. The caller must make sure no other write runs between the two, and may
// log the transaction in between. Replaying a log only needs Apply.
type DB struct {
	root *ZNode
	mu   *sync.RWMutex
}

type ChangeType int

const (
	ChangeCreated ChangeType = iota
	ChangeDeleted
	ChangeDataChanged
)

// Change describes one node touched by an applied transaction. Node is a
// snapshot taken right after the change, or right before removal.
type Change struct {
	Type ChangeType
	Path string
	Node *ZNode
}

func NewDB() *DB {
	return &DB{
		root: NewZNode("/", ZNodeType_STANDARD, "", nil),
		mu:   &sync.RWMutex{},
	}
}

// Get returns a copy of the node at path, or nil if there is none.
func (d *DB) Get(path string) *ZNode {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := splitPathIntoNodeNames(path)

	node := findZNode(d.root, names)
	if node == nil {
		return nil
	}
	return node.snapshot()
}

// Ephemerals returns the paths of the ephemeral nodes owned by owner. An
// empty owner matches every ephemeral node.
func (d *DB) Ephemerals(owner string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var paths []string
	var walk func(node *ZNode)
	walk = func(node *ZNode) {
		for _, child := range node.Children {
			if child.NodeType == ZNodeType_EPHEMERAL && (owner == "" || child.Owner == owner) {
				paths = append(paths, child.Name)
			}
			walk(child)
		}
	}
	walk(d.root)
	sort.Strings(paths)
	return paths
}

// findZNode will search down to the tree and return the node specified by the names.
// If the node could not be found, then we will return nil.
func findZNode(start *ZNode, names []string) *ZNode {
	node := start
	for _, name := range names {
		z, ok := node.Children[name]
		if !ok {
			return nil
		}
		node = z
	}
	return node
}

func splitPathIntoNodeNames(path string) []string {
	if path == "/" {
		return nil
	}
	// Since we have a leading /, then we expect the first name to be empty.
	return strings.Split(path, "/")[1:]
}

func newFullName(nodeName string, ancestorsNames []string) string {
	nodePath := "/" + nodeName
	if len(ancestorsNames) > 0 {
		return "/" + strings.Join(ancestorsNames, "/") + nodePath
	}
	return nodePath
}

// isValidVersion is used for conditional checks for update/delete operations. If the passed in version
// is -1, then skip the version check. Otherwise, make sure the versions are equal.
func isValidVersion(expected, actual int64) bool {
	return expected == zookeeper.AnyVersion || expected == actual
}

// Prepare checks txn against the tree without changing it. Create
// transactions for sequential nodes get their final path, SetData
// transactions get the version the node will have afterwards.
func (d *DB) Prepare(txn *pbzk.Transaction) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	switch t := txn.GetTxn().(type) {
	case *pbzk.Transaction_Create:
		return d.prepareCreate(t.Create)
	case *pbzk.Transaction_Delete:
		return d.prepareDelete(t.Delete)
	case *pbzk.Transaction_SetData:
		return d.prepareSetData(t.SetData)
	default:
		return fmt.Errorf("%w: unknown transaction %T", zookeeper.ErrBadRequest, t)
	}
}

func (d *DB) prepareCreate(c *pbzk.CreateTxn) error {
	if c.GetPath() == "/" {
		return fmt.Errorf("create %s: %w", c.GetPath(), zookeeper.ErrNodeExists)
	}
	names := splitPathIntoNodeNames(c.GetPath())
	parent := findZNode(d.root, names[:len(names)-1])
	if parent == nil {
		return fmt.Errorf("create %s: %w", c.GetPath(), zookeeper.ErrNoParent)
	}
	if parent.NodeType == ZNodeType_EPHEMERAL {
		return fmt.Errorf("create %s: %w", c.GetPath(), zookeeper.ErrNoChildrenForEphemerals)
	}

	newName := names[len(names)-1]
	if c.GetSequential() {
		// Zero padding keeps lexical order equal to creation order.
		newName = fmt.Sprintf("%s_%010d", newName, parent.NextSequentialNode)
		c.Path = newFullName(newName, names[:len(names)-1])
	}
	if _, ok := parent.Children[newName]; ok {
		return fmt.Errorf("create %s: %w", c.GetPath(), zookeeper.ErrNodeExists)
	}
	return nil
}

func (d *DB) prepareDelete(del *pbzk.DeleteTxn) error {
	if del.GetPath() == "/" {
		return fmt.Errorf("delete %s: %w: the root cannot be deleted", del.GetPath(), zookeeper.ErrInvalidPath)
	}
	node := findZNode(d.root, splitPathIntoNodeNames(del.GetPath()))
	if node == nil {
		return fmt.Errorf("delete %s: %w", del.GetPath(), zookeeper.ErrNodeNotFound)
	}
	if !isValidVersion(del.GetExpectedVersion(), node.Version) {
		return fmt.Errorf("delete %s: %w: expected [%d], actual [%d]",
			del.GetPath(), zookeeper.ErrVersionConflict, del.GetExpectedVersion(), node.Version)
	}
	if len(node.Children) > 0 && !del.GetRecursive() {
		return fmt.Errorf("delete %s: %w", del.GetPath(), zookeeper.ErrHasChildren)
	}
	return nil
}

func (d *DB) prepareSetData(s *pbzk.SetDataTxn) error {
	node := findZNode(d.root, splitPathIntoNodeNames(s.GetPath()))
	if node == nil {
		return fmt.Errorf("set %s: %w", s.GetPath(), zookeeper.ErrNodeNotFound)
	}
	if !isValidVersion(s.GetExpectedVersion(), node.Version) {
		return fmt.Errorf("set %s: %w: expected [%d], actual [%d]",
			s.GetPath(), zookeeper.ErrVersionConflict, s.GetExpectedVersion(), node.Version)
	}
	s.Version = node.Version + 1
	return nil
}

// Apply mutates the tree according to a prepared transaction.
func (d *DB) Apply(txn *pbzk.Transaction) ([]Change, error) {
	switch t := txn.GetTxn().(type) {
	case *pbzk.Transaction_Create:
		node, err := d.Create(txn)
		if err != nil {
			return nil, err
		}
		return []Change{{Type: ChangeCreated, Path: node.Name, Node: node}}, nil
	case *pbzk.Transaction_Delete:
		return d.Delete(txn)
	case *pbzk.Transaction_SetData:
		node, err := d.SetData(txn)
		if err != nil {
			return nil, err
		}
		return []Change{{Type: ChangeDataChanged, Path: node.Name, Node: node}}, nil
	default:
		return nil, fmt.Errorf("%w: unknown transaction %T", zookeeper.ErrBadRequest, t)
	}
}

// Create adds the node described by a create transaction and returns a copy of it.
func (d *DB) Create(txn *pbzk.Transaction) (*ZNode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	create := txn.GetCreate()
	names := splitPathIntoNodeNames(create.GetPath())
	if len(names) == 0 {
		return nil, fmt.Errorf("create %s: %w", create.GetPath(), zookeeper.ErrNodeExists)
	}
	// Search down the tree until we hit the parent where we'll be creating this new node.
	parent := findZNode(d.root, names[:len(names)-1])
	if parent == nil {
		return nil, fmt.Errorf("create %s: %w", create.GetPath(), zookeeper.ErrNoParent)
	}
	if parent.NodeType == ZNodeType_EPHEMERAL {
		return nil, fmt.Errorf("create %s: %w", create.GetPath(), zookeeper.ErrNoChildrenForEphemerals)
	}

	newName := names[len(names)-1]
	if _, ok := parent.Children[newName]; ok {
		return nil, fmt.Errorf("create %s: %w", create.GetPath(), zookeeper.ErrNodeExists)
	}

	nodeType := ZNodeType_STANDARD
	if create.GetEphemeral() {
		nodeType = ZNodeType_EPHEMERAL
	}
	now := time.UnixMilli(txn.GetTimeMs())
	newNode := NewZNode(
		newFullName(newName, names[:len(names)-1]),
		nodeType,
		txn.GetSessionId(),
		append([]byte(nil), create.GetData()...),
	)
	newNode.Version = zookeeper.InitialVersion
	newNode.Czxid = txn.GetZxid()
	newNode.Mzxid = txn.GetZxid()
	newNode.Ctime = now
	newNode.Mtime = now

	parent.Children[newName] = newNode
	parent.Cversion++
	// Make sure to increment the counter so the next sequential node will have the next number.
	if create.GetSequential() {
		parent.NextSequentialNode++
	}
	return newNode.snapshot(), nil
}

// Delete removes the node of a delete transaction. Recursive deletes report
// every removed node, deepest first.
func (d *DB) Delete(txn *pbzk.Transaction) ([]Change, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	del := txn.GetDelete()
	names := splitPathIntoNodeNames(del.GetPath())
	if len(names) == 0 {
		return nil, fmt.Errorf("delete %s: %w: the root cannot be deleted", del.GetPath(), zookeeper.ErrInvalidPath)
	}

	// Search down the tree until we hit the parent of the node we are deleting.
	parent := findZNode(d.root, names[:len(names)-1])
	if parent == nil {
		return nil, fmt.Errorf("delete %s: %w", del.GetPath(), zookeeper.ErrNodeNotFound)
	}
	nameToDelete := names[len(names)-1]
	node, ok := parent.Children[nameToDelete]
	if !ok {
		return nil, fmt.Errorf("delete %s: %w", del.GetPath(), zookeeper.ErrNodeNotFound)
	}
	if len(node.Children) > 0 && !del.GetRecursive() {
		return nil, fmt.Errorf("delete %s: %w", del.GetPath(), zookeeper.ErrHasChildren)
	}

	var changes []Change
	var collect func(z *ZNode)
	collect = func(z *ZNode) {
		for _, name := range z.ChildNames() {
			collect(z.Children[name])
		}
		changes = append(changes, Change{Type: ChangeDeleted, Path: z.Name, Node: z.snapshot()})
	}
	collect(node)

	// Delete the actual node from the tree.
	delete(parent.Children, nameToDelete)
	parent.Cversion++
	return changes, nil
}

// SetData replaces the payload of a node and returns a copy of it.
func (d *DB) SetData(txn *pbzk.Transaction) (*ZNode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	set := txn.GetSetData()
	node := findZNode(d.root, splitPathIntoNodeNames(set.GetPath()))
	if node == nil {
		return nil, fmt.Errorf("set %s: %w", set.GetPath(), zookeeper.ErrNodeNotFound)
	}
	node.Data = append([]byte(nil), set.GetData()...)
	node.Version = set.GetVersion()
	node.Mzxid = txn.GetZxid()
	node.Mtime = time.UnixMilli(txn.GetTimeMs())
	return node.snapshot(), nil
}
