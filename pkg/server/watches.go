package server

import (
	"slices"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	pbzk "github.com/mikekulinski/zkclient/proto"
)

// Notification is a watch event addressed to one session.
type Notification struct {
	SessionID string
	Event     *pbzk.WatchEvent
}

// WatchManager keeps the one-shot watches sessions have set. A watch is
// removed as soon as it fires.
type WatchManager struct {
	mu sync.Mutex
	// data watches are set by GetData and Exists, child watches by GetChildren.
	// Both map a path to the IDs of the sessions watching it.
	data  map[string]mapset.Set[string]
	child map[string]mapset.Set[string]
}

func NewWatchManager() *WatchManager {
	return &WatchManager{
		data:  map[string]mapset.Set[string]{},
		child: map[string]mapset.Set[string]{},
	}
}

func (w *WatchManager) AddData(path, sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	add(w.data, path, sessionID)
}

func (w *WatchManager) AddChild(path, sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	add(w.child, path, sessionID)
}

func add(table map[string]mapset.Set[string], path, sessionID string) {
	set, ok := table[path]
	if !ok {
		set = mapset.NewThreadUnsafeSet[string]()
		table[path] = set
	}
	set.Add(sessionID)
}

// take removes and returns the watchers of path in table.
func take(table map[string]mapset.Set[string], path string) mapset.Set[string] {
	set, ok := table[path]
	if !ok {
		return mapset.NewThreadUnsafeSet[string]()
	}
	delete(table, path)
	return set
}

// Trigger fires the watches affected by a change of kind typ to path and
// returns one notification per fired watch:
//   - created: data watches of path, child watches of the parent.
//   - deleted: data and child watches of path, child watches of the parent.
//   - data changed: data watches of path.
//
// A session watching a deleted node both ways is notified once.
func (w *WatchManager) Trigger(path string, typ pbzk.WatchEvent_EventType, zxid int64) []Notification {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []Notification
	notify := func(sessions mapset.Set[string], path string, typ pbzk.WatchEvent_EventType) {
		for _, id := range sortedIDs(sessions) {
			out = append(out, Notification{
				SessionID: id,
				Event:     &pbzk.WatchEvent{Type: typ, Path: path, Zxid: zxid},
			})
		}
	}

	switch typ {
	case pbzk.WatchEvent_EVENT_TYPE_ZNODE_CREATED:
		notify(take(w.data, path), path, typ)
		if path != "/" {
			notify(take(w.child, zookeeper.Parent(path)), zookeeper.Parent(path), pbzk.WatchEvent_EVENT_TYPE_ZNODE_CHILDREN_CHANGED)
		}
	case pbzk.WatchEvent_EVENT_TYPE_ZNODE_DELETED:
		notify(take(w.data, path).Union(take(w.child, path)), path, typ)
		if path != "/" {
			notify(take(w.child, zookeeper.Parent(path)), zookeeper.Parent(path), pbzk.WatchEvent_EVENT_TYPE_ZNODE_CHILDREN_CHANGED)
		}
	case pbzk.WatchEvent_EVENT_TYPE_ZNODE_DATA_CHANGED:
		notify(take(w.data, path), path, typ)
	}
	return out
}

// RemoveSession drops every watch of a session.
func (w *WatchManager) RemoveSession(sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, table := range []map[string]mapset.Set[string]{w.data, w.child} {
		for path, set := range table {
			set.Remove(sessionID)
			if set.Cardinality() == 0 {
				delete(table, path)
			}
		}
	}
}

// Count returns the number of watches currently set.
func (w *WatchManager) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := 0
	for _, table := range []map[string]mapset.Set[string]{w.data, w.child} {
		for _, set := range table {
			n += set.Cardinality()
		}
	}
	return n
}

func sortedIDs(set mapset.Set[string]) []string {
	ids := set.ToSlice()
	slices.Sort(ids)
	return ids
}
