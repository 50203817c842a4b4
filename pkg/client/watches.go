package client

import (
	"slices"
	"sync"

	"github.com/mikekulinski/zkclient/pkg/zookeeper"
)

type watchKind int

const (
	// watchData watchers were set by GetData.
	watchData watchKind = iota
	// watchExist watchers were set by Exists. They fire on the same events as
	// watchData whether or not the node existed.
	watchExist
	// watchChild watchers were set by GetChildren.
	watchChild
)

// watchEntry is one registered watcher. Entries are compared by identity so a
// failed request can take back exactly the watcher it added.
type watchEntry struct {
	watcher zookeeper.Watcher
}

// watcherRegistry holds the one-shot watchers of the session. The server
// keeps one watch per path and kind for the whole session, so every watcher
// registered on a path fires on the same notification.
type watcherRegistry struct {
	mu    sync.Mutex
	kinds map[watchKind]map[string][]*watchEntry
}

func newWatcherRegistry() *watcherRegistry {
	return &watcherRegistry{
		kinds: map[watchKind]map[string][]*watchEntry{
			watchData:  {},
			watchExist: {},
			watchChild: {},
		},
	}
}

func (r *watcherRegistry) add(kind watchKind, path string, w zookeeper.Watcher) *watchEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := &watchEntry{watcher: w}
	r.kinds[kind][path] = append(r.kinds[kind][path], e)
	return e
}

// remove takes e back out. It reports false when e already fired or was drained.
func (r *watcherRegistry) remove(kind watchKind, path string, e *watchEntry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.kinds[kind][path]
	i := slices.Index(entries, e)
	if i < 0 {
		return false
	}
	entries = slices.Delete(entries, i, i+1)
	if len(entries) == 0 {
		delete(r.kinds[kind], path)
	} else {
		r.kinds[kind][path] = entries
	}
	return true
}

// trigger removes and returns the watchers a notification of type typ on path fires.
func (r *watcherRegistry) trigger(path string, typ zookeeper.EventType) []zookeeper.Watcher {
	var kinds []watchKind
	switch typ {
	case zookeeper.EventNodeCreated, zookeeper.EventNodeDataChanged:
		kinds = []watchKind{watchData, watchExist}
	case zookeeper.EventNodeDeleted:
		kinds = []watchKind{watchData, watchExist, watchChild}
	case zookeeper.EventNodeChildrenChanged:
		kinds = []watchKind{watchChild}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	var out []zookeeper.Watcher
	for _, kind := range kinds {
		for _, e := range r.kinds[kind][path] {
			out = append(out, e.watcher)
		}
		delete(r.kinds[kind], path)
	}
	return out
}

// drain removes and returns every watcher.
func (r *watcherRegistry) drain() []zookeeper.Watcher {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []zookeeper.Watcher
	for kind, table := range r.kinds {
		for _, entries := range table {
			for _, e := range entries {
				out = append(out, e.watcher)
			}
		}
		r.kinds[kind] = map[string][]*watchEntry{}
	}
	return out
}

func (r *watcherRegistry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, table := range r.kinds {
		for _, entries := range table {
			n += len(entries)
		}
	}
	return n
}
