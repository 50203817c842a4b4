package cache

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/Workiva/go-datastructures/queue"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/flowchartsman/retry"
	"github.com/mikekulinski/zkclient/pkg/log"
	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	"go.uber.org/atomic"
)

type opKind int

const (
	opRefreshNode opKind = iota
	opRefreshChildren
	// opDataFired and opChildFired report that a watch set by the cache fired.
	opDataFired
	opChildFired
	opSessionEvent
)

type op struct {
	kind  opKind
	path  string
	event zookeeper.Event
}

type node struct {
	data     []byte
	stat     *zookeeper.Stat
	children mapset.Set[string]
}

// TreeCache keeps a local copy of a node and its descendants down to a
// maximum depth. It sets one-shot watches through the client and refetches
// the affected node after each of them fires, so every change the server
// reports is applied and announced in the order it was reported.
//
// A single worker goroutine does all fetching and runs the listeners.
type TreeCache struct {
	client Client
	root   string
	opts   *options
	logger log.Logger
	state  *atomic.Int32

	lmu       sync.RWMutex
	listeners []Listener

	// mu protects nodes. Readers use it, the worker is the only writer.
	mu    sync.RWMutex
	nodes map[string]*node

	// Owned by the worker.
	armedData   map[string]bool
	armedChild  map[string]bool
	initialized bool

	ops    *queue.Queue
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	ready     chan struct{}
	readyOnce sync.Once
	readyErr  error
}

func NewTreeCache(client Client, root string, opts ...Option) *TreeCache {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &TreeCache{
		client:     client,
		root:       root,
		opts:       o,
		logger:     o.logger,
		state:      atomic.NewInt32(int32(Latent)),
		nodes:      map[string]*node{},
		armedData:  map[string]bool{},
		armedChild: map[string]bool{},
		ops:        queue.New(16),
		ctx:        ctx,
		cancel:     cancel,
		ready:      make(chan struct{}),
	}
}

func (t *TreeCache) Root() string {
	return t.root
}

func (t *TreeCache) State() State {
	return State(t.state.Load())
}

// AddListener registers l for every event emitted after the call.
func (t *TreeCache) AddListener(l Listener) {
	t.lmu.Lock()
	defer t.lmu.Unlock()
	t.listeners = append(t.listeners, l)
}

// Start loads the tree and begins following changes. With WithInitialBuild
// it returns once the initial state is loaded.
func (t *TreeCache) Start(ctx context.Context) error {
	if err := zookeeper.ValidatePath(t.root); err != nil {
		return err
	}
	if !t.state.CompareAndSwap(int32(Latent), int32(Started)) {
		return fmt.Errorf("cache %s: already started", t.root)
	}
	t.wg.Add(1)
	go t.run()
	t.put(op{kind: opRefreshNode, path: t.root})

	if !t.opts.initialBuild {
		return nil
	}
	select {
	case <-t.ready:
		return t.readyErr
	case <-ctx.Done():
		_ = t.Close()
		return ctx.Err()
	}
}

// Close stops the cache. No listener runs once it returns. It must not be
// called from a listener.
func (t *TreeCache) Close() error {
	if State(t.state.Swap(int32(Closed))) == Closed {
		return nil
	}
	t.cancel()
	t.ops.Dispose()
	t.markReady(zookeeper.ErrClosed)
	t.wg.Wait()
	return nil
}

// CurrentData returns the cached copy of path.
func (t *TreeCache) CurrentData(path string) (*ChildData, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n, ok := t.nodes[path]
	if !ok {
		return nil, false
	}
	return &ChildData{Path: path, Data: n.data, Stat: n.stat}, true
}

// CurrentChildren returns the cached children of path by name, or nil if
// path is not cached.
func (t *TreeCache) CurrentChildren(path string) map[string]*ChildData {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n, ok := t.nodes[path]
	if !ok {
		return nil
	}
	out := map[string]*ChildData{}
	for _, name := range n.children.ToSlice() {
		childPath := zookeeper.Join(path, name)
		if child, ok := t.nodes[childPath]; ok {
			out[name] = &ChildData{Path: childPath, Data: child.data, Stat: child.stat}
		}
	}
	return out
}

func (t *TreeCache) put(o op) {
	// Put fails once the queue is disposed, the cache is done by then.
	_ = t.ops.Put(o)
}

func (t *TreeCache) markReady(err error) {
	t.readyOnce.Do(func() {
		t.readyErr = err
		close(t.ready)
	})
}

func (t *TreeCache) emit(event Event) {
	t.lmu.RLock()
	listeners := slices.Clone(t.listeners)
	t.lmu.RUnlock()

	for _, l := range listeners {
		l(event)
	}
}

func (t *TreeCache) run() {
	defer t.wg.Done()

	for {
		items, err := t.ops.Get(1)
		if err != nil {
			return
		}
		if t.State() != Started {
			return
		}
		if err := t.handle(items[0].(op)); err != nil {
			t.breakWith(err)
			return
		}
		if !t.initialized && t.ops.Len() == 0 && t.State() == Started {
			t.initialized = true
			t.emit(Event{Type: Initialized, Path: t.root})
			t.markReady(nil)
		}
	}
}

func (t *TreeCache) handle(o op) error {
	if o.kind == opSessionEvent {
		if o.event.State == zookeeper.StateExpired {
			return zookeeper.ErrSessionExpired
		}
		return nil
	}

	retrier := retry.NewRetrier(t.opts.refreshRetries+1, t.opts.retryInitial, t.opts.retryMax)
	return retrier.RunContext(t.ctx, func(ctx context.Context) error {
		err := t.process(ctx, o)
		if err == nil {
			return nil
		}
		if terminal(err) {
			return retry.Stop(err)
		}
		t.logger.Warnf("cache %s: refresh of %s failed: %v", t.root, o.path, err)
		return err
	})
}

func terminal(err error) bool {
	return errors.Is(err, zookeeper.ErrSessionExpired) ||
		errors.Is(err, zookeeper.ErrClosed) ||
		errors.Is(err, context.Canceled)
}

func (t *TreeCache) process(ctx context.Context, o op) error {
	switch o.kind {
	case opDataFired:
		t.armedData[o.path] = false
		return t.refreshNode(ctx, o.path)
	case opChildFired:
		t.armedChild[o.path] = false
		return t.refreshChildren(ctx, o.path)
	case opRefreshNode:
		return t.refreshNode(ctx, o.path)
	case opRefreshChildren:
		return t.refreshChildren(ctx, o.path)
	}
	return nil
}

// watcher returns a one-shot watcher that feeds its event back to the worker.
func (t *TreeCache) watcher(kind opKind, path string) zookeeper.Watcher {
	return func(event zookeeper.Event) {
		if event.Type == zookeeper.EventSession {
			t.put(op{kind: opSessionEvent, path: path, event: event})
			return
		}
		t.put(op{kind: kind, path: path, event: event})
	}
}

func (t *TreeCache) refreshNode(ctx context.Context, path string) error {
	var w zookeeper.Watcher
	if !t.armedData[path] {
		w = t.watcher(opDataFired, path)
	}
	data, stat, err := t.client.GetData(ctx, path, w)
	if errors.Is(err, zookeeper.ErrNodeNotFound) {
		if path == t.root && w != nil {
			// GetData sets no watch on a missing node, Exists does.
			stat, err := t.client.Exists(ctx, path, w)
			if err != nil {
				return err
			}
			t.armedData[path] = true
			if stat != nil {
				t.put(op{kind: opRefreshNode, path: path})
			}
		}
		t.remove(path)
		return nil
	}
	if err != nil {
		return err
	}
	if w != nil {
		t.armedData[path] = true
	}
	t.upsert(path, data, stat)
	return nil
}

func (t *TreeCache) refreshChildren(ctx context.Context, path string) error {
	t.mu.RLock()
	_, ok := t.nodes[path]
	t.mu.RUnlock()
	if !ok || t.depth(path) >= t.opts.maxDepth {
		return nil
	}

	var w zookeeper.Watcher
	if !t.armedChild[path] {
		w = t.watcher(opChildFired, path)
	}
	children, _, err := t.client.GetChildren(ctx, path, w)
	if errors.Is(err, zookeeper.ErrNodeNotFound) {
		// The data watch reports the deletion.
		return nil
	}
	if err != nil {
		return err
	}
	if w != nil {
		t.armedChild[path] = true
	}

	current := mapset.NewThreadUnsafeSet(children...)
	t.mu.Lock()
	n, ok := t.nodes[path]
	if !ok {
		t.mu.Unlock()
		return nil
	}
	removed := n.children.Difference(current).ToSlice()
	added := current.Difference(n.children).ToSlice()
	n.children = current
	t.mu.Unlock()

	slices.Sort(removed)
	slices.Sort(added)
	for _, name := range removed {
		t.remove(zookeeper.Join(path, name))
	}
	for _, name := range added {
		t.put(op{kind: opRefreshNode, path: zookeeper.Join(path, name)})
	}
	return nil
}

func (t *TreeCache) upsert(path string, data []byte, stat *zookeeper.Stat) {
	t.mu.Lock()
	n, ok := t.nodes[path]
	if !ok {
		t.nodes[path] = &node{data: data, stat: stat, children: mapset.NewThreadUnsafeSet[string]()}
		if path != t.root {
			if parent, ok := t.nodes[zookeeper.Parent(path)]; ok {
				parent.children.Add(zookeeper.Base(path))
			}
		}
		t.mu.Unlock()

		t.emit(Event{Type: NodeAdded, Path: path, Data: data, Stat: stat})
		if t.depth(path) < t.opts.maxDepth {
			t.put(op{kind: opRefreshChildren, path: path})
		}
		return
	}
	changed := n.stat == nil || stat == nil || n.stat.Mzxid != stat.Mzxid
	n.data, n.stat = data, stat
	t.mu.Unlock()

	if changed {
		t.emit(Event{Type: NodeUpdated, Path: path, Data: data, Stat: stat})
	}
}

// remove drops path and everything below it, deepest nodes first.
func (t *TreeCache) remove(path string) {
	t.mu.Lock()
	var gone []string
	for p := range t.nodes {
		if p == path || isDescendant(path, p) {
			gone = append(gone, p)
		}
	}
	// Longer paths are deeper, reverse order puts children before parents.
	slices.Sort(gone)
	slices.Reverse(gone)
	removed := make([]Event, 0, len(gone))
	for _, p := range gone {
		n := t.nodes[p]
		delete(t.nodes, p)
		removed = append(removed, Event{Type: NodeRemoved, Path: p, Data: n.data, Stat: n.stat})
	}
	if path != t.root {
		if parent, ok := t.nodes[zookeeper.Parent(path)]; ok {
			parent.children.Remove(zookeeper.Base(path))
		}
	}
	t.mu.Unlock()

	for _, event := range removed {
		t.emit(event)
	}
}

func (t *TreeCache) breakWith(err error) {
	if !t.state.CompareAndSwap(int32(Started), int32(StateBroken)) {
		return
	}
	cause := fmt.Errorf("%w: %w", zookeeper.ErrCacheBroken, err)
	t.logger.Warnf("cache %s: %v", t.root, cause)
	t.emit(Event{Type: Broken, Path: t.root, Err: cause})
	t.markReady(cause)
	t.cancel()
	t.ops.Dispose()
}

// depth returns how many levels path is below the root.
func (t *TreeCache) depth(path string) int {
	if path == t.root {
		return 0
	}
	return strings.Count(strings.TrimPrefix(path, strings.TrimSuffix(t.root, "/")), "/")
}

func isDescendant(ancestor, path string) bool {
	if ancestor == "/" {
		return path != "/"
	}
	return strings.HasPrefix(path, ancestor+"/")
}
