package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/mikekulinski/zkclient/pkg/cache"
	"github.com/mikekulinski/zkclient/pkg/zookeeper"
)

// RegisterWatch observes path. A one-shot watch delivers the first change
// that mask selects and is then done. Child changes are reported per child,
// and a deletion of path ends any one-shot watch on it. A persistent watch keeps a mirror of the node, and
// of its children when mask asks for child events, and delivers every change
// with the data it refetched, until it is cancelled or breaks. A zero mask
// means MaskAll.
func (c *Client) RegisterWatch(ctx context.Context, path string, mode zookeeper.WatchMode, mask zookeeper.EventMask, watcher zookeeper.Watcher) (zookeeper.Handle, error) {
	if err := zookeeper.ValidatePath(path); err != nil {
		return nil, err
	}
	if watcher == nil {
		return nil, fmt.Errorf("%w: watch %s: nil watcher", zookeeper.ErrBadRequest, path)
	}
	if mask == 0 {
		mask = zookeeper.MaskAll
	}
	switch mode {
	case zookeeper.WatchOneShot:
		return c.watchOnce(ctx, path, mask, watcher)
	case zookeeper.WatchPersistent:
		return c.watchPersistent(ctx, path, mask, watcher)
	default:
		return nil, fmt.Errorf("%w: watch %s: unknown mode %s", zookeeper.ErrBadRequest, path, mode)
	}
}

type handle struct {
	path string
	mode zookeeper.WatchMode
	done chan struct{}
	once sync.Once
}

func newHandle(path string, mode zookeeper.WatchMode) handle {
	return handle{path: path, mode: mode, done: make(chan struct{})}
}

func (h *handle) Path() string              { return h.path }
func (h *handle) Mode() zookeeper.WatchMode { return h.mode }
func (h *handle) Done() <-chan struct{}     { return h.done }

func (h *handle) Active() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

// finish reports whether this call ended the watch.
func (h *handle) finish() bool {
	first := false
	h.once.Do(func() {
		close(h.done)
		first = true
	})
	return first
}

// oneShotWatch may hold several server watches at once, on the node and on
// its children. Whichever matching change comes first ends it.
type oneShotWatch struct {
	handle
	client  *Client
	mask    zookeeper.EventMask
	watcher zookeeper.Watcher

	// mu is held while the child watch is set, so a recheck never diffs
	// against a list that is still being fetched.
	mu       sync.Mutex
	children mapset.Set[string]
	// dataArmed holds the children that carry a data watch.
	dataArmed mapset.Set[string]
}

func (w *oneShotWatch) fire(event zookeeper.Event) {
	if w.finish() {
		w.watcher(event)
	}
}

func (w *oneShotWatch) Cancel() error {
	w.finish()
	return nil
}

func (c *Client) watchOnce(ctx context.Context, path string, mask zookeeper.EventMask, watcher zookeeper.Watcher) (zookeeper.Handle, error) {
	w := &oneShotWatch{
		handle:    newHandle(path, zookeeper.WatchOneShot),
		client:    c,
		mask:      mask,
		watcher:   watcher,
		children:  mapset.NewThreadUnsafeSet[string](),
		dataArmed: mapset.NewSet[string](),
	}
	if mask.Has(zookeeper.MaskDataChanged) {
		if _, err := c.Exists(ctx, path, w.fire); err != nil {
			w.finish()
			return nil, err
		}
	}
	if mask.Has(zookeeper.MaskChildren) {
		w.mu.Lock()
		_, _, err := w.armChildren(ctx)
		w.mu.Unlock()
		if err != nil {
			w.finish()
			return nil, err
		}
	}
	return w, nil
}

// armChildren sets the child watch, and data watches on new children when
// child updates are asked for. It returns the children that joined and left
// since the last call. w.mu must be held.
func (w *oneShotWatch) armChildren(ctx context.Context) (added, removed []string, err error) {
	children, _, err := w.client.GetChildren(ctx, w.path, w.onChildren)
	if err != nil {
		return nil, nil, err
	}
	current := mapset.NewThreadUnsafeSet(children...)
	added = current.Difference(w.children).ToSlice()
	removed = w.children.Difference(current).ToSlice()
	w.children = current
	slices.Sort(added)
	slices.Sort(removed)

	for _, name := range removed {
		w.dataArmed.Remove(name)
	}
	if w.mask.Has(zookeeper.MaskChildUpdated) {
		for _, name := range children {
			if !w.dataArmed.Add(name) {
				continue
			}
			_, _, err := w.client.GetData(ctx, zookeeper.Join(w.path, name), w.onChildData(name))
			if errors.Is(err, zookeeper.ErrNodeNotFound) {
				// Gone already, the child watch reports it.
				w.dataArmed.Remove(name)
				continue
			}
			if err != nil {
				w.dataArmed.Remove(name)
				return nil, nil, err
			}
		}
	}
	return added, removed, nil
}

// onChildren runs on the delivery goroutine when the child watch fires.
func (w *oneShotWatch) onChildren(event zookeeper.Event) {
	if event.Type != zookeeper.EventNodeChildrenChanged {
		// Deleted or a session event. No child watch can be set on a
		// missing node, so either way this is the end.
		w.fire(event)
		return
	}
	c := w.client
	if !w.Active() || c.closing.Load() {
		return
	}
	// The delivery goroutine holds a count on wg, so Add is safe here.
	c.wg.Add(1)
	go w.recheck()
}

// recheck finds out what changed among the children and delivers it if the
// mask asks for it. Otherwise the child watch stays set.
func (w *oneShotWatch) recheck() {
	c := w.client
	defer c.wg.Done()

	w.mu.Lock()
	added, removed, err := w.armChildren(c.ctx)
	w.mu.Unlock()

	var event zookeeper.Event
	switch {
	case errors.Is(err, zookeeper.ErrNodeNotFound):
		event = zookeeper.Event{Type: zookeeper.EventNodeDeleted, State: zookeeper.StateConnected, Path: w.path}
	case errors.Is(err, zookeeper.ErrClosed):
		w.finish()
		return
	case errors.Is(err, zookeeper.ErrSessionExpired):
		event = zookeeper.Event{Type: zookeeper.EventSession, State: zookeeper.StateExpired, Path: w.path, Err: err}
	case err != nil:
		event = zookeeper.Event{Type: zookeeper.EventWatchBroken, Path: w.path, Err: err}
	case len(added) > 0 && w.mask.Has(zookeeper.MaskChildAdded):
		event = zookeeper.Event{Type: zookeeper.EventChildAdded, State: zookeeper.StateConnected, Path: zookeeper.Join(w.path, added[0])}
	case len(removed) > 0 && w.mask.Has(zookeeper.MaskChildRemoved):
		event = zookeeper.Event{Type: zookeeper.EventChildRemoved, State: zookeeper.StateConnected, Path: zookeeper.Join(w.path, removed[0])}
	default:
		return
	}
	c.enqueue(delivery{watcher: w.fire, event: event})
}

func (w *oneShotWatch) onChildData(name string) zookeeper.Watcher {
	return func(event zookeeper.Event) {
		switch event.Type {
		case zookeeper.EventNodeDataChanged:
			event.Type = zookeeper.EventChildUpdated
			w.fire(event)
		case zookeeper.EventSession:
			w.fire(event)
		default:
			// Deleted: the child watch of the parent reports removals.
			w.dataArmed.Remove(name)
		}
	}
}

type persistentWatch struct {
	handle
	client  *Client
	mask    zookeeper.EventMask
	watcher zookeeper.Watcher
	cache   *cache.TreeCache
	// initialized is only touched by the cache worker.
	initialized bool
}

func (c *Client) watchPersistent(ctx context.Context, path string, mask zookeeper.EventMask, watcher zookeeper.Watcher) (zookeeper.Handle, error) {
	depth := 0
	if mask.Has(zookeeper.MaskChildren) {
		depth = 1
	}
	pw := &persistentWatch{
		handle:  newHandle(path, zookeeper.WatchPersistent),
		client:  c,
		mask:    mask,
		watcher: watcher,
	}
	pw.cache = cache.NewTreeCache(c, path,
		cache.WithMaxDepth(depth),
		cache.WithInitialBuild(),
		cache.WithRefreshRetries(c.opts.refreshRetries),
		cache.WithRetry(c.opts.retryInitial, c.opts.retryMax),
		cache.WithLogger(c.logger),
	)
	pw.cache.AddListener(pw.onCacheEvent)

	c.mu.Lock()
	if c.closing.Load() || c.state == zookeeper.StateClosed {
		c.mu.Unlock()
		return nil, zookeeper.ErrClosed
	}
	if c.state == zookeeper.StateExpired {
		c.mu.Unlock()
		return nil, zookeeper.ErrSessionExpired
	}
	c.watches[pw] = struct{}{}
	c.mu.Unlock()

	if err := pw.cache.Start(ctx); err != nil {
		_ = pw.Cancel()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return pw, nil
}

func (pw *persistentWatch) Cancel() error {
	if !pw.finish() {
		return nil
	}
	pw.client.forget(pw)
	return pw.cache.Close()
}

// onCacheEvent runs on the cache worker. Events are handed to the delivery
// goroutine of the client so that they are ordered with every other event of
// the session.
func (pw *persistentWatch) onCacheEvent(event cache.Event) {
	switch event.Type {
	case cache.Initialized:
		pw.initialized = true
		return
	case cache.Broken:
		out := zookeeper.Event{Type: zookeeper.EventWatchBroken, Path: pw.path, Err: event.Err}
		if errors.Is(event.Err, zookeeper.ErrSessionExpired) {
			out = zookeeper.Event{Type: zookeeper.EventSession, State: zookeeper.StateExpired, Path: pw.path, Err: event.Err}
		}
		pw.client.enqueue(delivery{watcher: pw.deliverLast, event: out})
		return
	}
	if !pw.initialized {
		return
	}
	typ := pw.eventType(event)
	if !pw.mask.Matches(typ) {
		return
	}
	pw.client.enqueue(delivery{
		watcher: pw.deliver,
		event: zookeeper.Event{
			Type:  typ,
			State: zookeeper.StateConnected,
			Path:  event.Path,
			Data:  event.Data,
			Stat:  event.Stat,
		},
	})
}

func (pw *persistentWatch) eventType(event cache.Event) zookeeper.EventType {
	if event.Path == pw.path {
		switch event.Type {
		case cache.NodeAdded:
			return zookeeper.EventNodeCreated
		case cache.NodeRemoved:
			return zookeeper.EventNodeDeleted
		default:
			return zookeeper.EventNodeDataChanged
		}
	}
	switch event.Type {
	case cache.NodeAdded:
		return zookeeper.EventChildAdded
	case cache.NodeRemoved:
		return zookeeper.EventChildRemoved
	default:
		return zookeeper.EventChildUpdated
	}
}

func (pw *persistentWatch) deliver(event zookeeper.Event) {
	if pw.Active() {
		pw.watcher(event)
	}
}

// deliverLast delivers the final event of a broken watch.
func (pw *persistentWatch) deliverLast(event zookeeper.Event) {
	if !pw.finish() {
		return
	}
	pw.client.forget(pw)
	_ = pw.cache.Close()
	pw.watcher(event)
}

func (c *Client) forget(pw *persistentWatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.watches, pw)
}
