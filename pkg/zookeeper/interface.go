package zookeeper

import "context"

type Zookeeper interface {
	// Create creates a ZNode with path name path, stores data in it, and returns the name of the new ZNode.
	// The mode decides whether the node is ephemeral and whether a sequence number is appended to the name.
	Create(ctx context.Context, path string, data []byte, mode CreateMode) (string, error)
	// Delete deletes the ZNode at the given path if that ZNode is at the expected version.
	Delete(ctx context.Context, path string, version int64) error
	// Exists returns the Stat of the ZNode, or nil if it does not exist. A non-nil watcher fires
	// once when the node is created, deleted, or its data changes.
	Exists(ctx context.Context, path string, watcher Watcher) (*Stat, error)
	// GetData returns the data and metadata, such as version information, associated with the ZNode.
	// The watcher works in the same way as it does for Exists, except that it is not set
	// if the ZNode does not exist.
	GetData(ctx context.Context, path string, watcher Watcher) ([]byte, *Stat, error)
	// SetData writes data to the ZNode path if the version number is the current version of the ZNode.
	SetData(ctx context.Context, path string, data []byte, version int64) (*Stat, error)
	// GetChildren returns the set of names of the children of a ZNode.
	GetChildren(ctx context.Context, path string, watcher Watcher) ([]string, *Stat, error)
	// Sync waits for all updates pending at the start of the operation to be visible to this session.
	Sync(ctx context.Context, path string) (string, error)
	// RegisterWatch observes path until the returned handle is cancelled (WatchPersistent) or fires (WatchOneShot).
	RegisterWatch(ctx context.Context, path string, mode WatchMode, mask EventMask, watcher Watcher) (Handle, error)
	Close() error
}

// Handle controls a registered watch.
type Handle interface {
	Path() string
	Mode() WatchMode
	// Cancel stops delivery. Cancelling an already finished watch is a no-op.
	Cancel() error
	// Done is closed once the watch will deliver no more events.
	Done() <-chan struct{}
	Active() bool
}
