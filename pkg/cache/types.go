package cache

import (
	"context"
	"fmt"

	"github.com/mikekulinski/zkclient/pkg/zookeeper"
)

// Client is the part of a session a cache reads through.
type Client interface {
	Exists(ctx context.Context, path string, watcher zookeeper.Watcher) (*zookeeper.Stat, error)
	GetData(ctx context.Context, path string, watcher zookeeper.Watcher) ([]byte, *zookeeper.Stat, error)
	GetChildren(ctx context.Context, path string, watcher zookeeper.Watcher) ([]string, *zookeeper.Stat, error)
}

type EventType int

const (
	NodeAdded EventType = iota
	NodeUpdated
	NodeRemoved
	// Initialized follows the events of the initial load.
	Initialized
	// Broken is the last event of a cache. Event.Err holds the cause.
	Broken
)

func (t EventType) String() string {
	switch t {
	case NodeAdded:
		return "NodeAdded"
	case NodeUpdated:
		return "NodeUpdated"
	case NodeRemoved:
		return "NodeRemoved"
	case Initialized:
		return "Initialized"
	case Broken:
		return "Broken"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

type Event struct {
	Type EventType
	Path string
	// Data and Stat are the node as the cache saw it after the change. They
	// are the last known values for NodeRemoved.
	Data []byte
	Stat *zookeeper.Stat
	Err  error
}

// Listener runs on the cache worker goroutine.
type Listener func(Event)

type State int32

const (
	Latent State = iota
	Started
	// StateBroken caches stopped following the server after an error.
	StateBroken
	Closed
)

func (s State) String() string {
	switch s {
	case Latent:
		return "Latent"
	case Started:
		return "Started"
	case StateBroken:
		return "Broken"
	case Closed:
		return "Closed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// ChildData is the cached copy of one node.
type ChildData struct {
	Path string
	Data []byte
	Stat *zookeeper.Stat
}
