package zookeeper

import (
	"fmt"
	"time"
)

const (
	// AnyVersion skips the version check of SetData and Delete.
	AnyVersion int64 = -1
	// InitialVersion is the version of a freshly created node.
	InitialVersion int64 = 1
)

// CreateMode picks the lifetime and naming of a new node.
type CreateMode int

const (
	Persistent CreateMode = iota
	// Ephemeral nodes are removed when the session that created them ends.
	Ephemeral
	// PersistentSequential appends a monotonically increasing counter, unique
	// per parent, to the requested name.
	PersistentSequential
	EphemeralSequential
)

func (m CreateMode) IsEphemeral() bool {
	return m == Ephemeral || m == EphemeralSequential
}

func (m CreateMode) IsSequential() bool {
	return m == PersistentSequential || m == EphemeralSequential
}

func (m CreateMode) String() string {
	switch m {
	case Persistent:
		return "persistent"
	case Ephemeral:
		return "ephemeral"
	case PersistentSequential:
		return "persistent_sequential"
	case EphemeralSequential:
		return "ephemeral_sequential"
	default:
		return fmt.Sprintf("CreateMode(%d)", int(m))
	}
}

// Stat is the metadata the server keeps for every node.
type Stat struct {
	// Czxid and Mzxid are the transaction ids that created and last modified the node.
	Czxid int64
	Mzxid int64
	Ctime time.Time
	Mtime time.Time
	// Version counts payload changes. It starts at InitialVersion.
	Version int64
	// Cversion counts changes to the set of children.
	Cversion    int64
	NumChildren int
	// EphemeralOwner is the owning session of an ephemeral node, empty otherwise.
	EphemeralOwner string
}

// State is the state of a client session.
type State int32

const (
	StateConnecting State = iota
	StateConnected
	StateDisconnected
	StateExpired
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "Connecting"
	case StateConnected:
		return "Connected"
	case StateDisconnected:
		return "Disconnected"
	case StateExpired:
		return "Expired"
	case StateClosed:
		return "Closed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

type EventType int

const (
	// EventSession reports a session state change. Event.State holds the new state.
	EventSession EventType = iota
	EventNodeCreated
	EventNodeDeleted
	EventNodeDataChanged
	EventNodeChildrenChanged
	// EventChildAdded, EventChildUpdated and EventChildRemoved are delivered by
	// persistent watches that observe children.
	EventChildAdded
	EventChildUpdated
	EventChildRemoved
	// EventWatchBroken is the last event of a persistent watch that stopped
	// observing. Event.Err holds the cause.
	EventWatchBroken
)

var eventNames = map[EventType]string{
	EventSession:             "Session",
	EventNodeCreated:         "NodeCreated",
	EventNodeDeleted:         "NodeDeleted",
	EventNodeDataChanged:     "NodeDataChanged",
	EventNodeChildrenChanged: "NodeChildrenChanged",
	EventChildAdded:          "ChildAdded",
	EventChildUpdated:        "ChildUpdated",
	EventChildRemoved:        "ChildRemoved",
	EventWatchBroken:         "WatchBroken",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is delivered to watchers. Data and Stat are only set by persistent
// watches, which refetch the node before delivering.
type Event struct {
	Type  EventType
	State State
	Path  string
	Data  []byte
	Stat  *Stat
	Err   error
}

// Watcher receives events on the client's delivery goroutine. It must not
// block for long, every other event waits behind it.
type Watcher func(Event)

type WatchMode int

const (
	// WatchOneShot watches fire at most once and are then discarded.
	WatchOneShot WatchMode = iota
	// WatchPersistent watches keep a mirror of the node and re-arm after every
	// event until they are cancelled.
	WatchPersistent
)

func (m WatchMode) String() string {
	if m == WatchPersistent {
		return "persistent"
	}
	return "one-shot"
}

// EventMask selects the changes a watch reports.
type EventMask uint8

const (
	MaskDataChanged EventMask = 1 << iota
	MaskChildAdded
	MaskChildRemoved
	MaskChildUpdated

	MaskChildren = MaskChildAdded | MaskChildRemoved | MaskChildUpdated
	MaskAll      = MaskDataChanged | MaskChildren
)

func (m EventMask) Has(bits EventMask) bool {
	return m&bits != 0
}

// Matches reports whether an event of type t passes the mask. Session and
// broken events always pass.
func (m EventMask) Matches(t EventType) bool {
	switch t {
	case EventNodeCreated, EventNodeDeleted, EventNodeDataChanged:
		return m.Has(MaskDataChanged)
	case EventNodeChildrenChanged:
		return m.Has(MaskChildren)
	case EventChildAdded:
		return m.Has(MaskChildAdded)
	case EventChildUpdated:
		return m.Has(MaskChildUpdated)
	case EventChildRemoved:
		return m.Has(MaskChildRemoved)
	default:
		return true
	}
}
