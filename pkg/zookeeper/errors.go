package zookeeper

import "errors"

var (
	// ErrConnectionTimeout is returned by Connect when no session could be
	// established before the connect timeout elapsed.
	ErrConnectionTimeout = errors.New("zk: connection timeout")
	// ErrSessionExpired means the session is gone. Ephemeral nodes owned by it
	// have been removed and its watches will never fire again.
	ErrSessionExpired = errors.New("zk: session expired")
	ErrNodeNotFound   = errors.New("zk: node does not exist")
	ErrNodeExists     = errors.New("zk: node already exists")
	ErrNoParent       = errors.New("zk: parent node does not exist")
	ErrHasChildren    = errors.New("zk: node has children")
	// ErrVersionConflict is returned when a conditional update or delete named
	// a version other than the stored one.
	ErrVersionConflict = errors.New("zk: version conflict")
	// ErrTransport is a connection level failure. Writes that fail with it may
	// or may not have been applied.
	ErrTransport               = errors.New("zk: transport error")
	ErrInvalidPath             = errors.New("zk: invalid path")
	ErrNoChildrenForEphemerals = errors.New("zk: ephemeral nodes may not have children")
	ErrBadRequest              = errors.New("zk: bad request")
	ErrClosed                  = errors.New("zk: client is closed")
	// ErrCacheBroken is reported by a persistent watch that gave up re-arming.
	ErrCacheBroken = errors.New("zk: watch cache is broken")
)
