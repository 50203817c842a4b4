package server

import (
	"fmt"
	"testing"
	"time"

	"github.com/mikekulinski/zkclient/pkg/config"
	"github.com/mikekulinski/zkclient/pkg/log"
	"github.com/mikekulinski/zkclient/pkg/session"
	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	"github.com/mikekulinski/zkclient/pkg/zxid"
	pbzk "github.com/mikekulinski/zkclient/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	zk, err := NewServer(append([]Option{WithLogger(log.DiscardLogger)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = zk.Close() })
	return zk
}

func newTestSession(t *testing.T, zk *Server) *session.Session {
	t.Helper()
	sess, err := zk.openSession("client", &pbzk.ConnectRequest{TimeoutMs: 10_000})
	require.NoError(t, err)
	return sess
}

func eventPaths(events []*pbzk.WatchEvent) []string {
	var out []string
	for _, event := range events {
		out = append(out, fmt.Sprintf("%s %d", event.GetPath(), event.GetType()))
	}
	return out
}

func TestServer_Create(t *testing.T) {
	const existingNodeName = "existing"

	tests := []struct {
		name          string
		path          string
		parentFlags   []pbzk.CreateRequest_Flag
		errorExpected error
	}{
		{
			name:          "invalid path",
			path:          "invalid",
			errorExpected: zookeeper.ErrInvalidPath,
		},
		{
			name:          "root",
			path:          "/",
			errorExpected: zookeeper.ErrInvalidPath,
		},
		{
			name:          "parent node missing",
			path:          "/x/y/z",
			errorExpected: zookeeper.ErrNoParent,
		},
		{
			name:          "node already exists",
			path:          fmt.Sprintf("/%s", existingNodeName),
			errorExpected: zookeeper.ErrNodeExists,
		},
		{
			name: "valid create, root",
			path: "/xyz",
		},
		{
			name: "valid create, child of existing node",
			path: fmt.Sprintf("/%s/new", existingNodeName),
		},
		{
			name:          "parent node is ephemeral",
			path:          fmt.Sprintf("/%s/new", existingNodeName),
			parentFlags:   []pbzk.CreateRequest_Flag{pbzk.CreateRequest_FLAG_EPHEMERAL},
			errorExpected: zookeeper.ErrNoChildrenForEphemerals,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			zk := newTestServer(t)
			sess := newTestSession(t, zk)
			// Pre-init the server with some nodes so we can also test cases with existing nodes.
			_, err := zk.Create(sess, &pbzk.CreateRequest{Path: "/" + existingNodeName, Flags: test.parentFlags})
			require.NoError(t, err)

			resp, err := zk.Create(sess, &pbzk.CreateRequest{Path: test.path, Data: []byte("data")})
			if test.errorExpected != nil {
				assert.ErrorIs(t, err, test.errorExpected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.path, resp.GetZNodeName())
			assert.Equal(t, zookeeper.InitialVersion, resp.GetStat().GetVersion())
		})
	}
}

func TestServer_Create_Sequential(t *testing.T) {
	zk := newTestServer(t)
	sess := newTestSession(t, zk)
	_, err := zk.Create(sess, &pbzk.CreateRequest{Path: "/existing"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		resp, err := zk.Create(sess, &pbzk.CreateRequest{
			Path:  "/existing/new",
			Flags: []pbzk.CreateRequest_Flag{pbzk.CreateRequest_FLAG_SEQUENTIAL, pbzk.CreateRequest_FLAG_EPHEMERAL},
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("/existing/new_%010d", i), resp.GetZNodeName())
		assert.Equal(t, sess.ID, resp.GetStat().EphemeralOwner)
	}

	children, err := zk.GetChildren(sess, &pbzk.GetChildrenRequest{Path: "/existing"})
	require.NoError(t, err)
	assert.Equal(t, []string{"new_0000000000", "new_0000000001", "new_0000000002"}, children.GetChildren())
}

func TestServer_ReadsOnMissingNode(t *testing.T) {
	zk := newTestServer(t)
	sess := newTestSession(t, zk)

	_, err := zk.GetData(sess, &pbzk.GetDataRequest{Path: "/missing", Watch: true})
	assert.ErrorIs(t, err, zookeeper.ErrNodeNotFound)
	_, err = zk.GetChildren(sess, &pbzk.GetChildrenRequest{Path: "/missing", Watch: true})
	assert.ErrorIs(t, err, zookeeper.ErrNodeNotFound)
	// Neither of them leaves a watch behind.
	assert.Equal(t, 0, zk.watches.Count())

	exists, err := zk.Exists(sess, &pbzk.ExistsRequest{Path: "/missing", Watch: true})
	require.NoError(t, err)
	assert.False(t, exists.GetExists())
	assert.Nil(t, exists.GetStat())
	// Exists does, so the creation can be observed.
	assert.Equal(t, 1, zk.watches.Count())

	_, err = zk.Delete(sess, &pbzk.DeleteRequest{Path: "/missing", Version: zookeeper.AnyVersion})
	assert.ErrorIs(t, err, zookeeper.ErrNodeNotFound)
	_, err = zk.SetData(sess, &pbzk.SetDataRequest{Path: "/missing", Version: zookeeper.AnyVersion})
	assert.ErrorIs(t, err, zookeeper.ErrNodeNotFound)
}

func TestServer_ConfigScenario(t *testing.T) {
	zk := newTestServer(t)
	sess := newTestSession(t, zk)
	payload := []byte(`{"key":"url","value":"https://example.com"}`)

	_, err := zk.Create(sess, &pbzk.CreateRequest{Path: "/config", Data: payload})
	require.NoError(t, err)

	data, err := zk.GetData(sess, &pbzk.GetDataRequest{Path: "/config"})
	require.NoError(t, err)
	assert.Equal(t, payload, data.GetData())
	assert.Equal(t, int64(1), data.GetStat().GetVersion())

	_, err = zk.SetData(sess, &pbzk.SetDataRequest{Path: "/config", Data: []byte("stale"), Version: 0})
	assert.ErrorIs(t, err, zookeeper.ErrVersionConflict)

	set, err := zk.SetData(sess, &pbzk.SetDataRequest{Path: "/config", Data: []byte("fresh"), Version: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), set.GetStat().GetVersion())

	_, err = zk.Delete(sess, &pbzk.DeleteRequest{Path: "/config", Version: 2})
	require.NoError(t, err)

	_, err = zk.GetData(sess, &pbzk.GetDataRequest{Path: "/config"})
	assert.ErrorIs(t, err, zookeeper.ErrNodeNotFound)
}

func TestServer_WatchesFireOnce(t *testing.T) {
	zk := newTestServer(t)
	watcher := newTestSession(t, zk)
	writer := newTestSession(t, zk)

	_, err := zk.Exists(watcher, &pbzk.ExistsRequest{Path: "/zoo", Watch: true})
	require.NoError(t, err)
	_, err = zk.GetChildren(watcher, &pbzk.GetChildrenRequest{Path: "/", Watch: true})
	require.NoError(t, err)

	_, err = zk.Create(writer, &pbzk.CreateRequest{Path: "/zoo", Data: []byte("v1")})
	require.NoError(t, err)
	assert.Equal(t, []string{
		fmt.Sprintf("/zoo %d", pbzk.WatchEvent_EVENT_TYPE_ZNODE_CREATED),
		fmt.Sprintf("/ %d", pbzk.WatchEvent_EVENT_TYPE_ZNODE_CHILDREN_CHANGED),
	}, eventPaths(watcher.Drain()))
	assert.Empty(t, writer.Drain())

	// The watches are gone, so a second change is silent.
	_, err = zk.SetData(writer, &pbzk.SetDataRequest{Path: "/zoo", Data: []byte("v2"), Version: zookeeper.AnyVersion})
	require.NoError(t, err)
	assert.Empty(t, watcher.Drain())

	// Re-register through GetData and observe the data change.
	_, err = zk.GetData(watcher, &pbzk.GetDataRequest{Path: "/zoo", Watch: true})
	require.NoError(t, err)
	set, err := zk.SetData(writer, &pbzk.SetDataRequest{Path: "/zoo", Data: []byte("v3"), Version: zookeeper.AnyVersion})
	require.NoError(t, err)
	events := watcher.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, pbzk.WatchEvent_EVENT_TYPE_ZNODE_DATA_CHANGED, events[0].GetType())
	assert.Equal(t, set.GetStat().GetMzxid(), events[0].Zxid)
}

func TestServer_DeleteFiresDataAndChildWatchesOnce(t *testing.T) {
	zk := newTestServer(t)
	watcher := newTestSession(t, zk)
	writer := newTestSession(t, zk)

	_, err := zk.Create(writer, &pbzk.CreateRequest{Path: "/zoo"})
	require.NoError(t, err)
	_, err = zk.GetData(watcher, &pbzk.GetDataRequest{Path: "/zoo", Watch: true})
	require.NoError(t, err)
	_, err = zk.GetChildren(watcher, &pbzk.GetChildrenRequest{Path: "/zoo", Watch: true})
	require.NoError(t, err)
	_, err = zk.GetChildren(watcher, &pbzk.GetChildrenRequest{Path: "/", Watch: true})
	require.NoError(t, err)

	_, err = zk.Delete(writer, &pbzk.DeleteRequest{Path: "/zoo", Version: zookeeper.AnyVersion})
	require.NoError(t, err)
	assert.Equal(t, []string{
		fmt.Sprintf("/zoo %d", pbzk.WatchEvent_EVENT_TYPE_ZNODE_DELETED),
		fmt.Sprintf("/ %d", pbzk.WatchEvent_EVENT_TYPE_ZNODE_CHILDREN_CHANGED),
	}, eventPaths(watcher.Drain()))
	assert.Equal(t, 0, zk.watches.Count())
}

func TestServer_RecursiveDelete(t *testing.T) {
	zk := newTestServer(t)
	sess := newTestSession(t, zk)
	for _, path := range []string{"/a", "/a/b", "/a/b/c"} {
		_, err := zk.Create(sess, &pbzk.CreateRequest{Path: path})
		require.NoError(t, err)
	}

	_, err := zk.Delete(sess, &pbzk.DeleteRequest{Path: "/a", Version: zookeeper.AnyVersion})
	assert.ErrorIs(t, err, zookeeper.ErrHasChildren)

	_, err = zk.Delete(sess, &pbzk.DeleteRequest{Path: "/a", Version: zookeeper.AnyVersion, Recursive: true})
	require.NoError(t, err)
	exists, err := zk.Exists(sess, &pbzk.ExistsRequest{Path: "/a/b/c"})
	require.NoError(t, err)
	assert.False(t, exists.GetExists())
}

func TestServer_EndSessionRemovesEphemerals(t *testing.T) {
	tests := []struct {
		name    string
		expired bool
	}{
		{name: "closed"},
		{name: "expired", expired: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			zk := newTestServer(t)
			owner := newTestSession(t, zk)
			observer := newTestSession(t, zk)

			_, err := zk.Create(owner, &pbzk.CreateRequest{Path: "/lock", Flags: []pbzk.CreateRequest_Flag{pbzk.CreateRequest_FLAG_EPHEMERAL}})
			require.NoError(t, err)
			_, err = zk.Create(owner, &pbzk.CreateRequest{Path: "/config"})
			require.NoError(t, err)
			_, err = zk.Exists(observer, &pbzk.ExistsRequest{Path: "/lock", Watch: true})
			require.NoError(t, err)
			_, err = zk.Exists(owner, &pbzk.ExistsRequest{Path: "/config", Watch: true})
			require.NoError(t, err)

			if test.expired {
				assert.True(t, zk.ExpireSession(owner.ID))
			} else {
				assert.True(t, zk.CloseSession(owner.ID))
			}
			assert.Equal(t, test.expired, owner.Expired())
			assert.True(t, owner.Ended())
			assert.NotContains(t, zk.Sessions(), owner.ID)

			exists, err := zk.Exists(observer, &pbzk.ExistsRequest{Path: "/lock"})
			require.NoError(t, err)
			assert.False(t, exists.GetExists())
			exists, err = zk.Exists(observer, &pbzk.ExistsRequest{Path: "/config"})
			require.NoError(t, err)
			assert.True(t, exists.GetExists())

			assert.Equal(t, []string{fmt.Sprintf("/lock %d", pbzk.WatchEvent_EVENT_TYPE_ZNODE_DELETED)}, eventPaths(observer.Drain()))
			// The owner's watch went away with it.
			assert.Equal(t, 0, zk.watches.Count())

			// Ending it twice is a no-op.
			assert.False(t, zk.ExpireSession(owner.ID))
			_, err = zk.openSession("client", &pbzk.ConnectRequest{SessionId: owner.ID})
			assert.ErrorIs(t, err, zookeeper.ErrSessionExpired)
		})
	}
}

func TestServer_OpenSession(t *testing.T) {
	cfg := config.DefaultServer()
	cfg.DataDir = ""
	cfg.MinSessionTimeout = time.Second
	cfg.MaxSessionTimeout = 10 * time.Second
	zk := newTestServer(t, WithConfig(cfg))

	tests := []struct {
		name      string
		requested time.Duration
		expected  time.Duration
	}{
		{name: "below minimum", requested: 10 * time.Millisecond, expected: time.Second},
		{name: "within bounds", requested: 3 * time.Second, expected: 3 * time.Second},
		{name: "above maximum", requested: time.Hour, expected: 10 * time.Second},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sess, err := zk.openSession("client", &pbzk.ConnectRequest{TimeoutMs: test.requested.Milliseconds()})
			require.NoError(t, err)
			assert.Equal(t, test.expected, sess.Timeout)

			resumed, err := zk.openSession("client", &pbzk.ConnectRequest{SessionId: sess.ID})
			require.NoError(t, err)
			assert.Same(t, sess, resumed)
		})
	}

	_, err := zk.openSession("client", &pbzk.ConnectRequest{SessionId: "unknown"})
	assert.ErrorIs(t, err, zookeeper.ErrSessionExpired)
}

func TestServer_IdleSessions(t *testing.T) {
	zk := newTestServer(t)
	sess := newTestSession(t, zk)

	assert.Empty(t, zk.idleSessions(time.Now()))
	assert.Equal(t, []string{sess.ID}, zk.idleSessions(time.Now().Add(time.Hour)))
}

func TestServer_RecoversFromLog(t *testing.T) {
	dir := t.TempDir()

	zk, err := NewServer(WithLogger(log.DiscardLogger), WithDataDir(dir))
	require.NoError(t, err)
	sess := newTestSession(t, zk)
	_, err = zk.Create(sess, &pbzk.CreateRequest{Path: "/config", Data: []byte("v1")})
	require.NoError(t, err)
	_, err = zk.SetData(sess, &pbzk.SetDataRequest{Path: "/config", Data: []byte("v2"), Version: zookeeper.AnyVersion})
	require.NoError(t, err)
	_, err = zk.Create(sess, &pbzk.CreateRequest{Path: "/queue"})
	require.NoError(t, err)
	_, err = zk.Create(sess, &pbzk.CreateRequest{Path: "/queue/item", Flags: []pbzk.CreateRequest_Flag{pbzk.CreateRequest_FLAG_SEQUENTIAL}})
	require.NoError(t, err)
	_, err = zk.Create(sess, &pbzk.CreateRequest{Path: "/lock", Flags: []pbzk.CreateRequest_Flag{pbzk.CreateRequest_FLAG_EPHEMERAL}})
	require.NoError(t, err)
	lastZxid := zxid.ZXID(zk.LastZxid())
	require.NoError(t, zk.Close())

	restarted := newTestServer(t, WithDataDir(dir))
	sess = newTestSession(t, restarted)

	data, err := restarted.GetData(sess, &pbzk.GetDataRequest{Path: "/config"})
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data.GetData())
	assert.Equal(t, int64(2), data.GetStat().GetVersion())

	// The ephemeral node belonged to a session that did not survive the restart.
	exists, err := restarted.Exists(sess, &pbzk.ExistsRequest{Path: "/lock"})
	require.NoError(t, err)
	assert.False(t, exists.GetExists())

	// Sequence numbers carry on where they left off.
	resp, err := restarted.Create(sess, &pbzk.CreateRequest{Path: "/queue/item", Flags: []pbzk.CreateRequest_Flag{pbzk.CreateRequest_FLAG_SEQUENTIAL}})
	require.NoError(t, err)
	assert.Equal(t, "/queue/item_0000000001", resp.GetZNodeName())

	// A new epoch has started.
	assert.Greater(t, zxid.ZXID(restarted.LastZxid()).GetEpoch(), lastZxid.GetEpoch())
}

func TestServer_HandleClientRequest(t *testing.T) {
	zk := newTestServer(t)
	sess := newTestSession(t, zk)

	resp, closing := zk.handleClientRequest(sess, &pbzk.ZookeeperRequest{
		Xid:     4,
		Message: &pbzk.ZookeeperRequest_Create{Create: &pbzk.CreateRequest{Path: "/zoo"}},
	})
	assert.False(t, closing)
	assert.Equal(t, int64(4), resp.GetXid())
	assert.Nil(t, resp.GetError())
	assert.Equal(t, "/zoo", resp.GetCreate().GetZNodeName())
	assert.Equal(t, zk.LastZxid(), resp.GetZxid())

	resp, _ = zk.handleClientRequest(sess, &pbzk.ZookeeperRequest{
		Xid:     5,
		Message: &pbzk.ZookeeperRequest_Create{Create: &pbzk.CreateRequest{Path: "/zoo"}},
	})
	assert.Equal(t, pbzk.Error_CODE_NODE_EXISTS, resp.GetError().GetCode())
	assert.Nil(t, resp.GetMessage())

	resp, _ = zk.handleClientRequest(sess, &pbzk.ZookeeperRequest{
		Xid:     6,
		Message: &pbzk.ZookeeperRequest_Connect{Connect: &pbzk.ConnectRequest{}},
	})
	assert.Equal(t, pbzk.Error_CODE_BAD_REQUEST, resp.GetError().GetCode())

	resp, _ = zk.handleClientRequest(sess, &pbzk.ZookeeperRequest{
		Xid:     pbzk.HeartbeatXid,
		Message: &pbzk.ZookeeperRequest_Heartbeat{Heartbeat: &pbzk.HeartbeatRequest{}},
	})
	assert.Equal(t, pbzk.HeartbeatXid, resp.GetXid())
	assert.NotNil(t, resp.GetHeartbeat())

	resp, closing = zk.handleClientRequest(sess, &pbzk.ZookeeperRequest{
		Xid:     7,
		Message: &pbzk.ZookeeperRequest_Close{Close: &pbzk.CloseRequest{}},
	})
	assert.True(t, closing)
	assert.NotNil(t, resp.GetClose())
	assert.True(t, sess.Ended())
}
