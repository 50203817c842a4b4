package client

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/mikekulinski/zkclient/pkg/log"
	"github.com/mikekulinski/zkclient/pkg/zktest"
	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/travisjeffery/go-dynaport"
	"golang.org/x/sync/errgroup"
)

const eventTimeout = 3 * time.Second

type integrationTestSuite struct {
	suite.Suite
	server *zktest.Server
}

func TestIntegration(t *testing.T) {
	suite.Run(t, new(integrationTestSuite))
}

// SetupTest starts a fresh server. Clients connected in a test are closed
// before it stops, cleanups run in reverse order.
func (i *integrationTestSuite) SetupTest() {
	i.server = zktest.NewServer(i.T())
}

func (i *integrationTestSuite) connect(opts ...Option) *Client {
	base := []Option{
		WithLogger(log.DiscardLogger),
		WithSessionTimeout(2 * time.Second),
		WithRetry(20*time.Millisecond, 200*time.Millisecond),
	}
	c, err := Connect(context.Background(), i.server.Addr, append(base, opts...)...)
	i.Require().NoError(err)
	i.T().Cleanup(func() { _ = c.Close() })
	return c
}

type events chan zookeeper.Event

func newEvents() events {
	return make(events, 128)
}

func (e events) watcher(event zookeeper.Event) {
	e <- event
}

func (i *integrationTestSuite) next(e events) zookeeper.Event {
	select {
	case event := <-e:
		return event
	case <-time.After(eventTimeout):
		i.FailNow("no event delivered")
		return zookeeper.Event{}
	}
}

func (i *integrationTestSuite) none(e events, wait time.Duration) {
	select {
	case event := <-e:
		i.Failf("unexpected event", "%+v", event)
	case <-time.After(wait):
	}
}

// waitState returns once the session watcher reported state.
func (i *integrationTestSuite) waitState(e events, state zookeeper.State) {
	deadline := time.After(eventTimeout)
	for {
		select {
		case event := <-e:
			if event.Type == zookeeper.EventSession && event.State == state {
				return
			}
		case <-deadline:
			i.FailNowf("state not reached", "waiting for %s", state)
		}
	}
}

func (i *integrationTestSuite) TestConfigScenario() {
	ctx := context.Background()
	c := i.connect()

	payload := []byte(`{"key":"url","value":"https://example.com"}`)
	name, err := c.Create(ctx, "/config", payload, zookeeper.Persistent)
	i.Require().NoError(err)
	i.Equal("/config", name)

	data, stat, err := c.GetData(ctx, "/config", nil)
	i.Require().NoError(err)
	i.JSONEq(string(payload), string(data))
	i.EqualValues(1, stat.Version)

	updated := []byte(`{"key":"url","value":"https://example.org"}`)
	_, err = c.SetData(ctx, "/config", updated, 0)
	i.ErrorIs(err, zookeeper.ErrVersionConflict)

	stat, err = c.SetData(ctx, "/config", updated, 1)
	i.Require().NoError(err)
	i.EqualValues(2, stat.Version)

	i.Require().NoError(c.Delete(ctx, "/config", 2))

	_, _, err = c.GetData(ctx, "/config", nil)
	i.ErrorIs(err, zookeeper.ErrNodeNotFound)
}

func (i *integrationTestSuite) TestVersionedUpdates() {
	ctx := context.Background()
	c := i.connect()

	name, err := c.Create(ctx, "/config", []byte("v1"), zookeeper.Persistent)
	i.Require().NoError(err)
	i.Equal("/config", name)

	data, stat, err := c.GetData(ctx, "/config", nil)
	i.Require().NoError(err)
	i.Equal([]byte("v1"), data)
	i.Equal(zookeeper.InitialVersion, stat.Version)

	stat, err = c.SetData(ctx, "/config", []byte("v2"), 1)
	i.Require().NoError(err)
	i.EqualValues(2, stat.Version)

	_, err = c.SetData(ctx, "/config", []byte("v3"), 1)
	i.ErrorIs(err, zookeeper.ErrVersionConflict)

	data, stat, err = c.GetData(ctx, "/config", nil)
	i.Require().NoError(err)
	i.Equal([]byte("v2"), data)
	i.EqualValues(2, stat.Version)

	stat, err = c.SetData(ctx, "/config", []byte("v4"), zookeeper.AnyVersion)
	i.Require().NoError(err)
	i.EqualValues(3, stat.Version)
}

func (i *integrationTestSuite) TestCreateErrors() {
	ctx := context.Background()
	c := i.connect()
	_, err := c.Create(ctx, "/app", nil, zookeeper.Persistent)
	i.Require().NoError(err)
	_, err = c.Create(ctx, "/app/lock", nil, zookeeper.Ephemeral)
	i.Require().NoError(err)

	testCases := []struct {
		name     string
		path     string
		mode     zookeeper.CreateMode
		expected error
	}{
		{name: "node exists", path: "/app", mode: zookeeper.Persistent, expected: zookeeper.ErrNodeExists},
		{name: "no parent", path: "/missing/child", mode: zookeeper.Persistent, expected: zookeeper.ErrNoParent},
		{name: "child of ephemeral", path: "/app/lock/child", mode: zookeeper.Persistent, expected: zookeeper.ErrNoChildrenForEphemerals},
		{name: "relative path", path: "app", mode: zookeeper.Persistent, expected: zookeeper.ErrInvalidPath},
		{name: "trailing slash", path: "/app/", mode: zookeeper.Persistent, expected: zookeeper.ErrInvalidPath},
	}
	for _, tc := range testCases {
		i.Run(tc.name, func() {
			_, err := c.Create(ctx, tc.path, nil, tc.mode)
			i.ErrorIs(err, tc.expected)
		})
	}
}

func (i *integrationTestSuite) TestSequentialNames() {
	ctx := context.Background()
	c := i.connect()
	_, err := c.Create(ctx, "/queue", nil, zookeeper.Persistent)
	i.Require().NoError(err)

	first, err := c.Create(ctx, "/queue/item", nil, zookeeper.PersistentSequential)
	i.Require().NoError(err)
	second, err := c.Create(ctx, "/queue/item", nil, zookeeper.EphemeralSequential)
	i.Require().NoError(err)
	i.Equal("/queue/item_0000000000", first)
	i.Equal("/queue/item_0000000001", second)

	children, stat, err := c.GetChildren(ctx, "/queue", nil)
	i.Require().NoError(err)
	i.Equal([]string{"item_0000000000", "item_0000000001"}, children)
	i.Equal(2, stat.NumChildren)
}

func (i *integrationTestSuite) TestDelete() {
	ctx := context.Background()
	c := i.connect()
	_, err := c.Create(ctx, "/parent", nil, zookeeper.Persistent)
	i.Require().NoError(err)
	_, err = c.Create(ctx, "/parent/child", nil, zookeeper.Persistent)
	i.Require().NoError(err)

	i.ErrorIs(c.Delete(ctx, "/parent", zookeeper.AnyVersion), zookeeper.ErrHasChildren)
	i.ErrorIs(c.Delete(ctx, "/parent/child", 5), zookeeper.ErrVersionConflict)
	i.NoError(c.Delete(ctx, "/parent/child", zookeeper.InitialVersion))
	i.ErrorIs(c.Delete(ctx, "/parent/child", zookeeper.AnyVersion), zookeeper.ErrNodeNotFound)
	i.NoError(c.Delete(ctx, "/parent", zookeeper.AnyVersion))

	stat, err := c.Exists(ctx, "/parent", nil)
	i.Require().NoError(err)
	i.Nil(stat)
}

func (i *integrationTestSuite) TestRecursiveDelete() {
	ctx := context.Background()
	c := i.connect(WithRecursiveDelete(true))
	for _, path := range []string{"/tree", "/tree/a", "/tree/a/b", "/tree/c"} {
		_, err := c.Create(ctx, path, nil, zookeeper.Persistent)
		i.Require().NoError(err)
	}

	i.NoError(c.Delete(ctx, "/tree", zookeeper.AnyVersion))
	stat, err := c.Exists(ctx, "/tree/a/b", nil)
	i.Require().NoError(err)
	i.Nil(stat)
}

func (i *integrationTestSuite) TestReadMissingNode() {
	ctx := context.Background()
	c := i.connect()

	_, _, err := c.GetData(ctx, "/nope", nil)
	i.ErrorIs(err, zookeeper.ErrNodeNotFound)
	_, err = c.SetData(ctx, "/nope", nil, zookeeper.AnyVersion)
	i.ErrorIs(err, zookeeper.ErrNodeNotFound)
	_, _, err = c.GetChildren(ctx, "/nope", nil)
	i.ErrorIs(err, zookeeper.ErrNodeNotFound)
}

func (i *integrationTestSuite) TestOneShotWatchFiresAtMostOnce() {
	ctx := context.Background()
	c := i.connect()
	_, err := c.Create(ctx, "/config", []byte("v1"), zookeeper.Persistent)
	i.Require().NoError(err)

	e := newEvents()
	_, _, err = c.GetData(ctx, "/config", e.watcher)
	i.Require().NoError(err)

	_, err = c.SetData(ctx, "/config", []byte("v2"), zookeeper.AnyVersion)
	i.Require().NoError(err)
	_, err = c.SetData(ctx, "/config", []byte("v3"), zookeeper.AnyVersion)
	i.Require().NoError(err)

	event := i.next(e)
	i.Equal(zookeeper.EventNodeDataChanged, event.Type)
	i.Equal("/config", event.Path)
	i.none(e, 200*time.Millisecond)
}

func (i *integrationTestSuite) TestExistsWatchSeesCreation() {
	ctx := context.Background()
	c := i.connect()
	other := i.connect()

	e := newEvents()
	stat, err := c.Exists(ctx, "/later", e.watcher)
	i.Require().NoError(err)
	i.Nil(stat)

	_, err = other.Create(ctx, "/later", nil, zookeeper.Persistent)
	i.Require().NoError(err)

	event := i.next(e)
	i.Equal(zookeeper.EventNodeCreated, event.Type)
	i.Equal("/later", event.Path)
}

func (i *integrationTestSuite) TestChildWatch() {
	ctx := context.Background()
	c := i.connect()
	_, err := c.Create(ctx, "/dir", nil, zookeeper.Persistent)
	i.Require().NoError(err)

	e := newEvents()
	_, _, err = c.GetChildren(ctx, "/dir", e.watcher)
	i.Require().NoError(err)
	_, err = c.Create(ctx, "/dir/file", nil, zookeeper.Persistent)
	i.Require().NoError(err)

	event := i.next(e)
	i.Equal(zookeeper.EventNodeChildrenChanged, event.Type)
	i.Equal("/dir", event.Path)
}

func (i *integrationTestSuite) TestRegisterWatchOneShot() {
	ctx := context.Background()
	c := i.connect()
	_, err := c.Create(ctx, "/flag", nil, zookeeper.Persistent)
	i.Require().NoError(err)

	e := newEvents()
	h, err := c.RegisterWatch(ctx, "/flag", zookeeper.WatchOneShot, zookeeper.MaskAll, e.watcher)
	i.Require().NoError(err)
	i.True(h.Active())

	_, err = c.Create(ctx, "/flag/x", nil, zookeeper.Persistent)
	i.Require().NoError(err)
	event := i.next(e)
	i.Equal(zookeeper.EventChildAdded, event.Type)
	i.Equal("/flag/x", event.Path)
	i.False(h.Active())

	// The data watch is still set on the server but the handle is done.
	_, err = c.SetData(ctx, "/flag", []byte("on"), zookeeper.AnyVersion)
	i.Require().NoError(err)
	i.none(e, 200*time.Millisecond)

	_, err = c.RegisterWatch(ctx, "/absent", zookeeper.WatchOneShot, zookeeper.MaskChildren, e.watcher)
	i.ErrorIs(err, zookeeper.ErrNodeNotFound)
}

func (i *integrationTestSuite) TestRegisterWatchOneShotChildMask() {
	ctx := context.Background()
	c := i.connect()
	_, err := c.Create(ctx, "/dir", nil, zookeeper.Persistent)
	i.Require().NoError(err)

	// An addition does not end a watch on removals.
	e := newEvents()
	h, err := c.RegisterWatch(ctx, "/dir", zookeeper.WatchOneShot, zookeeper.MaskChildRemoved, e.watcher)
	i.Require().NoError(err)
	_, err = c.Create(ctx, "/dir/a", nil, zookeeper.Persistent)
	i.Require().NoError(err)
	i.none(e, 200*time.Millisecond)
	i.True(h.Active())

	i.Require().NoError(c.Delete(ctx, "/dir/a", zookeeper.AnyVersion))
	event := i.next(e)
	i.Equal(zookeeper.EventChildRemoved, event.Type)
	i.Equal("/dir/a", event.Path)
	i.False(h.Active())

	// Nor does a removal end a watch on additions.
	_, err = c.Create(ctx, "/dir/b", nil, zookeeper.Persistent)
	i.Require().NoError(err)
	e = newEvents()
	h, err = c.RegisterWatch(ctx, "/dir", zookeeper.WatchOneShot, zookeeper.MaskChildAdded, e.watcher)
	i.Require().NoError(err)
	i.Require().NoError(c.Delete(ctx, "/dir/b", zookeeper.AnyVersion))
	i.none(e, 200*time.Millisecond)
	i.True(h.Active())

	_, err = c.Create(ctx, "/dir/c", nil, zookeeper.Persistent)
	i.Require().NoError(err)
	event = i.next(e)
	i.Equal(zookeeper.EventChildAdded, event.Type)
	i.Equal("/dir/c", event.Path)
	i.False(h.Active())

	// Updates are seen on children that joined after the watch was set.
	e = newEvents()
	h, err = c.RegisterWatch(ctx, "/dir", zookeeper.WatchOneShot, zookeeper.MaskChildUpdated, e.watcher)
	i.Require().NoError(err)
	_, err = c.Create(ctx, "/dir/d", nil, zookeeper.Persistent)
	i.Require().NoError(err)
	i.none(e, 200*time.Millisecond)

	_, err = c.SetData(ctx, "/dir/d", []byte("x"), zookeeper.AnyVersion)
	i.Require().NoError(err)
	event = i.next(e)
	i.Equal(zookeeper.EventChildUpdated, event.Type)
	i.Equal("/dir/d", event.Path)
	i.False(h.Active())
}

func (i *integrationTestSuite) TestPersistentWatchDeliversEveryUpdate() {
	ctx := context.Background()
	c := i.connect()
	_, err := c.Create(ctx, "/config", []byte("v0"), zookeeper.Persistent)
	i.Require().NoError(err)

	e := newEvents()
	h, err := c.RegisterWatch(ctx, "/config", zookeeper.WatchPersistent, zookeeper.MaskDataChanged, e.watcher)
	i.Require().NoError(err)
	defer func() { i.NoError(h.Cancel()) }()

	const updates = 5
	for n := 1; n <= updates; n++ {
		payload := []byte(fmt.Sprintf("v%d", n))
		_, err := c.SetData(ctx, "/config", payload, zookeeper.AnyVersion)
		i.Require().NoError(err)

		event := i.next(e)
		i.Equal(zookeeper.EventNodeDataChanged, event.Type)
		i.Equal(payload, event.Data)
		i.EqualValues(n+1, event.Stat.Version)
	}

	i.Require().NoError(c.Delete(ctx, "/config", zookeeper.AnyVersion))
	i.Equal(zookeeper.EventNodeDeleted, i.next(e).Type)
	_, err = c.Create(ctx, "/config", []byte("again"), zookeeper.Persistent)
	i.Require().NoError(err)
	event := i.next(e)
	i.Equal(zookeeper.EventNodeCreated, event.Type)
	i.Equal([]byte("again"), event.Data)
	i.True(h.Active())
}

func (i *integrationTestSuite) TestPersistentWatchChildren() {
	ctx := context.Background()
	c := i.connect()
	_, err := c.Create(ctx, "/workers", nil, zookeeper.Persistent)
	i.Require().NoError(err)

	e := newEvents()
	h, err := c.RegisterWatch(ctx, "/workers", zookeeper.WatchPersistent, zookeeper.MaskChildren, e.watcher)
	i.Require().NoError(err)
	defer func() { i.NoError(h.Cancel()) }()

	_, err = c.Create(ctx, "/workers/w1", []byte("idle"), zookeeper.Ephemeral)
	i.Require().NoError(err)
	event := i.next(e)
	i.Equal(zookeeper.EventChildAdded, event.Type)
	i.Equal("/workers/w1", event.Path)
	i.Equal([]byte("idle"), event.Data)

	_, err = c.SetData(ctx, "/workers/w1", []byte("busy"), zookeeper.AnyVersion)
	i.Require().NoError(err)
	event = i.next(e)
	i.Equal(zookeeper.EventChildUpdated, event.Type)
	i.Equal([]byte("busy"), event.Data)

	i.Require().NoError(c.Delete(ctx, "/workers/w1", zookeeper.AnyVersion))
	event = i.next(e)
	i.Equal(zookeeper.EventChildRemoved, event.Type)
	i.Equal("/workers/w1", event.Path)
}

func (i *integrationTestSuite) TestPersistentWatchCancel() {
	ctx := context.Background()
	c := i.connect()
	_, err := c.Create(ctx, "/config", nil, zookeeper.Persistent)
	i.Require().NoError(err)

	e := newEvents()
	h, err := c.RegisterWatch(ctx, "/config", zookeeper.WatchPersistent, zookeeper.MaskAll, e.watcher)
	i.Require().NoError(err)
	i.Require().NoError(h.Cancel())
	i.False(h.Active())
	<-h.Done()

	_, err = c.SetData(ctx, "/config", []byte("v2"), zookeeper.AnyVersion)
	i.Require().NoError(err)
	i.none(e, 200*time.Millisecond)
	i.NoError(h.Cancel())
}

func (i *integrationTestSuite) TestReconnectKeepsSession() {
	ctx := context.Background()
	states := newEvents()
	c := i.connect(WithWatcher(states.watcher))
	other := i.connect()
	i.waitState(states, zookeeper.StateConnected)

	_, err := c.Create(ctx, "/member", nil, zookeeper.Ephemeral)
	i.Require().NoError(err)
	_, err = c.Create(ctx, "/config", []byte("v1"), zookeeper.Persistent)
	i.Require().NoError(err)
	e := newEvents()
	_, _, err = c.GetData(ctx, "/config", e.watcher)
	i.Require().NoError(err)
	sessionID := c.SessionID()

	i.server.DisconnectAll()
	i.waitState(states, zookeeper.StateDisconnected)
	i.waitState(states, zookeeper.StateConnected)
	i.Equal(sessionID, c.SessionID())

	// The ephemeral node and the watch outlived the connection.
	stat, err := other.Exists(ctx, "/member", nil)
	i.Require().NoError(err)
	i.Require().NotNil(stat)
	i.Equal(sessionID, stat.EphemeralOwner)

	_, err = other.SetData(ctx, "/config", []byte("v2"), zookeeper.AnyVersion)
	i.Require().NoError(err)
	i.Equal(zookeeper.EventNodeDataChanged, i.next(e).Type)
}

func (i *integrationTestSuite) TestExpiry() {
	ctx := context.Background()
	states := newEvents()
	c := i.connect(WithWatcher(states.watcher))
	other := i.connect()

	_, err := c.Create(ctx, "/lock", nil, zookeeper.Ephemeral)
	i.Require().NoError(err)
	_, err = c.Create(ctx, "/config", nil, zookeeper.Persistent)
	i.Require().NoError(err)

	oneShot := newEvents()
	_, _, err = c.GetData(ctx, "/config", oneShot.watcher)
	i.Require().NoError(err)
	persistent := newEvents()
	h, err := c.RegisterWatch(ctx, "/config", zookeeper.WatchPersistent, zookeeper.MaskAll, persistent.watcher)
	i.Require().NoError(err)

	i.Require().True(i.server.ExpireSession(c.SessionID()))
	i.waitState(states, zookeeper.StateExpired)

	event := i.next(oneShot)
	i.Equal(zookeeper.EventSession, event.Type)
	i.Equal(zookeeper.StateExpired, event.State)
	i.none(oneShot, 100*time.Millisecond)

	event = i.next(persistent)
	i.Equal(zookeeper.StateExpired, event.State)
	i.ErrorIs(event.Err, zookeeper.ErrSessionExpired)
	<-h.Done()

	_, _, err = c.GetData(ctx, "/config", nil)
	i.ErrorIs(err, zookeeper.ErrSessionExpired)
	i.Equal(zookeeper.StateExpired, c.State())

	stat, err := other.Exists(ctx, "/lock", nil)
	i.Require().NoError(err)
	i.Nil(stat)
}

func (i *integrationTestSuite) TestExpiresWhenServerStaysAway() {
	ctx := context.Background()
	states := newEvents()
	c := i.connect(WithWatcher(states.watcher), WithSessionTimeout(300*time.Millisecond))
	i.waitState(states, zookeeper.StateConnected)

	i.server.Stop()
	i.waitState(states, zookeeper.StateDisconnected)
	i.waitState(states, zookeeper.StateExpired)

	_, err := c.Create(ctx, "/x", nil, zookeeper.Persistent)
	i.ErrorIs(err, zookeeper.ErrSessionExpired)
}

func (i *integrationTestSuite) TestCloseStopsCallbacks() {
	ctx := context.Background()
	c, err := Connect(ctx, i.server.Addr, WithLogger(log.DiscardLogger))
	i.Require().NoError(err)
	other := i.connect()

	_, err = c.Create(ctx, "/lock", nil, zookeeper.Ephemeral)
	i.Require().NoError(err)
	_, err = c.Create(ctx, "/config", nil, zookeeper.Persistent)
	i.Require().NoError(err)

	e := newEvents()
	_, _, err = c.GetData(ctx, "/config", e.watcher)
	i.Require().NoError(err)
	h, err := c.RegisterWatch(ctx, "/config", zookeeper.WatchPersistent, zookeeper.MaskAll, e.watcher)
	i.Require().NoError(err)

	i.Require().NoError(c.Close())
	i.Equal(zookeeper.StateClosed, c.State())
	i.False(h.Active())
	i.NoError(c.Close())

	_, err = other.SetData(ctx, "/config", []byte("v2"), zookeeper.AnyVersion)
	i.Require().NoError(err)
	i.none(e, 200*time.Millisecond)

	stat, err := other.Exists(ctx, "/lock", nil)
	i.Require().NoError(err)
	i.Nil(stat)

	_, _, err = c.GetData(ctx, "/config", nil)
	i.ErrorIs(err, zookeeper.ErrClosed)
	_, err = c.RegisterWatch(ctx, "/config", zookeeper.WatchPersistent, zookeeper.MaskAll, e.watcher)
	i.ErrorIs(err, zookeeper.ErrClosed)
}

func (i *integrationTestSuite) TestConcurrentCalls() {
	ctx := context.Background()
	c := i.connect()
	_, err := c.Create(ctx, "/jobs", nil, zookeeper.Persistent)
	i.Require().NoError(err)

	const workers = 16
	g, ctx := errgroup.WithContext(ctx)
	for n := 0; n < workers; n++ {
		g.Go(func() error {
			path := fmt.Sprintf("/jobs/job-%d", n)
			if _, err := c.Create(ctx, path, []byte(path), zookeeper.Persistent); err != nil {
				return err
			}
			data, _, err := c.GetData(ctx, path, nil)
			if err != nil {
				return err
			}
			if string(data) != path {
				return fmt.Errorf("read %q from %s", data, path)
			}
			return nil
		})
	}
	i.Require().NoError(g.Wait())

	children, _, err := c.GetChildren(context.Background(), "/jobs", nil)
	i.Require().NoError(err)
	i.Len(children, workers)
}

func (i *integrationTestSuite) TestSync() {
	c := i.connect()
	path, err := c.Sync(context.Background(), "/")
	i.Require().NoError(err)
	i.Equal("/", path)
}

func TestConnect_Timeout(t *testing.T) {
	// Nothing listens on this port.
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(dynaport.Get(1)[0]))
	start := time.Now()
	c, err := Connect(context.Background(), addr,
		WithConnectTimeout(200*time.Millisecond),
		WithLogger(log.DiscardLogger))
	assert.Nil(t, c)
	assert.ErrorIs(t, err, zookeeper.ErrConnectionTimeout)
	assert.Less(t, time.Since(start), 2*time.Second)
}
