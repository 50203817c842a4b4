package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/mikekulinski/zkclient/pkg/client"
	"github.com/mikekulinski/zkclient/pkg/log"
	"github.com/mikekulinski/zkclient/pkg/zktest"
	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func init() {
	color.NoColor = true
}

func connect(t *testing.T, addr string) *client.Client {
	t.Helper()
	c, err := client.Connect(context.Background(), addr, client.WithLogger(log.DiscardLogger))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	srv := zktest.NewServer(t)

	out, err := run(t, "-e", srv.Addr, "create", "/app", "v1")
	require.NoError(t, err)
	assert.Equal(t, "/app\n", out)

	out, err = run(t, "-e", srv.Addr, "create", "-s", "/app/job", "")
	require.NoError(t, err)
	assert.Equal(t, "/app/job_0000000000\n", out)

	out, err = run(t, "-e", srv.Addr, "get", "/app")
	require.NoError(t, err)
	assert.Equal(t, "v1\n", out)

	out, err = run(t, "-e", srv.Addr, "set", "-v", "1", "/app", "v2")
	require.NoError(t, err)
	assert.Contains(t, out, "version = 2")

	_, err = run(t, "-e", srv.Addr, "set", "-v", "1", "/app", "v3")
	assert.ErrorIs(t, err, zookeeper.ErrVersionConflict)

	out, err = run(t, "-e", srv.Addr, "ls", "/app")
	require.NoError(t, err)
	assert.Equal(t, "job_0000000000\n", out)

	out, err = run(t, "-e", srv.Addr, "ls", "-R", "/")
	require.NoError(t, err)
	assert.Equal(t, "/app\n/app/job_0000000000\n", out)

	out, err = run(t, "-e", srv.Addr, "stat", "/app")
	require.NoError(t, err)
	assert.Contains(t, out, "numChildren = 1")

	_, err = run(t, "-e", srv.Addr, "delete", "/app")
	assert.ErrorIs(t, err, zookeeper.ErrHasChildren)
	_, err = run(t, "-e", srv.Addr, "rm", "/app/job_0000000000")
	require.NoError(t, err)
	_, err = run(t, "-e", srv.Addr, "delete", "/app")
	require.NoError(t, err)

	_, err = run(t, "-e", srv.Addr, "stat", "/app")
	assert.ErrorIs(t, err, zookeeper.ErrNodeNotFound)
}

func TestPatchNode(t *testing.T) {
	srv := zktest.NewServer(t)
	c := connect(t, srv.Addr)
	ctx := context.Background()

	_, err := c.Create(ctx, "/doc", []byte(`{"replicas":1,"name":"api"}`), zookeeper.Persistent)
	require.NoError(t, err)

	stat, err := patchNode(ctx, c, "/doc", []byte(`[{"op":"replace","path":"/replicas","value":3}]`), false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stat.Version)

	stat, err = patchNode(ctx, c, "/doc", []byte(`{"name":null,"zone":"b"}`), true)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stat.Version)

	data, _, err := c.GetData(ctx, "/doc", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"replicas":3,"zone":"b"}`, string(data))

	_, err = patchNode(ctx, c, "/doc", []byte(`not json`), false)
	assert.ErrorIs(t, err, zookeeper.ErrBadRequest)
	_, err = patchNode(ctx, c, "/doc", []byte(`[{"op":"remove","path":"/missing"}]`), false)
	assert.ErrorIs(t, err, zookeeper.ErrBadRequest)
	_, err = patchNode(ctx, c, "/nope", []byte(`{}`), true)
	assert.ErrorIs(t, err, zookeeper.ErrNodeNotFound)
}

func TestPatchNode_ConcurrentWriters(t *testing.T) {
	srv := zktest.NewServer(t)
	ctx := context.Background()
	setup := connect(t, srv.Addr)
	_, err := setup.Create(ctx, "/counter", []byte(`{"hits":[]}`), zookeeper.Persistent)
	require.NoError(t, err)

	writers := make([]*client.Client, 4)
	for i := range writers {
		writers[i] = connect(t, srv.Addr)
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range writers {
		g.Go(func() error {
			_, err := patchNode(ctx, w, "/counter", []byte(`[{"op":"add","path":"/hits/-","value":1}]`), false)
			return err
		})
	}
	require.NoError(t, g.Wait())

	data, stat, err := setup.GetData(context.Background(), "/counter", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hits":[1,1,1,1]}`, string(data))
	assert.EqualValues(t, 5, stat.Version)
}

func TestWatchCommand(t *testing.T) {
	srv := zktest.NewServer(t)
	c := connect(t, srv.Addr)
	ctx := context.Background()
	_, err := c.Create(ctx, "/flag", []byte("off"), zookeeper.Persistent)
	require.NoError(t, err)

	var (
		out  string
		werr error
		wg   sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		out, werr = run(t, "-e", srv.Addr, "watch", "--once", "--data", "/flag")
	}()

	// The watch is registered some time after the command starts.
	require.Eventually(t, func() bool {
		_, err := c.SetData(ctx, "/flag", []byte("on"), zookeeper.AnyVersion)
		assert.NoError(t, err)
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			return true
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, werr)
	assert.True(t, strings.HasPrefix(out, "NodeDataChanged"), out)
	assert.Contains(t, out, "/flag")
}

func TestCreateMode(t *testing.T) {
	assert.Equal(t, zookeeper.Persistent, createMode(false, false))
	assert.Equal(t, zookeeper.Ephemeral, createMode(true, false))
	assert.Equal(t, zookeeper.PersistentSequential, createMode(false, true))
	assert.Equal(t, zookeeper.EphemeralSequential, createMode(true, true))
}

func TestFormatEvent(t *testing.T) {
	testCases := []struct {
		event    zookeeper.Event
		expected string
	}{
		{
			event:    zookeeper.Event{Type: zookeeper.EventNodeCreated, Path: "/a"},
			expected: "NodeCreated      /a",
		},
		{
			event:    zookeeper.Event{Type: zookeeper.EventNodeDataChanged, Path: "/a", Data: []byte("x")},
			expected: `NodeDataChanged  /a "x"`,
		},
		{
			event:    zookeeper.Event{Type: zookeeper.EventSession, State: zookeeper.StateExpired, Err: zookeeper.ErrSessionExpired},
			expected: "Session          Expired zk: session expired",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatEvent(tc.event))
		})
	}
}

func TestLastEvent(t *testing.T) {
	assert.True(t, lastEvent(zookeeper.Event{Type: zookeeper.EventWatchBroken}))
	assert.True(t, lastEvent(zookeeper.Event{Type: zookeeper.EventSession, State: zookeeper.StateExpired}))
	assert.False(t, lastEvent(zookeeper.Event{Type: zookeeper.EventSession, State: zookeeper.StateDisconnected}))
	assert.False(t, lastEvent(zookeeper.Event{Type: zookeeper.EventNodeDataChanged}))
}

func TestEventSink(t *testing.T) {
	sink := newEventSink(2)
	for n := 0; n < 5; n++ {
		sink.put(zookeeper.Event{Type: zookeeper.EventNodeDataChanged})
	}
	assert.Len(t, sink.events, 2)
	assert.EqualValues(t, 3, sink.takeDropped())
	assert.EqualValues(t, 0, sink.takeDropped())

	<-sink.events
	sink.put(zookeeper.Event{Type: zookeeper.EventNodeDeleted})
	assert.EqualValues(t, 0, sink.takeDropped())
}
