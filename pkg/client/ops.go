package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	pbzk "github.com/mikekulinski/zkclient/proto"
)

// watchArm is a one-shot watcher that goes with a read. It is in the
// registry before the read is sent, so a notification that reaches the
// client ahead of the response still finds it.
type watchArm struct {
	kind    watchKind
	path    string
	watcher zookeeper.Watcher
}

func armWatch(kind watchKind, path string, watcher zookeeper.Watcher) *watchArm {
	if watcher == nil {
		return nil
	}
	return &watchArm{kind: kind, path: path, watcher: watcher}
}

// roundTrip sends req on cn and waits for its response. sent reports whether
// the request made it onto the stream. The watcher of arm stays registered
// only if the request succeeds.
func (c *Client) roundTrip(ctx context.Context, cn *conn, req *pbzk.ZookeeperRequest, arm *watchArm) (resp *pbzk.ZookeeperResponse, sent bool, err error) {
	if arm != nil {
		entry := c.watchers.add(arm.kind, arm.path, arm.watcher)
		defer func() {
			if err != nil || resp.GetError().GetCode() != pbzk.Error_CODE_OK {
				c.watchers.remove(arm.kind, arm.path, entry)
			}
		}()
	}

	cl := newCall(req)
	if err := cn.register(cl); err != nil {
		return nil, false, err
	}
	if err := cn.send(req); err != nil {
		cn.unregister(cl)
		c.connectionLost(cn, err)
		return nil, false, errConnLost
	}
	select {
	case <-cl.done:
		if cl.err != nil {
			return nil, true, cl.err
		}
		return cl.resp, true, nil
	case <-ctx.Done():
		cn.unregister(cl)
		return nil, true, ctx.Err()
	}
}

// do runs one request against the session. Requests cut off by a lost
// connection are sent again once the session is back if they were never
// sent, or if retryable says it is safe to repeat them. Otherwise the
// outcome is unknown and do fails with ErrTransport.
func (c *Client) do(ctx context.Context, op string, retryable bool, build func() *pbzk.ZookeeperRequest, arm *watchArm) (resp *pbzk.ZookeeperResponse, err error) {
	start := time.Now()
	defer func() { c.metrics.recordRequest(ctx, op, start, err) }()

	for {
		cn, err := c.waitConnected(ctx)
		if err != nil {
			return nil, err
		}
		req := build()
		req.Xid = c.xid.Inc()
		resp, sent, err := c.roundTrip(ctx, cn, req, arm)
		switch {
		case err == nil:
			return resp, resp.GetError().Err()
		case errors.Is(err, errConnLost) && (!sent || retryable):
			c.logger.Debugf("session %s: retrying %s after connection loss", c.SessionID(), op)
			continue
		default:
			return nil, err
		}
	}
}

func (c *Client) Create(ctx context.Context, path string, data []byte, mode zookeeper.CreateMode) (string, error) {
	if err := zookeeper.ValidatePath(path); err != nil {
		return "", err
	}
	var flags []pbzk.CreateRequest_Flag
	if mode.IsEphemeral() {
		flags = append(flags, pbzk.CreateRequest_FLAG_EPHEMERAL)
	}
	if mode.IsSequential() {
		flags = append(flags, pbzk.CreateRequest_FLAG_SEQUENTIAL)
	}
	resp, err := c.do(ctx, "create", false, func() *pbzk.ZookeeperRequest {
		return &pbzk.ZookeeperRequest{
			Message: &pbzk.ZookeeperRequest_Create{
				Create: &pbzk.CreateRequest{Path: path, Data: data, Flags: flags},
			},
		}
	}, nil)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	return resp.GetCreate().GetZNodeName(), nil
}

// Delete removes the node at path if its version matches. Unless the client
// was built WithRecursiveDelete, a node with children is not deleted.
func (c *Client) Delete(ctx context.Context, path string, version int64) error {
	if err := zookeeper.ValidatePath(path); err != nil {
		return err
	}
	_, err := c.do(ctx, "delete", false, func() *pbzk.ZookeeperRequest {
		return &pbzk.ZookeeperRequest{
			Message: &pbzk.ZookeeperRequest_Delete{
				Delete: &pbzk.DeleteRequest{Path: path, Version: version, Recursive: c.opts.recursiveDelete},
			},
		}
	}, nil)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

func (c *Client) Exists(ctx context.Context, path string, watcher zookeeper.Watcher) (*zookeeper.Stat, error) {
	if err := zookeeper.ValidatePath(path); err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, "exists", true, func() *pbzk.ZookeeperRequest {
		return &pbzk.ZookeeperRequest{
			Message: &pbzk.ZookeeperRequest_Exists{
				Exists: &pbzk.ExistsRequest{Path: path, Watch: watcher != nil},
			},
		}
	}, armWatch(watchExist, path, watcher))
	if err != nil {
		return nil, fmt.Errorf("exists %s: %w", path, err)
	}
	if !resp.GetExists().GetExists() {
		return nil, nil
	}
	return statFromProto(resp.GetExists().GetStat()), nil
}

func (c *Client) GetData(ctx context.Context, path string, watcher zookeeper.Watcher) ([]byte, *zookeeper.Stat, error) {
	if err := zookeeper.ValidatePath(path); err != nil {
		return nil, nil, err
	}
	resp, err := c.do(ctx, "get_data", true, func() *pbzk.ZookeeperRequest {
		return &pbzk.ZookeeperRequest{
			Message: &pbzk.ZookeeperRequest_GetData{
				GetData: &pbzk.GetDataRequest{Path: path, Watch: watcher != nil},
			},
		}
	}, armWatch(watchData, path, watcher))
	if err != nil {
		return nil, nil, fmt.Errorf("get data %s: %w", path, err)
	}
	return resp.GetGetData().GetData(), statFromProto(resp.GetGetData().GetStat()), nil
}

func (c *Client) SetData(ctx context.Context, path string, data []byte, version int64) (*zookeeper.Stat, error) {
	if err := zookeeper.ValidatePath(path); err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, "set_data", false, func() *pbzk.ZookeeperRequest {
		return &pbzk.ZookeeperRequest{
			Message: &pbzk.ZookeeperRequest_SetData{
				SetData: &pbzk.SetDataRequest{Path: path, Data: data, Version: version},
			},
		}
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("set data %s: %w", path, err)
	}
	return statFromProto(resp.GetSetData().GetStat()), nil
}

func (c *Client) GetChildren(ctx context.Context, path string, watcher zookeeper.Watcher) ([]string, *zookeeper.Stat, error) {
	if err := zookeeper.ValidatePath(path); err != nil {
		return nil, nil, err
	}
	resp, err := c.do(ctx, "get_children", true, func() *pbzk.ZookeeperRequest {
		return &pbzk.ZookeeperRequest{
			Message: &pbzk.ZookeeperRequest_GetChildren{
				GetChildren: &pbzk.GetChildrenRequest{Path: path, Watch: watcher != nil},
			},
		}
	}, armWatch(watchChild, path, watcher))
	if err != nil {
		return nil, nil, fmt.Errorf("get children %s: %w", path, err)
	}
	return resp.GetGetChildren().GetChildren(), statFromProto(resp.GetGetChildren().GetStat()), nil
}

// Sync returns once every change committed before the call is visible to
// this session.
func (c *Client) Sync(ctx context.Context, path string) (string, error) {
	if err := zookeeper.ValidatePath(path); err != nil {
		return "", err
	}
	resp, err := c.do(ctx, "sync", true, func() *pbzk.ZookeeperRequest {
		return &pbzk.ZookeeperRequest{
			Message: &pbzk.ZookeeperRequest_Sync{Sync: &pbzk.SyncRequest{Path: path}},
		}
	}, nil)
	if err != nil {
		return "", fmt.Errorf("sync %s: %w", path, err)
	}
	return resp.GetSync().GetPath(), nil
}

func statFromProto(s *pbzk.Stat) *zookeeper.Stat {
	if s == nil {
		return nil
	}
	return &zookeeper.Stat{
		Czxid:          s.Czxid,
		Mzxid:          s.Mzxid,
		Ctime:          time.UnixMilli(s.CtimeMs),
		Mtime:          time.UnixMilli(s.MtimeMs),
		Version:        s.Version,
		Cversion:       s.Cversion,
		NumChildren:    int(s.NumChildren),
		EphemeralOwner: s.EphemeralOwner,
	}
}
