package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	pbzk "github.com/mikekulinski/zkclient/proto"
	"go.uber.org/atomic"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errConnLost = fmt.Errorf("%w: connection lost", zookeeper.ErrTransport)

// call is one request waiting for its response.
type call struct {
	xid  int64
	req  *pbzk.ZookeeperRequest
	resp *pbzk.ZookeeperResponse
	err  error
	done chan struct{}
}

func newCall(req *pbzk.ZookeeperRequest) *call {
	return &call{
		xid:  req.GetXid(),
		req:  req,
		done: make(chan struct{}),
	}
}

// conn is one stream of the session. A session survives many conns.
type conn struct {
	stream pbzk.Zookeeper_MessageClient
	cancel context.CancelFunc

	// sendMu serializes writes, the stream allows one sender at a time.
	sendMu sync.Mutex

	mu      sync.Mutex
	pending map[int64]*call
	err     error

	lastRecv *atomic.Time
	done     chan struct{}
	once     sync.Once
}

func newConn(stream pbzk.Zookeeper_MessageClient, cancel context.CancelFunc) *conn {
	return &conn{
		stream:   stream,
		cancel:   cancel,
		pending:  map[int64]*call{},
		lastRecv: atomic.NewTime(time.Now()),
		done:     make(chan struct{}),
	}
}

// register adds c to the pending calls. It fails if the conn is already dead.
func (cn *conn) register(c *call) error {
	cn.mu.Lock()
	defer cn.mu.Unlock()

	if cn.err != nil {
		return cn.err
	}
	cn.pending[c.xid] = c
	return nil
}

func (cn *conn) unregister(c *call) {
	cn.mu.Lock()
	defer cn.mu.Unlock()
	delete(cn.pending, c.xid)
}

func (cn *conn) send(req *pbzk.ZookeeperRequest) error {
	cn.sendMu.Lock()
	defer cn.sendMu.Unlock()
	return cn.stream.Send(req)
}

// complete hands resp to the call waiting for it, if any.
func (cn *conn) complete(resp *pbzk.ZookeeperResponse) bool {
	cn.mu.Lock()
	c, ok := cn.pending[resp.GetXid()]
	delete(cn.pending, resp.GetXid())
	cn.mu.Unlock()

	if !ok {
		return false
	}
	c.resp = resp
	close(c.done)
	return true
}

// fail kills the conn. Every pending call fails with err. Only the first
// error sticks.
func (cn *conn) fail(err error) {
	cn.once.Do(func() {
		cn.mu.Lock()
		cn.err = err
		pending := cn.pending
		cn.pending = map[int64]*call{}
		cn.mu.Unlock()

		cn.cancel()
		close(cn.done)
		for _, c := range pending {
			c.err = err
			close(c.done)
		}
	})
}

func (cn *conn) failed() error {
	cn.mu.Lock()
	defer cn.mu.Unlock()
	return cn.err
}

// dial opens a stream and performs the connect handshake. A zero session ID
// asks the server for a new session.
func (c *Client) dial(ctx context.Context, sessionID string, timeout time.Duration, lastZxid int64) (*conn, *pbzk.ConnectResponse, error) {
	// The stream outlives ctx, which only bounds the handshake.
	streamCtx, cancel := context.WithCancel(c.ctx)

	type result struct {
		stream pbzk.Zookeeper_MessageClient
		resp   *pbzk.ZookeeperResponse
		err    error
	}
	results := make(chan result, 1)
	go func() {
		stream, err := c.rpc.Message(streamCtx, grpc.WaitForReady(true))
		if err != nil {
			results <- result{err: err}
			return
		}
		err = stream.Send(&pbzk.ZookeeperRequest{
			Xid: c.xid.Inc(),
			Message: &pbzk.ZookeeperRequest_Connect{
				Connect: &pbzk.ConnectRequest{
					SessionId:    sessionID,
					TimeoutMs:    timeout.Milliseconds(),
					LastZxidSeen: lastZxid,
				},
			},
		})
		if err != nil {
			results <- result{err: err}
			return
		}
		resp, err := stream.Recv()
		results <- result{stream: stream, resp: resp, err: err}
	}()

	var res result
	select {
	case res = <-results:
	case <-ctx.Done():
		cancel()
		return nil, nil, fmt.Errorf("%w: %w", zookeeper.ErrConnectionTimeout, ctx.Err())
	}

	if res.err != nil {
		cancel()
		if status.Code(res.err) == codes.DeadlineExceeded {
			return nil, nil, fmt.Errorf("%w: %w", zookeeper.ErrConnectionTimeout, res.err)
		}
		return nil, nil, fmt.Errorf("%w: connect: %w", zookeeper.ErrTransport, res.err)
	}
	if err := res.resp.GetError().Err(); err != nil {
		cancel()
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	connect := res.resp.GetConnect()
	if connect == nil {
		cancel()
		return nil, nil, fmt.Errorf("%w: connect: unexpected response %T", zookeeper.ErrTransport, res.resp.GetMessage())
	}
	return newConn(res.stream, cancel), connect, nil
}

// recvLoop reads the stream until it breaks. Responses complete their calls,
// notifications go to the watcher registry.
func (c *Client) recvLoop(cn *conn) {
	defer c.wg.Done()

	for {
		resp, err := cn.stream.Recv()
		if err != nil {
			c.connectionLost(cn, err)
			return
		}
		cn.lastRecv.Store(time.Now())
		c.observeZxid(resp.GetZxid())

		switch resp.GetXid() {
		case pbzk.NotificationXid:
			if err := resp.GetError().Err(); err != nil {
				if errors.Is(err, zookeeper.ErrSessionExpired) {
					c.expire(err)
					return
				}
				c.logger.Warnf("session %s: server error: %v", c.SessionID(), err)
				continue
			}
			if event := resp.GetWatchEvent(); event != nil {
				c.dispatch(event)
			}
		case pbzk.HeartbeatXid:
		default:
			if !cn.complete(resp) {
				c.logger.Debugf("session %s: response to unknown xid %d", c.SessionID(), resp.GetXid())
			}
		}
	}
}

// pingLoop sends a heartbeat every third of the session timeout and declares
// the conn dead when nothing arrived for two thirds of it.
func (c *Client) pingLoop(cn *conn, timeout time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(timeout / 3)
	defer ticker.Stop()
	for {
		select {
		case <-cn.done:
			return
		case now := <-ticker.C:
			if silence := now.Sub(cn.lastRecv.Load()); silence > 2*timeout/3 {
				c.connectionLost(cn, fmt.Errorf("no message from server for %s", silence))
				return
			}
			err := cn.send(&pbzk.ZookeeperRequest{
				Xid: pbzk.HeartbeatXid,
				Message: &pbzk.ZookeeperRequest_Heartbeat{
					Heartbeat: &pbzk.HeartbeatRequest{SentTsMs: now.UnixMilli()},
				},
			})
			if err != nil {
				c.connectionLost(cn, err)
				return
			}
		}
	}
}
