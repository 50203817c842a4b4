package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/Workiva/go-datastructures/queue"
	"github.com/flowchartsman/retry"
	"github.com/mikekulinski/zkclient/pkg/log"
	"github.com/mikekulinski/zkclient/pkg/utils"
	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	pbzk "github.com/mikekulinski/zkclient/proto"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// closeTimeout bounds the close request sent to the server by Close.
const closeTimeout = time.Second

// Client is a session with a coordination server. It is safe for concurrent
// use. Calls are pipelined over one stream; watch events and session state
// changes are delivered in order on a single goroutine.
type Client struct {
	clientID string
	opts     *options
	logger   log.Logger
	metrics  *metrics

	rpc    pbzk.ZookeeperClient
	closer io.Closer

	// ctx is cancelled by Close. Every stream and retry loop derives from it.
	ctx    context.Context
	cancel context.CancelFunc
	xid    *atomic.Int64

	// mu protects every field below.
	mu sync.Mutex
	// stateCh is closed and replaced on every state change.
	stateCh   chan struct{}
	state     zookeeper.State
	conn      *conn
	sessionID string
	timeout   time.Duration
	lastZxid  int64
	watches   map[*persistentWatch]struct{}

	watchers *watcherRegistry
	events   *queue.Queue
	closing  *atomic.Bool
	wg       sync.WaitGroup
	once     sync.Once
	closeErr error
}

var _ zookeeper.Zookeeper = (*Client)(nil)

// Connect dials endpoint and establishes a new session. It fails with
// ErrConnectionTimeout if no session could be established before the connect
// timeout or the deadline of ctx.
func Connect(ctx context.Context, endpoint string, opts ...Option) (*Client, error) {
	clientID := utils.NewClientID()
	cc, err := grpc.NewClient(endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStreamInterceptor(withClientID(clientID)),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating gRPC client: %w", err)
	}
	c, err := newClient(ctx, clientID, pbzk.NewZookeeperClient(cc), cc, opts...)
	if err != nil {
		_ = cc.Close()
		return nil, err
	}
	return c, nil
}

func newClient(ctx context.Context, clientID string, rpc pbzk.ZookeeperClient, closer io.Closer, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	m, err := newMetrics(o.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("error creating client metrics: %w", err)
	}

	c := &Client{
		clientID: clientID,
		opts:     o,
		logger:   o.logger,
		metrics:  m,
		rpc:      rpc,
		closer:   closer,
		xid:      atomic.NewInt64(0),
		stateCh:  make(chan struct{}),
		state:    zookeeper.StateConnecting,
		timeout:  o.sessionTimeout,
		watches:  map[*persistentWatch]struct{}{},
		watchers: newWatcherRegistry(),
		events:   queue.New(64),
		closing:  atomic.NewBool(false),
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())

	if o.connectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.connectTimeout)
		defer cancel()
	}
	cn, resp, err := c.dial(ctx, "", o.sessionTimeout, 0)
	if err != nil {
		c.cancel()
		return nil, err
	}

	c.wg.Add(1)
	go c.deliverLoop()
	c.activate(cn, resp)
	c.logger.Infof("session %s established, timeout %s", c.SessionID(), c.SessionTimeout())
	return c, nil
}

func (c *Client) State() zookeeper.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// SessionTimeout returns the timeout negotiated with the server.
func (c *Client) SessionTimeout() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeout
}

// LastZxid returns the newest transaction id seen from the server.
func (c *Client) LastZxid() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastZxid
}

func (c *Client) observeZxid(zxid int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if zxid > c.lastZxid {
		c.lastZxid = zxid
	}
}

// setStateLocked must be called with mu held.
func (c *Client) setStateLocked(state zookeeper.State) {
	if c.state == state {
		return
	}
	c.logger.Debugf("session %s: %s -> %s", c.sessionID, c.state, state)
	c.state = state
	close(c.stateCh)
	c.stateCh = make(chan struct{})
	if c.opts.watcher != nil {
		c.enqueue(delivery{
			watcher: c.opts.watcher,
			event:   zookeeper.Event{Type: zookeeper.EventSession, State: state},
		})
	}
}

// activate makes cn the conn of the session. It returns false if the session
// ended while cn was being dialed.
func (c *Client) activate(cn *conn, resp *pbzk.ConnectResponse) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == zookeeper.StateClosed || c.state == zookeeper.StateExpired {
		return false
	}
	c.conn = cn
	c.sessionID = resp.GetSessionId()
	c.timeout = time.Duration(resp.GetTimeoutMs()) * time.Millisecond
	c.setStateLocked(zookeeper.StateConnected)

	c.wg.Add(2)
	go c.recvLoop(cn)
	go c.pingLoop(cn, c.timeout)
	return true
}

// waitConnected blocks until the session is connected and returns its conn.
func (c *Client) waitConnected(ctx context.Context) (*conn, error) {
	for {
		c.mu.Lock()
		state, cn, changed := c.state, c.conn, c.stateCh
		c.mu.Unlock()

		switch state {
		case zookeeper.StateConnected:
			return cn, nil
		case zookeeper.StateExpired:
			return nil, zookeeper.ErrSessionExpired
		case zookeeper.StateClosed:
			return nil, zookeeper.ErrClosed
		}
		select {
		case <-changed:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: waiting for connection: %w", zookeeper.ErrTransport, ctx.Err())
		}
	}
}

// connectionLost is called when cn broke. If cn is the current conn the
// session goes to Disconnected and a reconnect starts.
func (c *Client) connectionLost(cn *conn, cause error) {
	cn.fail(errConnLost)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != cn || c.state != zookeeper.StateConnected || c.closing.Load() {
		return
	}
	c.logger.Warnf("session %s: connection lost: %v", c.sessionID, cause)
	c.conn = nil
	c.setStateLocked(zookeeper.StateDisconnected)
	c.wg.Add(1)
	go c.reconnect(c.sessionID, c.timeout)
}

// reconnect re-attaches the session with capped exponential backoff. The
// session is given up once the session timeout has elapsed without a
// successful attempt, or as soon as the server reports it expired.
func (c *Client) reconnect(sessionID string, timeout time.Duration) {
	defer c.wg.Done()

	ctx, cancel := context.WithTimeout(c.ctx, timeout)
	defer cancel()

	var expired error
	retrier := retry.NewRetrier(math.MaxInt32, c.opts.retryInitial, c.opts.retryMax)
	err := retrier.RunContext(ctx, func(ctx context.Context) error {
		c.metrics.recordReconnect(ctx)
		attemptCtx, cancel := context.WithTimeout(ctx, timeout/3)
		defer cancel()

		cn, resp, err := c.dial(attemptCtx, sessionID, timeout, c.LastZxid())
		if err != nil {
			if errors.Is(err, zookeeper.ErrSessionExpired) {
				expired = err
				return retry.Stop(err)
			}
			c.logger.Debugf("session %s: reconnect attempt failed: %v", sessionID, err)
			return err
		}
		if !c.activate(cn, resp) {
			cn.fail(zookeeper.ErrClosed)
			return retry.Stop(zookeeper.ErrClosed)
		}
		return nil
	})
	if err == nil {
		c.logger.Infof("session %s reconnected", sessionID)
		return
	}
	if c.closing.Load() || c.ctx.Err() != nil {
		return
	}
	if expired == nil {
		expired = fmt.Errorf("%w: not reconnected within %s", zookeeper.ErrSessionExpired, timeout)
	}
	c.expire(expired)
}

// expire ends the session for good. Pending calls fail with
// ErrSessionExpired and every outstanding watcher gets one session event.
func (c *Client) expire(cause error) {
	c.mu.Lock()
	if c.state == zookeeper.StateExpired || c.state == zookeeper.StateClosed {
		c.mu.Unlock()
		return
	}
	cn := c.conn
	c.conn = nil
	c.setStateLocked(zookeeper.StateExpired)
	c.mu.Unlock()

	c.logger.Warnf("session %s expired: %v", c.SessionID(), cause)
	if cn != nil {
		cn.fail(zookeeper.ErrSessionExpired)
	}
	event := zookeeper.Event{Type: zookeeper.EventSession, State: zookeeper.StateExpired, Err: zookeeper.ErrSessionExpired}
	for _, w := range c.watchers.drain() {
		c.enqueue(delivery{watcher: w, event: event})
	}
}

type delivery struct {
	watcher zookeeper.Watcher
	event   zookeeper.Event
}

func (c *Client) enqueue(deliveries ...delivery) {
	if c.closing.Load() || len(deliveries) == 0 {
		return
	}
	items := make([]interface{}, 0, len(deliveries))
	for _, d := range deliveries {
		items = append(items, d)
	}
	// Put only fails once the queue is disposed, which means we are closing.
	_ = c.events.Put(items...)
}

// dispatch hands a server notification to the watchers it fires.
func (c *Client) dispatch(event *pbzk.WatchEvent) {
	typ, ok := eventTypes[event.GetType()]
	if !ok {
		c.logger.Warnf("session %s: ignoring watch event of type %s", c.SessionID(), event.GetType())
		return
	}
	ev := zookeeper.Event{Type: typ, State: zookeeper.StateConnected, Path: event.GetPath()}
	watchers := c.watchers.trigger(event.GetPath(), typ)
	deliveries := make([]delivery, 0, len(watchers))
	for _, w := range watchers {
		deliveries = append(deliveries, delivery{watcher: w, event: ev})
	}
	c.enqueue(deliveries...)
}

var eventTypes = map[pbzk.WatchEvent_EventType]zookeeper.EventType{
	pbzk.WatchEvent_EVENT_TYPE_ZNODE_CREATED:          zookeeper.EventNodeCreated,
	pbzk.WatchEvent_EVENT_TYPE_ZNODE_DELETED:          zookeeper.EventNodeDeleted,
	pbzk.WatchEvent_EVENT_TYPE_ZNODE_DATA_CHANGED:     zookeeper.EventNodeDataChanged,
	pbzk.WatchEvent_EVENT_TYPE_ZNODE_CHILDREN_CHANGED: zookeeper.EventNodeChildrenChanged,
}

// deliverLoop runs watchers one at a time in the order their events were queued.
func (c *Client) deliverLoop() {
	defer c.wg.Done()

	for {
		items, err := c.events.Get(1)
		if err != nil {
			// The queue was disposed by Close.
			return
		}
		for _, item := range items {
			if c.closing.Load() {
				return
			}
			d := item.(delivery)
			d.watcher(d.event)
			c.metrics.recordEvent(c.ctx, d.event.Type)
		}
	}
}

// Close ends the session. The server removes the session's ephemeral nodes
// and watches. Once Close returns no watcher runs anymore. Close must not be
// called from a watcher, it waits for the delivery goroutine.
func (c *Client) Close() error {
	c.once.Do(func() {
		c.closing.Store(true)

		c.mu.Lock()
		watches := make([]*persistentWatch, 0, len(c.watches))
		for w := range c.watches {
			watches = append(watches, w)
		}
		var current *conn
		if c.state == zookeeper.StateConnected {
			current = c.conn
		}
		c.mu.Unlock()

		var errs error
		for _, w := range watches {
			errs = multierr.Append(errs, w.Cancel())
		}
		if current != nil {
			ctx, cancel := context.WithTimeout(c.ctx, closeTimeout)
			_, _, err := c.roundTrip(ctx, current, &pbzk.ZookeeperRequest{
				Xid:     c.xid.Inc(),
				Message: &pbzk.ZookeeperRequest_Close{Close: &pbzk.CloseRequest{}},
			}, nil)
			cancel()
			if err != nil && !errors.Is(err, zookeeper.ErrSessionExpired) {
				errs = multierr.Append(errs, fmt.Errorf("error closing session: %w", err))
			}
		}

		c.mu.Lock()
		cn := c.conn
		c.conn = nil
		c.setStateLocked(zookeeper.StateClosed)
		c.mu.Unlock()

		c.cancel()
		if cn != nil {
			cn.fail(zookeeper.ErrClosed)
		}
		c.events.Dispose()
		c.wg.Wait()
		if c.closer != nil {
			errs = multierr.Append(errs, c.closer.Close())
		}
		c.closeErr = errs
		c.logger.Infof("session %s closed", c.SessionID())
	})
	return c.closeErr
}
