package session

import (
	"sync"
	"time"

	pbzk "github.com/mikekulinski/zkclient/proto"
	"go.uber.org/atomic"
)

// Session is the server side view of a client session. It outlives the stream
// it was created on: a client that loses its connection can attach a new
// stream with the same session ID until the session expires.
type Session struct {
	ID string
	// ClientID is the client that opened the session.
	ClientID string
	Timeout  time.Duration

	lastSeen *atomic.Time

	// mu protects every field below.
	mu sync.Mutex
	// pending holds watch notifications that have not been written to a stream yet.
	pending []*pbzk.WatchEvent
	conn    *Conn
	ended   bool
	expired bool
}

func NewSession(id, clientID string, timeout time.Duration) *Session {
	return &Session{
		ID:       id,
		ClientID: clientID,
		Timeout:  timeout,
		lastSeen: atomic.NewTime(time.Now()),
	}
}

// Conn is one stream attached to a session. Done is closed when the stream
// has to stop serving the session, either because another stream took over or
// because the session ended.
type Conn struct {
	// Messages is a channel of events that the server needs to process.
	Messages chan *Event
	// notify is poked whenever watch notifications are waiting.
	notify chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newConn() *Conn {
	return &Conn{
		// Messages is intentionally not buffered so the reader waits for the handler.
		Messages: make(chan *Event),
		notify:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Notify fires when the session has watch notifications to flush.
func (c *Conn) Notify() <-chan struct{} {
	return c.notify
}

func (c *Conn) Done() <-chan struct{} {
	return c.done
}

func (c *Conn) close() {
	c.once.Do(func() { close(c.done) })
}

func (c *Conn) poke() {
	select {
	case c.notify <- struct{}{}:
	default:
	}
}

// An Event is a message that the server needs to process. This can be of
// several different types. We only expect one of these fields to be non-nil.
type Event struct {
	ClientRequest *pbzk.ZookeeperRequest
	// EOF is used to tell the server that we have lost connection with the client.
	// We use this instead of closing the channel since the reader may still be blocked on a send.
	EOF bool
	Err error
}

// Attach binds a new stream to the session and returns it. A previously
// attached stream is told to stop. Attach returns false if the session has
// already ended.
func (s *Session) Attach() (*Conn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return nil, false
	}
	if s.conn != nil {
		s.conn.close()
	}
	s.conn = newConn()
	s.Touch()
	if len(s.pending) > 0 {
		s.conn.poke()
	}
	return s.conn, true
}

// Detach unbinds c if it is still the session's stream.
func (s *Session) Detach(c *Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == c {
		s.conn = nil
	}
	c.close()
}

// Disconnect drops the attached stream without ending the session. The
// client is expected to come back with the session ID.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		s.conn.close()
		s.conn = nil
	}
}

// End marks the session as finished and stops its stream.
func (s *Session) End(expired bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return
	}
	s.ended = true
	s.expired = expired
	s.pending = nil
	if s.conn != nil {
		s.conn.close()
		s.conn = nil
	}
}

func (s *Session) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}

func (s *Session) Expired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expired
}

// Touch records activity from the client.
func (s *Session) Touch() {
	s.lastSeen.Store(time.Now())
}

func (s *Session) LastSeen() time.Time {
	return s.lastSeen.Load()
}

// ShouldExpire reports whether the client has been silent for longer than the session timeout.
func (s *Session) ShouldExpire(now time.Time) bool {
	return now.Sub(s.lastSeen.Load()) > s.Timeout
}

// Push queues a watch notification for the session.
func (s *Session) Push(event *pbzk.WatchEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return
	}
	s.pending = append(s.pending, event)
	if s.conn != nil {
		s.conn.poke()
	}
}

// Drain hands over the queued notifications in the order they were pushed.
func (s *Session) Drain() []*pbzk.WatchEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.pending
	s.pending = nil
	return events
}

// Requeue puts events that could not be written back in front of the queue.
func (s *Session) Requeue(events []*pbzk.WatchEvent) {
	if len(events) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return
	}
	s.pending = append(events, s.pending...)
}
