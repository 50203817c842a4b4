package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mikekulinski/zkclient/pkg/config"
	"github.com/mikekulinski/zkclient/pkg/log"
	"github.com/mikekulinski/zkclient/pkg/persistence"
	"github.com/mikekulinski/zkclient/pkg/session"
	"github.com/mikekulinski/zkclient/pkg/znode"
	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	"github.com/mikekulinski/zkclient/pkg/zxid"
	pbzk "github.com/mikekulinski/zkclient/proto"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

var errInternal = errors.New("zk: internal server error")

type Server struct {
	pbzk.UnimplementedZookeeperServer

	cfg    config.Server
	logger log.Logger

	db      *znode.DB
	txnLog  *persistence.LogManager
	watches *WatchManager
	// writeMu serializes writes from prepare to watch delivery. Reads that set
	// a watch hold it for reading so no write slips in between the read and
	// the watch registration.
	writeMu  sync.RWMutex
	lastZxid *atomic.Int64

	mu sync.Mutex
	// Sessions is a map of session ID to session for every live session,
	// connected or not.
	sessions map[string]*session.Session

	grpcServer *grpc.Server
}

// NewServer builds a server. With an empty data directory everything is kept
// in memory, otherwise the transaction log in it is replayed first.
func NewServer(opts ...Option) (*Server, error) {
	cfg := config.DefaultServer()
	cfg.DataDir = ""
	s := &Server{
		cfg:      cfg,
		logger:   log.DefaultLogger,
		db:       znode.NewDB(),
		watches:  NewWatchManager(),
		lastZxid: atomic.NewInt64(0),
		sessions: map[string]*session.Session{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	if s.cfg.DataDir != "" {
		if err := os.MkdirAll(s.cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating data dir: %w", err)
		}
		txnLog, err := persistence.NewLogManager(s.cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("error opening transaction log: %w", err)
		}
		s.txnLog = txnLog
	}
	if err := s.recover(); err != nil {
		return nil, multierr.Append(err, s.closeLog())
	}

	s.grpcServer = grpc.NewServer(grpc.StreamInterceptor(s.logStream))
	pbzk.RegisterZookeeperServer(s.grpcServer, s)
	return s, nil
}

// recover rebuilds the tree from the transaction log and starts a new epoch.
// Sessions do not survive a restart, so their ephemeral nodes are removed.
func (s *Server) recover() error {
	last := zxid.ZXID(0)
	if s.txnLog != nil {
		count := 0
		err := s.txnLog.Replay(func(txn *pbzk.Transaction) error {
			if _, err := s.db.Apply(txn); err != nil {
				return fmt.Errorf("error replaying transaction %s: %w", zxid.ZXID(txn.GetZxid()), err)
			}
			last = zxid.ZXID(txn.GetZxid())
			count++
			return nil
		})
		if err != nil {
			return err
		}
		s.logger.Infof("replayed %d transactions up to %s", count, last)
	}
	s.lastZxid.Store(int64(last.NextEpoch()))

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	for _, path := range s.db.Ephemerals("") {
		if _, err := s.commitLocked(deleteTxn("", path)); err != nil {
			return fmt.Errorf("error removing orphaned ephemeral node %s: %w", path, err)
		}
	}
	return nil
}

// Serve accepts client streams on lis until ctx is cancelled. It also runs
// the session expiry loop.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.grpcServer.Serve(lis)
	})
	g.Go(func() error {
		s.expireSessions(ctx)
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.grpcServer.Stop()
		return nil
	})
	return g.Wait()
}

// Close stops serving and releases the transaction log.
func (s *Server) Close() error {
	s.grpcServer.Stop()
	return s.closeLog()
}

func (s *Server) closeLog() error {
	if s.txnLog == nil {
		return nil
	}
	return s.txnLog.Close()
}

func (s *Server) logStream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()
	err := handler(srv, ss)
	if err != nil {
		s.logger.Debugf("stream %s closed after %s: %v", info.FullMethod, time.Since(start), err)
	}
	return err
}

// LastZxid is the zxid of the last committed transaction.
func (s *Server) LastZxid() int64 {
	return s.lastZxid.Load()
}

// commit runs txn through the write pipeline.
func (s *Server) commit(txn *pbzk.Transaction) ([]znode.Change, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.commitLocked(txn)
}

// commitLocked validates txn, logs it, applies it, and fires the watches it
// triggers. The caller must hold writeMu.
func (s *Server) commitLocked(txn *pbzk.Transaction) ([]znode.Change, error) {
	if err := s.db.Prepare(txn); err != nil {
		return nil, err
	}
	next := zxid.ZXID(s.lastZxid.Load()).Next()
	txn.Zxid = int64(next)
	txn.TimeMs = time.Now().UnixMilli()
	if s.txnLog != nil {
		if err := s.txnLog.Append(txn); err != nil {
			s.logger.Errorf("failed to log transaction %s: %v", next, err)
			return nil, fmt.Errorf("%w: %v", errInternal, err)
		}
	}
	changes, err := s.db.Apply(txn)
	if err != nil {
		// Prepare accepted it, so the tree and the log now disagree.
		s.logger.Errorf("failed to apply logged transaction %s: %v", next, err)
		return nil, fmt.Errorf("%w: %v", errInternal, err)
	}
	s.lastZxid.Store(int64(next))
	s.triggerWatches(changes, int64(next))
	return changes, nil
}

func (s *Server) triggerWatches(changes []znode.Change, txnZxid int64) {
	var notifications []Notification
	for _, change := range changes {
		var typ pbzk.WatchEvent_EventType
		switch change.Type {
		case znode.ChangeCreated:
			typ = pbzk.WatchEvent_EVENT_TYPE_ZNODE_CREATED
		case znode.ChangeDeleted:
			typ = pbzk.WatchEvent_EVENT_TYPE_ZNODE_DELETED
		case znode.ChangeDataChanged:
			typ = pbzk.WatchEvent_EVENT_TYPE_ZNODE_DATA_CHANGED
		}
		notifications = append(notifications, s.watches.Trigger(change.Path, typ, txnZxid)...)
	}
	if len(notifications) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range notifications {
		if sess, ok := s.sessions[n.SessionID]; ok {
			sess.Push(n.Event)
		}
	}
}

func deleteTxn(sessionID, path string) *pbzk.Transaction {
	return &pbzk.Transaction{
		SessionId: sessionID,
		Txn: &pbzk.Transaction_Delete{
			Delete: &pbzk.DeleteTxn{
				Path:            path,
				ExpectedVersion: zookeeper.AnyVersion,
			},
		},
	}
}

// negotiateTimeout clamps the timeout a client asked for to the configured bounds.
func (s *Server) negotiateTimeout(requested time.Duration) time.Duration {
	if requested < s.cfg.MinSessionTimeout {
		return s.cfg.MinSessionTimeout
	}
	if requested > s.cfg.MaxSessionTimeout {
		return s.cfg.MaxSessionTimeout
	}
	return requested
}

// openSession creates a session, or looks up the one the client wants to resume.
func (s *Server) openSession(clientID string, req *pbzk.ConnectRequest) (*session.Session, error) {
	if id := req.GetSessionId(); id != "" {
		s.mu.Lock()
		sess, ok := s.sessions[id]
		s.mu.Unlock()
		if !ok {
			return nil, fmt.Errorf("session %s: %w", id, zookeeper.ErrSessionExpired)
		}
		// The sweeper may not have caught up yet.
		if sess.ShouldExpire(time.Now()) {
			s.ExpireSession(id)
			return nil, fmt.Errorf("session %s: %w", id, zookeeper.ErrSessionExpired)
		}
		s.logger.Infof("client %s resumed session %s", clientID, id)
		return sess, nil
	}

	timeout := s.negotiateTimeout(time.Duration(req.GetTimeoutMs()) * time.Millisecond)
	sess := session.NewSession(uuid.New().String(), clientID, timeout)
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	s.logger.Infof("client %s opened session %s with timeout %s", clientID, sess.ID, timeout)
	return sess, nil
}

// CloseSession ends a session at the client's request.
func (s *Server) CloseSession(id string) bool {
	return s.endSession(id, false)
}

// ExpireSession ends a session as if its timeout had elapsed. The attached
// stream, if any, is told that the session expired.
func (s *Server) ExpireSession(id string) bool {
	return s.endSession(id, true)
}

func (s *Server) endSession(id string, expired bool) bool {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return false
	}
	sess.End(expired)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.watches.RemoveSession(id)
	// Delete all ephemeral nodes associated with this session.
	for _, path := range s.db.Ephemerals(id) {
		if _, err := s.commitLocked(deleteTxn(id, path)); err != nil && !errors.Is(err, zookeeper.ErrNodeNotFound) {
			s.logger.Errorf("failed to delete ephemeral node %s of session %s: %v", path, id, err)
		}
	}
	if expired {
		s.logger.Infof("session %s expired", id)
	} else {
		s.logger.Infof("session %s closed", id)
	}
	return true
}

func (s *Server) expireSessions(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			for _, id := range s.idleSessions(now) {
				s.ExpireSession(id)
			}
		}
	}
}

func (s *Server) idleSessions(now time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	for id, sess := range s.sessions {
		if sess.ShouldExpire(now) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Sessions returns the IDs of the live sessions.
func (s *Server) Sessions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DisconnectAll drops every attached stream while keeping the sessions alive,
// as a network partition shorter than the session timeout would.
func (s *Server) DisconnectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		sess.Disconnect()
	}
}

// Create creates a ZNode with path name path, stores data in it, and returns the name of the new ZNode
// Flags can also be passed to pick certain attributes you want the ZNode to have.
func (s *Server) Create(sess *session.Session, req *pbzk.CreateRequest) (*pbzk.CreateResponse, error) {
	if err := validatePath(req.GetPath(), false); err != nil {
		return nil, err
	}
	if err := validateData(req.GetPath(), req.GetData()); err != nil {
		return nil, err
	}
	txn := &pbzk.Transaction{
		SessionId: sess.ID,
		Txn: &pbzk.Transaction_Create{
			Create: &pbzk.CreateTxn{
				Path:       req.GetPath(),
				Data:       req.GetData(),
				Ephemeral:  slices.Contains(req.GetFlags(), pbzk.CreateRequest_FLAG_EPHEMERAL),
				Sequential: slices.Contains(req.GetFlags(), pbzk.CreateRequest_FLAG_SEQUENTIAL),
			},
		},
	}
	changes, err := s.commit(txn)
	if err != nil {
		return nil, err
	}
	node := changes[0].Node
	return &pbzk.CreateResponse{
		ZNodeName: node.Name,
		Stat:      node.Stat(),
	}, nil
}

// Delete deletes the ZNode at the given path if that ZNode is at the expected version.
func (s *Server) Delete(sess *session.Session, req *pbzk.DeleteRequest) (*pbzk.DeleteResponse, error) {
	if err := validatePath(req.GetPath(), false); err != nil {
		return nil, err
	}
	txn := &pbzk.Transaction{
		SessionId: sess.ID,
		Txn: &pbzk.Transaction_Delete{
			Delete: &pbzk.DeleteTxn{
				Path:            req.GetPath(),
				ExpectedVersion: req.GetVersion(),
				Recursive:       req.GetRecursive(),
			},
		},
	}
	if _, err := s.commit(txn); err != nil {
		return nil, err
	}
	return &pbzk.DeleteResponse{}, nil
}

// SetData writes data to the ZNode path if the version number is the current version of the ZNode.
func (s *Server) SetData(sess *session.Session, req *pbzk.SetDataRequest) (*pbzk.SetDataResponse, error) {
	if err := validatePath(req.GetPath(), true); err != nil {
		return nil, err
	}
	if err := validateData(req.GetPath(), req.GetData()); err != nil {
		return nil, err
	}
	txn := &pbzk.Transaction{
		SessionId: sess.ID,
		Txn: &pbzk.Transaction_SetData{
			SetData: &pbzk.SetDataTxn{
				Path:            req.GetPath(),
				Data:            req.GetData(),
				ExpectedVersion: req.GetVersion(),
			},
		},
	}
	changes, err := s.commit(txn)
	if err != nil {
		return nil, err
	}
	return &pbzk.SetDataResponse{Stat: changes[0].Node.Stat()}, nil
}

// Exists reports whether the ZNode exists. A watch is set even when it does
// not, so the client hears about its creation.
func (s *Server) Exists(sess *session.Session, req *pbzk.ExistsRequest) (*pbzk.ExistsResponse, error) {
	if err := validatePath(req.GetPath(), true); err != nil {
		return nil, err
	}
	if req.GetWatch() {
		s.writeMu.RLock()
		defer s.writeMu.RUnlock()
		s.watches.AddData(req.GetPath(), sess.ID)
	}
	node := s.db.Get(req.GetPath())
	if node == nil {
		return &pbzk.ExistsResponse{}, nil
	}
	return &pbzk.ExistsResponse{Exists: true, Stat: node.Stat()}, nil
}

// GetData returns the data and metadata, such as version information, associated with the ZNode.
// No watch is set if the ZNode does not exist.
func (s *Server) GetData(sess *session.Session, req *pbzk.GetDataRequest) (*pbzk.GetDataResponse, error) {
	if err := validatePath(req.GetPath(), true); err != nil {
		return nil, err
	}
	if req.GetWatch() {
		s.writeMu.RLock()
		defer s.writeMu.RUnlock()
	}
	node := s.db.Get(req.GetPath())
	if node == nil {
		return nil, fmt.Errorf("get %s: %w", req.GetPath(), zookeeper.ErrNodeNotFound)
	}
	if req.GetWatch() {
		s.watches.AddData(req.GetPath(), sess.ID)
	}
	return &pbzk.GetDataResponse{Data: node.Data, Stat: node.Stat()}, nil
}

// GetChildren returns the set of names of the children of a ZNode.
func (s *Server) GetChildren(sess *session.Session, req *pbzk.GetChildrenRequest) (*pbzk.GetChildrenResponse, error) {
	if err := validatePath(req.GetPath(), true); err != nil {
		return nil, err
	}
	if req.GetWatch() {
		s.writeMu.RLock()
		defer s.writeMu.RUnlock()
	}
	node := s.db.Get(req.GetPath())
	if node == nil {
		return nil, fmt.Errorf("children %s: %w", req.GetPath(), zookeeper.ErrNodeNotFound)
	}
	if req.GetWatch() {
		s.watches.AddChild(req.GetPath(), sess.ID)
	}
	return &pbzk.GetChildrenResponse{Children: node.ChildNames(), Stat: node.Stat()}, nil
}

// Sync returns once every write committed before it is visible. With a single
// server that only means waiting for the write in progress.
func (s *Server) Sync(_ *session.Session, req *pbzk.SyncRequest) (*pbzk.SyncResponse, error) {
	if err := validatePath(req.GetPath(), true); err != nil {
		return nil, err
	}
	s.writeMu.RLock()
	defer s.writeMu.RUnlock()
	return &pbzk.SyncResponse{Path: req.GetPath()}, nil
}

func (s *Server) Heartbeat(_ *pbzk.HeartbeatRequest) *pbzk.HeartbeatResponse {
	return &pbzk.HeartbeatResponse{
		ReceivedTsMs: time.Now().UnixMilli(),
	}
}
