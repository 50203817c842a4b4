package server

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mikekulinski/zkclient/pkg/session"
	"github.com/mikekulinski/zkclient/pkg/utils"
	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	pbzk "github.com/mikekulinski/zkclient/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Message serves one client stream. The first request must be a connect
// request, which opens or resumes a session. The stream then serves that
// session until the client goes away, the session ends, or another stream
// resumes it.
func (s *Server) Message(stream pbzk.Zookeeper_MessageServer) error {
	ctx := stream.Context()
	// Extract the clientID from the message headers.
	clientID, ok := utils.ClientIDFromContext(ctx)
	if !ok {
		return status.Error(codes.InvalidArgument, "missing or malformed client ID header")
	}

	first, err := stream.Recv()
	if err != nil {
		return err
	}
	connectReq := first.GetConnect()
	if connectReq == nil {
		return status.Error(codes.InvalidArgument, "the first message must be a connect request")
	}

	sess, err := s.openSession(clientID, connectReq)
	if err != nil {
		return stream.Send(&pbzk.ZookeeperResponse{Xid: first.GetXid(), Error: pbzk.ErrorFor(err)})
	}
	conn, ok := sess.Attach()
	if !ok {
		return stream.Send(&pbzk.ZookeeperResponse{
			Xid:   first.GetXid(),
			Error: pbzk.ErrorFor(fmt.Errorf("session %s: %w", sess.ID, zookeeper.ErrSessionExpired)),
		})
	}
	defer sess.Detach(conn)

	err = stream.Send(&pbzk.ZookeeperResponse{
		Xid:  first.GetXid(),
		Zxid: s.lastZxid.Load(),
		Message: &pbzk.ZookeeperResponse_Connect{
			Connect: &pbzk.ConnectResponse{
				SessionId: sess.ID,
				TimeoutMs: sess.Timeout.Milliseconds(),
			},
		},
	})
	if err != nil {
		return err
	}

	stopped := make(chan struct{})
	defer close(stopped)
	go s.continuouslyReceiveMessages(conn, stream, stopped)

	return s.serve(ctx, sess, conn, stream)
}

func (s *Server) serve(ctx context.Context, sess *session.Session, conn *session.Conn, stream pbzk.Zookeeper_MessageServer) error {
	for {
		select {
		case m := <-conn.Messages:
			if m.EOF {
				// There are no more messages so safely close the connection.
				return m.Err
			}
			sess.Touch()
			resp, closing := s.handleClientRequest(sess, m.ClientRequest)
			// Notifications go out first, so the client hears about a change
			// before it can read the changed node.
			if err := s.flush(sess, stream); err != nil {
				return err
			}
			if err := stream.Send(resp); err != nil {
				return err
			}
			if closing {
				return nil
			}
		case <-conn.Notify():
			if err := s.flush(sess, stream); err != nil {
				return err
			}
		case <-conn.Done():
			if sess.Expired() {
				return stream.Send(&pbzk.ZookeeperResponse{
					Xid:   pbzk.NotificationXid,
					Error: pbzk.ErrorFor(fmt.Errorf("session %s: %w", sess.ID, zookeeper.ErrSessionExpired)),
				})
			}
			if sess.Ended() {
				return nil
			}
			return status.Error(codes.Unavailable, "connection dropped")
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// flush writes the session's pending watch notifications to the stream.
func (s *Server) flush(sess *session.Session, stream pbzk.Zookeeper_MessageServer) error {
	events := sess.Drain()
	for i, event := range events {
		err := stream.Send(&pbzk.ZookeeperResponse{
			Xid:  pbzk.NotificationXid,
			Zxid: event.Zxid,
			Message: &pbzk.ZookeeperResponse_WatchEvent{
				WatchEvent: event,
			},
		})
		if err != nil {
			// Keep the rest for the next stream of this session.
			sess.Requeue(events[i:])
			return err
		}
	}
	return nil
}

func (s *Server) handleClientRequest(sess *session.Session, req *pbzk.ZookeeperRequest) (*pbzk.ZookeeperResponse, bool) {
	mainResponse := &pbzk.ZookeeperResponse{Xid: req.GetXid()}
	closing := false
	var err error
	switch m := req.GetMessage().(type) {
	case *pbzk.ZookeeperRequest_Heartbeat:
		mainResponse.Message = &pbzk.ZookeeperResponse_Heartbeat{
			Heartbeat: s.Heartbeat(m.Heartbeat),
		}
	case *pbzk.ZookeeperRequest_Create:
		var resp *pbzk.CreateResponse
		resp, err = s.Create(sess, m.Create)
		mainResponse.Message = &pbzk.ZookeeperResponse_Create{
			Create: resp,
		}
	case *pbzk.ZookeeperRequest_Delete:
		var resp *pbzk.DeleteResponse
		resp, err = s.Delete(sess, m.Delete)
		mainResponse.Message = &pbzk.ZookeeperResponse_Delete{
			Delete: resp,
		}
	case *pbzk.ZookeeperRequest_Exists:
		var resp *pbzk.ExistsResponse
		resp, err = s.Exists(sess, m.Exists)
		mainResponse.Message = &pbzk.ZookeeperResponse_Exists{
			Exists: resp,
		}
	case *pbzk.ZookeeperRequest_GetData:
		var resp *pbzk.GetDataResponse
		resp, err = s.GetData(sess, m.GetData)
		mainResponse.Message = &pbzk.ZookeeperResponse_GetData{
			GetData: resp,
		}
	case *pbzk.ZookeeperRequest_SetData:
		var resp *pbzk.SetDataResponse
		resp, err = s.SetData(sess, m.SetData)
		mainResponse.Message = &pbzk.ZookeeperResponse_SetData{
			SetData: resp,
		}
	case *pbzk.ZookeeperRequest_GetChildren:
		var resp *pbzk.GetChildrenResponse
		resp, err = s.GetChildren(sess, m.GetChildren)
		mainResponse.Message = &pbzk.ZookeeperResponse_GetChildren{
			GetChildren: resp,
		}
	case *pbzk.ZookeeperRequest_Sync:
		var resp *pbzk.SyncResponse
		resp, err = s.Sync(sess, m.Sync)
		mainResponse.Message = &pbzk.ZookeeperResponse_Sync{
			Sync: resp,
		}
	case *pbzk.ZookeeperRequest_Close:
		s.CloseSession(sess.ID)
		mainResponse.Message = &pbzk.ZookeeperResponse_Close{
			Close: &pbzk.CloseResponse{},
		}
		closing = true
	default:
		err = fmt.Errorf("%w: invalid message format: %T", zookeeper.ErrBadRequest, m)
	}

	if err != nil {
		s.logger.Debugf("session %s: request %d failed: %v", sess.ID, req.GetXid(), err)
		mainResponse.Message = nil
		mainResponse.Error = pbzk.ErrorFor(err)
	}
	mainResponse.Zxid = s.lastZxid.Load()
	return mainResponse, closing
}

func (s *Server) continuouslyReceiveMessages(conn *session.Conn, stream pbzk.Zookeeper_MessageServer, stopped <-chan struct{}) {
	for {
		req, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			} else {
				s.logger.Debugf("error receiving message from server stream: %v", err)
			}
			// Tell the handler we have lost the client. It may already be gone.
			select {
			case conn.Messages <- &session.Event{EOF: true, Err: err}:
			case <-stopped:
			}
			return
		}
		select {
		case conn.Messages <- &session.Event{ClientRequest: req}:
		case <-stopped:
			return
		}
	}
}
