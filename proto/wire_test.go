package proto

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	grpcproto "google.golang.org/grpc/encoding/proto"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

func TestRequest_OneofSurvivesEncoding(t *testing.T) {
	tests := []struct {
		name string
		req  *ZookeeperRequest
	}{
		{
			name: "empty close message",
			req: &ZookeeperRequest{
				Xid:     7,
				Message: &ZookeeperRequest_Close{Close: &CloseRequest{}},
			},
		},
		{
			name: "heartbeat uses negative xid",
			req: &ZookeeperRequest{
				Xid:     HeartbeatXid,
				Message: &ZookeeperRequest_Heartbeat{Heartbeat: &HeartbeatRequest{SentTsMs: 1234}},
			},
		},
		{
			name: "create with flags",
			req: &ZookeeperRequest{
				Xid: 1,
				Message: &ZookeeperRequest_Create{Create: &CreateRequest{
					Path:  "/zoo",
					Data:  []byte(`{"key":"url"}`),
					Flags: []CreateRequest_Flag{CreateRequest_FLAG_EPHEMERAL, CreateRequest_FLAG_SEQUENTIAL},
				}},
			},
		},
		{
			name: "delete with any version",
			req: &ZookeeperRequest{
				Xid:     2,
				Message: &ZookeeperRequest_Delete{Delete: &DeleteRequest{Path: "/zoo", Version: -1, Recursive: true}},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := proto.Marshal(test.req)
			require.NoError(t, err)

			actual := &ZookeeperRequest{}
			require.NoError(t, proto.Unmarshal(b, actual))
			assert.True(t, proto.Equal(test.req, actual), "got %v", actual)
		})
	}
}

func TestResponse_ErrorAndWatchEvent(t *testing.T) {
	resp := &ZookeeperResponse{
		Xid:  NotificationXid,
		Zxid: 1<<32 | 5,
		Error: &Error{
			Code:    Error_CODE_SESSION_EXPIRED,
			Message: "session expired",
		},
		Message: &ZookeeperResponse_WatchEvent{WatchEvent: &WatchEvent{
			Type: WatchEvent_EVENT_TYPE_ZNODE_CHILDREN_CHANGED,
			Path: "/zoo",
			Zxid: 1<<32 | 5,
		}},
	}
	b, err := proto.Marshal(resp)
	require.NoError(t, err)

	actual := &ZookeeperResponse{}
	require.NoError(t, proto.Unmarshal(b, actual))
	assert.True(t, proto.Equal(resp, actual), "got %v", actual)
	assert.Equal(t, "/zoo", actual.GetWatchEvent().GetPath())
	assert.Nil(t, actual.GetGetData())
}

func TestUnmarshal_SkipsUnknownFields(t *testing.T) {
	b, err := proto.Marshal(&GetDataResponse{Data: []byte("zoo"), Stat: &Stat{Version: 3}})
	require.NoError(t, err)
	// Append a field this version of the schema does not know about.
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "from the future")

	actual := &GetDataResponse{}
	require.NoError(t, proto.Unmarshal(b, actual))
	assert.Equal(t, []byte("zoo"), actual.GetData())
	assert.Equal(t, int64(3), actual.GetStat().GetVersion())
}

func TestUnmarshal_PackedFlags(t *testing.T) {
	var packed []byte
	packed = protowire.AppendVarint(packed, uint64(CreateRequest_FLAG_EPHEMERAL))
	packed = protowire.AppendVarint(packed, uint64(CreateRequest_FLAG_SEQUENTIAL))
	b := protowire.AppendTag(nil, 3, protowire.BytesType)
	b = protowire.AppendBytes(b, packed)

	actual := &CreateRequest{}
	require.NoError(t, proto.Unmarshal(b, actual))
	assert.Equal(t, []CreateRequest_Flag{CreateRequest_FLAG_EPHEMERAL, CreateRequest_FLAG_SEQUENTIAL}, actual.GetFlags())
}

func TestUnmarshal_Truncated(t *testing.T) {
	b, err := proto.Marshal(&SetDataRequest{Path: "/zoo", Data: []byte("payload"), Version: 4})
	require.NoError(t, err)
	assert.Error(t, proto.Unmarshal(b[:len(b)-3], &SetDataRequest{}))
}

func TestDescriptor_MatchesSchema(t *testing.T) {
	fd := File_zookeeper_proto
	assert.Equal(t, "zookeeper", string(fd.Package()))
	require.Equal(t, 1, fd.Services().Len())
	assert.Equal(t, "Zookeeper", string(fd.Services().Get(0).Name()))

	txn := (&Transaction{}).ProtoReflect().Descriptor()
	assert.Equal(t, "zookeeper.Transaction", string(txn.FullName()))
	assert.Equal(t, "txn", string(txn.Oneofs().Get(0).Name()))
	assert.Equal(t, "CODE_VERSION_CONFLICT", Error_CODE_VERSION_CONFLICT.String())
}

func TestCodec_GRPCDefault(t *testing.T) {
	c := encoding.GetCodec(grpcproto.Name)
	require.NotNil(t, c)

	txn := &Transaction{
		Zxid:      42,
		SessionId: "session",
		TimeMs:    1000,
		Txn: &Transaction_SetData{SetData: &SetDataTxn{
			Path:            "/config",
			Data:            []byte("v2"),
			ExpectedVersion: 1,
			Version:         2,
		}},
	}
	b, err := c.Marshal(txn)
	require.NoError(t, err)

	actual := &Transaction{}
	require.NoError(t, c.Unmarshal(b, actual))
	assert.True(t, proto.Equal(txn, actual), "got %v", actual)
}

func TestError_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Error_Code
		sentinel error
	}{
		{
			name:     "wrapped sentinel",
			err:      fmt.Errorf("set /zoo: %w", zookeeper.ErrVersionConflict),
			code:     Error_CODE_VERSION_CONFLICT,
			sentinel: zookeeper.ErrVersionConflict,
		},
		{
			name:     "session expired",
			err:      zookeeper.ErrSessionExpired,
			code:     Error_CODE_SESSION_EXPIRED,
			sentinel: zookeeper.ErrSessionExpired,
		},
		{
			name: "unknown error",
			err:  errors.New("disk on fire"),
			code: Error_CODE_INTERNAL,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			wire := ErrorFor(test.err)
			require.NotNil(t, wire)
			assert.Equal(t, test.code, wire.GetCode())

			err := wire.Err()
			require.Error(t, err)
			assert.Equal(t, test.err.Error(), err.Error())
			if test.sentinel != nil {
				assert.ErrorIs(t, err, test.sentinel)
			}
		})
	}

	assert.Nil(t, ErrorFor(nil))
	assert.NoError(t, (*Error)(nil).Err())
}
