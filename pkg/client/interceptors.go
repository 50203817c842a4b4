package client

import (
	"context"

	"github.com/mikekulinski/zkclient/pkg/utils"
	"google.golang.org/grpc"
)

// withClientID tags every stream of the connection with the client id, which
// the server records as the owner of the sessions it opens.
func withClientID(clientID string) grpc.StreamClientInterceptor {
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		return streamer(utils.WithClientID(ctx, clientID), desc, cc, method, opts...)
	}
}
