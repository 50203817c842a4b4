// Package utils carries the client identity between client and server in
// gRPC metadata.
package utils

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

// ClientIDHeader is lower case, gRPC normalizes metadata keys.
const ClientIDHeader = "x-client-id"

// NewClientID returns a fresh random client ID.
func NewClientID() string {
	return uuid.NewString()
}

// ClientIDFromContext returns the client ID of an incoming stream. IDs that
// are not UUIDs are rejected.
func ClientIDFromContext(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get(ClientIDHeader)
	if len(values) == 0 {
		return "", false
	}
	if _, err := uuid.Parse(values[0]); err != nil {
		return "", false
	}
	return values[0], true
}

// WithClientID adds clientID to the outgoing metadata of ctx, keeping what is
// already there.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, ClientIDHeader, clientID)
}
