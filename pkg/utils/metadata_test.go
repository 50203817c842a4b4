package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

func TestClientIDFromContext(t *testing.T) {
	id := NewClientID()
	testCases := []struct {
		name     string
		ctx      context.Context
		expected string
		ok       bool
	}{
		{
			name: "no metadata",
			ctx:  context.Background(),
		},
		{
			name: "missing header",
			ctx:  metadata.NewIncomingContext(context.Background(), metadata.Pairs("other", "value")),
		},
		{
			name: "not a uuid",
			ctx:  metadata.NewIncomingContext(context.Background(), metadata.Pairs(ClientIDHeader, "client")),
		},
		{
			name:     "valid",
			ctx:      metadata.NewIncomingContext(context.Background(), metadata.Pairs(ClientIDHeader, id)),
			expected: id,
			ok:       true,
		},
		{
			name:     "header name is case insensitive",
			ctx:      metadata.NewIncomingContext(context.Background(), metadata.Pairs("X-Client-ID", id)),
			expected: id,
			ok:       true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ClientIDFromContext(tc.ctx)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestWithClientID(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), "trace", "abc")
	ctx = WithClientID(ctx, "id")

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"id"}, md.Get(ClientIDHeader))
	assert.Equal(t, []string{"abc"}, md.Get("trace"))
}

func TestNewClientID(t *testing.T) {
	assert.NotEqual(t, NewClientID(), NewClientID())
}
