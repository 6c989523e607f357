package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
)

// Client calls the catalog service over an existing connection
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a client on conn
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Call invokes one unary method with the given request fields and returns
// the decoded response. Errors come back with their catalog code restored.
func (c *Client) Call(ctx context.Context, method string, fields map[string]any) (map[string]any, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid request fields: %v", err)
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, "/"+ServiceName+"/"+method, in, out); err != nil {
		return nil, errors.FromGRPCError(err)
	}
	return out.AsMap(), nil
}
