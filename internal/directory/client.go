package directory

import (
	"context"
	"errors"

	v1 "ChordDHT/internal/api/directory/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// ErrConflict is returned by Register when the requested name is
// already registered under a different address.
var ErrConflict = errors.New("name already registered at a different address")

// Client is a thin RPC adapter in front of the directory service,
// used by nodes to register/resolve/list/pick against the single
// logical directory instance.
type Client struct {
	stub v1.DirectoryClient
	conn *grpc.ClientConn
}

// Connect dials the directory service at addr.
func Connect(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{stub: v1.NewDirectoryClient(conn), conn: conn}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Register publishes addr under type/id. ErrConflict means another
// address already holds that name.
func (c *Client) Register(ctx context.Context, typ string, id []byte, addr string) (string, error) {
	resp, err := c.stub.Register(ctx, &v1.RegisterRequest{Type: typ, Id: id, Addr: addr})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return "", ErrConflict
		}
		return "", err
	}
	return resp.Uri, nil
}

// Resolve looks up the address registered for type/id.
func (c *Client) Resolve(ctx context.Context, typ string, id []byte) (string, bool, error) {
	resp, err := c.stub.Resolve(ctx, &v1.ResolveRequest{Type: typ, Id: id})
	if err != nil {
		return "", false, err
	}
	return resp.Addr, resp.Found, nil
}

// List enumerates every registered id of the given type.
func (c *Client) List(ctx context.Context, typ string) ([][]byte, error) {
	resp, err := c.stub.List(ctx, &v1.ListRequest{Type: typ})
	if err != nil {
		return nil, err
	}
	return resp.Ids, nil
}

// PickRandom returns one registered entity of the given type, chosen
// uniformly at random, or found=false if none are registered.
func (c *Client) PickRandom(ctx context.Context, typ string) (id []byte, addr string, found bool, err error) {
	resp, err := c.stub.PickRandom(ctx, &v1.PickRandomRequest{Type: typ})
	if err != nil {
		return nil, "", false, err
	}
	return resp.Id, resp.Addr, resp.Found, nil
}

// PickFreeChordID asks the directory for an id in [0, 2^bits) not
// currently registered as a chord node.
func (c *Client) PickFreeChordID(ctx context.Context, bits int) ([]byte, error) {
	resp, err := c.stub.PickFreeChordID(ctx, &v1.PickFreeChordIDRequest{Bits: int32(bits)})
	if err != nil {
		return nil, err
	}
	return resp.Id, nil
}

// Remove unregisters type/id.
func (c *Client) Remove(ctx context.Context, typ string, id []byte) error {
	_, err := c.stub.Remove(ctx, &v1.RemoveRequest{Type: typ, Id: id})
	return err
}
