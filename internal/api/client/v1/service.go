package v1

import (
	"context"
	"fmt"

	"ChordDHT/internal/api"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	serviceName = "client.v1.ClientAPI"

	Method_Put            = "/" + serviceName + "/Put"
	Method_Get            = "/" + serviceName + "/Get"
	Method_Contains       = "/" + serviceName + "/Contains"
	Method_Remove         = "/" + serviceName + "/Remove"
	Method_Lookup         = "/" + serviceName + "/Lookup"
	Method_GetFingerTable = "/" + serviceName + "/GetFingerTable"
	Method_GetHashTable   = "/" + serviceName + "/GetHashTable"
	Method_Disconnect     = "/" + serviceName + "/Disconnect"
)

func errUnimplemented(method string) error {
	return status.Error(codes.Unimplemented, fmt.Sprintf("method %s not implemented", method))
}

// ClientAPIClient is the stub used by CLIs and other collaborators to
// reach a chord node's external surface.
type ClientAPIClient interface {
	Put(ctx context.Context, in *PutRequest, opts ...grpc.CallOption) (*PutResponse, error)
	Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*GetResponse, error)
	Contains(ctx context.Context, in *ContainsRequest, opts ...grpc.CallOption) (*ContainsResponse, error)
	Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*api.Empty, error)
	Lookup(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupResponse, error)
	GetFingerTable(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*FingerTableResponse, error)
	GetHashTable(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*HashTableResponse, error)
	Disconnect(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*DisconnectResponse, error)
}

type clientAPIClient struct {
	cc grpc.ClientConnInterface
}

func NewClientAPIClient(cc grpc.ClientConnInterface) ClientAPIClient {
	return &clientAPIClient{cc}
}

func (c *clientAPIClient) Put(ctx context.Context, in *PutRequest, opts ...grpc.CallOption) (*PutResponse, error) {
	out := new(PutResponse)
	if err := c.cc.Invoke(ctx, Method_Put, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientAPIClient) Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*GetResponse, error) {
	out := new(GetResponse)
	if err := c.cc.Invoke(ctx, Method_Get, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientAPIClient) Contains(ctx context.Context, in *ContainsRequest, opts ...grpc.CallOption) (*ContainsResponse, error) {
	out := new(ContainsResponse)
	if err := c.cc.Invoke(ctx, Method_Contains, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientAPIClient) Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*api.Empty, error) {
	out := new(api.Empty)
	if err := c.cc.Invoke(ctx, Method_Remove, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientAPIClient) Lookup(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupResponse, error) {
	out := new(LookupResponse)
	if err := c.cc.Invoke(ctx, Method_Lookup, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientAPIClient) GetFingerTable(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*FingerTableResponse, error) {
	out := new(FingerTableResponse)
	if err := c.cc.Invoke(ctx, Method_GetFingerTable, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientAPIClient) GetHashTable(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*HashTableResponse, error) {
	out := new(HashTableResponse)
	if err := c.cc.Invoke(ctx, Method_GetHashTable, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clientAPIClient) Disconnect(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*DisconnectResponse, error) {
	out := new(DisconnectResponse)
	if err := c.cc.Invoke(ctx, Method_Disconnect, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ClientAPIServer is implemented by internal/server against a chord node.
type ClientAPIServer interface {
	Put(context.Context, *PutRequest) (*PutResponse, error)
	Get(context.Context, *GetRequest) (*GetResponse, error)
	Contains(context.Context, *ContainsRequest) (*ContainsResponse, error)
	Remove(context.Context, *RemoveRequest) (*api.Empty, error)
	Lookup(context.Context, *LookupRequest) (*LookupResponse, error)
	GetFingerTable(context.Context, *api.Empty) (*FingerTableResponse, error)
	GetHashTable(context.Context, *api.Empty) (*HashTableResponse, error)
	Disconnect(context.Context, *api.Empty) (*DisconnectResponse, error)
}

type UnimplementedClientAPIServer struct{}

func (UnimplementedClientAPIServer) Put(context.Context, *PutRequest) (*PutResponse, error) {
	return nil, errUnimplemented("Put")
}
func (UnimplementedClientAPIServer) Get(context.Context, *GetRequest) (*GetResponse, error) {
	return nil, errUnimplemented("Get")
}
func (UnimplementedClientAPIServer) Contains(context.Context, *ContainsRequest) (*ContainsResponse, error) {
	return nil, errUnimplemented("Contains")
}
func (UnimplementedClientAPIServer) Remove(context.Context, *RemoveRequest) (*api.Empty, error) {
	return nil, errUnimplemented("Remove")
}
func (UnimplementedClientAPIServer) Lookup(context.Context, *LookupRequest) (*LookupResponse, error) {
	return nil, errUnimplemented("Lookup")
}
func (UnimplementedClientAPIServer) GetFingerTable(context.Context, *api.Empty) (*FingerTableResponse, error) {
	return nil, errUnimplemented("GetFingerTable")
}
func (UnimplementedClientAPIServer) GetHashTable(context.Context, *api.Empty) (*HashTableResponse, error) {
	return nil, errUnimplemented("GetHashTable")
}
func (UnimplementedClientAPIServer) Disconnect(context.Context, *api.Empty) (*DisconnectResponse, error) {
	return nil, errUnimplemented("Disconnect")
}

func RegisterClientAPIServer(s grpc.ServiceRegistrar, srv ClientAPIServer) {
	s.RegisterService(&ClientAPI_ServiceDesc, srv)
}

var ClientAPI_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ClientAPIServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Put", Handler: _ClientAPI_Put_Handler},
		{MethodName: "Get", Handler: _ClientAPI_Get_Handler},
		{MethodName: "Contains", Handler: _ClientAPI_Contains_Handler},
		{MethodName: "Remove", Handler: _ClientAPI_Remove_Handler},
		{MethodName: "Lookup", Handler: _ClientAPI_Lookup_Handler},
		{MethodName: "GetFingerTable", Handler: _ClientAPI_GetFingerTable_Handler},
		{MethodName: "GetHashTable", Handler: _ClientAPI_GetHashTable_Handler},
		{MethodName: "Disconnect", Handler: _ClientAPI_Disconnect_Handler},
	},
	Metadata: "client/v1/client.proto",
}

func _ClientAPI_Put_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientAPIServer).Put(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Put}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientAPIServer).Put(ctx, req.(*PutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientAPI_Get_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientAPIServer).Get(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Get}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientAPIServer).Get(ctx, req.(*GetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientAPI_Contains_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ContainsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientAPIServer).Contains(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Contains}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientAPIServer).Contains(ctx, req.(*ContainsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientAPI_Remove_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RemoveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientAPIServer).Remove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Remove}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientAPIServer).Remove(ctx, req.(*RemoveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientAPI_Lookup_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LookupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientAPIServer).Lookup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Lookup}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientAPIServer).Lookup(ctx, req.(*LookupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientAPI_GetFingerTable_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(api.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientAPIServer).GetFingerTable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_GetFingerTable}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientAPIServer).GetFingerTable(ctx, req.(*api.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientAPI_GetHashTable_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(api.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientAPIServer).GetHashTable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_GetHashTable}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientAPIServer).GetHashTable(ctx, req.(*api.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientAPI_Disconnect_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(api.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientAPIServer).Disconnect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Disconnect}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClientAPIServer).Disconnect(ctx, req.(*api.Empty))
	}
	return interceptor(ctx, in, info, handler)
}
