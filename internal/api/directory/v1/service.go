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
	serviceName = "directory.v1.Directory"

	Method_Register        = "/" + serviceName + "/Register"
	Method_Resolve         = "/" + serviceName + "/Resolve"
	Method_List            = "/" + serviceName + "/List"
	Method_PickRandom      = "/" + serviceName + "/PickRandom"
	Method_PickFreeChordID = "/" + serviceName + "/PickFreeChordID"
	Method_Remove          = "/" + serviceName + "/Remove"
)

func errUnimplemented(method string) error {
	return status.Error(codes.Unimplemented, fmt.Sprintf("method %s not implemented", method))
}

// DirectoryClient is the stub used by nodes to register themselves
// and resolve one another through the single logical directory
// instance.
type DirectoryClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (*ResolveResponse, error)
	List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error)
	PickRandom(ctx context.Context, in *PickRandomRequest, opts ...grpc.CallOption) (*PickRandomResponse, error)
	PickFreeChordID(ctx context.Context, in *PickFreeChordIDRequest, opts ...grpc.CallOption) (*PickFreeChordIDResponse, error)
	Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*api.Empty, error)
}

type directoryClient struct {
	cc grpc.ClientConnInterface
}

func NewDirectoryClient(cc grpc.ClientConnInterface) DirectoryClient {
	return &directoryClient{cc}
}

func (c *directoryClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	if err := c.cc.Invoke(ctx, Method_Register, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *directoryClient) Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (*ResolveResponse, error) {
	out := new(ResolveResponse)
	if err := c.cc.Invoke(ctx, Method_Resolve, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *directoryClient) List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error) {
	out := new(ListResponse)
	if err := c.cc.Invoke(ctx, Method_List, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *directoryClient) PickRandom(ctx context.Context, in *PickRandomRequest, opts ...grpc.CallOption) (*PickRandomResponse, error) {
	out := new(PickRandomResponse)
	if err := c.cc.Invoke(ctx, Method_PickRandom, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *directoryClient) PickFreeChordID(ctx context.Context, in *PickFreeChordIDRequest, opts ...grpc.CallOption) (*PickFreeChordIDResponse, error) {
	out := new(PickFreeChordIDResponse)
	if err := c.cc.Invoke(ctx, Method_PickFreeChordID, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *directoryClient) Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*api.Empty, error) {
	out := new(api.Empty)
	if err := c.cc.Invoke(ctx, Method_Remove, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DirectoryServer is implemented by internal/directory against its
// in-memory registry.
type DirectoryServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Resolve(context.Context, *ResolveRequest) (*ResolveResponse, error)
	List(context.Context, *ListRequest) (*ListResponse, error)
	PickRandom(context.Context, *PickRandomRequest) (*PickRandomResponse, error)
	PickFreeChordID(context.Context, *PickFreeChordIDRequest) (*PickFreeChordIDResponse, error)
	Remove(context.Context, *RemoveRequest) (*api.Empty, error)
}

type UnimplementedDirectoryServer struct{}

func (UnimplementedDirectoryServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, errUnimplemented("Register")
}
func (UnimplementedDirectoryServer) Resolve(context.Context, *ResolveRequest) (*ResolveResponse, error) {
	return nil, errUnimplemented("Resolve")
}
func (UnimplementedDirectoryServer) List(context.Context, *ListRequest) (*ListResponse, error) {
	return nil, errUnimplemented("List")
}
func (UnimplementedDirectoryServer) PickRandom(context.Context, *PickRandomRequest) (*PickRandomResponse, error) {
	return nil, errUnimplemented("PickRandom")
}
func (UnimplementedDirectoryServer) PickFreeChordID(context.Context, *PickFreeChordIDRequest) (*PickFreeChordIDResponse, error) {
	return nil, errUnimplemented("PickFreeChordID")
}
func (UnimplementedDirectoryServer) Remove(context.Context, *RemoveRequest) (*api.Empty, error) {
	return nil, errUnimplemented("Remove")
}

func RegisterDirectoryServer(s grpc.ServiceRegistrar, srv DirectoryServer) {
	s.RegisterService(&Directory_ServiceDesc, srv)
}

var Directory_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*DirectoryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: _Directory_Register_Handler},
		{MethodName: "Resolve", Handler: _Directory_Resolve_Handler},
		{MethodName: "List", Handler: _Directory_List_Handler},
		{MethodName: "PickRandom", Handler: _Directory_PickRandom_Handler},
		{MethodName: "PickFreeChordID", Handler: _Directory_PickFreeChordID_Handler},
		{MethodName: "Remove", Handler: _Directory_Remove_Handler},
	},
	Metadata: "directory/v1/directory.proto",
}

func _Directory_Register_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DirectoryServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Register}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DirectoryServer).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Directory_Resolve_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ResolveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DirectoryServer).Resolve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Resolve}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DirectoryServer).Resolve(ctx, req.(*ResolveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Directory_List_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DirectoryServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_List}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DirectoryServer).List(ctx, req.(*ListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Directory_PickRandom_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PickRandomRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DirectoryServer).PickRandom(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_PickRandom}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DirectoryServer).PickRandom(ctx, req.(*PickRandomRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Directory_PickFreeChordID_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PickFreeChordIDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DirectoryServer).PickFreeChordID(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_PickFreeChordID}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DirectoryServer).PickFreeChordID(ctx, req.(*PickFreeChordIDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Directory_Remove_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RemoveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DirectoryServer).Remove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Remove}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DirectoryServer).Remove(ctx, req.(*RemoveRequest))
	}
	return interceptor(ctx, in, info, handler)
}
