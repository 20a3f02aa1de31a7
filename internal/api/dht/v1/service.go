package v1

import (
	"context"
	"fmt"

	"ChordDHT/internal/api"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func errUnimplemented(method string) error {
	return status.Error(codes.Unimplemented, fmt.Sprintf("method %s not implemented", method))
}

const (
	serviceName = "dht.v1.DHT"

	Method_Id                      = "/" + serviceName + "/Id"
	Method_Successor               = "/" + serviceName + "/Successor"
	Method_Predecessor             = "/" + serviceName + "/Predecessor"
	Method_SetSuccessor            = "/" + serviceName + "/SetSuccessor"
	Method_SetPredecessor          = "/" + serviceName + "/SetPredecessor"
	Method_FindSuccessor           = "/" + serviceName + "/FindSuccessor"
	Method_ClosestPrecedingFinger  = "/" + serviceName + "/ClosestPrecedingFinger"
	Method_UpdateFingerTable       = "/" + serviceName + "/UpdateFingerTable"
	Method_Notify                  = "/" + serviceName + "/Notify"
	Method_Insert                  = "/" + serviceName + "/Insert"
	Method_Get                     = "/" + serviceName + "/Get"
	Method_Contains                = "/" + serviceName + "/Contains"
	Method_Remove                  = "/" + serviceName + "/Remove"
	Method_PopInInterval           = "/" + serviceName + "/PopInInterval"
	Method_UpdateHashTable         = "/" + serviceName + "/UpdateHashTable"
	Method_UpdateHashTableWithKeys = "/" + serviceName + "/UpdateHashTableWithKeys"
	Method_Ping                    = "/" + serviceName + "/Ping"
	Method_SerializedFingerTable   = "/" + serviceName + "/SerializedFingerTable"
	Method_SerializedHashTableKeys = "/" + serviceName + "/SerializedHashTableKeys"
)

// DHTClient is the client-side stub for node-to-node RPCs.
type DHTClient interface {
	Id(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*IdResponse, error)
	Successor(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*NodeResponse, error)
	Predecessor(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*NodeResponse, error)
	SetSuccessor(ctx context.Context, in *NodeRef, opts ...grpc.CallOption) (*api.Empty, error)
	SetPredecessor(ctx context.Context, in *NodeRef, opts ...grpc.CallOption) (*api.Empty, error)
	FindSuccessor(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*NodeResponse, error)
	ClosestPrecedingFinger(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*NodeResponse, error)
	UpdateFingerTable(ctx context.Context, in *UpdateFingerTableRequest, opts ...grpc.CallOption) (*api.Empty, error)
	Notify(ctx context.Context, in *NodeRef, opts ...grpc.CallOption) (*api.Empty, error)
	Insert(ctx context.Context, in *KVRequest, opts ...grpc.CallOption) (*api.Empty, error)
	Get(ctx context.Context, in *KeyRequest, opts ...grpc.CallOption) (*ValueResponse, error)
	Contains(ctx context.Context, in *KeyRequest, opts ...grpc.CallOption) (*BoolResponse, error)
	Remove(ctx context.Context, in *KeyRequest, opts ...grpc.CallOption) (*api.Empty, error)
	PopInInterval(ctx context.Context, in *RangeRequest, opts ...grpc.CallOption) (*KVListResponse, error)
	UpdateHashTable(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*api.Empty, error)
	UpdateHashTableWithKeys(ctx context.Context, in *KVListRequest, opts ...grpc.CallOption) (*api.Empty, error)
	Ping(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*api.Empty, error)
	SerializedFingerTable(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*FingerTableResponse, error)
	SerializedHashTableKeys(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*HashTableResponse, error)
}

type dHTClient struct {
	cc grpc.ClientConnInterface
}

func NewDHTClient(cc grpc.ClientConnInterface) DHTClient {
	return &dHTClient{cc}
}

func (c *dHTClient) Id(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*IdResponse, error) {
	out := new(IdResponse)
	if err := c.cc.Invoke(ctx, Method_Id, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) Successor(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*NodeResponse, error) {
	out := new(NodeResponse)
	if err := c.cc.Invoke(ctx, Method_Successor, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) Predecessor(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*NodeResponse, error) {
	out := new(NodeResponse)
	if err := c.cc.Invoke(ctx, Method_Predecessor, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) SetSuccessor(ctx context.Context, in *NodeRef, opts ...grpc.CallOption) (*api.Empty, error) {
	out := new(api.Empty)
	if err := c.cc.Invoke(ctx, Method_SetSuccessor, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) SetPredecessor(ctx context.Context, in *NodeRef, opts ...grpc.CallOption) (*api.Empty, error) {
	out := new(api.Empty)
	if err := c.cc.Invoke(ctx, Method_SetPredecessor, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) FindSuccessor(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*NodeResponse, error) {
	out := new(NodeResponse)
	if err := c.cc.Invoke(ctx, Method_FindSuccessor, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) ClosestPrecedingFinger(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*NodeResponse, error) {
	out := new(NodeResponse)
	if err := c.cc.Invoke(ctx, Method_ClosestPrecedingFinger, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) UpdateFingerTable(ctx context.Context, in *UpdateFingerTableRequest, opts ...grpc.CallOption) (*api.Empty, error) {
	out := new(api.Empty)
	if err := c.cc.Invoke(ctx, Method_UpdateFingerTable, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) Notify(ctx context.Context, in *NodeRef, opts ...grpc.CallOption) (*api.Empty, error) {
	out := new(api.Empty)
	if err := c.cc.Invoke(ctx, Method_Notify, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) Insert(ctx context.Context, in *KVRequest, opts ...grpc.CallOption) (*api.Empty, error) {
	out := new(api.Empty)
	if err := c.cc.Invoke(ctx, Method_Insert, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) Get(ctx context.Context, in *KeyRequest, opts ...grpc.CallOption) (*ValueResponse, error) {
	out := new(ValueResponse)
	if err := c.cc.Invoke(ctx, Method_Get, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) Contains(ctx context.Context, in *KeyRequest, opts ...grpc.CallOption) (*BoolResponse, error) {
	out := new(BoolResponse)
	if err := c.cc.Invoke(ctx, Method_Contains, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) Remove(ctx context.Context, in *KeyRequest, opts ...grpc.CallOption) (*api.Empty, error) {
	out := new(api.Empty)
	if err := c.cc.Invoke(ctx, Method_Remove, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) PopInInterval(ctx context.Context, in *RangeRequest, opts ...grpc.CallOption) (*KVListResponse, error) {
	out := new(KVListResponse)
	if err := c.cc.Invoke(ctx, Method_PopInInterval, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) UpdateHashTable(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*api.Empty, error) {
	out := new(api.Empty)
	if err := c.cc.Invoke(ctx, Method_UpdateHashTable, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) UpdateHashTableWithKeys(ctx context.Context, in *KVListRequest, opts ...grpc.CallOption) (*api.Empty, error) {
	out := new(api.Empty)
	if err := c.cc.Invoke(ctx, Method_UpdateHashTableWithKeys, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) Ping(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*api.Empty, error) {
	out := new(api.Empty)
	if err := c.cc.Invoke(ctx, Method_Ping, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) SerializedFingerTable(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*FingerTableResponse, error) {
	out := new(FingerTableResponse)
	if err := c.cc.Invoke(ctx, Method_SerializedFingerTable, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dHTClient) SerializedHashTableKeys(ctx context.Context, in *api.Empty, opts ...grpc.CallOption) (*HashTableResponse, error) {
	out := new(HashTableResponse)
	if err := c.cc.Invoke(ctx, Method_SerializedHashTableKeys, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DHTServer is the server-side contract implemented by internal/server.
type DHTServer interface {
	Id(context.Context, *api.Empty) (*IdResponse, error)
	Successor(context.Context, *api.Empty) (*NodeResponse, error)
	Predecessor(context.Context, *api.Empty) (*NodeResponse, error)
	SetSuccessor(context.Context, *NodeRef) (*api.Empty, error)
	SetPredecessor(context.Context, *NodeRef) (*api.Empty, error)
	FindSuccessor(context.Context, *IdRequest) (*NodeResponse, error)
	ClosestPrecedingFinger(context.Context, *IdRequest) (*NodeResponse, error)
	UpdateFingerTable(context.Context, *UpdateFingerTableRequest) (*api.Empty, error)
	Notify(context.Context, *NodeRef) (*api.Empty, error)
	Insert(context.Context, *KVRequest) (*api.Empty, error)
	Get(context.Context, *KeyRequest) (*ValueResponse, error)
	Contains(context.Context, *KeyRequest) (*BoolResponse, error)
	Remove(context.Context, *KeyRequest) (*api.Empty, error)
	PopInInterval(context.Context, *RangeRequest) (*KVListResponse, error)
	UpdateHashTable(context.Context, *api.Empty) (*api.Empty, error)
	UpdateHashTableWithKeys(context.Context, *KVListRequest) (*api.Empty, error)
	Ping(context.Context, *api.Empty) (*api.Empty, error)
	SerializedFingerTable(context.Context, *api.Empty) (*FingerTableResponse, error)
	SerializedHashTableKeys(context.Context, *api.Empty) (*HashTableResponse, error)
}

// UnimplementedDHTServer may be embedded to satisfy DHTServer without
// implementing every method up front.
type UnimplementedDHTServer struct{}

func (UnimplementedDHTServer) Id(context.Context, *api.Empty) (*IdResponse, error) {
	return nil, errUnimplemented("Id")
}
func (UnimplementedDHTServer) Successor(context.Context, *api.Empty) (*NodeResponse, error) {
	return nil, errUnimplemented("Successor")
}
func (UnimplementedDHTServer) Predecessor(context.Context, *api.Empty) (*NodeResponse, error) {
	return nil, errUnimplemented("Predecessor")
}
func (UnimplementedDHTServer) SetSuccessor(context.Context, *NodeRef) (*api.Empty, error) {
	return nil, errUnimplemented("SetSuccessor")
}
func (UnimplementedDHTServer) SetPredecessor(context.Context, *NodeRef) (*api.Empty, error) {
	return nil, errUnimplemented("SetPredecessor")
}
func (UnimplementedDHTServer) FindSuccessor(context.Context, *IdRequest) (*NodeResponse, error) {
	return nil, errUnimplemented("FindSuccessor")
}
func (UnimplementedDHTServer) ClosestPrecedingFinger(context.Context, *IdRequest) (*NodeResponse, error) {
	return nil, errUnimplemented("ClosestPrecedingFinger")
}
func (UnimplementedDHTServer) UpdateFingerTable(context.Context, *UpdateFingerTableRequest) (*api.Empty, error) {
	return nil, errUnimplemented("UpdateFingerTable")
}
func (UnimplementedDHTServer) Notify(context.Context, *NodeRef) (*api.Empty, error) {
	return nil, errUnimplemented("Notify")
}
func (UnimplementedDHTServer) Insert(context.Context, *KVRequest) (*api.Empty, error) {
	return nil, errUnimplemented("Insert")
}
func (UnimplementedDHTServer) Get(context.Context, *KeyRequest) (*ValueResponse, error) {
	return nil, errUnimplemented("Get")
}
func (UnimplementedDHTServer) Contains(context.Context, *KeyRequest) (*BoolResponse, error) {
	return nil, errUnimplemented("Contains")
}
func (UnimplementedDHTServer) Remove(context.Context, *KeyRequest) (*api.Empty, error) {
	return nil, errUnimplemented("Remove")
}
func (UnimplementedDHTServer) PopInInterval(context.Context, *RangeRequest) (*KVListResponse, error) {
	return nil, errUnimplemented("PopInInterval")
}
func (UnimplementedDHTServer) UpdateHashTable(context.Context, *api.Empty) (*api.Empty, error) {
	return nil, errUnimplemented("UpdateHashTable")
}
func (UnimplementedDHTServer) UpdateHashTableWithKeys(context.Context, *KVListRequest) (*api.Empty, error) {
	return nil, errUnimplemented("UpdateHashTableWithKeys")
}
func (UnimplementedDHTServer) Ping(context.Context, *api.Empty) (*api.Empty, error) {
	return nil, errUnimplemented("Ping")
}
func (UnimplementedDHTServer) SerializedFingerTable(context.Context, *api.Empty) (*FingerTableResponse, error) {
	return nil, errUnimplemented("SerializedFingerTable")
}
func (UnimplementedDHTServer) SerializedHashTableKeys(context.Context, *api.Empty) (*HashTableResponse, error) {
	return nil, errUnimplemented("SerializedHashTableKeys")
}

func RegisterDHTServer(s grpc.ServiceRegistrar, srv DHTServer) {
	s.RegisterService(&DHT_ServiceDesc, srv)
}

var DHT_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*DHTServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Id", Handler: _DHT_Id_Handler},
		{MethodName: "Successor", Handler: _DHT_Successor_Handler},
		{MethodName: "Predecessor", Handler: _DHT_Predecessor_Handler},
		{MethodName: "SetSuccessor", Handler: _DHT_SetSuccessor_Handler},
		{MethodName: "SetPredecessor", Handler: _DHT_SetPredecessor_Handler},
		{MethodName: "FindSuccessor", Handler: _DHT_FindSuccessor_Handler},
		{MethodName: "ClosestPrecedingFinger", Handler: _DHT_ClosestPrecedingFinger_Handler},
		{MethodName: "UpdateFingerTable", Handler: _DHT_UpdateFingerTable_Handler},
		{MethodName: "Notify", Handler: _DHT_Notify_Handler},
		{MethodName: "Insert", Handler: _DHT_Insert_Handler},
		{MethodName: "Get", Handler: _DHT_Get_Handler},
		{MethodName: "Contains", Handler: _DHT_Contains_Handler},
		{MethodName: "Remove", Handler: _DHT_Remove_Handler},
		{MethodName: "PopInInterval", Handler: _DHT_PopInInterval_Handler},
		{MethodName: "UpdateHashTable", Handler: _DHT_UpdateHashTable_Handler},
		{MethodName: "UpdateHashTableWithKeys", Handler: _DHT_UpdateHashTableWithKeys_Handler},
		{MethodName: "Ping", Handler: _DHT_Ping_Handler},
		{MethodName: "SerializedFingerTable", Handler: _DHT_SerializedFingerTable_Handler},
		{MethodName: "SerializedHashTableKeys", Handler: _DHT_SerializedHashTableKeys_Handler},
	},
	Metadata: "dht/v1/dht.proto",
}

func _DHT_Id_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(api.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).Id(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Id}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).Id(ctx, req.(*api.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_Successor_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(api.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).Successor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Successor}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).Successor(ctx, req.(*api.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_Predecessor_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(api.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).Predecessor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Predecessor}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).Predecessor(ctx, req.(*api.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_SetSuccessor_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(NodeRef)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).SetSuccessor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_SetSuccessor}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).SetSuccessor(ctx, req.(*NodeRef))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_SetPredecessor_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(NodeRef)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).SetPredecessor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_SetPredecessor}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).SetPredecessor(ctx, req.(*NodeRef))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_FindSuccessor_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(IdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).FindSuccessor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_FindSuccessor}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).FindSuccessor(ctx, req.(*IdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_ClosestPrecedingFinger_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(IdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).ClosestPrecedingFinger(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_ClosestPrecedingFinger}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).ClosestPrecedingFinger(ctx, req.(*IdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_UpdateFingerTable_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateFingerTableRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).UpdateFingerTable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_UpdateFingerTable}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).UpdateFingerTable(ctx, req.(*UpdateFingerTableRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_Notify_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(NodeRef)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).Notify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Notify}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).Notify(ctx, req.(*NodeRef))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_Insert_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KVRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).Insert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Insert}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).Insert(ctx, req.(*KVRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_Get_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).Get(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Get}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).Get(ctx, req.(*KeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_Contains_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).Contains(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Contains}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).Contains(ctx, req.(*KeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_Remove_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).Remove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Remove}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).Remove(ctx, req.(*KeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_PopInInterval_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RangeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).PopInInterval(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_PopInInterval}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).PopInInterval(ctx, req.(*RangeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_UpdateHashTable_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(api.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).UpdateHashTable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_UpdateHashTable}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).UpdateHashTable(ctx, req.(*api.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_UpdateHashTableWithKeys_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KVListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).UpdateHashTableWithKeys(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_UpdateHashTableWithKeys}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).UpdateHashTableWithKeys(ctx, req.(*KVListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(api.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_Ping}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).Ping(ctx, req.(*api.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_SerializedFingerTable_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(api.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).SerializedFingerTable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_SerializedFingerTable}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).SerializedFingerTable(ctx, req.(*api.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _DHT_SerializedHashTableKeys_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(api.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DHTServer).SerializedHashTableKeys(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Method_SerializedHashTableKeys}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DHTServer).SerializedHashTableKeys(ctx, req.(*api.Empty))
	}
	return interceptor(ctx, in, info, handler)
}
