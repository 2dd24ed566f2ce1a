// Package v1alpha1 serves stored slot data over gRPC. Messages are
// google.protobuf.Struct values, so no generated stubs are needed.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "aus.slotdata.v1alpha1.SlotDataService"

const (
	getSlotDataMethod = "/" + ServiceName + "/GetSlotData"
	listSlotsMethod   = "/" + ServiceName + "/ListSlots"
)

// SlotDataServiceServer is the server side of the slot data service
type SlotDataServiceServer interface {
	GetSlotData(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListSlots(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterSlotDataServiceServer registers srv on s
func RegisterSlotDataServiceServer(s grpc.ServiceRegistrar, srv SlotDataServiceServer) {
	s.RegisterService(&SlotDataServiceDesc, srv)
}

// SlotDataServiceDesc describes the slot data service for grpc.Server
var SlotDataServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SlotDataServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetSlotData", Handler: getSlotDataHandler},
		{MethodName: "ListSlots", Handler: listSlotsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "aus/slotdata/v1alpha1/slot_data.proto",
}

func getSlotDataHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SlotDataServiceServer).GetSlotData(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getSlotDataMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SlotDataServiceServer).GetSlotData(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func listSlotsHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SlotDataServiceServer).ListSlots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: listSlotsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SlotDataServiceServer).ListSlots(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
