package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "hotel.api.v1alpha1.BookingService"

// Full method names
const (
	BookingServiceGetHotelFullMethodName           = "/" + ServiceName + "/GetHotel"
	BookingServiceBookRoomsFullMethodName          = "/" + ServiceName + "/BookRooms"
	BookingServiceResetBookingsFullMethodName      = "/" + ServiceName + "/ResetBookings"
	BookingServiceRandomizeOccupancyFullMethodName = "/" + ServiceName + "/RandomizeOccupancy"
)

// BookingServiceServer is the server API for the booking service. Requests
// and responses are google.protobuf.Struct documents.
type BookingServiceServer interface {
	GetHotel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	BookRooms(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResetBookings(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RandomizeOccupancy(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterBookingServiceServer registers srv with the gRPC server
func RegisterBookingServiceServer(s grpc.ServiceRegistrar, srv BookingServiceServer) {
	s.RegisterService(&BookingServiceDesc, srv)
}

type unaryMethod func(BookingServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unaryHandler builds the method handler the way protoc-gen-go-grpc does
func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BookingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(BookingServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// BookingServiceDesc is the grpc.ServiceDesc for the booking service
var BookingServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BookingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetHotel",
			Handler:    unaryHandler(BookingServiceGetHotelFullMethodName, BookingServiceServer.GetHotel),
		},
		{
			MethodName: "BookRooms",
			Handler:    unaryHandler(BookingServiceBookRoomsFullMethodName, BookingServiceServer.BookRooms),
		},
		{
			MethodName: "ResetBookings",
			Handler:    unaryHandler(BookingServiceResetBookingsFullMethodName, BookingServiceServer.ResetBookings),
		},
		{
			MethodName: "RandomizeOccupancy",
			Handler:    unaryHandler(BookingServiceRandomizeOccupancyFullMethodName, BookingServiceServer.RandomizeOccupancy),
		},
	},
	Streams: []grpc.StreamDesc{},
}
