package grpc

import (
	"context"
	"message-board/wire"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	MessageService_ServiceName                  = "messageboard.v1.MessageService"
	MessageService_ListMessages_FullMethodName  = "/messageboard.v1.MessageService/ListMessages"
	MessageService_GetMessage_FullMethodName    = "/messageboard.v1.MessageService/GetMessage"
	MessageService_AddMessage_FullMethodName    = "/messageboard.v1.MessageService/AddMessage"
	MessageService_UpdateMessage_FullMethodName = "/messageboard.v1.MessageService/UpdateMessage"
	MessageService_DeleteMessage_FullMethodName = "/messageboard.v1.MessageService/DeleteMessage"
)

// MessageServiceServer is the server API for the message board.
type MessageServiceServer interface {
	ListMessages(context.Context, *wire.Empty) (*wire.ListMessagesResponse, error)
	GetMessage(context.Context, *wire.MessageRequest) (*wire.MessageResponse, error)
	AddMessage(context.Context, *wire.AddMessageRequest) (*wire.MessageResponse, error)
	UpdateMessage(context.Context, *wire.UpdateMessageRequest) (*wire.MessageResponse, error)
	DeleteMessage(context.Context, *wire.MessageRequest) (*wire.MessageResponse, error)
}

// UnimplementedMessageServiceServer answers codes.Unimplemented to every call.
type UnimplementedMessageServiceServer struct{}

func (UnimplementedMessageServiceServer) ListMessages(context.Context, *wire.Empty) (*wire.ListMessagesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMessages not implemented")
}

func (UnimplementedMessageServiceServer) GetMessage(context.Context, *wire.MessageRequest) (*wire.MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMessage not implemented")
}

func (UnimplementedMessageServiceServer) AddMessage(context.Context, *wire.AddMessageRequest) (*wire.MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddMessage not implemented")
}

func (UnimplementedMessageServiceServer) UpdateMessage(context.Context, *wire.UpdateMessageRequest) (*wire.MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateMessage not implemented")
}

func (UnimplementedMessageServiceServer) DeleteMessage(context.Context, *wire.MessageRequest) (*wire.MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteMessage not implemented")
}

// MessageService_ServiceDesc describes the service for grpc.ServiceRegistrar.
var MessageService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: MessageService_ServiceName,
	HandlerType: (*MessageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListMessages",
			Handler: unaryHandler(MessageService_ListMessages_FullMethodName,
				func(s MessageServiceServer, ctx context.Context, in *wire.Empty) (any, error) {
					return s.ListMessages(ctx, in)
				}),
		},
		{
			MethodName: "GetMessage",
			Handler: unaryHandler(MessageService_GetMessage_FullMethodName,
				func(s MessageServiceServer, ctx context.Context, in *wire.MessageRequest) (any, error) {
					return s.GetMessage(ctx, in)
				}),
		},
		{
			MethodName: "AddMessage",
			Handler: unaryHandler(MessageService_AddMessage_FullMethodName,
				func(s MessageServiceServer, ctx context.Context, in *wire.AddMessageRequest) (any, error) {
					return s.AddMessage(ctx, in)
				}),
		},
		{
			MethodName: "UpdateMessage",
			Handler: unaryHandler(MessageService_UpdateMessage_FullMethodName,
				func(s MessageServiceServer, ctx context.Context, in *wire.UpdateMessageRequest) (any, error) {
					return s.UpdateMessage(ctx, in)
				}),
		},
		{
			MethodName: "DeleteMessage",
			Handler: unaryHandler(MessageService_DeleteMessage_FullMethodName,
				func(s MessageServiceServer, ctx context.Context, in *wire.MessageRequest) (any, error) {
					return s.DeleteMessage(ctx, in)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "messageboard/v1/message.proto",
}

func RegisterMessageServiceServer(s grpc.ServiceRegistrar, srv MessageServiceServer) {
	s.RegisterService(&MessageService_ServiceDesc, srv)
}

// unaryHandler decodes the request into a fresh Req and runs call through the
// server interceptor chain.
func unaryHandler[Req any](
	fullMethod string,
	call func(MessageServiceServer, context.Context, *Req) (any, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MessageServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(MessageServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// MessageServiceClient is the client API for the message board.
type MessageServiceClient interface {
	ListMessages(ctx context.Context, in *wire.Empty, opts ...grpc.CallOption) (*wire.ListMessagesResponse, error)
	GetMessage(ctx context.Context, in *wire.MessageRequest, opts ...grpc.CallOption) (*wire.MessageResponse, error)
	AddMessage(ctx context.Context, in *wire.AddMessageRequest, opts ...grpc.CallOption) (*wire.MessageResponse, error)
	UpdateMessage(ctx context.Context, in *wire.UpdateMessageRequest, opts ...grpc.CallOption) (*wire.MessageResponse, error)
	DeleteMessage(ctx context.Context, in *wire.MessageRequest, opts ...grpc.CallOption) (*wire.MessageResponse, error)
}

type messageServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMessageServiceClient wraps cc. Every call forces the wire codec, so cc
// needs no codec configuration of its own.
func NewMessageServiceClient(cc grpc.ClientConnInterface) MessageServiceClient {
	return &messageServiceClient{cc: cc}
}

func (c *messageServiceClient) ListMessages(ctx context.Context, in *wire.Empty, opts ...grpc.CallOption) (*wire.ListMessagesResponse, error) {
	out := new(wire.ListMessagesResponse)
	if err := c.cc.Invoke(ctx, MessageService_ListMessages_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) GetMessage(ctx context.Context, in *wire.MessageRequest, opts ...grpc.CallOption) (*wire.MessageResponse, error) {
	out := new(wire.MessageResponse)
	if err := c.cc.Invoke(ctx, MessageService_GetMessage_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) AddMessage(ctx context.Context, in *wire.AddMessageRequest, opts ...grpc.CallOption) (*wire.MessageResponse, error) {
	out := new(wire.MessageResponse)
	if err := c.cc.Invoke(ctx, MessageService_AddMessage_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) UpdateMessage(ctx context.Context, in *wire.UpdateMessageRequest, opts ...grpc.CallOption) (*wire.MessageResponse, error) {
	out := new(wire.MessageResponse)
	if err := c.cc.Invoke(ctx, MessageService_UpdateMessage_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) DeleteMessage(ctx context.Context, in *wire.MessageRequest, opts ...grpc.CallOption) (*wire.MessageResponse, error) {
	out := new(wire.MessageResponse)
	if err := c.cc.Invoke(ctx, MessageService_DeleteMessage_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.ForceCodec(wire.Codec{})}, opts...)
}
