package server

import (
	"context"
	"message-board/domain"
	"message-board/errors"
	grpc2 "message-board/grpc"
	"message-board/services"
	"message-board/wire"
)

type MessageServer struct {
	grpc2.UnimplementedMessageServiceServer
	messageService services.IMessageService
}

// NewMessageServer exposes the message service over gRPC.
func NewMessageServer(messageService services.IMessageService) *MessageServer {
	return &MessageServer{messageService: messageService}
}

// ListMessages returns every stored message.
func (s *MessageServer) ListMessages(_ context.Context, _ *wire.Empty) (*wire.ListMessagesResponse, error) {
	messages, err := s.messageService.ListMessages()
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &wire.ListMessagesResponse{Messages: messages}, nil
}

// GetMessage answers NotFound when the id is unknown.
func (s *MessageServer) GetMessage(_ context.Context, in *wire.MessageRequest) (*wire.MessageResponse, error) {
	return toResponse(s.messageService.GetMessage(in.ID))
}

// AddMessage stores the payload under a freshly generated id.
func (s *MessageServer) AddMessage(_ context.Context, in *wire.AddMessageRequest) (*wire.MessageResponse, error) {
	return toResponse(s.messageService.AddMessage(in.Payload))
}

// UpdateMessage overwrites the payload of an existing message.
func (s *MessageServer) UpdateMessage(_ context.Context, in *wire.UpdateMessageRequest) (*wire.MessageResponse, error) {
	return toResponse(s.messageService.UpdateMessage(in.ID, in.Payload))
}

// DeleteMessage removes a message and returns it as it was stored.
func (s *MessageServer) DeleteMessage(_ context.Context, in *wire.MessageRequest) (*wire.MessageResponse, error) {
	return toResponse(s.messageService.DeleteMessage(in.ID))
}

func toResponse(message domain.Message, err error) (*wire.MessageResponse, error) {
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &wire.MessageResponse{Message: message}, nil
}
