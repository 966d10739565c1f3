package server

import (
	"context"
	"fmt"
	"log/slog"
	"message-board/domain"
	"message-board/errors"
	grpc2 "message-board/grpc"
	"message-board/mocks"
	"message-board/observability"
	"message-board/repositories"
	"message-board/services"
	"message-board/wire"
	"net"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// startServer serves svc on an in-process listener and returns a client.
func startServer(t *testing.T, svc services.IMessageService) grpc2.MessageServiceClient {
	t.Helper()
	listener := bufconn.Listen(1024 * 1024)
	s := grpc2.NewServer(slog.Default(), observability.NewMonitoringManager())
	grpc2.RegisterMessageServiceServer(s, NewMessageServer(svc))
	go func() { _ = s.Serve(listener) }()
	t.Cleanup(s.Stop)

	conn, err := grpc2.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return grpc2.NewMessageServiceClient(conn)
}

func newBadgerService(t *testing.T, now services.Clock) services.IMessageService {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repository, err := repositories.NewMessageRepository(db, slog.Default(), repositories.DefaultStoreLimits())
	require.NoError(t, err)
	return services.NewMessageService(slog.Default(), repository, nil, now)
}

func TestMessageServer_CRUDOverGRPC(t *testing.T) {
	req := require.New(t)
	at := time.Unix(1_700_000_000, 0)
	client := startServer(t, newBadgerService(t, func() time.Time { return at }))
	ctx := context.Background()

	added, err := client.AddMessage(ctx, &wire.AddMessageRequest{
		Payload: domain.MessagePayload{Title: "T", Body: "B"},
	})
	req.NoError(err)
	req.NotEmpty(added.Message.ID)
	req.Equal(domain.Timestamp(at), added.Message.CreatedAt)
	req.Nil(added.Message.UpdatedAt)

	fetched, err := client.GetMessage(ctx, &wire.MessageRequest{ID: added.Message.ID})
	req.NoError(err)
	req.Equal(added.Message, fetched.Message)

	at = at.Add(time.Second)
	updated, err := client.UpdateMessage(ctx, &wire.UpdateMessageRequest{
		ID:      added.Message.ID,
		Payload: domain.MessagePayload{Title: "T2", Body: "B"},
	})
	req.NoError(err)
	req.Equal("T2", updated.Message.Title)
	req.Equal(added.Message.CreatedAt, updated.Message.CreatedAt)
	req.NotNil(updated.Message.UpdatedAt)
	req.Equal(domain.Timestamp(at), *updated.Message.UpdatedAt)

	list, err := client.ListMessages(ctx, &wire.Empty{})
	req.NoError(err)
	req.Equal([]domain.Message{updated.Message}, list.Messages)

	deleted, err := client.DeleteMessage(ctx, &wire.MessageRequest{ID: added.Message.ID})
	req.NoError(err)
	req.Equal(updated.Message, deleted.Message)

	list, err = client.ListMessages(ctx, &wire.Empty{})
	req.NoError(err)
	req.Empty(list.Messages)
}

func TestMessageServer_NotFound(t *testing.T) {
	client := startServer(t, newBadgerService(t, nil))
	ctx := context.Background()

	calls := map[string]func() error{
		"get": func() error {
			_, err := client.GetMessage(ctx, &wire.MessageRequest{ID: "ghost"})
			return err
		},
		"update": func() error {
			_, err := client.UpdateMessage(ctx, &wire.UpdateMessageRequest{ID: "ghost"})
			return err
		},
		"delete": func() error {
			_, err := client.DeleteMessage(ctx, &wire.MessageRequest{ID: "ghost"})
			return err
		},
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			st, ok := status.FromError(call())
			req.True(ok)
			req.Equal(codes.NotFound, st.Code())
			req.Equal("Message not found with id=ghost", st.Message())
		})
	}
}

func TestMessageServer_ErrorMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := mocks.NewMockIMessageService(ctrl)
	client := startServer(t, mockService)
	ctx := context.Background()

	t.Run("should hide storage failures behind Internal", func(t *testing.T) {
		req := require.New(t)
		mockService.EXPECT().ListMessages().Return(nil, fmt.Errorf("badger: closed")).Times(1)

		_, err := client.ListMessages(ctx, &wire.Empty{})

		req.Equal(codes.Internal, status.Code(err))
		req.NotContains(status.Convert(err).Message(), "badger")
	})

	t.Run("should report oversized records as ResourceExhausted", func(t *testing.T) {
		req := require.New(t)
		mockService.EXPECT().
			AddMessage(domain.MessagePayload{Body: "huge"}).
			Return(domain.Message{}, fmt.Errorf("adding message: %w", errors.ErrRecordTooLarge)).
			Times(1)

		_, err := client.AddMessage(ctx, &wire.AddMessageRequest{Payload: domain.MessagePayload{Body: "huge"}})

		req.Equal(codes.ResourceExhausted, status.Code(err))
	})
}
