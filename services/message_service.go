//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"message-board/domain"
	"message-board/errors"
	"message-board/repositories"
	"sync"
	"time"

	"github.com/google/uuid"
)

type IMessageService interface {
	ListMessages() ([]domain.Message, error)
	GetMessage(id string) (domain.Message, error)
	AddMessage(payload domain.MessagePayload) (domain.Message, error)
	UpdateMessage(id string, payload domain.MessagePayload) (domain.Message, error)
	DeleteMessage(id string) (domain.Message, error)
}

// IDGenerator produces a fresh unique identifier on each call.
type IDGenerator func() string

// Clock returns the current time.
type Clock func() time.Time

// MessageService implements the CRUD operations over the record store.
// Mutations are serialized so that update's lookup-then-write cannot
// interleave with another writer.
type MessageService struct {
	repository repositories.IMessageRepository
	log        *slog.Logger
	newID      IDGenerator
	now        Clock
	mu         sync.Mutex
}

// NewMessageService builds the service. A nil generator falls back to random
// UUIDs and a nil clock to time.Now.
func NewMessageService(log *slog.Logger, repository repositories.IMessageRepository, newID IDGenerator, now Clock) *MessageService {
	if newID == nil {
		newID = uuid.NewString
	}
	if now == nil {
		now = time.Now
	}
	return &MessageService{repository: repository, log: log, newID: newID, now: now}
}

// ListMessages returns every stored message. The slice is empty, not nil,
// when nothing is stored.
func (s *MessageService) ListMessages() ([]domain.Message, error) {
	messages, err := s.repository.Values()
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}

func (s *MessageService) GetMessage(id string) (domain.Message, error) {
	message, found, err := s.repository.Get(id)
	if err != nil {
		return domain.Message{}, fmt.Errorf("getting message %s: %w", id, err)
	}
	if !found {
		return domain.Message{}, errors.NewNotFoundError(id)
	}
	return message, nil
}

// AddMessage stores a new message with a generated id. Identical payloads
// produce distinct records.
func (s *MessageService) AddMessage(payload domain.MessagePayload) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := domain.NewMessage(s.newID(), s.now(), payload)
	if _, _, err := s.repository.Insert(message.ID, message); err != nil {
		return domain.Message{}, fmt.Errorf("adding message: %w", err)
	}
	s.log.Info("Message added", "id", message.ID)
	return message, nil
}

// UpdateMessage overwrites the payload fields of an existing message and
// stamps UpdatedAt. ID and CreatedAt are kept.
func (s *MessageService) UpdateMessage(id string, payload domain.MessagePayload) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message, found, err := s.repository.Get(id)
	if err != nil {
		return domain.Message{}, fmt.Errorf("getting message %s: %w", id, err)
	}
	if !found {
		return domain.Message{}, errors.NewNotFoundError(id)
	}

	updated := message.Update(payload, s.now())
	if _, _, err = s.repository.Insert(updated.ID, updated); err != nil {
		return domain.Message{}, fmt.Errorf("updating message %s: %w", id, err)
	}
	s.log.Info("Message updated", "id", id, "updated_at", *updated.UpdatedAt)
	return updated, nil
}

// DeleteMessage removes a message and returns the record as it was stored.
func (s *MessageService) DeleteMessage(id string) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, existed, err := s.repository.Remove(id)
	if err != nil {
		return domain.Message{}, fmt.Errorf("deleting message %s: %w", id, err)
	}
	if !existed {
		return domain.Message{}, errors.NewNotFoundError(id)
	}
	s.log.Info("Message deleted", "id", id)
	return removed, nil
}
