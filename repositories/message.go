//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"message-board/domain"
	"message-board/errors"
	"message-board/wire"

	"github.com/dgraph-io/badger/v4"
)

// MessagePrefix namespaces message keys inside the Badger keyspace.
const MessagePrefix = "msg:"

// IMessageRepository is the ordered record store behind the message service.
// Absence is reported through the boolean, never through an error.
type IMessageRepository interface {
	Get(id string) (domain.Message, bool, error)
	Values() ([]domain.Message, error)
	Insert(id string, message domain.Message) (domain.Message, bool, error)
	Remove(id string) (domain.Message, bool, error)
}

// StoreLimits bounds the size of ids and encoded records.
type StoreLimits struct {
	MaxKeySize   int
	MaxValueSize int
}

func DefaultStoreLimits() StoreLimits {
	return StoreLimits{MaxKeySize: 44, MaxValueSize: 1024}
}

type MessageRepository struct {
	db     *badger.DB
	log    *slog.Logger
	limits StoreLimits
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limits StoreLimits) (MessageRepository, error) {
	if limits.MaxKeySize <= 0 || limits.MaxValueSize <= 0 {
		return MessageRepository{}, fmt.Errorf("%w: store limits must be positive, got key=%d value=%d",
			errors.ErrInvalidConfig, limits.MaxKeySize, limits.MaxValueSize)
	}
	return MessageRepository{db: db, log: log, limits: limits}, nil
}

// Get retrieves the message stored under id.
func (m MessageRepository) Get(id string) (domain.Message, bool, error) {
	var message domain.Message
	var found bool
	err := m.db.View(func(txn *badger.Txn) error {
		var err error
		message, found, err = get(txn, id)
		return err
	})
	if err != nil {
		return domain.Message{}, false, err
	}
	return message, found, nil
}

// Values returns every stored message using a prefix scan.
// Keys embed the id, so messages come back in id order.
func (m MessageRepository) Values() ([]domain.Message, error) {
	messages := make([]domain.Message, 0)
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(MessagePrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(value []byte) error {
				message, err := wire.UnmarshalMessage(value)
				if err != nil {
					return fmt.Errorf("decoding %s: %w", item.Key(), err)
				}
				messages = append(messages, message)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// Insert upserts message under id and returns the value it replaced, if any.
// Lookup and write share one transaction.
func (m MessageRepository) Insert(id string, message domain.Message) (domain.Message, bool, error) {
	if err := m.checkKey(id); err != nil {
		return domain.Message{}, false, err
	}
	value := wire.MarshalMessage(message)
	if len(value) > m.limits.MaxValueSize {
		return domain.Message{}, false, fmt.Errorf("%w: value of %d bytes exceeds %d",
			errors.ErrRecordTooLarge, len(value), m.limits.MaxValueSize)
	}

	var previous domain.Message
	var existed bool
	err := m.db.Update(func(txn *badger.Txn) error {
		var err error
		if previous, existed, err = get(txn, id); err != nil {
			return err
		}
		return txn.Set(key(id), value)
	})
	if err != nil {
		return domain.Message{}, false, err
	}
	m.log.Debug("Message stored", "id", id, "bytes", len(value), "replaced", existed)
	return previous, existed, nil
}

// Remove deletes the message stored under id and returns it.
func (m MessageRepository) Remove(id string) (domain.Message, bool, error) {
	var removed domain.Message
	var existed bool
	err := m.db.Update(func(txn *badger.Txn) error {
		var err error
		if removed, existed, err = get(txn, id); err != nil || !existed {
			return err
		}
		return txn.Delete(key(id))
	})
	if err != nil {
		return domain.Message{}, false, err
	}
	if existed {
		m.log.Debug("Message removed", "id", id)
	}
	return removed, existed, nil
}

func (m MessageRepository) checkKey(id string) error {
	if len(id) > m.limits.MaxKeySize {
		return fmt.Errorf("%w: id of %d bytes exceeds %d",
			errors.ErrRecordTooLarge, len(id), m.limits.MaxKeySize)
	}
	return nil
}

func get(txn *badger.Txn, id string) (domain.Message, bool, error) {
	item, err := txn.Get(key(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Message{}, false, nil
	}
	if err != nil {
		return domain.Message{}, false, err
	}
	var message domain.Message
	err = item.Value(func(value []byte) error {
		message, err = wire.UnmarshalMessage(value)
		return err
	})
	if err != nil {
		return domain.Message{}, false, fmt.Errorf("decoding %s: %w", item.Key(), err)
	}
	return message, true, nil
}

func key(id string) []byte {
	return []byte(MessagePrefix + id)
}
