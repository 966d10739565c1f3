package repositories

import (
	"log/slog"
	"message-board/domain"
	"message-board/errors"
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newInMemoryRepository(t *testing.T, limits StoreLimits) MessageRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repository, err := NewMessageRepository(db, slog.Default(), limits)
	require.NoError(t, err)
	return repository
}

func Test_Get_Missing_Message(t *testing.T) {
	req := require.New(t)
	repository := newInMemoryRepository(t, DefaultStoreLimits())

	_, found, err := repository.Get("nope")

	req.NoError(err)
	req.False(found)
}

func Test_Insert_Then_Get(t *testing.T) {
	req := require.New(t)
	repository := newInMemoryRepository(t, DefaultStoreLimits())
	message := domain.Message{ID: "a", Title: "T", Body: "B", CreatedAt: 10}

	previous, existed, err := repository.Insert(message.ID, message)
	req.NoError(err)
	req.False(existed)
	req.Equal(domain.Message{}, previous)

	fetched, found, err := repository.Get("a")
	req.NoError(err)
	req.True(found)
	req.Equal(message, fetched)
}

func Test_Insert_Overwrites_And_Returns_Previous(t *testing.T) {
	req := require.New(t)
	repository := newInMemoryRepository(t, DefaultStoreLimits())
	first := domain.Message{ID: "a", Title: "T", CreatedAt: 10}
	second := domain.Message{ID: "a", Title: "T2", CreatedAt: 10, UpdatedAt: lo.ToPtr(uint64(20))}

	_, _, err := repository.Insert("a", first)
	req.NoError(err)
	previous, existed, err := repository.Insert("a", second)
	req.NoError(err)
	req.True(existed)
	req.Equal(first, previous)

	values, err := repository.Values()
	req.NoError(err)
	req.Equal([]domain.Message{second}, values)
}

func Test_Values_Then_Remove(t *testing.T) {
	req := require.New(t)
	repository := newInMemoryRepository(t, DefaultStoreLimits())

	values, err := repository.Values()
	req.NoError(err)
	req.NotNil(values)
	req.Empty(values)

	for _, id := range []string{"c", "a", "b"} {
		_, _, err = repository.Insert(id, domain.Message{ID: id, Title: strings.ToUpper(id)})
		req.NoError(err)
	}

	values, err = repository.Values()
	req.NoError(err)
	req.Equal([]string{"a", "b", "c"}, lo.Map(values, func(m domain.Message, _ int) string { return m.ID }))

	removed, existed, err := repository.Remove("b")
	req.NoError(err)
	req.True(existed)
	req.Equal("B", removed.Title)

	_, existed, err = repository.Remove("b")
	req.NoError(err)
	req.False(existed)

	values, err = repository.Values()
	req.NoError(err)
	req.ElementsMatch([]string{"a", "c"}, lo.Map(values, func(m domain.Message, _ int) string { return m.ID }))
}

func Test_Values_Ignores_Other_Prefixes(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	repository, err := NewMessageRepository(db, slog.Default(), DefaultStoreLimits())
	req.NoError(err)

	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("meta:schema"), []byte("garbage"))
	}))
	_, _, err = repository.Insert("a", domain.Message{ID: "a"})
	req.NoError(err)

	values, err := repository.Values()
	req.NoError(err)
	req.Len(values, 1)
}

func Test_Corrupted_Value_Is_Reported(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	repository, err := NewMessageRepository(db, slog.Default(), DefaultStoreLimits())
	req.NoError(err)

	// A length prefix pointing past the end of the value
	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set(key("bad"), []byte{0x0a, 0x7f, 'x'})
	}))

	_, _, err = repository.Get("bad")
	req.ErrorIs(err, errors.ErrMalformedRecord)
	_, err = repository.Values()
	req.ErrorIs(err, errors.ErrMalformedRecord)
}

func Test_Limits_Are_Enforced(t *testing.T) {
	req := require.New(t)
	repository := newInMemoryRepository(t, StoreLimits{MaxKeySize: 8, MaxValueSize: 64})

	_, _, err := repository.Insert("much-too-long-id", domain.Message{ID: "much-too-long-id"})
	req.ErrorIs(err, errors.ErrRecordTooLarge)

	_, _, err = repository.Insert("short", domain.Message{ID: "short", Body: strings.Repeat("x", 100)})
	req.ErrorIs(err, errors.ErrRecordTooLarge)

	_, found, err := repository.Get("short")
	req.NoError(err)
	req.False(found)
}

func Test_Invalid_Limits_Are_Rejected(t *testing.T) {
	req := require.New(t)
	_, err := NewMessageRepository(nil, slog.Default(), StoreLimits{MaxKeySize: 0, MaxValueSize: 10})
	req.ErrorIs(err, errors.ErrInvalidConfig)
}

func Test_Messages_Survive_Reopen(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	message := domain.Message{ID: "a", Title: "persisted", CreatedAt: 1, UpdatedAt: lo.ToPtr(uint64(2))}

	db, err := badger.Open(badger.DefaultOptions(dir).WithSyncWrites(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	repository, err := NewMessageRepository(db, slog.Default(), DefaultStoreLimits())
	req.NoError(err)
	_, _, err = repository.Insert(message.ID, message)
	req.NoError(err)
	req.NoError(db.Close())

	db, err = badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	repository, err = NewMessageRepository(db, slog.Default(), DefaultStoreLimits())
	req.NoError(err)

	fetched, found, err := repository.Get("a")
	req.NoError(err)
	req.True(found)
	req.Equal(message, fetched)
}
