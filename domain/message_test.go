package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewMessage_CopiesPayloadVerbatim(t *testing.T) {
	req := require.New(t)
	at := time.Unix(0, 1_700_000_000_000_000_000)
	payload := MessagePayload{Title: "  T ", Body: "", AttachmentURL: "not a url"}

	msg := NewMessage("id-1", at, payload)

	req.Equal("id-1", msg.ID)
	req.Equal(payload, msg.Payload())
	req.Equal(uint64(1_700_000_000_000_000_000), msg.CreatedAt)
	req.Nil(msg.UpdatedAt)
}

func TestMessage_Update_PreservesIdentity(t *testing.T) {
	req := require.New(t)
	t0 := time.Unix(0, 1_000)
	t1 := time.Unix(0, 2_000)
	msg := NewMessage("id-1", t0, MessagePayload{Title: "T", Body: "B"})

	updated := msg.Update(MessagePayload{Title: "T2", Body: "B"}, t1)

	req.Equal("id-1", updated.ID)
	req.Equal(uint64(1_000), updated.CreatedAt)
	req.Equal("T2", updated.Title)
	req.NotNil(updated.UpdatedAt)
	req.Equal(uint64(2_000), *updated.UpdatedAt)
	// The receiver is left untouched
	req.Nil(msg.UpdatedAt)
	req.Equal("T", msg.Title)
}

func TestMessage_Update_ClockSteppingBackwards(t *testing.T) {
	req := require.New(t)
	msg := NewMessage("id-1", time.Unix(0, 5_000), MessagePayload{})

	first := msg.Update(MessagePayload{}, time.Unix(0, 3_000))
	req.Equal(uint64(5_000), *first.UpdatedAt)

	second := msg.Update(MessagePayload{}, time.Unix(0, 9_000)).Update(MessagePayload{}, time.Unix(0, 7_000))
	req.Equal(uint64(9_000), *second.UpdatedAt)
	req.Equal(uint64(9_000), second.LastModified())
}

func TestTimestamp_BeforeEpoch(t *testing.T) {
	req := require.New(t)
	req.Equal(uint64(0), Timestamp(time.Unix(-10, 0)))
	at := time.Date(2024, 3, 1, 12, 0, 0, 42, time.UTC)
	req.Equal(at, Time(Timestamp(at)))
}
