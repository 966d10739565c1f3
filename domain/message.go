// Package domain contains core concepts of the message board.
// This file defines the Message record and the rules applied when it is
// created or updated.
package domain

import (
	"time"

	"github.com/samber/lo"
)

// Message is a stored note. CreatedAt and UpdatedAt are Unix nanoseconds.
// UpdatedAt stays nil until the first update.
type Message struct {
	ID            string
	Title         string
	Body          string
	AttachmentURL string
	CreatedAt     uint64
	UpdatedAt     *uint64
}

// MessagePayload is the client-supplied part of a Message.
type MessagePayload struct {
	Title         string
	Body          string
	AttachmentURL string
}

// NewMessage builds a fresh record. Payload fields are copied verbatim.
func NewMessage(id string, at time.Time, payload MessagePayload) Message {
	return Message{
		ID:            id,
		Title:         payload.Title,
		Body:          payload.Body,
		AttachmentURL: payload.AttachmentURL,
		CreatedAt:     Timestamp(at),
	}
}

// Update returns a copy of m carrying the payload fields and a new UpdatedAt.
// ID and CreatedAt are preserved. UpdatedAt never moves before CreatedAt or
// before a previous update, even if the clock stepped backwards.
func (m Message) Update(payload MessagePayload, at time.Time) Message {
	updatedAt := lo.Max([]uint64{Timestamp(at), m.CreatedAt, m.LastModified()})
	m.Title = payload.Title
	m.Body = payload.Body
	m.AttachmentURL = payload.AttachmentURL
	m.UpdatedAt = lo.ToPtr(updatedAt)
	return m
}

// LastModified is UpdatedAt when present, CreatedAt otherwise.
func (m Message) LastModified() uint64 {
	if m.UpdatedAt != nil {
		return *m.UpdatedAt
	}
	return m.CreatedAt
}

// Payload extracts the client-supplied fields.
func (m Message) Payload() MessagePayload {
	return MessagePayload{
		Title:         m.Title,
		Body:          m.Body,
		AttachmentURL: m.AttachmentURL,
	}
}

// Timestamp converts t to Unix nanoseconds. Instants before the epoch map to zero.
func Timestamp(t time.Time) uint64 {
	nanos := t.UnixNano()
	if nanos < 0 {
		return 0
	}
	return uint64(nanos)
}

// Time converts Unix nanoseconds back to a UTC time.
func Time(nanos uint64) time.Time {
	return time.Unix(0, int64(nanos)).UTC()
}
