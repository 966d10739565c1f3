// Package wire encodes messages in a protobuf-compatible layout.
//
// The same layout is used for values persisted in Badger and for the
// payloads exchanged over gRPC:
//
//	message Message {
//	  string id = 1;
//	  string title = 2;
//	  string body = 3;
//	  string attachment_url = 4;
//	  fixed64 created_at = 5;
//	  optional fixed64 updated_at = 6;
//	}
//
// MessagePayload reuses fields 2 to 4, so a Message can be decoded as a payload.
package wire

import (
	"fmt"
	"message-board/domain"
	"message-board/errors"

	"github.com/samber/lo"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	idField            protowire.Number = 1
	titleField         protowire.Number = 2
	bodyField          protowire.Number = 3
	attachmentURLField protowire.Number = 4
	createdAtField     protowire.Number = 5
	updatedAtField     protowire.Number = 6
)

// MarshalMessage encodes m. It never fails.
func MarshalMessage(m domain.Message) []byte {
	return AppendMessage(nil, m)
}

// AppendMessage appends the encoding of m to b.
func AppendMessage(b []byte, m domain.Message) []byte {
	b = appendString(b, idField, m.ID)
	b = AppendPayload(b, m.Payload())
	b = protowire.AppendTag(b, createdAtField, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, m.CreatedAt)
	if m.UpdatedAt != nil {
		b = protowire.AppendTag(b, updatedAtField, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, *m.UpdatedAt)
	}
	return b
}

// UnmarshalMessage decodes a Message. Unknown fields are skipped.
func UnmarshalMessage(b []byte) (domain.Message, error) {
	var m domain.Message
	err := Walk(b, func(num protowire.Number, typ protowire.Type, value []byte) int {
		switch {
		case num == idField && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(value)
			m.ID = s
			return n
		case num == titleField && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(value)
			m.Title = s
			return n
		case num == bodyField && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(value)
			m.Body = s
			return n
		case num == attachmentURLField && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(value)
			m.AttachmentURL = s
			return n
		case num == createdAtField && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(value)
			m.CreatedAt = v
			return n
		case num == updatedAtField && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(value)
			m.UpdatedAt = lo.ToPtr(v)
			return n
		}
		return 0
	})
	if err != nil {
		return domain.Message{}, err
	}
	return m, nil
}

// AppendPayload appends the payload fields to b.
func AppendPayload(b []byte, p domain.MessagePayload) []byte {
	b = appendString(b, titleField, p.Title)
	b = appendString(b, bodyField, p.Body)
	b = appendString(b, attachmentURLField, p.AttachmentURL)
	return b
}

// UnmarshalPayload decodes the payload fields, ignoring every other field.
func UnmarshalPayload(b []byte) (domain.MessagePayload, error) {
	m, err := UnmarshalMessage(b)
	if err != nil {
		return domain.MessagePayload{}, err
	}
	return m.Payload(), nil
}

// Walk calls visit for each field in b. visit returns how many bytes of value
// it consumed; zero means the field is unknown and gets skipped.
func Walk(b []byte, visit func(num protowire.Number, typ protowire.Type, value []byte) int) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return malformed(n)
		}
		b = b[n:]
		n = visit(num, typ, b)
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return malformed(n)
		}
		b = b[n:]
	}
	return nil
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func malformed(n int) error {
	return fmt.Errorf("%w: %v", errors.ErrMalformedRecord, protowire.ParseError(n))
}
