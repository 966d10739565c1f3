package wire

import (
	"message-board/domain"

	"google.golang.org/protobuf/encoding/protowire"
)

// Marshaler is implemented by every request and response exchanged over gRPC.
type Marshaler interface {
	MarshalWire() ([]byte, error)
}

// Unmarshaler is implemented by pointers to requests and responses.
type Unmarshaler interface {
	UnmarshalWire(b []byte) error
}

// Empty carries no field.
type Empty struct{}

func (Empty) MarshalWire() ([]byte, error) { return nil, nil }

func (*Empty) UnmarshalWire(b []byte) error {
	return Walk(b, func(protowire.Number, protowire.Type, []byte) int { return 0 })
}

// MessageRequest addresses a single message: { string id = 1; }
type MessageRequest struct {
	ID string
}

func (r MessageRequest) MarshalWire() ([]byte, error) {
	return appendString(nil, idField, r.ID), nil
}

func (r *MessageRequest) UnmarshalWire(b []byte) error {
	return Walk(b, func(num protowire.Number, typ protowire.Type, value []byte) int {
		if num == idField && typ == protowire.BytesType {
			s, n := protowire.ConsumeString(value)
			r.ID = s
			return n
		}
		return 0
	})
}

// AddMessageRequest is a bare MessagePayload.
type AddMessageRequest struct {
	Payload domain.MessagePayload
}

func (r AddMessageRequest) MarshalWire() ([]byte, error) {
	return AppendPayload(nil, r.Payload), nil
}

func (r *AddMessageRequest) UnmarshalWire(b []byte) error {
	p, err := UnmarshalPayload(b)
	if err != nil {
		return err
	}
	r.Payload = p
	return nil
}

// UpdateMessageRequest: { string id = 1; MessagePayload payload = 2; }
type UpdateMessageRequest struct {
	ID      string
	Payload domain.MessagePayload
}

const payloadField protowire.Number = 2

func (r UpdateMessageRequest) MarshalWire() ([]byte, error) {
	b := appendString(nil, idField, r.ID)
	b = protowire.AppendTag(b, payloadField, protowire.BytesType)
	b = protowire.AppendBytes(b, AppendPayload(nil, r.Payload))
	return b, nil
}

func (r *UpdateMessageRequest) UnmarshalWire(b []byte) error {
	var payloadErr error
	err := Walk(b, func(num protowire.Number, typ protowire.Type, value []byte) int {
		if typ != protowire.BytesType {
			return 0
		}
		switch num {
		case idField:
			s, n := protowire.ConsumeString(value)
			r.ID = s
			return n
		case payloadField:
			raw, n := protowire.ConsumeBytes(value)
			if n > 0 {
				r.Payload, payloadErr = UnmarshalPayload(raw)
			}
			return n
		}
		return 0
	})
	if err != nil {
		return err
	}
	return payloadErr
}

// MessageResponse is a bare Message.
type MessageResponse struct {
	Message domain.Message
}

func (r MessageResponse) MarshalWire() ([]byte, error) {
	return MarshalMessage(r.Message), nil
}

func (r *MessageResponse) UnmarshalWire(b []byte) error {
	m, err := UnmarshalMessage(b)
	if err != nil {
		return err
	}
	r.Message = m
	return nil
}

// ListMessagesResponse: { repeated Message messages = 1; }
type ListMessagesResponse struct {
	Messages []domain.Message
}

const messagesField protowire.Number = 1

func (r ListMessagesResponse) MarshalWire() ([]byte, error) {
	var b []byte
	for _, m := range r.Messages {
		b = protowire.AppendTag(b, messagesField, protowire.BytesType)
		b = protowire.AppendBytes(b, MarshalMessage(m))
	}
	return b, nil
}

func (r *ListMessagesResponse) UnmarshalWire(b []byte) error {
	var decodeErr error
	messages := make([]domain.Message, 0)
	err := Walk(b, func(num protowire.Number, typ protowire.Type, value []byte) int {
		if num != messagesField || typ != protowire.BytesType {
			return 0
		}
		raw, n := protowire.ConsumeBytes(value)
		if n > 0 && decodeErr == nil {
			var m domain.Message
			if m, decodeErr = UnmarshalMessage(raw); decodeErr == nil {
				messages = append(messages, m)
			}
		}
		return n
	})
	if err != nil {
		return err
	}
	if decodeErr != nil {
		return decodeErr
	}
	r.Messages = messages
	return nil
}
