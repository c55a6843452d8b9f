package complaint

import (
	"fmt"
	"time"
)

// Message is one entry in a complaint's append-only conversation thread.
type Message struct {
	id          uint
	complaintID uint
	senderID    uint
	content     string
	read        bool
	createdAt   time.Time
}

func NewMessage(complaintID, senderID uint, content string) (*Message, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if senderID == 0 {
		return nil, fmt.Errorf("sender ID is required")
	}
	if content == "" {
		return nil, fmt.Errorf("message content is required")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("message content exceeds maximum length of 5000 characters")
	}

	return &Message{
		complaintID: complaintID,
		senderID:    senderID,
		content:     content,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructMessage(id, complaintID, senderID uint, content string, read bool, createdAt time.Time) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}

	return &Message{
		id:          id,
		complaintID: complaintID,
		senderID:    senderID,
		content:     content,
		read:        read,
		createdAt:   createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) ComplaintID() uint {
	return m.complaintID
}

func (m *Message) SenderID() uint {
	return m.senderID
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) Read() bool {
	return m.read
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
