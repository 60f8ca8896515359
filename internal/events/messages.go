package events

import (
	"encoding/json"
	"time"
)

// TransactionCreatedMessage is the lightweight event published after a
// transaction lands in storage. It carries only ids; the reconciliation
// worker reads the full records back from the repository.
type TransactionCreatedMessage struct {
	TransactionID string    `json:"transactionId"`
	UserID        string    `json:"userId"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewTransactionCreatedMessage creates a new event for the given ids.
func NewTransactionCreatedMessage(transactionID, userID string) *TransactionCreatedMessage {
	return &TransactionCreatedMessage{
		TransactionID: transactionID,
		UserID:        userID,
		Timestamp:     time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionCreatedMessageFromJSON creates a message from JSON bytes
func TransactionCreatedMessageFromJSON(data []byte) (*TransactionCreatedMessage, error) {
	var msg TransactionCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
