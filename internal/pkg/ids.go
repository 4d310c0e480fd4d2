package pkg

import "github.com/google/uuid"

// GenerateMessageID - generates a unique id for a message that came without one.
func GenerateMessageID() string {
	return uuid.NewString()
}
