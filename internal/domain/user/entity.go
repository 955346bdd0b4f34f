package user

import (
	"time"

	"github.com/google/uuid"
)

type UUID = uuid.UUID

// User is the identity collaborator's view: enough to authenticate a
// caller and to render notification recipients. Account administration
// lives outside this service.
type User struct {
	UUID         UUID
	Email        string
	PasswordHash *string
	Role         string
	Name         string
	Lastname     string

	CreatedAt time.Time
}
