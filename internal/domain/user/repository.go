package user

import (
	"context"
)

type Repository interface {
	FetchByEmail(ctx context.Context, email string) (*User, error)
	// FetchIDs lists every user UUID; used for notification broadcast.
	FetchIDs(ctx context.Context) ([]UUID, error)
}
