package user

import "context"

type Repository interface {
	Find(ctx context.Context, username string) (*User, error)
	Save(ctx context.Context, u *User) error
}
