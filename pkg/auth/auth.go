package auth

import (
	"context"

	"github.com/pkg/errors"
)

const XUserNameHeader = "X-User-Name"

type authKey struct{}

type Auth struct {
	UserName string
	Role     string
	Email    string
}

var ErrNoAuth = errors.New("no auth in context")

func SetAuthContext(ctx context.Context, a Auth) context.Context {
	return context.WithValue(ctx, authKey{}, a)
}

func FromContext(ctx context.Context) (Auth, error) {
	a, ok := ctx.Value(authKey{}).(Auth)
	if !ok || a.UserName == "" {
		return Auth{}, ErrNoAuth
	}
	return a, nil
}
