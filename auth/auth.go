package auth

import "context"

// Auth carries the credentials for a single call: the API token and the
// deployment host, e.g. "https://example.cubecloud.dev". It is immutable
// and holds no session state.
type Auth struct {
	Token string
	Host  string
}

type contextKey struct {
	name string
}

var authKey = &contextKey{"cubejsAuth"}

// WithContextAuth returns a context carrying the given credentials, for
// host programs that thread per-request auth through their contexts.
func WithContextAuth(ctx context.Context, auth Auth) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, authKey, auth)
}

// ContextAuth returns the credentials stored in ctx, or a zero Auth when
// none are set.
func ContextAuth(ctx context.Context) Auth {
	if ctx != nil {
		if val, ok := ctx.Value(authKey).(Auth); ok {
			return val
		}
	}
	return Auth{}
}
