package shared

import "context"

type accessTokenKey struct{}

// WithAccessToken attaches the caller's bearer token for forwarding to the marketplace.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

func AccessToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(string)
	return token, ok && token != ""
}
