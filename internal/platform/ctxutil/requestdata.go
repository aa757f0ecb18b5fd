package ctxutil

import "context"

type requestDataKey struct{}

// RequestData carries the authenticated caller through the request
// context once the auth middleware has resolved the bearer token.
type RequestData struct {
	UserID      uint
	Role        string
	Plan        string
	TokenString string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}
