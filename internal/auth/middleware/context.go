package auth

import "context"

type ctxKey string

const ctxKeySub ctxKey = "sub"

// WithSubject records who is making the request.
func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, ctxKeySub, sub)
}

func SubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(ctxKeySub).(string)
	return s
}
