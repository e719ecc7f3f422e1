package logs

import "context"

type sourceKey struct{}

// WithSource marks ctx with the name of the source file being worked
// on. The handler attaches it to every record logged under that ctx.
func WithSource(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, sourceKey{}, name)
}

func sourceFrom(ctx context.Context) (string, bool) {
	v := ctx.Value(sourceKey{})
	if v == nil {
		return "", false
	}
	return v.(string), true
}
