package llm

import "context"

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose tags the context with a purpose label. The logging
// decorator stores it with each recorded request so usage can be
// broken down by what the call was for.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label off the context, "unknown" when
// the caller never tagged it.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey).(string); ok && p != "" {
		return p
	}
	return "unknown"
}
