package vision

import "context"

// Identifier produces a best-effort identification label for an image.
// Implementations never return an error: any failure yields nil and the
// caller proceeds without a label.
type Identifier interface {
	Identify(ctx context.Context, image []byte) *string
}

// Disabled is used when no API key is configured. It performs no network
// access.
type Disabled struct{}

func (Disabled) Identify(context.Context, []byte) *string { return nil }
