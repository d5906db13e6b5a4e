package service

import "context"

// AliasResolver substitutes shorthand names with full addresses
type AliasResolver interface {
	// Resolve returns the full address for a known alias, or query unchanged
	Resolve(ctx context.Context, query string) string
}
