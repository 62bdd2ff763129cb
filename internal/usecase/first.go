package usecase

import "context"

// Provider is one step of an ordered discovery chain
type Provider[T any] struct {
	Source string
	Lookup func(ctx context.Context) (T, bool)
}

// FirstOf evaluates providers in order and returns the first value found with the source tag of
// the provider that produced it. Later providers are not evaluated once one succeeds, and a
// cancelled context stops the chain.
func FirstOf[T any](ctx context.Context, providers ...Provider[T]) (T, string, bool) {
	var zero T
	for _, p := range providers {
		if ctx.Err() != nil {
			return zero, "", false
		}
		if p.Lookup == nil {
			continue
		}
		if v, ok := p.Lookup(ctx); ok {
			return v, p.Source, true
		}
	}
	return zero, "", false
}
