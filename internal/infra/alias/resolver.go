package alias

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"koerplan/internal/domain/service"
)

type loadState int

const (
	stateUnloaded loadState = iota
	stateLoading
	stateLoaded
)

// DefaultAliases is used when the configured table cannot be loaded
func DefaultAliases() map[string]string {
	return map[string]string{
		"gigtforeningen":     "Company House Gladsaxe",
		"sano middelfart":    "Adlerhusvej 82, 5500 Middelfart",
		"sano aarhus":        "Egernvej 5, 8270 Højbjerg",
		"dansk gigthospital": "Engelshøjgade 9A, 6400 Sønderborg",
	}
}

// Resolver maps shorthand names to full addresses. The table is loaded at most
// once per Resolver; callers arriving during the load wait for it.
type Resolver struct {
	loader   Loader
	defaults map[string]string
	logger   *slog.Logger

	mu      sync.Mutex
	state   loadState
	done    chan struct{}
	aliases map[string]string
}

// NewResolver creates a resolver backed by loader, falling back to defaults
func NewResolver(loader Loader, defaults map[string]string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}

	return &Resolver{
		loader:   loader,
		defaults: maps.Clone(defaults),
		logger:   logger,
	}
}

var _ service.AliasResolver = (*Resolver)(nil)

// Resolve returns the full address for a known alias, or query unchanged
func (r *Resolver) Resolve(ctx context.Context, query string) string {
	aliases := r.table(ctx)

	key := normalize(query)
	if full, ok := aliases[key]; ok {
		r.logger.Debug("Alias resolved",
			slog.String("query", query),
			slog.String("address", full),
		)

		return full
	}

	return query
}

// table returns the loaded aliases, loading them on first use
func (r *Resolver) table(ctx context.Context) map[string]string {
	r.mu.Lock()
	switch r.state {
	case stateLoaded:
		aliases := r.aliases
		r.mu.Unlock()

		return aliases

	case stateLoading:
		done := r.done
		r.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			// The caller gave up; answer with defaults without touching the shared load.
			return r.defaults
		}

		r.mu.Lock()
		aliases := r.aliases
		r.mu.Unlock()

		return aliases

	default:
		r.state = stateLoading
		r.done = make(chan struct{})
		r.mu.Unlock()
	}

	aliases := r.load(context.WithoutCancel(ctx))

	r.mu.Lock()
	r.aliases = aliases
	r.state = stateLoaded
	close(r.done)
	r.mu.Unlock()

	return aliases
}

// load runs the loader. A failing or panicking loader yields the defaults.
func (r *Resolver) load(ctx context.Context) (aliases map[string]string) {
	if r.loader == nil {
		return r.defaults
	}

	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("Alias loader panicked, using defaults", slog.Any("panic", p))
			aliases = r.defaults
		}
	}()

	aliases, err := r.loader(ctx)
	if err != nil {
		r.logger.Warn("Failed to load aliases, using defaults", slog.Any("error", err))

		return r.defaults
	}

	r.logger.Info("Aliases loaded", slog.Int("count", len(aliases)))

	return aliases
}
