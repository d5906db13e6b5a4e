// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"koerplan/config"
	deliverycontext "koerplan/internal/delivery/context"
	"koerplan/internal/domain/entity"
	domainerrors "koerplan/internal/domain/errors"
	"koerplan/internal/errors"
	"koerplan/internal/usecase"
)

var ledgerExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	trips  usecase.TripUsecase
	ledger usecase.LedgerUsecase
	logger *slog.Logger

	mu         sync.Mutex
	generation uint64
	searching  bool
	inputs     entity.TripAddresses
	mode       entity.RouteMode
	trip       *entity.Trip
	lastErr    string
	ledgerPath string

	saving atomic.Bool
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	trips usecase.TripUsecase,
	ledger usecase.LedgerUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	srv := &sessionService{
		trips:  trips,
		ledger: ledger,
		logger: logger,
	}
	if cfg.Ledger != nil {
		srv.ledgerPath = strings.TrimSpace(cfg.Ledger.TemplatePath)
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search starts a new search generation and applies its result only if no
// newer search or reset happened in the meantime
func (srv *sessionService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.SessionState, error) {
	if input == nil {
		return nil, domainerrors.ErrMissingAddresses
	}

	mode := input.Mode
	if mode == "" {
		mode = entity.RouteModeDirect
	}

	srv.mu.Lock()
	srv.generation++
	gen := srv.generation
	srv.searching = true
	srv.inputs = entity.TripAddresses{Home: input.Home, Work: input.Work, Destination: input.Destination}
	srv.mode = mode
	srv.trip = nil
	srv.lastErr = ""
	srv.mu.Unlock()

	srv.log(ctx).Debug("Search started", slog.Uint64("generation", gen), slog.String("mode", string(mode)))

	trip, err := srv.trips.Compose(ctx, &usecase.ComposeInput{
		Home:        input.Home,
		Work:        input.Work,
		Destination: input.Destination,
		Mode:        mode,
	})

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if gen != srv.generation {
		srv.log(ctx).Debug("Discarding superseded search",
			slog.Uint64("generation", gen),
			slog.Uint64("latest", srv.generation),
		)

		return nil, domainerrors.ErrStaleSearch
	}

	srv.searching = false
	if err != nil {
		srv.trip = nil
		if ctx.Err() == nil {
			srv.lastErr = userMessage(err)
		}

		return nil, err
	}

	srv.trip = trip

	return srv.stateLocked(), nil
}

// State returns what the session currently displays
func (srv *sessionService) State(_ context.Context) *usecase.SessionState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.stateLocked()
}

// Reset clears the inputs and the trip. The selected ledger is kept.
func (srv *sessionService) Reset(ctx context.Context) *usecase.SessionState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.generation++
	srv.searching = false
	srv.inputs = entity.TripAddresses{}
	srv.mode = ""
	srv.trip = nil
	srv.lastErr = ""

	srv.log(ctx).Debug("Session reset", slog.Uint64("generation", srv.generation))

	return srv.stateLocked()
}

// SelectLedger remembers the template the ledger is kept next to
func (srv *sessionService) SelectLedger(ctx context.Context, path string) (*usecase.SessionState, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, domainerrors.ErrLedgerNotSelected
	}

	if !ledgerExtensions[strings.ToLower(filepath.Ext(path))] {
		return nil, domainerrors.ErrLedgerUnsupportedFormat.WithDetails(filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, domainerrors.ErrLedgerTemplateMissing.WithCause(err)
	}
	if info.IsDir() {
		return nil, domainerrors.ErrLedgerUnsupportedFormat.WithDetails(filepath.Base(path) + " is a directory")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ledgerPath = path
	srv.log(ctx).Info("Ledger selected", slog.String("path", path))

	return srv.stateLocked(), nil
}

// Save writes the displayed trip to the ledger. Only one save runs at a time;
// a failed save leaves the session untouched so it can be retried.
func (srv *sessionService) Save(ctx context.Context, date string) (*usecase.SaveResult, error) {
	if !srv.saving.CompareAndSwap(false, true) {
		return nil, domainerrors.ErrSaveInProgress
	}
	defer srv.saving.Store(false)

	srv.mu.Lock()
	trip := srv.trip
	ledgerPath := srv.ledgerPath
	srv.mu.Unlock()

	if trip == nil {
		return nil, domainerrors.ErrNoTrip
	}
	if ledgerPath == "" {
		return nil, domainerrors.ErrLedgerNotSelected
	}

	return srv.ledger.Save(ctx, &usecase.SaveInput{
		LedgerPath: ledgerPath,
		Date:       date,
		Trip:       trip,
	})
}

func (srv *sessionService) stateLocked() *usecase.SessionState {
	return &usecase.SessionState{
		Generation: srv.generation,
		Searching:  srv.searching,
		Inputs:     srv.inputs,
		Mode:       srv.mode,
		Trip:       srv.trip,
		Summary:    CalculateNetDistance(srv.trip),
		Error:      srv.lastErr,
		LedgerPath: srv.ledgerPath,
	}
}

// userMessage returns the single message shown for an aborted action
func userMessage(err error) string {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.Message()
	}

	return domainerrors.ErrInternalError.Message()
}
