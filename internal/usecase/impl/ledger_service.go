package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"koerplan/config"
	deliverycontext "koerplan/internal/delivery/context"
	"koerplan/internal/domain/entity"
	domainerrors "koerplan/internal/domain/errors"
	"koerplan/internal/domain/repository"
	"koerplan/internal/domain/service"
	"koerplan/internal/errors"
	"koerplan/internal/usecase"
)

const dateLayout = "2006-01-02"

// snapshotSuffixes maps each leg to the image name written next to the ledger
var snapshotSuffixes = map[entity.LegRole]string{
	entity.LegRoleTrip:          "kørsel_ud",
	entity.LegRoleReturnTrip:    "kørsel_hjem",
	entity.LegRoleCommute:       "fradrag_ud",
	entity.LegRoleReturnCommute: "fradrag_hjem",
}

// plannedEntry is one ledger row with the label used in failure messages
type plannedEntry struct {
	label     string
	separator string // joins the row number onto the success message
	entry     entity.LedgerEntry
}

// ledgerService implements the LedgerUsecase interface.
type ledgerService struct {
	ledgerRepo  repository.LedgerRepository
	capturer    service.MapCapturer
	atomicBatch bool
	now         func() time.Time
	logger      *slog.Logger
}

// NewLedgerService is the constructor for ledgerService. A nil capturer
// disables map snapshots.
func NewLedgerService(
	ledgerRepo repository.LedgerRepository,
	capturer service.MapCapturer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LedgerUsecase {
	srv := &ledgerService{
		ledgerRepo: ledgerRepo,
		capturer:   capturer,
		now:        time.Now,
		logger:     logger,
	}
	if cfg.Ledger != nil {
		srv.atomicBatch = cfg.Ledger.AtomicBatch
	}
	if cfg.Snapshot != nil && !cfg.Snapshot.Enabled {
		srv.capturer = nil
	}

	return srv
}

func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Save writes the trip to the ledger and stores the map snapshots
func (srv *ledgerService) Save(ctx context.Context, input *usecase.SaveInput) (*usecase.SaveResult, error) {
	if input == nil || input.Trip == nil || input.Trip.Trip == nil {
		return nil, domainerrors.ErrNoTrip
	}
	if strings.TrimSpace(input.LedgerPath) == "" {
		return nil, domainerrors.ErrLedgerNotSelected
	}

	date, err := srv.resolveDate(input.Date)
	if err != nil {
		return nil, err
	}

	snapshots := srv.captureSnapshots(ctx, filepath.Dir(input.LedgerPath), date, input.Trip)

	planned := planEntries(date, input.Trip)

	var results []entity.LedgerAppendResult
	if srv.atomicBatch {
		results, err = srv.appendBatch(ctx, input.LedgerPath, planned)
	} else {
		results, err = srv.appendEach(ctx, input.LedgerPath, planned)
	}
	if err != nil {
		return nil, err
	}

	result := &usecase.SaveResult{
		Rows:      make([]int, 0, len(results)),
		Snapshots: snapshots,
	}
	var rows strings.Builder
	for i, r := range results {
		result.Rows = append(result.Rows, r.Row)
		result.SavedFilePath = r.SavedFilePath
		if i == 0 {
			fmt.Fprintf(&rows, "række %d", r.Row)

			continue
		}
		fmt.Fprintf(&rows, "%s%d", planned[i].separator, r.Row)
	}
	result.Message = fmt.Sprintf("Gemt! (%s)", rows.String())

	srv.log(ctx).Info("Trip saved to ledger",
		slog.String("path", result.SavedFilePath),
		slog.Any("rows", result.Rows),
		slog.Int("snapshots", len(snapshots)),
	)

	return result, nil
}

func (srv *ledgerService) resolveDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return srv.now().Format(dateLayout), nil
	}

	if _, err := time.Parse(dateLayout, raw); err != nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("date must be YYYY-MM-DD")
	}

	return raw, nil
}

// appendEach writes entries one by one; rows written before a failure stay committed
func (srv *ledgerService) appendEach(ctx context.Context, ledgerPath string, planned []plannedEntry) ([]entity.LedgerAppendResult, error) {
	results := make([]entity.LedgerAppendResult, 0, len(planned))

	for _, p := range planned {
		res, err := srv.ledgerRepo.Append(ctx, ledgerPath, p.entry)
		if err != nil {
			if len(results) > 0 {
				srv.log(ctx).Warn("Save stopped after partial write",
					slog.Int("written", len(results)),
					slog.String("failed", p.label),
				)
			}

			return nil, saveError(p.label, err)
		}
		results = append(results, *res)
	}

	return results, nil
}

func (srv *ledgerService) appendBatch(ctx context.Context, ledgerPath string, planned []plannedEntry) ([]entity.LedgerAppendResult, error) {
	entries := make([]entity.LedgerEntry, 0, len(planned))
	for _, p := range planned {
		entries = append(entries, p.entry)
	}

	results, err := srv.ledgerRepo.AppendBatch(ctx, ledgerPath, entries)
	if err != nil {
		return nil, saveError("", err)
	}
	if len(results) != len(entries) {
		return nil, domainerrors.ErrLedgerWriteFailed.WithDetails(
			fmt.Sprintf("expected %d rows, wrote %d", len(entries), len(results)))
	}

	return results, nil
}

// captureSnapshots stores one image per present leg. Failures are logged and skipped.
func (srv *ledgerService) captureSnapshots(ctx context.Context, dir, date string, trip *entity.Trip) []string {
	if srv.capturer == nil {
		return []string{}
	}

	names := make([]string, 0, 4)
	for _, leg := range trip.Legs() {
		name := fmt.Sprintf("%s_%s.jpg", date, snapshotSuffixes[leg.Role])

		err := srv.capturer.Capture(ctx, service.CaptureRequest{
			Dir:    dir,
			Name:   name,
			Routes: leg.Routes,
			Dashed: leg.Dashed,
		})
		if err != nil {
			srv.log(ctx).Warn("Failed to save map snapshot",
				slog.String("name", name),
				slog.Any("error", err),
			)

			continue
		}
		names = append(names, name)
	}

	return names
}

// planEntries lists the ledger rows of a trip in write order
func planEntries(date string, trip *entity.Trip) []plannedEntry {
	in := trip.Inputs
	planned := make([]plannedEntry, 0, 4)

	planned = append(planned, plannedEntry{
		label: "tur (ud)",
		entry: entity.LedgerEntry{
			Date:        date,
			Description: fmt.Sprintf("Fra %s til %s", in.Home, in.Destination),
			Km:          trip.Trip.DistanceKm(),
		},
	})

	if trip.Commute != nil {
		planned = append(planned, plannedEntry{
			label:     "fradrag (ud)",
			separator: " & ",
			entry: entity.LedgerEntry{
				Date:        date,
				Description: fmt.Sprintf("Fra %s til %s (Fradrag)", in.Home, in.Work),
				Km:          -trip.Commute.DistanceKm(),
			},
		})
	}

	if trip.ReturnTrip == nil {
		return planned
	}

	planned = append(planned, plannedEntry{
		label:     "tur (hjem)",
		separator: ", ",
		entry: entity.LedgerEntry{
			Date:        date,
			Description: fmt.Sprintf("Fra %s til %s", in.Destination, in.Home),
			Km:          trip.ReturnTrip.DistanceKm(),
		},
	})

	if trip.ReturnCommute != nil {
		planned = append(planned, plannedEntry{
			label:     "fradrag (hjem)",
			separator: " & ",
			entry: entity.LedgerEntry{
				Date:        date,
				Description: fmt.Sprintf("Fra %s til %s (Fradrag)", in.Work, in.Home),
				Km:          -trip.ReturnCommute.DistanceKm(),
			},
		})
	}

	return planned
}

// saveError prefixes the failure with the entry label, keeping the error code
func saveError(label string, err error) error {
	prefix := "Kunne ikke gemme: "
	if label != "" {
		prefix += "Kunne ikke gemme " + label + ": "
	}

	if appErr, ok := errors.AsType[*domainerrors.BaseError](err); ok {
		return appErr.WithMessagef("%s%s", prefix, appErr.Message())
	}

	return domainerrors.ErrLedgerWriteFailed.WithMessagef("%s%s", prefix, err.Error())
}
