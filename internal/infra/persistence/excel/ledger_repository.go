// Package excel implements the mileage ledger on top of an .xlsx workbook.
package excel

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"koerplan/config"
	"koerplan/internal/domain/entity"
	domainerrors "koerplan/internal/domain/errors"
	"koerplan/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	colDate        = 1 // A
	colDescription = 2 // B
	colKm          = 3 // C

	kmNumberFormat = "0.00"
)

// ledgerRepository implements the repository.LedgerRepository interface.
type ledgerRepository struct {
	targetFilename string
	startRow       int
	maxRow         int
	logger         *slog.Logger

	// serialises open/modify/save cycles so row numbers are deterministic
	mu sync.Mutex
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(cfg *config.Config, logger *slog.Logger) repository.LedgerRepository {
	return &ledgerRepository{
		targetFilename: cfg.Ledger.TargetFilename,
		startRow:       cfg.Ledger.StartRow,
		maxRow:         cfg.Ledger.MaxRow,
		logger:         logger,
	}
}

// Append writes one entry in its own open/save cycle.
func (repo *ledgerRepository) Append(ctx context.Context, templatePath string, entry entity.LedgerEntry) (*entity.LedgerAppendResult, error) {
	results, err := repo.write(ctx, templatePath, []entity.LedgerEntry{entry})
	if err != nil {
		return nil, err
	}

	return &results[0], nil
}

// AppendBatch writes all entries in a single open/save cycle.
func (repo *ledgerRepository) AppendBatch(ctx context.Context, templatePath string, entries []entity.LedgerEntry) ([]entity.LedgerAppendResult, error) {
	if len(entries) == 0 {
		return []entity.LedgerAppendResult{}, nil
	}

	return repo.write(ctx, templatePath, entries)
}

func (repo *ledgerRepository) write(ctx context.Context, templatePath string, entries []entity.LedgerEntry) ([]entity.LedgerAppendResult, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "ledger write canceled")
	}

	targetPath, err := repo.ensureLedger(templatePath)
	if err != nil {
		return nil, err
	}

	if hasOwnerFile(targetPath) {
		return nil, repo.lockedError()
	}

	f, err := excelize.OpenFile(targetPath)
	if err != nil {
		if isFileLocked(err) {
			return nil, repo.lockedError()
		}

		return nil, domainerrors.ErrLedgerWriteFailed.WithCause(errors.Wrapf(err, "open %s", targetPath))
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			repo.logger.Warn("Failed to close workbook", slog.Any("error", closeErr))
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, domainerrors.ErrLedgerWriteFailed.WithDetails("workbook has no sheets")
	}

	results := make([]entity.LedgerAppendResult, 0, len(entries))
	row := repo.startRow
	for _, entry := range entries {
		row, err = repo.nextFreeRow(f, sheet, row)
		if err != nil {
			return nil, err
		}

		if err := repo.writeRow(f, sheet, row, entry); err != nil {
			return nil, domainerrors.ErrLedgerWriteFailed.WithCause(err)
		}

		results = append(results, entity.LedgerAppendResult{Row: row, SavedFilePath: targetPath})
		row++
	}

	fullCalcOnLoad := true
	if err := f.SetCalcProps(&excelize.CalcPropsOptions{FullCalcOnLoad: &fullCalcOnLoad}); err != nil {
		return nil, domainerrors.ErrLedgerWriteFailed.WithCause(errors.Wrap(err, "set calc properties"))
	}

	if err := f.Save(); err != nil {
		if isFileLocked(err) {
			return nil, repo.lockedError()
		}

		return nil, domainerrors.ErrLedgerWriteFailed.WithCause(errors.Wrapf(err, "save %s", targetPath))
	}

	repo.logger.Info("Ledger rows written",
		slog.String("path", targetPath),
		slog.Int("rows", len(results)),
		slog.Int("first_row", results[0].Row),
	)

	return results, nil
}

// ensureLedger returns the ledger path next to the template, copying the
// template there when the ledger does not exist yet
func (repo *ledgerRepository) ensureLedger(templatePath string) (string, error) {
	if _, err := os.Stat(templatePath); err != nil {
		return "", domainerrors.ErrLedgerTemplateMissing.WithCause(err)
	}

	targetPath := filepath.Join(filepath.Dir(templatePath), repo.targetFilename)
	if _, err := os.Stat(targetPath); err == nil {
		return targetPath, nil
	} else if !os.IsNotExist(err) {
		return "", domainerrors.ErrLedgerWriteFailed.WithCause(errors.Wrapf(err, "stat %s", targetPath))
	}

	raw, err := os.ReadFile(templatePath)
	if err == nil {
		err = os.WriteFile(targetPath, raw, 0o644)
	}
	if err != nil {
		return "", domainerrors.ErrLedgerWriteFailed.
			WithMessagef("Kunne ikke oprette ny fil fra skabelon: %s", err.Error()).
			WithCause(err)
	}

	repo.logger.Info("Ledger created from template",
		slog.String("template", templatePath),
		slog.String("path", targetPath),
	)

	return targetPath, nil
}

// nextFreeRow returns the first row at or after from whose date and
// description cells are both empty
func (repo *ledgerRepository) nextFreeRow(f *excelize.File, sheet string, from int) (int, error) {
	for row := from; row <= repo.maxRow; row++ {
		date, err := cellValue(f, sheet, colDate, row)
		if err != nil {
			return 0, domainerrors.ErrLedgerWriteFailed.WithCause(err)
		}
		description, err := cellValue(f, sheet, colDescription, row)
		if err != nil {
			return 0, domainerrors.ErrLedgerWriteFailed.WithCause(err)
		}

		if date == "" && description == "" {
			return row, nil
		}
	}

	return 0, domainerrors.ErrLedgerFull.WithDetails(repo.targetFilename)
}

func (repo *ledgerRepository) writeRow(f *excelize.File, sheet string, row int, entry entity.LedgerEntry) error {
	dateCell, err := excelize.CoordinatesToCellName(colDate, row)
	if err != nil {
		return errors.WithStack(err)
	}
	descriptionCell, err := excelize.CoordinatesToCellName(colDescription, row)
	if err != nil {
		return errors.WithStack(err)
	}
	kmCell, err := excelize.CoordinatesToCellName(colKm, row)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := f.SetCellValue(sheet, dateCell, entry.Date); err != nil {
		return errors.Wrapf(err, "write %s", dateCell)
	}
	if err := f.SetCellValue(sheet, descriptionCell, entry.Description); err != nil {
		return errors.Wrapf(err, "write %s", descriptionCell)
	}
	if err := f.SetCellFloat(sheet, kmCell, entry.RoundedKm(), -1, 64); err != nil {
		return errors.Wrapf(err, "write %s", kmCell)
	}

	styleID, err := kmStyle(f, sheet, kmCell)
	if err != nil {
		return err
	}

	return errors.Wrapf(f.SetCellStyle(sheet, kmCell, kmCell, styleID), "style %s", kmCell)
}

// kmStyle returns the cell's existing style with the two-decimal number format applied
func kmStyle(f *excelize.File, sheet, cell string) (int, error) {
	style := &excelize.Style{}

	if current, err := f.GetCellStyle(sheet, cell); err == nil && current != 0 {
		if existing, err := f.GetStyle(current); err == nil {
			style = existing
		}
	}

	numFmt := kmNumberFormat
	style.NumFmt = 0
	style.DecimalPlaces = nil
	style.CustomNumFmt = &numFmt

	styleID, err := f.NewStyle(style)
	if err != nil {
		return 0, errors.Wrap(err, "create number style")
	}

	return styleID, nil
}

func cellValue(f *excelize.File, sheet string, col, row int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", errors.WithStack(err)
	}

	value, err := f.GetCellValue(sheet, cell)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", cell)
	}

	return value, nil
}

func (repo *ledgerRepository) lockedError() error {
	return domainerrors.ErrLedgerLocked.WithMessagef(
		"Filen \"%s\" er åben i Excel. Luk den venligst ned og prøv igen.", repo.targetFilename)
}
