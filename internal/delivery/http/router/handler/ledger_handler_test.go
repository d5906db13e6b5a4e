package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	domainerrors "koerplan/internal/domain/errors"
	mockUsecase "koerplan/internal/mocks/usecase"
	"koerplan/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLedgerHandler(t *testing.T) (*LedgerHandler, *mockUsecase.MockSessionUsecase) {
	t.Helper()

	session := mockUsecase.NewMockSessionUsecase(t)
	handler := NewLedgerHandler(LedgerHandlerParams{
		SessionUC: session,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return handler, session
}

func TestLedgerHandler_SelectLedger(t *testing.T) {
	handler, session := newTestLedgerHandler(t)

	session.EXPECT().SelectLedger(mock.Anything, "/data/Skabelon.xlsx").
		Return(&usecase.SessionState{LedgerPath: "/data/Skabelon.xlsx"}, nil)

	c, rec := newTestContext(http.MethodPut, "/ledger", `{"path":"/data/Skabelon.xlsx"}`)
	require.NoError(t, handler.SelectLedger(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ledgerPath":"/data/Skabelon.xlsx"`)
}

func TestLedgerHandler_SelectLedger_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		handler, _ := newTestLedgerHandler(t)

		c, rec := newTestContext(http.MethodPut, "/ledger", `{"path":""}`)
		require.NoError(t, handler.SelectLedger(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "LEDGER_NOT_SELECTED", decodeError(t, rec).Code)
	})

	t.Run("unsupported format", func(t *testing.T) {
		handler, session := newTestLedgerHandler(t)
		session.EXPECT().SelectLedger(mock.Anything, "/data/ledger.csv").
			Return(nil, domainerrors.ErrLedgerUnsupportedFormat.WithDetails("ledger.csv"))

		c, rec := newTestContext(http.MethodPut, "/ledger", `{"path":"/data/ledger.csv"}`)
		require.NoError(t, handler.SelectLedger(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "LEDGER_UNSUPPORTED_FORMAT", info.Code)
		assert.Equal(t, "ledger.csv", info.Details)
	})
}

func TestLedgerHandler_Save(t *testing.T) {
	handler, session := newTestLedgerHandler(t)

	result := &usecase.SaveResult{
		Rows:          []int{23, 24},
		SavedFilePath: "/data/Koerplan.xlsx",
		Snapshots:     []string{"2026-01-31_kørsel_ud.jpg"},
		Message:       "Gemt! (række 23, 24)",
	}
	session.EXPECT().Save(mock.Anything, "2026-01-31").Return(result, nil)

	c, rec := newTestContext(http.MethodPost, "/ledger/entries", `{"date":"2026-01-31"}`)
	require.NoError(t, handler.Save(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data    usecase.SaveResult `json:"data"`
		Message string             `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Gemt! (række 23, 24)", body.Message)
	assert.Equal(t, []int{23, 24}, body.Data.Rows)
}

func TestLedgerHandler_Save_EmptyBodyUsesToday(t *testing.T) {
	handler, session := newTestLedgerHandler(t)
	session.EXPECT().Save(mock.Anything, "").Return(&usecase.SaveResult{Rows: []int{23}, Message: "Gemt! (række 23)"}, nil)

	c, rec := newTestContext(http.MethodPost, "/ledger/entries", "")
	require.NoError(t, handler.Save(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLedgerHandler_Save_InvalidDate(t *testing.T) {
	handler, _ := newTestLedgerHandler(t)

	c, rec := newTestContext(http.MethodPost, "/ledger/entries", `{"date":"31/01/2026"}`)
	require.NoError(t, handler.Save(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", info.Code)
	assert.Equal(t, []any{"date"}, info.Details)
}

func TestLedgerHandler_Save_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "no trip",
			err:        domainerrors.ErrNoTrip,
			wantStatus: http.StatusConflict,
			wantCode:   "NO_TRIP",
			wantMsg:    "Der er ingen rute at gemme",
		},
		{
			name: "locked",
			err: domainerrors.ErrLedgerLocked.WithMessagef(
				"Kunne ikke gemme: Kunne ikke gemme tur (ud): Filen \"Koerplan.xlsx\" er åben i Excel. Luk den venligst ned og prøv igen."),
			wantStatus: http.StatusLocked,
			wantCode:   "LEDGER_LOCKED",
			wantMsg:    "Kunne ikke gemme: Kunne ikke gemme tur (ud): Filen \"Koerplan.xlsx\" er åben i Excel. Luk den venligst ned og prøv igen.",
		},
		{
			name:       "already saving",
			err:        domainerrors.ErrSaveInProgress,
			wantStatus: http.StatusConflict,
			wantCode:   "SAVE_IN_PROGRESS",
			wantMsg:    "Der gemmes allerede",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, session := newTestLedgerHandler(t)
			session.EXPECT().Save(mock.Anything, "").Return(nil, tt.err)

			c, rec := newTestContext(http.MethodPost, "/ledger/entries", `{}`)
			require.NoError(t, handler.Save(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.wantMsg, info.Message)
		})
	}
}
