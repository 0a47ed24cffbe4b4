package submit_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookingWizardService/internal/api/middleware"
	"github.com/m04kA/BookingWizardService/internal/domain"
	submitBookingUC "github.com/m04kA/BookingWizardService/internal/usecase/submit_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp    *submitBookingUC.Response
	err     error
	lastReq *submitBookingUC.Request
}

func (u *fakeUseCase) Execute(_ context.Context, req *submitBookingUC.Request) (*submitBookingUC.Response, error) {
	u.lastReq = req
	return u.resp, u.err
}

func newTestRouter(usecase *fakeUseCase) *mux.Router {
	handler := NewHandler(usecase, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/wizard-sessions/{sessionId}/submit", handler.Handle).Methods(http.MethodPost)
	return r
}

func doSubmit(t *testing.T, router *mux.Router, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard-sessions/sess-1/submit", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	session := domain.NewWizardSession("sess-1", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	session.SetService("svc-1")
	session.SetProfessional("pro-1")
	session.Advance()
	session.FinishSubmit("appt-1")

	usecase := &fakeUseCase{resp: &submitBookingUC.Response{
		AppointmentID: "appt-1",
		Status:        "PENDING_PAYMENT",
		StartDT:       "2024-06-05T14:00",
		Session:       session,
	}}
	router := newTestRouter(usecase)

	rec := doSubmit(t, router, "token-1")

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SubmitBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "appt-1", resp.AppointmentID)
	assert.Equal(t, "PENDING_PAYMENT", resp.Status)
	assert.Equal(t, string(domain.StepConfirmation), resp.Session.Step)

	// Токен и ID сессии доходят до usecase
	require.NotNil(t, usecase.lastReq)
	assert.Equal(t, "sess-1", usecase.lastReq.SessionID)
	assert.Equal(t, "token-1", usecase.lastReq.Token)
}

func TestHandler_Handle_MissingToken(t *testing.T) {
	usecase := &fakeUseCase{}
	router := newTestRouter(usecase)

	rec := doSubmit(t, router, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, usecase.lastReq)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		usecaseErr error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "session not found",
			usecaseErr: submitBookingUC.ErrSessionNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    msgSessionNotFound,
		},
		{
			name:       "no slot selected",
			usecaseErr: submitBookingUC.ErrNoSlotSelected,
			wantStatus: http.StatusBadRequest,
			wantMsg:    msgNoSlotSelected,
		},
		{
			name:       "wrong step",
			usecaseErr: submitBookingUC.ErrWrongStep,
			wantStatus: http.StatusConflict,
			wantMsg:    msgWrongStep,
		},
		{
			name:       "submit in flight",
			usecaseErr: submitBookingUC.ErrSubmitInFlight,
			wantStatus: http.StatusConflict,
			wantMsg:    msgSubmitInFlight,
		},
		{
			name:       "backend rejection surfaces verbatim message",
			usecaseErr: &submitBookingUC.RejectedError{Message: "slot no longer available"},
			wantStatus: http.StatusConflict,
			wantMsg:    "slot no longer available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&fakeUseCase{err: tt.usecaseErr})

			rec := doSubmit(t, router, "token-1")

			require.Equal(t, tt.wantStatus, rec.Code)

			var errResp struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, tt.wantMsg, errResp.Message)
		})
	}
}
