package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookingWizardService/internal/domain"
	sessionStore "github.com/m04kA/BookingWizardService/internal/infra/storage/sessions"
	appointmentClient "github.com/m04kA/BookingWizardService/internal/integrations/appointmentservice"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMetrics struct {
	submits map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{submits: make(map[string]int)}
}

func (m *fakeMetrics) IncSubmit(result string) { m.submits[result]++ }

type fakeAppointmentClient struct {
	appointment *appointmentClient.Appointment
	err         error
	calls       int
	lastDraft   *domain.AppointmentDraft
	lastToken   string
}

func (c *fakeAppointmentClient) CreateAppointment(_ context.Context, token string, draft *domain.AppointmentDraft) (*appointmentClient.Appointment, error) {
	c.calls++
	c.lastToken = token
	c.lastDraft = draft
	return c.appointment, c.err
}

func sessionWithSlot(t *testing.T, store *sessionStore.Store, slot string) string {
	t.Helper()

	session := domain.NewWizardSession("sess-1", testNow)
	session.SetService("svc-1")
	session.SetProfessional("pro-1")
	session.Advance()
	session.SetDate(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	require.True(t, session.ApplyCandidates(session.QueryKey(), []string{slot}))
	require.True(t, session.SetSlot(slot))
	require.NoError(t, store.Create(context.Background(), session))
	return session.ID
}

func TestUseCase_Execute_HappyPath(t *testing.T) {
	ctx := context.Background()
	store := sessionStore.NewStore(time.Hour)
	id := sessionWithSlot(t, store, "2024-06-05T14:00")

	client := &fakeAppointmentClient{appointment: &appointmentClient.Appointment{
		ID:             "appt-1",
		ProfessionalID: "pro-1",
		ServiceID:      "svc-1",
		StartDT:        "2024-06-05T14:00",
		Status:         "PENDING_PAYMENT",
	}}
	m := newFakeMetrics()
	uc := NewUseCase(store, client, m, nopLogger{})

	resp, err := uc.Execute(ctx, &Request{SessionID: id, Token: "token-1"})
	require.NoError(t, err)

	assert.Equal(t, "appt-1", resp.AppointmentID)
	assert.Equal(t, "PENDING_PAYMENT", resp.Status)
	assert.Equal(t, domain.StepConfirmation, resp.Session.Step)
	assert.Equal(t, 1, m.submits["accepted"])

	// Черновик собран из выбора сессии, без establishment_id
	require.NotNil(t, client.lastDraft)
	assert.Equal(t, "pro-1", client.lastDraft.ProfessionalID)
	assert.Equal(t, "svc-1", client.lastDraft.ServiceID)
	assert.Equal(t, "2024-06-05T14:00", client.lastDraft.StartDT)
	assert.Equal(t, "token-1", client.lastToken)

	session, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepConfirmation, session.Step)
	require.NotNil(t, session.AppointmentID)
	assert.Equal(t, "appt-1", *session.AppointmentID)
	assert.False(t, session.Submitting)
}

func TestUseCase_Execute_RejectedKeepsSlotForRetry(t *testing.T) {
	ctx := context.Background()
	store := sessionStore.NewStore(time.Hour)
	id := sessionWithSlot(t, store, "2024-06-05T14:00")

	client := &fakeAppointmentClient{err: &appointmentClient.RejectedError{
		StatusCode: 409,
		Message:    "slot no longer available",
	}}
	m := newFakeMetrics()
	uc := NewUseCase(store, client, m, nopLogger{})

	_, err := uc.Execute(ctx, &Request{SessionID: id, Token: "token-1"})
	require.Error(t, err)

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	// Сообщение бэкенда дословно
	assert.Equal(t, "slot no longer available", rejected.Message)
	assert.Equal(t, 1, m.submits["rejected"])

	// Мастер остаётся на шаге выбора, слот сохранён для повтора
	session, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepDateTime, session.Step)
	require.NotNil(t, session.Selection.Slot)
	assert.Equal(t, "2024-06-05T14:00", *session.Selection.Slot)
	assert.False(t, session.Submitting)
	require.NotNil(t, session.SubmitError)
	assert.Equal(t, "slot no longer available", *session.SubmitError)
}

func TestUseCase_Execute_TransportErrorIsRecoverable(t *testing.T) {
	ctx := context.Background()
	store := sessionStore.NewStore(time.Hour)
	id := sessionWithSlot(t, store, "2024-06-05T14:00")

	client := &fakeAppointmentClient{err: errors.New("connection refused")}
	m := newFakeMetrics()
	uc := NewUseCase(store, client, m, nopLogger{})

	_, err := uc.Execute(ctx, &Request{SessionID: id, Token: "token-1"})

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "booking failed due to a server error", rejected.Message)
	assert.Equal(t, 1, m.submits["failed"])

	session, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepDateTime, session.Step)
	assert.False(t, session.Submitting)
}

func TestUseCase_Execute_NoSlotSelected(t *testing.T) {
	ctx := context.Background()
	store := sessionStore.NewStore(time.Hour)

	session := domain.NewWizardSession("sess-1", testNow)
	session.SetService("svc-1")
	session.SetProfessional("pro-1")
	session.Advance()
	require.NoError(t, store.Create(ctx, session))

	client := &fakeAppointmentClient{}
	uc := NewUseCase(store, client, newFakeMetrics(), nopLogger{})

	_, err := uc.Execute(ctx, &Request{SessionID: "sess-1", Token: "token-1"})
	assert.ErrorIs(t, err, ErrNoSlotSelected)
	// Сетевой вызов не выполняется, состояние не меняется
	assert.Equal(t, 0, client.calls)

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepDateTime, got.Step)
	assert.False(t, got.Submitting)
}

func TestUseCase_Execute_WrongStep(t *testing.T) {
	ctx := context.Background()
	store := sessionStore.NewStore(time.Hour)
	require.NoError(t, store.Create(ctx, domain.NewWizardSession("sess-1", testNow)))

	client := &fakeAppointmentClient{}
	uc := NewUseCase(store, client, newFakeMetrics(), nopLogger{})

	_, err := uc.Execute(ctx, &Request{SessionID: "sess-1", Token: "token-1"})
	assert.ErrorIs(t, err, ErrWrongStep)
	assert.Equal(t, 0, client.calls)
}

func TestUseCase_Execute_SubmitInFlight(t *testing.T) {
	ctx := context.Background()
	store := sessionStore.NewStore(time.Hour)
	id := sessionWithSlot(t, store, "2024-06-05T14:00")

	// Помечаем отправку в полёте
	_, err := store.Mutate(ctx, id, func(s *domain.WizardSession) error {
		s.StartSubmit()
		return nil
	})
	require.NoError(t, err)

	client := &fakeAppointmentClient{}
	uc := NewUseCase(store, client, newFakeMetrics(), nopLogger{})

	_, err = uc.Execute(ctx, &Request{SessionID: id, Token: "token-1"})
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Equal(t, 0, client.calls)
}

func TestUseCase_Execute_SessionNotFound(t *testing.T) {
	store := sessionStore.NewStore(time.Hour)
	uc := NewUseCase(store, &fakeAppointmentClient{}, newFakeMetrics(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing", Token: "token-1"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
