package appointments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookingWizardService/internal/domain"
	appointmentClient "github.com/m04kA/BookingWizardService/internal/integrations/appointmentservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAppointmentClient struct {
	appointment *appointmentClient.Appointment
	err         error
	calls       int
	lastStatus  domain.AppointmentStatus
}

func (c *fakeAppointmentClient) UpdateStatus(_ context.Context, _, _ string, status domain.AppointmentStatus) (*appointmentClient.Appointment, error) {
	c.calls++
	c.lastStatus = status
	return c.appointment, c.err
}

func TestService_UpdateStatus(t *testing.T) {
	client := &fakeAppointmentClient{appointment: &appointmentClient.Appointment{
		ID:             "appt-1",
		ProfessionalID: "pro-1",
		ServiceID:      "svc-1",
		StartDT:        "2024-06-05T14:00",
		Status:         "CONFIRMED",
	}}
	svc := NewService(client, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), "token-1", "appt-1", "CONFIRMED")
	require.NoError(t, err)

	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, client.lastStatus)
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	client := &fakeAppointmentClient{}
	svc := NewService(client, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), "token-1", "appt-1", "SHIPPED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	// До бэкенда запрос не доходит
	assert.Equal(t, 0, client.calls)
}

func TestService_UpdateStatus_ClientErrors(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		wantErr   error
	}{
		{
			name:      "not found",
			clientErr: appointmentClient.ErrAppointmentNotFound,
			wantErr:   ErrAppointmentNotFound,
		},
		{
			name:      "unauthorized",
			clientErr: appointmentClient.ErrUnauthorized,
			wantErr:   ErrUnauthorized,
		},
		{
			name:      "transport error",
			clientErr: errors.New("connection refused"),
			wantErr:   ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeAppointmentClient{err: tt.clientErr}, nopLogger{})

			_, err := svc.UpdateStatus(context.Background(), "token-1", "appt-1", "CANCELED")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_UpdateStatus_RejectedKeepsBackendMessage(t *testing.T) {
	client := &fakeAppointmentClient{err: &appointmentClient.RejectedError{
		StatusCode: 422,
		Message:    "completed appointments cannot be canceled",
	}}
	svc := NewService(client, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), "token-1", "appt-1", "CANCELED")

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "completed appointments cannot be canceled", rejected.Message)
}
