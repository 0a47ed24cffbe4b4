package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookingWizardService/internal/integrations/scheduleservice"
	"github.com/m04kA/BookingWizardService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeScheduleClient struct {
	services      []scheduleservice.Service
	professionals []scheduleservice.Professional
	servicesErr   error
	profsErr      error
}

func (c *fakeScheduleClient) ListServices(context.Context, string) ([]scheduleservice.Service, error) {
	return c.services, c.servicesErr
}

func (c *fakeScheduleClient) ListProfessionals(context.Context, string) ([]scheduleservice.Professional, error) {
	return c.professionals, c.profsErr
}

func TestService_GetCatalog(t *testing.T) {
	client := &fakeScheduleClient{
		services: []scheduleservice.Service{
			{ID: "svc-1", Name: "Haircut", Description: ptr.Ptr("Classic cut"), BasePrice: 35, BaseDurationMinutes: 45},
		},
		professionals: []scheduleservice.Professional{
			{ID: "pro-1", Name: "Anna", Email: "anna@example.com", IsActive: true},
			{ID: "pro-2", Name: "Boris", Email: "boris@example.com", IsActive: false},
		},
	}
	svc := NewService(client, nopLogger{})

	resp, err := svc.GetCatalog(context.Background(), "token-1")
	require.NoError(t, err)

	require.Len(t, resp.Services, 1)
	assert.Equal(t, "svc-1", resp.Services[0].ID)
	assert.Equal(t, float64(35), resp.Services[0].Price)
	assert.Equal(t, 45, resp.Services[0].DurationMinutes)

	// Неактивные специалисты отфильтрованы
	require.Len(t, resp.Professionals, 1)
	assert.Equal(t, "pro-1", resp.Professionals[0].ID)
}

func TestService_GetCatalog_Unauthorized(t *testing.T) {
	client := &fakeScheduleClient{servicesErr: scheduleservice.ErrUnauthorized}
	svc := NewService(client, nopLogger{})

	_, err := svc.GetCatalog(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestService_GetCatalog_IntegrationError(t *testing.T) {
	client := &fakeScheduleClient{profsErr: errors.New("connection refused")}
	svc := NewService(client, nopLogger{})

	_, err := svc.GetCatalog(context.Background(), "token-1")
	assert.ErrorIs(t, err, ErrInternal)
}
