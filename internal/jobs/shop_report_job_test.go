package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/coffeeshop"
	"coffeeshop/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTopSpenderHandler struct{ mock.Mock }

func (m *MockTopSpenderHandler) Handle(
	ctx context.Context,
	query queries.GetTopSpenderQuery,
) (queries.SpenderResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.SpenderResponse), args.Error(1)
}

func textLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNewShopReportJob_InvalidSchedule(t *testing.T) {
	_, err := jobs.NewShopReportJob("every now and then", new(MockTopSpenderHandler), slog.New(slog.DiscardHandler))
	require.Error(t, err)
}

func TestShopReportJob_Run_ReportsTopSpender(t *testing.T) {
	// Given
	shop := coffeeshop.NewShop()
	alice, _ := shop.NewCustomer("Alice")
	latte, _ := shop.NewCoffee("Latte")
	_, err := alice.CreateOrder(latte, 3.5)
	require.NoError(t, err)

	var buf bytes.Buffer
	job, err := jobs.NewShopReportJob("@every 1h", queries.NewGetTopSpenderQueryHandler(shop), textLogger(&buf))
	require.NoError(t, err)

	// When
	job.Run(t.Context())

	// Then
	assert.Contains(t, buf.String(), "component=shop_report_job")
	assert.Contains(t, buf.String(), "top_spender=Alice")
	assert.Contains(t, buf.String(), "total_spent=3.5")
}

func TestShopReportJob_Run_EmptyShop(t *testing.T) {
	var buf bytes.Buffer
	job, err := jobs.NewShopReportJob("@every 1h", queries.NewGetTopSpenderQueryHandler(coffeeshop.NewShop()), textLogger(&buf))
	require.NoError(t, err)

	job.Run(t.Context())

	assert.Contains(t, buf.String(), "no orders yet")
	assert.NotContains(t, buf.String(), "top_spender")
}

func TestShopReportJob_Run_HandlerError(t *testing.T) {
	handler := new(MockTopSpenderHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(queries.SpenderResponse{}, errors.New("boom")).Once()

	var buf bytes.Buffer
	job, err := jobs.NewShopReportJob("0 */5 * * * *", handler, textLogger(&buf))
	require.NoError(t, err)

	job.Run(t.Context())

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "boom")
	handler.AssertExpectations(t)
}

func TestShopReportJob_StartStop(t *testing.T) {
	var buf bytes.Buffer
	job, err := jobs.NewShopReportJob("@every 1h", new(MockTopSpenderHandler), textLogger(&buf))
	require.NoError(t, err)

	job.Start()
	job.Stop()

	assert.Contains(t, buf.String(), "Shop report job started")
	assert.Contains(t, buf.String(), "Shop report job stopped")
}
