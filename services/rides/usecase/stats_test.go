package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashlink/cashlink/internal/pkg/models"
)

func TestGetDriverStats_Rates(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	driverID := uuid.New()
	now := time.Now()

	bookings := []*models.RideBooking{
		{Status: models.RideStatusCompleted, Fare: 1000, Distance: 5, DriverRating: ptrFloat(5), CreatedAt: now},
		{Status: models.RideStatusCompleted, Fare: 1500, Distance: 8, DriverRating: ptrFloat(4), CreatedAt: now},
		{Status: models.RideStatusInProgress, Fare: 800, Distance: 3, CreatedAt: now},
		{Status: models.RideStatusAccepted, Fare: 600, Distance: 2, CreatedAt: now},
		{Status: models.RideStatusRejected, CreatedAt: now},
		{Status: models.RideStatusCancelled, CreatedAt: now},
	}

	mockRepo.EXPECT().
		ListByDriverSince(gomock.Any(), driverID, gomock.Any()).
		Return(bookings, nil)
	mockRepo.EXPECT().
		DriverAllTimeTotals(gomock.Any(), driverID).
		Return(&models.DriverAllTimeTotals{TotalRides: 120, TotalEarnings: 95000}, nil)

	stats, err := uc.GetDriverStats(context.Background(), driverID, "week")
	require.NoError(t, err)

	ps := stats.PeriodStats
	assert.Equal(t, 6, ps.TotalRequests)
	assert.Equal(t, 2, ps.Completed)
	// 4 of 6 requests were taken
	assert.Equal(t, "66.7", ps.AcceptanceRate)
	// 2 of the 4 taken finished
	assert.Equal(t, "50.0", ps.CompletionRate)
	assert.Equal(t, 2500.0, ps.TotalEarnings)
	assert.Equal(t, 13.0, ps.TotalDistance)
	assert.Equal(t, 4.5, ps.AverageRating)
	assert.Equal(t, 120, stats.AllTime.TotalRides)
}

func TestGetDriverStats_DefaultsTo100WhenEmpty(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	driverID := uuid.New()

	mockRepo.EXPECT().
		ListByDriverSince(gomock.Any(), driverID, gomock.Any()).
		Return([]*models.RideBooking{}, nil)
	mockRepo.EXPECT().
		DriverAllTimeTotals(gomock.Any(), driverID).
		Return(&models.DriverAllTimeTotals{}, nil)

	stats, err := uc.GetDriverStats(context.Background(), driverID, "all")
	require.NoError(t, err)

	assert.Equal(t, "100.0", stats.PeriodStats.AcceptanceRate)
	assert.Equal(t, "100.0", stats.PeriodStats.CompletionRate)
	assert.Len(t, stats.PeriodStats.Daily, 7)
}

func TestGetDriverStats_AllRejectedStillComputesCompletion(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	driverID := uuid.New()
	now := time.Now()

	bookings := []*models.RideBooking{
		{Status: models.RideStatusRejected, CreatedAt: now},
		{Status: models.RideStatusRejected, CreatedAt: now},
	}

	mockRepo.EXPECT().
		ListByDriverSince(gomock.Any(), driverID, gomock.Any()).
		Return(bookings, nil)
	mockRepo.EXPECT().
		DriverAllTimeTotals(gomock.Any(), driverID).
		Return(&models.DriverAllTimeTotals{}, nil)

	stats, err := uc.GetDriverStats(context.Background(), driverID, "month")
	require.NoError(t, err)

	assert.Equal(t, "0.0", stats.PeriodStats.AcceptanceRate)
	// No rides were taken, nothing to complete
	assert.Equal(t, "100.0", stats.PeriodStats.CompletionRate)
}

func TestGetDriverStats_DailySeriesOrder(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	driverID := uuid.New()
	now := time.Now()

	bookings := []*models.RideBooking{
		{Status: models.RideStatusCompleted, Fare: 900, Distance: 4, CreatedAt: now},
		{Status: models.RideStatusCompleted, Fare: 700, Distance: 3, CreatedAt: now.AddDate(0, 0, -6)},
	}

	mockRepo.EXPECT().
		ListByDriverSince(gomock.Any(), driverID, gomock.Any()).
		Return(bookings, nil)
	mockRepo.EXPECT().
		DriverAllTimeTotals(gomock.Any(), driverID).
		Return(&models.DriverAllTimeTotals{}, nil)

	stats, err := uc.GetDriverStats(context.Background(), driverID, "week")
	require.NoError(t, err)

	daily := stats.PeriodStats.Daily
	require.Len(t, daily, 7)
	assert.Equal(t, now.AddDate(0, 0, -6).Format("2006-01-02"), daily[0].Day)
	assert.Equal(t, 700.0, daily[0].Revenue)
	assert.Equal(t, 900.0, daily[6].Revenue)
}
