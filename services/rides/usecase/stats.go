package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cashlink/cashlink/internal/pkg/models"
)

// periodStart returns the inclusive cutoff for a stats period. Unknown
// periods fall back to month; "all" has no cutoff.
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case "week":
		return now.AddDate(0, 0, -7)
	case "year":
		return now.AddDate(-1, 0, 0)
	case "all":
		return time.Time{}
	default:
		return now.AddDate(0, -1, 0)
	}
}

func normalizePeriod(period string) string {
	switch period {
	case "week", "month", "year", "all":
		return period
	default:
		return "month"
	}
}

// GetDriverStats builds the driver dashboard payload: period aggregates,
// acceptance and completion rates, a trailing seven day series and all
// time totals.
func (uc *rideUC) GetDriverStats(ctx context.Context, driverID uuid.UUID, period string) (*models.DriverStats, error) {
	now := models.Now()

	var (
		wg        sync.WaitGroup
		bookings  []*models.RideBooking
		totals    *models.DriverAllTimeTotals
		listErr   error
		totalsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		bookings, listErr = uc.rideRepo.ListByDriverSince(ctx, driverID, periodStart(period, now))
	}()
	go func() {
		defer wg.Done()
		totals, totalsErr = uc.rideRepo.DriverAllTimeTotals(ctx, driverID)
	}()
	wg.Wait()

	if listErr != nil {
		return nil, listErr
	}
	if totalsErr != nil {
		return nil, totalsErr
	}

	return &models.DriverStats{
		DriverID:    driverID,
		Period:      normalizePeriod(period),
		PeriodStats: aggregateRides(bookings, now),
		AllTime:     *totals,
	}, nil
}

// aggregateRides folds a period's bookings into the dashboard aggregates.
// Accepted counts bookings that got past pending, including those that
// already started or finished.
func aggregateRides(bookings []*models.RideBooking, now time.Time) models.RidePeriodStats {
	var stats models.RidePeriodStats

	var ratingSum float64
	var ratingCount int

	for _, b := range bookings {
		stats.TotalRequests++
		switch b.Status {
		case models.RideStatusAccepted:
			stats.Accepted++
		case models.RideStatusInProgress:
			stats.InProgress++
		case models.RideStatusCompleted:
			stats.Completed++
			stats.TotalEarnings += b.Fare
			stats.TotalDistance += b.Distance
		case models.RideStatusCancelled:
			stats.Cancelled++
		case models.RideStatusRejected:
			stats.Rejected++
		}
		if b.DriverRating != nil {
			ratingSum += *b.DriverRating
			ratingCount++
		}
	}

	taken := stats.Accepted + stats.InProgress + stats.Completed
	stats.AcceptanceRate = rate(taken, stats.TotalRequests)
	stats.CompletionRate = rate(stats.Completed, taken)
	if ratingCount > 0 {
		stats.AverageRating = ratingSum / float64(ratingCount)
	}
	stats.Daily = dailyRideSeries(bookings, now)

	return stats
}

// rate formats part over whole as a percentage with one decimal. An
// empty denominator reads as a perfect score: a driver with no requests
// has declined nothing.
func rate(part, whole int) string {
	if whole == 0 {
		return "100.0"
	}
	return fmt.Sprintf("%.1f", float64(part)/float64(whole)*100)
}

// dailyRideSeries builds the trailing seven day series, oldest day
// first, with zero filled gaps. Volume carries distance, revenue carries
// completed fares.
func dailyRideSeries(bookings []*models.RideBooking, now time.Time) []models.DailyStat {
	const days = 7

	index := make(map[string]int, days)
	series := make([]models.DailyStat, days)
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, i-days+1).Format("2006-01-02")
		series[i] = models.DailyStat{Day: day}
		index[day] = i
	}

	for _, b := range bookings {
		i, ok := index[b.CreatedAt.Format("2006-01-02")]
		if !ok {
			continue
		}
		series[i].Count++
		series[i].Volume += b.Distance
		if b.Status == models.RideStatusCompleted {
			series[i].Revenue += b.Fare
		}
	}

	return series
}
