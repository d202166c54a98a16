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

// GetAgentStats builds the agent dashboard payload: period aggregates, a
// trailing seven day series and all time totals.
func (uc *transactionUC) GetAgentStats(ctx context.Context, agentID uuid.UUID, period string) (*models.AgentStats, error) {
	now := models.Now()

	var (
		wg        sync.WaitGroup
		txs       []*models.Transaction
		totals    *models.AllTimeTotals
		txErr     error
		totalsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		txs, txErr = uc.txRepo.ListByAgentSince(ctx, agentID, periodStart(period, now))
	}()
	go func() {
		defer wg.Done()
		totals, totalsErr = uc.txRepo.AgentAllTimeTotals(ctx, agentID)
	}()
	wg.Wait()

	if txErr != nil {
		return nil, txErr
	}
	if totalsErr != nil {
		return nil, totalsErr
	}

	return &models.AgentStats{
		AgentID:     agentID,
		Period:      normalizePeriod(period),
		PeriodStats: aggregatePeriod(txs, now),
		AllTime:     *totals,
	}, nil
}

func normalizePeriod(period string) string {
	switch period {
	case "week", "month", "year", "all":
		return period
	default:
		return "month"
	}
}

// aggregatePeriod folds a period's transactions into the dashboard
// aggregates. Revenue counts completed transactions only; volume counts
// everything.
func aggregatePeriod(txs []*models.Transaction, now time.Time) models.TransactionPeriodStats {
	stats := models.TransactionPeriodStats{
		ByService: make(map[string]models.BreakdownEntry),
		ByNetwork: make(map[string]models.BreakdownEntry),
	}

	customers := make(map[uuid.UUID]struct{})
	var completedFees float64

	for _, tx := range txs {
		stats.TotalTransactions++
		stats.TotalVolume += tx.Amount
		customers[tx.CustomerID] = struct{}{}

		completed := tx.Status == models.TransactionStatusCompleted
		if completed {
			stats.Completed++
			stats.TotalRevenue += tx.FeeAmount
			completedFees += tx.FeeAmount
		}
		if tx.Status == models.TransactionStatusPending {
			stats.Pending++
			switch tx.Confirmation() {
			case models.ConfirmationAwaitingCustomer:
				stats.AwaitingCustomer++
			case models.ConfirmationAwaitingAgent:
				stats.AwaitingAgent++
			}
		}

		addBreakdown(stats.ByService, tx.ServiceType, tx, completed)
		addBreakdown(stats.ByNetwork, tx.Network, tx, completed)
	}

	stats.UniqueCustomers = len(customers)
	if stats.TotalTransactions > 0 {
		stats.AverageAmount = stats.TotalVolume / float64(stats.TotalTransactions)
	}
	if stats.Completed > 0 {
		stats.AverageFee = completedFees / float64(stats.Completed)
	}
	stats.SuccessRate = successRate(stats.Completed, stats.TotalTransactions)
	stats.Daily = dailySeries(txs, now)

	return stats
}

func addBreakdown(entries map[string]models.BreakdownEntry, key string, tx *models.Transaction, completed bool) {
	if key == "" {
		key = "unknown"
	}
	entry := entries[key]
	entry.Count++
	entry.Volume += tx.Amount
	if completed {
		entry.Revenue += tx.FeeAmount
	}
	entries[key] = entry
}

// successRate formats completed over total as a percentage with one
// decimal, "0.0" when there is nothing to rate.
func successRate(completed, total int) string {
	if total == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(completed)/float64(total)*100)
}

// dailySeries builds the trailing seven day series, oldest day first,
// with zero filled gaps.
func dailySeries(txs []*models.Transaction, now time.Time) []models.DailyStat {
	const days = 7

	index := make(map[string]int, days)
	series := make([]models.DailyStat, days)
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, i-days+1).Format("2006-01-02")
		series[i] = models.DailyStat{Day: day}
		index[day] = i
	}

	for _, tx := range txs {
		i, ok := index[tx.CreatedDate.Format("2006-01-02")]
		if !ok {
			continue
		}
		series[i].Count++
		series[i].Volume += tx.Amount
		if tx.Status == models.TransactionStatusCompleted {
			series[i].Revenue += tx.FeeAmount
		}
	}

	return series
}
