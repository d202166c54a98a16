// Package fees computes transaction fees from a configured fee structure.
// Calculations are pure; the structure itself is loaded at startup.
package fees

import (
	"math"

	"github.com/cashlink/cashlink/internal/pkg/models"
)

// DefaultPercentage applies when no rule matches at all
const DefaultPercentage = 2.0

// Calculate computes the fee for an amount. Rule selection prefers the
// network key, then the service type key, then the "default" entry. A zero
// amount or empty structure yields a zero quote, never an error.
func Calculate(amount float64, structure models.FeeStructure, network, serviceType string) models.FeeQuote {
	if amount <= 0 || len(structure) == 0 {
		return models.FeeQuote{}
	}

	rule, ok := selectRule(structure, network, serviceType)
	if !ok {
		rule = models.FeeRule{Percentage: ptr(DefaultPercentage)}
	}

	percentage := 0.0
	if rule.Percentage != nil {
		percentage = *rule.Percentage
	}

	fee := amount * percentage / 100
	if rule.Flat != nil {
		fee += *rule.Flat
	}

	// Min clamp is evaluated before max clamp; both may apply
	if rule.MinFee != nil && fee < *rule.MinFee {
		fee = *rule.MinFee
	}
	if rule.MaxFee != nil && fee > *rule.MaxFee {
		fee = *rule.MaxFee
	}

	return models.FeeQuote{
		Fee:        roundCents(fee),
		Percentage: percentage,
	}
}

func selectRule(structure models.FeeStructure, network, serviceType string) (models.FeeRule, bool) {
	if network != "" {
		if rule, ok := structure[network]; ok {
			return rule, true
		}
	}
	if serviceType != "" {
		if rule, ok := structure[serviceType]; ok {
			return rule, true
		}
	}
	rule, ok := structure["default"]
	return rule, ok
}

// roundCents rounds half-up on the cent boundary
func roundCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

func ptr(v float64) *float64 {
	return &v
}
