package models

// FeeRule describes how a fee is computed for one network or service key.
// All components are optional; a zero rule yields a zero fee.
type FeeRule struct {
	Percentage *float64 `json:"percentage,omitempty" mapstructure:"percentage"`
	Flat       *float64 `json:"flat,omitempty" mapstructure:"flat"`
	MinFee     *float64 `json:"min_fee,omitempty" mapstructure:"min_fee"`
	MaxFee     *float64 `json:"max_fee,omitempty" mapstructure:"max_fee"`
}

// FeeStructure maps network or service type keys to fee rules. The "default"
// key is the fallback rule when no specific key matches.
type FeeStructure map[string]FeeRule

// FeeQuote is the result of a fee calculation
type FeeQuote struct {
	Fee        float64 `json:"fee"`
	Percentage float64 `json:"percentage"`
}
