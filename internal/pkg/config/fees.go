package config

import (
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/spf13/viper"
)

// defaultFeePercentage applies when no fee structure file is configured at
// all, matching the calculator's built-in fallback.
const defaultFeePercentage = 2

// LoadFeeStructure reads the fee structure file (JSON, keyed by network or
// service type with a "default" entry). A missing or unreadable file falls
// back to the built-in default rule rather than failing startup.
func LoadFeeStructure(path string) (models.FeeStructure, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		pct := float64(defaultFeePercentage)
		return models.FeeStructure{
			"default": {Percentage: &pct},
		}, err
	}

	structure := models.FeeStructure{}
	if err := v.Unmarshal(&structure); err != nil {
		pct := float64(defaultFeePercentage)
		return models.FeeStructure{
			"default": {Percentage: &pct},
		}, err
	}

	return structure, nil
}
