package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	OutputDir string

	FreeShippingThreshold decimal.Decimal
	ShippingFeeAmount     decimal.Decimal
	ShippingFeeSKU        string
	ShippingFeeLabel      string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		FreeShippingThreshold: getEnvDecimal("FREE_SHIPPING_THRESHOLD", decimal.NewFromInt(1000)),
		ShippingFeeAmount:     getEnvDecimal("SHIPPING_FEE_AMOUNT", decimal.NewFromInt(120)),
		ShippingFeeSKU:        getEnv("SHIPPING_FEE_SKU", "Z90001"),
		ShippingFeeLabel:      getEnv("SHIPPING_FEE_LABEL", "運費"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return fallback
	}
	return parsed
}
