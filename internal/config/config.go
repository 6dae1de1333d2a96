// Package config содержит логику чтения конфигурации сервиса.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации сервиса взыскания задолженности.
type Config struct {
	RunAddress      string  `env:"RUN_ADDRESS"`
	DocumentDir     string  `env:"DOCUMENT_DIR"`
	SendGridAddress string  `env:"SENDGRID_ADDRESS"`
	SendGridAPIKey  string  `env:"SENDGRID_API_KEY"`
	SenderEmail     string  `env:"SENDER_EMAIL"`
	BaseRatePercent float64 `env:"BASE_RATE"`
}

// Parse считывает конфигурацию из переменных окружения и флагов командной
// строки; значения из окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDocumentDir := cfg.DocumentDir
	envSendGridAddress := cfg.SendGridAddress
	envSendGridAPIKey := cfg.SendGridAPIKey
	envSenderEmail := cfg.SenderEmail
	envBaseRate := cfg.BaseRatePercent
	// Нулевая базовая ставка — допустимое значение, поэтому для него
	// проверяется само наличие переменной окружения.
	_, envBaseRateSet := os.LookupEnv("BASE_RATE")

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.DocumentDir, "o", "/tmp/debtclear_pdfs", "directory for generated case documents")
	flag.StringVar(&cfg.SendGridAddress, "s", "https://api.sendgrid.com", "SendGrid API base URL")
	flag.StringVar(&cfg.SendGridAPIKey, "k", "", "SendGrid API key")
	flag.StringVar(&cfg.SenderEmail, "f", "noreply@debtclear.eu", "notification sender address")
	flag.Float64Var(&cfg.BaseRatePercent, "b", 4.75, "Bank of England base rate, percent per annum")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envDocumentDir != "" {
		cfg.DocumentDir = envDocumentDir
	}
	if envSendGridAddress != "" {
		cfg.SendGridAddress = envSendGridAddress
	}
	if envSendGridAPIKey != "" {
		cfg.SendGridAPIKey = envSendGridAPIKey
	}
	if envSenderEmail != "" {
		cfg.SenderEmail = envSenderEmail
	}
	if envBaseRateSet {
		cfg.BaseRatePercent = envBaseRate
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}
	if cfg.BaseRatePercent < 0 {
		return nil, fmt.Errorf("base rate must be non-negative, got %v", cfg.BaseRatePercent)
	}

	return cfg, nil
}
