package cmd

import "time"

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	JWTSecret        string
	TokenTTL         time.Duration
	OverdueThreshold time.Duration
	LogLevel         string
}
