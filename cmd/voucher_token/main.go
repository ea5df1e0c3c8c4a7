// Command voucher_token prints a bearer token for calling the API locally.
// It signs with the JWT_SECRET and JWT_ISSUER the server is configured with.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/payment_voucher_app/internal/platform/config"
	"github.com/SscSPs/payment_voucher_app/internal/utils"
	"github.com/SscSPs/payment_voucher_app/pkg/logging"
)

func main() {
	userID := flag.String("user", "", "user ID to put in the token subject")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.IsProduction)

	token, err := utils.GenerateJWT(*userID, cfg.JWTSecret, *ttl, cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
