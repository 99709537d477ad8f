// Command token mints a bearer token for clients of a bridge that runs with
// APP_TOKEN_SIGN_KEY set.
//
// Usage:
//
//	APP_TOKEN_SIGN_KEY=secret token -sub monitor
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/utils"
)

func main() {
	log := logger.NewLogger("go-awl-token")

	fs := flag.NewFlagSet("token", flag.ExitOnError)
	subject := fs.String("sub", "monitor", "client name stored in the token subject")
	duration := fs.Duration("ttl", 0, "token lifetime, defaults to APP_TOKEN_DURATION")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.LoadTokenConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if *duration > 0 {
		cfg.TokenDuration = *duration
	}

	token, err := utils.GenerateJWTToken(cfg.TokenIssuer, *subject, cfg.TokenDuration, cfg.TokenSignKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error generating token")
	}

	fmt.Println(token.String())
}
