// ABOUTME: Entry point for pcbeep
// ABOUTME: Beeps the PC speaker via the console, falling back to the terminal bell
package main

import (
	"errors"
	"os"

	"github.com/Resonate-Protocol/pcbeep/internal/command"
	"github.com/Resonate-Protocol/pcbeep/internal/config"
	"github.com/rs/zerolog/log"
)

func main() {
	err := command.Run(os.Args, command.Deps{})
	if err == nil {
		return
	}

	// Usage has already been printed
	var cfgErr *config.ConfigurationError
	if errors.As(err, &cfgErr) {
		os.Exit(1)
	}
	log.Fatal().Err(err).Msg("pcbeep failed")
}
