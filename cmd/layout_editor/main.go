// Package main starts the display layout editor server.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"
)

// main is the entrypoint for the display layout editor.
func main() {
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	if err := run(*debug); err != nil {
		log.Error().Err(err).Msg("fatal")
		os.Exit(1)
	}
}
