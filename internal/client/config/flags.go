package config

import (
	"flag"
	"os"
	"time"

	"github.com/ykarpenko/sessionkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-i string   identity provider endpoint URL
//	-p string   profile store base URL
//	-f string   local storage file path
//	-t int      request timeout in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-i", "-p", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.IdentityEndpoint, "i", cfg.IdentityEndpoint, "identity provider endpoint URL")
	fs.StringVar(&cfg.ProfileStoreURL, "p", cfg.ProfileStoreURL, "profile store base URL")
	fs.StringVar(&cfg.StoragePath, "f", cfg.StoragePath, "local storage file path")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
