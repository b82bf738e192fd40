package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   gRPC bind address (e.g., ":50051")
//	-d string   database DSN (mongodb://, postgres://, sqlite:// or memory://)
//	-n string   database name (MongoDB)
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-r int      reminder concurrency
//	-b string   S3 bucket for report archives
//	-l string   log level (debug, info, warn, error)
//
// Args are filtered with flagx.FilterArgs first so that -c/-config and
// unknown flags do not trip the parser.
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-d", "-n", "-s", "-t", "-r", "-b", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "HTTP address and port")
	fs.StringVar(&config.GRPCAddr, "g", config.GRPCAddr, "gRPC address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DatabaseName, "n", config.DatabaseName, "database name")
	fs.StringVar(&config.JWTSecret, "s", config.JWTSecret, "JWT secret key")

	validity := fs.Int("t", int(config.AccessTokenValidity.Minutes()), "access token validity (in minutes)")

	fs.IntVar(&config.ReminderConcurrency, "r", config.ReminderConcurrency, "parallel reminder sends")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket for annual report archives")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.AccessTokenValidity = time.Duration(*validity) * time.Minute
		}
	})
	return nil
}
