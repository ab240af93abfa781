// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client command line. args excludes the program name.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress  string
		requestTimeout time.Duration
		fetchRetries   int
		databaseDSN    string
		refreshDelay   time.Duration
		logFile        string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&serverAddress, "a", "", "Backend address (host:port or URL)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&fetchRetries, "fetch-retries", 0, "Retries for the comment feed fetch")
	fs.StringVar(&databaseDSN, "d", "", "Session database path")
	fs.DurationVar(&refreshDelay, "refresh-delay", 0, "Delay before re-fetching comments after a submission")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
			FetchRetries:   fetchRetries,
		},
		Workers: Workers{
			RefreshDelay: refreshDelay,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
