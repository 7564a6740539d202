// Licensed to SolID under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. SolID licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package cli implements the licensify command-line front-end: a thin
// cobra command tree over the core library. The core never logs and
// never calls os.Exit; both live here.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	exitOK             = 0
	exitUsageError     = 64
	exitOperationError = 1
)

// domainError marks a failure that occurred while invoking the core
// library (a bad signature, expired license, wrong password, ...) so
// Execute can tell it apart from cobra's own flag/argument errors.
type domainError struct {
	err error
}

func (e *domainError) Error() string { return e.err.Error() }
func (e *domainError) Unwrap() error { return e.err }

func wrapDomainError(err error) error {
	if err == nil {
		return nil
	}
	return &domainError{err: err}
}

var log zerolog.Logger

// Execute builds the command tree, runs it against os.Args, and
// returns the process exit code. It never calls os.Exit itself so it
// can be used from tests.
func Execute() int {
	var verbose bool

	root := &cobra.Command{
		Use:           "licensify",
		Short:         "Issue, verify, and encrypt PASETO v4 licenses and PASERK k4 keys.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
				Level(level).
				With().Timestamp().Logger()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(keypairCommand())
	root.AddCommand(symmetricCommand())
	root.AddCommand(saltCommand())
	root.AddCommand(licenseCommand())

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	fmt.Fprintln(os.Stderr, err)

	var de *domainError
	if errors.As(err, &de) {
		log.Error().Err(de.Unwrap()).Msg("operation failed")
		return exitOperationError
	}
	return exitUsageError
}
