// Copyright © 2016 Nicholas Ng <nickng@projectfate.org>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/nickng/dinephil/logwriter"
	"github.com/nickng/dinephil/table"
	"github.com/spf13/viper"
)

// newLogWriter creates the log writer selected by the persistent flags.
func newLogWriter() *logwriter.Writer {
	logFile, err := RootCmd.PersistentFlags().GetString("log")
	if err != nil {
		log.Fatal(err)
	}
	noLogging, err := RootCmd.PersistentFlags().GetBool("no-logging")
	if err != nil {
		log.Fatal(err)
	}
	noColour, err := RootCmd.PersistentFlags().GetBool("no-colour")
	if err != nil {
		log.Fatal(err)
	}
	l := logwriter.NewFile(logFile, !noLogging, !noColour)
	if err := l.Create(); err != nil {
		log.Fatal(err)
	}
	return l
}

// tableConfig reads the table configuration from flags, environment and
// config file. The operator is asked for the number of philosophers if none
// is configured.
func tableConfig(in io.Reader, out io.Writer) (table.Config, error) {
	conf := table.DefaultConfig()
	var (
		n   int
		err error
	)
	if count := viper.GetString("philosophers"); count != "" {
		n, err = table.ParseCount(count)
	} else {
		n, err = readCount(in, out)
	}
	if err != nil {
		return conf, err
	}
	if err := viper.Unmarshal(&conf); err != nil {
		return conf, fmt.Errorf("config: %w: %w", table.ErrInvalidInput, err)
	}
	conf.Philosophers = n
	return conf, conf.Validate()
}

// readCount asks the operator for the number of philosophers.
func readCount(in io.Reader, out io.Writer) (int, error) {
	fmt.Fprintln(out, "Enter the number of philosophers: ")
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("read: %w", err)
		}
		return 0, table.ErrInvalidInput
	}
	return table.ParseCount(scanner.Text())
}

// userMessage returns what to tell the operator about a configuration error.
// The second result is false if err is not a configuration error.
func userMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, table.ErrInvalidInput):
		return "Invalid input", true
	case errors.Is(err, table.ErrOutOfRange):
		return fmt.Sprintf("Please enter a positive integer between %d and %d.", table.MinPhilosophers, table.MaxPhilosophers), true
	case errors.Is(err, table.ErrBadRange), errors.Is(err, table.ErrBadEatTarget), errors.Is(err, table.ErrBadTimeUnit):
		return fmt.Sprintf("Invalid configuration: %v", err), true
	}
	return "", false
}

// mustTableConfig returns the table configuration. ok is false if the
// configuration was rejected, in which case the reason has been printed and
// the command should return without running anything.
func mustTableConfig(in io.Reader, out io.Writer) (conf table.Config, ok bool) {
	conf, err := tableConfig(in, out)
	if err != nil {
		if msg, isConf := userMessage(err); isConf {
			fmt.Fprintln(out, msg)
			return conf, false
		}
		log.Fatal(err)
	}
	return conf, true
}
