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
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nickng/dinephil/fairness"
	"github.com/nickng/dinephil/table"
	"github.com/spf13/cobra"
)

var (
	checkFair  bool    // Run fairness analysis after the simulation
	fairFactor float64 // Starvation threshold for fairness analysis
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation",
	Long: `Run the dining philosophers simulation

Every philosopher thinks, gets hungry and eats until it has eaten for the eat
target. State changes are logged; a timing report is printed at the end.`,
	Run: func(cmd *cobra.Command, args []string) {
		simulate(true, checkFair)
	},
}

func init() {
	runCmd.Flags().BoolVar(&checkFair, "check-fair", false, "run fairness analysis after the simulation")
	runCmd.Flags().Float64Var(&fairFactor, "starvation-factor", fairness.DefaultFactor, "failed attempts above this multiple of the mean count as starvation")

	RootCmd.AddCommand(runCmd)
}

// simulate runs a table until every philosopher has finished or the process
// is interrupted. logStates controls whether state changes are logged.
func simulate(logStates, analyse bool) {
	l := newLogWriter()
	defer l.Cleanup()

	conf, ok := mustTableConfig(os.Stdin, os.Stdout)
	if !ok {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []table.Option{}
	if logStates {
		opts = append(opts, table.WithLogger(l.Logger("table: ")))
	}
	t, err := table.New(conf, opts...)
	if err != nil {
		log.Fatal(err)
	}
	if err := t.Run(ctx); err != nil {
		log.Println("Simulation stopped early:", err)
	}

	report := t.Report()
	if _, err := report.WriteTo(os.Stdout); err != nil {
		log.Fatal(err)
	}
	if analyse {
		writeAnalysis(os.Stdout, report)
	}
}

// writeAnalysis writes the fairness analysis of report to w. It is part of
// the command output, so --no-logging does not hide it.
func writeAnalysis(w io.Writer, report *table.Report) *fairness.Analysis {
	return fairness.Check(report, fairFactor, log.New(w, "fairness: ", 0))
}
