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
	"github.com/nickng/dinephil/fairness"
	"github.com/spf13/cobra"
)

// checkfairCmd represents the check-fair command
var checkfairCmd = &cobra.Command{
	Use:   "checkfair",
	Short: "Runs starvation checks",
	Long: `Runs starvation checks

The simulation is run without logging state changes, then every philosopher
is checked for starvation: philosophers failing to take their forks much more
often than the rest of the table are likely starved by the retry policy.`,
	Run: func(cmd *cobra.Command, args []string) {
		simulate(false, true)
	},
}

func init() {
	checkfairCmd.Flags().Float64Var(&fairFactor, "starvation-factor", fairness.DefaultFactor, "failed attempts above this multiple of the mean count as starvation")

	RootCmd.AddCommand(checkfairCmd)
}
