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
	"log"
	"os"

	"github.com/nickng/dinephil/protocol"
	"github.com/spf13/cobra"
)

var (
	cfsmsOutfile string // Path to CFSMs output file
)

// cfsmsCmd represents the cfsms command
var cfsmsCmd = &cobra.Command{
	Use:   "cfsms",
	Short: "Extract CFSMs of the fork protocol",
	Long: `Extract CFSMs of the fork protocol

One machine stands for the table lock, one for each philosopher. The output
can be fed to a global graph synthesis tool to check the protocol.`,
	Run: func(cmd *cobra.Command, args []string) {
		extractCFSMs()
	},
}

func init() {
	cfsmsCmd.Flags().StringVar(&cfsmsOutfile, "output", "", "output CFSMs file (default is stdout)")

	RootCmd.AddCommand(cfsmsCmd)
}

func extractCFSMs() {
	l := newLogWriter()
	defer l.Cleanup()

	conf, ok := mustTableConfig(os.Stdin, os.Stdout)
	if !ok {
		return
	}
	sys := protocol.NewCFSMs(conf.Philosophers)
	sys.PrintSummary(l.Writer)

	if cfsmsOutfile == "" {
		if _, err := sys.WriteTo(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	f, err := os.Create(cfsmsOutfile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if _, err := sys.WriteTo(f); err != nil {
		log.Fatal(err)
	}
}
