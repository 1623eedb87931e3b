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

	"github.com/nickng/dinephil/dot"
	"github.com/nickng/dinephil/table"
	"github.com/spf13/cobra"
)

var (
	ringOutfile string // Path to DOT output file
)

// ringCmd represents the ring command
var ringCmd = &cobra.Command{
	Use:   "ring",
	Short: "Draw the seating of the table",
	Long: `Draw the seating of the table as a Graphviz DOT graph

Every philosopher has an edge to its left and its right fork; every fork is
shared by exactly two neighbours.`,
	Run: func(cmd *cobra.Command, args []string) {
		ring()
	},
}

func init() {
	ringCmd.Flags().StringVar(&ringOutfile, "output", "", "output DOT file (default is stdout)")

	RootCmd.AddCommand(ringCmd)
}

func ring() {
	conf, ok := mustTableConfig(os.Stdin, os.Stdout)
	if !ok {
		return
	}
	t, err := table.New(conf)
	if err != nil {
		log.Fatal(err)
	}
	if ringOutfile == "" {
		if _, err := dot.WriteTo(os.Stdout, t); err != nil {
			log.Fatal(err)
		}
		return
	}
	f, err := os.Create(ringOutfile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if _, err := dot.WriteTo(f, t); err != nil {
		log.Fatal(err)
	}
}
