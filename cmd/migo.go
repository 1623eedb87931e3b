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
	migoOutfile string // Path to output file
)

// migoCmd represents the migo command
var migoCmd = &cobra.Command{
	Use:   "migo",
	Short: "Extract MiGo types of the fork protocol",
	Long: `Extract MiGo types of the fork protocol

The table lock is a channel of size 1 (send to lock, receive to unlock).
Every philosopher is a goroutine spawned from main.`,
	Run: func(cmd *cobra.Command, args []string) {
		extractMigo()
	},
}

func init() {
	migoCmd.Flags().StringVar(&migoOutfile, "output", "", "output migo file")

	RootCmd.AddCommand(migoCmd)
}

func extractMigo() {
	conf, ok := mustTableConfig(os.Stdin, os.Stdout)
	if !ok {
		return
	}
	if migoOutfile == "" {
		if _, err := protocol.WriteMigo(os.Stdout, conf.Philosophers); err != nil {
			log.Fatal(err)
		}
		return
	}
	f, err := os.Create(migoOutfile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if _, err := protocol.WriteMigo(f, conf.Philosophers); err != nil {
		log.Fatal(err)
	}
}
