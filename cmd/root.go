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
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nickng/dinephil/table"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile   string // Path to config file
	logFile   string // Path to log file
	noLogging bool   // Turn off logging
	noColour  bool   // Turn of colour output
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dinephil",
	Short: "Dining philosophers simulator",
	Long: `dinephil simulates the dining philosophers problem

Philosophers take both of their forks inside a single table-wide lock and
retry after a pause when a fork is busy. This is the toplevel command.
Use "dinephil run -n 5" to run a table of 5 philosophers`,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dinephil.yaml)")
	RootCmd.PersistentFlags().StringVar(&logFile, "log", "", "path to log file (default is stdout)")
	RootCmd.PersistentFlags().BoolVar(&noLogging, "no-logging", false, "disable logging")
	RootCmd.PersistentFlags().BoolVar(&noColour, "no-colour", false, "disable colour output")

	def := table.DefaultConfig()
	flags := RootCmd.PersistentFlags()
	flags.StringP("philosophers", "n", "", fmt.Sprintf("number of philosophers [%d,%d] (asks when unset)", table.MinPhilosophers, table.MaxPhilosophers))
	flags.Duration("time-unit", def.TimeUnit, "wall-clock length of one simulated second")
	flags.Int("eat-target", def.EatTarget, "seconds of eating before a philosopher is done")
	flags.Int("think-min", def.ThinkMin, "shortest thinking period (seconds)")
	flags.Int("think-max", def.ThinkMax, "longest thinking period (seconds)")
	flags.Int("hungry-min", def.HungryMin, "shortest pause before reaching for forks (seconds)")
	flags.Int("hungry-max", def.HungryMax, "longest pause before reaching for forks (seconds)")
	flags.Int64("seed", def.Seed, "random seed (0 picks one from the clock)")
	if err := bindConfig(flags); err != nil {
		log.Fatal(err)
	}
}

// configKeys are the table settings read through viper.
var configKeys = []string{"philosophers", "time-unit", "eat-target", "think-min", "think-max", "hungry-min", "hungry-max", "seed"}

// bindConfig binds the table settings to their flags and DINEPHIL_*
// environment variables.
func bindConfig(flags *pflag.FlagSet) error {
	for _, key := range configKeys {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			return err
		}
	}
	viper.SetEnvPrefix("dinephil") // DINEPHIL_PHILOSOPHERS etc.
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
	return nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" { // enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	}

	viper.SetConfigName(".dinephil") // name of config file (without extension)
	viper.AddConfigPath("$HOME")     // adding home directory as first search path

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
