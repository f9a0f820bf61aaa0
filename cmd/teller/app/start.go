// Copyright 2026 The go-teller Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package app

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "github.com/tellerledger/go-teller/db/boltdb"
	_ "github.com/tellerledger/go-teller/db/memdb"
	"github.com/tellerledger/go-teller/log"
	"github.com/tellerledger/go-teller/node"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the teller with config",
	Long: `Start the interactive teller frontend with the specified configuration.
The account snapshot is loaded at login and the transaction log is
written when the session logs out.`,
	Run: func(cmd *cobra.Command, args []string) {
		// read in config file
		if cfgFile == "" {
			log.Fatal(errors.New("config file not provided"))
		}
		v := viper.New()
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		// init teller config from viper
		c, err := node.NewConfig(v)
		if err != nil {
			log.Fatal(err)
		}
		// run the teller loop
		n := node.NewNode(c, os.Stdin, os.Stdout)
		n.Start()
	},
}

var cfgFile string

func init() {
	startCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "path of the config file")
	startCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(startCmd)
}
