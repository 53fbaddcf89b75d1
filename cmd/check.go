/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JPsnipe/OPEN-RADIOSS/validator"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [deck files]",
	Short: "Validate the block format of Radioss deck files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Printf("error: must supply at least one deck file to check\n")
			os.Exit(1)
		}
		failed := false
		for _, path := range args {
			if err := validator.ValidateFile(path); err != nil {
				fmt.Printf("%s: %s\n", path, err.Error())
				failed = true
				continue
			}
			fmt.Printf("%s: OK\n", path)
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
