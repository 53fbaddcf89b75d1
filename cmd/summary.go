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
	"sort"

	"github.com/spf13/cobra"

	"github.com/JPsnipe/OPEN-RADIOSS/model"
	"github.com/JPsnipe/OPEN-RADIOSS/readfiles"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print entity counts and mesh extents for a .cdb export",
	Run: func(cmd *cobra.Command, args []string) {
		cdbFile, _ := cmd.Flags().GetString("cdbFile")
		if len(cdbFile) == 0 {
			fmt.Printf("error: must supply a mesh export (-F, --cdbFile) in ANSYS .cdb format\n")
			os.Exit(1)
		}
		m, err := readfiles.ReadCDB(cdbFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}

		fmt.Printf("Nodes     = %d\n", len(m.Nodes))
		fmt.Printf("Elements  = %d\n", len(m.Elements))
		fmt.Printf("Selections = %d, Materials = %d\n", len(m.Selections), len(m.Materials))

		etypes := m.EtypeCounts()
		codes := make([]int, 0, len(etypes))
		for code := range etypes {
			codes = append(codes, code)
		}
		sort.Ints(codes)
		for _, code := range codes {
			fmt.Printf("etype %4d = %d\n", code, etypes[code])
		}

		kws := m.KeywordCounts()
		names := make([]model.Keyword, 0, len(kws))
		for kw := range kws {
			names = append(names, kw)
		}
		sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
		for _, kw := range names {
			fmt.Printf("/%s = %d\n", kw, kws[kw])
		}

		if bb, ok := m.BoundingBox(); ok {
			fmt.Printf("Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\nZMin/ZMax = %5.3f, %5.3f\n",
				bb[0], bb[1], bb[2], bb[3], bb[4], bb[5])
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringP("cdbFile", "F", "", "mesh export to read in ANSYS (.cdb) format")
}
