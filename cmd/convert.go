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
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/JPsnipe/OPEN-RADIOSS/InputParameters"
	"github.com/JPsnipe/OPEN-RADIOSS/readfiles"
	"github.com/JPsnipe/OPEN-RADIOSS/validator"
	"github.com/JPsnipe/OPEN-RADIOSS/writefiles"
)

type ConvertJob struct {
	CDBFile   string
	ParamFile string
	OutDir    string
	BaseName  string
	WriteINP  bool
	Check     bool
	Profile   bool
}

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a .cdb export into OpenRadioss mesh, starter and engine files",
	Long: `
Parses the .cdb file, plans the assembly and writes mesh.inc,
<base>_0000.rad and <base>_0001.rad,

cdb2rad convert -F model.cdb -I run.yaml -o out`,
	Run: func(cmd *cobra.Command, args []string) {
		job := &ConvertJob{}
		job.CDBFile, _ = cmd.Flags().GetString("cdbFile")
		job.ParamFile, _ = cmd.Flags().GetString("parametersFile")
		job.OutDir, _ = cmd.Flags().GetString("outDir")
		job.BaseName, _ = cmd.Flags().GetString("baseName")
		job.WriteINP, _ = cmd.Flags().GetBool("inp")
		job.Check, _ = cmd.Flags().GetBool("check")
		job.Profile, _ = cmd.Flags().GetBool("profile")
		noDefMat, _ := cmd.Flags().GetBool("no-default-material")
		if len(job.CDBFile) == 0 {
			fmt.Printf("error: must supply a mesh export (-F, --cdbFile) in ANSYS .cdb format\n")
			os.Exit(1)
		}
		if job.Profile {
			defer profile.Start(profile.ProfilePath(".")).Stop()
		}
		ip := processParameters(job)
		if noDefMat {
			ip.DefaultMaterial = false
		}
		RunConvert(job, ip)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("cdbFile", "F", "", "mesh export to read in ANSYS (.cdb) format")
	convertCmd.Flags().StringP("parametersFile", "I", "", "YAML file for conversion parameters like:\n\t- UnitSystem\n\t- BoundaryConditions")
	convertCmd.Flags().StringP("outDir", "o", ".", "directory the output deck is written to")
	convertCmd.Flags().StringP("baseName", "b", "model", "base name for the starter and engine files")
	convertCmd.Flags().Bool("inp", false, "also export the mesh as an Abaqus .inp deck")
	convertCmd.Flags().Bool("check", false, "validate the written decks after conversion")
	convertCmd.Flags().Bool("no-default-material", false, "fail instead of synthesizing a material for parts with undefined materials")
	convertCmd.Flags().Bool("profile", false, "write a CPU profile of the conversion")
}

func processParameters(job *ConvertJob) (ip *InputParameters.ConversionParameters) {
	ip = InputParameters.NewConversionParameters()
	if len(job.ParamFile) == 0 {
		return
	}
	data, err := ioutil.ReadFile(job.ParamFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = ip.Parse(data); err != nil {
		fmt.Printf("error: unable to parse %s: %s\n", job.ParamFile, err.Error())
		os.Exit(1)
	}
	ip.Print()
	return
}

func RunConvert(job *ConvertJob, ip *InputParameters.ConversionParameters) {
	m, err := readfiles.ReadCDB(job.CDBFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	deck, err := writefiles.NewDeck(m, ip)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}

	meshPath := filepath.Join(job.OutDir, ip.MeshFile)
	starterPath := filepath.Join(job.OutDir, job.BaseName+"_0000.rad")
	enginePath := filepath.Join(job.OutDir, job.BaseName+"_0001.rad")

	writeOutput(meshPath, deck.WriteMesh)
	writeOutput(starterPath, deck.WriteStarter)
	writeOutput(enginePath, deck.WriteEngine)
	if job.WriteINP {
		writeOutput(filepath.Join(job.OutDir, job.BaseName+".inp"), func(w io.Writer) error {
			return writefiles.WriteINP(w, m)
		})
	}

	fmt.Printf("Nodes: %d, Elements: %d\n", len(m.Nodes), len(m.Elements))
	for _, note := range deck.Completions() {
		fmt.Printf("completed: %s\n", note)
	}
	if job.Check {
		for _, path := range []string{starterPath, enginePath} {
			if err := validator.ValidateFile(path); err != nil {
				fmt.Printf("error: %s: %s\n", path, err.Error())
				os.Exit(1)
			}
		}
		fmt.Println("deck format OK")
	}
}

func writeOutput(path string, emit func(io.Writer) error) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	defer f.Close()
	if err = emit(f); err != nil {
		fmt.Printf("error: writing %s: %s\n", path, err.Error())
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
