package main

import "github.com/JPsnipe/OPEN-RADIOSS/cmd"

func main() {
	cmd.Execute()
}
