package main

import "github.com/racedata/testday-report-go/cmd"

func main() {
	cmd.Execute()
}
