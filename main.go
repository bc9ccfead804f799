package main

import "defect-tracker.com/defect-tracker/cmd"

func main() {
	cmd.Execute()
}
