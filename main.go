package main

import "github.com/ooopus/Exam-Papers/cmd"

func main() {
	cmd.Execute()
}
