package main

import "github.com/jsphweid/harmonywheel/cmd"

func main() {
	cmd.Execute()
}
