package main

import "github.com/educhain/educhain/app/tooling/cli/cmd"

func main() {
	cmd.Execute()
}
