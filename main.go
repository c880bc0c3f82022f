package main

import "github.com/user/inout-extractor-cli/cmd"

func main() {
	cmd.Execute()
}
