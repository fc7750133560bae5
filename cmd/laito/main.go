package main

import "github.com/laito/laito/cmd/laito/cmd"

func main() {
	cmd.Execute()
}
