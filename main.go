package main

import "github.com/devdollz/swarm-go/cmd"

func main() {
	cmd.Execute()
}
