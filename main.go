package main

import "github.com/agentmux/agentmux/internal/cmd"

func main() {
	cmd.Execute()
}
