package main

import "i3mcp/cmd"

func main() {
	cmd.Execute()
}
