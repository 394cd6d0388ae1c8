package main

import "github.com/graphidae/resolvergen/cmd"

func main() {
	cmd.Execute()
}
