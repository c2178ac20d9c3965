package main

import "github.com/SiddheshD91/PPL2026/internal/cli"

func main() {
	cli.Execute()
}
