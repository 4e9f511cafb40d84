package main

import "solidarmap/internal/cli"

func main() {
	cli.Execute()
}
