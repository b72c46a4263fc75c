package main

import "github.com/tonyroud/replicheck/internal/cli"

func main() {
	cli.Execute()
}
