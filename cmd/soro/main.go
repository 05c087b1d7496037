package main

import "github.com/aalvaropc/soro/internal/cli"

func main() {
	cli.Execute()
}
