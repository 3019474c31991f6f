package main

import "github.com/factoquest/factoquest-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
