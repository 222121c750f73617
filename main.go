package main

import "github.com/costcorrect/costcorrect/internal/cli"

func main() {
	cli.Execute()
}
