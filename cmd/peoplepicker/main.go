package main

import "peoplepicker/internal/cli"

func main() {
	cli.Execute()
}
