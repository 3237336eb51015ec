package main

import "distro-collections/internal/cli"

func main() {
	cli.Execute()
}
