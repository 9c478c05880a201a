package main

import "github.com/cleishm/MACSearch/internal/cli"

func main() {
	cli.Execute()
}
