package main

import (
	"boscoin.io/stakegov/cmd/stakegov/cmd"
)

func main() {
	cmd.Execute()
}
