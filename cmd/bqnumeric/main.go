package main

import (
	"github.com/calebcase/bqnumeric/cmd/bqnumeric/cmd"
)

func main() {
	cmd.Execute()
}
