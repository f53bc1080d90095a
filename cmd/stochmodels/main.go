package main

import (
	"github.com/c9s/stochmodels/pkg/cmd"
)

func main() {
	cmd.Execute()
}
