package main

import (
	"github.com/nickng/dinephil/cmd"
)

func main() {
	cmd.Execute()
}
