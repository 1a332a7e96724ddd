// Package main provides the tabl CLI.
package main

import (
	"github.com/PeterLuschny/tablInspector/internal/cli"
)

func main() {
	cli.Execute()
}
