package main

import (
	"fmt"
	"os"

	"github.com/agrolivro/agrolivro/cmd/extrato"
	"github.com/agrolivro/agrolivro/cmd/fluxo"
	"github.com/agrolivro/agrolivro/cmd/root"
)

func init() {
	root.Init()
	root.Cmd.AddCommand(extrato.Cmd)
	root.Cmd.AddCommand(fluxo.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
