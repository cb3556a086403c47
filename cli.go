//go:build cli
// +build cli

package main

import (
	"github.com/oticaisis/storefront/cmd"
	"github.com/oticaisis/storefront/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
