package main

import (
	"github.com/gobokeh/gobokeh/internal/bundler"
	"github.com/gobokeh/gobokeh/internal/cli"
	_ "github.com/gobokeh/gobokeh/internal/logsetup"
)

func main() {
	cli.StandardMain(
		func() cli.Configurable { return bundler.NewConfig() },
		bundler.NewBundleHandler(nil),
	)
}
