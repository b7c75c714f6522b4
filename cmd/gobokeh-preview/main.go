package main

import (
	"github.com/gobokeh/gobokeh/internal/cli"
	_ "github.com/gobokeh/gobokeh/internal/logsetup"
	"github.com/gobokeh/gobokeh/internal/preview"
)

func main() {
	cli.StandardMain(
		func() cli.Configurable { return preview.NewConfig() },
		preview.NewPreviewHandler(),
	)
}
