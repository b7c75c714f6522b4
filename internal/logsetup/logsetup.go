// Package logsetup configures the standard logger for all gobokeh
// commands. Import it for its side effects:
//
//	import _ "github.com/gobokeh/gobokeh/internal/logsetup"
package logsetup

import (
	"log"
	"os"
)

func init() {
	flags := log.LstdFlags
	if os.Getenv("GOBOKEH_DEBUG") != "" {
		flags |= log.Lshortfile
	}
	log.SetFlags(flags)
}
