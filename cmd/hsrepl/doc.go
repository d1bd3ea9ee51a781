/*
Package hsrepl/main provides an interactive command line tool (HS.REPL)
for the command language of package shell. HS.REPL serves as a sandbox for
experiments with hash sets: watch tables grow, inspect bucket chains and
compare sets.

Configuration keys may be given on the command line:

    hsrepl -set chainset.default-capacity=11 -set shell.panic-on-error=true


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chainset.shell'
func tracer() tracing.Trace {
	return tracing.Select("chainset.shell")
}
