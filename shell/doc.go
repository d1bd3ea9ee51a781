/*
Package shell implements a small command language for experiments with
hash sets. Commands operate on named sets of int64 keys:

    new A               // create set A with default capacity
    insert A 1 2 3 4 5  // 5th key grows A to 15 buckets
    erase A 3 99        // prints 1 0
    dump A              // one line per bucket
    copy A B            // B := A
    overlap A B         // true
    digest B            // fingerprint of the keys, equal for equal sets

Lines are tokenized by a lexmachine DFA. Everything after '#' is a comment.
Sets are kept in a registry, which maps names to bindings.

Clients may add commands with Shell.Bind.

Configuration

If configuration key "shell.panic-on-error" is set to true, Eval panics on
command errors instead of returning them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shell

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chainset.shell'.
func tracer() tracing.Trace {
	return tracing.Select("chainset.shell")
}
