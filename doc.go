/*
Package chainset is a hash set toolbox.

ChainSet strives to be a small and predictable set container for Go programs
which need more control over bucket layout than Go's built-in map offers:
fixed growth steps, inspectable chains and a debug dump of the table. Package
structure is as follows:

■ hashset: Package hashset implements a generic hash set with separate chaining,
dynamic rehashing and a forward iterator over the sparse bucket array.

■ hashing: Package hashing provides default hash functions for key types.

■ shell: Package shell implements a small command language to experiment with
named sets; cmd/hsrepl wraps it into an interactive command line tool.

The base package contains function types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chainset
