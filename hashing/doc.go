/*
Package hashing provides default hash functions for set keys.

Integer-like keys, including named integer types, hash to their own value.
This keeps bucket placement predictable: in a table of 7 buckets, key 42 lives
in bucket 42 mod 7 = 0. Strings are hashed with xxhash. Pointers hash by
address, structs and arrays element by element, so keys which are == always
hash equally.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashing
