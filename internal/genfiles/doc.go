// Package genfiles creates synthetic directory and file trees for
// test-data provisioning.
//
// Two generation modes are provided: a flat set of identically sized
// binary files, and a randomized nested structure of subdirectories
// holding files of random type and size. Both modes share one random
// payload source and accumulate the same statistics, which Inspect can
// also reconstruct from an existing tree on disk.
package genfiles
