// Package disks holds the fixed substitution tables used by the enigma engine.
//
// A disk is an involutive permutation over the 62 character alphabet
// [a-z A-Z 0-9]: every character maps to a different character, and mapping
// twice returns the original. Disks are identified by a single uppercase
// letter. The five built-in disks A through E are immutable and may be shared
// by any number of engines; additional disks can be registered in a cloned
// Set, typically loaded from a disks file.
//
// # Key Order
//
// Each disk remembers the order its keys were declared in, with digit keys
// first in ascending order. Transitional disks are derived by walking these
// lists, so the order is part of the cipher and must never be re-sorted:
// changing it makes existing cipher text unrecoverable.
//
// # Generation
//
// Generate pairs random characters until the alphabet is exhausted. It is the
// tool used to produce new tables offline; the engine never calls it.
package disks
