// Package enigma implements a rotor-style substitution cipher.
//
// DO NOT USE THIS FOR PASSWORDS. The cipher obfuscates text so that only an
// identically configured Engine can recover it; it offers no cryptographic
// guarantees.
//
// # Configuration
//
// An Engine is driven by a comma separated configuration string. Each token
// is either a disk selection, one letter followed by an offset of one to
// three digits ("A12"), or a wire board pair of two letters ("fD"). At least
// three disk selections are required:
//
//	engine, err := enigma.New("A12,E43,B27,FC,cS,yW,kA,iJ")
//
// Configure validates and stores a new string; Reset activates the stored
// string. Encode and Decode call Reset themselves.
//
// # Signal Path
//
// For configuration A B C every alphanumeric character travels
//
//	WireBoard -> A -> AB -> B -> BC -> C -> CC -> C -> BC -> B -> AB -> A -> WireBoard
//
// where AB is the transitional disk between A and B at the disk offset plus
// the character position. Every stage is an involution, so Translate is its
// own inverse: decoding is translating again with the same configuration.
// Any other character passes through unchanged.
//
// # Concurrency
//
// An Engine caches transitional disks and is not safe for concurrent use.
// Create one Engine per operation or guard it with a mutex. The built-in
// disk tables are immutable and shared freely.
package enigma
