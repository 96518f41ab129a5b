// Package utils provides small helpers shared by the CLI commands: reading
// input from flags, files or stdin, writing output, and formatting disk
// lists.
package utils
