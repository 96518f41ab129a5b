// Package audit records encode and decode operations.
//
// Every operation appends one JSON object per line to audit.jsonl in the
// settings directory. Entries name the configuration by key id and
// fingerprint, never by the configuration string, and never store input or
// output text.
//
// # Usage
//
//	entry := audit.NewEntry("encode")
//	entry.Fingerprint = configs.Fingerprint(cfg)
//	entry.InputBytes = len(input)
//	audit.Log(entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If the log cannot be written the operation
// still succeeds.
package audit
