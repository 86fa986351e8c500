// Package audit serializes error reports for storage and later inspection.
//
// Snapshot is a pure-data projection of an explain.Report whose field names
// mirror the model, keeping serialized logs readable by humans. Capture and
// Restore convert between the two with round-trip fidelity: a restored
// report renders byte-identically to the original.
//
// Snapshots encode to JSON, YAML or MessagePack via Marshal/Unmarshal, and
// Log appends timestamped JSON-lines entries suitable for audit files.
package audit
