// Package audit implements the append-only audit trail: structured JSON
// records appended to category-specific log files, and a reader that turns
// those files back into masked, paginated display rows.
//
// Writes are best-effort by design — an audit write failure must never block
// or fail the operation being audited. Files are append-only: the writer
// never reads, rotates, or deletes them. There is no cross-process locking;
// per-call appends are assumed effectively atomic at the sizes involved.
package audit
