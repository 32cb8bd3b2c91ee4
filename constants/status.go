package constants

// DocumentStatus is the canonical processing status for a document.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    DocumentStatus = "pending"    // uploaded, waiting for an extraction attempt
	StatusProcessing DocumentStatus = "processing" // an attempt is in flight
	StatusExtracted  DocumentStatus = "extracted"  // category data persisted (or general no-op)
	StatusFailed     DocumentStatus = "failed"     // last attempt ended in an unrecovered error
)

func StatusStrings() []string {
	return []string{
		string(StatusPending),
		string(StatusProcessing),
		string(StatusExtracted),
		string(StatusFailed),
	}
}

// IsTerminal reports whether the status ends an attempt sequence.
func (s DocumentStatus) IsTerminal() bool {
	return s == StatusExtracted || s == StatusFailed
}
