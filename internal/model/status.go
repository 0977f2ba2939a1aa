package model

// DocumentStatus represents the lifecycle state of an accounting document
type DocumentStatus string

const (
	// StatusDraft means the document has been created but not posted
	StatusDraft DocumentStatus = "Draft"

	// StatusPosted means the document is booked and awaiting payment
	StatusPosted DocumentStatus = "Posted"

	// StatusPaid means the document has been settled in full
	StatusPaid DocumentStatus = "Paid"

	// StatusOverdue means the document passed its due date unpaid
	StatusOverdue DocumentStatus = "Overdue"

	// StatusVoid means the document was cancelled
	StatusVoid DocumentStatus = "Void"
)

// String returns the string representation of DocumentStatus
func (ds DocumentStatus) String() string {
	return string(ds)
}

// IsOpen returns true if the document still expects payment
func (ds DocumentStatus) IsOpen() bool {
	return ds == StatusPosted || ds == StatusOverdue
}

// IsClosed returns true if the document needs no further action
func (ds DocumentStatus) IsClosed() bool {
	return ds == StatusPaid || ds == StatusVoid
}
