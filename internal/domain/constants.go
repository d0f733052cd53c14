package domain

// Approval workflow states shared by customers and payments. Records are
// created pending and moved to approved/rejected by an admin update.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)
