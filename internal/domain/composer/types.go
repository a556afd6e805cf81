package composer

// Status tracks a package through its lifecycle. Only draft is produced by
// composition itself; the later states are stamped by save/checkout flows and
// must survive further recomputation untouched.
type Status string

const (
	StatusDraft          Status = "draft"
	StatusSaved          Status = "saved"
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "confirmed"
	StatusCancelled      Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSaved, StatusPendingPayment, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}
