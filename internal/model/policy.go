package model

// CancellationPolicy governs which orders may be cancelled.
// CancellableStatuses is the allow-list; it must stay externally
// configurable, never inlined in handler code.
type CancellationPolicy struct {
	CancellableStatuses  []string
	RefundProcessingDays int
}

// Cancellable reports whether an order in the given status may be cancelled.
func (p CancellationPolicy) Cancellable(status string) bool {
	for _, s := range p.CancellableStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ReturnPolicy governs return eligibility and refund fees.
type ReturnPolicy struct {
	ReturnWindowDays     int
	RestockingFeePercent float64
	ReturnType           string // "REFUND" | "REPLACEMENT"
}
