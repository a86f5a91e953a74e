package attendance

// ApprovalStatusFor maps a submitted day status to its initial approval
// state. Absences, suspensions and terminations are administrative facts and
// need no review; leave and resignation wait for an explicit decision. Every
// other status, including custom ones, defaults to pending so nothing slips
// through unreviewed.
func ApprovalStatusFor(status Status) ApprovalStatus {
	switch status {
	case StatusAbsent, StatusSuspension, StatusTermination:
		return ApprovalApproved
	default:
		return ApprovalPending
	}
}
