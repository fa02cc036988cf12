package submission

import "log/slog"

// IsFormUpdated reports whether a submission event looks like an edit of an
// already processed row rather than a new submission. Only the shape
// "timestamp kept, email cleared" is recognised.
func IsFormUpdated(r SubmissionRecord) bool {
	if !r.IsPresent(FIELD_SUBMISSION_DATE) || !r.IsPresent(FIELD_EMAIL) {
		slog.Warn("missing required fields for checking updates")
		return false
	}

	return r.SubmissionDate != "" && r.Email == ""
}
