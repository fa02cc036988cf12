package submission

import "log/slog"

// HasApprovalFields checks that every answer the pre-approval rules depend on
// was given.
func HasApprovalFields(r SubmissionRecord) bool {
	return r.CertifyTrue != "" &&
		r.Age18Plus != "" &&
		r.ShmiraBizHoursOk != "" &&
		r.RelationToDeceased != "" &&
		r.Affiliation != "" &&
		r.SynagogueName != ""
}

// PreApproveGuest decides if the applicant meets the family or the local
// synagogue minimums. Incomplete answers are never pre-approved.
func PreApproveGuest(r SubmissionRecord, debug bool) bool {
	if !HasApprovalFields(r) {
		slog.Warn("missing required fields for pre-approval")
		return false
	}

	if debug {
		slog.Debug("pre-approval criteria used",
			slog.String("age18plus", r.Age18Plus),
			slog.String("shmiraBizHoursOk", r.ShmiraBizHoursOk),
			slog.String("relationToDeceased", r.RelationToDeceased),
			slog.String("affiliation", r.Affiliation),
			slog.String("synagogueName", r.SynagogueName),
		)
	}

	preApproved := false
	if meetsFamilyMinimums(r) {
		if debug {
			slog.Debug("pre-approved: meets family minimums")
		}
		preApproved = true
	}
	if meetsLocalSynagogueMinimums(r) {
		if debug {
			slog.Debug("pre-approved: meets local synagogue minimums")
		}
		preApproved = true
	}

	if debug {
		slog.Debug("pre-approval result", slog.Bool("preApproved", preApproved))
	}
	return preApproved
}

func meetsBaseRequirements(r SubmissionRecord) bool {
	return r.Age18Plus == ANSWER_YES && r.ShmiraBizHoursOk == ANSWER_YES
}

func meetsFamilyMinimums(r SubmissionRecord) bool {
	return meetsBaseRequirements(r) && r.RelationToDeceased == ANSWER_RELATION_FAMILY
}

func meetsLocalSynagogueMinimums(r SubmissionRecord) bool {
	return meetsBaseRequirements(r) &&
		r.Affiliation == ANSWER_AFFILIATION_LOCAL_MEMBER &&
		r.SynagogueName != ""
}
