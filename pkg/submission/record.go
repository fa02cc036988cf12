package submission

// SubmissionRecord is the named projection of one guest form submission.
type SubmissionRecord struct {
	RawValues []string `json:"rawValues"`

	SubmissionDate string `json:"submissionDate"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zipcode        string `json:"zipcode"`
	Phone          string `json:"phone"`

	TextToPhone        string `json:"q_textToPhone"`
	NameOfDeceased     string `json:"q_nameOfDeceased"`
	RelationToDeceased string `json:"q_relationToDeceased"`
	Age18Plus          string `json:"q_age18plus"`
	Tbd                string `json:"q_tbd"`
	ShmiraBizHoursOk   string `json:"q_shmiraBizHoursOk"`
	Tbd2               string `json:"q_tbd2"`
	Affiliation        string `json:"q_affiliation"`
	SynagogueName      string `json:"q_synagogueName"`
	OnMailingList      string `json:"q_onMailingList"`
	CertifyTrue        string `json:"q_certifyTrue"`
}

// ExtractRecord maps the raw value sequence onto FormSchema. Values are not
// validated; positions beyond the end of values stay empty and are reported
// as missing by IsPresent.
func ExtractRecord(values []string) SubmissionRecord {
	r := SubmissionRecord{
		RawValues: values,
	}
	for i, def := range FormSchema {
		if i >= len(values) {
			break
		}
		if target := r.fieldRef(def.Name); target != nil {
			*target = values[i]
		}
	}
	return r
}

// IsPresent reports whether the submission sequence reached the position of f.
func (r SubmissionRecord) IsPresent(f Field) bool {
	i := fieldIndex(f)
	return i >= 0 && i < len(r.RawValues)
}

// Value returns the extracted value for f, or "" for unknown fields.
func (r SubmissionRecord) Value(f Field) string {
	if target := r.fieldRef(f); target != nil {
		return *target
	}
	return ""
}

// Snapshot returns the record as key/value pairs for QC logging.
func (r SubmissionRecord) Snapshot() map[string]any {
	snapshot := map[string]any{
		"rawValues": r.RawValues,
	}
	for _, def := range FormSchema {
		snapshot[string(def.Name)] = r.Value(def.Name)
	}
	return snapshot
}

func (r *SubmissionRecord) fieldRef(f Field) *string {
	switch f {
	case FIELD_SUBMISSION_DATE:
		return &r.SubmissionDate
	case FIELD_EMAIL:
		return &r.Email
	case FIELD_FIRST_NAME:
		return &r.FirstName
	case FIELD_LAST_NAME:
		return &r.LastName
	case FIELD_ADDRESS:
		return &r.Address
	case FIELD_CITY:
		return &r.City
	case FIELD_STATE:
		return &r.State
	case FIELD_ZIPCODE:
		return &r.Zipcode
	case FIELD_PHONE:
		return &r.Phone
	case FIELD_TEXT_TO_PHONE:
		return &r.TextToPhone
	case FIELD_NAME_OF_DECEASED:
		return &r.NameOfDeceased
	case FIELD_RELATION_TO_DECEASED:
		return &r.RelationToDeceased
	case FIELD_AGE_18_PLUS:
		return &r.Age18Plus
	case FIELD_TBD:
		return &r.Tbd
	case FIELD_SHMIRA_BIZ_HOURS_OK:
		return &r.ShmiraBizHoursOk
	case FIELD_TBD_2:
		return &r.Tbd2
	case FIELD_AFFILIATION:
		return &r.Affiliation
	case FIELD_SYNAGOGUE_NAME:
		return &r.SynagogueName
	case FIELD_ON_MAILING_LIST:
		return &r.OnMailingList
	case FIELD_CERTIFY_TRUE:
		return &r.CertifyTrue
	}
	return nil
}
