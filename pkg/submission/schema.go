package submission

type FieldKind string

const (
	FIELD_KIND_TIMESTAMP FieldKind = "timestamp"
	FIELD_KIND_EMAIL     FieldKind = "email"
	FIELD_KIND_TEXT      FieldKind = "text"
	FIELD_KIND_CHOICE    FieldKind = "choice"
)

type Field string

const (
	FIELD_SUBMISSION_DATE      Field = "submissionDate"
	FIELD_EMAIL                Field = "email"
	FIELD_FIRST_NAME           Field = "firstName"
	FIELD_LAST_NAME            Field = "lastName"
	FIELD_ADDRESS              Field = "address"
	FIELD_CITY                 Field = "city"
	FIELD_STATE                Field = "state"
	FIELD_ZIPCODE              Field = "zipcode"
	FIELD_PHONE                Field = "phone"
	FIELD_TEXT_TO_PHONE        Field = "q_textToPhone"
	FIELD_NAME_OF_DECEASED     Field = "q_nameOfDeceased"
	FIELD_RELATION_TO_DECEASED Field = "q_relationToDeceased"
	FIELD_AGE_18_PLUS          Field = "q_age18plus"
	FIELD_TBD                  Field = "q_tbd"
	FIELD_SHMIRA_BIZ_HOURS_OK  Field = "q_shmiraBizHoursOk"
	FIELD_TBD_2                Field = "q_tbd2"
	FIELD_AFFILIATION          Field = "q_affiliation"
	FIELD_SYNAGOGUE_NAME       Field = "q_synagogueName"
	FIELD_ON_MAILING_LIST      Field = "q_onMailingList"
	FIELD_CERTIFY_TRUE         Field = "q_certifyTrue"
)

type FieldDef struct {
	Name Field
	Kind FieldKind
}

// FormSchema lists the submitted values in the order the guest form sends them.
// The position in this list is the position in the raw value sequence, so any
// change to the upstream form must be mirrored here.
var FormSchema = []FieldDef{
	{Name: FIELD_SUBMISSION_DATE, Kind: FIELD_KIND_TIMESTAMP},
	{Name: FIELD_EMAIL, Kind: FIELD_KIND_EMAIL},
	{Name: FIELD_FIRST_NAME, Kind: FIELD_KIND_TEXT},
	{Name: FIELD_LAST_NAME, Kind: FIELD_KIND_TEXT},
	{Name: FIELD_ADDRESS, Kind: FIELD_KIND_TEXT},
	{Name: FIELD_CITY, Kind: FIELD_KIND_TEXT},
	{Name: FIELD_STATE, Kind: FIELD_KIND_TEXT},
	{Name: FIELD_ZIPCODE, Kind: FIELD_KIND_TEXT},
	{Name: FIELD_PHONE, Kind: FIELD_KIND_TEXT},
	{Name: FIELD_TEXT_TO_PHONE, Kind: FIELD_KIND_CHOICE},
	{Name: FIELD_NAME_OF_DECEASED, Kind: FIELD_KIND_TEXT},
	{Name: FIELD_RELATION_TO_DECEASED, Kind: FIELD_KIND_CHOICE},
	{Name: FIELD_AGE_18_PLUS, Kind: FIELD_KIND_CHOICE},
	{Name: FIELD_TBD, Kind: FIELD_KIND_TEXT},
	{Name: FIELD_SHMIRA_BIZ_HOURS_OK, Kind: FIELD_KIND_CHOICE},
	{Name: FIELD_TBD_2, Kind: FIELD_KIND_TEXT},
	{Name: FIELD_AFFILIATION, Kind: FIELD_KIND_CHOICE},
	{Name: FIELD_SYNAGOGUE_NAME, Kind: FIELD_KIND_TEXT},
	{Name: FIELD_ON_MAILING_LIST, Kind: FIELD_KIND_CHOICE},
	{Name: FIELD_CERTIFY_TRUE, Kind: FIELD_KIND_CHOICE},
}

// Answer values used by the pre-approval rules
const (
	ANSWER_YES                      = "Yes"
	ANSWER_RELATION_FAMILY          = "Family"
	ANSWER_AFFILIATION_LOCAL_MEMBER = "Member of local synagogue"
)

func fieldIndex(f Field) int {
	for i, def := range FormSchema {
		if def.Name == f {
			return i
		}
	}
	return -1
}
