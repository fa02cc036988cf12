package formhandler

import (
	"errors"

	"github.com/google/uuid"
)

const (
	DEFAULT_TOKEN_COLUMN    = 22
	DEFAULT_APPROVAL_COLUMN = 23
)

// SheetConfig locates the response sheet and the columns written per row.
type SheetConfig struct {
	SpreadsheetID  string `yaml:"spreadsheet_id"`
	SheetName      string `yaml:"sheet_name"`
	TokenColumn    int    `yaml:"token_column"`
	ApprovalColumn int    `yaml:"approval_column"`
}

func (c SheetConfig) WithDefaults() SheetConfig {
	if c.TokenColumn == 0 {
		c.TokenColumn = DEFAULT_TOKEN_COLUMN
	}
	if c.ApprovalColumn == 0 {
		c.ApprovalColumn = DEFAULT_APPROVAL_COLUMN
	}
	return c
}

func (c SheetConfig) Validate() error {
	if c.SpreadsheetID == "" {
		return errors.New("spreadsheet id is required")
	}
	if c.TokenColumn < 0 || c.ApprovalColumn < 0 {
		return errors.New("column numbers must not be negative")
	}
	return nil
}

// RowRef points to the spreadsheet row that triggered a submission event.
type RowRef struct {
	SpreadsheetID string `json:"spreadsheetId"`
	SheetName     string `json:"sheetName"`
	Row           int    `json:"row"`
}

// SubmissionEvent is created once per trigger and discarded after processing.
type SubmissionEvent struct {
	Values         []string
	Row            RowRef
	UUID           string
	TokenColumn    int
	ApprovalColumn int
}

// NewSubmissionEvent attaches a fresh tracking token and the configured
// columns to the submitted values. An empty sheet name in row falls back to
// the configured one.
func NewSubmissionEvent(values []string, row RowRef, conf SheetConfig) SubmissionEvent {
	if row.SpreadsheetID == "" {
		row.SpreadsheetID = conf.SpreadsheetID
	}
	if row.SheetName == "" {
		row.SheetName = conf.SheetName
	}
	return SubmissionEvent{
		Values:         values,
		Row:            row,
		UUID:           uuid.New().String(),
		TokenColumn:    conf.TokenColumn,
		ApprovalColumn: conf.ApprovalColumn,
	}
}

type Outcome string

const (
	OutcomeSkippedUpdate Outcome = "skipped-update"
	OutcomeDone          Outcome = "done"
	OutcomeFailed        Outcome = "failed"
)
