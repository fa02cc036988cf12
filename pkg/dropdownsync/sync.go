package dropdownsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

type Config struct {
	FormID        string `json:"form_id" yaml:"form_id"`
	SpreadsheetID string `json:"spreadsheet_id" yaml:"spreadsheet_id"`
	SheetName     string `json:"sheet_name" yaml:"sheet_name"`
	ColumnRange   string `json:"column_range" yaml:"column_range"`
}

type ColumnReader interface {
	ReadColumn(ctx context.Context, spreadsheetID string, sheetName string, a1Range string) ([]string, error)
}

type ChoiceUpdater interface {
	SetCheckboxChoices(ctx context.Context, formID string, choices []string) error
}

func (c Config) Validate() error {
	if c.FormID == "" {
		return errors.New("form id missing")
	}
	if c.SpreadsheetID == "" {
		return errors.New("spreadsheet id missing")
	}
	if c.SheetName == "" {
		return errors.New("sheet name missing")
	}
	if c.ColumnRange == "" {
		return errors.New("column range missing")
	}
	return nil
}

// FilterChoices drops empty values. Order and duplicates are kept as read.
func FilterChoices(values []string) []string {
	choices := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		choices = append(choices, v)
	}
	return choices
}

// UpdateDropdown replaces the checkbox choices of the configured form with the
// non-empty values of the configured sheet column. Any error aborts the sync.
func UpdateDropdown(ctx context.Context, reader ColumnReader, updater ChoiceUpdater, conf Config) ([]string, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	values, err := reader.ReadColumn(ctx, conf.SpreadsheetID, conf.SheetName, conf.ColumnRange)
	if err != nil {
		return nil, fmt.Errorf("read %s!%s: %w", conf.SheetName, conf.ColumnRange, err)
	}

	choices := FilterChoices(values)
	slog.Debug("dropdown choices read", slog.String("sheet", conf.SheetName), slog.Int("rows", len(values)), slog.Int("choices", len(choices)))

	if err := updater.SetCheckboxChoices(ctx, conf.FormID, choices); err != nil {
		return nil, fmt.Errorf("update form %s: %w", conf.FormID, err)
	}
	return choices, nil
}
