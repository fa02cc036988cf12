package gsheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var ErrSheetNotFound = errors.New("sheet not found")

// value input mode for cell writes; RAW keeps booleans as checkbox values
const valueInputOption = "RAW"

type Client struct {
	srv *sheets.Service
}

func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{srv: srv}, nil
}

// SetCellValue writes value into the 1-based (row, column) cell of the sheet.
func (c *Client) SetCellValue(ctx context.Context, spreadsheetID string, sheetName string, row int, column int, value any) error {
	if row < 1 || column < 1 {
		return fmt.Errorf("invalid cell position row=%d column=%d", row, column)
	}
	cell := CellRange(sheetName, row, column)
	vr := &sheets.ValueRange{
		Values: [][]interface{}{{value}},
	}
	_, err := c.srv.Spreadsheets.Values.Update(spreadsheetID, cell, vr).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", cell, err)
	}
	slog.Debug("cell value updated", slog.String("spreadsheetID", spreadsheetID), slog.String("cell", cell))
	return nil
}

// HasSheet reports whether the spreadsheet contains a sheet titled sheetName.
func (c *Client) HasSheet(ctx context.Context, spreadsheetID string, sheetName string) (bool, error) {
	spreadsheet, err := c.srv.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return false, err
	}
	for _, s := range spreadsheet.Sheets {
		if s.Properties != nil && s.Properties.Title == sheetName {
			return true, nil
		}
	}
	return false, nil
}

// ReadColumn returns the first value of every row in a1Range, one entry per
// row. Rows without a value are returned as empty strings.
func (c *Client) ReadColumn(ctx context.Context, spreadsheetID string, sheetName string, a1Range string) ([]string, error) {
	exists, err := c.HasSheet(ctx, spreadsheetID, sheetName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheetName)
	}

	resp, err := c.srv.Spreadsheets.Values.Get(spreadsheetID, SheetRange(sheetName, a1Range)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 || row[0] == nil {
			values = append(values, "")
			continue
		}
		values = append(values, fmt.Sprint(row[0]))
	}
	return values, nil
}
