package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appendCall struct {
	spreadsheetID string
	range_        string
	values        [][]any
}

type fakeSheets struct {
	appends   []appendCall
	cleared   []string
	appendErr error
}

func (f *fakeSheets) AppendValues(_ context.Context, spreadsheetID, range_ string, values [][]any) (int, error) {
	if f.appendErr != nil {
		return 0, f.appendErr
	}
	f.appends = append(f.appends, appendCall{spreadsheetID: spreadsheetID, range_: range_, values: values})
	return len(values), nil
}

func (f *fakeSheets) ClearValues(_ context.Context, _ string, range_ string) error {
	f.cleared = append(f.cleared, range_)
	return nil
}

func newLeadsExport(sheets *fakeSheets, defaults SheetDefaults) *leadsExport {
	tool := NewLeadsExport(sheets, defaults).(*leadsExport)
	tool.clock = func() time.Time { return time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC) }
	return tool
}

func TestLeadsExportAppendsRows(t *testing.T) {
	sheets := &fakeSheets{}
	tool := newLeadsExport(sheets, SheetDefaults{SpreadsheetID: "default-sheet", Tab: "Leads"})

	out, err := tool.Execute(context.Background(), json.RawMessage(`{
		"rows": [
			{"apollo_id": "p1", "kind": "person", "name": "Dana Reyes", "organization": "Reyes Heating", "email": "dana@reyesheating.com"},
			{"apollo_id": "o1", "kind": "organization", "name": "Acme HVAC", "domain": "acmehvac.com"}
		]
	}`))
	require.NoError(t, err)

	result := out.(LeadsExportResult)
	assert.Equal(t, "default-sheet", result.SpreadsheetID)
	assert.Equal(t, "Leads", result.Tab)
	assert.Equal(t, 2, result.WrittenRows)
	assert.Equal(t, "successfully exported 2 row(s)", result.Message)

	require.Len(t, sheets.appends, 1)
	call := sheets.appends[0]
	assert.Equal(t, "default-sheet", call.spreadsheetID)
	assert.Equal(t, "'Leads'!A1", call.range_)
	require.Len(t, call.values, 2)
	assert.Equal(t, "Dana Reyes", call.values[0][2])
	assert.Equal(t, "2026-05-04T10:00:00Z", call.values[0][12])
	assert.Empty(t, sheets.cleared)
}

func TestLeadsExportClearTabWritesHeader(t *testing.T) {
	sheets := &fakeSheets{}
	tool := newLeadsExport(sheets, SheetDefaults{})

	out, err := tool.Execute(context.Background(), json.RawMessage(`{
		"spreadsheet_id": "explicit",
		"tab": "Owner's List",
		"clear_tab": true,
		"rows": [{"name": "Acme HVAC"}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, 1, out.(LeadsExportResult).WrittenRows)

	assert.Equal(t, []string{"'Owner''s List'!A1:Z"}, sheets.cleared)
	require.Len(t, sheets.appends, 1)
	require.Len(t, sheets.appends[0].values, 2)
	assert.Equal(t, leadSheetHeader, sheets.appends[0].values[0])
}

func TestLeadsExportNoRows(t *testing.T) {
	sheets := &fakeSheets{}
	tool := newLeadsExport(sheets, SheetDefaults{SpreadsheetID: "s"})

	out, err := tool.Execute(context.Background(), json.RawMessage(`{"rows": []}`))
	require.NoError(t, err)

	result := out.(LeadsExportResult)
	assert.Equal(t, "no rows to export", result.Message)
	assert.Equal(t, "Sheet1", result.Tab)
	assert.Empty(t, sheets.appends)
}

func TestLeadsExportErrors(t *testing.T) {
	_, err := newLeadsExport(&fakeSheets{}, SheetDefaults{}).Execute(context.Background(), json.RawMessage(`{"rows":[{"name":"x"}]}`))
	require.EqualError(t, err, "spreadsheet_id is required (no default spreadsheet configured)")

	_, err = newLeadsExport(&fakeSheets{}, SheetDefaults{SpreadsheetID: "s"}).Execute(context.Background(), json.RawMessage(`{"rows":"nope"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid leads_export arguments")

	want := errors.New("quota exceeded")
	_, err = newLeadsExport(&fakeSheets{appendErr: want}, SheetDefaults{SpreadsheetID: "s"}).Execute(context.Background(), json.RawMessage(`{"rows":[{"name":"x"}]}`))
	assert.ErrorIs(t, err, want)
}
