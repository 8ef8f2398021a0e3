package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// SheetsWriter is the subset of the Sheets client used by leads_export
type SheetsWriter interface {
	AppendValues(ctx context.Context, spreadsheetID, range_ string, values [][]any) (int, error)
	ClearValues(ctx context.Context, spreadsheetID, range_ string) error
}

// SheetDefaults is the target used when a call names no sheet
type SheetDefaults struct {
	SpreadsheetID string
	Tab           string
}

// LeadRow defines a row to append into Sheets
type LeadRow struct {
	ApolloID     string `json:"apollo_id,omitempty"`
	Kind         string `json:"kind,omitempty"`
	Name         string `json:"name,omitempty"`
	Title        string `json:"title,omitempty"`
	Organization string `json:"organization,omitempty"`
	Domain       string `json:"domain,omitempty"`
	Email        string `json:"email,omitempty"`
	EmailStatus  string `json:"email_status,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Location     string `json:"location,omitempty"`
	LinkedInURL  string `json:"linkedin_url,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

var leadSheetHeader = []any{
	"Apollo ID", "Kind", "Name", "Title", "Organization", "Domain",
	"Email", "Email Status", "Phone", "Location", "LinkedIn", "Notes", "Exported At",
}

// LeadsExportParams defines the arguments for the leads_export tool
type LeadsExportParams struct {
	SpreadsheetID string    `json:"spreadsheet_id,omitempty"`
	Tab           string    `json:"tab,omitempty"`
	ClearTab      bool      `json:"clear_tab,omitempty"`
	Rows          []LeadRow `json:"rows"`
}

// LeadsExportResult describes the summary returned after export
type LeadsExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id"`
	Tab           string    `json:"tab"`
	WrittenRows   int       `json:"written_rows"`
	CompletedAt   time.Time `json:"completed_at"`
	Message       string    `json:"message,omitempty"`
}

var leadsExportInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"spreadsheet_id": { "type": "string", "description": "Google Sheets document ID (defaults to the configured sheet)" },
		"tab": { "type": "string", "description": "Tab name to append to (defaults to the configured tab)" },
		"clear_tab": { "type": "boolean", "description": "Clear the tab and write a header row before appending" },
		"rows": {
			"type": "array",
			"description": "Leads to export, typically picked from organization_search or people_search results",
			"items": {
				"type": "object",
				"properties": {
					"apollo_id": { "type": "string" },
					"kind": { "type": "string", "description": "person or organization" },
					"name": { "type": "string" },
					"title": { "type": "string" },
					"organization": { "type": "string" },
					"domain": { "type": "string" },
					"email": { "type": "string" },
					"email_status": { "type": "string" },
					"phone": { "type": "string" },
					"location": { "type": "string" },
					"linkedin_url": { "type": "string" },
					"notes": { "type": "string" }
				}
			}
		}
	},
	"required": ["rows"]
}`)

type leadsExport struct {
	writer   SheetsWriter
	defaults SheetDefaults
	clock    func() time.Time
}

// NewLeadsExport builds the leads_export tool
func NewLeadsExport(writer SheetsWriter, defaults SheetDefaults) Tool {
	return &leadsExport{
		writer:   writer,
		defaults: defaults,
		clock:    time.Now,
	}
}

func (t *leadsExport) Name() string {
	return "leads_export"
}

func (t *leadsExport) Description() string {
	return "Append selected Apollo.io leads (people or organizations) as rows to a Google Sheets tab."
}

func (t *leadsExport) InputSchema() json.RawMessage {
	return leadsExportInputSchema
}

func (t *leadsExport) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params LeadsExportParams
	if len(args) > 0 {
		if err := json.Unmarshal(args, &params); err != nil {
			return nil, fmt.Errorf("invalid leads_export arguments: %w", err)
		}
	}

	result := LeadsExportResult{
		SpreadsheetID: firstNonEmpty(params.SpreadsheetID, t.defaults.SpreadsheetID),
		Tab:           firstNonEmpty(params.Tab, t.defaults.Tab, "Sheet1"),
	}
	if result.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet_id is required (no default spreadsheet configured)")
	}

	now := t.clock().UTC()
	values := make([][]any, 0, len(params.Rows)+1)

	if params.ClearTab {
		if err := t.writer.ClearValues(ctx, result.SpreadsheetID, sheetRange(result.Tab, "A1:Z")); err != nil {
			return nil, err
		}
		values = append(values, leadSheetHeader)
	}

	if len(params.Rows) == 0 && len(values) == 0 {
		result.CompletedAt = now
		result.Message = "no rows to export"
		return result, nil
	}

	for _, row := range params.Rows {
		values = append(values, rowValues(row, now))
	}

	if _, err := t.writer.AppendValues(ctx, result.SpreadsheetID, sheetRange(result.Tab, "A1"), values); err != nil {
		return nil, err
	}

	result.WrittenRows = len(params.Rows)
	result.CompletedAt = now
	result.Message = fmt.Sprintf("successfully exported %d row(s)", result.WrittenRows)

	return result, nil
}

func sheetRange(tab, cells string) string {
	// A1 notation: tab quoted, embedded quotes doubled
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(tab, "'", "''"), cells)
}

func rowValues(row LeadRow, exportedAt time.Time) []any {
	return []any{
		row.ApolloID,
		row.Kind,
		row.Name,
		row.Title,
		row.Organization,
		row.Domain,
		row.Email,
		row.EmailStatus,
		row.Phone,
		row.Location,
		row.LinkedInURL,
		row.Notes,
		exportedAt.Format(time.RFC3339),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
