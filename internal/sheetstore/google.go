package sheetstore

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"

	"github.com/trungle-dev/sheetbook/internal/errs"
)

// googleStore implements Store on the Sheets v4 API. One instance per
// process; the title→sheetId map is the only local state and is refreshed
// whenever a sheet has to be created.
type googleStore struct {
	svc           *sheets.Service
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64
}

func NewGoogleStore(svc *sheets.Service, spreadsheetID string) *googleStore {
	return &googleStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetIDs:      make(map[string]int64),
	}
}

// googleRow remembers its worksheet position so Save and Delete can address
// it in place. Index is the 1-based worksheet row (data starts at 2, after
// the header row).
type googleRow struct {
	sheet   string
	index   int64
	headers []string
	cells   map[string]string
}

func (r *googleRow) Get(field string) string {
	return r.cells[field]
}

func (r *googleRow) Set(field, value string) {
	r.cells[field] = value
}

func (g *googleStore) Rows(ctx context.Context, sheet string) ([]Row, error) {
	resp, err := g.svc.Spreadsheets.Values.
		Get(g.spreadsheetID, fmt.Sprintf("'%s'!A:Z", sheet)).
		Context(ctx).Do()
	if err != nil {
		return nil, storeErr("list rows", sheet, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	headers := make([]string, 0, len(resp.Values[0]))
	for _, h := range resp.Values[0] {
		headers = append(headers, fmt.Sprint(h))
	}

	rows := make([]Row, 0, len(resp.Values)-1)
	for i, raw := range resp.Values[1:] {
		cells := make(map[string]string, len(headers))
		for c, h := range headers {
			if c < len(raw) {
				cells[h] = fmt.Sprint(raw[c])
			}
		}
		rows = append(rows, &googleRow{
			sheet:   sheet,
			index:   int64(i + 2),
			headers: headers,
			cells:   cells,
		})
	}
	return rows, nil
}

func (g *googleStore) Append(ctx context.Context, sheet string, fields map[string]string) error {
	headers := Headers(sheet)
	values := make([]any, len(headers))
	for i, h := range headers {
		values[i] = fields[h]
	}

	_, err := g.svc.Spreadsheets.Values.
		Append(g.spreadsheetID, fmt.Sprintf("'%s'!A:A", sheet), &sheets.ValueRange{
			Values: [][]any{values},
		}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return storeErr("append row", sheet, err)
	}
	return nil
}

func (g *googleStore) Save(ctx context.Context, row Row) error {
	gr, ok := row.(*googleRow)
	if !ok {
		return errs.NewStoreError("save row", "row handle is not a sheet row")
	}

	values := make([]any, len(gr.headers))
	for i, h := range gr.headers {
		values[i] = gr.cells[h]
	}

	// Last write wins; the API has no version check to offer.
	_, err := g.svc.Spreadsheets.Values.
		Update(g.spreadsheetID, fmt.Sprintf("'%s'!A%d", gr.sheet, gr.index), &sheets.ValueRange{
			Values: [][]any{values},
		}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return storeErr("save row", gr.sheet, err)
	}
	return nil
}

func (g *googleStore) Delete(ctx context.Context, row Row) error {
	gr, ok := row.(*googleRow)
	if !ok {
		return errs.NewStoreError("delete row", "row handle is not a sheet row")
	}

	sheetID, err := g.sheetID(ctx, gr.sheet)
	if err != nil {
		return err
	}

	_, err = g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: gr.index - 1,
					EndIndex:   gr.index,
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return storeErr("delete row", gr.sheet, err)
	}
	return nil
}

func (g *googleStore) EnsureSheet(ctx context.Context, sheet string, headers []string) error {
	if _, err := g.sheetID(ctx, sheet); err == nil {
		return nil
	}

	_, err := g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: sheet},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		// Another process may have created it between lookup and add.
		if apiErr, ok := err.(*googleapi.Error); !ok || apiErr.Code != http.StatusBadRequest {
			return storeErr("ensure sheet", sheet, err)
		}
	}
	g.forget(sheet)

	values := make([]any, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	_, err = g.svc.Spreadsheets.Values.
		Update(g.spreadsheetID, fmt.Sprintf("'%s'!A1", sheet), &sheets.ValueRange{
			Values: [][]any{values},
		}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return storeErr("ensure sheet", sheet, err)
	}
	return nil
}

func (g *googleStore) sheetID(ctx context.Context, sheet string) (int64, error) {
	g.mu.Lock()
	if id, ok := g.sheetIDs[sheet]; ok {
		g.mu.Unlock()
		return id, nil
	}
	g.mu.Unlock()

	doc, err := g.svc.Spreadsheets.Get(g.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, storeErr("load spreadsheet", sheet, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, s := range doc.Sheets {
		if s.Properties != nil {
			g.sheetIDs[s.Properties.Title] = s.Properties.SheetId
		}
	}
	if id, ok := g.sheetIDs[sheet]; ok {
		return id, nil
	}
	return 0, errs.NewNotFoundError(fmt.Sprintf("sheet %s does not exist", sheet))
}

func (g *googleStore) forget(sheet string) {
	g.mu.Lock()
	delete(g.sheetIDs, sheet)
	g.mu.Unlock()
}

func storeErr(op, sheet string, err error) *errs.StoreError {
	se := errs.NewStoreError(op, fmt.Sprintf("%s on sheet %s: %v", op, sheet, err))
	if apiErr, ok := err.(*googleapi.Error); ok {
		switch {
		case apiErr.Code == http.StatusTooManyRequests,
			apiErr.Code == http.StatusUnauthorized,
			apiErr.Code == http.StatusForbidden,
			apiErr.Code >= http.StatusInternalServerError:
			se.Transient = true
		}
	} else {
		// Plain transport failures (timeouts, resets) are retryable.
		se.Transient = true
	}
	return se
}
