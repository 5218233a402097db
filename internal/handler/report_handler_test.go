package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/locvowork/payroll_reconciliation/internal/calc"
	"github.com/locvowork/payroll_reconciliation/internal/report"
	"github.com/locvowork/payroll_reconciliation/internal/service"
	"github.com/locvowork/payroll_reconciliation/internal/source"
)

func workbookBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func uploadBody(t *testing.T, files map[string][]byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for name, content := range files {
		part, err := mw.CreateFormFile(name, name+".bin")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func scenarioFiles(t *testing.T) map[string][]byte {
	return map[string][]byte{
		FieldRoster: []byte("id|name|dept|mobile|email\n7|Jane Doe|2|555-0100|jane@x.com\nnot a record\n"),
		FieldDepartments: workbookBytes(t, [][]interface{}{
			{"Dept ID", "Title"},
			{2, "Engineering"},
		}),
		FieldSalaries: workbookBytes(t, [][]interface{}{
			{"Emp ID", "Name", "Date", "Amount", "Status"},
			{7, "Jane Doe", "15-06-2024", 1000, "Credited"},
		}),
		FieldLeaves: workbookBytes(t, [][]interface{}{
			{"Emp ID", "Name", "From", "To"},
			{7, "Jane Doe", "01-06-2024", "03-06-2024"},
		}),
	}
}

func newTestHandler(t *testing.T) *ReportHandler {
	t.Helper()
	xlsx, err := report.NewXLSXRenderer("")
	require.NoError(t, err)
	svc := service.NewReconcileService(report.NewAssembler(calc.MatchSubstring), xlsx, false)
	now := func() time.Time { return time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC) }
	return NewReportHandler(svc, source.Options{Policies: source.DefaultPolicies()}, now)
}

func doUpload(t *testing.T, h *ReportHandler, files map[string][]byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := uploadBody(t, files, fields)
	req := httptest.NewRequest(http.MethodPost, "/reports", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, h.CreateHandler(c))
	return rec
}

func TestReportHandler_CreateHandler_Text(t *testing.T) {
	rec := doUpload(t, newTestHandler(t), scenarioFiles(t), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(WarningsHeader))
	want := "Emp ID~#~Emp Name~#~Dept Title~#~Mobile No~#~Email~#~Salary Status~#~On Leave\n" +
		"7~#~Jane Doe~#~Engineering~#~555-0100~#~jane@x.com~#~Credited~#~3\n"
	assert.Equal(t, want, rec.Body.String())
}

func TestReportHandler_CreateHandler_JSON(t *testing.T) {
	rec := doUpload(t, newTestHandler(t), scenarioFiles(t), map[string]string{"format": "json", "month": "2024-05"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ReportJSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-05", resp.Period)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Not Credited", resp.Rows[0].SalaryStatus)
	assert.Equal(t, 3, resp.Rows[0].LeaveDays)
	assert.Len(t, resp.Warnings, 1)
}

func TestReportHandler_CreateHandler_XLSX(t *testing.T) {
	rec := doUpload(t, newTestHandler(t), scenarioFiles(t), map[string]string{"format": "xlsx"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get(echo.HeaderContentType))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.NotEmpty(t, f.GetSheetList())
}

func TestReportHandler_CreateHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(files map[string][]byte, fields map[string]string)
	}{
		{
			name:   "missing leave file",
			mutate: func(files map[string][]byte, _ map[string]string) { delete(files, FieldLeaves) },
		},
		{
			name:   "invalid month",
			mutate: func(_ map[string][]byte, fields map[string]string) { fields["month"] = "June" },
		},
		{
			name:   "unsupported format",
			mutate: func(_ map[string][]byte, fields map[string]string) { fields["format"] = "pdf" },
		},
		{
			name: "malformed salary row",
			mutate: func(files map[string][]byte, _ map[string]string) {
				files[FieldSalaries] = workbookBytes(t, [][]interface{}{
					{"Emp ID", "Name", "Date", "Amount", "Status"},
					{"seven", "Jane Doe", "15-06-2024", 1000, "Credited"},
				})
			},
		},
		{
			name: "department file is not a workbook",
			mutate: func(files map[string][]byte, _ map[string]string) {
				files[FieldDepartments] = []byte("plain text")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := scenarioFiles(t)
			fields := map[string]string{}
			tt.mutate(files, fields)

			rec := doUpload(t, newTestHandler(t), files, fields)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestReportHandler_HealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, newTestHandler(t).HealthHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}
