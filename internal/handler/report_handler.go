package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/payroll_reconciliation/internal/domain"
	"github.com/locvowork/payroll_reconciliation/internal/logger"
	"github.com/locvowork/payroll_reconciliation/internal/service"
	"github.com/locvowork/payroll_reconciliation/internal/source"
)

// Multipart field names of the four sources.
const (
	FieldRoster      = "emp"
	FieldDepartments = "dept"
	FieldSalaries    = "salary"
	FieldLeaves      = "leave"
)

// WarningsHeader carries the number of records skipped while loading.
const WarningsHeader = "X-Report-Warnings"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	svc  *service.ReconcileService
	opts source.Options
	now  func() time.Time
}

func NewReportHandler(svc *service.ReconcileService, opts source.Options, now func() time.Time) *ReportHandler {
	if now == nil {
		now = time.Now
	}
	return &ReportHandler{svc: svc, opts: opts, now: now}
}

// CreateHandler builds a report from the four uploaded sources.
// Query/form parameters: month=YYYY-MM (defaults to the current month) and
// format=text|xlsx|json (defaults to text).
func (h *ReportHandler) CreateHandler(c echo.Context) error {
	ctx := c.Request().Context()

	period := domain.PeriodOf(h.now().UTC())
	if month := c.FormValue("month"); month != "" {
		p, err := domain.ParsePeriod(month)
		if err != nil {
			return ResponseError(c, http.StatusBadRequest, "Invalid month", err)
		}
		period = p
	}

	format := c.FormValue("format")
	if format == "" {
		format = "text"
	}
	if format != "text" && format != "xlsx" && format != "json" {
		return ResponseError(c, http.StatusBadRequest, "Invalid format", fmt.Errorf("unsupported format %q", format))
	}

	var readers source.Readers
	targets := []struct {
		field string
		dst   *io.Reader
	}{
		{FieldRoster, &readers.Roster},
		{FieldDepartments, &readers.Departments},
		{FieldSalaries, &readers.Salaries},
		{FieldLeaves, &readers.Leaves},
	}
	for _, t := range targets {
		f, err := openUpload(c, t.field)
		if err != nil {
			return ResponseError(c, http.StatusBadRequest, "Missing source file "+t.field, err)
		}
		defer f.Close()
		*t.dst = f
	}

	res, err := h.svc.Build(ctx, source.NewReaderLoader(readers, h.opts), period)
	if err != nil {
		var srcErr *source.Error
		if errors.As(err, &srcErr) {
			logger.WarnLog(ctx, "rejected report request: %v", err)
			return ResponseError(c, http.StatusBadRequest, "Invalid source data", err)
		}
		logger.ErrorLog(ctx, "Failed to build report", err)
		return ResponseError(c, http.StatusInternalServerError, "Failed to build report", err)
	}

	c.Response().Header().Set(WarningsHeader, strconv.Itoa(len(res.Warnings)))

	switch format {
	case "json":
		return c.JSON(http.StatusOK, toJSONResponse(res))
	case "xlsx":
		var buf bytes.Buffer
		if err := h.svc.WriteXLSX(&buf, res); err != nil {
			return ResponseError(c, http.StatusInternalServerError, "Failed to render report", err)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="report-%s.xlsx"`, period))
		return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
	default:
		var buf bytes.Buffer
		if err := h.svc.WriteText(&buf, res); err != nil {
			return ResponseError(c, http.StatusInternalServerError, "Failed to render report", err)
		}
		return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, buf.Bytes())
	}
}

// HealthHandler reports liveness.
func (h *ReportHandler) HealthHandler(c echo.Context) error {
	return ResponseSuccess(c, http.StatusOK, "ok", nil)
}

func openUpload(c echo.Context, field string) (multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}
	return fh.Open()
}

func toJSONResponse(res *service.Result) ReportJSONResponse {
	rows := make([]ReportRowDTO, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = ReportRowDTO{
			EmployeeID:      r.EmployeeID,
			Name:            r.Name,
			DepartmentTitle: r.DepartmentTitle,
			Mobile:          r.Mobile,
			Email:           r.Email,
			SalaryStatus:    string(r.SalaryStatus),
			LeaveDays:       r.LeaveDays,
		}
	}
	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return ReportJSONResponse{Period: res.Period.String(), Rows: rows, Warnings: warnings}
}
