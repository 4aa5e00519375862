package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gfmartins/curva-abc-export/curvaparser"
	"github.com/gfmartins/curva-abc-export/dto"
	"github.com/gfmartins/curva-abc-export/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	reportService *service.ReportService
	exportService *service.ExportService
	maxFileSize   int64
}

func NewReportHandler(reportService *service.ReportService, exportService *service.ExportService, maxFileSize int64) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exportService: exportService,
		maxFileSize:   maxFileSize,
	}
}

// ParseReport handles POST /reports/parse: a multipart PDF upload plus
// optional query/order form fields, answered with the parsed records.
func (h *ReportHandler) ParseReport(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "PDF file is required", err)
		return
	}

	if fileHeader.Size > h.maxFileSize {
		h.sendError(c, http.StatusBadRequest, "File too large", dto.ErrFileTooLarge)
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		h.sendError(c, http.StatusBadRequest, "Only PDF files are accepted", dto.ErrNotPDF)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to open upload", err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read upload", err)
		return
	}

	opts := service.ParseOptions{
		Query:    c.PostForm("query"),
		MatchAll: c.PostForm("match_all") == "true",
		Order:    orderFromForm(c.PostForm("order")),
	}

	log.Printf("Received report upload %s (%d bytes)", fileHeader.Filename, fileHeader.Size)

	response, err := h.reportService.ParseReport(fileHeader.Filename, data, opts)
	if err != nil {
		var noRows *dto.NoProductRowsError
		switch {
		case errors.As(err, &noRows):
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
				Error:   "NO_PRODUCT_ROWS",
				Message: "No product rows recognized, confirm this is a Curva ABC report",
				Code:    http.StatusUnprocessableEntity,
				Preview: noRows.Preview,
			})
		case errors.Is(err, dto.ErrNotPDF):
			h.sendError(c, http.StatusBadRequest, "File is not a readable PDF", err)
		default:
			h.sendError(c, http.StatusInternalServerError, "Failed to parse report", err)
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// ExportReport handles POST /reports/export: the caller sends back the
// records with its selection and metadata, and gets the .xlsx file.
func (h *ReportHandler) ExportReport(c *gin.Context) {
	var request dto.ExportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid export request", err)
		return
	}

	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	data, err := h.exportService.BuildWorkbook(&request)
	if err != nil {
		if errors.Is(err, dto.ErrEmptySelection) {
			h.sendError(c, http.StatusBadRequest, "Select at least one product", err)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "Failed to build spreadsheet", err)
		return
	}

	filename := fmt.Sprintf("produtos_%s.xlsx", strings.ReplaceAll(request.Month, "/", "-"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func orderFromForm(raw string) curvaparser.Order {
	switch curvaparser.Order(raw) {
	case curvaparser.OrderQuantityDesc, curvaparser.OrderNameAsc:
		return curvaparser.Order(raw)
	default:
		return curvaparser.OrderValueDesc
	}
}

// sendError sends a structured error response
func (h *ReportHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "REPORT_CONVERSION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
