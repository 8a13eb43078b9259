package ui

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"leadhub/domain/lead"
	"leadhub/domain/schema"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const previewRows = 10

// handleClean accepts the uploaded lead file, runs the full clean cycle
// and renders the mapping preview. All failures collapse to one
// user-visible message; the page never half-renders.
func (s *Server) handleClean(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.config.Intake.MaxUploadBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		s.renderCleanError(c, "no file uploaded")
		return
	}
	defer file.Close()

	if !allowedLeadUpload(header) {
		s.renderCleanError(c, "unsupported file type, expected .csv or .xlsx")
		return
	}

	result, err := s.processor.Process(c.Request.Context(), file, header.Filename)
	if err != nil {
		s.renderCleanError(c, err.Error())
		return
	}

	s.renderTemplate(c, "preview.html", gin.H{
		"Run":        result.Run,
		"Mapping":    result.Mapping,
		"Summary":    result.Summary,
		"Headers":    result.Table.Headers,
		"SampleRows": sampleRows(result.Table),
		"Fields":     schema.MappableFields(),
	})
}

func (s *Server) renderCleanError(c *gin.Context, message string) {
	s.renderTemplate(c, "index.html", gin.H{
		"Error":       fmt.Sprintf("parsing/processing failed: %s", message),
		"MaxUploadMB": s.config.Intake.MaxUploadBytes / (1024 * 1024),
	})
}

// handleDownload streams the cleaned CSV as a browser download.
func (s *Server) handleDownload(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid run id")
		return
	}

	f, run, err := s.processor.OpenCleaned(c.Request.Context(), id)
	if err != nil {
		c.String(http.StatusNotFound, "cleaned file not found")
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", run.CleanedName))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, f); err != nil {
		// Client went away mid-download; nothing to recover.
		return
	}
}

// handleConfirm records user-confirmed mappings for unmatched headers.
// Select inputs are named "map[<header>]".
func (s *Server) handleConfirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid run id")
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	confirmed := make(map[string]schema.Field)
	for key, values := range c.Request.PostForm {
		if !strings.HasPrefix(key, "map[") || !strings.HasSuffix(key, "]") {
			continue
		}
		header := key[len("map[") : len(key)-1]
		if len(values) == 0 || values[0] == "" {
			continue
		}
		confirmed[header] = schema.Field(values[0])
	}
	s.processor.ConfirmMappings(c.Request.Context(), confirmed)

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/clean/%s/download", id))
}

// allowedLeadUpload filters obvious mismatches by the declared content
// type. Browsers are inconsistent here, so octet-stream passes and the
// reader's extension check stays authoritative.
func allowedLeadUpload(header *multipart.FileHeader) bool {
	contentType := header.Header.Get("Content-Type")
	switch {
	case contentType == "",
		contentType == "application/octet-stream",
		strings.HasPrefix(contentType, "text/"),
		strings.Contains(contentType, "csv"),
		strings.Contains(contentType, "spreadsheet"),
		strings.Contains(contentType, "excel"):
		return true
	}
	return false
}

func sampleRows(table *lead.CleanedTable) [][]string {
	if len(table.Rows) <= previewRows {
		return table.Rows
	}
	return table.Rows[:previewRows]
}
