package ui

import (
	"fmt"
	"html/template"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
)

func (s *Server) handleVerifyPage(c *gin.Context) {
	s.renderTemplate(c, "verify.html", gin.H{
		"MaxFiles": s.config.Statement.MaxFiles,
	})
}

// handleVerify stages the uploaded PDFs to a temp dir, runs the
// verification pipeline and renders the report.
func (s *Server) handleVerify(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.config.Statement.MaxUploadBytes)

	form, err := c.MultipartForm()
	if err != nil {
		s.renderVerifyError(c, "no files uploaded")
		return
	}
	files := form.File["statements"]
	if len(files) == 0 {
		s.renderVerifyError(c, "no files uploaded")
		return
	}
	if len(files) > s.config.Statement.MaxFiles {
		s.renderVerifyError(c, fmt.Sprintf("too many files, maximum is %d", s.config.Statement.MaxFiles))
		return
	}

	tmpDir, err := os.MkdirTemp("", "leadhub_verify_")
	if err != nil {
		s.renderVerifyError(c, "could not stage uploads")
		return
	}
	defer os.RemoveAll(tmpDir)

	paths, err := stagePDFs(tmpDir, files)
	if err != nil {
		s.renderVerifyError(c, err.Error())
		return
	}

	report, err := s.verifier.Verify(c.Request.Context(), paths)
	if err != nil {
		s.renderVerifyError(c, err.Error())
		return
	}

	s.renderTemplate(c, "report.html", gin.H{
		"Report": report,
		"Brief":  renderBrief(report.Brief),
	})
}

func (s *Server) renderVerifyError(c *gin.Context, message string) {
	s.renderTemplate(c, "verify.html", gin.H{
		"Error":    fmt.Sprintf("parsing/processing failed: %s", message),
		"MaxFiles": s.config.Statement.MaxFiles,
	})
}

// stagePDFs copies each upload to disk under its original basename so
// report rows carry recognizable filenames.
func stagePDFs(dir string, files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))
	for i, fh := range files {
		if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
			return nil, fmt.Errorf("%s is not a PDF", fh.Filename)
		}

		src, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("could not read %s", fh.Filename)
		}

		path := filepath.Join(dir, filepath.Base(fh.Filename))
		if _, statErr := os.Stat(path); statErr == nil {
			// Duplicate filename in the same batch.
			path = filepath.Join(dir, fmt.Sprintf("%d_%s", i, filepath.Base(fh.Filename)))
		}
		dst, err := os.Create(path)
		if err != nil {
			src.Close()
			return nil, fmt.Errorf("could not stage %s", fh.Filename)
		}
		_, copyErr := dst.ReadFrom(src)
		src.Close()
		dst.Close()
		if copyErr != nil {
			return nil, fmt.Errorf("could not stage %s", fh.Filename)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// renderBrief converts the markdown brief to safe-to-embed HTML. The
// brief is generated server-side from parsed numbers, never from raw
// statement text.
func renderBrief(brief string) template.HTML {
	return template.HTML(markdown.ToHTML([]byte(brief), nil, nil))
}
