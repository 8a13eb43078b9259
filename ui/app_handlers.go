package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"leadhub/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput("invalid request body"))
		return
	}

	session, err := a.auth.Login(r.Context(), body.Password)
	if err != nil {
		a.writeError(w, http.StatusUnauthorized, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":      session.Token,
		"expires_at": session.ExpiresAt.Format(time.RFC3339),
	})
}

func (a *App) handleClean(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.config.Intake.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput("missing file field"))
		return
	}
	defer file.Close()

	if !allowedLeadUpload(header) {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput("unsupported file type, expected .csv or .xlsx"))
		return
	}

	result, err := a.processor.Process(r.Context(), file, header.Filename)
	if err != nil {
		a.writeError(w, statusFor(err), err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"run":          result.Run,
		"mapping":      result.Mapping,
		"summary":      result.Summary,
		"download_url": fmt.Sprintf("/api/v1/runs/%s/download", result.Run.ID),
	})
}

func (a *App) handleDownload(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput("invalid run id"))
		return
	}

	f, run, err := a.processor.OpenCleaned(r.Context(), id)
	if err != nil {
		a.writeError(w, http.StatusNotFound, errors.NotFound("cleaned file"))
		return
	}
	defer f.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", run.CleanedName))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	if _, err := io.Copy(w, f); err != nil {
		// Client went away mid-download; nothing to recover.
		return
	}
}

func (a *App) handleVerify(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.config.Statement.MaxUploadBytes)

	if err := r.ParseMultipartForm(a.config.Statement.MaxUploadBytes); err != nil {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput("invalid multipart body"))
		return
	}
	files := r.MultipartForm.File["statements"]
	if len(files) == 0 {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput("no statement files provided"))
		return
	}
	if len(files) > a.config.Statement.MaxFiles {
		a.writeError(w, http.StatusBadRequest,
			errors.InvalidInput(fmt.Sprintf("too many files, maximum is %d", a.config.Statement.MaxFiles)))
		return
	}

	tmpDir, err := os.MkdirTemp("", "leadhub_verify_")
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, errors.InternalError("could not stage uploads"))
		return
	}
	defer os.RemoveAll(tmpDir)

	paths, err := stagePDFs(tmpDir, files)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput(err.Error()))
		return
	}

	report, err := a.verifier.Verify(r.Context(), paths)
	if err != nil {
		a.writeError(w, statusFor(err), err)
		return
	}
	a.writeJSON(w, http.StatusOK, report)
}

func (a *App) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	header := r.URL.Query().Get("header")
	if header == "" {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput("missing header parameter"))
		return
	}

	mapping, ok, err := a.processor.Suggest(r.Context(), header)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		a.writeJSON(w, http.StatusOK, map[string]interface{}{"header": header, "suggestion": nil})
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{"header": header, "suggestion": mapping})
}

// statusFor maps error codes to HTTP statuses.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeValidationError, errors.CodeParseFailed:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
