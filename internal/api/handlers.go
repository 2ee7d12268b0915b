package api

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignite/template-insights/internal/insights"
	"github.com/ignite/template-insights/internal/pkg/httputil"
	"github.com/ignite/template-insights/internal/pkg/logger"
	"github.com/ignite/template-insights/internal/storage"
)

// Handlers exposes the analysis pipeline over HTTP. The pipeline itself is
// pure; everything side-effecting (upload reads, export writes, logging)
// happens here.
type Handlers struct {
	analyzer   *insights.Analyzer
	classifier *insights.Classifier
	store      *storage.Store
	maxUpload  int64
	now        func() time.Time
}

// NewHandlers wires the pipeline behind the HTTP surface.
func NewHandlers(classifier *insights.Classifier, store *storage.Store, maxUpload int64) *Handlers {
	return &Handlers{
		analyzer:   insights.NewAnalyzer(classifier),
		classifier: classifier,
		store:      store,
		maxUpload:  maxUpload,
		now:        time.Now,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]string{"status": "ok"})
}

type analyzeResponse struct {
	AnalysisID string           `json:"analysis_id"`
	Report     *insights.Report `json:"report"`
}

// HandleAnalyze handles POST /api/insights/analyze. The body is CSV text,
// either raw or as a multipart "file" field. Malformed or empty CSV is not
// an error: it yields a zero report the same way the pipeline defines it.
func (h *Handlers) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	text, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	analysisID := uuid.New()
	report, err := h.runPipeline(text)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}

	logger.Info("analysis complete",
		"analysis_id", analysisID.String(),
		"bytes", fmt.Sprintf("%d", len(text)),
		"emails", fmt.Sprintf("%d", report.Overall.TotalEmails),
	)

	w.Header().Set("X-Analysis-ID", analysisID.String())
	httputil.OK(w, analyzeResponse{AnalysisID: analysisID.String(), Report: report})
}

// HandleExport handles POST /api/insights/export: run the pipeline,
// serialize the report, persist it to the export directory, and return the
// document as a download. This is the one persisted artifact the service
// produces, and only on explicit request.
func (h *Handlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	text, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	analysisID := uuid.New()
	report, err := h.runPipeline(text)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}

	generatedAt := h.now()
	data, err := insights.ExportJSON(report, generatedAt)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}

	name, err := h.store.SaveExport(analysisID, data, generatedAt)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	logger.Info("report exported", "analysis_id", analysisID.String(), "file", name)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("X-Analysis-ID", analysisID.String())
	w.Write(data)
}

// HandleListExports handles GET /api/insights/exports
func (h *Handlers) HandleListExports(w http.ResponseWriter, r *http.Request) {
	names, err := h.store.ListExports()
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, map[string][]string{"exports": names})
}

type templateInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MinScore    int    `json:"minScore"`
	Indicators  int    `json:"indicators"`
}

// HandleListTemplates handles GET /api/insights/templates, the read-only
// registry the UI uses for its legend.
func (h *Handlers) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	defs := h.classifier.Templates()
	out := make([]templateInfo, 0, len(defs))
	for _, def := range defs {
		out = append(out, templateInfo{
			Name:        def.Name,
			Description: def.Description,
			MinScore:    def.MinScore,
			Indicators:  len(def.Indicators),
		})
	}
	httputil.OK(w, map[string][]templateInfo{"templates": out})
}

// runPipeline is the error boundary around the parse-then-analyze sequence:
// any failure surfaces as one error instead of taking the process down.
func (h *Handlers) runPipeline(text string) (report *insights.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analysis failed: %v", r)
		}
	}()
	return h.analyzer.Analyze(insights.ParseCSV(text)), nil
}

// readUpload extracts CSV text from the request: a multipart "file" field
// when present, the raw body otherwise. Writes the error response itself
// and returns ok=false on failure.
func (h *Handlers) readUpload(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		file, _, err := r.FormFile("file")
		if err != nil {
			httputil.BadRequest(w, "missing file field in upload")
			return "", false
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			httputil.BadRequest(w, "could not read uploaded file: "+err.Error())
			return "", false
		}
		return string(data), true
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		httputil.BadRequest(w, "could not read request body: "+err.Error())
		return "", false
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		httputil.BadRequest(w, "empty upload")
		return "", false
	}
	return string(data), true
}
