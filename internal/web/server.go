package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/renotools/renovation-extractor/constants"
	"github.com/renotools/renovation-extractor/internal/common"
	"github.com/renotools/renovation-extractor/internal/llm"
)

// TranscriptProcessor is the pipeline seam the server depends on.
type TranscriptProcessor interface {
	ProcessTranscript(ctx context.Context, data []byte, ext string) (llm.Result, []byte, error)
}

// Renderer re-renders a details record into workbook bytes for the
// download endpoint, which receives the (possibly user-previewed) details
// back from the page rather than holding server-side state.
type Renderer interface {
	RenderXLSX(details llm.ProjectDetails) ([]byte, error)
}

// Server hosts the interactive surface: upload form, process trigger,
// details preview, and artifact download. One in-flight operation per
// page; nothing is retained between requests.
type Server struct {
	addr          string
	maxUploadMB   int64
	llmConfigured bool
	processor     TranscriptProcessor
	renderer      Renderer
	log           *slog.Logger
	httpServer    *http.Server
}

// ProcessResponse is the JSON body returned by POST /process.
type ProcessResponse struct {
	Success   bool               `json:"success"`
	Details   llm.ProjectDetails `json:"details,omitempty"`
	Fallback  bool               `json:"fallback,omitempty"`
	RawOutput string             `json:"raw_output,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func NewServer(addr string, maxUploadMB int64, llmConfigured bool, processor TranscriptProcessor, renderer Renderer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	if maxUploadMB <= 0 {
		maxUploadMB = 32
	}
	return &Server{
		addr:          addr,
		maxUploadMB:   maxUploadMB,
		llmConfigured: llmConfigured,
		processor:     processor,
		renderer:      renderer,
		log:           log,
	}
}

// Handler returns the full route mux wrapped in the panic-recovery layer.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveHome)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/process", s.handleProcess)
	mux.HandleFunc("/export", s.handleExport)
	return s.recoverMiddleware(mux)
}

// Start blocks serving HTTP until the listener fails or Stop is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}
	s.log.Info("web.server.start", "addr", s.addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// recoverMiddleware is the single top-level catch: any uncaught failure is
// reported as a generic message and the server stays usable for the next
// attempt.
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("web.handler.panic", "path", r.URL.Path, "panic", rec)
				s.sendErrorWithStatus(w, "an error occurred while processing the request", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) serveHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, homeTemplate)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":         "ok",
		"llm_configured": s.llmConfigured,
	})
}

// handleProcess accepts the multipart upload, runs the pipeline, and
// returns the extracted details for preview. The workbook is re-rendered
// by /export from the returned details, so no bytes are retained here.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(s.maxUploadMB << 20); err != nil {
		s.sendError(w, "failed to parse form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.sendError(w, "no file uploaded")
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if constants.MapExtToFormat(ext) == "" {
		s.sendError(w, fmt.Sprintf("unsupported file format %q: upload a .docx or .pdf transcript", ext))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.sendError(w, "failed to read uploaded file")
		return
	}

	result, _, err := s.processor.ProcessTranscript(r.Context(), data, ext)
	if err != nil {
		if errors.Is(err, common.ErrUnsupportedFormat) {
			s.sendError(w, err.Error())
			return
		}
		s.log.Error("web.process.failed", "filename", header.Filename, "error", err)
		s.sendErrorWithStatus(w, "an error occurred while processing the transcript", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ProcessResponse{
		Success:   true,
		Details:   result.Details,
		Fallback:  result.Fallback,
		RawOutput: result.RawOutput,
	})
}

// handleExport renders the posted details into a workbook and offers it as
// a download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var details llm.ProjectDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		s.sendError(w, "request body must be a JSON details object")
		return
	}

	artifact, err := s.renderer.RenderXLSX(details)
	if err != nil {
		s.log.Error("web.export.failed", "error", err)
		s.sendErrorWithStatus(w, "an error occurred while generating the spreadsheet", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", constants.ArtifactMIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", constants.ArtifactFilename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(artifact)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact)
}

func (s *Server) sendError(w http.ResponseWriter, message string) {
	s.sendErrorWithStatus(w, message, http.StatusBadRequest)
}

func (s *Server) sendErrorWithStatus(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ProcessResponse{Success: false, Error: message})
}
