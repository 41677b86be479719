// Package httpd is the operator-facing upload UI: a form to pick the
// worksheet, update mode, weekday and report files, and a results page
// listing the run's notices.
package httpd

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dialworks/campaign-sheets/config"
	"github.com/dialworks/campaign-sheets/httpd/html"
	"github.com/dialworks/campaign-sheets/report"
	"github.com/dialworks/campaign-sheets/sheet"
	"github.com/dialworks/campaign-sheets/updater"
)

// 32MB is ample for a day's worth of call-center exports.
const maxUploadBytes = 32 << 20

type Server struct {
	cfg       config.Config
	log       *zap.SugaredLogger
	templates *template.Template
}

func NewServer(cfg config.Config, log *zap.SugaredLogger) (*Server, error) {
	templates, err := template.ParseFS(html.HTML, "*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing page templates (%v)", err)
	}

	return &Server{
		cfg:       cfg,
		log:       log,
		templates: templates,
	}, nil
}

func (s *Server) Router() http.Handler {
	mux := chi.NewRouter()
	mux.Use(s.logged)

	mux.Get("/", s.index)
	mux.Post("/update", s.update)
	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Infof("Listening on %s", s.cfg.Addr)

	return srv.ListenAndServe()
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	s.renderIndex(w, "")
}

func (s *Server) renderIndex(w http.ResponseWriter, errmsg string) {
	page := map[string]any{
		"Worksheet": "",
		"Modes":     report.Modes,
		"Days":      []int{1, 2, 3, 4, 5},
		"Error":     errmsg,
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", page); err != nil {
		http.Error(w, "Internal error formatting page", http.StatusInternalServerError)
	}
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.renderIndex(w, fmt.Sprintf("Invalid upload (%v)", err))
		return
	}

	worksheet := r.FormValue("worksheet")
	if worksheet == "" {
		s.renderIndex(w, "Worksheet name is required")
		return
	}

	mode, err := report.ParseMode(r.FormValue("mode"))
	if err != nil {
		s.renderIndex(w, fmt.Sprintf("%v", err))
		return
	}

	day, err := strconv.Atoi(r.FormValue("day"))
	if err != nil || day < 1 || day > 5 {
		s.renderIndex(w, "Day of the week must be between 1 and 5")
		return
	}

	uploads := r.MultipartForm.File["reports"]
	if len(uploads) == 0 {
		s.renderIndex(w, "At least one report file is required")
		return
	}

	files := []updater.File{}
	for _, upload := range uploads {
		f, err := upload.Open()
		if err != nil {
			s.renderIndex(w, fmt.Sprintf("Error reading upload '%s' (%v)", upload.Filename, err))
			return
		}

		defer f.Close()

		files = append(files, updater.File{
			Name:    upload.Filename,
			Content: f,
		})
	}

	client, err := sheet.NewClient(r.Context(), s.cfg.Credentials, s.cfg.SpreadsheetId)
	if err != nil {
		s.renderIndex(w, fmt.Sprintf("%v", err))
		return
	}

	reporter := NewNoticeReporter(s.log)

	opts := updater.Options{
		Client:    client,
		Worksheet: worksheet,
		Settings:  s.cfg.SettingsWorksheet,
		Mode:      mode,
		Day:       day - 1,
		Retry:     s.cfg.Retry,
		Reporter:  reporter,
	}

	if err := updater.Process(r.Context(), opts, files); err != nil {
		reporter.Errorf("%v", err)
	}

	page := map[string]any{
		"Notices": reporter.Notices(),
	}

	if err := s.templates.ExecuteTemplate(w, "result.html", page); err != nil {
		http.Error(w, "Internal error formatting page", http.StatusInternalServerError)
	}
}

func (s *Server) logged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Infow("http", "method", r.Method, "path", r.URL.Path, "latency", time.Since(start))
	})
}
