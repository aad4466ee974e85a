package ui

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"

	"paperlens/adapters/excel"
	"paperlens/app"
	"paperlens/ports"
)

//go:embed templates/*
var templateFS embed.FS

// Server is the web front end: an upload form plus the three result views
// (summaries, statistical analysis, comparison) over the paper store.
type Server struct {
	router     *gin.Engine
	analysis   *app.AnalysisService
	comparison *app.ComparisonService
	store      ports.StorePort
	exporter   *excel.ReportWriter
	backend    string
	maxUpload  int64
}

// NewServer creates the web server and parses the embedded templates
func NewServer(analysis *app.AnalysisService, comparison *app.ComparisonService, store ports.StorePort, backend string, maxUpload int64) (*Server, error) {
	s := &Server{
		router:     gin.Default(),
		analysis:   analysis,
		comparison: comparison,
		store:      store,
		exporter:   excel.NewReportWriter(),
		backend:    backend,
		maxUpload:  maxUpload,
	}

	funcMap := template.FuncMap{
		// Summary prose may carry light markdown from a real backend.
		"markdown": func(text string) template.HTML {
			return template.HTML(markdown.ToHTML([]byte(text), nil, nil))
		},
		"pfmt": func(v float64) string {
			return fmt.Sprintf("%.4f", v)
		},
		"pctfmt": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
		"avgfmt": func(v *float64) string {
			if v == nil {
				return "-"
			}
			return fmt.Sprintf("%.1f", *v)
		},
		"inc": func(i int) int { return i + 1 },
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.router.SetHTMLTemplate(tmpl)
	s.router.MaxMultipartMemory = s.maxUpload

	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/upload", s.handleUpload)
	s.router.POST("/clear", s.handleClear)

	s.router.GET("/api/papers", s.handlePapersList)
	s.router.GET("/api/papers/:id", s.handlePaperByID)
	s.router.GET("/api/comparison", s.handleComparison)
	s.router.GET("/api/comparison/export", s.handleComparisonExport)

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "papers": s.store.Len()})
	})
}

// Start runs the server on addr
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
