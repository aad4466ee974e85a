package ui

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"paperlens/app"
	"paperlens/domain/paper"
)

// flash is a one-shot status line rendered above the results.
type flash struct {
	Kind string // "success", "error", "info"
	Text string
}

// indexView is everything the page template needs.
type indexView struct {
	Papers   []*paper.AnalyzedPaper
	Report   paper.ComparisonReport
	Backend  string
	Messages []flash
}

func (s *Server) renderIndex(c *gin.Context, messages []flash) {
	papers := s.store.List()
	c.HTML(http.StatusOK, "index.html", indexView{
		Papers:   papers,
		Report:   s.comparison.Compare(papers),
		Backend:  s.backend,
		Messages: messages,
	})
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderIndex(c, nil)
}

// handleUpload accepts one or more PDFs and analyzes them in order. A file
// that fails only adds an error message; the rest of the batch proceeds.
func (s *Server) handleUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		s.renderIndex(c, []flash{{Kind: "error", Text: fmt.Sprintf("Upload failed: %v", err)}})
		return
	}

	files := form.File["papers"]
	if len(files) == 0 {
		s.renderIndex(c, []flash{{Kind: "info", Text: "No files selected."}})
		return
	}

	var messages []flash
	var uploads []app.Upload
	for _, header := range files {
		name := filepath.Base(header.Filename)
		if !strings.EqualFold(filepath.Ext(name), ".pdf") {
			messages = append(messages, flash{Kind: "error", Text: fmt.Sprintf("%s: only PDF files are supported", name)})
			continue
		}
		if header.Size > s.maxUpload {
			messages = append(messages, flash{Kind: "error", Text: fmt.Sprintf("%s: file exceeds the upload limit", name)})
			continue
		}

		data, err := readUpload(header)
		if err != nil {
			messages = append(messages, flash{Kind: "error", Text: fmt.Sprintf("%s: %v", name, err)})
			continue
		}
		uploads = append(uploads, app.Upload{FileName: name, Data: data})
	}

	for _, result := range s.analysis.AnalyzeBatch(c.Request.Context(), uploads) {
		switch {
		case result.Err != nil:
			messages = append(messages, flash{Kind: "error", Text: fmt.Sprintf("%s: %v", result.FileName, result.Err)})
		case result.Created:
			messages = append(messages, flash{Kind: "success", Text: fmt.Sprintf("Analyzed %s", result.FileName)})
		default:
			messages = append(messages, flash{Kind: "info", Text: fmt.Sprintf("%s was already analyzed, skipping", result.FileName)})
		}
	}

	s.renderIndex(c, messages)
}

func (s *Server) handleClear(c *gin.Context) {
	s.store.Clear()
	s.renderIndex(c, []flash{{Kind: "info", Text: "All data cleared."}})
}

func (s *Server) handlePapersList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total":  s.store.Len(),
		"papers": s.store.List(),
	})
}

func (s *Server) handlePaperByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid paper id"})
		return
	}
	p, ok := s.store.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "paper not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleComparison(c *gin.Context) {
	c.JSON(http.StatusOK, s.comparison.Compare(s.store.List()))
}

func (s *Server) handleComparisonExport(c *gin.Context) {
	report := s.comparison.Compare(s.store.List())
	data, err := s.exporter.Bytes(report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	fileName := s.exporter.FileName(report)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
