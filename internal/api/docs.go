package api

import (
	_ "embed"
	"net/http"
)

//go:embed docs.html
var docsHTML []byte

func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(docsHTML)
}
