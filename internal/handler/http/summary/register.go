package summary

import (
	"net/http"
)

// Register registers the summarization endpoints with the given mux.
// GET / matches only the root path.
func Register(mux *http.ServeMux, svc Summarizer) {
	mux.Handle("GET /{$}", RootHandler{})
	mux.Handle("POST /resumir", ResumirHandler{Svc: svc})
}
