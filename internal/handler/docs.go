package handler

import (
	"net/http"

	"github.com/day-planner/backend/spec"
)

// scalarPage renders the embedded OpenAPI spec through the Scalar API
// reference UI. Scalar reads the spec from /openapi.yaml on the same origin.
const scalarPage = `<!doctype html>
<html>
<head>
  <title>Day Planner API Reference</title>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
  <script id="api-reference" data-url="/openapi.yaml"></script>
  <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`

// GetOpenAPI handles GET /openapi.yaml. Serving the embedded spec from the
// binary means the spec and the running code are always in sync.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

// GetDocs handles GET /docs.
func (s *Server) GetDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(scalarPage))
}
