package docs

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/phrazzld/users-api/internal/platform/logger"
)

// SwaggerUIVersion pins the swagger-ui-dist release loaded by the UI page.
const SwaggerUIVersion = "5.17.14"

var uiTemplate = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@{{.Version}}/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@{{.Version}}/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({ url: "{{.SpecURL}}", dom_id: "#swagger-ui" });
  </script>
</body>
</html>
`))

// UIHandler serves a Swagger UI page that loads the document at specURL.
func UIHandler(title, specURL string) http.HandlerFunc {
	data := struct {
		Title   string
		Version string
		SpecURL string
	}{title, SwaggerUIVersion, specURL}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := uiTemplate.Execute(w, data); err != nil {
			logger.FromContextOrDefault(r.Context(), slog.Default()).
				Error("failed to render swagger UI", "error", err)
		}
	}
}
