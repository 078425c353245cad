package site

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/mgfilms/site-service/internal/utils/response"
)

// Health reports that the process is serving
// @Summary Health check
// @Tags site
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	}
}

// Pinger is anything Ready can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ready reports whether every dependency answers
// @Summary Readiness check
// @Tags site
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/health/ready [get]
func Ready(deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		result := map[string]string{"status": "ok"}
		for name, dep := range deps {
			if err := dep.Ping(ctx); err != nil {
				status = http.StatusServiceUnavailable
				result["status"] = "unavailable"
				result[name] = err.Error()
				continue
			}
			result[name] = "ok"
		}
		response.WriteJSON(w, status, result)
	}
}

// APINotFound answers unknown /api/ paths with JSON instead of the SPA.
func APINotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("route not found")))
	}
}

// SPA serves the built front end from dir. Paths that are not files get
// index.html so client side routes survive a reload.
type SPA struct {
	dir   string
	files http.Handler
}

// NewSPA returns nil when dir has no index.html.
func NewSPA(dir string) *SPA {
	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		return nil
	}
	return &SPA{dir: dir, files: http.FileServer(http.Dir(dir))}
}

func (s *SPA) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	clean := path.Clean("/" + r.URL.Path)
	if clean != "/" {
		info, err := os.Stat(filepath.Join(s.dir, filepath.FromSlash(strings.TrimPrefix(clean, "/"))))
		if err == nil && !info.IsDir() {
			s.files.ServeHTTP(w, r)
			return
		}
	}

	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, filepath.Join(s.dir, "index.html"))
}
