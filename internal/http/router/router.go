// Package router mounts every handler on one ServeMux.
package router

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-redis/redis/v8"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mgfilms/site-service/docs"
	"github.com/mgfilms/site-service/internal/cache"
	"github.com/mgfilms/site-service/internal/config"
	"github.com/mgfilms/site-service/internal/content"
	"github.com/mgfilms/site-service/internal/events"
	"github.com/mgfilms/site-service/internal/http/handlers/auth"
	contentHandlers "github.com/mgfilms/site-service/internal/http/handlers/content"
	"github.com/mgfilms/site-service/internal/http/handlers/inquiries"
	mediaHandlers "github.com/mgfilms/site-service/internal/http/handlers/media"
	"github.com/mgfilms/site-service/internal/http/handlers/seo"
	"github.com/mgfilms/site-service/internal/http/handlers/site"
	"github.com/mgfilms/site-service/internal/http/handlers/upload"
	wsHandlers "github.com/mgfilms/site-service/internal/http/handlers/websocket"
	"github.com/mgfilms/site-service/internal/http/middleware"
	"github.com/mgfilms/site-service/internal/media"
	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/uploads"
	"github.com/mgfilms/site-service/internal/utils/response"
	"github.com/mgfilms/site-service/internal/websocket"
)

// Deps is everything the HTTP layer needs. Redis and Hub may be nil.
type Deps struct {
	Config    *config.Config
	Store     storage.Storage
	Redis     *redis.Client
	Uploads   *uploads.Service
	Resolver  *media.Resolver
	Hub       *websocket.Hub
	Publisher events.Publisher
}

type redisPinger struct{ client *redis.Client }

func (p redisPinger) Ping(ctx context.Context) error { return p.client.Ping(ctx).Err() }

func cacheDisabled() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusServiceUnavailable, response.GeneralError(errors.New("redis cache is not configured")))
	}
}

// uploadsFileServer serves local uploads without directory listings.
func uploadsFileServer(prefix, dir string) http.Handler {
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// New builds the full handler chain: request logging, CORS, session parsing
// and then the routes.
func New(d Deps) http.Handler {
	cfg := d.Config
	publisher := d.Publisher
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	viewer := content.NewViewer(d.Resolver)
	rateLimits := middleware.NewRateLimitConfig(d.Redis, cfg.RateLimit)
	admin := middleware.AdminHandler

	router := http.NewServeMux()

	// site
	router.HandleFunc("GET /api/health", site.Health())
	readyDeps := map[string]site.Pinger{"database": d.Store}
	if d.Redis != nil {
		readyDeps["redis"] = redisPinger{d.Redis}
	}
	router.HandleFunc("GET /api/health/ready", site.Ready(readyDeps))

	// auth
	router.Handle("POST /api/auth/login", rateLimits.RateLimitedHandler(middleware.ActionLogin, auth.Login(d.Store, cfg.JWT, rateLimits)))
	router.Handle("GET /api/auth/me", admin(auth.Me(d.Store)))

	// content
	router.HandleFunc("GET /api/content", contentHandlers.List(d.Store, viewer))
	router.Handle("GET /api/content/all", admin(contentHandlers.ListAll(d.Store)))
	router.Handle("POST /api/content", admin(contentHandlers.Create(d.Store, publisher)))
	router.Handle("PUT /api/content/{id}", admin(contentHandlers.Update(d.Store, publisher)))
	router.Handle("DELETE /api/content/{id}", admin(contentHandlers.Delete(d.Store, publisher)))

	// inquiries
	router.Handle("POST /api/inquiries", rateLimits.RateLimitedHandler(middleware.ActionInquiries, inquiries.Create(d.Store, publisher)))
	router.Handle("GET /api/inquiries", admin(inquiries.List(d.Store)))
	router.Handle("PUT /api/inquiries/{id}/contacted", admin(inquiries.MarkContacted(d.Store)))
	router.Handle("DELETE /api/inquiries/{id}", admin(inquiries.Delete(d.Store)))

	// seo
	router.HandleFunc("GET /api/seo/{page}", seo.Get(d.Store))
	router.Handle("GET /api/seo", admin(seo.List(d.Store)))
	router.Handle("PUT /api/seo/{page}", admin(seo.Put(d.Store)))

	// media
	router.HandleFunc("GET /api/media/resolve", mediaHandlers.Resolve(d.Resolver))

	// uploads
	if d.Uploads != nil {
		router.Handle("POST /api/upload", admin(upload.Single(d.Uploads)))
		router.Handle("POST /api/upload/multiple", admin(upload.Multiple(d.Uploads)))
		router.Handle("POST /api/upload/presign", admin(upload.Presign(d.Uploads)))
		router.Handle("DELETE /api/upload", admin(upload.Delete(d.Uploads)))

		if local, ok := d.Uploads.Backend().(*uploads.LocalBackend); ok {
			prefix := local.PublicPath() + "/"
			router.Handle("GET "+prefix, uploadsFileServer(local.PublicPath(), local.Dir()))
		}
	}

	// cache maintenance
	if d.Redis != nil {
		router.Handle("GET /api/admin/cache/stats", admin(cache.GetCacheStats(d.Redis)))
		router.Handle("DELETE /api/admin/cache", admin(cache.ClearCache(d.Redis)))
	} else {
		router.Handle("GET /api/admin/cache/stats", admin(cacheDisabled()))
		router.Handle("DELETE /api/admin/cache", admin(cacheDisabled()))
	}

	// websocket
	if d.Hub != nil {
		router.HandleFunc("GET /api/ws", wsHandlers.WebSocketHandler(d.Hub, cfg.JWT.Secret, cfg.Frontend.AllowedOrigin))
	}

	// docs
	router.Handle("GET /swagger/", httpSwagger.WrapHandler)

	router.HandleFunc("/api/", site.APINotFound())
	if spa := site.NewSPA(cfg.Frontend.DistDir); spa != nil {
		router.Handle("/", spa)
	}

	var handler http.Handler = router
	handler = middleware.SessionMiddleware(cfg.JWT.Secret)(handler)
	handler = middleware.CORS(cfg.Frontend.AllowedOrigin)(handler)
	handler = middleware.RequestLogger(handler)
	return handler
}
