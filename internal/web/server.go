// Package web serves the portfolio over HTTP: the full page, the HTMX
// fragments for the modal, carousel and menu, the layout and scroll endpoints
// the browser runtime reports to, and the showcase event stream.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/niranjandahal/portfolio/internal/assets"
	"github.com/niranjandahal/portfolio/internal/page"
	"github.com/niranjandahal/portfolio/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the embedded page and fragment templates.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"elementID": page.ElementID,
		"add":       func(a, b int) int { return a + b },
		"chip":      chip,
		"shadow":    shadow,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return t, nil
}

// Static returns the embedded stylesheet and browser runtime.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// RenderPage writes the full document for v.
func RenderPage(w io.Writer, t *template.Template, v *page.View) error {
	return t.ExecuteTemplate(w, "index.html", v)
}

type Options struct {
	Sessions *session.Store
	Assets   assets.Resolver
	// PublicDir holds images and other files addressed by root-relative
	// asset paths, e.g. /logo.png.
	PublicDir string
	Logger    *zap.Logger
}

// Server routes HTTP requests to visitor sessions.
type Server struct {
	sessions *session.Store
	assets   assets.Resolver
	log      *zap.Logger
	public   fs.FS
	engine   *gin.Engine
}

// New builds the gin engine. In production every route, including the
// static files, is mounted under the asset base path.
func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	tmpl, err := Templates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		sessions: opts.Sessions,
		assets:   opts.Assets,
		log:      opts.Logger,
		engine:   gin.New(),
	}
	s.engine.Use(requestLogger(s.log), gin.Recovery())
	s.engine.SetHTMLTemplate(tmpl)

	s.engine.GET("/healthz", s.health)

	root := s.engine.Group(s.assets.Root())
	root.StaticFS("/static", http.FS(Static()))
	if opts.PublicDir != "" {
		if info, err := os.Stat(opts.PublicDir); err == nil && info.IsDir() {
			s.public = os.DirFS(opts.PublicDir)
		} else {
			s.log.Warn("Public directory not found, not serving", zap.String("dir", opts.PublicDir))
		}
	}
	s.engine.NoRoute(s.publicFile)

	root.GET("/", sessionMiddleware(s.sessions, s.cookiePath()), s.index)

	live := root.Group("/", requireSession(s.sessions))
	api := live.Group("/api")
	api.POST("/layout", s.layout)
	api.POST("/scroll", s.scroll)
	api.GET("/frame", s.frame)

	live.POST("/projects/close", s.closeProject)
	live.POST("/projects/:index", s.openProject)
	live.POST("/testimonials/prev", s.prevTestimonial)
	live.POST("/testimonials/next", s.nextTestimonial)
	live.POST("/testimonials/:index", s.jumpTestimonial)
	live.POST("/menu/toggle", s.toggleMenu)
	live.POST("/nav/:section", s.follow)
	live.GET("/showcase/stream", s.stream)

	return s, nil
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) cookiePath() string {
	if root := s.assets.Root(); root != "" {
		return root
	}
	return "/"
}

// publicFile serves root-relative assets from the public directory.
func (s *Server) publicFile(c *gin.Context) {
	if s.public == nil || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
		c.Status(http.StatusNotFound)
		return
	}
	name, ok := strings.CutPrefix(c.Request.URL.Path, s.assets.Root()+"/")
	if !ok || name == "" || !fs.ValidPath(name) {
		c.Status(http.StatusNotFound)
		return
	}
	info, err := fs.Stat(s.public, name)
	if err != nil || info.IsDir() {
		c.Status(http.StatusNotFound)
		return
	}
	c.FileFromFS(name, http.FS(s.public))
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": s.sessions.Len(),
	})
}
