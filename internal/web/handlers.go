package web

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/niranjandahal/portfolio/internal/motion"
	"github.com/niranjandahal/portfolio/internal/page"
)

type layoutRequest struct {
	Viewport float64               `json:"viewport" binding:"gte=0"`
	Boxes    map[string]motion.Box `json:"boxes"`
}

type scrollRequest struct {
	Y *float64 `json:"y" binding:"required"`
}

// frameResponse carries the inline styles the browser applies to each
// animated element.
type frameResponse struct {
	Styles    map[string]string `json:"styles"`
	Animating bool              `json:"animating"`
	Scrolled  bool              `json:"scrolled"`
	Locked    bool              `json:"locked"`
}

func frameOf(p *page.Page, now time.Time) frameResponse {
	styles := make(map[string]string)
	for id, set := range p.Frame(now) {
		styles[id] = set.Style()
	}
	return frameResponse{
		Styles:    styles,
		Animating: p.Animating(),
		Scrolled:  p.Nav.Scrolled(),
		Locked:    p.ScrollLocked(),
	}
}

// trigger sets the HX-Trigger header so the browser runtime can react to
// state it does not render, like the scroll lock.
func (s *Server) trigger(c *gin.Context, events map[string]any) {
	b, err := json.Marshal(events)
	if err != nil {
		s.log.Error("Failed to encode HX-Trigger", zap.Error(err))
		return
	}
	c.Header("HX-Trigger", string(b))
}

func (s *Server) index(c *gin.Context) {
	var v *page.View
	sessionOf(c).Do(func(p *page.Page) {
		p.Frame(time.Now())
		v = p.View()
	})
	c.HTML(http.StatusOK, "index.html", v)
}

func (s *Server) layout(c *gin.Context) {
	var req layoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var resp frameResponse
	sessionOf(c).Do(func(p *page.Page) {
		now := time.Now()
		p.Layout(req.Viewport, req.Boxes, now)
		resp = frameOf(p, now)
	})
	c.JSON(http.StatusOK, resp)
}

func (s *Server) scroll(c *gin.Context) {
	var req scrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var resp frameResponse
	sessionOf(c).Do(func(p *page.Page) {
		now := time.Now()
		p.Scroll(*req.Y, now)
		resp = frameOf(p, now)
	})
	c.JSON(http.StatusOK, resp)
}

func (s *Server) frame(c *gin.Context) {
	var resp frameResponse
	sessionOf(c).Do(func(p *page.Page) { resp = frameOf(p, time.Now()) })
	c.JSON(http.StatusOK, resp)
}

// fragment renders a named template from the page's current view.
func (s *Server) fragment(c *gin.Context, name string, fn func(p *page.Page) bool) {
	var (
		v  *page.View
		ok bool
	)
	sessionOf(c).Do(func(p *page.Page) {
		if ok = fn(p); ok {
			v = p.View()
		}
	})
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.HTML(http.StatusOK, name, v)
}

func (s *Server) openProject(c *gin.Context) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}
	s.fragment(c, "modal", func(p *page.Page) bool {
		if !p.OpenProject(i) {
			return false
		}
		s.trigger(c, map[string]any{"scroll-lock": p.ScrollLocked()})
		return true
	})
}

func (s *Server) closeProject(c *gin.Context) {
	s.fragment(c, "modal", func(p *page.Page) bool {
		p.CloseProject()
		s.trigger(c, map[string]any{"scroll-lock": p.ScrollLocked()})
		return true
	})
}

func (s *Server) prevTestimonial(c *gin.Context) {
	s.fragment(c, "carousel", func(p *page.Page) bool {
		p.PrevTestimonial()
		return true
	})
}

func (s *Server) nextTestimonial(c *gin.Context) {
	s.fragment(c, "carousel", func(p *page.Page) bool {
		p.NextTestimonial()
		return true
	})
}

func (s *Server) jumpTestimonial(c *gin.Context) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}
	s.fragment(c, "carousel", func(p *page.Page) bool { return p.JumpTestimonial(i) })
}

func (s *Server) toggleMenu(c *gin.Context) {
	s.fragment(c, "menu", func(p *page.Page) bool {
		p.ToggleMenu(time.Now())
		return true
	})
}

// follow closes the menu and asks the browser to scroll to the section.
// Unknown sections get an empty response and no scroll.
func (s *Server) follow(c *gin.Context) {
	s.fragment(c, "menu", func(p *page.Page) bool {
		target, ok := p.Follow("#" + c.Param("section"))
		if !ok {
			return false
		}
		s.trigger(c, map[string]any{"scroll-to": target})
		return true
	})
}

type showcaseEvent struct {
	Current   int    `json:"current"`
	Secondary int    `json:"secondary"`
	Image     string `json:"image"`
	Alt       string `json:"alt"`
	Glow      string `json:"glow"`
	Next      string `json:"next"`
}

// stream pushes a showcase event after every rotation until the client goes
// away or the page is torn down.
func (s *Server) stream(c *gin.Context) {
	sess := sessionOf(c)
	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-sess.Done():
			return false
		case <-sess.Updates():
		}
		// Streaming counts as activity.
		s.sessions.Get(sess.ID)

		var ev showcaseEvent
		sess.Do(func(p *page.Page) {
			v := p.View()
			ev = showcaseEvent{
				Current:   p.Hero.Current(),
				Secondary: p.Hero.Secondary(),
				Image:     v.Current.Image,
				Alt:       v.Current.Alt,
				Glow:      v.Current.Glow,
				Next:      v.Secondary.Image,
			}
		})
		c.SSEvent("showcase", ev)
		return true
	})
}
