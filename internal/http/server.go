// README: HTTP gateway; registers page and API routes on gin and delegates to module services.
package http

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mftnb/internal/http/handlers"
	httpmiddleware "mftnb/internal/http/middleware"
	"mftnb/internal/modules/booking"
	"mftnb/internal/modules/estimate"
	"mftnb/internal/modules/tips"
	"mftnb/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

type ServerDeps struct {
	Booking       *booking.Service
	Estimate      *estimate.Service
	Tips          *tips.Service
	Logger        *zap.Logger
	SessionCookie httpmiddleware.SessionCookie
	RatePerMinute int
	CORSOrigins   []string
}

type Server struct {
	booking       *booking.Service
	estimate      *estimate.Service
	tips          *tips.Service
	logger        *zap.Logger
	sessionCookie httpmiddleware.SessionCookie
	ratePerMinute int
	corsOrigins   []string
}

func NewServer(deps ServerDeps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		booking:       deps.Booking,
		estimate:      deps.Estimate,
		tips:          deps.Tips,
		logger:        logger,
		sessionCookie: deps.SessionCookie,
		ratePerMinute: deps.RatePerMinute,
		corsOrigins:   deps.CORSOrigins,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(httpmiddleware.Recovery(s.logger), httpmiddleware.Logging(s.logger))
	r.SetHTMLTemplate(parseTemplates())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	pages := handlers.NewPageHandler(s.booking, s.tips)
	r.GET("/", pages.Home)
	r.GET("/tips", pages.Tips)

	visitor := r.Group("")
	visitor.Use(httpmiddleware.Session(s.booking, s.sessionCookie, s.logger))
	{
		visitor.GET("/inventory", pages.Inventory)
		visitor.POST("/inventory", pages.SaveInventory)
		visitor.GET("/booking", pages.BookingForm)
		visitor.POST("/booking", httpmiddleware.RateLimit(s.ratePerMinute, s.logger), pages.SubmitBooking)
		visitor.GET("/confirmation", pages.Confirmation)
		visitor.POST("/start-over", pages.StartOver)
	}

	api := r.Group("/api")
	if c, ok := s.corsConfig(); ok {
		api.Use(cors.New(c))
	}
	api.Use(httpmiddleware.RateLimit(s.ratePerMinute, s.logger))
	{
		est := handlers.NewEstimateHandler(s.estimate)
		api.POST("/estimate", est.Create)
		api.OPTIONS("/estimate", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		tipsHandler := handlers.NewTipsHandler(s.tips)
		api.GET("/tips", tipsHandler.List)
	}
	return r
}

func (s *Server) corsConfig() (cors.Config, bool) {
	if len(s.corsOrigins) == 0 {
		return cors.Config{}, false
	}
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range s.corsOrigins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c, true
		}
	}
	c.AllowOrigins = s.corsOrigins
	return c, true
}

func parseTemplates() *template.Template {
	funcs := template.FuncMap{
		"money": func(v float64) string {
			return types.MoneyFromFloat(v, estimate.Currency).String()
		},
		"hours": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 1, 64)
		},
		"km": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
