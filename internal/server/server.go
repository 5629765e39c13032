package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/acmelabs/facture/internal/auth"
	authdomain "github.com/acmelabs/facture/internal/auth/domain"
	"github.com/acmelabs/facture/internal/config"
	"github.com/acmelabs/facture/internal/customer"
	customerdomain "github.com/acmelabs/facture/internal/customer/domain"
	"github.com/acmelabs/facture/internal/dashboard"
	dashboarddomain "github.com/acmelabs/facture/internal/dashboard/domain"
	"github.com/acmelabs/facture/internal/invoice"
	invoicedomain "github.com/acmelabs/facture/internal/invoice/domain"
	"github.com/acmelabs/facture/internal/observability"
	obsmiddleware "github.com/acmelabs/facture/internal/observability/logger"
	obsmetrics "github.com/acmelabs/facture/internal/observability/metrics"
	obstracing "github.com/acmelabs/facture/internal/observability/tracing"
	"github.com/acmelabs/facture/internal/pagecache"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	auth.Module,
	customer.Module,
	dashboard.Module,
	invoice.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	authsvc      authdomain.Service
	invoiceSvc   invoicedomain.Service
	customerSvc  customerdomain.Service
	dashboardSvc dashboarddomain.Service
	pageCache    pagecache.Cache
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Authsvc      authdomain.Service
	InvoiceSvc   invoicedomain.Service
	CustomerSvc  customerdomain.Service
	DashboardSvc dashboarddomain.Service
	PageCache    pagecache.Cache
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		authsvc:      p.Authsvc,
		invoiceSvc:   p.InvoiceSvc,
		customerSvc:  p.CustomerSvc,
		dashboardSvc: p.DashboardSvc,
		pageCache:    p.PageCache,
	}

	svc.registerAuthRoutes()
	svc.registerDashboardRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/v1/auth")

	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.AuthRequired(), s.Me)
}

func (s *Server) registerDashboardRoutes() {
	dash := s.engine.Group("/v1/dashboard", s.AuthRequired())

	dash.POST("/invoices", s.CreateInvoice)
	dash.POST("/invoices/:id", s.UpdateInvoice)
	dash.POST("/invoices/:id/delete", s.DeleteInvoice)
	dash.GET("/invoices", s.ListInvoices)
	dash.GET("/invoices/pages", s.InvoicePages)
	dash.GET("/invoices/:id", s.GetInvoiceByID)

	dash.GET("/customers", s.ListCustomerFields)
	dash.GET("/customers/table", s.ListCustomersTable)

	dash.GET("/overview", s.DashboardOverview)
}
