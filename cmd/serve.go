package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/niranjandahal/portfolio/internal/content"
	"github.com/niranjandahal/portfolio/internal/page"
	"github.com/niranjandahal/portfolio/internal/session"
	"github.com/niranjandahal/portfolio/internal/web"
)

var serverPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Starts the HTTP server. Every visitor gets their own page whose
animations are driven by the layout and scroll events the browser reports.
Idle pages are reaped after the session TTL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serverPort != "" {
			appConfig.Port = serverPort
		}
		return runServer(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serverPort, "port", "p", "", "port to listen on (default $PORT or 8080)")
	serveCmd.Flags().Bool("prod", false, "serve under the production base path")
	serveCmd.Flags().Bool("watch", false, "reload the content file when it changes")
	rootCmd.AddCommand(serveCmd)
}

func runServer(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if appConfig.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	initial, err := loadContent()
	if err != nil {
		return err
	}
	src := content.NewSource(initial)
	res := appConfig.Assets()

	store := session.NewStore(func() *page.Page {
		return page.New(src.Load(), page.Options{
			Assets:           res,
			ShowcaseInterval: appConfig.ShowcaseInterval,
		})
	}, appConfig.SessionTTL, logger)
	if appConfig.MaxSessions > 0 {
		store.Max = appConfig.MaxSessions
	}

	srv, err := web.New(web.Options{
		Sessions:  store,
		Assets:    res,
		PublicDir: appConfig.PublicDir,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              appConfig.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Serving portfolio",
			zap.String("addr", httpServer.Addr),
			zap.Bool("prod", appConfig.Prod),
			zap.String("root", res.Root()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return store.Run(gctx, appConfig.ReapInterval)
	})
	if appConfig.Watch && appConfig.ContentFile != "" {
		g.Go(func() error {
			return content.Watch(gctx, appConfig.ContentFile, src, logger)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
