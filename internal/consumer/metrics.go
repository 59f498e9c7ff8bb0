package consumer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"indexing-srv/pkg/response"
)

const metricsShutdownTimeout = 5 * time.Second

// startMetrics serves /metrics and /live on the metrics port. Returns nil when the port is 0.
func (srv *ConsumerServer) startMetrics(ctx context.Context) *http.Server {
	if srv.config.Metrics.Port == 0 {
		return nil
	}

	r := gin.New()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/live", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "alive"})
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.config.Metrics.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		srv.l.Infof(ctx, "Metrics listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.l.Errorf(ctx, "Metrics server error: %v", err)
		}
	}()
	return server
}

func (srv *ConsumerServer) stopMetrics(server *http.Server) {
	if server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		srv.l.Errorf(ctx, "Metrics server shutdown error: %v", err)
	}
}
