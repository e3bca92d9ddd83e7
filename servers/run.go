package servers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// RunWithGracefulShutdown serves until SIGINT/SIGTERM, then drains
// in-flight requests and runs cleanup (if any) before returning.
func RunWithGracefulShutdown(srv *http.Server, cleanup func()) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[INFO] listening on %s", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case sig := <-stop:
		log.Printf("[INFO] received %s, shutting down", sig)
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[ERROR] server failed: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[WARN] graceful shutdown failed: %v", err)
	}

	if cleanup != nil {
		cleanup()
	}

	log.Printf("[INFO] server stopped")
}
