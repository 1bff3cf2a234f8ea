// SPDX-License-Identifier: GPL-3.0-or-later

// Command peopled serves contact records parsed from per-area
// JSON-lines data files.
//
// Each request to GET /api/people/{area} pipes the area name through
// the contacts pipeline and returns the resulting contacts as JSON.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bassosimone/errclass"
	"github.com/chainfn/chain"
	"github.com/chainfn/chain/contacts"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	datadir := flag.String("datadir", "data_files", "directory containing per-area data files")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg := contacts.NewConfig()
	cfg.DataFS = os.DirFS(*datadir)
	cfg.ErrClassifier = chain.ErrClassifierFunc(errclass.New)

	server := &http.Server{
		Addr:    *addr,
		Handler: newServeMux(cfg, logger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", *addr, "datadir", *datadir)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Info("serveFailed", "err", err)
		os.Exit(1)
	}
}

// newServeMux returns the peopled request router.
func newServeMux(cfg *contacts.Config, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/people/{area}", func(w http.ResponseWriter, r *http.Request) {
		// Correlate all log entries of this pipeline run
		spanID := chain.NewSpanID()
		reqLogger := logger.With("spanID", spanID)

		pipeline := contacts.NewPeopleFunc(cfg, reqLogger)
		result, err := chain.Pipe(r.Context(), r.PathValue("area"), pipeline)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			reqLogger.Debug("responseWriteFailed", "err", err)
		}
	})
	return mux
}

// writeError maps a pipeline error to an HTTP status code.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, contacts.ErrInvalidArea):
		status = http.StatusBadRequest
	case errors.Is(err, fs.ErrNotExist):
		status = http.StatusNotFound
	}
	http.Error(w, http.StatusText(status), status)
}
