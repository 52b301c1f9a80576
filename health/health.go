// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const HEAD_TIMEOUT = time.Second * 3

type HeadReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// StartHealthEndpoint starts /health endpoint on provided port that reports
// ok while the rollup rpc serves its head
func StartHealthEndpoint(port uint16, rollup HeadReader) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", Handler(rollup))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	log.Info().Msgf("Starting /health endpoint on port %d", port)
	err := srv.ListenAndServe()
	if err != nil {
		log.Err(err).Msgf("Failed starting health server")
	}
}

func Handler(rollup HeadReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), HEAD_TIMEOUT)
		defer cancel()

		_, err := rollup.BlockNumber(ctx)
		if err != nil {
			http.Error(w, fmt.Sprintf("rollup unavailable: %s", err), http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}
}
