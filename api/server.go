package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/signet-orders/api/handlers"
)

// StatusRouter serves the filler bundle status endpoints.
func StatusRouter(statusHandler *handlers.StatusHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/bundles", statusHandler.HandleOutcomes).Methods("GET")
	r.HandleFunc("/v1/bundles/pending", statusHandler.HandlePending).Methods("GET")
	r.HandleFunc("/v1/bundles/counts", statusHandler.HandleCounts).Methods("GET")
	r.HandleFunc("/v1/bundles/{bundleId}", statusHandler.HandleBundle).Methods("GET")
	return r
}

// TxCacheRouter serves the transaction cache API.
func TxCacheRouter(txCacheHandler *handlers.TxCacheHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/orders", txCacheHandler.HandleForwardOrder).Methods("POST")
	r.HandleFunc("/orders", txCacheHandler.HandleGetOrders).Methods("GET")
	r.HandleFunc("/bundles", txCacheHandler.HandleForwardBundle).Methods("POST")
	return r
}

func Serve(
	ctx context.Context,
	addr string,
	handler http.Handler,
) {
	server := &http.Server{
		Addr:        addr,
		Handler:     handler,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
