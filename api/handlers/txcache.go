package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sprintertech/signet-orders/orders"
	"github.com/sprintertech/signet-orders/txcache"
)

type TxCache interface {
	ForwardOrder(ctx context.Context, order *orders.SignedOrder) error
	GetOrders(ctx context.Context) ([]*orders.SignedOrder, error)
	ForwardBundle(ctx context.Context, bundle *txcache.SignetBundle) (*txcache.BundleResponse, error)
}

// TxCacheHandler exposes a transaction cache over the same HTTP API the
// filler consumes.
type TxCacheHandler struct {
	cache TxCache
}

func NewTxCacheHandler(cache TxCache) *TxCacheHandler {
	return &TxCacheHandler{
		cache: cache,
	}
}

func (h *TxCacheHandler) HandleForwardOrder(w http.ResponseWriter, r *http.Request) {
	order := &orders.SignedOrder{}
	err := json.NewDecoder(r.Body).Decode(order)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	err = h.cache.ForwardOrder(r.Context(), order)
	if err != nil {
		cacheError(w, err)
		return
	}

	log.Debug().Str("orderHash", order.OrderHash().Hex()).Msg("Order forwarded")
	JSONResponse(w, struct{}{})
}

func (h *TxCacheHandler) HandleGetOrders(w http.ResponseWriter, r *http.Request) {
	open, err := h.cache.GetOrders(r.Context())
	if err != nil {
		cacheError(w, err)
		return
	}

	JSONResponse(w, &txcache.OrdersResponse{Orders: open})
}

func (h *TxCacheHandler) HandleForwardBundle(w http.ResponseWriter, r *http.Request) {
	b := &txcache.SignetBundle{}
	err := json.NewDecoder(r.Body).Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	res, err := h.cache.ForwardBundle(r.Context(), b)
	if err != nil {
		cacheError(w, err)
		return
	}

	JSONResponse(w, res)
}

func cacheError(w http.ResponseWriter, err error) {
	var rejected *txcache.RelayRejectedError
	if errors.As(err, &rejected) {
		JSONError(w, errors.New(rejected.Reason), rejected.StatusCode)
		return
	}
	JSONError(w, err, http.StatusInternalServerError)
}
