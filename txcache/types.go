package txcache

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/sprintertech/signet-orders/orders"
)

// SignetBundle is the bundle wire format: rollup transactions valid for a
// single rollup block, plus host transactions executed before them.
type SignetBundle struct {
	Txs               []hexutil.Bytes `json:"txs"`
	HostTxs           []hexutil.Bytes `json:"hostTxs"`
	BlockNumber       hexutil.Uint64  `json:"blockNumber"`
	RevertingTxHashes []common.Hash   `json:"revertingTxHashes"`
}

type BundleResponse struct {
	ID uuid.UUID `json:"id"`
}

type OrdersResponse struct {
	Orders []*orders.SignedOrder `json:"orders"`
}

type ErrorResponse struct {
	Code   int    `json:"code"`
	Reason string `json:"reason"`
}

// RelayRejectedError is an explicit rejection by the transaction cache. The
// artifact has to be rebuilt before it is submitted again.
type RelayRejectedError struct {
	StatusCode int
	Reason     string
}

func (e *RelayRejectedError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", orders.ErrRelayRejected, e.StatusCode, e.Reason)
}

func (e *RelayRejectedError) Unwrap() error {
	return orders.ErrRelayRejected
}

// RejectionReason extracts the relay reason from err, if any.
func RejectionReason(err error) (string, bool) {
	var rejected *RelayRejectedError
	if errors.As(err, &rejected) {
		return rejected.Reason, true
	}
	return "", false
}
