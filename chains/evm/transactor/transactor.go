package transactor

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/signet-orders/orders"
)

const DEFAULT_GAS_LIMIT = 1_000_000

var DEFAULT_PRIORITY_FEE = big.NewInt(16 * params.GWei)

type ChainClient interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// Call is an unsigned contract call or value transfer.
type Call struct {
	To    common.Address
	Data  []byte
	Value *big.Int
}

type TxOpts struct {
	GasLimit    uint64
	PriorityFee *big.Int
}

// SignedTxs are EIP-2718 encoded transactions in execution order.
type SignedTxs struct {
	Raw    []hexutil.Bytes
	Hashes []common.Hash
}

// Transactor signs transactions for a single chain. The transactions are
// never broadcast, they are handed out to be bundled. Nonces handed out since
// the last ResetNonces stay reserved, so transactions signed concurrently for
// the same block never share a nonce.
type Transactor struct {
	client  ChainClient
	signer  orders.Signer
	chainID *big.Int
	opts    TxOpts

	mu       sync.Mutex
	next     uint64
	reserved bool
}

func NewTransactor(client ChainClient, signer orders.Signer, chainID uint64, opts TxOpts) *Transactor {
	if opts.GasLimit == 0 {
		opts.GasLimit = DEFAULT_GAS_LIMIT
	}
	if opts.PriorityFee == nil {
		opts.PriorityFee = DEFAULT_PRIORITY_FEE
	}

	return &Transactor{
		client:  client,
		signer:  signer,
		chainID: new(big.Int).SetUint64(chainID),
		opts:    opts,
	}
}

func (t *Transactor) ChainID() uint64 {
	return t.chainID.Uint64()
}

// ResetNonces releases reserved nonces. The next signing starts at the
// pending nonce of the signer.
func (t *Transactor) ResetNonces() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.reserved = false
	t.next = 0
}

// reserve hands out n consecutive nonces starting at the pending nonce or
// after the last reservation, whichever is higher.
func (t *Transactor) reserve(ctx context.Context, n int) (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	nonce, err := t.client.PendingNonceAt(ctx, t.signer.Address())
	if err != nil {
		return 0, fmt.Errorf("failed fetching nonce: %w", err)
	}
	if t.reserved && t.next > nonce {
		nonce = t.next
	}
	t.next = nonce + uint64(n)
	t.reserved = true
	return nonce, nil
}

// SignAndEncode signs calls with sequential nonces from a fresh reservation.
func (t *Transactor) SignAndEncode(ctx context.Context, calls []Call) (*SignedTxs, error) {
	signed := &SignedTxs{
		Raw:    make([]hexutil.Bytes, 0, len(calls)),
		Hashes: make([]common.Hash, 0, len(calls)),
	}
	if len(calls) == 0 {
		return signed, nil
	}

	head, err := t.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed fetching head: %w", err)
	}
	nonce, err := t.reserve(ctx, len(calls))
	if err != nil {
		return nil, err
	}

	feeCap := new(big.Int).Set(t.opts.PriorityFee)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	}

	ethSigner := types.LatestSignerForChainID(t.chainID)
	for i, call := range calls {
		to := call.To
		value := call.Value
		if value == nil {
			value = big.NewInt(0)
		}

		tx := types.NewTx(&types.DynamicFeeTx{
			ChainID:   t.chainID,
			Nonce:     nonce + uint64(i),
			GasTipCap: t.opts.PriorityFee,
			GasFeeCap: feeCap,
			Gas:       t.opts.GasLimit,
			To:        &to,
			Value:     value,
			Data:      call.Data,
		})

		sig, err := t.signer.SignHash(ctx, ethSigner.Hash(tx).Bytes())
		if err != nil {
			return nil, err
		}
		tx, err = tx.WithSignature(ethSigner, sig)
		if err != nil {
			return nil, err
		}

		raw, err := tx.MarshalBinary()
		if err != nil {
			return nil, err
		}

		log.Debug().Str("hash", tx.Hash().Hex()).Uint64("chainID", t.chainID.Uint64()).Msg("Transaction signed and encoded")
		signed.Raw = append(signed.Raw, raw)
		signed.Hashes = append(signed.Hashes, tx.Hash())
	}
	return signed, nil
}

// Decode parses an encoded transaction and recovers its sender.
func Decode(raw []byte, chainID uint64) (*types.Transaction, common.Address, error) {
	tx := new(types.Transaction)
	err := tx.UnmarshalBinary(raw)
	if err != nil {
		return nil, common.Address{}, err
	}

	from, err := types.Sender(types.LatestSignerForChainID(new(big.Int).SetUint64(chainID)), tx)
	if err != nil {
		return nil, common.Address{}, err
	}
	return tx, from, nil
}
