package signer

import (
	"bytes"
	"context"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"math/big"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/kms/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/signet-orders/orders"
)

var secp256k1N = crypto.S256().Params().N
var secp256k1HalfN = new(big.Int).Div(secp256k1N, big.NewInt(2))

type KMSClient interface {
	Sign(ctx context.Context, params *kms.SignInput, optFns ...func(*kms.Options)) (*kms.SignOutput, error)
	GetPublicKey(ctx context.Context, params *kms.GetPublicKeyInput, optFns ...func(*kms.Options)) (*kms.GetPublicKeyOutput, error)
}

type KMSConfig struct {
	KeyID     string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type subjectPublicKeyInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

type ecdsaSignature struct {
	R, S *big.Int
}

// KMSSigner signs digests with an asymmetric ECC_SECG_P256K1 key kept in
// AWS KMS.
type KMSSigner struct {
	client KMSClient
	keyID  string

	pubKey  []byte
	address common.Address
}

// NewKMSClient builds a KMS client from static credentials when provided,
// falling back to the default AWS credential chain.
func NewKMSClient(ctx context.Context, c KMSConfig) (*kms.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.Region),
	}
	if c.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.AccessKey,
			c.SecretKey,
			"",
		)))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return kms.NewFromConfig(cfg, func(o *kms.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	}), nil
}

// NewKMSSigner fetches the public key of keyID and derives the signer address.
func NewKMSSigner(ctx context.Context, client KMSClient, keyID string) (*KMSSigner, error) {
	out, err := client.GetPublicKey(ctx, &kms.GetPublicKeyInput{
		KeyId: aws.String(keyID),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", orders.ErrSigningUnavailable, err)
	}

	var info subjectPublicKeyInfo
	_, err = asn1.Unmarshal(out.PublicKey, &info)
	if err != nil {
		return nil, fmt.Errorf("invalid kms public key: %w", err)
	}

	pub, err := crypto.UnmarshalPubkey(info.PublicKey.Bytes)
	if err != nil {
		return nil, fmt.Errorf("invalid kms public key: %w", err)
	}

	address := crypto.PubkeyToAddress(*pub)
	log.Info().Str("keyID", keyID).Str("address", address.Hex()).Msg("Loaded KMS signer")

	return &KMSSigner{
		client:  client,
		keyID:   keyID,
		pubKey:  info.PublicKey.Bytes,
		address: address,
	}, nil
}

func (s *KMSSigner) Address() common.Address {
	return s.address
}

func (s *KMSSigner) SignHash(ctx context.Context, digest []byte) ([]byte, error) {
	out, err := s.client.Sign(ctx, &kms.SignInput{
		KeyId:            aws.String(s.keyID),
		Message:          digest,
		MessageType:      types.MessageTypeDigest,
		SigningAlgorithm: types.SigningAlgorithmSpecEcdsaSha256,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", orders.ErrSigningUnavailable, err)
	}

	var sig ecdsaSignature
	_, err = asn1.Unmarshal(out.Signature, &sig)
	if err != nil {
		return nil, fmt.Errorf("invalid kms signature: %w", err)
	}

	// EIP-2 requires the lower s value
	if sig.S.Cmp(secp256k1HalfN) > 0 {
		sig.S = new(big.Int).Sub(secp256k1N, sig.S)
	}

	rs := make([]byte, 64)
	sig.R.FillBytes(rs[:32])
	sig.S.FillBytes(rs[32:])
	for v := byte(0); v < 2; v++ {
		candidate := append(append([]byte{}, rs...), v)
		pub, err := crypto.Ecrecover(digest, candidate)
		if err != nil {
			continue
		}
		if bytes.Equal(pub, s.pubKey) {
			return candidate, nil
		}
	}

	return nil, fmt.Errorf("unable to recover kms signature for key %s", s.keyID)
}
