package signer

import (
	"context"

	"github.com/sprintertech/signet-orders/config"
	"github.com/sprintertech/signet-orders/orders"
)

// NewSignerFromConfig builds a local or KMS signer wrapped with bounded
// retries.
func NewSignerFromConfig(ctx context.Context, c config.SignerConfig) (*RetrySigner, error) {
	var s orders.Signer
	if c.KmsKeyID != "" {
		client, err := NewKMSClient(ctx, KMSConfig{
			KeyID:     c.KmsKeyID,
			Region:    c.KmsRegion,
			Endpoint:  c.KmsEndpoint,
			AccessKey: c.KmsAccessKey,
			SecretKey: c.KmsSecretKey,
		})
		if err != nil {
			return nil, err
		}

		s, err = NewKMSSigner(ctx, client, c.KmsKeyID)
		if err != nil {
			return nil, err
		}
	} else {
		local, err := NewLocalSignerFromHex(c.Key)
		if err != nil {
			return nil, err
		}
		s = local
	}

	return NewRetrySigner(s, c.Retries, c.RetryInterval), nil
}
