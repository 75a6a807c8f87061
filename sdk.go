// Package inscrib3 builds a client for the inscrib3 drops API.
//
//	sdk, err := inscrib3.New(
//		inscrib3.WithNetwork(config.Testnet4),
//		inscrib3.WithTimeout(30 * time.Second),
//	)
//	drops, err := sdk.Drops.All(ctx, auth.Credentials{
//		Address:   address,
//		Message:   message,
//		Signature: signature,
//	})
//
// Credentials travel with every call and are never stored.
package inscrib3

import (
	"fmt"

	"github.com/inscrib3/drops-go/client"
	"github.com/inscrib3/drops-go/config"
	"github.com/inscrib3/drops-go/drops"
)

// SDK is the namespaced set of API operations.
type SDK struct {
	Drops *drops.Service
}

// New instantiates an SDK with the provided options. Unless overridden
// it targets mainnet bitcoin on the hosted backend.
func New(optFns ...Option) (*SDK, error) {
	opts := options{cfg: config.Default()}
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying sdk option: %w", err)
		}
	}

	c, err := client.Build(opts.client...)
	if err != nil {
		return nil, fmt.Errorf("building client: %w", err)
	}

	svc, err := drops.NewService(c, opts.cfg, opts.drops...)
	if err != nil {
		return nil, fmt.Errorf("building drops service: %w", err)
	}

	return &SDK{Drops: svc}, nil
}
