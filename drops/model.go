package drops

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/inscrib3/drops-go/client/upload"
)

// Drop is a minting campaign as served by the backend. Fields are
// passed through untouched.
type Drop struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Symbol             string `json:"symbol"`
	Description        string `json:"description"`
	Icon               string `json:"icon"`
	Price              string `json:"price"`
	RecipientAddress   string `json:"recipientAddress"`
	RecipientPublicKey string `json:"recipientPublicKey"`
	Supply             string `json:"supply"`
	Minting            string `json:"minting"`
	Minted             string `json:"minted"`
}

// UnmarshalJSON accepts price, supply, minting and minted as either
// JSON strings or bare scalars, keeping the literal text.
func (d *Drop) UnmarshalJSON(b []byte) error {
	type plain Drop
	var shadow struct {
		plain
		Price   scalar `json:"price"`
		Supply  scalar `json:"supply"`
		Minting scalar `json:"minting"`
		Minted  scalar `json:"minted"`
	}
	if err := json.Unmarshal(b, &shadow); err != nil {
		return err
	}

	*d = Drop(shadow.plain)
	d.Price = string(shadow.Price)
	d.Supply = string(shadow.Supply)
	d.Minting = string(shadow.Minting)
	d.Minted = string(shadow.Minted)

	return nil
}

// PriceAmount parses Price as an exact decimal.
func (d Drop) PriceAmount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(d.Price)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing price %q: %w", d.Price, err)
	}

	return amount, nil
}

// CreateParams describes a new drop.
type CreateParams struct {
	Name               string
	Symbol             string
	Description        string
	Icon               upload.File
	Price              string
	RecipientAddress   string
	RecipientPublicKey string
}

// Created is returned by Create.
type Created struct {
	ID string `json:"id"`
}

// Removed is returned by Remove.
type Removed struct {
	ID string `json:"id"`
}

// MintParams identifies who pays for and who receives a mint.
type MintParams struct {
	PaymentAddress     string `json:"paymentAddress"`
	PaymentPublicKey   string `json:"paymentPublicKey"`
	RecipientAddress   string `json:"recipientAddress"`
	RecipientPublicKey string `json:"recipientPublicKey"`
}

// MintResult holds the unsigned PSBTs, base64 encoded, for the caller
// to sign and hand back to BroadcastMint.
type MintResult struct {
	PSBT []string `json:"psbt"`
}

type broadcastRequest struct {
	SignedPSBT []string `json:"signedPsbt"`
}

// Broadcast is returned by BroadcastMint.
type Broadcast struct {
	TxID string `json:"txid"`
}

// Files lists the file names uploaded to a drop.
type Files struct {
	Files []string `json:"files"`
}

// Supply is the drop's supply after an uploads change.
type Supply struct {
	Supply string `json:"supply"`
}

// UnmarshalJSON accepts supply as a JSON string or number.
func (s *Supply) UnmarshalJSON(b []byte) error {
	var shadow struct {
		Supply scalar `json:"supply"`
	}
	if err := json.Unmarshal(b, &shadow); err != nil {
		return err
	}

	s.Supply = string(shadow.Supply)

	return nil
}

// scalar decodes a JSON string, number or boolean into its text form.
// Numbers keep their literal digits.
type scalar string

func (s *scalar) UnmarshalJSON(b []byte) error {
	switch {
	case bytes.Equal(b, []byte("null")):
		return nil
	case len(b) > 0 && b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = scalar(v)
	case len(b) > 0 && (b[0] == '{' || b[0] == '['):
		return fmt.Errorf("expected scalar, got %s", b)
	default:
		*s = scalar(b)
	}

	return nil
}

type removeUploadsRequest struct {
	Files []string `json:"files"`
}
