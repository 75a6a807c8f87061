package drops

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/psbt"
)

// Packets decodes the PSBTs returned by Mint. Mint itself never
// parses them; this is for callers that sign in-process.
func (m MintResult) Packets() ([]*psbt.Packet, error) {
	packets := make([]*psbt.Packet, 0, len(m.PSBT))
	for i, encoded := range m.PSBT {
		p, err := psbt.NewFromRawBytes(strings.NewReader(encoded), true)
		if err != nil {
			return nil, fmt.Errorf("decoding psbt[%d]: %w", i, err)
		}
		packets = append(packets, p)
	}

	return packets, nil
}

// EncodePSBTs base64 encodes signed packets for BroadcastMint.
func EncodePSBTs(packets []*psbt.Packet) ([]string, error) {
	encoded := make([]string, 0, len(packets))
	for i, p := range packets {
		if p == nil {
			return nil, fmt.Errorf("encoding psbt[%d]: nil packet", i)
		}

		s, err := p.B64Encode()
		if err != nil {
			return nil, fmt.Errorf("encoding psbt[%d]: %w", i, err)
		}
		encoded = append(encoded, s)
	}

	return encoded, nil
}
