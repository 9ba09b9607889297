package mining

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// MerkleRoot builds the merkle root of txids given in display order. An odd
// level duplicates its last hash.
func MerkleRoot(txids []string) (chainhash.Hash, error) {
	if len(txids) == 0 {
		return chainhash.Hash{}, nil
	}

	level := make([]chainhash.Hash, 0, len(txids))
	for _, id := range txids {
		h, err := chainhash.NewHashFromStr(id)
		if err != nil {
			return chainhash.Hash{}, fmt.Errorf("txid %q: %w", id, err)
		}
		level = append(level, *h)
	}

	var buf [chainhash.HashSize * 2]byte
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([]chainhash.Hash, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			copy(buf[:chainhash.HashSize], level[i][:])
			copy(buf[chainhash.HashSize:], level[i+1][:])
			next = append(next, chainhash.DoubleHashH(buf[:]))
		}
		level = next
	}
	return level[0], nil
}
