package common

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/keccak256"
)

// Uint64ToBytes converts a uint64 to a byte slice
func Uint64ToBytes(num uint64) []byte {
	const uint64ByteSize = 8

	bytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(bytes, num)

	return bytes
}

// Keccak256 hashes the concatenation of all the given byte slices
func Keccak256(data ...[]byte) common.Hash {
	return common.BytesToHash(keccak256.Hash(data...))
}
