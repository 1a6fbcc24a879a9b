package types

import (
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"

	rolldowncommon "github.com/0xPolygon/rolldown/common"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	signatureLength = 65
	recoveryIDIndex = 64
	legacyV         = 27
)

var ErrInvalidSignature = errors.New("invalid signature")

// CallHash is the hash signed by the caller of a write method:
// keccak256(method || json(payload) || big endian nonce), wrapped in the Ethereum signed text format
func CallHash(method string, payload interface{}, nonce uint64) (common.Hash, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return common.Hash{}, fmt.Errorf("error encoding payload of %s: %w", method, err)
	}
	digest := rolldowncommon.Keccak256([]byte(method), data, rolldowncommon.Uint64ToBytes(nonce))
	return common.BytesToHash(accounts.TextHash(digest.Bytes())), nil
}

// SignCall signs a write call with key
func SignCall(key *ecdsa.PrivateKey, method string, payload interface{}, nonce uint64) (hexutil.Bytes, error) {
	hash, err := CallHash(method, payload, nonce)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(hash.Bytes(), key)
	if err != nil {
		return nil, err
	}
	sig[recoveryIDIndex] += legacyV
	return sig, nil
}

// RecoverCaller returns the address that signed the call. Both 0/1 and 27/28 recovery ids are accepted.
func RecoverCaller(method string, payload interface{}, nonce uint64, signature []byte) (common.Address, error) {
	if len(signature) != signatureLength {
		return common.Address{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignature, signatureLength, len(signature))
	}
	hash, err := CallHash(method, payload, nonce)
	if err != nil {
		return common.Address{}, err
	}
	sig := make([]byte, signatureLength)
	copy(sig, signature)
	if sig[recoveryIDIndex] >= legacyV {
		sig[recoveryIDIndex] -= legacyV
	}
	pub, err := crypto.SigToPub(hash.Bytes(), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
