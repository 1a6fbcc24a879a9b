package rpc

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/rolldown/messages"
	"github.com/0xPolygon/rolldown/rights"
	"github.com/0xPolygon/rolldown/rpc/types"
	"github.com/0xPolygon/rolldown/tree"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestClientSignsWriteCalls(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(key.PublicKey)
	sut := NewClient("url", key)
	require.Equal(t, address.Hex(), sut.Address())

	var calls []string
	jSONRPCCall = func(_, method string, params ...interface{}) (rpc.Response, error) {
		calls = append(calls, method)
		switch method {
		case "rolldown_nonce":
			require.Equal(t, []interface{}{address}, params)
			return rpc.Response{Result: json.RawMessage(`5`)}, nil
		case "rolldown_provideSequencerStake":
			require.Len(t, params, 3)
			nonce, ok := params[1].(uint64)
			require.True(t, ok)
			require.Equal(t, uint64(5), nonce)
			sig, ok := params[2].(hexutil.Bytes)
			require.True(t, ok)
			caller, err := types.RecoverCaller(method, params[0], nonce, sig)
			require.NoError(t, err)
			require.Equal(t, address, caller)
			res, err := json.Marshal(types.Submitted{Caller: caller.Hex()})
			require.NoError(t, err)
			return rpc.Response{Result: res}, nil
		}
		t.Fatalf("unexpected call %s", method)
		return rpc.Response{}, nil
	}

	submitted, err := sut.ProvideSequencerStake(1, big.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, address.Hex(), submitted.Caller)
	require.Equal(t, []string{"rolldown_nonce", "rolldown_provideSequencerStake"}, calls)
}

func TestClientWithoutKey(t *testing.T) {
	sut := NewClient("url", nil)
	_, err := sut.Unstake(1)
	require.ErrorIs(t, err, ErrNoSigningKey)
}

func TestClientQueries(t *testing.T) {
	sut := NewClient("url", nil)
	seq := common.HexToAddress("0xa1")
	expected := rights.Rights{Chain: 1, Sequencer: seq, ReadRights: 1, CancelRights: 3}
	encoded, err := json.Marshal(expected)
	require.NoError(t, err)

	jSONRPCCall = func(_, method string, _ ...interface{}) (rpc.Response, error) {
		switch method {
		case "rolldown_sequencerRights":
			return rpc.Response{Result: encoded}, nil
		case "rolldown_pendingUpdatesEncoded":
			return rpc.Response{Result: json.RawMessage(`"0xcafe"`)}, nil
		default:
			return rpc.Response{Error: &rpc.ErrorObject{Code: rpc.NotFoundErrorCode, Message: "not found"}}, nil
		}
	}

	r, err := sut.SequencerRights(1, seq)
	require.NoError(t, err)
	require.Equal(t, expected, *r)

	data, err := sut.PendingUpdatesEncoded(1)
	require.NoError(t, err)
	require.Equal(t, []byte{0xca, 0xfe}, data)

	_, err = sut.SelectedSequencer(1)
	require.ErrorContains(t, err, "not found")
}

func TestClientMerkleQueries(t *testing.T) {
	sut := NewClient("url", nil)
	rng := messages.Range{Start: 1, End: 3}
	proof := tree.Proof{common.HexToHash("0x02"), common.HexToHash("0x03")}
	encodedProof, err := json.Marshal(proof)
	require.NoError(t, err)

	jSONRPCCall = func(_, method string, params ...interface{}) (rpc.Response, error) {
		switch method {
		case "rolldown_getMerkleProof":
			require.Equal(t, []interface{}{uint32(1), rng, uint64(2)}, params)
			return rpc.Response{Result: encodedProof}, nil
		case "rolldown_verifyMerkleProof":
			require.Len(t, params, 5)
			return rpc.Response{Result: json.RawMessage(`true`)}, nil
		case "rolldown_isMaintenance":
			return rpc.Response{Result: json.RawMessage(`false`)}, nil
		}
		t.Fatalf("unexpected call %s", method)
		return rpc.Response{}, nil
	}

	got, err := sut.GetMerkleProof(1, rng, 2)
	require.NoError(t, err)
	require.Equal(t, proof, got)
	ok, err := sut.VerifyMerkleProof(1, rng, common.HexToHash("0x01"), 2, got)
	require.NoError(t, err)
	require.True(t, ok)
	on, err := sut.IsMaintenance()
	require.NoError(t, err)
	require.False(t, on)
}
