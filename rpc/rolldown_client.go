package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/rolldown/events"
	"github.com/0xPolygon/rolldown/messages"
	"github.com/0xPolygon/rolldown/rights"
	"github.com/0xPolygon/rolldown/rolldown"
	"github.com/0xPolygon/rolldown/rpc/types"
	"github.com/0xPolygon/rolldown/tokens"
	"github.com/0xPolygon/rolldown/tree"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var jSONRPCCall = rpc.JSONRPCCall

var ErrNoSigningKey = errors.New("client has no signing key")

type RolldownClientInterface interface {
	UpdateL2FromL1(update messages.L1Update) (*types.Submitted, error)
	UpdateL2FromL1Encoded(chain uint32, data []byte) (*types.Submitted, error)
	ForceUpdateL2FromL1(update messages.L1Update) (*types.Submitted, error)
	CancelRequestsFromL1(chain uint32, deadline uint64) (*types.Submitted, error)
	ForceCancelRequestsFromL1(chain uint32, deadline uint64) (*types.Submitted, error)
	ProvideSequencerStake(chain uint32, amount *big.Int) (*types.Submitted, error)
	LeaveActiveSequencers(chain uint32) (*types.Submitted, error)
	RejoinActiveSequencers(chain uint32) (*types.Submitted, error)
	Unstake(chain uint32) (*types.Submitted, error)
	SetSequencerConfiguration(chain uint32, minimalStake, slashFine *big.Int) (*types.Submitted, error)
	Withdraw(chain uint32, recipient, token common.Address, amount *big.Int) (*types.Submitted, error)
	CreateBatch(chain uint32, rng messages.Range) (*types.Submitted, error)
	SetMaintenanceMode(on bool) (*types.Submitted, error)

	PendingUpdatesDigest(chain uint32) (common.Hash, error)
	PendingUpdatesEncoded(chain uint32) ([]byte, error)
	SequencerRights(chain uint32, sequencer common.Address) (*rights.Rights, error)
	SequencerStake(chain uint32, sequencer common.Address) (*big.Int, error)
	ActiveSequencers(chain uint32) ([]common.Address, error)
	SelectedSequencer(chain uint32) (common.Address, error)
	PendingRequest(chain uint32, deadline uint64) (*rolldown.PendingRequest, error)
	Events(fromBlock, toBlock uint64) ([]*events.Event, error)
	Balance(assetID uint64, account common.Address) (*tokens.Balance, error)
	BlockNumber() (uint64, error)
	Nonce(account common.Address) (uint64, error)
	IsMaintenance() (bool, error)
	L2Request(chain uint32, l2RequestID uint64) (*rolldown.L2Request, error)
	L2RequestsBatch(chain uint32, batchID uint64) (*rolldown.L2RequestsBatch, error)
	LastL2RequestsBatch(chain uint32) (*rolldown.L2RequestsBatch, error)
	GetMerkleRoot(chain uint32, rng messages.Range) (common.Hash, error)
	GetMerkleProof(chain uint32, rng messages.Range, l2RequestID uint64) (tree.Proof, error)
	VerifyMerkleProof(
		chain uint32, rng messages.Range, root common.Hash, l2RequestID uint64, proof tree.Proof,
	) (bool, error)
}

func (c *Client) UpdateL2FromL1(update messages.L1Update) (*types.Submitted, error) {
	return c.signedCall("updateL2FromL1", update)
}

func (c *Client) UpdateL2FromL1Encoded(chain uint32, data []byte) (*types.Submitted, error) {
	return c.signedCall("updateL2FromL1Encoded", types.EncodedUpdateCall{Chain: chain, Data: data})
}

func (c *Client) ForceUpdateL2FromL1(update messages.L1Update) (*types.Submitted, error) {
	return c.signedCall("forceUpdateL2FromL1", update)
}

func (c *Client) CancelRequestsFromL1(chain uint32, deadline uint64) (*types.Submitted, error) {
	return c.signedCall("cancelRequestsFromL1", types.PendingUpdateCall{Chain: chain, Deadline: deadline})
}

func (c *Client) ForceCancelRequestsFromL1(chain uint32, deadline uint64) (*types.Submitted, error) {
	return c.signedCall("forceCancelRequestsFromL1", types.PendingUpdateCall{Chain: chain, Deadline: deadline})
}

func (c *Client) ProvideSequencerStake(chain uint32, amount *big.Int) (*types.Submitted, error) {
	return c.signedCall("provideSequencerStake", types.StakeCall{Chain: chain, Amount: amount})
}

func (c *Client) LeaveActiveSequencers(chain uint32) (*types.Submitted, error) {
	return c.signedCall("leaveActiveSequencers", types.ChainCall{Chain: chain})
}

func (c *Client) RejoinActiveSequencers(chain uint32) (*types.Submitted, error) {
	return c.signedCall("rejoinActiveSequencers", types.ChainCall{Chain: chain})
}

func (c *Client) Unstake(chain uint32) (*types.Submitted, error) {
	return c.signedCall("unstake", types.ChainCall{Chain: chain})
}

func (c *Client) SetSequencerConfiguration(chain uint32, minimalStake, slashFine *big.Int) (*types.Submitted, error) {
	return c.signedCall("setSequencerConfiguration", types.SequencerConfigurationCall{
		Chain: chain, MinimalStake: minimalStake, SlashFine: slashFine,
	})
}

func (c *Client) Withdraw(chain uint32, recipient, token common.Address, amount *big.Int) (*types.Submitted, error) {
	return c.signedCall("withdraw", types.WithdrawCall{
		Chain: chain, Recipient: recipient, TokenAddress: token, Amount: amount,
	})
}

func (c *Client) CreateBatch(chain uint32, rng messages.Range) (*types.Submitted, error) {
	return c.signedCall("createBatch", types.BatchCall{Chain: chain, Range: rng})
}

func (c *Client) SetMaintenanceMode(on bool) (*types.Submitted, error) {
	return c.signedCall("setMaintenanceMode", types.MaintenanceCall{On: on})
}

func (c *Client) PendingUpdatesDigest(chain uint32) (common.Hash, error) {
	var result common.Hash
	if err := c.call(&result, "pendingUpdatesDigest", chain); err != nil {
		return common.Hash{}, err
	}
	return result, nil
}

func (c *Client) PendingUpdatesEncoded(chain uint32) ([]byte, error) {
	var result hexutil.Bytes
	if err := c.call(&result, "pendingUpdatesEncoded", chain); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) SequencerRights(chain uint32, sequencer common.Address) (*rights.Rights, error) {
	result := &rights.Rights{}
	if err := c.call(result, "sequencerRights", chain, sequencer); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) SequencerStake(chain uint32, sequencer common.Address) (*big.Int, error) {
	result := new(big.Int)
	if err := c.call(result, "sequencerStake", chain, sequencer); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) ActiveSequencers(chain uint32) ([]common.Address, error) {
	var result []common.Address
	if err := c.call(&result, "activeSequencers", chain); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) SelectedSequencer(chain uint32) (common.Address, error) {
	var result common.Address
	if err := c.call(&result, "selectedSequencer", chain); err != nil {
		return common.Address{}, err
	}
	return result, nil
}

func (c *Client) PendingRequest(chain uint32, deadline uint64) (*rolldown.PendingRequest, error) {
	result := &rolldown.PendingRequest{}
	if err := c.call(result, "pendingRequest", chain, deadline); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Events(fromBlock, toBlock uint64) ([]*events.Event, error) {
	var result []*events.Event
	if err := c.call(&result, "events", fromBlock, toBlock); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Balance(assetID uint64, account common.Address) (*tokens.Balance, error) {
	result := &tokens.Balance{}
	if err := c.call(result, "balance", assetID, account); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) BlockNumber() (uint64, error) {
	var result uint64
	if err := c.call(&result, "blockNumber"); err != nil {
		return 0, err
	}
	return result, nil
}

func (c *Client) Nonce(account common.Address) (uint64, error) {
	var result uint64
	if err := c.call(&result, "nonce", account); err != nil {
		return 0, err
	}
	return result, nil
}

func (c *Client) IsMaintenance() (bool, error) {
	var result bool
	if err := c.call(&result, "isMaintenance"); err != nil {
		return false, err
	}
	return result, nil
}

func (c *Client) L2Request(chain uint32, l2RequestID uint64) (*rolldown.L2Request, error) {
	result := &rolldown.L2Request{}
	if err := c.call(result, "l2Request", chain, l2RequestID); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) L2RequestsBatch(chain uint32, batchID uint64) (*rolldown.L2RequestsBatch, error) {
	result := &rolldown.L2RequestsBatch{}
	if err := c.call(result, "l2RequestsBatch", chain, batchID); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) LastL2RequestsBatch(chain uint32) (*rolldown.L2RequestsBatch, error) {
	result := &rolldown.L2RequestsBatch{}
	if err := c.call(result, "lastL2RequestsBatch", chain); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetMerkleRoot(chain uint32, rng messages.Range) (common.Hash, error) {
	var result common.Hash
	if err := c.call(&result, "getMerkleRoot", chain, rng); err != nil {
		return common.Hash{}, err
	}
	return result, nil
}

func (c *Client) GetMerkleProof(chain uint32, rng messages.Range, l2RequestID uint64) (tree.Proof, error) {
	var result tree.Proof
	if err := c.call(&result, "getMerkleProof", chain, rng, l2RequestID); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) VerifyMerkleProof(
	chain uint32, rng messages.Range, root common.Hash, l2RequestID uint64, proof tree.Proof,
) (bool, error) {
	var result bool
	if err := c.call(&result, "verifyMerkleProof", chain, rng, root, l2RequestID, proof); err != nil {
		return false, err
	}
	return result, nil
}

// signedCall fetches the nonce of the client account and sends the signed call
func (c *Client) signedCall(method string, payload interface{}) (*types.Submitted, error) {
	if c.key == nil {
		return nil, ErrNoSigningKey
	}
	nonce, err := c.Nonce(crypto.PubkeyToAddress(c.key.PublicKey))
	if err != nil {
		return nil, err
	}
	signature, err := types.SignCall(c.key, ROLLDOWN+"_"+method, payload, nonce)
	if err != nil {
		return nil, err
	}
	result := &types.Submitted{}
	if err := c.call(result, method, payload, nonce, signature); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) call(result interface{}, method string, params ...interface{}) error {
	fullMethod := ROLLDOWN + "_" + method
	response, err := jSONRPCCall(c.url, fullMethod, params...)
	if err != nil {
		return err
	}

	// Check if the response is an error
	if response.Error != nil {
		return fmt.Errorf("error in the response calling %s: %v %v", fullMethod, response.Error.Code, response.Error.Message)
	}
	return json.Unmarshal(response.Result, result)
}
