package node

import (
	"context"
	"fmt"

	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/tokens"
)

// ApplyGenesis writes the genesis state once. Chains are configured first, then the genesis
// sequencers are endowed and staked, which makes them active with bootstrapped rights, and
// finally the first member of each active set is selected.
func (n *Node) ApplyGenesis(ctx context.Context) error {
	return n.execute(ctx, func(tx db.Querier, block uint64) error {
		state, err := getState(tx)
		if err != nil {
			return err
		}
		if state.GenesisApplied {
			n.logger.Debug("genesis already applied")
			return nil
		}

		for _, c := range n.genesis.Chains {
			if err := n.staking.SetSequencerConfiguration(tx, block, c.Chain, c.MinimalStake, c.SlashFine); err != nil {
				return fmt.Errorf("chain %d: %w", c.Chain, err)
			}
		}
		for _, b := range n.genesis.Balances {
			if err := n.tokens.Mint(tx, tokens.NativeAssetID, b.Account, b.Amount); err != nil {
				return fmt.Errorf("balance of %s: %w", b.Account, err)
			}
		}
		for _, s := range n.genesis.Sequencers {
			if err := n.tokens.Mint(tx, tokens.NativeAssetID, s.Address, s.Stake); err != nil {
				return fmt.Errorf("endowment of sequencer %s: %w", s.Address, err)
			}
			if err := n.staking.ProvideSequencerStake(tx, block, s.Chain, s.Address, s.Stake); err != nil {
				return fmt.Errorf("stake of sequencer %s: %w", s.Address, err)
			}
		}
		for _, c := range n.genesis.Chains {
			if err := n.staking.SelectFirst(tx, c.Chain); err != nil {
				return err
			}
		}
		n.logger.Infof("genesis applied: %d chains, %d sequencers, %d balances",
			len(n.genesis.Chains), len(n.genesis.Sequencers), len(n.genesis.Balances))
		return setGenesisApplied(tx)
	})
}
