package sequencerstaking

import (
	"fmt"
	"math/big"

	"github.com/0xPolygon/rolldown/common"
	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/events"
	ethCommon "github.com/ethereum/go-ethereum/common"
)

// SequencerSlashed is the payload of events.SequencerSlashed
type SequencerSlashed struct {
	Chain       uint32             `json:"chain"`
	Sequencer   ethCommon.Address  `json:"sequencer"`
	Reporter    *ethCommon.Address `json:"reporter,omitempty"`
	Slashed     *big.Int           `json:"slashed"`
	Repatriated *big.Int           `json:"repatriated"`
	Burned      *big.Int           `json:"burned"`
}

// SlashSequencer takes the slash fine of the chain from the stake of the sequencer, capped at
// the stake. When a reporter is given it is paid CancellerRewardPercentage of the fine, capped
// at what was actually slashed, and the rest is burned. Without reporter everything is burned.
// A sequencer left below the minimal stake is removed from the active set.
func (s *Staking) SlashSequencer(
	tx db.Querier, block uint64, chain uint32, sequencer ethCommon.Address, reporter *ethCommon.Address,
) error {
	cfg, err := s.ChainConfig(tx, chain)
	if err != nil {
		return err
	}
	stake, err := getStake(tx, chain, sequencer)
	if err != nil {
		return err
	}
	slashed := common.MinAmount(stake, cfg.SlashFine)
	remaining, err := common.SubAmounts(stake, slashed)
	if err != nil {
		return fmt.Errorf("stake of %s: %w", sequencer, err)
	}
	repatriated := big.NewInt(0)
	if reporter != nil {
		reward, err := common.PercentOf(cfg.SlashFine, s.cfg.CancellerRewardPercentage)
		if err != nil {
			return err
		}
		repatriated = common.MinAmount(reward, slashed)
	}
	burned, err := common.SubAmounts(slashed, repatriated)
	if err != nil {
		return err
	}

	if err := setStake(tx, chain, sequencer, remaining); err != nil {
		return err
	}
	if repatriated.Sign() > 0 {
		if err := s.currency.RepatriateReserved(tx, sequencer, *reporter, repatriated); err != nil {
			return fmt.Errorf("error paying %s to reporter %s: %w", repatriated, reporter, err)
		}
	}
	if burned.Sign() > 0 {
		if err := s.currency.SlashReserved(tx, sequencer, burned); err != nil {
			return fmt.Errorf("error burning %s of %s: %w", burned, sequencer, err)
		}
	}
	s.logger.Infof("sequencer %s slashed %s on chain %d, %s repatriated and %s burned",
		sequencer, slashed, chain, repatriated, burned)
	if err := events.Emit(tx, block, events.SequencerSlashed, chain, SequencerSlashed{
		Chain:       chain,
		Sequencer:   sequencer,
		Reporter:    reporter,
		Slashed:     slashed,
		Repatriated: repatriated,
		Burned:      burned,
	}); err != nil {
		return err
	}

	if remaining.Cmp(cfg.MinimalStake) >= 0 {
		return nil
	}
	active, err := s.IsActiveSequencer(tx, chain, sequencer)
	if err != nil || !active {
		return err
	}
	return s.removeFromActiveSet(tx, block, chain, []ethCommon.Address{sequencer})
}
