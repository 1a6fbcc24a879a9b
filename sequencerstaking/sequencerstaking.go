package sequencerstaking

import (
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/0xPolygon/rolldown/common"
	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/events"
	"github.com/0xPolygon/rolldown/log"
	ethCommon "github.com/ethereum/go-ethereum/common"
)

var (
	ErrUnknownChain                = errors.New("unknown chain")
	ErrSequencerIsNotInActiveSet   = errors.New("sequencer is not in the active set")
	ErrSequencerAlreadyInActiveSet = errors.New("sequencer is already in the active set")
	ErrNotEnoughSequencerStake     = errors.New("not enough sequencer stake")
	ErrMaxSequencersLimitReached   = errors.New("max sequencers limit reached")
	ErrCantUnstakeWhileInActiveSet = errors.New("can not unstake while in the active set")
	ErrNoStake                     = errors.New("sequencer has no stake")
)

// Currency holds the native asset that backs the stake
type Currency interface {
	Reserve(tx db.Querier, account ethCommon.Address, amount *big.Int) error
	Unreserve(tx db.Querier, account ethCommon.Address, amount *big.Int) error
	SlashReserved(tx db.Querier, account ethCommon.Address, amount *big.Int) error
	RepatriateReserved(tx db.Querier, from, to ethCommon.Address, amount *big.Int) error
}

// ActiveSetHooks is notified of every change of an active set, and decides whether the
// stake of an inactive sequencer can be released
type ActiveSetHooks interface {
	OnSequencerJoined(tx db.Querier, chain uint32, sequencer ethCommon.Address) error
	OnSequencersRemoved(tx db.Querier, chain uint32, removed []ethCommon.Address) error
	CanUnstake(tx db.Querier, chain uint32, sequencer ethCommon.Address) error
}

// SequencerJoinedActiveSet is the payload of events.SequencerJoinedActiveSet
type SequencerJoinedActiveSet struct {
	Chain     uint32            `json:"chain"`
	Sequencer ethCommon.Address `json:"sequencer"`
}

// SequencersRemovedFromActiveSet is the payload of events.SequencersRemovedFromActiveSet
type SequencersRemovedFromActiveSet struct {
	Chain      uint32              `json:"chain"`
	Sequencers []ethCommon.Address `json:"sequencers"`
}

// StakeProvided is the payload of events.StakeProvided
type StakeProvided struct {
	Chain     uint32            `json:"chain"`
	Sequencer ethCommon.Address `json:"sequencer"`
	Amount    *big.Int          `json:"amount"`
	Total     *big.Int          `json:"total"`
}

// StakeWithdrawn is the payload of events.StakeWithdrawn
type StakeWithdrawn struct {
	Chain     uint32            `json:"chain"`
	Sequencer ethCommon.Address `json:"sequencer"`
	Amount    *big.Int          `json:"amount"`
}

// Staking keeps the stake of the sequencers, the bounded active set of every chain and its
// rotation. It is the only writer of those tables.
type Staking struct {
	logger   *log.Logger
	cfg      Config
	currency Currency
	hooks    ActiveSetHooks
}

func New(logger *log.Logger, cfg Config, currency Currency, hooks ActiveSetHooks) (*Staking, error) {
	if cfg.MaxSequencers <= 0 {
		return nil, fmt.Errorf("MaxSequencers must be greater than zero, got %d", cfg.MaxSequencers)
	}
	if cfg.CancellerRewardPercentage > 100 { //nolint:mnd
		return nil, fmt.Errorf("CancellerRewardPercentage must be at most 100, got %d", cfg.CancellerRewardPercentage)
	}
	if cfg.RotationPeriodBlocks == 0 {
		return nil, errors.New("RotationPeriodBlocks must be greater than zero")
	}
	return &Staking{
		logger:   logger,
		cfg:      cfg,
		currency: currency,
		hooks:    hooks,
	}, nil
}

// SetSequencerConfiguration sets the minimal stake and the slash fine of the chain. Active
// members whose stake is below the new minimum are removed from the active set.
func (s *Staking) SetSequencerConfiguration(
	tx db.Querier, block uint64, chain uint32, minimalStake, slashFine *big.Int,
) error {
	if err := common.CheckAmount(minimalStake); err != nil {
		return fmt.Errorf("minimal stake: %w", err)
	}
	if err := common.CheckAmount(slashFine); err != nil {
		return fmt.Errorf("slash fine: %w", err)
	}
	cfg := &ChainConfig{Chain: chain, MinimalStake: minimalStake, SlashFine: slashFine}
	if err := setChainConfig(tx, cfg); err != nil {
		return err
	}
	s.logger.Infof("chain %d configured with minimal stake %s and slash fine %s", chain, minimalStake, slashFine)

	set, err := getActiveSet(tx, chain)
	if err != nil {
		return err
	}
	var below []ethCommon.Address
	for _, member := range set {
		stake, err := getStake(tx, chain, member)
		if err != nil {
			return err
		}
		if stake.Cmp(minimalStake) < 0 {
			below = append(below, member)
		}
	}
	return s.removeFromActiveSet(tx, block, chain, below)
}

// ProvideSequencerStake reserves amount of the native asset as stake of the sequencer.
// The sequencer joins the active set as soon as its stake reaches the minimum, if there is room.
func (s *Staking) ProvideSequencerStake(
	tx db.Querier, block uint64, chain uint32, sequencer ethCommon.Address, amount *big.Int,
) error {
	if err := common.CheckAmount(amount); err != nil {
		return fmt.Errorf("stake of %s: %w", sequencer, err)
	}
	cfg, err := s.ChainConfig(tx, chain)
	if err != nil {
		return err
	}
	stake, err := getStake(tx, chain, sequencer)
	if err != nil {
		return err
	}
	total, err := common.AddAmounts(stake, amount)
	if err != nil {
		return fmt.Errorf("stake of %s: %w", sequencer, err)
	}
	if err := setStake(tx, chain, sequencer, total); err != nil {
		return err
	}
	if err := s.currency.Reserve(tx, sequencer, amount); err != nil {
		return fmt.Errorf("error reserving stake of %s: %w", sequencer, err)
	}
	if err := events.Emit(tx, block, events.StakeProvided, chain, StakeProvided{
		Chain: chain, Sequencer: sequencer, Amount: amount, Total: total,
	}); err != nil {
		return err
	}

	if total.Cmp(cfg.MinimalStake) < 0 {
		return nil
	}
	set, err := getActiveSet(tx, chain)
	if err != nil {
		return err
	}
	if slices.Contains(set, sequencer) {
		return nil
	}
	if len(set) >= s.cfg.MaxSequencers {
		s.logger.Infof("sequencer %s has enough stake on chain %d but the active set is full", sequencer, chain)
		return nil
	}
	return s.activate(tx, block, chain, sequencer, set)
}

// LeaveActiveSequencers removes the sequencer from the active set of the chain
func (s *Staking) LeaveActiveSequencers(tx db.Querier, block uint64, chain uint32, sequencer ethCommon.Address) error {
	active, err := s.IsActiveSequencer(tx, chain, sequencer)
	if err != nil {
		return err
	}
	if !active {
		return fmt.Errorf("%w: %s on chain %d", ErrSequencerIsNotInActiveSet, sequencer, chain)
	}
	return s.removeFromActiveSet(tx, block, chain, []ethCommon.Address{sequencer})
}

// RejoinActiveSequencers puts back in the active set a sequencer that has enough stake
func (s *Staking) RejoinActiveSequencers(tx db.Querier, block uint64, chain uint32, sequencer ethCommon.Address) error {
	cfg, err := s.ChainConfig(tx, chain)
	if err != nil {
		return err
	}
	set, err := getActiveSet(tx, chain)
	if err != nil {
		return err
	}
	if slices.Contains(set, sequencer) {
		return fmt.Errorf("%w: %s on chain %d", ErrSequencerAlreadyInActiveSet, sequencer, chain)
	}
	if len(set) >= s.cfg.MaxSequencers {
		return fmt.Errorf("%w: chain %d has %d sequencers", ErrMaxSequencersLimitReached, chain, len(set))
	}
	stake, err := getStake(tx, chain, sequencer)
	if err != nil {
		return err
	}
	if stake.Cmp(cfg.MinimalStake) < 0 {
		return fmt.Errorf("%w: %s has %s, minimum is %s", ErrNotEnoughSequencerStake, sequencer, stake, cfg.MinimalStake)
	}
	return s.activate(tx, block, chain, sequencer, set)
}

// Unstake releases the whole stake of an inactive sequencer
func (s *Staking) Unstake(tx db.Querier, block uint64, chain uint32, sequencer ethCommon.Address) error {
	active, err := s.IsActiveSequencer(tx, chain, sequencer)
	if err != nil {
		return err
	}
	if active {
		return fmt.Errorf("%w: %s on chain %d", ErrCantUnstakeWhileInActiveSet, sequencer, chain)
	}
	if err := s.hooks.CanUnstake(tx, chain, sequencer); err != nil {
		return err
	}
	stake, err := getStake(tx, chain, sequencer)
	if err != nil {
		return err
	}
	if stake.Sign() == 0 {
		return fmt.Errorf("%w: %s on chain %d", ErrNoStake, sequencer, chain)
	}
	if err := s.currency.Unreserve(tx, sequencer, stake); err != nil {
		return fmt.Errorf("error unreserving stake of %s: %w", sequencer, err)
	}
	if err := deleteStake(tx, chain, sequencer); err != nil {
		return err
	}
	s.logger.Infof("sequencer %s unstaked %s on chain %d", sequencer, stake, chain)
	return events.Emit(tx, block, events.StakeWithdrawn, chain, StakeWithdrawn{
		Chain: chain, Sequencer: sequencer, Amount: stake,
	})
}

// IsActiveSequencer reports whether the sequencer is a member of the active set of the chain
func (s *Staking) IsActiveSequencer(tx db.Querier, chain uint32, sequencer ethCommon.Address) (bool, error) {
	set, err := getActiveSet(tx, chain)
	if err != nil {
		return false, err
	}
	return slices.Contains(set, sequencer), nil
}

// IsSelectedSequencer reports whether the sequencer is the current selection of the chain
func (s *Staking) IsSelectedSequencer(tx db.Querier, chain uint32, sequencer ethCommon.Address) (bool, error) {
	selected, err := s.SelectedSequencer(tx, chain)
	if err != nil {
		return false, err
	}
	return selected != nil && *selected == sequencer, nil
}

// SelectedSequencer returns the current selection of the chain, nil if there is none
func (s *Staking) SelectedSequencer(tx db.Querier, chain uint32) (*ethCommon.Address, error) {
	r, err := getRotation(tx, chain)
	if err != nil {
		return nil, err
	}
	return r.Selected, nil
}

// ActiveSequencers returns the active set of the chain in rotation order
func (s *Staking) ActiveSequencers(tx db.Querier, chain uint32) ([]ethCommon.Address, error) {
	return getActiveSet(tx, chain)
}

// SequencerStake returns the stake of the sequencer, zero if it has none
func (s *Staking) SequencerStake(tx db.Querier, chain uint32, sequencer ethCommon.Address) (*big.Int, error) {
	return getStake(tx, chain, sequencer)
}

// ChainConfig returns the configuration of the chain, ErrUnknownChain if it was never configured
func (s *Staking) ChainConfig(tx db.Querier, chain uint32) (ChainConfig, error) {
	cfg, err := getChainConfig(tx, chain)
	if errors.Is(err, db.ErrNotFound) {
		return ChainConfig{}, fmt.Errorf("%w: %d", ErrUnknownChain, chain)
	}
	return cfg, err
}

// Chains returns every configured chain in ascending order
func (s *Staking) Chains(tx db.Querier) ([]uint32, error) {
	return getChains(tx)
}

// SelectFirst selects the first member of the active set when nobody is selected
func (s *Staking) SelectFirst(tx db.Querier, chain uint32) error {
	r, err := getRotation(tx, chain)
	if err != nil {
		return err
	}
	if r.Selected != nil {
		return nil
	}
	set, err := getActiveSet(tx, chain)
	if err != nil {
		return err
	}
	if len(set) == 0 {
		return nil
	}
	r.Selected = &set[0]
	return setRotation(tx, &r)
}

// OnFinalize advances the rotation of every chain once every RotationPeriodBlocks blocks
func (s *Staking) OnFinalize(tx db.Querier, block uint64) error {
	if block%s.cfg.RotationPeriodBlocks != 0 {
		return nil
	}
	chains, err := getChains(tx)
	if err != nil {
		return err
	}
	for _, chain := range chains {
		set, err := getActiveSet(tx, chain)
		if err != nil {
			return err
		}
		r, err := getRotation(tx, chain)
		if err != nil {
			return err
		}
		r.advance(set)
		if err := setRotation(tx, &r); err != nil {
			return err
		}
		if r.Selected != nil {
			s.logger.Debugf("block %d: selected sequencer of chain %d is %s", block, chain, r.Selected)
		}
	}
	return nil
}

func (s *Staking) activate(tx db.Querier, block uint64, chain uint32, sequencer ethCommon.Address,
	set []ethCommon.Address) error {
	if err := setActiveSet(tx, chain, append(set, sequencer)); err != nil {
		return err
	}
	if err := s.hooks.OnSequencerJoined(tx, chain, sequencer); err != nil {
		return err
	}
	s.logger.Infof("sequencer %s joined the active set of chain %d", sequencer, chain)
	return events.Emit(tx, block, events.SequencerJoinedActiveSet, chain, SequencerJoinedActiveSet{
		Chain: chain, Sequencer: sequencer,
	})
}

// removeFromActiveSet takes the given members out of the active set, fixing the rotation
// and the rights of everybody left. Sequencers that are not active are ignored.
func (s *Staking) removeFromActiveSet(tx db.Querier, block uint64, chain uint32,
	sequencers []ethCommon.Address) error {
	if len(sequencers) == 0 {
		return nil
	}
	set, err := getActiveSet(tx, chain)
	if err != nil {
		return err
	}
	removed := make(map[ethCommon.Address]struct{}, len(sequencers))
	var actuallyRemoved []ethCommon.Address
	for _, seq := range sequencers {
		if _, dup := removed[seq]; dup || !slices.Contains(set, seq) {
			continue
		}
		removed[seq] = struct{}{}
		actuallyRemoved = append(actuallyRemoved, seq)
	}
	if len(actuallyRemoved) == 0 {
		return nil
	}
	r, err := getRotation(tx, chain)
	if err != nil {
		return err
	}
	remaining := r.remove(set, removed)
	if err := setActiveSet(tx, chain, remaining); err != nil {
		return err
	}
	if err := setRotation(tx, &r); err != nil {
		return err
	}
	if err := s.hooks.OnSequencersRemoved(tx, chain, actuallyRemoved); err != nil {
		return err
	}
	s.logger.Infof("sequencers %v removed from the active set of chain %d", actuallyRemoved, chain)
	return events.Emit(tx, block, events.SequencersRemovedFromActiveSet, chain, SequencersRemovedFromActiveSet{
		Chain: chain, Sequencers: actuallyRemoved,
	})
}

