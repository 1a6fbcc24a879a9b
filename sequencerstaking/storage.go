package sequencerstaking

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/0xPolygon/rolldown/db"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

// ChainConfig holds the staking parameters of a chain
type ChainConfig struct {
	Chain        uint32   `meddler:"chain" json:"chain"`
	MinimalStake *big.Int `meddler:"minimal_stake,bigint" json:"minimalStake"`
	SlashFine    *big.Int `meddler:"slash_fine,bigint" json:"slashFine"`
}

type stakeRow struct {
	Sequencer ethCommon.Address `meddler:"sequencer,address"`
	Chain     uint32            `meddler:"chain"`
	Amount    *big.Int          `meddler:"amount,bigint"`
}

type activeSequencerRow struct {
	Chain     uint32            `meddler:"chain"`
	Position  int               `meddler:"position"`
	Sequencer ethCommon.Address `meddler:"sequencer,address"`
}

func getChainConfig(tx db.Querier, chain uint32) (ChainConfig, error) {
	var cfg ChainConfig
	if err := meddler.QueryRow(tx, &cfg, `SELECT * FROM chain_config WHERE chain = $1;`, chain); err != nil {
		return ChainConfig{}, db.ReturnErrNotFound(err)
	}
	return cfg, nil
}

func setChainConfig(tx db.Querier, cfg *ChainConfig) error {
	_, err := tx.Exec(`
		INSERT INTO chain_config (chain, minimal_stake, slash_fine) VALUES ($1, $2, $3)
		ON CONFLICT (chain) DO UPDATE SET minimal_stake = excluded.minimal_stake, slash_fine = excluded.slash_fine;`,
		cfg.Chain, cfg.MinimalStake.String(), cfg.SlashFine.String())
	if err != nil {
		return fmt.Errorf("error storing configuration of chain %d: %w", cfg.Chain, err)
	}
	return nil
}

func getChains(tx db.Querier) ([]uint32, error) {
	rows, err := tx.Query(`SELECT chain FROM chain_config ORDER BY chain ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var chains []uint32
	for rows.Next() {
		var chain uint32
		if err := rows.Scan(&chain); err != nil {
			return nil, err
		}
		chains = append(chains, chain)
	}
	return chains, rows.Err()
}

func getStake(tx db.Querier, chain uint32, sequencer ethCommon.Address) (*big.Int, error) {
	var row stakeRow
	err := meddler.QueryRow(tx, &row,
		`SELECT * FROM sequencer_stake WHERE sequencer = $1 AND chain = $2;`, sequencer.Hex(), chain)
	if err != nil {
		err = db.ReturnErrNotFound(err)
		if errors.Is(err, db.ErrNotFound) {
			return big.NewInt(0), nil
		}
		return nil, err
	}
	return row.Amount, nil
}

func setStake(tx db.Querier, chain uint32, sequencer ethCommon.Address, amount *big.Int) error {
	_, err := tx.Exec(`
		INSERT INTO sequencer_stake (sequencer, chain, amount) VALUES ($1, $2, $3)
		ON CONFLICT (sequencer, chain) DO UPDATE SET amount = excluded.amount;`,
		sequencer.Hex(), chain, amount.String())
	if err != nil {
		return fmt.Errorf("error storing stake of %s: %w", sequencer, err)
	}
	return nil
}

func deleteStake(tx db.Querier, chain uint32, sequencer ethCommon.Address) error {
	_, err := tx.Exec(`DELETE FROM sequencer_stake WHERE sequencer = $1 AND chain = $2;`, sequencer.Hex(), chain)
	return err
}

func getActiveSet(tx db.Querier, chain uint32) ([]ethCommon.Address, error) {
	var rows []*activeSequencerRow
	err := meddler.QueryAll(tx, &rows,
		`SELECT * FROM active_sequencer WHERE chain = $1 ORDER BY position ASC;`, chain)
	if err != nil {
		return nil, err
	}
	set := make([]ethCommon.Address, 0, len(rows))
	for _, row := range rows {
		set = append(set, row.Sequencer)
	}
	return set, nil
}

func setActiveSet(tx db.Querier, chain uint32, set []ethCommon.Address) error {
	if _, err := tx.Exec(`DELETE FROM active_sequencer WHERE chain = $1;`, chain); err != nil {
		return fmt.Errorf("error clearing active set of chain %d: %w", chain, err)
	}
	for pos, seq := range set {
		row := &activeSequencerRow{Chain: chain, Position: pos, Sequencer: seq}
		if err := meddler.Insert(tx, "active_sequencer", row); err != nil {
			return fmt.Errorf("error inserting %s in the active set of chain %d: %w", seq, chain, err)
		}
	}
	return nil
}

func getRotation(tx db.Querier, chain uint32) (Rotation, error) {
	var r Rotation
	err := meddler.QueryRow(tx, &r, `SELECT * FROM rotation WHERE chain = $1;`, chain)
	if err != nil {
		err = db.ReturnErrNotFound(err)
		if errors.Is(err, db.ErrNotFound) {
			return Rotation{Chain: chain}, nil
		}
		return Rotation{}, err
	}
	return r, nil
}

func setRotation(tx db.Querier, r *Rotation) error {
	var selected interface{}
	if r.Selected != nil {
		selected = r.Selected.Hex()
	}
	_, err := tx.Exec(`
		INSERT INTO rotation (chain, next_index, selected) VALUES ($1, $2, $3)
		ON CONFLICT (chain) DO UPDATE SET next_index = excluded.next_index, selected = excluded.selected;`,
		r.Chain, r.NextIndex, selected)
	if err != nil {
		return fmt.Errorf("error storing rotation of chain %d: %w", r.Chain, err)
	}
	return nil
}
