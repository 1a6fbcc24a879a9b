package node

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/0xPolygon/rolldown/common"
	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/log"
	"github.com/0xPolygon/rolldown/node/migrations"
	"github.com/0xPolygon/rolldown/rights"
	"github.com/0xPolygon/rolldown/rolldown"
	"github.com/0xPolygon/rolldown/sequencerstaking"
	"github.com/0xPolygon/rolldown/tokens"
	ethCommon "github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidNonce = errors.New("invalid nonce")
	ErrNotAdmin     = errors.New("caller is not the admin")
)

// Node produces the blocks of the L2 state machine. Every block tick and every entry point
// runs in its own database transaction while holding mu, so state transitions never interleave.
type Node struct {
	logger  *log.Logger
	cfg     Config
	genesis Genesis

	db       *sql.DB
	rights   *rights.Ledger
	tokens   *tokens.Ledger
	staking  *sequencerstaking.Staking
	rolldown *rolldown.Rolldown

	mu sync.Mutex
}

// New opens the database, runs the migrations of every component and wires them together
func New(
	logger *log.Logger,
	cfg Config,
	rolldownCfg rolldown.Config,
	stakingCfg sequencerstaking.Config,
	genesis Genesis,
) (*Node, error) {
	if cfg.BlockTime.Duration <= 0 {
		return nil, fmt.Errorf("BlockTime must be greater than zero, got %s", cfg.BlockTime.String())
	}
	if err := migrations.RunMigrations(cfg.DBPath); err != nil {
		return nil, err
	}
	database, err := db.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := db.CheckMigrations(logger, database, migrations.All()); err != nil {
		database.Close()
		return nil, err
	}

	rightsLedger := rights.NewLedger(log.WithFields("module", common.RIGHTS))
	tokenLedger := tokens.NewLedger(log.WithFields("module", common.TOKENS))
	hooks := rolldown.NewSequencerHooks(log.WithFields("module", common.ROLLDOWN, "hooks", true), rightsLedger)
	staking, err := sequencerstaking.New(log.WithFields("module", common.SEQUENCER_STAKING),
		stakingCfg, tokenLedger, hooks)
	if err != nil {
		return nil, err
	}
	rd, err := rolldown.New(log.WithFields("module", common.ROLLDOWN),
		rolldownCfg, rightsLedger, staking, tokenLedger, tokenLedger, maintenanceStatus{})
	if err != nil {
		return nil, err
	}
	return &Node{
		logger:   logger,
		cfg:      cfg,
		genesis:  genesis,
		db:       database,
		rights:   rightsLedger,
		tokens:   tokenLedger,
		staking:  staking,
		rolldown: rd,
	}, nil
}

// Start applies the genesis if needed and produces a block every BlockTime until ctx is done
func (n *Node) Start(ctx context.Context) error {
	if err := n.ApplyGenesis(ctx); err != nil {
		return fmt.Errorf("error applying genesis: %w", err)
	}
	block, err := n.BlockNumber(ctx)
	if err != nil {
		return err
	}
	n.logger.Infof("node started at block %d", block)

	ticker := time.NewTicker(n.cfg.BlockTime.Duration)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			n.logger.Info("node stopped")
			return nil
		case <-ticker.C:
			if _, err := n.ProduceBlock(ctx); err != nil {
				n.logger.Errorf("error producing block: %v", err)
			}
		}
	}
}

// ProduceBlock finalizes the current block, advances to the next one and initializes it.
// It returns the new block number.
func (n *Node) ProduceBlock(ctx context.Context) (uint64, error) {
	var next uint64
	err := n.executeTx(ctx, func(tx *db.Tx, block uint64) error {
		next = block + 1
		tx.AddCommitCallback(func() { n.logger.Debugf("block %d produced", next) })
		tx.AddRollbackCallback(func() { n.logger.Warnf("block %d discarded", next) })
		if err := n.staking.OnFinalize(tx, block); err != nil {
			return fmt.Errorf("error finalizing block %d: %w", block, err)
		}
		if err := n.rolldown.OnInitialize(tx, next); err != nil {
			return fmt.Errorf("error initializing block %d: %w", next, err)
		}
		return setBlockNumber(tx, next)
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

// Close releases the database
func (n *Node) Close() error {
	return n.db.Close()
}

// execute runs fn at the current block inside a transaction that is committed only if fn succeeds
func (n *Node) execute(ctx context.Context, fn func(tx db.Querier, block uint64) error) error {
	return n.executeTx(ctx, func(tx *db.Tx, block uint64) error {
		return fn(tx, block)
	})
}

func (n *Node) executeTx(ctx context.Context, fn func(tx *db.Tx, block uint64) error) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	tx, err := db.NewTx(ctx, n.db)
	if err != nil {
		return err
	}
	shouldRollback := true
	defer func() {
		if shouldRollback {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				n.logger.Errorf("error while rolling back tx %v", errRllbck)
			}
		}
	}()

	state, err := getState(tx)
	if err != nil {
		return err
	}
	if err := fn(tx, state.BlockNumber); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	shouldRollback = false
	return nil
}

// executeSigned is execute for calls made by an account. The nonce must be the next one of
// the caller and is consumed together with the call.
func (n *Node) executeSigned(
	ctx context.Context, caller ethCommon.Address, nonce uint64, fn func(tx db.Querier, block uint64) error,
) error {
	return n.execute(ctx, func(tx db.Querier, block uint64) error {
		expected, err := getNonce(tx, caller)
		if err != nil {
			return err
		}
		if nonce != expected {
			return fmt.Errorf("%w: %s expected %d, got %d", ErrInvalidNonce, caller, expected, nonce)
		}
		if err := fn(tx, block); err != nil {
			return err
		}
		return setNonce(tx, caller, expected+1)
	})
}

// executeAdmin is executeSigned restricted to the admin account
func (n *Node) executeAdmin(
	ctx context.Context, caller ethCommon.Address, nonce uint64, fn func(tx db.Querier, block uint64) error,
) error {
	if caller != n.cfg.Admin {
		return fmt.Errorf("%w: %s", ErrNotAdmin, caller)
	}
	return n.executeSigned(ctx, caller, nonce, fn)
}

// query runs fn against a consistent snapshot of the state at the current block
func (n *Node) query(ctx context.Context, fn func(tx db.Querier, block uint64) error) error {
	tx, err := db.NewTx(ctx, n.db)
	if err != nil {
		return err
	}
	defer func() {
		if errRllbck := tx.Rollback(); errRllbck != nil {
			n.logger.Errorf("error while rolling back read tx %v", errRllbck)
		}
	}()
	state, err := getState(tx)
	if err != nil {
		return err
	}
	return fn(tx, state.BlockNumber)
}
