package tokens

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/0xPolygon/rolldown/common"
	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/log"
	"github.com/0xPolygon/rolldown/messages"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

// NativeAssetID is the asset used to stake
const NativeAssetID uint64 = 0

var (
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrInsufficientReserved = errors.New("insufficient reserved balance")
	ErrUnknownAsset         = errors.New("unknown asset")
	ErrAssetAlreadyExists   = errors.New("asset already exists")
)

// Balance of an account for one asset
type Balance struct {
	Account  ethCommon.Address `meddler:"account,address" json:"account"`
	AssetID  uint64            `meddler:"asset_id" json:"assetId"`
	Free     *big.Int          `meddler:"free,bigint" json:"free"`
	Reserved *big.Int          `meddler:"reserved,bigint" json:"reserved"`
}

type l1AssetRow struct {
	Chain   uint32            `meddler:"chain"`
	Address ethCommon.Address `meddler:"address,address"`
	AssetID uint64            `meddler:"asset_id"`
}

type assetRow struct {
	AssetID  uint64   `meddler:"asset_id"`
	Issuance *big.Int `meddler:"issuance,bigint"`
}

// Ledger is a multi asset balance book with a registry of the assets bridged from L1.
// Every method takes the querier of the ongoing transaction.
type Ledger struct {
	logger *log.Logger
}

func NewLedger(logger *log.Logger) *Ledger {
	return &Ledger{logger: logger}
}

// GetL1AssetID returns the local id of an L1 token, db.ErrNotFound if it was never bridged
func (l *Ledger) GetL1AssetID(tx db.Querier, asset messages.L1Asset) (uint64, error) {
	var row l1AssetRow
	err := meddler.QueryRow(tx, &row,
		`SELECT * FROM l1_asset WHERE chain = $1 AND address = $2;`, asset.Chain, asset.Address.Hex())
	if err != nil {
		return 0, db.ReturnErrNotFound(err)
	}
	return row.AssetID, nil
}

// CreateL1Asset registers a new asset for an L1 token and returns its id
func (l *Ledger) CreateL1Asset(tx db.Querier, asset messages.L1Asset) (uint64, error) {
	var next uint64
	if err := tx.QueryRow(`SELECT COALESCE(MAX(asset_id), 0) + 1 FROM asset;`).Scan(&next); err != nil {
		return 0, fmt.Errorf("error getting next asset id: %w", err)
	}
	if err := meddler.Insert(tx, "asset", &assetRow{AssetID: next, Issuance: big.NewInt(0)}); err != nil {
		return 0, fmt.Errorf("error inserting asset %d: %w", next, err)
	}
	row := &l1AssetRow{Chain: asset.Chain, Address: asset.Address, AssetID: next}
	if err := meddler.Insert(tx, "l1_asset", row); err != nil {
		if db.IsUniqueConstraintErr(err) {
			return 0, fmt.Errorf("%w: %s", ErrAssetAlreadyExists, asset)
		}
		return 0, fmt.Errorf("error inserting l1 asset %s: %w", asset, err)
	}
	l.logger.Infof("registered l1 asset %s with id %d", asset, next)
	return next, nil
}

// Balance returns the balance of the account, zero if it never held the asset
func (l *Ledger) Balance(tx db.Querier, assetID uint64, account ethCommon.Address) (Balance, error) {
	var b Balance
	err := meddler.QueryRow(tx, &b,
		`SELECT * FROM balance WHERE account = $1 AND asset_id = $2;`, account.Hex(), assetID)
	if err != nil {
		err = db.ReturnErrNotFound(err)
		if errors.Is(err, db.ErrNotFound) {
			return Balance{Account: account, AssetID: assetID, Free: big.NewInt(0), Reserved: big.NewInt(0)}, nil
		}
		return Balance{}, err
	}
	return b, nil
}

// TotalIssuance returns the amount of the asset in circulation
func (l *Ledger) TotalIssuance(tx db.Querier, assetID uint64) (*big.Int, error) {
	var a assetRow
	if err := meddler.QueryRow(tx, &a, `SELECT * FROM asset WHERE asset_id = $1;`, assetID); err != nil {
		err = db.ReturnErrNotFound(err)
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownAsset, assetID)
		}
		return nil, err
	}
	return a.Issuance, nil
}

// Mint creates amount of the asset on the free balance of the account
func (l *Ledger) Mint(tx db.Querier, assetID uint64, account ethCommon.Address, amount *big.Int) error {
	if err := l.changeIssuance(tx, assetID, amount, true); err != nil {
		return err
	}
	return l.mutate(tx, assetID, account, func(b *Balance) error {
		free, err := common.AddAmounts(b.Free, amount)
		if err != nil {
			return err
		}
		b.Free = free
		return nil
	})
}

// EnsureCanWithdraw checks that the free balance of the account covers amount
func (l *Ledger) EnsureCanWithdraw(tx db.Querier, assetID uint64, account ethCommon.Address, amount *big.Int) error {
	b, err := l.Balance(tx, assetID, account)
	if err != nil {
		return err
	}
	if _, err := common.SubAmounts(b.Free, amount); err != nil {
		return fmt.Errorf("%w: %s has %s of asset %d, needs %s",
			ErrInsufficientBalance, account, b.Free, assetID, amount)
	}
	return nil
}

// Burn destroys amount from the free balance of the account
func (l *Ledger) Burn(tx db.Querier, assetID uint64, account ethCommon.Address, amount *big.Int) error {
	if err := l.mutate(tx, assetID, account, func(b *Balance) error {
		free, err := common.SubAmounts(b.Free, amount)
		if err != nil {
			return fmt.Errorf("%w: %s has %s of asset %d, needs %s",
				ErrInsufficientBalance, account, b.Free, assetID, amount)
		}
		b.Free = free
		return nil
	}); err != nil {
		return err
	}
	return l.changeIssuance(tx, assetID, amount, false)
}

// Reserve moves amount of the native asset from free to reserved
func (l *Ledger) Reserve(tx db.Querier, account ethCommon.Address, amount *big.Int) error {
	return l.mutate(tx, NativeAssetID, account, func(b *Balance) error {
		free, err := common.SubAmounts(b.Free, amount)
		if err != nil {
			return fmt.Errorf("%w: %s has %s free, needs %s", ErrInsufficientBalance, account, b.Free, amount)
		}
		reserved, err := common.AddAmounts(b.Reserved, amount)
		if err != nil {
			return err
		}
		b.Free, b.Reserved = free, reserved
		return nil
	})
}

// Unreserve moves amount of the native asset from reserved back to free
func (l *Ledger) Unreserve(tx db.Querier, account ethCommon.Address, amount *big.Int) error {
	return l.mutate(tx, NativeAssetID, account, func(b *Balance) error {
		reserved, err := common.SubAmounts(b.Reserved, amount)
		if err != nil {
			return fmt.Errorf("%w: %s has %s reserved, needs %s", ErrInsufficientReserved, account, b.Reserved, amount)
		}
		free, err := common.AddAmounts(b.Free, amount)
		if err != nil {
			return err
		}
		b.Free, b.Reserved = free, reserved
		return nil
	})
}

// SlashReserved burns amount of the reserved native balance of the account
func (l *Ledger) SlashReserved(tx db.Querier, account ethCommon.Address, amount *big.Int) error {
	if err := l.mutate(tx, NativeAssetID, account, func(b *Balance) error {
		reserved, err := common.SubAmounts(b.Reserved, amount)
		if err != nil {
			return fmt.Errorf("%w: %s has %s reserved, needs %s", ErrInsufficientReserved, account, b.Reserved, amount)
		}
		b.Reserved = reserved
		return nil
	}); err != nil {
		return err
	}
	return l.changeIssuance(tx, NativeAssetID, amount, false)
}

// RepatriateReserved moves amount of the reserved native balance of from to the free
// balance of to
func (l *Ledger) RepatriateReserved(tx db.Querier, from, to ethCommon.Address, amount *big.Int) error {
	if err := l.mutate(tx, NativeAssetID, from, func(b *Balance) error {
		reserved, err := common.SubAmounts(b.Reserved, amount)
		if err != nil {
			return fmt.Errorf("%w: %s has %s reserved, needs %s", ErrInsufficientReserved, from, b.Reserved, amount)
		}
		b.Reserved = reserved
		return nil
	}); err != nil {
		return err
	}
	return l.mutate(tx, NativeAssetID, to, func(b *Balance) error {
		free, err := common.AddAmounts(b.Free, amount)
		if err != nil {
			return err
		}
		b.Free = free
		return nil
	})
}

func (l *Ledger) mutate(tx db.Querier, assetID uint64, account ethCommon.Address, fn func(b *Balance) error) error {
	b, err := l.Balance(tx, assetID, account)
	if err != nil {
		return err
	}
	if err := fn(&b); err != nil {
		return err
	}
	_, err = tx.Exec(`
		INSERT INTO balance (account, asset_id, free, reserved) VALUES ($1, $2, $3, $4)
		ON CONFLICT (account, asset_id) DO UPDATE SET free = excluded.free, reserved = excluded.reserved;`,
		account.Hex(), assetID, b.Free.String(), b.Reserved.String())
	if err != nil {
		return fmt.Errorf("error updating balance of %s: %w", account, err)
	}
	return nil
}

func (l *Ledger) changeIssuance(tx db.Querier, assetID uint64, amount *big.Int, increase bool) error {
	issuance, err := l.TotalIssuance(tx, assetID)
	if err != nil {
		return err
	}
	if increase {
		issuance, err = common.AddAmounts(issuance, amount)
	} else {
		issuance, err = common.SubAmounts(issuance, amount)
	}
	if err != nil {
		return fmt.Errorf("issuance of asset %d: %w", assetID, err)
	}
	_, err = tx.Exec(`UPDATE asset SET issuance = $1 WHERE asset_id = $2;`, issuance.String(), assetID)
	return err
}

