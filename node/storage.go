package node

import (
	"errors"

	"github.com/0xPolygon/rolldown/db"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

type nodeState struct {
	ID             uint64 `meddler:"id"`
	BlockNumber    uint64 `meddler:"block_number"`
	GenesisApplied bool   `meddler:"genesis_applied"`
	Maintenance    bool   `meddler:"maintenance"`
}

type accountNonce struct {
	Account ethCommon.Address `meddler:"account,address"`
	Nonce   uint64            `meddler:"nonce"`
}

func getState(tx db.Querier) (*nodeState, error) {
	s := &nodeState{}
	err := meddler.QueryRow(tx, s, `SELECT * FROM node_state WHERE id = 1;`)
	return s, db.ReturnErrNotFound(err)
}

func setBlockNumber(tx db.Querier, block uint64) error {
	_, err := tx.Exec(`UPDATE node_state SET block_number = $1 WHERE id = 1;`, block)
	return err
}

func setGenesisApplied(tx db.Querier) error {
	_, err := tx.Exec(`UPDATE node_state SET genesis_applied = TRUE WHERE id = 1;`)
	return err
}

func setMaintenance(tx db.Querier, on bool) error {
	_, err := tx.Exec(`UPDATE node_state SET maintenance = $1 WHERE id = 1;`, on)
	return err
}

// maintenanceStatus reads the maintenance flag kept in the node state
type maintenanceStatus struct{}

func (maintenanceStatus) IsMaintenance(tx db.Querier) (bool, error) {
	s, err := getState(tx)
	if err != nil {
		return false, err
	}
	return s.Maintenance, nil
}

func getNonce(tx db.Querier, account ethCommon.Address) (uint64, error) {
	n := &accountNonce{}
	err := meddler.QueryRow(tx, n, `SELECT * FROM account_nonce WHERE account = $1;`, account.Hex())
	err = db.ReturnErrNotFound(err)
	if errors.Is(err, db.ErrNotFound) {
		return 0, nil
	}
	return n.Nonce, err
}

func setNonce(tx db.Querier, account ethCommon.Address, nonce uint64) error {
	_, err := tx.Exec(`
		INSERT INTO account_nonce (account, nonce) VALUES ($1, $2)
		ON CONFLICT (account) DO UPDATE SET nonce = excluded.nonce;
	`, account.Hex(), nonce)
	return err
}
