package events

import (
	"encoding/json"
	"fmt"

	"github.com/0xPolygon/rolldown/db"
	"github.com/russross/meddler"
)

const eventTable = "event"

const (
	L1ReadStored                   = "L1ReadStored"
	L1ReadCanceled                 = "L1ReadCanceled"
	RequestProcessedOnL2           = "RequestProcessedOnL2"
	SequencerJoinedActiveSet       = "SequencerJoinedActiveSet"
	SequencersRemovedFromActiveSet = "SequencersRemovedFromActiveSet"
	SequencerSlashed               = "SequencerSlashed"
	StakeProvided                  = "StakeProvided"
	StakeWithdrawn                 = "StakeWithdrawn"
	WithdrawalRequestCreated       = "WithdrawalRequestCreated"
	TxBatchCreated                 = "TxBatchCreated"
	MaintenanceModeSwitched        = "MaintenanceModeSwitched"
)

// Event is a notification emitted by a state transition. Events are written in the same
// transaction as the change they describe.
type Event struct {
	ID    uint64          `meddler:"id,pk" json:"id"`
	Block uint64          `meddler:"block" json:"block"`
	Name  string          `meddler:"name" json:"name"`
	Chain uint32          `meddler:"chain" json:"chain"`
	Data  json.RawMessage `meddler:"data" json:"data"`
}

// Emit stores an event whose data is the JSON encoding of payload
func Emit(tx db.Querier, block uint64, name string, chain uint32, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error encoding %s event: %w", name, err)
	}
	e := &Event{
		Block: block,
		Name:  name,
		Chain: chain,
		Data:  data,
	}
	if err := meddler.Insert(tx, eventTable, e); err != nil {
		return fmt.Errorf("error inserting %s event: %w", name, err)
	}
	return nil
}

// Get returns the events emitted between fromBlock and toBlock, both included, in emission order
func Get(tx db.Querier, fromBlock, toBlock uint64) ([]*Event, error) {
	var events []*Event
	err := meddler.QueryAll(tx, &events,
		`SELECT * FROM event WHERE block >= $1 AND block <= $2 ORDER BY id ASC;`, fromBlock, toBlock)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetByName returns the events with the given name emitted between fromBlock and toBlock
func GetByName(tx db.Querier, name string, fromBlock, toBlock uint64) ([]*Event, error) {
	var events []*Event
	err := meddler.QueryAll(tx, &events,
		`SELECT * FROM event WHERE name = $1 AND block >= $2 AND block <= $3 ORDER BY id ASC;`,
		name, fromBlock, toBlock)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Decode unmarshals the data of the event into v
func (e *Event) Decode(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}
