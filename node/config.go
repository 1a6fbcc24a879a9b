package node

import (
	"math/big"

	"github.com/0xPolygon/rolldown/config/types"
	ethCommon "github.com/ethereum/go-ethereum/common"
)

// Config of the block producing node
type Config struct {
	// DBPath path of the database holding the whole state
	DBPath string `mapstructure:"DBPath"`
	// BlockTime is the time between two blocks
	BlockTime types.Duration `mapstructure:"BlockTime"`
	// Admin is the only account allowed to run the forced calls and to configure the chains
	Admin ethCommon.Address `mapstructure:"Admin"`
}

// Genesis is the state the node starts from
type Genesis struct {
	Chains     []GenesisChain     `mapstructure:"Chains"`
	Sequencers []GenesisSequencer `mapstructure:"Sequencers"`
	Balances   []GenesisBalance   `mapstructure:"Balances"`
}

// GenesisChain configures the sequencers of a chain
type GenesisChain struct {
	Chain        uint32   `mapstructure:"Chain"`
	MinimalStake *big.Int `mapstructure:"MinimalStake"`
	SlashFine    *big.Int `mapstructure:"SlashFine"`
}

// GenesisSequencer is endowed with Stake of the native asset, which is staked right away
type GenesisSequencer struct {
	Address ethCommon.Address `mapstructure:"Address"`
	Chain   uint32            `mapstructure:"Chain"`
	Stake   *big.Int          `mapstructure:"Stake"`
}

// GenesisBalance is a free balance of the native asset
type GenesisBalance struct {
	Account ethCommon.Address `mapstructure:"Account"`
	Amount  *big.Int          `mapstructure:"Amount"`
}
