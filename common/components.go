package common

const (
	// NODE name to identify the block producing state machine component
	NODE = "node"
	// RPC name to identify the rpc component (implies node)
	RPC = "rpc"
	// ROLLDOWN name to identify the dispute queue and request processor
	ROLLDOWN = "rolldown"
	// SEQUENCER_STAKING name to identify the sequencer staking component
	SEQUENCER_STAKING = "sequencer-staking" //nolint:stylecheck
	// TOKENS name to identify the token ledger
	TOKENS = "tokens"
	// RIGHTS name to identify the sequencer rights ledger
	RIGHTS = "rights"
)
