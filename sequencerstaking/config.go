package sequencerstaking

// Config of the sequencer staking component
type Config struct {
	// MaxSequencers is the size bound of the active set of each chain
	MaxSequencers int `mapstructure:"MaxSequencers"`
	// CancellerRewardPercentage is the share of the slash fine paid to the canceler of a wrong update
	CancellerRewardPercentage uint8 `mapstructure:"CancellerRewardPercentage"`
	// RotationPeriodBlocks is how often, in blocks, the selected sequencer advances
	RotationPeriodBlocks uint64 `mapstructure:"RotationPeriodBlocks"`
}
