package rolldown

// Config of the rolldown component
type Config struct {
	// DisputePeriodLength is the number of blocks an update waits in the queue before being processed
	DisputePeriodLength uint64 `mapstructure:"DisputePeriodLength"`
	// MaxRequestsPerUpdate bounds the number of requests carried by a single update
	MaxRequestsPerUpdate int `mapstructure:"MaxRequestsPerUpdate"`
	// RequireSelectedSequencer only accepts updates from the selected sequencer of the chain
	RequireSelectedSequencer bool `mapstructure:"RequireSelectedSequencer"`
	// MerkleRootAutomaticBatchSize is the number of unbatched L2 requests that triggers a batch.
	// 0 disables automatic batches.
	MerkleRootAutomaticBatchSize uint64 `mapstructure:"MerkleRootAutomaticBatchSize"`
	// MerkleRootAutomaticBatchPeriod is the number of blocks after the last batch of a chain that
	// triggers a batch of whatever is pending. 0 only batches on size.
	MerkleRootAutomaticBatchPeriod uint64 `mapstructure:"MerkleRootAutomaticBatchPeriod"`
}
