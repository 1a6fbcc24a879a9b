package config

// DefaultVars are not configuration, they are the vars used
// to avoid repetition in config-files
const DefaultVars = `
PathRWData = "/tmp/rolldown"
AdminAddr = "0x0000000000000000000000000000000000000000"
`

// DefaultValues is the default configuration
const DefaultValues = `
# This is the default configuration for the rolldown node

# Log configuration
[Log]
  # Environment is the environment where the node is running
  Environment = "development" # "production" or "development"
  # Level is the log level
  Level = "info"
  # Outputs are the outputs where the logs will be written
  Outputs = ["stderr"]

[Node]
  # DBPath is the path of the database holding the whole state
  DBPath = "{{PathRWData}}/rolldown.sqlite"
  # BlockTime is the time between two blocks
  BlockTime = "6s"
  # Admin is the account allowed to force updates and cancels and to configure the chains
  Admin = "{{AdminAddr}}"

[Rolldown]
  # DisputePeriodLength is the number of blocks an update waits before being processed
  DisputePeriodLength = 10
  # MaxRequestsPerUpdate bounds the number of requests of a single update
  MaxRequestsPerUpdate = 100
  # RequireSelectedSequencer allows only the selected sequencer of a chain to update it
  RequireSelectedSequencer = false
  # MerkleRootAutomaticBatchSize is the number of unbatched L2 requests that triggers a batch, 0 disables them
  MerkleRootAutomaticBatchSize = 10
  # MerkleRootAutomaticBatchPeriod is the number of blocks after which pending L2 requests are batched anyway
  MerkleRootAutomaticBatchPeriod = 25

[SequencerStaking]
  # MaxSequencers is the size bound of the active set of each chain
  MaxSequencers = 10
  # CancellerRewardPercentage is the share of the slash fine paid to the canceler of a wrong update
  CancellerRewardPercentage = 20
  # RotationPeriodBlocks is how often, in blocks, the selected sequencer of each chain advances.
  # 1 advances it on every block
  RotationPeriodBlocks = 1

# Genesis describes the state written on the first start. Amounts are decimal strings.
# [[Genesis.Chains]]
#   Chain = 1
#   MinimalStake = "1000"
#   SlashFine = "100"
# [[Genesis.Sequencers]]
#   Address = "0x..."
#   Chain = 1
#   Stake = "1000"
# [[Genesis.Balances]]
#   Account = "0x..."
#   Amount = "1000000"

[RPC]
  # Host defines the network adapter that will be used to serve the HTTP requests
  Host = "0.0.0.0"
  # Port defines the port to serve the endpoints via HTTP
  Port = 5576
  # ReadTimeout is the HTTP server read timeout
  # check net/http.server.ReadTimeout and net/http.server.ReadHeaderTimeout
  ReadTimeout = "2s"
  # WriteTimeout is the HTTP server write timeout
  # check net/http.server.WriteTimeout
  WriteTimeout = "2s"
  # MaxRequestsPerIPAndSecond defines how much requests a single IP can
  # send within a single second
  MaxRequestsPerIPAndSecond = 10
`
