package params

// ChainConfig identifies one Lumina network. The chain tag is the last
// byte of the genesis block id and doubles as replay protection: it is
// the first field of every transaction.
type ChainConfig struct {
	Name     string
	ChainTag byte
}

var (
	MainnetChainConfig = &ChainConfig{Name: "mainnet", ChainTag: 0x4a}

	TestnetChainConfig = &ChainConfig{Name: "testnet", ChainTag: 0x27}

	// SoloChainConfig is the single-node development network.
	SoloChainConfig = &ChainConfig{Name: "solo", ChainTag: 0xf6}
)

// ConfigByTag resolves a chain tag to a known network, or nil for a
// custom one.
func ConfigByTag(tag byte) *ChainConfig {
	for _, c := range []*ChainConfig{MainnetChainConfig, TestnetChainConfig, SoloChainConfig} {
		if c.ChainTag == tag {
			return c
		}
	}
	return nil
}
