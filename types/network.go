package types

// Network identifies which blockchain network the on-chain side of an
// operation targets. The tag must round-trip unchanged through every
// create/read call for a given resource.
type Network string

const (
	NetworkSei        Network = "sei"
	NetworkSeiTestnet Network = "sei-testnet"
)

// chainIDs maps networks to their EVM chain IDs, used when building EIP-712
// domains for payment authorizations.
var chainIDs = map[Network]string{
	NetworkSei:        "1329",
	NetworkSeiTestnet: "1328",
}

func (n Network) String() string {
	return string(n)
}

// ChainID returns the decimal EVM chain ID for the network, or "" when the
// network is unknown.
func (n Network) ChainID() string {
	return chainIDs[n]
}

func (n Network) IsTestnet() bool {
	return n == NetworkSeiTestnet
}

// Supported reports whether this library can build payment authorizations
// for the network.
func (n Network) Supported() bool {
	_, ok := chainIDs[n]
	return ok
}
