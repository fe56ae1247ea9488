// Package bip44 builds BIP44-shaped hierarchies for the wallet and
// resolves slash-delimited derivation paths to their nodes. The
// hierarchy levels encode, in order: master, purpose, coin type,
// account, public/private branch, and address index; each address
// level is expanded into a deterministic linear chain.
package bip44

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aldur/arcula"
)

const (
	// HardenedIndex is the offset of hardened derivation indexes,
	// kept for compatibility with BIP32 conventions.
	HardenedIndex = 1 << 31
	// PurposeID is the identifier of the purpose node, the
	// hardened encoding of 44.
	PurposeID = 44 + HardenedIndex
)

// CoinType is a registered coin identifier, from the SLIP-44
// registry, in its hardened form.
type CoinType uint64

// The supported coin types.
// See https://github.com/satoshilabs/slips/blob/master/slip-0044.md.
const (
	CoinBTC  CoinType = 0x80000000
	CoinTEST CoinType = 0x80000001
	CoinLTC  CoinType = 0x80000002
	CoinBCH  CoinType = 0x80000091
)

var coinTypes = map[string]CoinType{
	"BTC":  CoinBTC,
	"TEST": CoinTEST,
	"LTC":  CoinLTC,
	"BCH":  CoinBCH,
}

var (
	// ErrUnknownCoin indicates a coin symbol outside the
	// supported registry.
	ErrUnknownCoin = errors.New("[bip44] Unknown coin type")
	// ErrEmptyAccount indicates an account configured with no
	// addresses at all, or with a negative address count.
	ErrEmptyAccount = errors.New("[bip44] Accounts need a positive number of addresses")
)

// CoinFromSymbol maps a coin symbol, case-insensitively, to its
// registered type.
func CoinFromSymbol(symbol string) (CoinType, error) {
	coin, ok := coinTypes[strings.ToUpper(symbol)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCoin, symbol)
	}
	return coin, nil
}

// An AccountConfig specifies how many private and public addresses an
// account holds.
type AccountConfig struct {
	PrivateAddresses int `toml:"private_addresses"`
	PublicAddresses  int `toml:"public_addresses"`
}

// A Config maps coin symbols to the accounts to generate for each.
type Config map[string][]AccountConfig

// NewTree returns the master node of a BIP44-compatible hierarchy for
// the given configuration. Coins are laid out in lexicographic symbol
// order so that identical configurations produce identical trees.
func NewTree(config Config) (*arcula.Node, error) {
	master := arcula.NewNode(0, "m")
	purpose := arcula.NewNode(PurposeID, "44'")
	master.AddEdge(purpose)

	symbols := make([]string, 0, len(config))
	for symbol := range config {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	for _, symbol := range symbols {
		coin, err := CoinFromSymbol(symbol)
		if err != nil {
			return nil, err
		}
		coinNode := arcula.NewNode(uint64(coin), strings.ToUpper(symbol))
		purpose.AddEdge(coinNode)

		for i, account := range config[symbol] {
			if account.PrivateAddresses < 0 || account.PublicAddresses < 0 ||
				account.PrivateAddresses+account.PublicAddresses == 0 {
				return nil, fmt.Errorf("%w: %s account %d", ErrEmptyAccount, symbol, i)
			}
			accountNode := arcula.NewNode(uint64(i), "")
			coinNode.AddEdge(accountNode)

			publicNode := arcula.NewNode(0, "XPUB")
			privateNode := arcula.NewNode(1, "XPRV")
			accountNode.AddEdge(publicNode, privateNode)

			addChain(privateNode, account.PrivateAddresses)
			addChain(publicNode, account.PublicAddresses)
		}
	}

	return master, nil
}

// addChain hangs a linear chain of n address nodes off the branch
// node, each node holding its chain index as identifier.
func addChain(branch *arcula.Node, n int) {
	previous := branch
	for j := 0; j < n; j++ {
		address := arcula.NewNode(uint64(j), "")
		previous.AddEdge(address)
		previous = address
	}
}
