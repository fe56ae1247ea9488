package bip44

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aldur/arcula"
)

// PathPrefix is the required prefix of every derivation path,
// selecting the BIP44 scheme version.
const PathPrefix = "m/44'"

// The path resolution errors. They form a user-input error category
// of their own, distinct from any cryptographic failure.
var (
	// ErrPathPrefix indicates a path not starting with PathPrefix.
	ErrPathPrefix = errors.New("[bip44] Derivation paths must start with " + PathPrefix)
	// ErrPathEmpty indicates a path with no components after the
	// prefix.
	ErrPathEmpty = errors.New("[bip44] Derivation path selects no node")
	// ErrPathMalformed indicates a non-numeric account or address
	// component.
	ErrPathMalformed = errors.New("[bip44] Malformed derivation path component")
	// ErrUnknownBranch indicates a branch component other than
	// xpub or xprv.
	ErrUnknownBranch = errors.New("[bip44] Unknown public/private branch")
	// ErrPathRange indicates an account or address index outside
	// the hierarchy.
	ErrPathRange = errors.New("[bip44] Derivation path index out of range")
	// ErrPathTooLong indicates components left over after the
	// address level.
	ErrPathTooLong = errors.New("[bip44] Trailing derivation path components")
	// ErrMalformedHierarchy indicates that the hierarchy being
	// resolved against was not built by NewTree.
	ErrMalformedHierarchy = errors.New("[bip44] Hierarchy is not BIP44-shaped")
)

// Resolve maps a slash-delimited derivation path to the matching node
// of a BIP44 hierarchy rooted at master. A full path selects, in
// order, a coin symbol, an account index, a public/private branch,
// and an address index, e.g. "m/44'/BTC/2/xpub/5"; shorter paths
// resolve to the corresponding intermediate node.
func Resolve(master *arcula.Node, path string) (*arcula.Node, error) {
	if !strings.HasPrefix(path, PathPrefix) {
		return nil, fmt.Errorf("%w: %q", ErrPathPrefix, path)
	}
	if master == nil || master.ID != 0 || master.Tag != "m" || len(master.Edges) != 1 {
		return nil, ErrMalformedHierarchy
	}
	purpose := master.Edges[0]
	if purpose.ID != PurposeID {
		return nil, ErrMalformedHierarchy
	}

	rest := strings.Trim(strings.TrimPrefix(path, PathPrefix), "/")
	if rest == "" {
		return nil, fmt.Errorf("%w: %q", ErrPathEmpty, path)
	}
	components := strings.Split(rest, "/")

	node, err := resolveCoin(purpose, components[0])
	if err != nil {
		return nil, err
	}
	components = components[1:]

	// Account, then branch, by position among the children.
	for _, level := range components[:min(2, len(components))] {
		index, err := levelIndex(level)
		if err != nil {
			return nil, err
		}
		if index >= len(node.Edges) {
			return nil, fmt.Errorf("%w: %q", ErrPathRange, path)
		}
		node = node.Edges[index]
	}
	if len(components) <= 2 {
		return node, nil
	}
	if len(components) > 3 {
		return nil, fmt.Errorf("%w: %q", ErrPathTooLong, path)
	}

	// The address level is a linear chain below the branch node.
	index, err := strconv.Atoi(components[2])
	if err != nil || index < 0 {
		return nil, fmt.Errorf("%w: %q", ErrPathMalformed, components[2])
	}
	for i := 0; i <= index; i++ {
		if len(node.Edges) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrPathRange, path)
		}
		node = node.Edges[0]
	}
	return node, nil
}

// resolveCoin finds the child of the purpose node carrying the coin
// symbol's identifier.
func resolveCoin(purpose *arcula.Node, symbol string) (*arcula.Node, error) {
	coin, err := CoinFromSymbol(symbol)
	if err != nil {
		return nil, err
	}
	for _, v := range purpose.Edges {
		if v.ID == uint64(coin) {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %q not in hierarchy", ErrUnknownCoin, symbol)
}

// levelIndex parses an account or branch component: a non-negative
// integer, or the xpub/xprv aliases for the branch positions.
func levelIndex(component string) (int, error) {
	switch strings.ToUpper(component) {
	case "XPUB":
		return 0, nil
	case "XPRV", "XPRIV":
		return 1, nil
	}
	index, err := strconv.Atoi(component)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: %q", ErrPathMalformed, component)
	}
	return index, nil
}
