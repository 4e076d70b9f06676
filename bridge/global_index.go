// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package bridge

import (
	"errors"
	"fmt"
	"math"

	"github.com/holiman/uint256"
)

var ErrInvalidGlobalIndex = errors.New("invalid global index")

// GlobalIndex locates a leaf within the unified bridge: either a leaf of the
// mainnet exit tree or a leaf of some rollup's local exit tree.
//
// Encoded as a 256-bit integer, bits 0-31 hold the leaf index, bits 32-63 the
// rollup index and bit 64 the mainnet flag. All higher bits are zero.
type GlobalIndex struct {
	MainnetFlag bool
	RollupIndex uint32
	LeafIndex   uint32
}

func NewMainnetGlobalIndex(leafIndex uint32) GlobalIndex {
	return GlobalIndex{MainnetFlag: true, LeafIndex: leafIndex}
}

func NewRollupGlobalIndex(rollupIndex, leafIndex uint32) GlobalIndex {
	return GlobalIndex{RollupIndex: rollupIndex, LeafIndex: leafIndex}
}

// GlobalIndexFromU256 decodes the 256-bit encoding, rejecting indexes with any
// reserved bit set or with a rollup index alongside the mainnet flag.
func GlobalIndexFromU256(value *uint256.Int) (GlobalIndex, error) {
	if value[2] != 0 || value[3] != 0 || value[1]>>1 != 0 {
		return GlobalIndex{}, fmt.Errorf("%w: reserved bits set in %s", ErrInvalidGlobalIndex, value.Hex())
	}
	index := GlobalIndex{
		MainnetFlag: value[1]&1 == 1,
		RollupIndex: uint32(value[0] >> 32),
		LeafIndex:   uint32(value[0]),
	}
	if index.MainnetFlag && index.RollupIndex != 0 {
		return GlobalIndex{}, fmt.Errorf("%w: mainnet index %s carries rollup index %d", ErrInvalidGlobalIndex, value.Hex(), index.RollupIndex)
	}
	if !index.MainnetFlag && index.RollupIndex == math.MaxUint32 {
		return GlobalIndex{}, fmt.Errorf("%w: rollup index %d has no network", ErrInvalidGlobalIndex, index.RollupIndex)
	}
	return index, nil
}

// U256 re-encodes the index. GlobalIndexFromU256(x).U256() equals x for every
// accepted x.
func (g GlobalIndex) U256() *uint256.Int {
	value := new(uint256.Int)
	value[0] = uint64(g.RollupIndex)<<32 | uint64(g.LeafIndex)
	if g.MainnetFlag {
		value[1] = 1
	}
	return value
}

// NetworkID is the network whose exit tree holds the leaf.
func (g GlobalIndex) NetworkID() NetworkID {
	if g.MainnetFlag {
		return MainnetNetworkID
	}
	return NetworkID(g.RollupIndex + 1)
}

func (g GlobalIndex) String() string {
	if g.MainnetFlag {
		return fmt.Sprintf("mainnet/%d", g.LeafIndex)
	}
	return fmt.Sprintf("rollup %d/%d", g.RollupIndex, g.LeafIndex)
}
