// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package bridge

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Claim is the inclusion evidence of an imported bridge exit. It is either a
// *ClaimFromMainnet or a *ClaimFromRollup.
type Claim interface {
	Hash() common.Hash
	isClaim()
}

const (
	claimTagMainnet uint8 = 0
	claimTagRollup  uint8 = 1
)

// ClaimFromMainnet proves an exit from the mainnet exit tree.
type ClaimFromMainnet struct {
	ProofLeafMer   MerkleProof
	ProofGerL1Root MerkleProof
	L1Leaf         L1InfoTreeLeaf
}

func (*ClaimFromMainnet) isClaim() {}

func (c *ClaimFromMainnet) Hash() common.Hash {
	leafMer := c.ProofLeafMer.Hash()
	gerL1Root := c.ProofGerL1Root.Hash()
	l1Leaf := c.L1Leaf.Hash()
	return crypto.Keccak256Hash(
		[]byte{claimTagMainnet},
		leafMer.Bytes(),
		gerL1Root.Bytes(),
		l1Leaf.Bytes(),
	)
}

// ClaimFromRollup proves an exit from a rollup local exit tree, through the
// rollup exit tree, up to the L1 info tree.
type ClaimFromRollup struct {
	ProofLeafLer   MerkleProof
	ProofLerRer    MerkleProof
	ProofGerL1Root MerkleProof
	L1Leaf         L1InfoTreeLeaf
}

func (*ClaimFromRollup) isClaim() {}

func (c *ClaimFromRollup) Hash() common.Hash {
	leafLer := c.ProofLeafLer.Hash()
	lerRer := c.ProofLerRer.Hash()
	gerL1Root := c.ProofGerL1Root.Hash()
	l1Leaf := c.L1Leaf.Hash()
	return crypto.Keccak256Hash(
		[]byte{claimTagRollup},
		leafLer.Bytes(),
		lerRer.Bytes(),
		gerL1Root.Bytes(),
		l1Leaf.Bytes(),
	)
}
