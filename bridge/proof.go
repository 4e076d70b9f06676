// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package bridge

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// MerkleProofDepth is the height of the local exit, rollup exit and L1 info trees.
const MerkleProofDepth = 32

type MerkleProof struct {
	Siblings [MerkleProofDepth]common.Hash
	Root     common.Hash
}

func (p *MerkleProof) Hash() common.Hash {
	data := make([]byte, 0, common.HashLength*(MerkleProofDepth+1))
	data = append(data, p.Root.Bytes()...)
	for _, sibling := range p.Siblings {
		data = append(data, sibling.Bytes()...)
	}
	return crypto.Keccak256Hash(data)
}

type L1InfoTreeLeafInner struct {
	GlobalExitRoot common.Hash
	BlockHash      common.Hash
	Timestamp      uint64
}

func (l *L1InfoTreeLeafInner) Hash() common.Hash {
	return crypto.Keccak256Hash(
		l.GlobalExitRoot.Bytes(),
		l.BlockHash.Bytes(),
		binary.BigEndian.AppendUint64(nil, l.Timestamp),
	)
}

// L1InfoTreeLeaf is an L1 info tree leaf together with the roots it was built from.
type L1InfoTreeLeaf struct {
	L1InfoTreeIndex uint32
	RollupExitRoot  common.Hash
	MainnetExitRoot common.Hash
	Inner           L1InfoTreeLeafInner
}

func (l *L1InfoTreeLeaf) Hash() common.Hash {
	innerHash := l.Inner.Hash()
	return crypto.Keccak256Hash(
		binary.BigEndian.AppendUint32(nil, l.L1InfoTreeIndex),
		l.RollupExitRoot.Bytes(),
		l.MainnetExitRoot.Bytes(),
		innerHash.Bytes(),
	)
}
