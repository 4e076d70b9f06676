// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// Package bridge holds the unified bridge structures referenced by a pessimistic
// certificate, together with their canonical keccak hashes.
package bridge

import (
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// NetworkID identifies a network attached to the unified bridge. Mainnet is 0.
type NetworkID uint32

const MainnetNetworkID NetworkID = 0

type LeafType uint8

const (
	LeafTypeTransfer LeafType = 0
	LeafTypeMessage  LeafType = 1
)

// LeafTypeFromTag returns false when the tag does not name a known leaf type.
func LeafTypeFromTag(tag uint32) (LeafType, bool) {
	switch tag {
	case uint32(LeafTypeTransfer):
		return LeafTypeTransfer, true
	case uint32(LeafTypeMessage):
		return LeafTypeMessage, true
	default:
		return 0, false
	}
}

func (t LeafType) String() string {
	switch t {
	case LeafTypeTransfer:
		return "Transfer"
	case LeafTypeMessage:
		return "Message"
	default:
		return fmt.Sprintf("LeafType(%d)", uint8(t))
	}
}

type TokenInfo struct {
	OriginNetwork      NetworkID
	OriginTokenAddress common.Address
}

type BridgeExit struct {
	LeafType    LeafType
	TokenInfo   TokenInfo
	DestNetwork NetworkID
	DestAddress common.Address
	Amount      uint256.Int
	// Metadata is nil when the exit carries none.
	Metadata *common.Hash
}

// Hash is the local exit tree leaf hash of the exit.
func (b *BridgeExit) Hash() common.Hash {
	var metadataHash common.Hash
	if b.Metadata != nil {
		metadataHash = crypto.Keccak256Hash(b.Metadata.Bytes())
	}
	amount := b.Amount.Bytes32()
	return crypto.Keccak256Hash(
		[]byte{uint8(b.LeafType)},
		binary.BigEndian.AppendUint32(nil, uint32(b.TokenInfo.OriginNetwork)),
		b.TokenInfo.OriginTokenAddress.Bytes(),
		binary.BigEndian.AppendUint32(nil, uint32(b.DestNetwork)),
		b.DestAddress.Bytes(),
		amount[:],
		metadataHash.Bytes(),
	)
}

type ImportedBridgeExit struct {
	BridgeExit  BridgeExit
	ClaimData   Claim
	GlobalIndex GlobalIndex
}

func (i *ImportedBridgeExit) Hash() common.Hash {
	globalIndex := i.GlobalIndex.U256().Bytes32()
	var claimHash common.Hash
	if i.ClaimData != nil {
		claimHash = i.ClaimData.Hash()
	}
	exitHash := i.BridgeExit.Hash()
	return crypto.Keccak256Hash(globalIndex[:], exitHash.Bytes(), claimHash.Bytes())
}
