// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package certificate

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/offchainlabs/certificate-validator/bridge"
)

// MultisigCommitmentPrefix separates validator signatures from any other use of
// the signing key.
const MultisigCommitmentPrefix = "Light Certificate Validator Multisig:"

// SignatureCommitmentValues are the parts of a certificate covered by the
// multisig commitment. Aggchain data is not among them.
type SignatureCommitmentValues struct {
	NetworkID                 bridge.NetworkID
	Height                    Height
	PrevLocalExitRoot         common.Hash
	NewLocalExitRoot          common.Hash
	CommitBridgeExits         common.Hash
	CommitImportedBridgeExits common.Hash
	Metadata                  Metadata
	CustomChainDataHash       common.Hash
	L1InfoTreeLeafCount       uint32
}

func CommitBridgeExits(exits []bridge.BridgeExit) common.Hash {
	data := make([]byte, 0, common.HashLength*len(exits))
	for i := range exits {
		data = append(data, exits[i].Hash().Bytes()...)
	}
	return crypto.Keccak256Hash(data)
}

func CommitImportedBridgeExits(exits []bridge.ImportedBridgeExit) common.Hash {
	data := make([]byte, 0, common.HashLength*len(exits))
	for i := range exits {
		data = append(data, exits[i].Hash().Bytes()...)
	}
	return crypto.Keccak256Hash(data)
}

func (c *Certificate) SignatureCommitmentValues() SignatureCommitmentValues {
	return SignatureCommitmentValues{
		NetworkID:                 c.NetworkID,
		Height:                    c.Height,
		PrevLocalExitRoot:         c.PrevLocalExitRoot,
		NewLocalExitRoot:          c.NewLocalExitRoot,
		CommitBridgeExits:         CommitBridgeExits(c.BridgeExits),
		CommitImportedBridgeExits: CommitImportedBridgeExits(c.ImportedBridgeExits),
		Metadata:                  c.Metadata,
		CustomChainDataHash:       crypto.Keccak256Hash(c.CustomChainData),
		L1InfoTreeLeafCount:       c.L1InfoTreeLeafCount,
	}
}

func (v *SignatureCommitmentValues) MultisigCommitment() common.Hash {
	return crypto.Keccak256Hash(
		[]byte(MultisigCommitmentPrefix),
		binary.BigEndian.AppendUint32(nil, uint32(v.NetworkID)),
		binary.BigEndian.AppendUint64(nil, uint64(v.Height)),
		v.PrevLocalExitRoot.Bytes(),
		v.NewLocalExitRoot.Bytes(),
		v.CommitBridgeExits.Bytes(),
		v.CommitImportedBridgeExits.Bytes(),
		v.Metadata.Hash().Bytes(),
		v.CustomChainDataHash.Bytes(),
		binary.BigEndian.AppendUint32(nil, v.L1InfoTreeLeafCount),
	)
}

// MultisigCommitment is the 32-byte digest a validator signs for this certificate.
func MultisigCommitment(c *Certificate) common.Hash {
	values := c.SignatureCommitmentValues()
	return values.MultisigCommitment()
}
