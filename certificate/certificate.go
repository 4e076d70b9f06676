// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// Package certificate defines the pessimistic proof certificate a chain submits
// to the aggregation layer and the commitment validators sign over it.
package certificate

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/offchainlabs/certificate-validator/bridge"
)

// Height is the position of a certificate in its network's sequence.
type Height uint64

// Metadata is an opaque 32-byte value attached by the certificate author.
type Metadata common.Hash

func (m Metadata) Hash() common.Hash {
	return common.Hash(m)
}

// AggchainData is the chain-specific authorisation of a certificate. It is
// either an *AggchainDataECDSA or an *AggchainDataGeneric.
type AggchainData interface {
	isAggchainData()
}

type AggchainDataECDSA struct {
	Signature [crypto.SignatureLength]byte
}

func (*AggchainDataECDSA) isAggchainData() {}

type AggchainDataGeneric struct {
	Proof          []byte
	AggchainParams common.Hash
}

func (*AggchainDataGeneric) isAggchainData() {}

// NewECDSAPlaceholder returns ECDSA aggchain data with an all-zero signature.
// Light validation signs certificates that carry no aggchain data of their own.
func NewECDSAPlaceholder() *AggchainDataECDSA {
	return &AggchainDataECDSA{}
}

type Certificate struct {
	NetworkID           bridge.NetworkID
	Height              Height
	PrevLocalExitRoot   common.Hash
	NewLocalExitRoot    common.Hash
	BridgeExits         []bridge.BridgeExit
	ImportedBridgeExits []bridge.ImportedBridgeExit
	Metadata            Metadata
	CustomChainData     []byte
	L1InfoTreeLeafCount uint32
	AggchainData        AggchainData
}
