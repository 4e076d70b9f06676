// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package convert

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/offchainlabs/certificate-validator/bridge"
	"github.com/offchainlabs/certificate-validator/certificate"
	"github.com/offchainlabs/certificate-validator/validator/server_api"
)

// The functions below build wire messages from domain values. Converting their
// output back yields the original value.

func WireAddress(address common.Address) *server_api.FixedBytes20 {
	return &server_api.FixedBytes20{Value: hexutil.Bytes(address.Bytes())}
}

func WireHash(hash common.Hash) *server_api.FixedBytes32 {
	return &server_api.FixedBytes32{Value: hexutil.Bytes(hash.Bytes())}
}

func WireSignature(sig []byte) *server_api.FixedBytes65 {
	return &server_api.FixedBytes65{Value: hexutil.Bytes(common.CopyBytes(sig))}
}

func WireMerkleProof(proof *bridge.MerkleProof) *server_api.MerkleProof {
	siblings := make([]*server_api.FixedBytes32, 0, len(proof.Siblings))
	for _, sibling := range proof.Siblings {
		siblings = append(siblings, WireHash(sibling))
	}
	return &server_api.MerkleProof{
		Root:     WireHash(proof.Root),
		Siblings: siblings,
	}
}

func WireL1InfoTreeLeaf(leaf *bridge.L1InfoTreeLeaf) *server_api.L1InfoTreeLeafWithContext {
	return &server_api.L1InfoTreeLeafWithContext{
		L1InfoTreeIndex: leaf.L1InfoTreeIndex,
		Rer:             WireHash(leaf.RollupExitRoot),
		Mer:             WireHash(leaf.MainnetExitRoot),
		Inner: &server_api.L1InfoTreeLeaf{
			GlobalExitRoot: WireHash(leaf.Inner.GlobalExitRoot),
			BlockHash:      WireHash(leaf.Inner.BlockHash),
			Timestamp:      hexutil.Uint64(leaf.Inner.Timestamp),
		},
	}
}

func WireBridgeExit(exit *bridge.BridgeExit) *server_api.BridgeExit {
	amount := exit.Amount.Bytes32()
	wire := &server_api.BridgeExit{
		LeafType: uint32(exit.LeafType),
		TokenInfo: &server_api.TokenInfo{
			OriginNetwork:      uint32(exit.TokenInfo.OriginNetwork),
			OriginTokenAddress: WireAddress(exit.TokenInfo.OriginTokenAddress),
		},
		DestNetwork: uint32(exit.DestNetwork),
		DestAddress: WireAddress(exit.DestAddress),
		Amount:      &server_api.FixedBytes32{Value: amount[:]},
	}
	if exit.Metadata != nil {
		wire.Metadata = WireHash(*exit.Metadata)
	}
	return wire
}

func WireImportedBridgeExit(exit *bridge.ImportedBridgeExit) *server_api.ImportedBridgeExit {
	globalIndex := exit.GlobalIndex.U256().Bytes32()
	wire := &server_api.ImportedBridgeExit{
		BridgeExit:  WireBridgeExit(&exit.BridgeExit),
		GlobalIndex: &server_api.FixedBytes32{Value: globalIndex[:]},
	}
	switch claim := exit.ClaimData.(type) {
	case *bridge.ClaimFromMainnet:
		wire.Mainnet = &server_api.ClaimFromMainnet{
			ProofLeafMer:   WireMerkleProof(&claim.ProofLeafMer),
			ProofGerL1Root: WireMerkleProof(&claim.ProofGerL1Root),
			L1Leaf:         WireL1InfoTreeLeaf(&claim.L1Leaf),
		}
	case *bridge.ClaimFromRollup:
		wire.Rollup = &server_api.ClaimFromRollup{
			ProofLeafLer:   WireMerkleProof(&claim.ProofLeafLer),
			ProofLerRer:    WireMerkleProof(&claim.ProofLerRer),
			ProofGerL1Root: WireMerkleProof(&claim.ProofGerL1Root),
			L1Leaf:         WireL1InfoTreeLeaf(&claim.L1Leaf),
		}
	}
	return wire
}

// WireCertificate drops the aggchain data, which has no wire representation.
func WireCertificate(cert *certificate.Certificate) *server_api.Certificate {
	bridgeExits := make([]*server_api.BridgeExit, 0, len(cert.BridgeExits))
	for i := range cert.BridgeExits {
		bridgeExits = append(bridgeExits, WireBridgeExit(&cert.BridgeExits[i]))
	}
	importedBridgeExits := make([]*server_api.ImportedBridgeExit, 0, len(cert.ImportedBridgeExits))
	for i := range cert.ImportedBridgeExits {
		importedBridgeExits = append(importedBridgeExits, WireImportedBridgeExit(&cert.ImportedBridgeExits[i]))
	}
	return &server_api.Certificate{
		NetworkID:           uint32(cert.NetworkID),
		Height:              hexutil.Uint64(cert.Height),
		PrevLocalExitRoot:   WireHash(cert.PrevLocalExitRoot),
		NewLocalExitRoot:    WireHash(cert.NewLocalExitRoot),
		BridgeExits:         bridgeExits,
		ImportedBridgeExits: importedBridgeExits,
		Metadata:            WireHash(cert.Metadata.Hash()),
		CustomChainData:     common.CopyBytes(cert.CustomChainData),
		L1InfoTreeLeafCount: cert.L1InfoTreeLeafCount,
	}
}
