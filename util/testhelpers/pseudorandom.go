// Copyright 2022-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package testhelpers

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/holiman/uint256"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/offchainlabs/certificate-validator/bridge"
	"github.com/offchainlabs/certificate-validator/certificate"
)

type PseudoRandomDataSource struct {
	salt  common.Hash
	index int64
}

// pseudorandom source that repeats on different executions
// T param is to make sure it's only used in testing
func NewPseudoRandomDataSource(_ *testing.T, saltParam int) *PseudoRandomDataSource {
	salt := crypto.Keccak256Hash([]byte{'s'}, common.BigToHash(big.NewInt(int64(saltParam))).Bytes())
	return &PseudoRandomDataSource{
		salt:  salt,
		index: 0,
	}
}

func (r *PseudoRandomDataSource) GetHash() common.Hash {
	r.index++
	return crypto.Keccak256Hash(r.salt[:], common.BigToHash(big.NewInt(r.index)).Bytes())
}

func (r *PseudoRandomDataSource) GetAddress() common.Address {
	return common.BytesToAddress(r.GetHash().Bytes()[:20])
}

func (r *PseudoRandomDataSource) GetUint64() uint64 {
	return binary.BigEndian.Uint64(r.GetHash().Bytes()[:8])
}

func (r *PseudoRandomDataSource) GetUint32() uint32 {
	return binary.BigEndian.Uint32(r.GetHash().Bytes()[:4])
}

func (r *PseudoRandomDataSource) GetData(size int) []byte {
	ret := []byte{}
	for len(ret) < size {
		ret = append(ret, r.GetHash().Bytes()...)
	}
	return ret[:size]
}

func (r *PseudoRandomDataSource) GetMerkleProof() bridge.MerkleProof {
	var proof bridge.MerkleProof
	for i := range proof.Siblings {
		proof.Siblings[i] = r.GetHash()
	}
	proof.Root = r.GetHash()
	return proof
}

func (r *PseudoRandomDataSource) GetL1InfoTreeLeaf() bridge.L1InfoTreeLeaf {
	return bridge.L1InfoTreeLeaf{
		L1InfoTreeIndex: r.GetUint32(),
		RollupExitRoot:  r.GetHash(),
		MainnetExitRoot: r.GetHash(),
		Inner: bridge.L1InfoTreeLeafInner{
			GlobalExitRoot: r.GetHash(),
			BlockHash:      r.GetHash(),
			Timestamp:      r.GetUint64(),
		},
	}
}

// GetBridgeExit returns a transfer without metadata, or a message with metadata.
func (r *PseudoRandomDataSource) GetBridgeExit(message bool) bridge.BridgeExit {
	exit := bridge.BridgeExit{
		LeafType: bridge.LeafTypeTransfer,
		TokenInfo: bridge.TokenInfo{
			OriginNetwork:      bridge.NetworkID(r.GetUint32()),
			OriginTokenAddress: r.GetAddress(),
		},
		DestNetwork: bridge.NetworkID(r.GetUint32()),
		DestAddress: r.GetAddress(),
		Amount:      *new(uint256.Int).SetBytes32(r.GetHash().Bytes()),
		Metadata:    nil,
	}
	if message {
		metadata := r.GetHash()
		exit.LeafType = bridge.LeafTypeMessage
		exit.Metadata = &metadata
	}
	return exit
}

func (r *PseudoRandomDataSource) GetImportedBridgeExit(mainnet bool) bridge.ImportedBridgeExit {
	leafIndex := r.GetUint32()
	if mainnet {
		return bridge.ImportedBridgeExit{
			BridgeExit: r.GetBridgeExit(true),
			ClaimData: &bridge.ClaimFromMainnet{
				ProofLeafMer:   r.GetMerkleProof(),
				ProofGerL1Root: r.GetMerkleProof(),
				L1Leaf:         r.GetL1InfoTreeLeaf(),
			},
			GlobalIndex: bridge.NewMainnetGlobalIndex(leafIndex),
		}
	}
	return bridge.ImportedBridgeExit{
		BridgeExit: r.GetBridgeExit(false),
		ClaimData: &bridge.ClaimFromRollup{
			ProofLeafLer:   r.GetMerkleProof(),
			ProofLerRer:    r.GetMerkleProof(),
			ProofGerL1Root: r.GetMerkleProof(),
			L1Leaf:         r.GetL1InfoTreeLeaf(),
		},
		GlobalIndex: bridge.NewRollupGlobalIndex(r.GetUint32()%1024, leafIndex),
	}
}

// GetCertificate returns a certificate whose bridge exits alternate between
// transfers and messages, and whose imported exits alternate between rollup and
// mainnet claims, both starting with the former.
func (r *PseudoRandomDataSource) GetCertificate(bridgeExits int, importedBridgeExits int) *certificate.Certificate {
	cert := &certificate.Certificate{
		NetworkID:           bridge.NetworkID(r.GetUint32()),
		Height:              certificate.Height(r.GetUint64()),
		PrevLocalExitRoot:   r.GetHash(),
		NewLocalExitRoot:    r.GetHash(),
		BridgeExits:         make([]bridge.BridgeExit, 0, bridgeExits),
		ImportedBridgeExits: make([]bridge.ImportedBridgeExit, 0, importedBridgeExits),
		Metadata:            certificate.Metadata(r.GetHash()),
		CustomChainData:     r.GetData(48),
		L1InfoTreeLeafCount: r.GetUint32(),
		AggchainData:        certificate.NewECDSAPlaceholder(),
	}
	for i := 0; i < bridgeExits; i++ {
		cert.BridgeExits = append(cert.BridgeExits, r.GetBridgeExit(i%2 == 1))
	}
	for i := 0; i < importedBridgeExits; i++ {
		cert.ImportedBridgeExits = append(cert.ImportedBridgeExits, r.GetImportedBridgeExit(i%2 == 1))
	}
	return cert
}
