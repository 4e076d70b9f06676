// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// Package convert turns wire certificates into validated domain certificates.
// Conversion is pure: it either yields a fully populated value or the first
// structural error found, prefixed with the path of the field it occurred in.
package convert

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/offchainlabs/certificate-validator/bridge"
	"github.com/offchainlabs/certificate-validator/certificate"
	"github.com/offchainlabs/certificate-validator/validator/server_api"
)

// required converts a mandatory nested message, reporting MissingFieldError
// when it is absent and prefixing nested failures with the field name.
func required[W any, D any](field string, value *W, conv func(*W) (D, error)) (D, error) {
	var zero D
	if value == nil {
		return zero, &MissingFieldError{Field: field}
	}
	converted, err := conv(value)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", field, err)
	}
	return converted, nil
}

// sequence converts every element in order and stops at the first failure.
func sequence[W any, D any](field string, values []*W, conv func(*W) (D, error)) ([]D, error) {
	converted := make([]D, 0, len(values))
	for i, value := range values {
		d, err := required(fmt.Sprintf("%s[%d]", field, i), value, conv)
		if err != nil {
			return nil, err
		}
		converted = append(converted, d)
	}
	return converted, nil
}

func Address(value *server_api.FixedBytes20) (common.Address, error) {
	if len(value.Value) != common.AddressLength {
		return common.Address{}, &InvalidLengthError{Type: "Address", Expected: common.AddressLength, Actual: len(value.Value)}
	}
	return common.BytesToAddress(value.Value), nil
}

func Hash(value *server_api.FixedBytes32) (common.Hash, error) {
	if len(value.Value) != common.HashLength {
		return common.Hash{}, &InvalidLengthError{Type: "Digest", Expected: common.HashLength, Actual: len(value.Value)}
	}
	return common.BytesToHash(value.Value), nil
}

// U256 reads a big-endian 256-bit integer.
func U256(value *server_api.FixedBytes32) (uint256.Int, error) {
	if len(value.Value) != common.HashLength {
		return uint256.Int{}, &InvalidLengthError{Type: "U256", Expected: common.HashLength, Actual: len(value.Value)}
	}
	var converted uint256.Int
	converted.SetBytes32(value.Value)
	return converted, nil
}

func Signature(value *server_api.FixedBytes65) ([crypto.SignatureLength]byte, error) {
	var sig [crypto.SignatureLength]byte
	if len(value.Value) != crypto.SignatureLength {
		return sig, &InvalidLengthError{Type: "Signature", Expected: crypto.SignatureLength, Actual: len(value.Value)}
	}
	copy(sig[:], value.Value)
	return sig, nil
}

func MerkleProof(value *server_api.MerkleProof) (bridge.MerkleProof, error) {
	var proof bridge.MerkleProof
	siblings, err := sequence("siblings", value.Siblings, Hash)
	if err != nil {
		return proof, err
	}
	if len(siblings) != bridge.MerkleProofDepth {
		return proof, &InvalidLengthError{Type: "MerkleProof", Expected: bridge.MerkleProofDepth, Actual: len(siblings)}
	}
	copy(proof.Siblings[:], siblings)
	proof.Root, err = required("root", value.Root, Hash)
	if err != nil {
		return proof, err
	}
	return proof, nil
}

func L1InfoTreeLeafInner(value *server_api.L1InfoTreeLeaf) (bridge.L1InfoTreeLeafInner, error) {
	globalExitRoot, err := required("global_exit_root", value.GlobalExitRoot, Hash)
	if err != nil {
		return bridge.L1InfoTreeLeafInner{}, err
	}
	blockHash, err := required("block_hash", value.BlockHash, Hash)
	if err != nil {
		return bridge.L1InfoTreeLeafInner{}, err
	}
	return bridge.L1InfoTreeLeafInner{
		GlobalExitRoot: globalExitRoot,
		BlockHash:      blockHash,
		Timestamp:      uint64(value.Timestamp),
	}, nil
}

func L1InfoTreeLeaf(value *server_api.L1InfoTreeLeafWithContext) (bridge.L1InfoTreeLeaf, error) {
	rer, err := required("rer", value.Rer, Hash)
	if err != nil {
		return bridge.L1InfoTreeLeaf{}, err
	}
	mer, err := required("mer", value.Mer, Hash)
	if err != nil {
		return bridge.L1InfoTreeLeaf{}, err
	}
	inner, err := required("inner", value.Inner, L1InfoTreeLeafInner)
	if err != nil {
		return bridge.L1InfoTreeLeaf{}, err
	}
	return bridge.L1InfoTreeLeaf{
		L1InfoTreeIndex: value.L1InfoTreeIndex,
		RollupExitRoot:  rer,
		MainnetExitRoot: mer,
		Inner:           inner,
	}, nil
}

func tokenInfo(value *server_api.TokenInfo) (bridge.TokenInfo, error) {
	originTokenAddress, err := required("origin_token_address", value.OriginTokenAddress, Address)
	if err != nil {
		return bridge.TokenInfo{}, err
	}
	return bridge.TokenInfo{
		OriginNetwork:      bridge.NetworkID(value.OriginNetwork),
		OriginTokenAddress: originTokenAddress,
	}, nil
}

func BridgeExit(value *server_api.BridgeExit) (bridge.BridgeExit, error) {
	token, err := required("token_info", value.TokenInfo, tokenInfo)
	if err != nil {
		return bridge.BridgeExit{}, err
	}
	leafType, ok := bridge.LeafTypeFromTag(value.LeafType)
	if !ok {
		return bridge.BridgeExit{}, fmt.Errorf("leaf_type: %w", &InvalidEnumValueError{Type: "LeafType", Tag: value.LeafType})
	}
	destAddress, err := required("dest_address", value.DestAddress, Address)
	if err != nil {
		return bridge.BridgeExit{}, err
	}
	amount, err := required("amount", value.Amount, U256)
	if err != nil {
		return bridge.BridgeExit{}, err
	}
	var metadata *common.Hash
	if value.Metadata != nil {
		hash, err := Hash(value.Metadata)
		if err != nil {
			return bridge.BridgeExit{}, fmt.Errorf("metadata: %w", err)
		}
		metadata = &hash
	}
	return bridge.BridgeExit{
		LeafType:    leafType,
		TokenInfo:   token,
		DestNetwork: bridge.NetworkID(value.DestNetwork),
		DestAddress: destAddress,
		Amount:      amount,
		Metadata:    metadata,
	}, nil
}

func claimFromMainnet(value *server_api.ClaimFromMainnet) (bridge.Claim, error) {
	proofLeafMer, err := required("proof_leaf_mer", value.ProofLeafMer, MerkleProof)
	if err != nil {
		return nil, err
	}
	proofGerL1Root, err := required("proof_ger_l1root", value.ProofGerL1Root, MerkleProof)
	if err != nil {
		return nil, err
	}
	l1Leaf, err := required("l1_leaf", value.L1Leaf, L1InfoTreeLeaf)
	if err != nil {
		return nil, err
	}
	return &bridge.ClaimFromMainnet{
		ProofLeafMer:   proofLeafMer,
		ProofGerL1Root: proofGerL1Root,
		L1Leaf:         l1Leaf,
	}, nil
}

func claimFromRollup(value *server_api.ClaimFromRollup) (bridge.Claim, error) {
	proofLeafLer, err := required("proof_leaf_ler", value.ProofLeafLer, MerkleProof)
	if err != nil {
		return nil, err
	}
	proofLerRer, err := required("proof_ler_rer", value.ProofLerRer, MerkleProof)
	if err != nil {
		return nil, err
	}
	proofGerL1Root, err := required("proof_ger_l1root", value.ProofGerL1Root, MerkleProof)
	if err != nil {
		return nil, err
	}
	l1Leaf, err := required("l1_leaf", value.L1Leaf, L1InfoTreeLeaf)
	if err != nil {
		return nil, err
	}
	return &bridge.ClaimFromRollup{
		ProofLeafLer:   proofLeafLer,
		ProofLerRer:    proofLerRer,
		ProofGerL1Root: proofGerL1Root,
		L1Leaf:         l1Leaf,
	}, nil
}

// Claim converts whichever claim variant is set. Exactly one must be.
func Claim(mainnet *server_api.ClaimFromMainnet, rollup *server_api.ClaimFromRollup) (bridge.Claim, error) {
	switch {
	case mainnet != nil && rollup != nil:
		return nil, fmt.Errorf("claim: %w: both mainnet and rollup claims are set", ErrInvalidSumVariant)
	case mainnet != nil:
		return required("claim", mainnet, claimFromMainnet)
	case rollup != nil:
		return required("claim", rollup, claimFromRollup)
	default:
		return nil, &MissingFieldError{Field: "claim"}
	}
}

func GlobalIndex(value *server_api.FixedBytes32) (bridge.GlobalIndex, error) {
	encoded, err := U256(value)
	if err != nil {
		return bridge.GlobalIndex{}, err
	}
	index, err := bridge.GlobalIndexFromU256(&encoded)
	if err != nil {
		return bridge.GlobalIndex{}, &InvalidIndexEncodingError{Type: "GlobalIndex", Cause: err}
	}
	return index, nil
}

func ImportedBridgeExit(value *server_api.ImportedBridgeExit) (bridge.ImportedBridgeExit, error) {
	globalIndex, err := required("global_index", value.GlobalIndex, GlobalIndex)
	if err != nil {
		return bridge.ImportedBridgeExit{}, err
	}
	exit, err := required("bridge_exit", value.BridgeExit, BridgeExit)
	if err != nil {
		return bridge.ImportedBridgeExit{}, err
	}
	claim, err := Claim(value.Mainnet, value.Rollup)
	if err != nil {
		return bridge.ImportedBridgeExit{}, err
	}
	return bridge.ImportedBridgeExit{
		BridgeExit:  exit,
		ClaimData:   claim,
		GlobalIndex: globalIndex,
	}, nil
}

// Certificate validates a wire certificate and returns its domain form. The
// aggchain data of the result is always an ECDSA placeholder with a zero
// signature.
func Certificate(value *server_api.Certificate) (*certificate.Certificate, error) {
	if value == nil {
		return nil, &MissingFieldError{Field: "certificate"}
	}
	prevLocalExitRoot, err := required("prev_local_exit_root", value.PrevLocalExitRoot, Hash)
	if err != nil {
		return nil, err
	}
	newLocalExitRoot, err := required("new_local_exit_root", value.NewLocalExitRoot, Hash)
	if err != nil {
		return nil, err
	}
	bridgeExits, err := sequence("bridge_exits", value.BridgeExits, BridgeExit)
	if err != nil {
		return nil, err
	}
	importedBridgeExits, err := sequence("imported_bridge_exits", value.ImportedBridgeExits, ImportedBridgeExit)
	if err != nil {
		return nil, err
	}
	var metadata certificate.Metadata
	if value.Metadata != nil {
		hash, err := Hash(value.Metadata)
		if err != nil {
			return nil, fmt.Errorf("metadata: %w", err)
		}
		metadata = certificate.Metadata(hash)
	}
	return &certificate.Certificate{
		NetworkID:           bridge.NetworkID(value.NetworkID),
		Height:              certificate.Height(value.Height),
		PrevLocalExitRoot:   prevLocalExitRoot,
		NewLocalExitRoot:    newLocalExitRoot,
		BridgeExits:         bridgeExits,
		ImportedBridgeExits: importedBridgeExits,
		Metadata:            metadata,
		CustomChainData:     append([]byte{}, value.CustomChainData...),
		L1InfoTreeLeafCount: value.L1InfoTreeLeafCount,
		AggchainData:        certificate.NewECDSAPlaceholder(),
	}, nil
}
