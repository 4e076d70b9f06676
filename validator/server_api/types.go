// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// Package server_api holds the wire messages of the certificate validator. Every
// nested message is optional on the wire; requiredness is enforced when the
// message is converted to its domain form.
package server_api

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type FixedBytes20 struct {
	Value hexutil.Bytes `json:"value"`
}

type FixedBytes32 struct {
	Value hexutil.Bytes `json:"value"`
}

type FixedBytes65 struct {
	Value hexutil.Bytes `json:"value"`
}

type MerkleProof struct {
	Root     *FixedBytes32   `json:"root,omitempty"`
	Siblings []*FixedBytes32 `json:"siblings"`
}

type L1InfoTreeLeaf struct {
	GlobalExitRoot *FixedBytes32  `json:"global_exit_root,omitempty"`
	BlockHash      *FixedBytes32  `json:"block_hash,omitempty"`
	Timestamp      hexutil.Uint64 `json:"timestamp"`
}

type L1InfoTreeLeafWithContext struct {
	L1InfoTreeIndex uint32          `json:"l1_info_tree_index"`
	Rer             *FixedBytes32   `json:"rer,omitempty"`
	Mer             *FixedBytes32   `json:"mer,omitempty"`
	Inner           *L1InfoTreeLeaf `json:"inner,omitempty"`
}

type TokenInfo struct {
	OriginNetwork      uint32        `json:"origin_network"`
	OriginTokenAddress *FixedBytes20 `json:"origin_token_address,omitempty"`
}

type BridgeExit struct {
	LeafType    uint32        `json:"leaf_type"`
	TokenInfo   *TokenInfo    `json:"token_info,omitempty"`
	DestNetwork uint32        `json:"dest_network"`
	DestAddress *FixedBytes20 `json:"dest_address,omitempty"`
	Amount      *FixedBytes32 `json:"amount,omitempty"`
	Metadata    *FixedBytes32 `json:"metadata,omitempty"`
}

type ClaimFromMainnet struct {
	ProofLeafMer   *MerkleProof               `json:"proof_leaf_mer,omitempty"`
	ProofGerL1Root *MerkleProof               `json:"proof_ger_l1root,omitempty"`
	L1Leaf         *L1InfoTreeLeafWithContext `json:"l1_leaf,omitempty"`
}

type ClaimFromRollup struct {
	ProofLeafLer   *MerkleProof               `json:"proof_leaf_ler,omitempty"`
	ProofLerRer    *MerkleProof               `json:"proof_ler_rer,omitempty"`
	ProofGerL1Root *MerkleProof               `json:"proof_ger_l1root,omitempty"`
	L1Leaf         *L1InfoTreeLeafWithContext `json:"l1_leaf,omitempty"`
}

// ImportedBridgeExit carries its claim in exactly one of Mainnet or Rollup.
type ImportedBridgeExit struct {
	BridgeExit  *BridgeExit       `json:"bridge_exit,omitempty"`
	GlobalIndex *FixedBytes32     `json:"global_index,omitempty"`
	Mainnet     *ClaimFromMainnet `json:"mainnet,omitempty"`
	Rollup      *ClaimFromRollup  `json:"rollup,omitempty"`
}

type Certificate struct {
	NetworkID           uint32                `json:"network_id"`
	Height              hexutil.Uint64        `json:"height"`
	PrevLocalExitRoot   *FixedBytes32         `json:"prev_local_exit_root,omitempty"`
	NewLocalExitRoot    *FixedBytes32         `json:"new_local_exit_root,omitempty"`
	BridgeExits         []*BridgeExit         `json:"bridge_exits"`
	ImportedBridgeExits []*ImportedBridgeExit `json:"imported_bridge_exits"`
	Metadata            *FixedBytes32         `json:"metadata,omitempty"`
	CustomChainData     hexutil.Bytes         `json:"custom_chain_data"`
	L1InfoTreeLeafCount uint32                `json:"l1_info_tree_leaf_count"`
}

type ValidateCertificateRequest struct {
	Certificate *Certificate `json:"certificate,omitempty"`
}

type ValidateCertificateResponse struct {
	Signature *FixedBytes65 `json:"signature,omitempty"`
}

type HealthCheckRequest struct{}

type HealthCheckResponse struct {
	Version string `json:"version"`
	Status  string `json:"status"`
	Reason  string `json:"reason"`
}
