// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package server_api

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ProtoMessage is implemented by the messages that travel over the protobuf
// gRPC codec. Field numbers follow agglayer/interop/types/v1,
// agglayer/node/types/v1 and aggkit/aggsender/validator/v1.
type ProtoMessage interface {
	MarshalProto() []byte
	UnmarshalProto([]byte) error
}

var (
	_ ProtoMessage = (*ValidateCertificateRequest)(nil)
	_ ProtoMessage = (*ValidateCertificateResponse)(nil)
	_ ProtoMessage = (*HealthCheckRequest)(nil)
	_ ProtoMessage = (*HealthCheckResponse)(nil)
	_ ProtoMessage = (*Certificate)(nil)
)

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

// appendMessage always emits the field, so a present but empty message
// survives the round trip.
func appendMessage(b []byte, num protowire.Number, encoded []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, encoded)
}

// fieldFunc decodes one field whose tag has already been consumed and returns
// the number of bytes it read.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func consumeFields(b []byte, field fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n, err := field(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		b = b[n:]
	}
	return nil
}

func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}

func consumeVarint(typ protowire.Type, b []byte) (uint64, int, error) {
	if typ != protowire.VarintType {
		return 0, 0, fmt.Errorf("wire type %d, want varint", typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeBytes(typ protowire.Type, b []byte) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, fmt.Errorf("wire type %d, want bytes", typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return append([]byte(nil), v...), n, nil
}

func consumeString(typ protowire.Type, b []byte) (string, int, error) {
	v, n, err := consumeBytes(typ, b)
	return string(v), n, err
}

// consumeMessage merges the embedded message into m, the way repeated
// occurrences of a singular message field merge in protobuf.
func consumeMessage(typ protowire.Type, b []byte, m ProtoMessage) (int, error) {
	v, n, err := consumeBytes(typ, b)
	if err != nil {
		return 0, err
	}
	return n, m.UnmarshalProto(v)
}

func (x *FixedBytes20) MarshalProto() []byte {
	return appendBytes(nil, 1, x.Value)
}

func (x *FixedBytes20) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return skipField(num, typ, b)
		}
		v, n, err := consumeBytes(typ, b)
		x.Value = v
		return n, err
	})
}

func (x *FixedBytes32) MarshalProto() []byte {
	return appendBytes(nil, 1, x.Value)
}

func (x *FixedBytes32) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return skipField(num, typ, b)
		}
		v, n, err := consumeBytes(typ, b)
		x.Value = v
		return n, err
	})
}

func (x *FixedBytes65) MarshalProto() []byte {
	return appendBytes(nil, 1, x.Value)
}

func (x *FixedBytes65) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return skipField(num, typ, b)
		}
		v, n, err := consumeBytes(typ, b)
		x.Value = v
		return n, err
	})
}

func (x *MerkleProof) MarshalProto() []byte {
	var b []byte
	if x.Root != nil {
		b = appendMessage(b, 1, x.Root.MarshalProto())
	}
	for _, sibling := range x.Siblings {
		if sibling == nil {
			sibling = &FixedBytes32{}
		}
		b = appendMessage(b, 2, sibling.MarshalProto())
	}
	return b
}

func (x *MerkleProof) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if x.Root == nil {
				x.Root = new(FixedBytes32)
			}
			return consumeMessage(typ, b, x.Root)
		case 2:
			sibling := new(FixedBytes32)
			x.Siblings = append(x.Siblings, sibling)
			return consumeMessage(typ, b, sibling)
		}
		return skipField(num, typ, b)
	})
}

func (x *L1InfoTreeLeaf) MarshalProto() []byte {
	var b []byte
	if x.GlobalExitRoot != nil {
		b = appendMessage(b, 1, x.GlobalExitRoot.MarshalProto())
	}
	if x.BlockHash != nil {
		b = appendMessage(b, 2, x.BlockHash.MarshalProto())
	}
	return appendVarint(b, 3, uint64(x.Timestamp))
}

func (x *L1InfoTreeLeaf) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if x.GlobalExitRoot == nil {
				x.GlobalExitRoot = new(FixedBytes32)
			}
			return consumeMessage(typ, b, x.GlobalExitRoot)
		case 2:
			if x.BlockHash == nil {
				x.BlockHash = new(FixedBytes32)
			}
			return consumeMessage(typ, b, x.BlockHash)
		case 3:
			v, n, err := consumeVarint(typ, b)
			x.Timestamp = hexutil.Uint64(v)
			return n, err
		}
		return skipField(num, typ, b)
	})
}

func (x *L1InfoTreeLeafWithContext) MarshalProto() []byte {
	b := appendVarint(nil, 1, uint64(x.L1InfoTreeIndex))
	if x.Rer != nil {
		b = appendMessage(b, 2, x.Rer.MarshalProto())
	}
	if x.Mer != nil {
		b = appendMessage(b, 3, x.Mer.MarshalProto())
	}
	if x.Inner != nil {
		b = appendMessage(b, 4, x.Inner.MarshalProto())
	}
	return b
}

func (x *L1InfoTreeLeafWithContext) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint(typ, b)
			x.L1InfoTreeIndex = uint32(v)
			return n, err
		case 2:
			if x.Rer == nil {
				x.Rer = new(FixedBytes32)
			}
			return consumeMessage(typ, b, x.Rer)
		case 3:
			if x.Mer == nil {
				x.Mer = new(FixedBytes32)
			}
			return consumeMessage(typ, b, x.Mer)
		case 4:
			if x.Inner == nil {
				x.Inner = new(L1InfoTreeLeaf)
			}
			return consumeMessage(typ, b, x.Inner)
		}
		return skipField(num, typ, b)
	})
}

func (x *TokenInfo) MarshalProto() []byte {
	b := appendVarint(nil, 1, uint64(x.OriginNetwork))
	if x.OriginTokenAddress != nil {
		b = appendMessage(b, 2, x.OriginTokenAddress.MarshalProto())
	}
	return b
}

func (x *TokenInfo) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint(typ, b)
			x.OriginNetwork = uint32(v)
			return n, err
		case 2:
			if x.OriginTokenAddress == nil {
				x.OriginTokenAddress = new(FixedBytes20)
			}
			return consumeMessage(typ, b, x.OriginTokenAddress)
		}
		return skipField(num, typ, b)
	})
}

func (x *BridgeExit) MarshalProto() []byte {
	b := appendVarint(nil, 1, uint64(x.LeafType))
	if x.TokenInfo != nil {
		b = appendMessage(b, 2, x.TokenInfo.MarshalProto())
	}
	b = appendVarint(b, 3, uint64(x.DestNetwork))
	if x.DestAddress != nil {
		b = appendMessage(b, 4, x.DestAddress.MarshalProto())
	}
	if x.Amount != nil {
		b = appendMessage(b, 5, x.Amount.MarshalProto())
	}
	if x.Metadata != nil {
		b = appendMessage(b, 6, x.Metadata.MarshalProto())
	}
	return b
}

func (x *BridgeExit) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint(typ, b)
			x.LeafType = uint32(v)
			return n, err
		case 2:
			if x.TokenInfo == nil {
				x.TokenInfo = new(TokenInfo)
			}
			return consumeMessage(typ, b, x.TokenInfo)
		case 3:
			v, n, err := consumeVarint(typ, b)
			x.DestNetwork = uint32(v)
			return n, err
		case 4:
			if x.DestAddress == nil {
				x.DestAddress = new(FixedBytes20)
			}
			return consumeMessage(typ, b, x.DestAddress)
		case 5:
			if x.Amount == nil {
				x.Amount = new(FixedBytes32)
			}
			return consumeMessage(typ, b, x.Amount)
		case 6:
			if x.Metadata == nil {
				x.Metadata = new(FixedBytes32)
			}
			return consumeMessage(typ, b, x.Metadata)
		}
		return skipField(num, typ, b)
	})
}

func (x *ClaimFromMainnet) MarshalProto() []byte {
	var b []byte
	if x.ProofLeafMer != nil {
		b = appendMessage(b, 1, x.ProofLeafMer.MarshalProto())
	}
	if x.ProofGerL1Root != nil {
		b = appendMessage(b, 2, x.ProofGerL1Root.MarshalProto())
	}
	if x.L1Leaf != nil {
		b = appendMessage(b, 3, x.L1Leaf.MarshalProto())
	}
	return b
}

func (x *ClaimFromMainnet) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if x.ProofLeafMer == nil {
				x.ProofLeafMer = new(MerkleProof)
			}
			return consumeMessage(typ, b, x.ProofLeafMer)
		case 2:
			if x.ProofGerL1Root == nil {
				x.ProofGerL1Root = new(MerkleProof)
			}
			return consumeMessage(typ, b, x.ProofGerL1Root)
		case 3:
			if x.L1Leaf == nil {
				x.L1Leaf = new(L1InfoTreeLeafWithContext)
			}
			return consumeMessage(typ, b, x.L1Leaf)
		}
		return skipField(num, typ, b)
	})
}

func (x *ClaimFromRollup) MarshalProto() []byte {
	var b []byte
	if x.ProofLeafLer != nil {
		b = appendMessage(b, 1, x.ProofLeafLer.MarshalProto())
	}
	if x.ProofLerRer != nil {
		b = appendMessage(b, 2, x.ProofLerRer.MarshalProto())
	}
	if x.ProofGerL1Root != nil {
		b = appendMessage(b, 3, x.ProofGerL1Root.MarshalProto())
	}
	if x.L1Leaf != nil {
		b = appendMessage(b, 4, x.L1Leaf.MarshalProto())
	}
	return b
}

func (x *ClaimFromRollup) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if x.ProofLeafLer == nil {
				x.ProofLeafLer = new(MerkleProof)
			}
			return consumeMessage(typ, b, x.ProofLeafLer)
		case 2:
			if x.ProofLerRer == nil {
				x.ProofLerRer = new(MerkleProof)
			}
			return consumeMessage(typ, b, x.ProofLerRer)
		case 3:
			if x.ProofGerL1Root == nil {
				x.ProofGerL1Root = new(MerkleProof)
			}
			return consumeMessage(typ, b, x.ProofGerL1Root)
		case 4:
			if x.L1Leaf == nil {
				x.L1Leaf = new(L1InfoTreeLeafWithContext)
			}
			return consumeMessage(typ, b, x.L1Leaf)
		}
		return skipField(num, typ, b)
	})
}

func (x *ImportedBridgeExit) MarshalProto() []byte {
	var b []byte
	if x.BridgeExit != nil {
		b = appendMessage(b, 1, x.BridgeExit.MarshalProto())
	}
	if x.GlobalIndex != nil {
		b = appendMessage(b, 2, x.GlobalIndex.MarshalProto())
	}
	if x.Mainnet != nil {
		b = appendMessage(b, 3, x.Mainnet.MarshalProto())
	}
	if x.Rollup != nil {
		b = appendMessage(b, 4, x.Rollup.MarshalProto())
	}
	return b
}

// UnmarshalProto keeps both claim variants when both appear on the wire, so
// conversion rejects the ambiguous claim instead of silently taking the last.
func (x *ImportedBridgeExit) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if x.BridgeExit == nil {
				x.BridgeExit = new(BridgeExit)
			}
			return consumeMessage(typ, b, x.BridgeExit)
		case 2:
			if x.GlobalIndex == nil {
				x.GlobalIndex = new(FixedBytes32)
			}
			return consumeMessage(typ, b, x.GlobalIndex)
		case 3:
			if x.Mainnet == nil {
				x.Mainnet = new(ClaimFromMainnet)
			}
			return consumeMessage(typ, b, x.Mainnet)
		case 4:
			if x.Rollup == nil {
				x.Rollup = new(ClaimFromRollup)
			}
			return consumeMessage(typ, b, x.Rollup)
		}
		return skipField(num, typ, b)
	})
}

func (x *Certificate) MarshalProto() []byte {
	b := appendVarint(nil, 1, uint64(x.NetworkID))
	b = appendVarint(b, 2, uint64(x.Height))
	if x.PrevLocalExitRoot != nil {
		b = appendMessage(b, 3, x.PrevLocalExitRoot.MarshalProto())
	}
	if x.NewLocalExitRoot != nil {
		b = appendMessage(b, 4, x.NewLocalExitRoot.MarshalProto())
	}
	for _, exit := range x.BridgeExits {
		if exit == nil {
			exit = &BridgeExit{}
		}
		b = appendMessage(b, 5, exit.MarshalProto())
	}
	for _, exit := range x.ImportedBridgeExits {
		if exit == nil {
			exit = &ImportedBridgeExit{}
		}
		b = appendMessage(b, 6, exit.MarshalProto())
	}
	if x.Metadata != nil {
		b = appendMessage(b, 7, x.Metadata.MarshalProto())
	}
	b = appendBytes(b, 9, x.CustomChainData)
	return appendVarint(b, 10, uint64(x.L1InfoTreeLeafCount))
}

// UnmarshalProto skips field 8 (aggchain_data); the validator signs over a
// placeholder.
func (x *Certificate) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint(typ, b)
			x.NetworkID = uint32(v)
			return n, err
		case 2:
			v, n, err := consumeVarint(typ, b)
			x.Height = hexutil.Uint64(v)
			return n, err
		case 3:
			if x.PrevLocalExitRoot == nil {
				x.PrevLocalExitRoot = new(FixedBytes32)
			}
			return consumeMessage(typ, b, x.PrevLocalExitRoot)
		case 4:
			if x.NewLocalExitRoot == nil {
				x.NewLocalExitRoot = new(FixedBytes32)
			}
			return consumeMessage(typ, b, x.NewLocalExitRoot)
		case 5:
			exit := new(BridgeExit)
			x.BridgeExits = append(x.BridgeExits, exit)
			return consumeMessage(typ, b, exit)
		case 6:
			exit := new(ImportedBridgeExit)
			x.ImportedBridgeExits = append(x.ImportedBridgeExits, exit)
			return consumeMessage(typ, b, exit)
		case 7:
			if x.Metadata == nil {
				x.Metadata = new(FixedBytes32)
			}
			return consumeMessage(typ, b, x.Metadata)
		case 9:
			v, n, err := consumeBytes(typ, b)
			x.CustomChainData = v
			return n, err
		case 10:
			v, n, err := consumeVarint(typ, b)
			x.L1InfoTreeLeafCount = uint32(v)
			return n, err
		}
		return skipField(num, typ, b)
	})
}

func (x *ValidateCertificateRequest) MarshalProto() []byte {
	if x.Certificate == nil {
		return nil
	}
	return appendMessage(nil, 1, x.Certificate.MarshalProto())
}

func (x *ValidateCertificateRequest) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return skipField(num, typ, b)
		}
		if x.Certificate == nil {
			x.Certificate = new(Certificate)
		}
		return consumeMessage(typ, b, x.Certificate)
	})
}

func (x *ValidateCertificateResponse) MarshalProto() []byte {
	if x.Signature == nil {
		return nil
	}
	return appendMessage(nil, 1, x.Signature.MarshalProto())
}

func (x *ValidateCertificateResponse) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return skipField(num, typ, b)
		}
		if x.Signature == nil {
			x.Signature = new(FixedBytes65)
		}
		return consumeMessage(typ, b, x.Signature)
	})
}

// HealthCheckRequest is google.protobuf.Empty on the wire.
func (x *HealthCheckRequest) MarshalProto() []byte {
	return nil
}

func (x *HealthCheckRequest) UnmarshalProto(b []byte) error {
	return consumeFields(b, skipField)
}

func (x *HealthCheckResponse) MarshalProto() []byte {
	b := appendString(nil, 1, x.Version)
	b = appendString(b, 2, x.Status)
	return appendString(b, 3, x.Reason)
}

func (x *HealthCheckResponse) UnmarshalProto(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		var (
			v   string
			n   int
			err error
		)
		switch num {
		case 1:
			v, n, err = consumeString(typ, b)
			x.Version = v
		case 2:
			v, n, err = consumeString(typ, b)
			x.Status = v
		case 3:
			v, n, err = consumeString(typ, b)
			x.Reason = v
		default:
			return skipField(num, typ, b)
		}
		return n, err
	})
}
