// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package convert

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common"

	"github.com/offchainlabs/certificate-validator/bridge"
	"github.com/offchainlabs/certificate-validator/certificate"
	"github.com/offchainlabs/certificate-validator/util/testhelpers"
	"github.com/offchainlabs/certificate-validator/validator/server_api"
)

func randomWireCertificate(t *testing.T, salt int) (*certificate.Certificate, *server_api.Certificate) {
	t.Helper()
	cert := testhelpers.NewPseudoRandomDataSource(t, salt).GetCertificate(3, 4)
	return cert, WireCertificate(cert)
}

func requireMissingField(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMissingField), "unexpected error %v", err)
	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, field, missing.Field)
}

func TestConvertFullCertificate(t *testing.T) {
	expected, wire := randomWireCertificate(t, 1)
	converted, err := Certificate(wire)
	require.NoError(t, err)
	if diff := cmp.Diff(expected, converted); diff != "" {
		t.Fatalf("converted certificate mismatch (-want +got):\n%s", diff)
	}

	var ecdsa *certificate.AggchainDataECDSA
	require.IsType(t, ecdsa, converted.AggchainData)
	require.Equal(t, [65]byte{}, converted.AggchainData.(*certificate.AggchainDataECDSA).Signature)
	require.Equal(t, certificate.MultisigCommitment(expected), certificate.MultisigCommitment(converted))
}

func TestConvertIsDeterministic(t *testing.T) {
	_, wire := randomWireCertificate(t, 2)
	first, err := Certificate(wire)
	require.NoError(t, err)
	second, err := Certificate(wire)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(first, second))
}

func TestConvertEmptyCertificate(t *testing.T) {
	wire := &server_api.Certificate{
		NetworkID:         7,
		Height:            3,
		PrevLocalExitRoot: WireHash(common.Hash{1}),
		NewLocalExitRoot:  WireHash(common.Hash{2}),
	}
	converted, err := Certificate(wire)
	require.NoError(t, err)
	require.Equal(t, bridge.NetworkID(7), converted.NetworkID)
	require.Equal(t, certificate.Height(3), converted.Height)
	require.Empty(t, converted.BridgeExits)
	require.Empty(t, converted.ImportedBridgeExits)
	require.Empty(t, converted.CustomChainData)
	require.Equal(t, certificate.Metadata{}, converted.Metadata)
}

func TestConvertMissingCertificate(t *testing.T) {
	_, err := Certificate(nil)
	requireMissingField(t, err, "certificate")
}

func TestConvertMissingPrevLocalExitRoot(t *testing.T) {
	_, wire := randomWireCertificate(t, 3)
	wire.PrevLocalExitRoot = nil
	_, err := Certificate(wire)
	requireMissingField(t, err, "prev_local_exit_root")
}

func TestConvertMissingNestedFields(t *testing.T) {
	cases := map[string]struct {
		mutate func(*server_api.Certificate)
		field  string
	}{
		"new local exit root": {func(c *server_api.Certificate) { c.NewLocalExitRoot = nil }, "new_local_exit_root"},
		"token info":          {func(c *server_api.Certificate) { c.BridgeExits[0].TokenInfo = nil }, "token_info"},
		"origin token":        {func(c *server_api.Certificate) { c.BridgeExits[1].TokenInfo.OriginTokenAddress = nil }, "origin_token_address"},
		"dest address":        {func(c *server_api.Certificate) { c.BridgeExits[2].DestAddress = nil }, "dest_address"},
		"amount":              {func(c *server_api.Certificate) { c.BridgeExits[0].Amount = nil }, "amount"},
		"null bridge exit":    {func(c *server_api.Certificate) { c.BridgeExits[1] = nil }, "bridge_exits[1]"},
		"global index":        {func(c *server_api.Certificate) { c.ImportedBridgeExits[0].GlobalIndex = nil }, "global_index"},
		"imported exit":       {func(c *server_api.Certificate) { c.ImportedBridgeExits[0].BridgeExit = nil }, "bridge_exit"},
		"merkle root":         {func(c *server_api.Certificate) { c.ImportedBridgeExits[0].Rollup.ProofLerRer.Root = nil }, "root"},
		"l1 leaf inner":       {func(c *server_api.Certificate) { c.ImportedBridgeExits[1].Mainnet.L1Leaf.Inner = nil }, "inner"},
		"block hash":          {func(c *server_api.Certificate) { c.ImportedBridgeExits[1].Mainnet.L1Leaf.Inner.BlockHash = nil }, "block_hash"},
		"rer":                 {func(c *server_api.Certificate) { c.ImportedBridgeExits[2].Rollup.L1Leaf.Rer = nil }, "rer"},
		"proof leaf mer":      {func(c *server_api.Certificate) { c.ImportedBridgeExits[3].Mainnet.ProofLeafMer = nil }, "proof_leaf_mer"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, wire := randomWireCertificate(t, 4)
			tc.mutate(wire)
			_, err := Certificate(wire)
			requireMissingField(t, err, tc.field)
		})
	}
}

func TestConvertErrorNamesPosition(t *testing.T) {
	_, wire := randomWireCertificate(t, 5)
	wire.BridgeExits[2].DestAddress = nil
	_, err := Certificate(wire)
	require.EqualError(t, err, "bridge_exits[2]: missing field dest_address")

	_, wire = randomWireCertificate(t, 5)
	wire.ImportedBridgeExits[2].Rollup.ProofLeafLer.Siblings[4] = nil
	_, err = Certificate(wire)
	require.EqualError(t, err, "imported_bridge_exits[2]: claim: proof_leaf_ler: missing field siblings[4]")
}

func TestConvertShortAmount(t *testing.T) {
	_, wire := randomWireCertificate(t, 6)
	wire.BridgeExits[0].Amount.Value = wire.BridgeExits[0].Amount.Value[:31]
	_, err := Certificate(wire)
	require.True(t, errors.Is(err, ErrInvalidLength))
	var invalid *InvalidLengthError
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, InvalidLengthError{Type: "U256", Expected: 32, Actual: 31}, *invalid)
}

func TestConvertInvalidLengths(t *testing.T) {
	cases := map[string]struct {
		mutate   func(*server_api.Certificate)
		expected InvalidLengthError
	}{
		"short address": {
			func(c *server_api.Certificate) { c.BridgeExits[0].DestAddress.Value = make([]byte, 19) },
			InvalidLengthError{Type: "Address", Expected: 20, Actual: 19},
		},
		"long digest": {
			func(c *server_api.Certificate) { c.NewLocalExitRoot.Value = make([]byte, 33) },
			InvalidLengthError{Type: "Digest", Expected: 32, Actual: 33},
		},
		"empty metadata": {
			func(c *server_api.Certificate) { c.Metadata.Value = nil },
			InvalidLengthError{Type: "Digest", Expected: 32, Actual: 0},
		},
		"short proof": {
			func(c *server_api.Certificate) {
				proof := c.ImportedBridgeExits[1].Mainnet.ProofGerL1Root
				proof.Siblings = proof.Siblings[:31]
			},
			InvalidLengthError{Type: "MerkleProof", Expected: 32, Actual: 31},
		},
		"long proof": {
			func(c *server_api.Certificate) {
				proof := c.ImportedBridgeExits[0].Rollup.ProofLeafLer
				proof.Siblings = append(proof.Siblings, WireHash(common.Hash{}))
			},
			InvalidLengthError{Type: "MerkleProof", Expected: 32, Actual: 33},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, wire := randomWireCertificate(t, 7)
			tc.mutate(wire)
			_, err := Certificate(wire)
			var invalid *InvalidLengthError
			require.True(t, errors.As(err, &invalid), "unexpected error %v", err)
			require.Equal(t, tc.expected, *invalid)
		})
	}
}

func TestConvertInvalidLeafType(t *testing.T) {
	for _, tag := range []uint32{2, 255, 256} {
		_, wire := randomWireCertificate(t, 8)
		wire.BridgeExits[1].LeafType = tag
		_, err := Certificate(wire)
		require.True(t, errors.Is(err, ErrInvalidEnumValue))
		var invalid *InvalidEnumValueError
		require.True(t, errors.As(err, &invalid))
		require.Equal(t, tag, invalid.Tag)
		require.Equal(t, "LeafType", invalid.Type)
	}
}

func TestConvertClaimVariants(t *testing.T) {
	_, wire := randomWireCertificate(t, 9)
	imported := wire.ImportedBridgeExits[0]
	require.NotNil(t, imported.Rollup)
	imported.Rollup = nil
	_, err := Certificate(wire)
	requireMissingField(t, err, "claim")

	_, wire = randomWireCertificate(t, 9)
	wire.ImportedBridgeExits[0].Mainnet = wire.ImportedBridgeExits[1].Mainnet
	_, err = Certificate(wire)
	require.True(t, errors.Is(err, ErrInvalidSumVariant))
}

func TestConvertInvalidGlobalIndex(t *testing.T) {
	_, wire := randomWireCertificate(t, 10)
	reserved := new(uint256.Int).Lsh(uint256.NewInt(1), 200).Bytes32()
	wire.ImportedBridgeExits[0].GlobalIndex.Value = reserved[:]
	_, err := Certificate(wire)
	require.True(t, errors.Is(err, ErrInvalidIndexEncoding))
	require.True(t, errors.Is(err, bridge.ErrInvalidGlobalIndex))
}

func TestConvertOptionalMetadata(t *testing.T) {
	_, wire := randomWireCertificate(t, 11)
	wire.Metadata = nil
	for _, exit := range wire.BridgeExits {
		exit.Metadata = nil
	}
	converted, err := Certificate(wire)
	require.NoError(t, err)
	require.Equal(t, certificate.Metadata{}, converted.Metadata)
	for _, exit := range converted.BridgeExits {
		require.Nil(t, exit.Metadata)
	}

	zero := common.Hash{}
	wire.BridgeExits[0].Metadata = WireHash(zero)
	converted, err = Certificate(wire)
	require.NoError(t, err)
	require.NotNil(t, converted.BridgeExits[0].Metadata)
	require.Equal(t, zero, *converted.BridgeExits[0].Metadata)
}

func TestConvertCopiesCustomChainData(t *testing.T) {
	_, wire := randomWireCertificate(t, 12)
	converted, err := Certificate(wire)
	require.NoError(t, err)
	expected := common.CopyBytes(converted.CustomChainData)
	wire.CustomChainData[0] ^= 0xff
	require.Equal(t, expected, converted.CustomChainData)
}
