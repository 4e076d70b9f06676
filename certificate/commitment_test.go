// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package certificate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common"

	"github.com/offchainlabs/certificate-validator/certificate"
	"github.com/offchainlabs/certificate-validator/util/testhelpers"
)

func TestMultisigCommitmentIsDeterministic(t *testing.T) {
	cert := testhelpers.NewPseudoRandomDataSource(t, 1).GetCertificate(3, 2)
	again := testhelpers.NewPseudoRandomDataSource(t, 1).GetCertificate(3, 2)
	require.Equal(t, certificate.MultisigCommitment(cert), certificate.MultisigCommitment(again))
	require.NotEqual(t, common.Hash{}, certificate.MultisigCommitment(cert))
}

func TestMultisigCommitmentIsOrderSensitive(t *testing.T) {
	cert := testhelpers.NewPseudoRandomDataSource(t, 2).GetCertificate(2, 2)
	commitment := certificate.MultisigCommitment(cert)

	cert.BridgeExits[0], cert.BridgeExits[1] = cert.BridgeExits[1], cert.BridgeExits[0]
	require.NotEqual(t, commitment, certificate.MultisigCommitment(cert))
	cert.BridgeExits[0], cert.BridgeExits[1] = cert.BridgeExits[1], cert.BridgeExits[0]
	require.Equal(t, commitment, certificate.MultisigCommitment(cert))

	cert.ImportedBridgeExits[0], cert.ImportedBridgeExits[1] = cert.ImportedBridgeExits[1], cert.ImportedBridgeExits[0]
	require.NotEqual(t, commitment, certificate.MultisigCommitment(cert))
}

func TestMultisigCommitmentCoversCertificateFields(t *testing.T) {
	mutations := map[string]func(*certificate.Certificate){
		"network id":     func(c *certificate.Certificate) { c.NetworkID++ },
		"height":         func(c *certificate.Certificate) { c.Height++ },
		"prev ler":       func(c *certificate.Certificate) { c.PrevLocalExitRoot[0] ^= 1 },
		"new ler":        func(c *certificate.Certificate) { c.NewLocalExitRoot[0] ^= 1 },
		"metadata":       func(c *certificate.Certificate) { c.Metadata[31] ^= 1 },
		"custom data":    func(c *certificate.Certificate) { c.CustomChainData = append(c.CustomChainData, 0) },
		"leaf count":     func(c *certificate.Certificate) { c.L1InfoTreeLeafCount++ },
		"dropped exit":   func(c *certificate.Certificate) { c.BridgeExits = c.BridgeExits[1:] },
		"dropped import": func(c *certificate.Certificate) { c.ImportedBridgeExits = c.ImportedBridgeExits[1:] },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			base := testhelpers.NewPseudoRandomDataSource(t, 3).GetCertificate(2, 2)
			mutated := testhelpers.NewPseudoRandomDataSource(t, 3).GetCertificate(2, 2)
			mutate(mutated)
			require.NotEqual(t, certificate.MultisigCommitment(base), certificate.MultisigCommitment(mutated))
		})
	}
}

func TestMultisigCommitmentIgnoresAggchainData(t *testing.T) {
	cert := testhelpers.NewPseudoRandomDataSource(t, 4).GetCertificate(1, 1)
	commitment := certificate.MultisigCommitment(cert)
	cert.AggchainData = &certificate.AggchainDataGeneric{Proof: []byte{1, 2, 3}, AggchainParams: common.Hash{1}}
	require.Equal(t, commitment, certificate.MultisigCommitment(cert))
}

func TestEmptyCertificateCommitment(t *testing.T) {
	empty := &certificate.Certificate{AggchainData: certificate.NewECDSAPlaceholder()}
	values := empty.SignatureCommitmentValues()
	require.Equal(t, certificate.CommitBridgeExits(nil), values.CommitBridgeExits)
	require.Equal(t, certificate.CommitImportedBridgeExits(nil), values.CommitImportedBridgeExits)
	require.Equal(t, values.MultisigCommitment(), certificate.MultisigCommitment(empty))
}
