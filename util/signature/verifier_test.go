// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package signature

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/offchainlabs/certificate-validator/util/testhelpers"
)

func TestVerifier(t *testing.T) {
	privateKey, err := crypto.GenerateKey()
	Require(t, err)
	signingAddr := crypto.PubkeyToAddress(privateKey.PublicKey)
	dataSigner := DataSignerFromPrivateKey(privateKey)

	authorizedAddresses := make([]common.Address, 0)
	authorizedAddresses = append(authorizedAddresses, signingAddr)
	verifier := NewVerifier(authorizedAddresses)

	data := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	hash := crypto.Keccak256Hash(data)

	signature, err := dataSigner(hash.Bytes())
	Require(t, err, "error signing data")

	verified, err := verifier.VerifyData(signature, data)
	Require(t, err, "error verifying data")
	if !verified {
		t.Error("signature not verified")
	}

	verified, err = verifier.VerifyHash(signature, hash)
	Require(t, err, "error verifying data")
	if !verified {
		t.Error("signature not verified")
	}

	badData := []byte{1, 1, 2, 3, 4, 5, 6, 7}
	verified, err = verifier.VerifyData(signature, badData)
	Require(t, err, "error verifying data")
	if verified {
		t.Error("signature unexpectedly verified")
	}
}

func TestVerifierUnauthorizedSigner(t *testing.T) {
	privateKey, err := crypto.GenerateKey()
	Require(t, err)
	verifier := NewVerifier([]common.Address{testhelpers.RandomAddress()})

	hash := testhelpers.RandomHash()
	signature, err := DataSignerFromPrivateKey(privateKey)(hash.Bytes())
	Require(t, err)
	verified, err := verifier.VerifyHash(signature, hash)
	Require(t, err)
	if verified {
		t.Error("signature from unauthorized signer verified")
	}
}

func TestSignatureRecoveryID(t *testing.T) {
	privateKey, err := crypto.GenerateKey()
	Require(t, err)
	signingAddr := crypto.PubkeyToAddress(privateKey.PublicKey)
	hash := testhelpers.RandomHash()

	signature, err := DataSignerFromPrivateKey(privateKey)(hash.Bytes())
	Require(t, err)
	if len(signature) != crypto.SignatureLength {
		Fail(t, "unexpected signature length", len(signature))
	}
	v := signature[crypto.RecoveryIDOffset]
	if v != 27 && v != 28 {
		Fail(t, "unexpected recovery id", v)
	}

	recovered, err := RecoverSigner(hash, signature)
	Require(t, err)
	if recovered != signingAddr {
		Fail(t, "recovered", recovered, "expected", signingAddr)
	}

	raw := common.CopyBytes(signature)
	raw[crypto.RecoveryIDOffset] -= 27
	recovered, err = RecoverSigner(hash, raw)
	Require(t, err)
	if recovered != signingAddr {
		Fail(t, "recovered", recovered, "expected", signingAddr)
	}
	if signature[crypto.RecoveryIDOffset] != v {
		Fail(t, "RecoverSigner modified its input")
	}
}

func TestMissingSignature(t *testing.T) {
	verifier := NewVerifier(nil)
	_, err := verifier.VerifyData(nil, nil)
	if !errors.Is(err, ErrMissingSignature) {
		t.Error("didn't fail when missing signature")
	}
	_, err = verifier.VerifyData(make([]byte, 64), nil)
	if !errors.Is(err, ErrInvalidSignatureLength) {
		t.Error("didn't fail on short signature")
	}
}

func Require(t *testing.T, err error, printables ...interface{}) {
	t.Helper()
	testhelpers.RequireImpl(t, err, printables...)
}

func Fail(t *testing.T, printables ...interface{}) {
	t.Helper()
	testhelpers.FailImpl(t, printables...)
}
