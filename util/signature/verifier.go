// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package signature

import (
	"github.com/pkg/errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrMissingSignature       = errors.New("missing required signature")
	ErrInvalidSignatureLength = errors.New("invalid signature length")
)

// Verifier checks that signatures were produced by one of a fixed set of signers.
type Verifier struct {
	authorizedMap map[common.Address]struct{}
}

func NewVerifier(authorizedAddresses []common.Address) *Verifier {
	authorizedMap := make(map[common.Address]struct{}, len(authorizedAddresses))
	for _, addr := range authorizedAddresses {
		authorizedMap[addr] = struct{}{}
	}
	return &Verifier{
		authorizedMap: authorizedMap,
	}
}

func (v *Verifier) VerifyHash(signature []byte, hash common.Hash) (bool, error) {
	return v.verifyClosure(signature, func() common.Hash { return hash })
}

func (v *Verifier) VerifyData(signature []byte, data ...[]byte) (bool, error) {
	return v.verifyClosure(signature, func() common.Hash { return crypto.Keccak256Hash(data...) })
}

func (v *Verifier) verifyClosure(signature []byte, getHash func() common.Hash) (bool, error) {
	addr, err := RecoverSigner(getHash(), signature)
	if err != nil {
		return false, err
	}
	_, exists := v.authorizedMap[addr]
	return exists, nil
}

// RecoverSigner returns the address that signed hash. V may be given either as
// 0/1 or as 27/28.
func RecoverSigner(hash common.Hash, signature []byte) (common.Address, error) {
	if len(signature) == 0 {
		return common.Address{}, ErrMissingSignature
	}
	if len(signature) != crypto.SignatureLength {
		return common.Address{}, errors.Wrapf(ErrInvalidSignatureLength, "got %d bytes", len(signature))
	}
	sig := common.CopyBytes(signature)
	if sig[crypto.RecoveryIDOffset] >= recoveryIDOffset {
		sig[crypto.RecoveryIDOffset] -= recoveryIDOffset
	}
	sigPublicKey, err := crypto.SigToPub(hash.Bytes(), sig)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "unable to recover signing key")
	}
	return crypto.PubkeyToAddress(*sigPublicKey), nil
}
