// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package signature

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
)

// DataSignerFunc signs a 32-byte digest and returns a 65-byte R || S || V signature.
type DataSignerFunc func([]byte) ([]byte, error)

// recoveryIDOffset shifts V to the 27/28 form used by Ethereum signatures.
const recoveryIDOffset = 27

// DataSignerFromPrivateKey signs with V in {27, 28}.
func DataSignerFromPrivateKey(privateKey *ecdsa.PrivateKey) DataSignerFunc {
	return func(data []byte) ([]byte, error) {
		sig, err := crypto.Sign(data, privateKey)
		if err != nil {
			return nil, err
		}
		sig[crypto.RecoveryIDOffset] += recoveryIDOffset
		return sig, nil
	}
}
