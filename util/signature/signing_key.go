// Copyright 2022-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package signature

import (
	"crypto/ecdsa"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
)

var keyIsHexRegex = regexp.MustCompile("^(0x)?[a-fA-F0-9]{64}$")

// LoadSigningKey parses keyConfig as a hex encoded secp256k1 private key, or
// reads it from the file keyConfig names. Errors never include key material.
func LoadSigningKey(keyConfig string) (*ecdsa.PrivateKey, error) {
	if keyConfig == "" {
		return nil, errors.New("no signing key configured")
	}
	var keyString string
	if keyIsHexRegex.MatchString(keyConfig) {
		keyString = keyConfig
	} else {
		contents, err := os.ReadFile(keyConfig)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read signing key file")
		}
		s := strings.TrimSpace(string(contents))
		if !keyIsHexRegex.MatchString(s) {
			return nil, errors.New("signing key file contents are not 32 bytes of hex")
		}
		keyString = s
	}
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(keyString, "0x"))
	if err != nil {
		return nil, errors.New("signing key is not a valid secp256k1 private key")
	}
	return privateKey, nil
}

// LoadKeystoreKey decrypts a go-ethereum keystore file.
func LoadKeystoreKey(pathname string, password string) (*ecdsa.PrivateKey, error) {
	keyJSON, err := os.ReadFile(pathname)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read keystore file")
	}
	key, err := keystore.DecryptKey(keyJSON, password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt keystore file")
	}
	return key.PrivateKey, nil
}
