// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package signature

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestLoadSigningKey(t *testing.T) {
	privateKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	keyHex := hex.EncodeToString(crypto.FromECDSA(privateKey))

	for _, keyConfig := range []string{keyHex, "0x" + keyHex} {
		loaded, err := LoadSigningKey(keyConfig)
		require.NoError(t, err)
		require.Equal(t, crypto.PubkeyToAddress(privateKey.PublicKey), crypto.PubkeyToAddress(loaded.PublicKey))
	}

	keyFile := filepath.Join(t.TempDir(), "signing.key")
	require.NoError(t, os.WriteFile(keyFile, []byte(keyHex+"\n"), 0600))
	loaded, err := LoadSigningKey(keyFile)
	require.NoError(t, err)
	require.Equal(t, crypto.PubkeyToAddress(privateKey.PublicKey), crypto.PubkeyToAddress(loaded.PublicKey))
}

func TestLoadSigningKeyErrorsHideKey(t *testing.T) {
	_, err := LoadSigningKey("")
	require.Error(t, err)

	badKey := strings.Repeat("0", 64)
	_, err = LoadSigningKey(badKey)
	require.Error(t, err)
	require.NotContains(t, err.Error(), badKey)

	keyFile := filepath.Join(t.TempDir(), "signing.key")
	require.NoError(t, os.WriteFile(keyFile, []byte("not a key"), 0600))
	_, err = LoadSigningKey(keyFile)
	require.Error(t, err)
	require.NotContains(t, err.Error(), "not a key")
}

func TestLoadKeystoreKey(t *testing.T) {
	privateKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	key := &keystore.Key{
		Address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		PrivateKey: privateKey,
	}
	keyJSON, err := keystore.EncryptKey(key, "hunter2", keystore.LightScryptN, keystore.LightScryptP)
	require.NoError(t, err)
	keyFile := filepath.Join(t.TempDir(), "keystore.json")
	require.NoError(t, os.WriteFile(keyFile, keyJSON, 0600))

	loaded, err := LoadKeystoreKey(keyFile, "hunter2")
	require.NoError(t, err)
	require.Equal(t, key.Address, crypto.PubkeyToAddress(loaded.PublicKey))

	_, err = LoadKeystoreKey(keyFile, "wrong")
	require.Error(t, err)
}
