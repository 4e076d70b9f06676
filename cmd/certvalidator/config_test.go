// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/offchainlabs/certificate-validator/validator/server"
)

const testKeyPath = "/run/secrets/validator.key"

func TestParseConfigDefaults(t *testing.T) {
	config, err := parseConfig([]string{"--signer.private-key", testKeyPath})
	require.NoError(t, err)
	require.Equal(t, testKeyPath, config.Signer.PrivateKey)
	require.Equal(t, server.DefaultRPCServerConfig, config.RPC)
	require.Equal(t, server.DefaultGRPCServerConfig, config.GRPC)
	require.Equal(t, "INFO", config.LogLevel)
	require.Equal(t, "plaintext", config.LogType)
	require.Equal(t, 1024, config.SignatureCacheSize)
	require.False(t, config.Metrics)
}

func TestParseConfigOverrides(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "certvalidator.json")
	contents := `{"grpc":{"port":6000,"keepalive-min-time":"30s"},"rpc":{"enable":false}}`
	require.NoError(t, os.WriteFile(configFile, []byte(contents), 0600))

	t.Setenv("CERTVALIDATOR_SIGNER_PRIVATE__KEY", testKeyPath)
	t.Setenv("CERTVALIDATOR_GRPC_MAX__CONCURRENT__STREAMS", "8")
	config, err := parseConfig([]string{
		"--conf.file", configFile,
		"--conf.env-prefix", "certvalidator",
		"--grpc.port", "7000",
	})
	require.NoError(t, err)
	require.Equal(t, testKeyPath, config.Signer.PrivateKey)
	require.False(t, config.RPC.Enable)
	require.Equal(t, uint64(7000), config.GRPC.Port)
	require.Equal(t, 30*time.Second, config.GRPC.KeepaliveMinTime)
	require.Equal(t, uint32(8), config.GRPC.MaxConcurrentStreams)
}

func TestParseConfigValidation(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"no signing key", nil},
		{"two key sources", []string{"--signer.private-key", testKeyPath, "--signer.pathname", "keystore.json"}},
		{"keystore without password", []string{"--signer.pathname", "keystore.json"}},
		{"no transport", []string{"--signer.private-key", testKeyPath, "--rpc.enable=false", "--grpc.enable=false"}},
		{"negative cache size", []string{"--signer.private-key", testKeyPath, "--signature-cache-size", "-1"}},
		{"empty grpc message limit", []string{"--signer.private-key", testKeyPath, "--grpc.max-recv-msg-size", "0"}},
		{"unknown option", []string{"--signer.private-key", testKeyPath, "--conf.string", `{"rpc":{"prot":1}}`}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig(tc.args)
			require.Error(t, err)
		})
	}
}

func TestParseConfigKeystore(t *testing.T) {
	config, err := parseConfig([]string{"--signer.pathname", "keystore.json", "--signer.password", "hunter2"})
	require.NoError(t, err)
	require.Equal(t, "keystore.json", config.Signer.Pathname)
	require.Equal(t, "hunter2", *config.Signer.Pwd())
}

func TestParseConfigDump(t *testing.T) {
	_, err := parseConfig([]string{"--signer.private-key", testKeyPath, "--conf.dump"})
	require.ErrorIs(t, err, errDumpedConfig)
}
