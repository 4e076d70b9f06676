// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package util

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/metrics"
	"github.com/ethereum/go-ethereum/metrics/exp"

	"github.com/offchainlabs/certificate-validator/cmd/genericconf"
	"github.com/offchainlabs/certificate-validator/util/signature"
)

// StartMetrics checks the metrics and pprof flags and starts the servers
// that are enabled. They may be enabled independently but can't share an
// address and port.
func StartMetrics(metricsEnabled bool, pprofEnabled bool, metricsServerConfig *genericconf.MetricsServerConfig, pprofConfig *genericconf.PProf) error {
	mAddr := fmt.Sprintf("%v:%v", metricsServerConfig.Addr, metricsServerConfig.Port)
	pAddr := fmt.Sprintf("%v:%v", pprofConfig.Addr, pprofConfig.Port)
	if metricsEnabled && !metrics.Enabled {
		return errors.New("metrics must be enabled via command line by adding --metrics, json config has no effect")
	}
	if metricsEnabled && pprofEnabled && mAddr == pAddr {
		return fmt.Errorf("metrics and pprof cannot be enabled on the same address:port: %s", mAddr)
	}
	if metricsEnabled {
		go metrics.CollectProcessMetrics(metricsServerConfig.UpdateInterval)
		exp.Setup(mAddr)
	}
	if pprofEnabled {
		genericconf.StartPprof(pAddr)
	}
	return nil
}

// OpenSigningKey loads the key the wallet config points at.
func OpenSigningKey(wallet *genericconf.WalletConfig) (*ecdsa.PrivateKey, error) {
	if err := wallet.Validate(); err != nil {
		return nil, err
	}
	if wallet.PrivateKey != "" {
		return signature.LoadSigningKey(wallet.PrivateKey)
	}
	return signature.LoadKeystoreKey(wallet.Pathname, *wallet.Pwd())
}
