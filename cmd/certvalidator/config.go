// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package main

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/json"
	flag "github.com/spf13/pflag"

	"github.com/offchainlabs/certificate-validator/cmd/genericconf"
	"github.com/offchainlabs/certificate-validator/cmd/util/confighelpers"
	"github.com/offchainlabs/certificate-validator/validator/server"
)

type CertValidatorConfig struct {
	Conf genericconf.ConfConfig `koanf:"conf"`

	FileLogging genericconf.FileLoggingConfig `koanf:"file-logging"`
	LogLevel    string                        `koanf:"log-level"`
	LogType     string                        `koanf:"log-type"`

	Metrics       bool                            `koanf:"metrics"`
	MetricsServer genericconf.MetricsServerConfig `koanf:"metrics-server"`

	PProf    bool              `koanf:"pprof"`
	PprofCfg genericconf.PProf `koanf:"pprof-cfg"`

	Signer             genericconf.WalletConfig `koanf:"signer"`
	SignatureCacheSize int                      `koanf:"signature-cache-size"`

	RPC  server.RPCServerConfig  `koanf:"rpc"`
	GRPC server.GRPCServerConfig `koanf:"grpc"`
}

var DefaultCertValidatorConfig = CertValidatorConfig{
	Conf:               genericconf.ConfConfigDefault,
	FileLogging:        genericconf.DefaultFileLoggingConfig,
	LogLevel:           "INFO",
	LogType:            "plaintext",
	Metrics:            false,
	MetricsServer:      genericconf.MetricsServerConfigDefault,
	PProf:              false,
	PprofCfg:           genericconf.PProfDefault,
	Signer:             genericconf.WalletConfigDefault,
	SignatureCacheSize: 1024,
	RPC:                server.DefaultRPCServerConfig,
	GRPC:               server.DefaultGRPCServerConfig,
}

func addFlags(f *flag.FlagSet) {
	genericconf.ConfConfigAddOptions("conf", f)

	genericconf.FileLoggingConfigAddOptions("file-logging", f)
	f.String("log-level", DefaultCertValidatorConfig.LogLevel, "log level, valid values are CRIT, ERROR, WARN, INFO, DEBUG, TRACE")
	f.String("log-type", DefaultCertValidatorConfig.LogType, "log type (plaintext or json)")

	f.Bool("metrics", DefaultCertValidatorConfig.Metrics, "enable metrics")
	genericconf.MetricsServerAddOptions("metrics-server", f)

	f.Bool("pprof", DefaultCertValidatorConfig.PProf, "enable pprof")
	genericconf.PProfAddOptions("pprof-cfg", f)

	genericconf.WalletConfigAddOptions("signer", f, DefaultCertValidatorConfig.Signer.Pathname)
	f.Int("signature-cache-size", DefaultCertValidatorConfig.SignatureCacheSize, "number of commitment signatures to keep in memory (0 disables the cache)")

	server.RPCServerConfigAddOptions("rpc", f)
	server.GRPCServerConfigAddOptions("grpc", f)
}

func (c *CertValidatorConfig) Validate() error {
	if !c.RPC.Enable && !c.GRPC.Enable {
		return errors.New("at least one of rpc.enable and grpc.enable must be set")
	}
	if c.SignatureCacheSize < 0 {
		return fmt.Errorf("signature-cache-size must not be negative, got %d", c.SignatureCacheSize)
	}
	if err := c.Signer.Validate(); err != nil {
		return fmt.Errorf("signer: %w", err)
	}
	return c.GRPC.Validate()
}

func parseConfig(args []string) (*CertValidatorConfig, error) {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	addFlags(f)

	k, err := confighelpers.BeginCommonParse(f, args)
	if err != nil {
		return nil, err
	}

	var config CertValidatorConfig
	if err := confighelpers.EndCommonParse(k, &config); err != nil {
		return nil, err
	}

	if config.Conf.Dump {
		err = confighelpers.DumpConfig(k, map[string]interface{}{
			"signer.password":    "",
			"signer.private-key": "",
		})
		if err != nil {
			return nil, fmt.Errorf("error removing extra parameters before dump: %w", err)
		}

		c, err := k.Marshal(json.Parser())
		if err != nil {
			return nil, fmt.Errorf("unable to marshal config file to JSON: %w", err)
		}

		fmt.Println(string(c))
		return nil, errDumpedConfig
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

var errDumpedConfig = errors.New("configuration dumped")
