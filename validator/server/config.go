// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package server

import (
	"errors"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/offchainlabs/certificate-validator/cmd/genericconf"
)

type RPCServerConfig struct {
	Enable         bool                                `koanf:"enable"`
	Addr           string                              `koanf:"addr"`
	Port           uint64                              `koanf:"port"`
	ServerTimeouts genericconf.HTTPServerTimeoutConfig `koanf:"server-timeouts"`
	BodyLimit      int                                 `koanf:"body-limit"`
}

var DefaultRPCServerConfig = RPCServerConfig{
	Enable:         true,
	Addr:           "localhost",
	Port:           9876,
	ServerTimeouts: genericconf.HTTPServerTimeoutConfigDefault,
	BodyLimit:      genericconf.HTTPServerBodyLimitDefault,
}

func RPCServerConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.Bool(prefix+".enable", DefaultRPCServerConfig.Enable, "enable the JSON-RPC server")
	f.String(prefix+".addr", DefaultRPCServerConfig.Addr, "JSON-RPC server listening interface")
	f.Uint64(prefix+".port", DefaultRPCServerConfig.Port, "JSON-RPC server listening port")
	genericconf.HTTPServerTimeoutConfigAddOptions(prefix+".server-timeouts", f)
	f.Int(prefix+".body-limit", DefaultRPCServerConfig.BodyLimit, "HTTP-RPC server maximum request body size in bytes; the default (0) uses geth's 5MB limit")
}

type GRPCServerConfig struct {
	Enable               bool          `koanf:"enable"`
	Addr                 string        `koanf:"addr"`
	Port                 uint64        `koanf:"port"`
	MaxConcurrentStreams uint32        `koanf:"max-concurrent-streams"`
	MaxRecvMsgSize       int           `koanf:"max-recv-msg-size"`
	KeepaliveMinTime     time.Duration `koanf:"keepalive-min-time"`
}

var DefaultGRPCServerConfig = GRPCServerConfig{
	Enable:               true,
	Addr:                 "0.0.0.0",
	Port:                 50051,
	MaxConcurrentStreams: 100,
	MaxRecvMsgSize:       16 * 1024 * 1024,
	KeepaliveMinTime:     10 * time.Second,
}

func GRPCServerConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.Bool(prefix+".enable", DefaultGRPCServerConfig.Enable, "enable the gRPC server")
	f.String(prefix+".addr", DefaultGRPCServerConfig.Addr, "gRPC server listening interface")
	f.Uint64(prefix+".port", DefaultGRPCServerConfig.Port, "gRPC server listening port")
	f.Uint32(prefix+".max-concurrent-streams", DefaultGRPCServerConfig.MaxConcurrentStreams, "maximum number of concurrent streams per gRPC connection")
	f.Int(prefix+".max-recv-msg-size", DefaultGRPCServerConfig.MaxRecvMsgSize, "maximum size in bytes of a gRPC request")
	f.Duration(prefix+".keepalive-min-time", DefaultGRPCServerConfig.KeepaliveMinTime, "minimum interval clients may send keepalive pings at")
}

func (c *GRPCServerConfig) Validate() error {
	if c.Enable && c.MaxRecvMsgSize <= 0 {
		return errors.New("grpc.max-recv-msg-size must be positive")
	}
	return nil
}
