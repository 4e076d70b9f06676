// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/offchainlabs/certificate-validator/validator/server_api"
)

// RPCNamespace prefixes the JSON-RPC method names, e.g. validator_validateCertificate.
const RPCNamespace = "validator"

type ValidatorRPCServer struct {
	service *CertificateValidatorService
}

func (s *ValidatorRPCServer) ValidateCertificate(ctx context.Context, req *server_api.ValidateCertificateRequest) (*server_api.ValidateCertificateResponse, error) {
	return s.service.ValidateCertificate(ctx, req)
}

func (s *ValidatorRPCServer) HealthCheck(ctx context.Context) (*server_api.HealthCheckResponse, error) {
	return s.service.HealthCheck(ctx), nil
}

// NewRPCServer builds the HTTP server for the JSON-RPC transport without
// starting it.
func NewRPCServer(config *RPCServerConfig, service *CertificateValidatorService) (*http.Server, error) {
	if service == nil {
		return nil, errors.New("no certificate validator service configured for the RPC server")
	}
	rpcServer := rpc.NewServer()
	if config.BodyLimit > 0 {
		rpcServer.SetHTTPBodyLimit(config.BodyLimit)
	}
	err := rpcServer.RegisterName(RPCNamespace, &ValidatorRPCServer{
		service: service,
	})
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Handler:           rpcServer,
		ReadTimeout:       config.ServerTimeouts.ReadTimeout,
		ReadHeaderTimeout: config.ServerTimeouts.ReadHeaderTimeout,
		WriteTimeout:      config.ServerTimeouts.WriteTimeout,
		IdleTimeout:       config.ServerTimeouts.IdleTimeout,
	}, nil
}

func StartRPCServer(ctx context.Context, config *RPCServerConfig, service *CertificateValidatorService) (*http.Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", config.Addr, config.Port))
	if err != nil {
		return nil, err
	}
	return StartRPCServerOnListener(ctx, listener, config, service)
}

// StartRPCServerOnListener serves until ctx is done.
func StartRPCServerOnListener(ctx context.Context, listener net.Listener, config *RPCServerConfig, service *CertificateValidatorService) (*http.Server, error) {
	srv, err := NewRPCServer(config, service)
	if err != nil {
		return nil, err
	}
	go func() {
		err := srv.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("JSON-RPC server stopped", "err", err)
		}
	}()
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	log.Info("Started JSON-RPC server", "addr", listener.Addr(), "namespace", RPCNamespace)
	return srv, nil
}
