// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/offchainlabs/certificate-validator/util/signature"
	"github.com/offchainlabs/certificate-validator/validator/server"
)

func TestServeReportsNotServingWhileDraining(t *testing.T) {
	privateKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	service := server.NewCertificateValidatorService(signature.DataSignerFromPrivateKey(privateKey), crypto.PubkeyToAddress(privateKey.PublicKey))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	config := DefaultCertValidatorConfig
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	served := make(chan error, 1)
	go func() {
		served <- serve(ctx, nil, listener, &config, service)
	}()

	conn, err := grpc.NewClient(listener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	// An open watch stream keeps the server draining until it is closed.
	watchCtx, closeWatch := context.WithCancel(context.Background())
	defer closeWatch()
	watch, err := grpc_health_v1.NewHealthClient(conn).Watch(watchCtx, &grpc_health_v1.HealthCheckRequest{Service: server.ValidatorServiceName})
	require.NoError(t, err)
	update, err := watch.Recv()
	require.NoError(t, err)
	require.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, update.Status)

	stop()
	update, err = watch.Recv()
	require.NoError(t, err)
	require.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, update.Status)

	closeWatch()
	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("serve did not return after the watch stream closed")
	}
}
