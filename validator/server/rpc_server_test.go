// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package server

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/offchainlabs/certificate-validator/certificate"
	"github.com/offchainlabs/certificate-validator/util/testhelpers"
	"github.com/offchainlabs/certificate-validator/validator/convert"
	"github.com/offchainlabs/certificate-validator/validator/server_api"
)

func startTestRPCServer(t *testing.T, ctx context.Context, service *CertificateValidatorService) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	config := DefaultRPCServerConfig
	_, err = StartRPCServerOnListener(ctx, listener, &config, service)
	require.NoError(t, err)
	return "http://" + listener.Addr().String()
}

func TestRPCClientValidatesCertificate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service, signerAddress := newTestService(t)
	url := startTestRPCServer(t, ctx, service)

	client, err := NewClient(ctx, &ClientConfig{URL: url, Timeout: DefaultClientConfig.Timeout}, []common.Address{signerAddress})
	require.NoError(t, err)
	defer client.Close()

	cert := testhelpers.NewPseudoRandomDataSource(t, 1).GetCertificate(3, 2)
	sig, err := client.ValidateAndSignCertificate(ctx, cert)
	require.NoError(t, err)
	require.Len(t, sig, 65)

	health, err := client.HealthCheck(ctx)
	require.NoError(t, err)
	require.Equal(t, HealthCheckVersion, health.Version)
	require.Equal(t, HealthCheckStatus, health.Status)
	require.Equal(t, HealthCheckReason, health.Reason)
}

func TestRPCClientRejectsUnexpectedSigner(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service, _ := newTestService(t)
	url := startTestRPCServer(t, ctx, service)

	client, err := NewClient(ctx, &ClientConfig{URL: url}, []common.Address{testhelpers.RandomAddress()})
	require.NoError(t, err)
	defer client.Close()

	cert := testhelpers.NewPseudoRandomDataSource(t, 2).GetCertificate(1, 1)
	_, err = client.ValidateAndSignCertificate(ctx, cert)
	require.ErrorIs(t, err, ErrUnexpectedCertificateSigner)
}

func TestRPCErrorCodes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service, _ := newTestService(t)
	url := startTestRPCServer(t, ctx, service)

	failing := NewCertificateValidatorService(func([]byte) ([]byte, error) {
		return nil, errors.New("key unavailable")
	}, common.Address{})
	failingURL := startTestRPCServer(t, ctx, failing)

	clnt, err := rpc.DialContext(ctx, url)
	require.NoError(t, err)
	defer clnt.Close()

	var resp server_api.ValidateCertificateResponse
	err = clnt.CallContext(ctx, &resp, "validator_validateCertificate", &server_api.ValidateCertificateRequest{})
	requireRPCError(t, err, InvalidParamsErrorCode, "CertificateValidatorService: Unable to get certificate")

	cert := testhelpers.NewPseudoRandomDataSource(t, 3).GetCertificate(1, 1)
	req := &server_api.ValidateCertificateRequest{Certificate: wireWithoutAmount(cert)}
	err = clnt.CallContext(ctx, &resp, "validator_validateCertificate", req)
	requireRPCError(t, err, InvalidParamsErrorCode, "CertificateValidatorService: Unable to parse certificate: bridge_exits[0]: missing field amount")

	failingClnt, err := rpc.DialContext(ctx, failingURL)
	require.NoError(t, err)
	defer failingClnt.Close()
	req = &server_api.ValidateCertificateRequest{Certificate: convert.WireCertificate(cert)}
	err = failingClnt.CallContext(ctx, &resp, "validator_validateCertificate", req)
	requireRPCError(t, err, InternalErrorCode, "CertificateValidatorService: Unable to sign")
}

func requireRPCError(t *testing.T, err error, code int, message string) {
	t.Helper()
	require.Error(t, err)
	var rpcErr rpc.Error
	require.True(t, errors.As(err, &rpcErr), "unexpected error type %T", err)
	require.Equal(t, code, rpcErr.ErrorCode())
	require.Equal(t, message, rpcErr.Error())
}

func wireWithoutAmount(cert *certificate.Certificate) *server_api.Certificate {
	wire := convert.WireCertificate(cert)
	wire.BridgeExits[0].Amount = nil
	return wire
}
