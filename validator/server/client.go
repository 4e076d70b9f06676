// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/offchainlabs/certificate-validator/certificate"
	"github.com/offchainlabs/certificate-validator/util/signature"
	"github.com/offchainlabs/certificate-validator/validator/convert"
	"github.com/offchainlabs/certificate-validator/validator/server_api"
)

var (
	rpcClientValidateRequestCounter = metrics.NewRegisteredCounter("certvalidator/rpcclient/validate/requests", nil)
	rpcClientValidateSuccessCounter = metrics.NewRegisteredCounter("certvalidator/rpcclient/validate/success", nil)
	rpcClientValidateFailureCounter = metrics.NewRegisteredCounter("certvalidator/rpcclient/validate/failure", nil)
	rpcClientValidateDurationTimer  = metrics.NewRegisteredTimer("certvalidator/rpcclient/validate/duration", nil)
)

var (
	ErrUnexpectedCertificateSigner = errors.New("certificate signed by unexpected signer")
	ErrMissingResponseSignature    = errors.New("validator response carries no signature")
)

type ClientConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

var DefaultClientConfig = ClientConfig{
	URL:     "",
	Timeout: 10 * time.Second,
}

func ClientConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.String(prefix+".url", DefaultClientConfig.URL, "certificate validator JSON-RPC url")
	f.Duration(prefix+".timeout", DefaultClientConfig.Timeout, "timeout of a single validation request")
}

// Client asks a remote validator to sign certificates and checks that the
// returned signature covers the locally computed commitment.
type Client struct {
	clnt     *rpc.Client
	config   ClientConfig
	verifier *signature.Verifier
}

func NewClient(ctx context.Context, config *ClientConfig, signers []common.Address) (*Client, error) {
	clnt, err := rpc.DialContext(ctx, config.URL)
	if err != nil {
		log.Error("Failed to dial certificate validator", "url", config.URL, "err", err)
		return nil, err
	}
	return &Client{
		clnt:     clnt,
		config:   *config,
		verifier: signature.NewVerifier(signers),
	}, nil
}

// ValidateAndSignCertificate returns the validator's signature over the
// certificate's multisig commitment.
func (c *Client) ValidateAndSignCertificate(ctx context.Context, cert *certificate.Certificate) ([]byte, error) {
	rpcClientValidateRequestCounter.Inc(1)
	start := time.Now()
	success := false
	defer func() {
		if success {
			rpcClientValidateSuccessCounter.Inc(1)
		} else {
			rpcClientValidateFailureCounter.Inc(1)
		}
		rpcClientValidateDurationTimer.UpdateSince(start)
	}()

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}
	var resp server_api.ValidateCertificateResponse
	req := &server_api.ValidateCertificateRequest{Certificate: convert.WireCertificate(cert)}
	if err := c.clnt.CallContext(ctx, &resp, RPCNamespace+"_validateCertificate", req); err != nil {
		return nil, err
	}
	if resp.Signature == nil {
		return nil, ErrMissingResponseSignature
	}
	sig, err := convert.Signature(resp.Signature)
	if err != nil {
		return nil, fmt.Errorf("signature: %w", err)
	}
	commitment := certificate.MultisigCommitment(cert)
	ok, err := c.verifier.VerifyHash(sig[:], commitment)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnexpectedCertificateSigner
	}
	success = true
	return sig[:], nil
}

func (c *Client) HealthCheck(ctx context.Context) (*server_api.HealthCheckResponse, error) {
	var resp server_api.HealthCheckResponse
	if err := c.clnt.CallContext(ctx, &resp, RPCNamespace+"_healthCheck"); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Close() {
	c.clnt.Close()
}

func (c *Client) String() string {
	return fmt.Sprintf("CertificateValidatorClient{url:%s}", c.config.URL)
}
