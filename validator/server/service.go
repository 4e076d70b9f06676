// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// Package server validates wire certificates and signs their multisig
// commitment, serving the result over JSON-RPC and gRPC.
package server

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"

	"github.com/offchainlabs/certificate-validator/certificate"
	"github.com/offchainlabs/certificate-validator/util/signature"
	"github.com/offchainlabs/certificate-validator/validator/convert"
	"github.com/offchainlabs/certificate-validator/validator/server_api"
)

var (
	validateRequestCounter  = metrics.NewRegisteredCounter("certvalidator/validate/requests", nil)
	validateSuccessCounter  = metrics.NewRegisteredCounter("certvalidator/validate/success", nil)
	validateInvalidCounter  = metrics.NewRegisteredCounter("certvalidator/validate/invalid", nil)
	validateFailureCounter  = metrics.NewRegisteredCounter("certvalidator/validate/failure", nil)
	validateDurationTimer   = metrics.NewRegisteredTimer("certvalidator/validate/duration", nil)
	healthCheckRequestCount = metrics.NewRegisteredCounter("certvalidator/healthcheck/requests", nil)
)

const (
	HealthCheckVersion = "light-certificate-validator-0.0.1"
	HealthCheckStatus  = "OK"
	HealthCheckReason  = "ALL systems ok"
)

// CertificateValidatorService holds no mutable state; one instance serves any
// number of concurrent requests.
type CertificateValidatorService struct {
	signer        signature.DataSignerFunc
	signerAddress common.Address
}

func NewCertificateValidatorService(signer signature.DataSignerFunc, signerAddress common.Address) *CertificateValidatorService {
	return &CertificateValidatorService{
		signer:        signer,
		signerAddress: signerAddress,
	}
}

func (s *CertificateValidatorService) SignerAddress() common.Address {
	return s.signerAddress
}

// ValidateCertificate converts the request's certificate, computes its multisig
// commitment and signs it. Input problems yield an invalid argument
// ServiceError; signing problems yield ErrSigningFailed.
func (s *CertificateValidatorService) ValidateCertificate(_ context.Context, req *server_api.ValidateCertificateRequest) (*server_api.ValidateCertificateResponse, error) {
	validateRequestCounter.Inc(1)
	start := time.Now()
	defer validateDurationTimer.UpdateSince(start)

	if req == nil || req.Certificate == nil {
		validateInvalidCounter.Inc(1)
		log.Warn("Rejected certificate validation request", "err", ErrMissingCertificate)
		return nil, ErrMissingCertificate
	}
	cert, err := convert.Certificate(req.Certificate)
	if err != nil {
		validateInvalidCounter.Inc(1)
		log.Warn("Unable to parse certificate", "network", req.Certificate.NetworkID, "height", uint64(req.Certificate.Height), "err", err)
		return nil, newParseCertificateError(err)
	}

	commitment := certificate.MultisigCommitment(cert)
	log.Debug("Computed certificate commitment", "network", cert.NetworkID, "height", cert.Height, "commitment", commitment)

	sig, err := s.signer(commitment.Bytes())
	if err == nil && len(sig) != crypto.SignatureLength {
		err = signature.ErrInvalidSignatureLength
	}
	if err != nil {
		validateFailureCounter.Inc(1)
		log.Error("Unable to sign certificate commitment", "network", cert.NetworkID, "height", cert.Height, "err", err)
		return nil, ErrSigningFailed
	}

	validateSuccessCounter.Inc(1)
	log.Info("Signed certificate",
		"network", cert.NetworkID,
		"height", cert.Height,
		"bridgeExits", len(cert.BridgeExits),
		"importedBridgeExits", len(cert.ImportedBridgeExits),
		"elapsed", time.Since(start),
	)
	return &server_api.ValidateCertificateResponse{
		Signature: convert.WireSignature(sig),
	}, nil
}

func (s *CertificateValidatorService) HealthCheck(_ context.Context) *server_api.HealthCheckResponse {
	healthCheckRequestCount.Inc(1)
	return &server_api.HealthCheckResponse{
		Version: HealthCheckVersion,
		Status:  HealthCheckStatus,
		Reason:  HealthCheckReason,
	}
}
