// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package server

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// JSON-RPC error codes returned to callers.
const (
	InvalidParamsErrorCode = -32602
	InternalErrorCode      = -32603
)

const (
	errorPrefix           = "CertificateValidatorService: "
	decodeRequestMsg      = errorPrefix + "Unable to decode request"
	missingCertificateMsg = errorPrefix + "Unable to get certificate"
	parseCertificateMsg   = errorPrefix + "Unable to parse certificate"
	signingFailedMsg      = errorPrefix + "Unable to sign"
)

// ServiceError is the only error type the service returns to callers. Its
// message is safe to send over the wire; the cause of an internal error is
// never attached.
type ServiceError struct {
	code    int
	message string
	cause   error
}

var (
	ErrMissingCertificate = &ServiceError{code: InvalidParamsErrorCode, message: missingCertificateMsg}
	ErrSigningFailed      = &ServiceError{code: InternalErrorCode, message: signingFailedMsg}
)

func newParseCertificateError(cause error) *ServiceError {
	return &ServiceError{
		code:    InvalidParamsErrorCode,
		message: parseCertificateMsg + ": " + cause.Error(),
		cause:   cause,
	}
}

func (e *ServiceError) Error() string {
	return e.message
}

// ErrorCode implements rpc.Error.
func (e *ServiceError) ErrorCode() int {
	return e.code
}

func (e *ServiceError) Unwrap() error {
	return e.cause
}

func (e *ServiceError) InvalidArgument() bool {
	return e.code == InvalidParamsErrorCode
}

// IsInvalidArgument reports whether err was caused by the caller's input.
func IsInvalidArgument(err error) bool {
	var serviceErr *ServiceError
	return errors.As(err, &serviceErr) && serviceErr.InvalidArgument()
}

func toGRPCError(err error) error {
	if err == nil {
		return nil
	}
	var serviceErr *ServiceError
	if !errors.As(err, &serviceErr) {
		return status.Error(codes.Internal, signingFailedMsg)
	}
	if serviceErr.InvalidArgument() {
		return status.Error(codes.InvalidArgument, serviceErr.Error())
	}
	return status.Error(codes.Internal, serviceErr.Error())
}
