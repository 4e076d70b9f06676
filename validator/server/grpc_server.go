// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package server

import (
	"context"
	"fmt"
	"net"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"github.com/ethereum/go-ethereum/log"

	"github.com/offchainlabs/certificate-validator/validator/server_api"
)

const ValidatorServiceName = "aggkit.aggsender.validator.v1.AggsenderValidator"

const (
	validateCertificateMethod = "/" + ValidatorServiceName + "/ValidateCertificate"
	healthCheckMethod         = "/" + ValidatorServiceName + "/HealthCheck"
)

// ValidatorGRPCServer is the server side of the AggsenderValidator service.
type ValidatorGRPCServer interface {
	ValidateCertificate(context.Context, *server_api.ValidateCertificateRequest) (*server_api.ValidateCertificateResponse, error)
	HealthCheck(context.Context, *server_api.HealthCheckRequest) (*server_api.HealthCheckResponse, error)
}

var ValidatorServiceDesc = grpc.ServiceDesc{
	ServiceName: ValidatorServiceName,
	HandlerType: (*ValidatorGRPCServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ValidateCertificate",
			Handler:    validateCertificateHandler,
		},
		{
			MethodName: "HealthCheck",
			Handler:    healthCheckHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "aggkit/aggsender/validator/v1/validator.proto",
}

func validateCertificateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(server_api.ValidateCertificateRequest)
	if err := dec(in); err != nil {
		return nil, decodeRequestError(err)
	}
	if interceptor == nil {
		return srv.(ValidatorGRPCServer).ValidateCertificate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: validateCertificateMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ValidatorGRPCServer).ValidateCertificate(ctx, req.(*server_api.ValidateCertificateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func healthCheckHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(server_api.HealthCheckRequest)
	if err := dec(in); err != nil {
		return nil, decodeRequestError(err)
	}
	if interceptor == nil {
		return srv.(ValidatorGRPCServer).HealthCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: healthCheckMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ValidatorGRPCServer).HealthCheck(ctx, req.(*server_api.HealthCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// decodeRequestError reports an undecodable payload as the caller's fault.
func decodeRequestError(err error) error {
	return status.Error(codes.InvalidArgument, decodeRequestMsg+": "+status.Convert(err).Message())
}

type validatorGRPCServer struct {
	service *CertificateValidatorService
}

var _ ValidatorGRPCServer = (*validatorGRPCServer)(nil)

func (s *validatorGRPCServer) ValidateCertificate(ctx context.Context, req *server_api.ValidateCertificateRequest) (*server_api.ValidateCertificateResponse, error) {
	resp, err := s.service.ValidateCertificate(ctx, req)
	if err != nil {
		return nil, toGRPCError(err)
	}
	return resp, nil
}

func (s *validatorGRPCServer) HealthCheck(ctx context.Context, _ *server_api.HealthCheckRequest) (*server_api.HealthCheckResponse, error) {
	return s.service.HealthCheck(ctx), nil
}

// interceptorLogger routes go-grpc-middleware logs to the geth logger.
func interceptorLogger() logging.Logger {
	return logging.LoggerFunc(func(_ context.Context, lvl logging.Level, msg string, fields ...any) {
		switch lvl {
		case logging.LevelDebug:
			log.Debug(msg, fields...)
		case logging.LevelInfo:
			log.Info(msg, fields...)
		case logging.LevelWarn:
			log.Warn(msg, fields...)
		case logging.LevelError:
			log.Error(msg, fields...)
		default:
			log.Error("Unknown gRPC log level", "level", lvl, "msg", msg)
		}
	})
}

// panicToStatus keeps panics in handlers from taking down the process.
func panicToStatus(p any) error {
	log.Error("Recovered from panic in gRPC handler", "panic", p)
	return status.Error(codes.Internal, signingFailedMsg)
}

// NewGRPCServer builds a gRPC server with the validator and standard health
// services registered. It does not listen.
func NewGRPCServer(config *GRPCServerConfig, service *CertificateValidatorService) (*grpc.Server, *health.Server) {
	opts := []grpc.ServerOption{
		grpc.MaxConcurrentStreams(config.MaxConcurrentStreams),
		grpc.MaxRecvMsgSize(config.MaxRecvMsgSize),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             config.KeepaliveMinTime,
			PermitWithoutStream: true,
		}),
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(panicToStatus)),
			logging.UnaryServerInterceptor(interceptorLogger(), logging.WithLogOnEvents(logging.FinishCall)),
		),
	}
	grpcServer := grpc.NewServer(opts...)
	grpcServer.RegisterService(&ValidatorServiceDesc, &validatorGRPCServer{
		service: service,
	})

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ValidatorServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	return grpcServer, healthServer
}

func StartGRPCServer(ctx context.Context, config *GRPCServerConfig, service *CertificateValidatorService) (*grpc.Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", config.Addr, config.Port))
	if err != nil {
		return nil, fmt.Errorf("could not create gRPC listener: %w", err)
	}
	return StartGRPCServerOnListener(ctx, listener, config, service)
}

// StartGRPCServerOnListener serves until ctx is done, then reports NOT_SERVING
// and drains in-flight calls.
func StartGRPCServerOnListener(ctx context.Context, listener net.Listener, config *GRPCServerConfig, service *CertificateValidatorService) (*grpc.Server, error) {
	grpcServer, healthServer := NewGRPCServer(config, service)
	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			log.Error("gRPC server stopped", "err", err)
		}
	}()
	go func() {
		<-ctx.Done()
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()
	log.Info("Started gRPC server", "addr", listener.Addr())
	return grpcServer, nil
}

// GRPCClient calls the AggsenderValidator service. Calls use the protobuf
// codec unless a grpc.CallContentSubtype option selects another.
type GRPCClient struct {
	cc grpc.ClientConnInterface
}

func NewGRPCClient(cc grpc.ClientConnInterface) *GRPCClient {
	return &GRPCClient{cc: cc}
}

func (c *GRPCClient) ValidateCertificate(ctx context.Context, in *server_api.ValidateCertificateRequest, opts ...grpc.CallOption) (*server_api.ValidateCertificateResponse, error) {
	out := new(server_api.ValidateCertificateResponse)
	if err := c.cc.Invoke(ctx, validateCertificateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *GRPCClient) HealthCheck(ctx context.Context, opts ...grpc.CallOption) (*server_api.HealthCheckResponse, error) {
	out := new(server_api.HealthCheckResponse)
	if err := c.cc.Invoke(ctx, healthCheckMethod, &server_api.HealthCheckRequest{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
