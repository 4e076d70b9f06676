// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// certvalidator checks pessimistic certificates submitted by an aggsender and
// signs their multisig commitment.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"

	"github.com/offchainlabs/certificate-validator/cmd/genericconf"
	"github.com/offchainlabs/certificate-validator/cmd/util"
	"github.com/offchainlabs/certificate-validator/cmd/util/confighelpers"
	"github.com/offchainlabs/certificate-validator/util/signature"
	"github.com/offchainlabs/certificate-validator/validator/server"
)

const shutdownTimeout = 10 * time.Second

func printSampleUsage(progname string) {
	fmt.Printf("\n")
	fmt.Printf("Sample usage: %s --signer.private-key=/run/secrets/validator.key \n", progname)
	fmt.Printf("              %s --signer.pathname=keystore.json --signer.password=... --rpc.enable=false \n", progname)
}

func main() {
	os.Exit(mainImpl())
}

func mainImpl() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := parseConfig(os.Args[1:])
	if errors.Is(err, errDumpedConfig) {
		return 0
	}
	if err != nil {
		confighelpers.PrintErrorAndExit(err, printSampleUsage)
	}

	if err := genericconf.InitLog(config.LogType, config.LogLevel, &config.FileLogging, genericconf.DefaultPathResolver(".")); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		return 1
	}
	defer func() {
		if err := genericconf.CloseLogFile(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
		}
	}()
	go rotateLogFileOnHangup(ctx)

	vcsRevision, strippedRevision, vcsTime := confighelpers.GetVersion()
	log.Info("Running light certificate validator", "revision", vcsRevision, "vcs.time", vcsTime)

	if err := util.StartMetrics(config.Metrics, config.PProf, &config.MetricsServer, &config.PprofCfg); err != nil {
		log.Error("Error starting metrics", "err", err)
		return 1
	}

	privateKey, err := util.OpenSigningKey(&config.Signer)
	if err != nil {
		log.Error("Error opening signing key", "err", err)
		return 1
	}
	signerAddress := crypto.PubkeyToAddress(privateKey.PublicKey)
	signer, err := signature.NewCachedDataSigner(signature.DataSignerFromPrivateKey(privateKey), config.SignatureCacheSize)
	if err != nil {
		log.Error("Error creating signer", "err", err)
		return 1
	}
	service := server.NewCertificateValidatorService(signer, signerAddress)
	log.Info("Loaded signing key", "address", signerAddress, "build", strippedRevision)

	if err := run(ctx, config, service); err != nil {
		log.Error("Light certificate validator stopped", "err", err)
		return 1
	}
	log.Info("Shut down light certificate validator")
	return 0
}

// rotateLogFileOnHangup lets logrotate-style tooling cycle the log file.
func rotateLogFileOnHangup(ctx context.Context) {
	hangup := make(chan os.Signal, 1)
	signal.Notify(hangup, syscall.SIGHUP)
	defer signal.Stop(hangup)
	for {
		select {
		case <-hangup:
			if err := genericconf.RotateLogFile(); err != nil {
				log.Warn("Error rotating log file", "err", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// run listens on the enabled transports and serves them until ctx is done.
func run(ctx context.Context, config *CertValidatorConfig, service *server.CertificateValidatorService) error {
	var rpcListener, grpcListener net.Listener
	if config.RPC.Enable {
		var err error
		rpcListener, err = net.Listen("tcp", fmt.Sprintf("%s:%d", config.RPC.Addr, config.RPC.Port))
		if err != nil {
			return fmt.Errorf("starting JSON-RPC server: %w", err)
		}
	}
	if config.GRPC.Enable {
		var err error
		grpcListener, err = net.Listen("tcp", fmt.Sprintf("%s:%d", config.GRPC.Addr, config.GRPC.Port))
		if err != nil {
			if rpcListener != nil {
				_ = rpcListener.Close()
			}
			return fmt.Errorf("starting gRPC server: %w", err)
		}
	}
	return serve(ctx, rpcListener, grpcListener, config, service)
}

// serve runs a server on each non-nil listener. Once ctx is done the servers
// stop accepting work and report NOT_SERVING while in-flight calls drain.
func serve(ctx context.Context, rpcListener, grpcListener net.Listener, config *CertValidatorConfig, service *server.CertificateValidatorService) error {
	serveCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		rpcServer  *http.Server
		grpcServer *grpc.Server
	)
	if rpcListener != nil {
		var err error
		rpcServer, err = server.StartRPCServerOnListener(serveCtx, rpcListener, &config.RPC, service)
		if err != nil {
			if grpcListener != nil {
				_ = grpcListener.Close()
			}
			return fmt.Errorf("starting JSON-RPC server: %w", err)
		}
	}
	if grpcListener != nil {
		var err error
		grpcServer, err = server.StartGRPCServerOnListener(serveCtx, grpcListener, &config.GRPC, service)
		if err != nil {
			return fmt.Errorf("starting gRPC server: %w", err)
		}
	}

	<-ctx.Done()
	log.Info("Shutting down")
	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stopCancel()
	var stopping errgroup.Group
	if rpcServer != nil {
		stopping.Go(func() error {
			return rpcServer.Shutdown(stopCtx)
		})
	}
	if grpcServer != nil {
		stopping.Go(func() error {
			done := make(chan struct{})
			go func() {
				grpcServer.GracefulStop()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				grpcServer.Stop()
				return errors.New("gRPC server did not drain before the shutdown timeout")
			}
		})
	}
	return stopping.Wait()
}
