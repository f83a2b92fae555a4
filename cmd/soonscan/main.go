package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/soonscan/soonscan/internal/cache"
	"github.com/soonscan/soonscan/internal/format"
	"github.com/soonscan/soonscan/internal/metrics"
	"github.com/soonscan/soonscan/internal/model"
	"github.com/soonscan/soonscan/internal/rpc"
	"github.com/soonscan/soonscan/internal/syncer"
	"github.com/soonscan/soonscan/internal/tui"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Base58-encoded 32-byte public keys are 44 characters; transaction
// signatures are longer. That length difference routes the one-shot
// lookup.
const accountAddressLength = 44

type config struct {
	Devnet         bool          `short:"D" long:"devnet" description:"use the devnet cluster"`
	Testnet        bool          `short:"T" long:"testnet" description:"use the testnet cluster"`
	Mainnet        bool          `short:"M" long:"mainnet" description:"use the mainnet cluster (default)"`
	RPCURL         string        `long:"rpc-url" env:"SOONSCAN_RPC_URL" description:"JSON-RPC endpoint override"`
	PollInterval   time.Duration `long:"poll-interval" env:"SOONSCAN_POLL_INTERVAL" description:"chain tip poll interval" default:"3s"`
	RetainedBlocks int           `long:"retained-blocks" env:"SOONSCAN_RETAINED_BLOCKS" description:"number of blocks kept in memory" default:"128"`
	HTTPTimeout    time.Duration `long:"http-timeout" env:"SOONSCAN_HTTP_TIMEOUT" description:"HTTP timeout for RPC requests" default:"15s"`
	RPCRate        int           `long:"rpc-rate" env:"SOONSCAN_RPC_RATE" description:"max RPC requests per second" default:"10"`
	LogFile        string        `long:"log-file" env:"SOONSCAN_LOG_FILE" description:"write JSON logs to this file (stdout belongs to the UI)"`
	MetricsAddr    string        `long:"metrics-addr" env:"SOONSCAN_METRICS_ADDR" description:"address for metrics server, empty disables it"`
}

func (c config) network() model.Network {
	switch {
	case c.Devnet:
		return model.Devnet
	case c.Testnet:
		return model.Testnet
	default:
		return model.Mainnet
	}
}

func (c config) endpoint() string {
	if c.RPCURL != "" {
		return c.RPCURL
	}
	return rpc.Endpoint(c.network())
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args, err := flags.Parse(&cfg)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	// A positional argument skips the terminal UI and runs a one-shot
	// lookup against the node.
	if len(args) > 0 {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic("can't initialize zap logger: " + err.Error())
		}
		defer func() {
			_ = logger.Sync()
		}()

		if len(args) > 1 {
			logger.Fatal("too many arguments, want one signature or address")
		}
		if err := runCheck(ctx, cfg, args[0]); err != nil {
			logger.Fatal("lookup failed", zap.Error(err))
		}
		return
	}

	logger, err := buildLogger(cfg.LogFile)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, "soonscan:", err)
		os.Exit(1)
	}
}

// buildLogger returns a file-backed JSON logger, or a nop logger when
// no file is configured: the terminal is owned by the UI.
func buildLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network := cfg.network()

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	store := cache.New(cfg.RetainedBlocks)
	client, err := rpc.NewClient(cfg.endpoint(), cfg.HTTPTimeout, cfg.RPCRate, metrics.NewRPCClient(network))
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	svc, err := syncer.NewService(store, client, metrics.NewSyncer(network), network, cfg.PollInterval, logger)
	if err != nil {
		return fmt.Errorf("init syncer: %w", err)
	}
	ui, err := tui.New(store, svc, network, logger)
	if err != nil {
		return fmt.Errorf("init terminal ui: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	program := tea.NewProgram(ui, tea.WithAltScreen(), tea.WithContext(ctx))
	g.Go(func() error {
		return svc.Run(ctx)
	})
	g.Go(func() error {
		// Quitting the UI stops the sync loop as well.
		defer cancel()
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("terminal ui: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// runCheck performs a single lookup and prints a plain report: a
// 44-character argument is an account address, anything else a
// transaction signature.
func runCheck(ctx context.Context, cfg config, query string) error {
	network := cfg.network()
	endpoint := cfg.endpoint()

	client, err := rpc.NewClient(endpoint, cfg.HTTPTimeout, cfg.RPCRate, metrics.NewRPCClient(network))
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}

	fmt.Printf("Using RPC: %s\n", endpoint)

	if len(query) == accountAddressLength {
		return checkAccount(ctx, client, query)
	}
	return checkSignature(ctx, client, query)
}

func checkAccount(ctx context.Context, client *rpc.Client, address string) error {
	info, err := client.AccountInfo(ctx, address)
	if errors.Is(err, rpc.ErrNotFound) {
		fmt.Println("Account not found or does not exist")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println("Account Details:")
	fmt.Printf("Address: %s\n", info.Address)
	fmt.Printf("Balance: %s\n", format.Lamports(info.Lamports))
	fmt.Printf("Owner: %s\n", info.Owner)
	fmt.Printf("Executable: %t\n", info.Executable)
	fmt.Printf("Space: %d bytes\n", info.Space)
	return nil
}

func checkSignature(ctx context.Context, client *rpc.Client, hash string) error {
	status, err := client.SignatureStatus(ctx, hash)
	if errors.Is(err, rpc.ErrNotFound) {
		fmt.Println("Transaction not found or does not exist")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println("Transaction Status Details:")
	fmt.Printf("Slot: %d\n", status.Slot)
	if status.Confirmations != nil {
		fmt.Printf("Confirmations: %d\n", *status.Confirmations)
	} else {
		fmt.Println("Confirmations: finalized")
	}
	if status.ConfirmationStatus != "" {
		fmt.Printf("Confirmation Status: %s\n", status.ConfirmationStatus)
	}
	if status.OK {
		fmt.Println("Transaction Status: Successful ✅")
	} else {
		fmt.Println("Transaction Status: Failed ❌")
		if status.ErrDetail != "" {
			fmt.Printf("Error: %s\n", status.ErrDetail)
		}
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
