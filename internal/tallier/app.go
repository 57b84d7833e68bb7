// Package tallier initializes and runs the central tally server: it wires
// the intake pipeline, opens the optional archive, handles graceful
// shutdown, and starts the gRPC endpoint.
package tallier

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/urna/internal/audit"
	"github.com/dmitrijs2005/urna/internal/logging"
	"github.com/dmitrijs2005/urna/internal/tallier/archive"
	"github.com/dmitrijs2005/urna/internal/tallier/config"
	"github.com/dmitrijs2005/urna/internal/tallier/dedup"
	"github.com/dmitrijs2005/urna/internal/tallier/decrypt"
	gs "github.com/dmitrijs2005/urna/internal/tallier/grpc"
	"github.com/dmitrijs2005/urna/internal/tallier/intake"
	"github.com/dmitrijs2005/urna/internal/tallier/tally"
	"github.com/dmitrijs2005/urna/internal/tallier/verify"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	pipeline   *intake.Pipeline
	verifier   *verify.Verifier
	decryptor  *decrypt.Decryptor
	aggregator *tally.Aggregator
	closeFns   []func() error
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	journal, err := audit.NewJournal(c.AuditDir, "servidor")
	if err != nil {
		return nil, fmt.Errorf("audit journal init error: %w", err)
	}

	decryptor, err := decrypt.New()
	if err != nil {
		return nil, fmt.Errorf("decryptor init error: %w", err)
	}

	verifier := verify.New()
	detector := dedup.New(c.ExpectedBallots, c.FalsePositiveRate)
	aggregator := tally.New(c.RegisteredVoters)

	var archiver intake.Archiver
	app := &App{config: c, logger: logger, verifier: verifier, decryptor: decryptor, aggregator: aggregator}

	if c.DatabaseDSN != "" {
		repo, db, err := archive.Open(context.Background(), c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("archive init error: %w", err)
		}
		archiver = repo
		app.closeFns = append(app.closeFns, db.Close)
	}

	app.pipeline = intake.New(detector, verifier, decryptor, aggregator, journal, archiver, logger)

	return app, nil
}

// Aggregator exposes the running totals for the operator surface.
func (app *App) Aggregator() *tally.Aggregator {
	return app.aggregator
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting tallier...")

	app.initSignalHandler(cancelFunc)

	srv, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.pipeline,
		app.verifier, app.decryptor, app.config.SecretKey, app.config.TokenValidityDuration)
	if err != nil {
		return fmt.Errorf("grpc server init error: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx)
	})

	err = g.Wait()

	summary := app.aggregator.Snapshot()
	app.logger.Info(ctx, "final tally",
		"received_total", summary.ReceivedTotal,
		"counted_total", summary.CountedTotal,
		"by_candidate", summary.ByCandidate,
		"by_station", summary.ByStation,
		"turnout_percent", summary.TurnoutPercent,
	)

	for _, closeFn := range app.closeFns {
		if cerr := closeFn(); cerr != nil {
			app.logger.Error(ctx, "shutdown close error", "error", cerr.Error())
		}
	}

	return err
}
