package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/rolldown"
	"github.com/0xPolygon/rolldown/common"
	"github.com/0xPolygon/rolldown/config"
	"github.com/0xPolygon/rolldown/log"
	"github.com/0xPolygon/rolldown/node"
	"github.com/0xPolygon/rolldown/rpc"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func start(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		rolldown.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if c.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	components := cliCtx.StringSlice(config.FlagComponents)
	if !isNeeded([]string{common.NODE, common.RPC}, components) {
		return fmt.Errorf("nothing to run, components: %v", components)
	}

	n, err := node.New(
		log.WithFields("module", common.NODE),
		c.Node,
		c.Rolldown,
		c.SequencerStaking,
		c.Genesis,
	)
	if err != nil {
		return err
	}
	defer n.Close()

	ctx, cancel := context.WithCancel(cliCtx.Context)
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return n.Start(gctx)
	})

	if isNeeded([]string{common.RPC}, components) {
		server := createRPC(c.RPC, n)
		group.Go(func() error {
			return server.Start()
		})
		group.Go(func() error {
			<-gctx.Done()
			return server.Stop()
		})
	}

	go waitSignal([]context.CancelFunc{cancel})

	return group.Wait()
}

func logVersion() {
	log.Infow("Starting application",
		// version is already logged by default
		"gitRevision", rolldown.GitRev,
		"gitBranch", rolldown.GitBranch,
		"goVersion", runtime.Version(),
		"built", rolldown.BuildDate,
		"os/arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}

func waitSignal(cancelFuncs []context.CancelFunc) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	for sig := range signals {
		switch sig {
		case os.Interrupt, os.Kill:
			log.Info("terminating application gracefully...")

			for _, cancel := range cancelFuncs {
				cancel()
			}

			return
		}
	}
}

func isNeeded(casesWhereNeeded, actualCases []string) bool {
	for _, actualCase := range actualCases {
		for _, caseWhereNeeded := range casesWhereNeeded {
			if actualCase == caseWhereNeeded {
				return true
			}
		}
	}

	return false
}

func createRPC(cfg jRPC.Config, n *node.Node) *jRPC.Server {
	logger := log.WithFields("module", common.RPC)
	services := []jRPC.Service{
		{
			Name: rpc.ROLLDOWN,
			Service: rpc.NewRolldownEndpoints(
				logger,
				cfg.WriteTimeout.Duration,
				cfg.ReadTimeout.Duration,
				n,
			),
		},
	}

	return jRPC.NewServer(cfg, services, jRPC.WithLogger(logger.GetSugaredLogger()))
}
