package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	restapi "github.com/hedisam/circlist/api/rest"
	"github.com/hedisam/circlist/internal/custompromauto"
	"github.com/hedisam/circlist/internal/feed"
	"github.com/hedisam/circlist/internal/ringbuffer"
	"github.com/hedisam/circlist/internal/store/memdb"
)

type Options struct {
	ServerAddr    string
	RingCapacity  int
	FeedInterval  time.Duration
	DrainInterval time.Duration
	ConfigPath    string
	Demo          bool
	Verbose       bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.ServerAddr, "server-addr", "localhost:8080", "Server addr to serve the http server on")
	flag.IntVar(&opts.RingCapacity, "ring-capacity", memdb.DefaultRingCapacity, "Capacity of the served ring buffer, between 1 and 1024")
	flag.DurationVar(&opts.FeedInterval, "feed-interval", 0, "Push an incrementing value into the ring buffer on this interval. Zero disables the feeder")
	flag.DurationVar(&opts.DrainInterval, "drain-interval", 0, "Pop a value from the ring buffer on this interval. Zero disables the drainer")
	flag.StringVar(&opts.ConfigPath, "config", "", "Optional TOML config file. Flags given on the command line take precedence")
	flag.BoolVar(&opts.Demo, "demo", false, "Run the ring buffer and linked list demo, print to stdout and exit")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := logrus.New()
	if opts.ConfigPath != "" {
		err := loadConfigFile(opts.ConfigPath, &opts, explicitFlags(flag.CommandLine))
		if err != nil {
			logger.WithError(err).Fatal("Failed to load config file")
		}
	}
	ensureValidOpts(logger, opts)

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if opts.Demo {
		err := runDemo(logger, os.Stdout)
		if err != nil {
			logger.WithError(err).Fatal("Demo failed")
		}
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ringStore, err := memdb.NewRingStore(memdb.WithCapacity(opts.RingCapacity), memdb.WithName("default"))
	if err != nil {
		logger.WithError(err).Fatal("Failed to create ring buffer store")
	}
	listStore := memdb.NewListStore()

	if opts.FeedInterval > 0 {
		feeder := feed.NewFeeder(logger, ringStore)
		go feeder.Run(ctx, feed.Generate(ctx, opts.FeedInterval, 0))
	}
	if opts.DrainInterval > 0 {
		go func() {
			for v := range feed.Drain(ctx, logger, ringStore, opts.DrainInterval) {
				logger.WithField("value", v).Debug("Drained value from ring buffer")
			}
		}()
	}

	restServer := restapi.NewServer(logger, ringStore, listStore)
	mux := http.NewServeMux()
	restServer.Register(mux)

	// use a custom prom registry to avoid recording the default http handler metrics
	mux.Handle("/metrics", promhttp.HandlerFor(custompromauto.Registry(), promhttp.HandlerOpts{}))

	mustListenAndServe(ctx, logger, opts.ServerAddr, mux)

	err = ringStore.Close()
	if err != nil {
		logger.WithError(err).Error("Failed to release ring buffer")
	}
	err = listStore.Clear(context.Background())
	if err != nil {
		logger.WithError(err).Error("Failed to release list")
	}
}

func mustListenAndServe(ctx context.Context, logger *logrus.Logger, addr string, handler http.Handler) {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		logger.WithField("addr", addr).Info("Serving server...")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed with error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger.Info("Shutting down server...")
	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.WithError(err).Error("Failed to shutdown server gracefully")
	}
}

func ensureValidOpts(logger *logrus.Logger, opts Options) {
	if opts.Demo {
		return
	}
	if opts.ServerAddr == "" {
		logger.Error("--server-addr is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.RingCapacity < 1 || opts.RingCapacity > ringbuffer.MaxCapacity {
		logger.Errorf("--ring-capacity must be between 1 and %d", ringbuffer.MaxCapacity)
		flag.Usage()
		os.Exit(1)
	}
	if opts.FeedInterval < 0 {
		logger.Error("--feed-interval cannot be negative")
		flag.Usage()
		os.Exit(1)
	}
	if opts.DrainInterval < 0 {
		logger.Error("--drain-interval cannot be negative")
		flag.Usage()
		os.Exit(1)
	}
}
