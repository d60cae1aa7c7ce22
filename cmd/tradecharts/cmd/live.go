package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/rustyeddy/tradecharts/chart"
	"github.com/rustyeddy/tradecharts/config"
	"github.com/rustyeddy/tradecharts/feed"
	"github.com/rustyeddy/tradecharts/market"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Drive the newest candle from a simulated price feed",
	Long: `Run a random-walk price producer on its own goroutine and a frame loop
that applies the latest price to the sample series and resolves the visible
candles each frame.

Every --bar-ticks ticks a new candle is opened at the last close.

Examples:
  tradecharts live
  tradecharts live --ticks 500 --bar-ticks 25`,
	RunE: runLive,
}

var liveBarTicks int

func init() {
	rootCmd.AddCommand(liveCmd)

	liveCmd.Flags().Int("ticks", 0, "number of ticks to produce (overrides config)")
	liveCmd.Flags().IntVar(&liveBarTicks, "bar-ticks", 20, "ticks per candle before a new one is opened")
}

// LiveStats summarises a live run.
type LiveStats struct {
	Frames  int
	Applied int
	Bars    int
}

// produce publishes a random walk starting at start until n prices are sent
// or ctx is done, then closes out.
func produce(ctx context.Context, out chan<- float64, start float64, lc config.LiveConfig, interval time.Duration) {
	defer close(out)

	seed := lc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	price := start
	for range lc.Ticks {
		price += rng.NormFloat64() * lc.Volatility
		select {
		case out <- price:
		case <-ctx.Done():
			return
		}
		if interval > 0 {
			select {
			case <-time.After(interval):
			case <-ctx.Done():
				return
			}
		}
	}
}

// RunLive feeds ticks into v's series until the producer finishes or ctx is
// cancelled. The series is only touched on the calling goroutine.
func RunLive(ctx context.Context, log *zap.Logger, v *chart.Viewport, cam *chart.Camera, lc config.LiveConfig, barTicks int) (LiveStats, error) {
	var stats LiveStats

	interval, err := lc.ParseInterval()
	if err != nil {
		return stats, err
	}
	frame := interval
	if frame <= 0 {
		frame = time.Millisecond
	}

	s := v.Series()
	last, ok := s.Last()
	if !ok {
		return stats, feed.ErrNoCandle
	}

	ticks := make(chan float64)
	handoff := feed.NewHandoff()
	done := handoff.StartWorker(ticks)
	go produce(ctx, ticks, last.Close, lc, interval)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	finished := false
	for !finished {
		select {
		case <-ctx.Done():
			<-done
			return stats, ctx.Err()
		case <-done:
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			finished = true
		case <-ticker.C:
		}

		applied, err := handoff.Apply(s)
		if errors.Is(err, feed.ErrNoCandle) {
			log.Warn("tick dropped, no candle yet")
		} else if err != nil {
			return stats, err
		}
		if applied {
			stats.Applied++
		}

		if barTicks > 0 && applied && stats.Applied%barTicks == 0 {
			c, _ := s.Last()
			now := market.AnchorAt(time.Now())
			s.AppendOHLCV(c.Close, c.Close, c.Close, c.Close, 0, now.Date(), now.Clock())
			stats.Bars++
		}

		left, right := cam.Bounds()
		visible := 0
		for range v.Visible(left, right) {
			visible++
		}
		stats.Frames++

		c, _ := s.Last()
		log.Debug("frame",
			zap.Int("frame", stats.Frames),
			zap.Int("visible", visible),
			zap.Int("candles", s.Len()),
			zap.Float64("close", c.Close),
			zap.Float64("high", c.High),
			zap.Float64("low", c.Low),
		)
	}

	return stats, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("ticks") {
		cfg.Live.Ticks, _ = cmd.Flags().GetInt("ticks")
	}

	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	series := market.NewSeriesWithDuration(market.SampleCandles(), time.Minute)
	v, err := chart.NewViewportWithLayout(series, cfg.Chart)
	if err != nil {
		return err
	}
	cam := chart.NewCamera(cfg.Chart.Width, cfg.Chart.Height)
	cfg.Camera.Apply(cam)

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("live feed started", zap.Int("ticks", cfg.Live.Ticks), zap.String("interval", cfg.Live.Interval))
	stats, err := RunLive(ctx, log, v, cam, cfg.Live, liveBarTicks)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("live: %w", err)
	}

	last, _ := series.Last()
	log.Info("live feed stopped",
		zap.Int("frames", stats.Frames),
		zap.Int("applied", stats.Applied),
		zap.Int("new_bars", stats.Bars),
		zap.Float64("last_close", last.Close),
	)
	return nil
}
