package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rustyeddy/tradecharts/chart"
	"github.com/rustyeddy/tradecharts/config"
	"github.com/rustyeddy/tradecharts/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func sampleViewport(t *testing.T) *chart.Viewport {
	t.Helper()
	v, err := chart.NewViewportWithLayout(market.NewSeriesFrom(market.SampleCandles()), chart.DefaultLayout())
	require.NoError(t, err)
	return v
}

func TestRenderFrame(t *testing.T) {
	v := sampleViewport(t)

	f, err := RenderFrame(v, 140, 280)
	require.NoError(t, err)
	assert.Len(t, f.ID, 26)
	assert.Equal(t, chart.IndexRange{Start: 10, End: 22}, f.Visible)
	assert.Equal(t, v.DrawCommands(140, 280), f.Commands)

	f, err = RenderFrame(v, 5000, 6000)
	require.NoError(t, err)
	assert.True(t, f.Visible.Empty())
	assert.Empty(t, f.Commands)
}

func TestWriteFrame(t *testing.T) {
	v := sampleViewport(t)
	f, err := RenderFrame(v, 0, 20)
	require.NoError(t, err)

	var js bytes.Buffer
	require.NoError(t, WriteFrame(&js, f, "json"))
	var decoded Frame
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, *f, decoded)

	var ys bytes.Buffer
	require.NoError(t, WriteFrame(&ys, f, "yaml"))
	decoded = Frame{}
	require.NoError(t, yaml.Unmarshal(ys.Bytes(), &decoded))
	assert.Equal(t, f.Visible, decoded.Visible)
	assert.Len(t, decoded.Commands, 3)
	assert.Equal(t, chart.Bullish, decoded.Commands[0].Direction)

	assert.Error(t, WriteFrame(&ys, f, "xml"))
}

func TestRunLive(t *testing.T) {
	series := market.NewSeriesFrom(market.SampleCandles())
	v, err := chart.NewViewportWithLayout(series, chart.DefaultLayout())
	require.NoError(t, err)
	cam := chart.NewCamera(1200, 900)

	stats, err := RunLive(context.Background(), zap.NewNop(), v, cam,
		config.LiveConfig{Ticks: 60, Interval: "1ms", Volatility: 0.5, Seed: 42}, 10)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, stats.Applied, 1)
	assert.GreaterOrEqual(t, stats.Frames, stats.Applied)
	assert.Equal(t, 50+stats.Bars, series.Len())

	last, _ := series.Last()
	assert.LessOrEqual(t, last.Low, last.Close)
	assert.GreaterOrEqual(t, last.High, last.Close)
}

func TestRunLive_EmptySeries(t *testing.T) {
	v := chart.NewViewport(market.NewSeries(), 1200, 900)
	_, err := RunLive(context.Background(), zap.NewNop(), v, chart.NewCamera(1200, 900),
		config.LiveConfig{Ticks: 5}, 0)
	assert.Error(t, err)
}

func TestRunLive_Cancelled(t *testing.T) {
	v := sampleViewport(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunLive(ctx, zap.NewNop(), v, chart.NewCamera(1200, 900),
		config.LiveConfig{Ticks: 1000, Interval: "10ms", Volatility: 0.1, Seed: 1}, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecute_RenderJSON(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"render", "--left", "0", "--right", "20", "--format", "json"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, Execute())

	var f Frame
	require.NoError(t, json.Unmarshal(out.Bytes(), &f))
	assert.Equal(t, chart.IndexRange{Start: 0, End: 3}, f.Visible)
	assert.Len(t, f.Commands, 3)
}

func TestExecute_ConfigInitValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "init", "-o", path})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "Created default configuration")

	out.Reset()
	rootCmd.SetArgs([]string{"config", "validate", "-f", path})
	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "Configuration valid")
	assert.Contains(t, out.String(), "slot 14.0px")
}
