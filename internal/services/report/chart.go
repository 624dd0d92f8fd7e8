// Package report renders valuation output: a text summary and a distribution
// chart grouped by plot type.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/timebird7/asset-plot/internal/models"
)

const (
	DefaultChartWidth  = 800
	DefaultChartHeight = 600
)

// RenderDistributionChart renders a PNG pie chart of final value grouped by
// plot type, largest slice first. Groups with a non-positive value are
// skipped: they have no area to draw. Returns raw PNG bytes.
func RenderDistributionChart(pv *models.PortfolioValuation, width, height int) ([]byte, error) {
	if width <= 0 {
		width = DefaultChartWidth
	}
	if height <= 0 {
		height = DefaultChartHeight
	}

	groups := models.GroupFinalValuesByPlotType(pv.Valuations)

	values := make([]chart.Value, 0, len(groups))
	for label, total := range groups {
		if total <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%s)", label, pv.TargetCurrency),
			Value: total,
		})
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no positive asset groups to chart")
	}

	sort.Slice(values, func(i, j int) bool {
		return values[i].Value > values[j].Value
	})

	pie := chart.PieChart{
		Title:  fmt.Sprintf("Asset Distribution by Type (%s)", pv.TargetCurrency),
		Width:  width,
		Height: height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// SaveDistributionChart renders the chart and writes it atomically to path
// (temp file in the same directory, then rename).
func SaveDistributionChart(path string, pv *models.PortfolioValuation, width, height int) error {
	data, err := RenderDistributionChart(pv, width, height)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".chart-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write chart: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close chart file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move chart into place: %w", err)
	}

	return nil
}
