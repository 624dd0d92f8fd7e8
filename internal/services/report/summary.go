package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/timebird7/asset-plot/internal/common"
	"github.com/timebird7/asset-plot/internal/models"
)

// WriteSummary writes a per-asset valuation table and the portfolio total.
func WriteSummary(w io.Writer, pv *models.PortfolioValuation) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tTYPE\tPLOT\tTICKER\tQUANTITY\tPRICE\tLEV\tFINAL VALUE\tSTATUS")
	for _, v := range pv.Valuations {
		ticker := v.Asset.TickerSymbol
		if ticker == "" {
			ticker = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%g\t%s\t%.1fx\t%s\t%s\n",
			v.Asset.ID,
			v.Asset.AssetType,
			v.Asset.PlotType,
			ticker,
			v.Asset.Quantity,
			common.FormatMoney(v.Price),
			v.Asset.Leverage,
			common.FormatMoney(v.FinalValue),
			v.PriceStatus,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nTotal portfolio value: %s %s", common.FormatMoney(pv.Total), pv.TargetCurrency)
	if pv.RateFallback {
		fmt.Fprintf(w, " (exchange rate unavailable, %s values unconverted)", pv.BaseCurrency)
	}
	fmt.Fprintln(w)

	return nil
}
