// Copyright 2023 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command fmp-fetch queries the Financial Modeling Prep API and prints the
// result as a text table or CSV.
//
// The API key is read from the FMP_API_KEY environment variable (a .env file
// in the current directory is honored), falling back to the "key" value of
// the TOML config file.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/fmp"
	"github.com/stockparfait/fmp/analyze"
	"github.com/stockparfait/fmp/company"
	"github.com/stockparfait/fmp/market"
	"github.com/stockparfait/fmp/statements"
	"github.com/stockparfait/fmp/table"
	"github.com/stockparfait/iterator"
	"github.com/stockparfait/logging"
	"golang.org/x/exp/slices"

	toml "github.com/pelletier/go-toml/v2"
)

type Flags struct {
	Config   string // default: ~/.fmp/config.toml
	LogLevel logging.Level
	// Exactly one of the following must be present.
	Profile      string // symbol to print the profile for
	Quote        string // symbol to print the quote for
	Income       string // symbol to print income statements for
	Segmentation string // symbol to print product revenue segmentation for
	Summary      string // comma-separated symbols to print return stats for
	Symbols      bool   // print the full symbol list
	CSV          bool   // dump CSV format; default: text
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("fmp-fetch", flag.ExitOnError)
	fs.StringVar(&flags.Config, "config",
		filepath.Join(os.Getenv("HOME"), ".fmp", "config.toml"),
		"path to the config file")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")
	fs.StringVar(&flags.Profile, "profile", "", "symbol to print the profile for")
	fs.StringVar(&flags.Quote, "quote", "", "symbol to print the quote for")
	fs.StringVar(&flags.Income, "income", "",
		"symbol to print income statements for")
	fs.StringVar(&flags.Segmentation, "segmentation", "",
		"symbol to print product revenue segmentation for")
	fs.StringVar(&flags.Summary, "summary", "",
		"comma-separated symbols to print daily log-return stats for")
	fs.BoolVar(&flags.Symbols, "symbols", false, "print the full symbol list")
	fs.BoolVar(&flags.CSV, "csv", false, "print table in CSV format; default: text")

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}
	kinds := 0
	for _, s := range []string{flags.Profile, flags.Quote, flags.Income,
		flags.Segmentation, flags.Summary} {
		if s != "" {
			kinds++
		}
	}
	if flags.Symbols {
		kinds++
	}
	if kinds != 1 {
		return nil, errors.Reason("expected exactly one of -profile, -quote, " +
			"-income, -segmentation, -summary or -symbols")
	}
	return &flags, err
}

type Config struct {
	Key string `toml:"key"` // user key for Financial Modeling Prep
}

func parseConfig(filePath string) (*Config, error) {
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sample := `key = "YourSecretFMPKey"
`
			err = errors.Annotate(err,
				"config file '%s' does not exist.\nPlease create config file containing:\n%s",
				filePath, sample)
			return nil, err
		} else {
			return nil, errors.Annotate(err,
				"cannot check config file for existence: '%s'", filePath)
		}
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	var c Config
	if err := d.Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", filePath)
	}
	return &c, nil
}

// resolveKey finds the API key: the FMP_API_KEY environment variable wins,
// including values loaded from a .env file, and the config file is the
// fallback.
func resolveKey(configPath string) (string, error) {
	_ = godotenv.Load()
	if key := os.Getenv("FMP_API_KEY"); key != "" {
		return key, nil
	}
	c, err := parseConfig(configPath)
	if err != nil {
		return "", errors.Annotate(err, "failed to parse config")
	}
	return c.Key, nil
}

func profileTable(ctx context.Context, symbol string) (*table.Table, error) {
	p, err := company.GetProfile(ctx, symbol)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch profile for %s", symbol)
	}
	tbl := table.NewTable("Field", "Value")
	tbl.AddRow(
		table.Strings("Symbol", p.Symbol),
		table.Strings("Name", p.CompanyName),
		table.Strings("Exchange", p.ExchangeShortName),
		table.Strings("Sector", p.Sector),
		table.Strings("Industry", p.Industry),
		table.Strings("Country", p.Country),
		table.Strings("IPO Date", p.IPODate.String()),
		table.Row{table.String("Price"), table.Number(p.Price)},
		table.Row{table.String("Market Cap"), table.Number(p.MktCap)},
		table.Row{table.String("Beta"), table.Number(p.Beta)},
	)
	return tbl, nil
}

func quoteTable(ctx context.Context, symbol string) (*table.Table, error) {
	q, err := market.GetQuote(ctx, symbol)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch quote for %s", symbol)
	}
	tbl := table.NewTable("Symbol", "Price", "Change%", "Day Low", "Day High",
		"Volume", "PE")
	tbl.AddRow(table.Row{
		table.String(q.Symbol),
		table.Number(q.Price),
		table.Number(q.ChangesPercentage),
		table.Number(q.DayLow),
		table.Number(q.DayHigh),
		table.Number(float64(q.Volume)),
		table.Number(q.PE),
	})
	return tbl, nil
}

func incomeTable(ctx context.Context, symbol string) (*table.Table, error) {
	ss, err := statements.GetIncomeStatements(ctx, symbol, nil)
	if err != nil {
		return nil, errors.Annotate(err,
			"failed to fetch income statements for %s", symbol)
	}
	tbl := table.NewTable("Date", "Period", "Revenue", "Gross Profit",
		"Operating Income", "Net Income", "EPS")
	for _, s := range ss {
		tbl.AddRow(table.Row{
			table.String(s.Date.String()),
			table.String(s.Period),
			table.Number(s.Revenue),
			table.Number(s.GrossProfit),
			table.Number(s.OperatingIncome),
			table.Number(s.NetIncome),
			table.Number(s.EPS),
		})
	}
	return tbl, nil
}

func segmentationTable(ctx context.Context, symbol string) (*table.Table, error) {
	segs, err := statements.GetProductSegmentation(ctx, symbol)
	if err != nil {
		return nil, errors.Annotate(err,
			"failed to fetch segmentation for %s", symbol)
	}
	tbl := table.NewTable("Date", "Product", "Revenue")
	for _, seg := range segs {
		for _, item := range seg.Items {
			tbl.AddRow(table.Row{
				table.String(seg.Date.String()),
				table.String(item.Name),
				table.Number(item.Value),
			})
		}
	}
	return tbl, nil
}

func summaryRow(ctx context.Context, symbol string) (table.Row, error) {
	h, err := market.GetHistoricalPrices(ctx, symbol, nil)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch prices for %s", symbol)
	}
	s := analyze.Summarize(analyze.Returns(h.Historical))
	return table.Row{
		table.String(symbol),
		table.Number(float64(s.N)),
		table.Number(s.Mean),
		table.Number(s.StdDev),
		table.Number(s.Min),
		table.Number(s.Max),
	}, nil
}

// summaryTable fetches the price series of each symbol in parallel and
// tabulates the daily log-return statistics. Symbols that fail to fetch are
// logged and skipped.
func summaryTable(ctx context.Context, symbolsArg string) (*table.Table, error) {
	symbols := strings.Split(symbolsArg, ",")
	f := func(symbol string) table.Row {
		row, err := summaryRow(ctx, symbol)
		if err != nil {
			logging.Warningf(ctx, "failed to process %s: %s", symbol, err.Error())
			return nil
		}
		return row
	}
	pm := iterator.ParallelMap(ctx, 2*runtime.NumCPU(),
		iterator.FromSlice(symbols), f)
	defer pm.Close()

	rows := iterator.Reduce[table.Row, []table.Row](pm, []table.Row{},
		func(r table.Row, rows []table.Row) []table.Row {
			if r == nil {
				return rows
			}
			return append(rows, r)
		})
	slices.SortFunc(rows, func(a, b table.Row) bool { return a[0].Less(b[0]) })

	tbl := table.NewTable("Symbol", "Days", "Mean", "StdDev", "Min", "Max")
	tbl.AddRow(rows...)
	return tbl, nil
}

func symbolsTable(ctx context.Context) (*table.Table, error) {
	ss, err := market.GetSymbols(ctx)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch the symbol list")
	}
	tbl := table.NewTable("Symbol", "Name", "Exchange", "Type", "Price")
	for _, s := range ss {
		tbl.AddRow(table.Row{
			table.String(s.Symbol),
			table.String(s.Name),
			table.String(s.ExchangeShortName),
			table.String(s.Type),
			table.Number(s.Price),
		})
	}
	return tbl, nil
}

func printData(ctx context.Context, flags *Flags, w io.Writer) error {
	key, err := resolveKey(flags.Config)
	if err != nil {
		return err
	}
	ctx = fmp.UseClient(ctx, key)

	var tbl *table.Table
	switch {
	case flags.Profile != "":
		tbl, err = profileTable(ctx, flags.Profile)
	case flags.Quote != "":
		tbl, err = quoteTable(ctx, flags.Quote)
	case flags.Income != "":
		tbl, err = incomeTable(ctx, flags.Income)
	case flags.Segmentation != "":
		tbl, err = segmentationTable(ctx, flags.Segmentation)
	case flags.Summary != "":
		tbl, err = summaryTable(ctx, flags.Summary)
	case flags.Symbols:
		tbl, err = symbolsTable(ctx)
	}
	if err != nil {
		return err
	}
	if tbl == nil {
		return errors.Reason("no data")
	}
	if flags.CSV {
		if err := tbl.WriteCSV(w, table.Params{}); err != nil {
			return errors.Annotate(err, "failed to print CSV")
		}
		return nil
	}
	if err := tbl.WriteText(w, table.Params{}); err != nil {
		return errors.Annotate(err, "failed to print text")
	}
	return nil
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	if err := printData(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
