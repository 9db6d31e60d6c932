package cmd

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/fifo"
	"github.com/etnz/fifo/sheet"
)

// columnFlags collects repeated -col role=header flags.
type columnFlags map[fifo.Role]string

func (c *columnFlags) String() string {
	var parts []string
	for role, header := range *c {
		parts = append(parts, fmt.Sprintf("%s=%s", role, header))
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (c *columnFlags) Set(value string) error {
	name, header, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(header) == "" {
		return fmt.Errorf("expected role=header, got %q", value)
	}
	role, err := fifo.ParseRole(name)
	if err != nil {
		return err
	}
	if *c == nil {
		*c = make(columnFlags)
	}
	(*c)[role] = strings.TrimSpace(header)
	return nil
}

// inputFlags are the flags of every command reading a trade export.
type inputFlags struct {
	buy, sell string
	profile   string
	sheet     string
	records   string
	columns   columnFlags
}

func (in *inputFlags) SetFlags(f *flag.FlagSet, cfg Config) {
	f.StringVar(&in.buy, "buy", "", fmt.Sprintf("Keyword identifying a buy in the direction column (default %q).", cfg.BuyKeyword))
	f.StringVar(&in.sell, "sell", "", fmt.Sprintf("Keyword identifying a sell in the direction column (default %q).", cfg.SellKeyword))
	f.StringVar(&in.profile, "profile", cfg.Profile, "Path to a YAML mapping profile.")
	f.StringVar(&in.sheet, "sheet", "", "Workbook sheet to read, the first one by default.")
	f.StringVar(&in.records, "records", "", "JSONPath selecting the records of a JSON file.")
	f.Var(&in.columns, "col", "Column of a role as role=header, e.g. -col 'date=Trade Date'. Repeatable.")
}

// input is a loaded export, ready for the engine.
type input struct {
	table    fifo.Table
	mapping  fifo.Mapping
	keywords fifo.Keywords
}

// load reads the export at path. Keywords resolve from the flags, then the profile,
// then the configuration. Neither the mapping nor the keywords are validated.
func (in *inputFlags) load(path string, cfg Config) (*input, error) {
	p := new(sheet.Profile)
	if in.profile != "" {
		loaded, err := sheet.LoadProfile(in.profile)
		if err != nil {
			return nil, err
		}
		p = loaded
	}
	if p.Columns == nil {
		p.Columns = make(map[fifo.Role]string)
	}
	for role, header := range in.columns {
		p.Columns[role] = header
	}
	if in.sheet != "" {
		p.Sheet = in.sheet
	}
	if in.records != "" {
		p.Records = in.records
	}

	table, err := sheet.Load(path, p.Options())
	if err != nil {
		return nil, err
	}
	m, err := p.Mapping(table.Headers)
	if err != nil {
		return nil, err
	}

	kw := p.ApplyKeywords(fifo.Keywords{Buy: cfg.BuyKeyword, Sell: cfg.SellKeyword})
	if in.buy != "" {
		kw.Buy = in.buy
	}
	if in.sell != "" {
		kw.Sell = in.sell
	}
	return &input{table: table, mapping: m, keywords: kw}, nil
}

// compute validates the loaded input and runs the engine.
func (in *input) compute() (*fifo.Result, error) {
	if err := in.keywords.Validate(); err != nil {
		return nil, err
	}
	if err := in.mapping.Validate(len(in.table.Headers)); err != nil {
		return nil, fmt.Errorf("invalid column mapping (see 'lots map'): %w", err)
	}
	return fifo.Compute(in.table, in.mapping, in.keywords)
}

// loadAndCompute is load then compute.
func (in *inputFlags) loadAndCompute(args []string, cfg Config) (*fifo.Result, error) {
	if len(args) != 1 {
		return nil, errUsage
	}
	loaded, err := in.load(args[0], cfg)
	if err != nil {
		return nil, err
	}
	return loaded.compute()
}
