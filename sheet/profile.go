package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/etnz/fifo"
	"gopkg.in/yaml.v3"
)

// Profile pins how a family of exports is read. Every field is optional: columns not
// named fall back to AutoMap and empty keywords to the caller's defaults.
//
//	columns:
//	  date: Value Date
//	  direction: B/S
//	  nominal: Nominal 0
//	keywords:
//	  buy: achat
//	  sell: vente
//	records: $.trades
type Profile struct {
	Columns  map[fifo.Role]string `yaml:"columns"` // header name by role
	Keywords struct {
		Buy  string `yaml:"buy"`
		Sell string `yaml:"sell"`
	} `yaml:"keywords"`
	Sheet   string `yaml:"sheet"`   // workbook sheet
	Comma   string `yaml:"comma"`   // CSV delimiter
	Records string `yaml:"records"` // jsonpath to the JSON records
}

// LoadProfile reads a YAML profile file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	p, err := ParseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", path, err)
	}
	return p, nil
}

// ParseProfile decodes a YAML profile. Unknown fields and roles are errors.
func ParseProfile(data []byte) (*Profile, error) {
	p := new(Profile)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	columns := make(map[fifo.Role]string, len(p.Columns))
	for r, header := range p.Columns {
		role, err := fifo.ParseRole(string(r))
		if err != nil {
			return nil, err
		}
		columns[role] = strings.TrimSpace(header)
	}
	p.Columns = columns

	if utf8.RuneCountInString(p.Comma) > 1 {
		return nil, fmt.Errorf("comma must be a single character, got %q", p.Comma)
	}
	return p, nil
}

// Options returns the reader options of the profile. A nil profile has none.
func (p *Profile) Options() Options {
	if p == nil {
		return Options{}
	}
	opts := Options{Sheet: p.Sheet, Records: p.Records}
	if p.Comma != "" {
		opts.Comma, _ = utf8.DecodeRuneInString(p.Comma)
	}
	return opts
}

// ApplyKeywords returns kw with the keywords set by the profile.
func (p *Profile) ApplyKeywords(kw fifo.Keywords) fifo.Keywords {
	if p == nil {
		return kw
	}
	if strings.TrimSpace(p.Keywords.Buy) != "" {
		kw.Buy = p.Keywords.Buy
	}
	if strings.TrimSpace(p.Keywords.Sell) != "" {
		kw.Sell = p.Keywords.Sell
	}
	return kw
}

// Mapping resolves the profile columns against headers, on top of AutoMap(headers).
// Header names match case-insensitively.
func (p *Profile) Mapping(headers []string) (fifo.Mapping, error) {
	m := AutoMap(headers)
	if p == nil {
		return m, nil
	}
	for _, role := range fifo.Roles {
		name, ok := p.Columns[role]
		if !ok || name == "" {
			continue
		}
		i := HeaderIndex(headers, name)
		if i < 0 {
			return nil, fmt.Errorf("no column named %q for %q", name, role)
		}
		m[role] = i
	}
	return m, nil
}

// HeaderIndex returns the index of the header named name, or -1.
func HeaderIndex(headers []string, name string) int {
	name = strings.TrimSpace(name)
	for i, h := range headers {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}
