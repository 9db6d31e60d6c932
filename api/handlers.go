package api

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/etnz/fifo"
	"github.com/etnz/fifo/renderer"
	"github.com/etnz/fifo/sheet"
)

// LotsResponse is the JSON body of POST /api/lots.
type LotsResponse struct {
	Rows         int          `json:"rows"`
	Transactions int          `json:"transactions"`
	Dropped      int          `json:"dropped"`
	Summary      fifo.Summary `json:"summary"`
	Lots         []fifo.Lot   `json:"lots"`
}

// MappingResponse is the JSON body of POST /api/mapping.
type MappingResponse struct {
	Headers  []string        `json:"headers"`
	Mapping  map[string]int  `json:"mapping"`
	Problems []string        `json:"problems,omitempty"`
	Rows     int             `json:"rows"`
	Preview  []PreviewRecord `json:"preview"`
}

// PreviewRecord is one data row of the mapping preview.
type PreviewRecord struct {
	Row    int      `json:"row"`
	Values []string `json:"values"`
}

// upload is a parsed request: the table and how to read it.
type upload struct {
	name    string
	table   fifo.Table
	profile *sheet.Profile
	params  func(string) string
}

func (s *Server) handleLots(w http.ResponseWriter, r *http.Request) {
	up, err := s.readUpload(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	filter, err := fifo.ParseStatusFilter(up.params("status"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", errRequest, err))
		return
	}
	format := strings.ToLower(up.params("format"))
	if format != "" && format != "json" && format != "csv" {
		writeError(w, fmt.Errorf("%w: unknown format %q", errRequest, format))
		return
	}

	res, err := s.compute(up)
	if err != nil {
		writeError(w, err)
		return
	}
	lots := fifo.FilterLots(res.Lots, filter)

	if format == "csv" {
		base := strings.TrimSuffix(filepath.Base(up.name), filepath.Ext(up.name))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": base + "_lots.csv"}))
		w.WriteHeader(http.StatusOK)
		if err := fifo.EncodeContributorsCSV(w, lots); err != nil {
			slog.Error("failed to write CSV response", "error", err)
		}
		return
	}
	if lots == nil {
		lots = []fifo.Lot{}
	}
	writeJSON(w, http.StatusOK, LotsResponse{
		Rows:         res.Rows,
		Transactions: res.Transactions,
		Dropped:      res.Dropped(),
		Summary:      res.Summary,
		Lots:         lots,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	up, err := s.readUpload(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.compute(up)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Rows         int          `json:"rows"`
		Transactions int          `json:"transactions"`
		Dropped      int          `json:"dropped"`
		Summary      fifo.Summary `json:"summary"`
	}{res.Rows, res.Transactions, res.Dropped(), res.Summary})
}

func (s *Server) handleMapping(w http.ResponseWriter, r *http.Request) {
	up, err := s.readUpload(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	m, err := up.profile.Mapping(up.table.Headers)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", errMapping, err))
		return
	}

	resp := MappingResponse{
		Headers: up.table.Headers,
		Mapping: make(map[string]int, len(m)),
		Rows:    len(up.table.Rows),
		Preview: []PreviewRecord{},
	}
	for role, col := range m {
		resp.Mapping[string(role)] = col
	}
	if err := m.Validate(len(up.table.Headers)); err != nil {
		for _, e := range unwrapAll(err) {
			resp.Problems = append(resp.Problems, e.Error())
		}
	}
	for i, row := range up.table.Rows {
		if i == renderer.PreviewRows {
			break
		}
		rec := PreviewRecord{Row: up.table.SourceRow(i), Values: make([]string, len(up.table.Headers))}
		for j := range up.table.Headers {
			rec.Values[j] = row.Cell(j).String()
		}
		resp.Preview = append(resp.Preview, rec)
	}
	writeJSON(w, http.StatusOK, resp)
}

// compute resolves the mapping and keywords of up and runs the engine.
func (s *Server) compute(up *upload) (*fifo.Result, error) {
	kw := up.profile.ApplyKeywords(s.cfg.Keywords)
	if v := up.params("buy"); v != "" {
		kw.Buy = v
	}
	if v := up.params("sell"); v != "" {
		kw.Sell = v
	}
	if err := kw.Validate(); err != nil {
		return nil, err
	}

	m, err := up.profile.Mapping(up.table.Headers)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMapping, err)
	}
	if err := m.Validate(len(up.table.Headers)); err != nil {
		return nil, fmt.Errorf("%w: %v", errMapping, err)
	}
	return fifo.Compute(up.table, m, kw)
}

// readUpload reads the uploaded table, with the server profile overridden by the
// request parameters.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	up := &upload{params: r.URL.Query().Get}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
			return nil, fmt.Errorf("%w: failed to parse multipart form: %w", errRequest, err)
		}
		up.params = r.FormValue
	}

	up.profile = s.requestProfile(up.params)

	if mediaType == "multipart/form-data" {
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("%w: missing \"file\" field", errRequest)
		}
		defer file.Close()
		up.name = header.Filename
		up.table, err = sheet.Read(up.name, file, up.profile.Options())
		if err != nil {
			return nil, err
		}
		return up, nil
	}

	up.name = up.params("filename")
	if up.name == "" {
		up.name = defaultName(mediaType)
	}
	table, err := sheet.Read(up.name, r.Body, up.profile.Options())
	if err != nil {
		return nil, err
	}
	up.table = table
	return up, nil
}

// requestProfile copies the server profile and applies the request overrides.
func (s *Server) requestProfile(params func(string) string) *sheet.Profile {
	p := new(sheet.Profile)
	if s.cfg.Profile != nil {
		*p = *s.cfg.Profile
	}
	columns := make(map[fifo.Role]string, len(p.Columns))
	for role, header := range p.Columns {
		columns[role] = header
	}
	for _, role := range fifo.Roles {
		if v := strings.TrimSpace(params(string(role))); v != "" {
			columns[role] = v
		}
	}
	p.Columns = columns
	if v := params("sheet"); v != "" {
		p.Sheet = v
	}
	if v := params("records"); v != "" {
		p.Records = v
	}
	return p
}

// defaultName names a raw body after its media type.
func defaultName(mediaType string) string {
	switch mediaType {
	case "application/json":
		return "upload.json"
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return "upload.xlsx"
	default:
		return "upload.csv"
	}
}

// unwrapAll lists the errors joined in err, or err alone.
func unwrapAll(err error) []error {
	if joined, ok := err.(interface{ WrappedErrors() []error }); ok {
		return joined.WrappedErrors()
	}
	return []error{err}
}
