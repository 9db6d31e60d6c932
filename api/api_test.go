package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/etnz/fifo"
	"github.com/etnz/fifo/sheet"
	"github.com/google/go-cmp/cmp"
)

const tradesCSV = `Trade Date,Value Date,B/S,Nominal,TRN,CNC,PCK
2021-04-30,2021-05-01,Buy,30,T1,1,P
2021-05-01,2021-05-02,Buy,40,T2,2,P
2021-05-02,2021-05-03,Sell,50,T3,3,P
2021-05-02,2021-05-03,Transfer,50,T4,4,P
`

// post is a helper for test to send body to the API and record the response.
func post(t *testing.T, s *Server, target, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

// decode is a helper for test to decode a JSON response.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestLots(t *testing.T) {
	s := NewServer(Config{})
	rec := post(t, s, "/api/lots?filename=trades.csv", "text/csv", strings.NewReader(tradesCSV))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}

	resp := decode[LotsResponse](t, rec)
	if resp.Rows != 4 || resp.Transactions != 3 || resp.Dropped != 1 {
		t.Errorf("rows = %d, transactions = %d, dropped = %d, want 4, 3, 1", resp.Rows, resp.Transactions, resp.Dropped)
	}
	if len(resp.Lots) != 2 {
		t.Fatalf("got %d lots, want 2", len(resp.Lots))
	}
	if lot := resp.Lots[1]; lot.Status != fifo.Open || !lot.RemainingQty.Equal(fifo.Q(20)) || len(lot.Contributors) != 2 {
		t.Errorf("second lot = %+v, want open with 20 remaining and 2 contributors", lot)
	}
	if !resp.Summary.OpenLong.Equal(fifo.Q(20)) {
		t.Errorf("summary open long = %v, want 20", resp.Summary.OpenLong)
	}
}

func TestLots_StatusFilter(t *testing.T) {
	s := NewServer(Config{})
	testCases := []struct {
		status string
		want   []int
	}{
		{"", []int{1, 2}},
		{"all", []int{1, 2}},
		{"open", []int{2}},
		{"closed", []int{1}},
	}
	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			rec := post(t, s, "/api/lots?filename=trades.csv&status="+tc.status, "text/csv", strings.NewReader(tradesCSV))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
			}
			var ids []int
			for _, l := range decode[LotsResponse](t, rec).Lots {
				ids = append(ids, l.ID)
			}
			if diff := cmp.Diff(tc.want, ids); diff != "" {
				t.Errorf("lot ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLots_CSV(t *testing.T) {
	s := NewServer(Config{})
	rec := post(t, s, "/api/lots?filename=trades.csv&format=csv", "text/csv", strings.NewReader(tradesCSV))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename=trades_lots.csv` {
		t.Errorf("Content-Disposition = %q", got)
	}
	records, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("response is not CSV: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("got %d CSV records, want a header and 4 contributor rows", len(records))
	}
	if diff := cmp.Diff(fifo.ContributorHeader, records[0]); diff != "" {
		t.Errorf("CSV header mismatch (-want +got):\n%s", diff)
	}
}

func TestLots_Multipart(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range map[string]string{"buy": "achat", "sell": "vente", "date": "trade date"} {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	fw, err := mw.CreateFormFile("file", "ordres.csv")
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(fw, strings.NewReplacer("Buy", "Achat", "Sell", "Vente").Replace(tradesCSV))
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	s := NewServer(Config{})
	rec := post(t, s, "/api/lots", mw.FormDataContentType(), &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}
	resp := decode[LotsResponse](t, rec)
	if len(resp.Lots) != 2 {
		t.Fatalf("got %d lots, want 2", len(resp.Lots))
	}
	// The trade date column was picked instead of the value date.
	if got := resp.Lots[0].Date.String(); got != "2021-04-30" {
		t.Errorf("first lot date = %s, want 2021-04-30", got)
	}
}

func TestLots_ServerProfile(t *testing.T) {
	p, err := sheet.ParseProfile([]byte("keywords:\n  buy: achat\n  sell: vente\n"))
	if err != nil {
		t.Fatal(err)
	}
	s := NewServer(Config{Profile: p})
	input := strings.NewReplacer("Buy", "achat", "Sell", "vente").Replace(tradesCSV)
	rec := post(t, s, "/api/summary?filename=trades.csv", "text/csv", strings.NewReader(input))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}
	resp := decode[LotsResponse](t, rec)
	if resp.Summary.Lots != 2 || resp.Lots != nil {
		t.Errorf("summary response = %+v, want 2 lots summarized and none listed", resp)
	}
}

func TestErrors(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"unsupported format", "/api/lots?filename=trades.pdf", tradesCSV, http.StatusUnsupportedMediaType, "unsupported_format"},
		{"empty body", "/api/lots?filename=trades.csv", "", http.StatusUnprocessableEntity, "no_rows"},
		{"ambiguous keywords", "/api/lots?filename=trades.csv&buy=s&sell=sell", tradesCSV, http.StatusBadRequest, "invalid_keywords"},
		{"missing roles", "/api/lots?filename=trades.csv", "Date,B/S,Nominal\n2021-05-01,buy,1\n", http.StatusUnprocessableEntity, "invalid_mapping"},
		{"unknown header", "/api/lots?filename=trades.csv&cnc=Contract", tradesCSV, http.StatusUnprocessableEntity, "invalid_mapping"},
		{"bad status", "/api/lots?filename=trades.csv&status=pending", tradesCSV, http.StatusBadRequest, "invalid_request"},
		{"bad format", "/api/lots?filename=trades.csv&format=xml", tradesCSV, http.StatusBadRequest, "invalid_request"},
		{"bad json", "/api/lots?filename=trades.json", "{", http.StatusBadRequest, "invalid_file"},
		{"unknown route", "/api/trades", tradesCSV, http.StatusNotFound, "not_found"},
	}
	s := NewServer(Config{})
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, s, tc.target, "text/csv", strings.NewReader(tc.body))
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tc.wantStatus, rec.Body)
			}
			if got := decode[ErrorResponse](t, rec); got.Error != tc.wantCode || got.Message == "" {
				t.Errorf("error = %+v, want code %q with a message", got, tc.wantCode)
			}
		})
	}
}

func TestErrors_UploadTooLarge(t *testing.T) {
	s := NewServer(Config{MaxUploadBytes: 16})
	rec := post(t, s, "/api/lots?filename=trades.csv", "text/csv", strings.NewReader(tradesCSV))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d: %s", rec.Code, http.StatusRequestEntityTooLarge, rec.Body)
	}
}

func TestMapping(t *testing.T) {
	s := NewServer(Config{})
	rec := post(t, s, "/api/mapping?filename=trades.csv", "text/csv", strings.NewReader(tradesCSV))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}
	resp := decode[MappingResponse](t, rec)
	want := map[string]int{"date": 1, "direction": 2, "nominal": 3, "trn": 4, "cnc": 5, "pck": 6}
	if diff := cmp.Diff(want, resp.Mapping); diff != "" {
		t.Errorf("mapping mismatch (-want +got):\n%s", diff)
	}
	if len(resp.Problems) != 0 {
		t.Errorf("problems = %q, want none", resp.Problems)
	}
	if resp.Rows != 4 || len(resp.Preview) != 4 || resp.Preview[0].Row != 2 {
		t.Errorf("preview = %+v, want 4 rows starting at row 2", resp.Preview)
	}
}

func TestMapping_Problems(t *testing.T) {
	s := NewServer(Config{})
	rec := post(t, s, "/api/mapping?filename=trades.csv", "text/csv", strings.NewReader("Date,B/S,Nominal\n2021-05-01,buy,1\n"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}
	if got := decode[MappingResponse](t, rec).Problems; len(got) != 3 {
		t.Errorf("problems = %q, want the 3 missing roles", got)
	}
}

func TestHealthz(t *testing.T) {
	server := httptest.NewServer(NewServer(Config{}).Router())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz returned unexpected error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	get, err := http.Get(server.URL + "/api/lots")
	if err != nil {
		t.Fatalf("GET /api/lots returned unexpected error: %v", err)
	}
	defer get.Body.Close()
	if get.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/lots status = %d, want %d", get.StatusCode, http.StatusMethodNotAllowed)
	}
}
