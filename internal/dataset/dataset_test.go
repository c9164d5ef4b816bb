package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"mooddine/internal/model"
)

const diningHeader = "restaurant name,restaurant type,avg cost (two people),rate (out of 5),num of ratings,online_order,table booking,area,local address\n"

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dining.csv")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestNearby(t *testing.T) {
	tbl := Nearby()
	if tbl.Len() != 6 {
		t.Fatalf("got %d rows, want 6", tbl.Len())
	}
	if tbl.Variant() != model.VariantNearby {
		t.Fatalf("variant = %q", tbl.Variant())
	}
	want := []model.Mood{"work", "budget", "date", "quick_bite"}
	if got := tbl.Moods(); !reflect.DeepEqual(got, want) {
		t.Fatalf("moods = %v, want %v", got, want)
	}
	rows := tbl.Rows()
	if rows[4].Name != "Quick Snacks" || rows[4].IsOpen {
		t.Fatalf("unexpected row 4: %+v", rows[4])
	}
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, diningHeader+
		"Third Wave,Cafe,800,4.5,1200,Yes,No,Indiranagar,100ft Road\n"+
		"Toit,\"Microbrewery, Pub\",\"1,500\",4.7/5,9000,no,yes,Indiranagar,CMH Road\n"+
		"Truffles,Casual Dining,250,4.2,7000,1,0,Koramangala,5th Block\n")

	tbl, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if tbl.Len() != 3 || tbl.Variant() != model.VariantDining {
		t.Fatalf("got %d rows variant %q", tbl.Len(), tbl.Variant())
	}
	if tbl.MaxCost() != 1500 {
		t.Fatalf("max cost = %v, want 1500", tbl.MaxCost())
	}
	if got, want := tbl.Areas(), []string{"Indiranagar", "Koramangala"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("areas = %v, want %v", got, want)
	}

	rows := tbl.Rows()
	toit := rows[1]
	if toit.Category != "Microbrewery, Pub" || toit.Rating != 4.7 || toit.Votes != 9000 {
		t.Fatalf("unexpected toit row: %+v", toit)
	}
	if toit.OnlineOrder || !toit.TableBooking {
		t.Fatalf("flags not normalized: %+v", toit)
	}
	if !rows[2].OnlineOrder || rows[2].TableBooking {
		t.Fatalf("0/1 flags not normalized: %+v", rows[2])
	}
	if rows[0].Mood != "" {
		t.Fatalf("loader should not derive moods, got %q", rows[0].Mood)
	}
}

func TestLoadCSVHeaderCaseInsensitive(t *testing.T) {
	header := strings.ToUpper(diningHeader)
	path := writeCSV(t, header+"A,Bar,900,4.0,10,Yes,Yes,X,Y\n")
	if _, err := LoadCSV(path); err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadCSVErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		column string
		line   int
	}{
		{"cost", diningHeader + "A,Cafe,cheap,4.0,10,Yes,No,X,Y\n", ColCost, 2},
		{"missing cost", diningHeader + "A,Cafe,,4.0,10,Yes,No,X,Y\n", ColCost, 2},
		{"negative cost", diningHeader + "A,Cafe,-5,4.0,10,Yes,No,X,Y\n", ColCost, 2},
		{"rating", diningHeader + "A,Cafe,100,4.0,10,Yes,No,X,Y\nB,Bar,100,NEW,10,Yes,No,X,Y\n", ColRating, 3},
		{"rating range", diningHeader + "A,Cafe,100,5.5,10,Yes,No,X,Y\n", ColRating, 2},
		{"nan rating", diningHeader + "A,Cafe,100,4.0,10,Yes,No,X,Y\nB,Bar,100,NaN,10,Yes,No,X,Y\n", ColRating, 3},
		{"inf cost", diningHeader + "A,Cafe,100,4.0,10,Yes,No,X,Y\nB,Bar,Inf,4.0,10,Yes,No,X,Y\n", ColCost, 3},
		{"votes", diningHeader + "A,Cafe,100,4.0,many,Yes,No,X,Y\n", ColVotes, 2},
		{"online", diningHeader + "A,Cafe,100,4.0,10,maybe,No,X,Y\n", ColOnlineOrder, 2},
		{"booking", diningHeader + "A,Cafe,100,4.0,10,Yes,?,X,Y\n", ColTableBooking, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(writeCSV(t, tt.body))
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected FieldError, got %v", err)
			}
			if fe.Column != tt.column || fe.Line != tt.line {
				t.Fatalf("got column %q line %d, want %q line %d", fe.Column, fe.Line, tt.column, tt.line)
			}
		})
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	body := "restaurant name,restaurant type\nA,Cafe\n"
	_, err := LoadCSV(writeCSV(t, body))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	for _, body := range []string{"", diningHeader} {
		_, err := LoadCSV(writeCSV(t, body))
		if !errors.Is(err, ErrEmptyDataset) {
			t.Fatalf("body %q: expected ErrEmptyDataset, got %v", body, err)
		}
	}
}

func TestParseFlag(t *testing.T) {
	for _, s := range []string{"Yes", "YES", " y ", "true", "1"} {
		if v, err := ParseFlag(s); err != nil || !v {
			t.Fatalf("ParseFlag(%q) = %v, %v", s, v, err)
		}
	}
	for _, s := range []string{"No", "n", "FALSE", "0"} {
		if v, err := ParseFlag(s); err != nil || v {
			t.Fatalf("ParseFlag(%q) = %v, %v", s, v, err)
		}
	}
	if _, err := ParseFlag(""); err == nil {
		t.Fatalf("ParseFlag(\"\") should fail")
	}
}

func TestParseRejectsNonFinite(t *testing.T) {
	for _, s := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "Infinity"} {
		if v, err := ParseCost(s); err == nil {
			t.Fatalf("ParseCost(%q) = %v, want error", s, v)
		}
		if v, err := ParseRating(s); err == nil {
			t.Fatalf("ParseRating(%q) = %v, want error", s, v)
		}
	}
	if v, err := ParseCost("1,200"); err != nil || v != 1200 {
		t.Fatalf("ParseCost(\"1,200\") = %v, %v", v, err)
	}
	if v, err := ParseRating("4.1/5"); err != nil || v != 4.1 {
		t.Fatalf("ParseRating(\"4.1/5\") = %v, %v", v, err)
	}
}

func TestTableRowsAreCopies(t *testing.T) {
	tbl := Nearby()
	rows := tbl.Rows()
	rows[0].Name = "changed"
	if tbl.Rows()[0].Name != "Cafe Aroma" {
		t.Fatalf("table mutated through Rows()")
	}
}

func TestHandleLoadsOnce(t *testing.T) {
	calls := 0
	h := NewHandle(func() (*Table, error) {
		calls++
		return Nearby(), nil
	})
	first, err := h.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, _ := h.Get()
	if calls != 1 {
		t.Fatalf("loader called %d times, want 1", calls)
	}
	if first != second {
		t.Fatalf("Get returned different tables")
	}
}

func TestHandleKeepsError(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	h := NewHandle(func() (*Table, error) {
		calls++
		return nil, boom
	})
	for i := 0; i < 2; i++ {
		if _, err := h.Get(); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	}
	if calls != 1 {
		t.Fatalf("loader called %d times, want 1", calls)
	}
}

func TestOpen(t *testing.T) {
	if _, err := Open(model.VariantDining, ""); err == nil {
		t.Fatalf("expected error for dining without path")
	}
	if _, err := Open("other", ""); err == nil {
		t.Fatalf("expected error for unknown variant")
	}
	h, err := Open(model.VariantNearby, "")
	if err != nil {
		t.Fatalf("Open nearby: %v", err)
	}
	tbl, err := h.Get()
	if err != nil || tbl.Len() != 6 {
		t.Fatalf("nearby handle: %v, %v", tbl, err)
	}
}

func TestLoadBundledSample(t *testing.T) {
	table, err := LoadCSV(filepath.Join("..", "..", "data", "dining_sample.csv"))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if table.Len() != 12 {
		t.Fatalf("rows = %d", table.Len())
	}
	if table.MaxCost() != 3000 {
		t.Fatalf("max cost = %v", table.MaxCost())
	}
	if areas := table.Areas(); len(areas) != 6 || areas[0] != "Basavanagudi" {
		t.Fatalf("areas = %v", areas)
	}
}
