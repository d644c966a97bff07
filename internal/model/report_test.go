package model

import (
	"testing"
)

func TestNewReport(t *testing.T) {
	t.Parallel()

	r := NewReport("hash", "Hello World")

	if r.Tool != "hash" {
		t.Errorf("expected tool 'hash', got %q", r.Tool)
	}
	if r.Input != "Hello World" {
		t.Errorf("expected input 'Hello World', got %q", r.Input)
	}
	if r.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
	if r.HasRecords() {
		t.Error("expected new report to have no records")
	}
}

func TestReport_AddField(t *testing.T) {
	t.Parallel()

	r := NewReport("jwt", "token")
	r.AddField("header", `{"alg":"HS256"}`)
	r.AddField("payload", `{"sub":"1"}`)

	if len(r.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(r.Fields))
	}

	t.Run("order is preserved", func(t *testing.T) {
		t.Parallel()
		if r.Fields[0].Name != "header" || r.Fields[1].Name != "payload" {
			t.Errorf("expected insertion order, got %v", r.Fields)
		}
	})

	t.Run("Field lookup finds existing", func(t *testing.T) {
		t.Parallel()
		v, ok := r.Field("payload")
		if !ok {
			t.Fatal("expected payload field to exist")
		}
		if v != `{"sub":"1"}` {
			t.Errorf("unexpected value %q", v)
		}
	})

	t.Run("Field lookup misses absent", func(t *testing.T) {
		t.Parallel()
		if _, ok := r.Field("signature"); ok {
			t.Error("expected missing field lookup to fail")
		}
	})
}

func TestReport_Records(t *testing.T) {
	t.Parallel()

	r := NewReport("uuid", "")
	r.SetColumns("uuid", "version")
	r.AddRecord("00000000-0000-4000-8000-000000000000", "4")
	r.AddRecord("00000000-0000-7000-8000-000000000000", "7")

	if !r.HasRecords() {
		t.Fatal("expected HasRecords to be true")
	}
	if len(r.Records) != 2 {
		t.Errorf("expected 2 records, got %d", len(r.Records))
	}
	if len(r.Columns) != 2 {
		t.Errorf("expected 2 columns, got %d", len(r.Columns))
	}
}
