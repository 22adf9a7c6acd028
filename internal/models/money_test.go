package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyRoundsHalfUp(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.RequireFromString("10.995"))
	if m.String() != "11.00" {
		t.Fatalf("round want 11.00 got %s", m.String())
	}
}

func TestMoneyTimesKeepsPrecision(t *testing.T) {
	got := MustMoney("10.99").Times(2).Add(MustMoney("24.99").Times(1))
	if !got.Equal(decimal.RequireFromString("46.97")) {
		t.Fatalf("sum want 46.97 got %s", got.String())
	}
}

func TestMoneyUnmarshalAcceptsNumberAndString(t *testing.T) {
	var payload struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a": 19.999, "b": "5.5"}`), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.A.String() != "20.00" {
		t.Fatalf("a want 20.00 got %s", payload.A.String())
	}
	if payload.B.String() != "5.50" {
		t.Fatalf("b want 5.50 got %s", payload.B.String())
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `{"a":"20.00","b":"5.50"}` {
		t.Fatalf("unexpected json: %s", out)
	}
}
