package services

import (
	"encoding/json"
	"testing"
)

func TestOptionalString_Absent(t *testing.T) {
	var payload struct {
		Description OptionalString `json:"description"`
	}

	if err := json.Unmarshal([]byte(`{}`), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.Description.Set {
		t.Error("absent field should leave Set false")
	}
}

func TestOptionalString_Null(t *testing.T) {
	var payload struct {
		Description OptionalString `json:"description"`
	}

	if err := json.Unmarshal([]byte(`{"description": null}`), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !payload.Description.Set {
		t.Error("explicit null should mark the field as set")
	}
	if payload.Description.Value != nil {
		t.Errorf("explicit null should clear the value, got %q", *payload.Description.Value)
	}
}

func TestOptionalString_Value(t *testing.T) {
	var payload struct {
		Description OptionalString `json:"description"`
	}

	if err := json.Unmarshal([]byte(`{"description": "hello"}`), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !payload.Description.Set {
		t.Error("present field should mark the field as set")
	}
	if payload.Description.Value == nil || *payload.Description.Value != "hello" {
		t.Error("value should round-trip")
	}
}

func TestOptionalString_Marshal(t *testing.T) {
	v := "hello"

	b, err := json.Marshal(OptionalString{Set: true, Value: &v})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `"hello"` {
		t.Errorf("marshal = %s, expected %q", b, `"hello"`)
	}

	b, err = json.Marshal(OptionalString{Set: true})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("marshal = %s, expected null", b)
	}
}
