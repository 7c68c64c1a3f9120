package inspector

import (
	"testing"

	"github.com/pthm-cable/aquarium/components"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag    string
		widget Widget
		opts   map[string]string
	}{
		{"", WidgetAuto, map[string]string{}},
		{"bar,max:1", WidgetBar, map[string]string{"max": "1"}},
		{"label,fmt:%.1f", WidgetLabel, map[string]string{"fmt": "%.1f"}},
		{"skip", WidgetSkip, map[string]string{}},
		{"bool", WidgetBool, map[string]string{}},
		{"mystery", WidgetAuto, map[string]string{}},
	}
	for _, tt := range tests {
		widget, opts := ParseTag(tt.tag)
		if widget != tt.widget {
			t.Errorf("ParseTag(%q): expected widget %d, got %d", tt.tag, tt.widget, widget)
		}
		if len(opts) != len(tt.opts) {
			t.Errorf("ParseTag(%q): expected %d options, got %d", tt.tag, len(tt.opts), len(opts))
		}
		for k, v := range tt.opts {
			if opts[k] != v {
				t.Errorf("ParseTag(%q): expected %s=%s, got %s", tt.tag, k, v, opts[k])
			}
		}
	}
}

func TestExtractFieldsFish(t *testing.T) {
	fish := &components.Fish{
		Kind:      components.KindAngelfish,
		BaseSpeed: 0.6,
		Heading:   -1,
		Mirrored:  false,
	}

	fields := ExtractFields(fish)
	if len(fields) != 6 {
		t.Fatalf("expected 6 fields, got %d", len(fields))
	}
	if fields[0].Name != "Kind" || FormatValue(fields[0].Value, fields[0].Options["fmt"]) != "angelfish" {
		t.Errorf("expected Kind=angelfish, got %s=%v", fields[0].Name, fields[0].Value)
	}
	if fields[1].Widget != WidgetBar || GetMax(fields[1].Options) != 1 {
		t.Errorf("expected BaseSpeed bar with max 1, got widget %d max %v", fields[1].Widget, GetMax(fields[1].Options))
	}
	if got := FormatValue(fields[2].Value, fields[2].Options["fmt"]); got != "-1" {
		t.Errorf("expected heading -1, got %s", got)
	}
	if fields[5].Widget != WidgetBool {
		t.Errorf("expected Mirrored as bool widget, got %d", fields[5].Widget)
	}
}

func TestExtractFieldsSkipsAndAutoDetects(t *testing.T) {
	type sample struct {
		Visible bool
		Count   int
		Hidden  float32 `inspect:"skip"`
		private int
	}

	fields := ExtractFields(sample{Visible: true, Count: 3, private: 1})
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Widget != WidgetBool {
		t.Errorf("expected bool auto-detected, got %d", fields[0].Widget)
	}
	if fields[1].Widget != WidgetLabel {
		t.Errorf("expected label auto-detected, got %d", fields[1].Widget)
	}

	var nilFish *components.Fish
	if ExtractFields(nilFish) != nil {
		t.Error("expected nil pointer to yield no fields")
	}
	if ExtractFields(42) != nil {
		t.Error("expected non-struct to yield no fields")
	}
}

func TestGetFloatValue(t *testing.T) {
	if v, ok := GetFloatValue(int32(7)); !ok || v != 7 {
		t.Errorf("expected 7, got %v %v", v, ok)
	}
	if _, ok := GetFloatValue("x"); ok {
		t.Error("expected string to be rejected")
	}
	if GetMax(map[string]string{"max": "bad"}) != 1 {
		t.Error("expected bad max to default to 1")
	}
}
