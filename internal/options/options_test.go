package options

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/oukeidos/gemtrans/internal/apperrors"
	"github.com/oukeidos/gemtrans/internal/gemini"
	"github.com/spf13/viper"
)

func TestParseFlag(t *testing.T) {
	on := []string{"enable", "true", "TRUE", " on ", "yes", "1", "Enabled"}
	off := []string{"", "disable", "false", "off", "no", "0"}
	for _, s := range on {
		if got, err := ParseFlag(s); err != nil || !got {
			t.Errorf("ParseFlag(%q) = %v, %v; want true", s, got, err)
		}
	}
	for _, s := range off {
		if got, err := ParseFlag(s); err != nil || got {
			t.Errorf("ParseFlag(%q) = %v, %v; want false", s, got, err)
		}
	}
	if _, err := ParseFlag("maybe"); err == nil {
		t.Errorf("expected error for unknown switch value")
	}
}

func TestParseThinking(t *testing.T) {
	tests := []struct {
		in   string
		want gemini.ThinkingBudget
	}{
		{"", gemini.ThinkingOff},
		{"disable", gemini.ThinkingOff},
		{"enable", gemini.ThinkingDynamic},
		{"true", gemini.ThinkingDynamic},
		{"-1", gemini.ThinkingDynamic},
		{"0", gemini.FixedThinking(0)},
		{"1024", gemini.FixedThinking(1024)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseThinking(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseThinking(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	for _, bad := range []string{"-2", "lots"} {
		if _, err := ParseThinking(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseTemperature(t *testing.T) {
	got, err := ParseTemperature("0.7")
	if err != nil || got == nil || *got != 0.7 {
		t.Fatalf("ParseTemperature(\"0.7\") = %v, %v", got, err)
	}
	got, err = ParseTemperature("  ")
	if err != nil || got != nil {
		t.Fatalf("expected nil temperature for blank input, got %v, %v", got, err)
	}
	for _, bad := range []string{"hot", "-0.1", "2.5", "NaN"} {
		if _, err := ParseTemperature(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseVariant(t *testing.T) {
	tests := map[string]string{
		"":         "instruct",
		"classic":  "classic",
		"A":        "classic",
		"instruct": "instruct",
		"b":        "instruct",
	}
	for in, want := range tests {
		v, err := ParseVariant(in)
		if err != nil || v.Name != want {
			t.Errorf("ParseVariant(%q) = %q, %v; want %q", in, v.Name, err, want)
		}
	}
	if _, err := ParseVariant("c"); err == nil {
		t.Errorf("expected error for unknown variant")
	}
}

func TestRawOptions(t *testing.T) {
	raw := Raw{
		Endpoint:     " https://proxy.example.com ",
		Model:        "gemini-2.5-pro",
		APIKey:       "k",
		GoogleSearch: "enable",
		Thinking:     "512",
		Temperature:  "0.7",
		Variant:      "classic",
	}
	opts, err := raw.Options()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Endpoint != "https://proxy.example.com" || !opts.GoogleSearch || opts.Thinking != gemini.FixedThinking(512) {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.ResolvedTemperature() != 0.7 || opts.Variant.Name != "classic" {
		t.Fatalf("unexpected temperature/variant: %v %q", opts.ResolvedTemperature(), opts.Variant.Name)
	}
}

func TestRawOptions_CollectsErrors(t *testing.T) {
	_, err := Raw{Variant: "c", Temperature: "warm"}.Options()
	if err == nil {
		t.Fatal("expected error")
	}
	if kind, _ := apperrors.KindOf(err); kind != apperrors.KindConfig {
		t.Fatalf("expected config kind, got %q", kind)
	}
	msg := err.Error()
	if !strings.Contains(msg, KeyVariant) || !strings.Contains(msg, KeyTemperature) {
		t.Fatalf("expected both fields named, got %q", msg)
	}
}

func TestRawOptions_UnknownSwitchesTurnOff(t *testing.T) {
	tests := []struct {
		name   string
		search string
		think  string
	}{
		{"search maybe", "maybe", ""},
		{"thinking auto", "", "auto"},
		{"thinking below dynamic", "enable", "-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := FromMap(map[string]any{
				"apiKey":       "k",
				"googleSearch": tt.search,
				"Thinking":     tt.think,
			}).Options()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if opts.Thinking != gemini.ThinkingOff {
				t.Fatalf("expected thinking off, got %v", opts.Thinking)
			}

			req, err := gemini.BuildRequest("x", "a", "b", opts)
			if err != nil {
				t.Fatalf("BuildRequest: %v", err)
			}
			var body map[string]any
			if err := json.Unmarshal(req.Body, &body); err != nil {
				t.Fatal(err)
			}
			_, hasTools := body["tools"]
			if hasTools != (tt.search == "enable") {
				t.Fatalf("tools present=%v for googleSearch=%q", hasTools, tt.search)
			}
			if _, ok := body["generationConfig"].(map[string]any)["thinkingConfig"]; ok {
				t.Fatalf("unexpected thinkingConfig for Thinking=%q", tt.think)
			}
		})
	}
}

func TestFromMap(t *testing.T) {
	raw := FromMap(map[string]any{
		"modelName":    "gemini-2.0-flash",
		"apiKey":       "k",
		"googleSearch": true,
		"Thinking":     float64(-1),
		"temperature":  0.7,
		"endpoint":     nil,
	})
	if raw.Model != "gemini-2.0-flash" || raw.GoogleSearch != "true" || raw.Thinking != "-1" || raw.Temperature != "0.7" {
		t.Fatalf("unexpected raw: %+v", raw)
	}
	if raw.Endpoint != "" {
		t.Fatalf("nil endpoint should stay empty, got %q", raw.Endpoint)
	}

	opts, err := raw.Options()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opts.GoogleSearch || opts.Thinking != gemini.ThinkingDynamic || *opts.Temperature != 0.7 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestFromMap_ModelPrecedence(t *testing.T) {
	raw := FromMap(map[string]any{"model": "a", "modelName": "b"})
	if raw.Model != "a" {
		t.Fatalf("expected model to win over modelName, got %q", raw.Model)
	}
}

func TestLoad(t *testing.T) {
	v := viper.New()
	v.Set("apiKey", "k")
	v.Set("thinking", "enable")
	v.Set("temperature", 1.2)
	v.Set("modelName", "gemini-2.5-flash")

	raw := Load(v)
	if raw.APIKey != "k" || raw.Thinking != "enable" || raw.Temperature != "1.2" || raw.Model != "gemini-2.5-flash" {
		t.Fatalf("unexpected raw: %+v", raw)
	}
}
