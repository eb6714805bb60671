// Package options converts loosely typed host configuration into gemini.Options.
//
// Hosts hand over strings ("enable", "true", "0.7", "1024") or JSON scalars.
// Everything is parsed here once, so the translator only ever sees typed values.
package options

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/oukeidos/gemtrans/internal/apperrors"
	"github.com/oukeidos/gemtrans/internal/gemini"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config keys, named after the host plugin fields.
const (
	KeyEndpoint     = "endpoint"
	KeyModel        = "model"
	KeyModelName    = "modelName"
	KeyAPIKey       = "apiKey"
	KeyGoogleSearch = "googleSearch"
	KeyThinking     = "Thinking"
	KeyTemperature  = "temperature"
	KeyVariant      = "variant"
)

const (
	MinTemperature = 0.0
	MaxTemperature = 2.0
)

var trueWords = map[string]bool{
	"enable":  true,
	"enabled": true,
	"true":    true,
	"on":      true,
	"yes":     true,
	"1":       true,
}

var falseWords = map[string]bool{
	"":         true,
	"disable":  true,
	"disabled": true,
	"false":    true,
	"off":      true,
	"no":       true,
	"0":        true,
}

// ParseFlag parses a switch value. Both "enable" and "true" turn it on.
func ParseFlag(s string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if trueWords[v] {
		return true, nil
	}
	if falseWords[v] {
		return false, nil
	}
	return false, fmt.Errorf("invalid switch value %q (use enable/disable or true/false)", s)
}

// ParseThinking accepts a switch word or an integer budget; -1 means dynamic.
// Integers are always budgets, so "0" sends thinkingBudget 0 rather than
// switching thinking off.
func ParseThinking(s string) (gemini.ThinkingBudget, error) {
	v := strings.TrimSpace(s)
	if n, err := strconv.Atoi(v); err == nil {
		if n < -1 {
			return gemini.ThinkingOff, fmt.Errorf("invalid thinking budget %d (must be -1 or >= 0)", n)
		}
		return gemini.FixedThinking(n), nil
	}
	on, err := ParseFlag(v)
	if err != nil {
		return gemini.ThinkingOff, fmt.Errorf("invalid thinking value %q (use enable/disable or a token budget)", s)
	}
	if on {
		return gemini.ThinkingDynamic, nil
	}
	return gemini.ThinkingOff, nil
}

// ParseTemperature returns nil for an empty string so the variant default applies.
func ParseTemperature(s string) (*float64, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("invalid temperature %q", s)
	}
	if f < MinTemperature || f > MaxTemperature {
		return nil, fmt.Errorf("temperature %v out of range [%v, %v]", f, MinTemperature, MaxTemperature)
	}
	return &f, nil
}

// ParseVariant resolves a variant name; empty selects gemini.DefaultVariant.
func ParseVariant(s string) (gemini.Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return gemini.DefaultVariant, nil
	case "classic", "a":
		return gemini.VariantClassic, nil
	case "instruct", "b":
		return gemini.VariantInstruct, nil
	default:
		return gemini.Variant{}, fmt.Errorf("unknown variant %q (use classic or instruct)", s)
	}
}

// Raw is the host's unparsed configuration.
type Raw struct {
	Endpoint     string
	Model        string
	APIKey       string
	GoogleSearch string
	Thinking     string
	Temperature  string
	Variant      string
}

// Options parses r. Temperature and variant errors are reported together as one
// config error; googleSearch and Thinking fall back to off.
func (r Raw) Options() (gemini.Options, error) {
	var errs []string

	// Unrecognised switch values leave the feature off rather than failing the call.
	search, err := ParseFlag(r.GoogleSearch)
	if err != nil {
		slog.Warn("Ignoring unrecognised setting", "field", KeyGoogleSearch, "error", err)
		search = false
	}
	thinking, err := ParseThinking(r.Thinking)
	if err != nil {
		slog.Warn("Ignoring unrecognised setting", "field", KeyThinking, "error", err)
		thinking = gemini.ThinkingOff
	}
	temp, err := ParseTemperature(r.Temperature)
	if err != nil {
		errs = append(errs, KeyTemperature+": "+err.Error())
	}
	variant, err := ParseVariant(r.Variant)
	if err != nil {
		errs = append(errs, KeyVariant+": "+err.Error())
	}
	if len(errs) > 0 {
		msg := "Invalid configuration: " + strings.Join(errs, "; ")
		return gemini.Options{}, apperrors.New(apperrors.KindConfig, msg, nil)
	}

	return gemini.Options{
		Endpoint:     strings.TrimSpace(r.Endpoint),
		Model:        strings.TrimSpace(r.Model),
		APIKey:       strings.TrimSpace(r.APIKey),
		GoogleSearch: search,
		Thinking:     thinking,
		Temperature:  temp,
		Variant:      variant,
	}, nil
}

// FromMap reads Raw from a host config object whose values may be strings,
// numbers, booleans or nil.
func FromMap(m map[string]any) Raw {
	get := func(keys ...string) string {
		for _, k := range keys {
			if v, ok := m[k]; ok && v != nil {
				if s := cast.ToString(v); s != "" {
					return s
				}
			}
		}
		return ""
	}
	return Raw{
		Endpoint:     get(KeyEndpoint),
		Model:        get(KeyModel, KeyModelName),
		APIKey:       get(KeyAPIKey),
		GoogleSearch: get(KeyGoogleSearch),
		Thinking:     get(KeyThinking),
		Temperature:  get(KeyTemperature),
		Variant:      get(KeyVariant),
	}
}

// Load reads Raw from v. Viper keys are case-insensitive, so "thinking" and
// "Thinking" resolve to the same value.
func Load(v *viper.Viper) Raw {
	str := func(keys ...string) string {
		for _, k := range keys {
			if v.IsSet(k) {
				if s := cast.ToString(v.Get(k)); s != "" {
					return s
				}
			}
		}
		return ""
	}
	return Raw{
		Endpoint:     str(KeyEndpoint),
		Model:        str(KeyModel, KeyModelName),
		APIKey:       str(KeyAPIKey),
		GoogleSearch: str(KeyGoogleSearch),
		Thinking:     str(KeyThinking),
		Temperature:  str(KeyTemperature),
		Variant:      str(KeyVariant),
	}
}
