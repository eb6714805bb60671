package main

import (
	"strings"
	"testing"

	"github.com/oukeidos/gemtrans/internal/auth"
)

type keyStubs struct {
	promptCalls int
	keyCalls    int
	envCalls    int
}

func withKeyStubs(t *testing.T, terminal bool, promptVal string, keychainVal string, envVal string) (*keyStubs, func()) {
	t.Helper()
	stubs := &keyStubs{}

	prevIsTerminal := isTerminal
	prevPrompt := promptForKey
	prevGetKey := getKey
	prevGetEnv := getEnvKey

	isTerminal = func(_ int) bool { return terminal }
	promptForKey = func(_ string) (string, error) {
		stubs.promptCalls++
		return promptVal, nil
	}
	getKey = func(_ bool) (string, string) {
		stubs.keyCalls++
		if keychainVal == "" {
			return "", ""
		}
		return keychainVal, auth.SourceKeychain
	}
	getEnvKey = func() (string, bool) {
		stubs.envCalls++
		if envVal == "" {
			return "", false
		}
		return envVal, true
	}

	restore := func() {
		isTerminal = prevIsTerminal
		promptForKey = prevPrompt
		getKey = prevGetKey
		getEnvKey = prevGetEnv
	}

	return stubs, restore
}

func TestResolveAPIKey_ConfigWins(t *testing.T) {
	stubs, restore := withKeyStubs(t, true, "prompt-key", "keychain-key", "env-key")
	defer restore()

	key, source, err := resolveAPIKey(" config-key ", true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "config-key" || source != auth.SourceConfig {
		t.Fatalf("got key=%q source=%q", key, source)
	}
	if stubs.keyCalls != 0 || stubs.promptCalls != 0 {
		t.Fatalf("expected no keychain or prompt lookups, got %+v", stubs)
	}
}

func TestResolveAPIKey_KeychainFallback(t *testing.T) {
	stubs, restore := withKeyStubs(t, true, "", "keychain-key", "env-key")
	defer restore()

	key, source, err := resolveAPIKey("", true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "keychain-key" || source != auth.SourceKeychain {
		t.Fatalf("expected keychain key/source, got key=%q source=%q", key, source)
	}
	if stubs.envCalls != 0 {
		t.Fatalf("expected no env calls, got envCalls=%d", stubs.envCalls)
	}
}

func TestResolveAPIKey_EnvFallbackWhenAllowed(t *testing.T) {
	stubs, restore := withKeyStubs(t, false, "", "", "env-key")
	defer restore()

	key, source, err := resolveAPIKey("", true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "env-key" || source != auth.SourceEnv {
		t.Fatalf("expected env key/source, got key=%q source=%q", key, source)
	}
	if stubs.envCalls == 0 {
		t.Fatalf("expected env call")
	}
}

func TestResolveAPIKey_EnvIgnoredByDefault(t *testing.T) {
	stubs, restore := withKeyStubs(t, false, "", "", "env-key")
	defer restore()

	key, _, err := resolveAPIKey("", false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "" || stubs.envCalls != 0 {
		t.Fatalf("expected env to be skipped, got key=%q envCalls=%d", key, stubs.envCalls)
	}
}

func TestResolveAPIKey_PromptWhenTerminal(t *testing.T) {
	stubs, restore := withKeyStubs(t, true, " typed-key\n", "", "")
	defer restore()

	key, source, err := resolveAPIKey("", false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "typed-key" || source != auth.SourcePrompt || stubs.promptCalls != 1 {
		t.Fatalf("got key=%q source=%q prompts=%d", key, source, stubs.promptCalls)
	}
}

func TestResolveAPIKey_EnvOnly(t *testing.T) {
	stubs, restore := withKeyStubs(t, true, "prompt-key", "keychain-key", "")
	defer restore()

	if _, _, err := resolveAPIKey("config-key", false, true); err == nil {
		t.Fatalf("expected env-only error")
	}
	if stubs.keyCalls != 0 || stubs.promptCalls != 0 {
		t.Fatalf("env-only must not consult other sources: %+v", stubs)
	}
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"args joined", []string{"Hello", "world"}, "ignored", "Hello world"},
		{"stdin when no args", nil, "from stdin\n", "from stdin"},
		{"dash reads stdin", []string{"-"}, "dash\r\n", "dash"},
		{"inner newlines kept", nil, "a\nb\n\n", "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readInput(tt.args, strings.NewReader(tt.stdin))
			if err != nil {
				t.Fatalf("readInput: %v", err)
			}
			if got != tt.want {
				t.Fatalf("readInput = %q, want %q", got, tt.want)
			}
		})
	}
}
