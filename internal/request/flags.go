package request

// Flag names recognized anywhere in the token stream. Presence flags come first,
// then flags that take the following token as their value.
const (
	FlagAlert     = "--alert"
	FlagSounds    = "--sounds"
	FlagSay       = "--say"
	FlagDebug     = "--debug"
	FlagHelp      = "--help"
	FlagHelpShort = "-h"
	FlagVersion   = "--version"

	FlagProject = "--project"
	FlagApp     = "--app"
	FlagSound   = "--sound"
	FlagTitle   = "--title"
	FlagMessage = "--message"
	FlagIcon    = "--icon"
	FlagTimeout = "--timeout"
	FlagConfig  = "--config"
)

// Extract removes the first occurrence of a value flag and the token following it.
// It returns the value and true when the flag carried one. A flag in last position
// is removed and reported as absent. The input slice is never modified.
func Extract(tokens []string, flag string) (string, []string, bool) {
	idx := indexOf(tokens, flag)
	if idx < 0 {
		return "", tokens, false
	}

	rest := make([]string, 0, len(tokens))
	rest = append(rest, tokens[:idx]...)
	if idx+1 >= len(tokens) {
		return "", rest, false
	}
	rest = append(rest, tokens[idx+2:]...)
	return tokens[idx+1], rest, true
}

// ExtractBool removes every occurrence of a presence flag and reports whether any
// was found. The input slice is never modified.
func ExtractBool(tokens []string, flags ...string) ([]string, bool) {
	found := false
	rest := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if contains(flags, tok) {
			found = true
			continue
		}
		rest = append(rest, tok)
	}
	if !found {
		return tokens, false
	}
	return rest, true
}

// Globals are flags consumed before configuration is loaded.
type Globals struct {
	ConfigPath string
	Debug      bool
}

// ExtractGlobals pulls --config and --debug out of tokens.
func ExtractGlobals(tokens []string) (Globals, []string) {
	var g Globals
	g.ConfigPath, tokens, _ = Extract(tokens, FlagConfig)
	tokens, g.Debug = ExtractBool(tokens, FlagDebug)
	return g, tokens
}

func indexOf(tokens []string, s string) int {
	for i, tok := range tokens {
		if tok == s {
			return i
		}
	}
	return -1
}

func contains(list []string, s string) bool {
	return indexOf(list, s) >= 0
}
