package cli

import (
	"fmt"
	"strings"

	"github.com/craft-agent/craft/internal/authenv"
	"github.com/craft-agent/craft/internal/env"
)

// shellQuote wraps s in single quotes for safe use in shell export
// lines, escaping embedded single quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// shellLines renders the current state of the managed auth slots as
// eval-able shell statements: an export for every populated slot, an
// unset for every empty one. Emitting unsets for the empty slots is
// what carries the clear-then-set contract into the parent shell.
func shellLines(st env.Store) []string {
	lines := make([]string, 0, 4)
	for _, name := range authenv.Slots() {
		if val := st.Get(name); val != "" {
			lines = append(lines, fmt.Sprintf("export %s=%s", name, shellQuote(val)))
		} else {
			lines = append(lines, "unset "+name)
		}
	}
	return lines
}

// mask hides a secret for display, keeping a short prefix so key kinds
// (sk-ant-api vs sk-ant-oat) stay recognizable.
func mask(v string) string {
	if v == "" {
		return ""
	}
	if len(v) <= 12 {
		return "(set)"
	}
	return v[:10] + "…"
}
