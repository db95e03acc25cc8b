package types

import (
	"fmt"

	"github.com/rs/zerolog"
)

// WarningCode identifies a class of recoverable pipeline problem.
type WarningCode string

const (
	WarnManifestUnreadable WarningCode = "MANIFEST_UNREADABLE"
	WarnManifestNoName     WarningCode = "MANIFEST_NO_NAME"
	WarnDuplicateMod       WarningCode = "DUPLICATE_MOD"
	WarnLoadOrderCycle     WarningCode = "LOAD_ORDER_CYCLE"
	WarnConflictUnreadable WarningCode = "CONFLICT_UNREADABLE"
	WarnUnknownMod         WarningCode = "UNKNOWN_MOD"
	WarnSettingsMissing    WarningCode = "SETTINGS_MISSING"
)

// Warning is a recoverable failure local to one mod or file.
type Warning struct {
	Code    WarningCode `json:"code"`
	Mod     string      `json:"mod,omitempty"`
	Path    string      `json:"path,omitempty"`
	Message string      `json:"message"`
	Err     error       `json:"-"`
}

func (w Warning) String() string {
	s := fmt.Sprintf("[%s] %s", w.Code, w.Message)
	if w.Mod != "" {
		s += fmt.Sprintf(" (mod %q)", w.Mod)
	}
	if w.Err != nil {
		s += ": " + w.Err.Error()
	}
	return s
}

// Warnings collects warnings in the order they were raised.
type Warnings []Warning

// Add appends a warning.
func (ws *Warnings) Add(w Warning) {
	*ws = append(*ws, w)
}

// Extend appends all warnings from other.
func (ws *Warnings) Extend(other Warnings) {
	*ws = append(*ws, other...)
}

// HasCode reports whether any warning carries code.
func (ws Warnings) HasCode(code WarningCode) bool {
	for _, w := range ws {
		if w.Code == code {
			return true
		}
	}
	return false
}

// ForMod returns the warnings raised for the named mod.
func (ws Warnings) ForMod(name string) Warnings {
	var out Warnings
	for _, w := range ws {
		if w.Mod == name {
			out = append(out, w)
		}
	}
	return out
}

// Log writes every warning to logger at WARN level.
func (ws Warnings) Log(logger zerolog.Logger) {
	for _, w := range ws {
		ev := logger.Warn().Str("code", string(w.Code))
		if w.Mod != "" {
			ev = ev.Str("mod", w.Mod)
		}
		if w.Path != "" {
			ev = ev.Str("path", w.Path)
		}
		if w.Err != nil {
			ev = ev.Err(w.Err)
		}
		ev.Msg(w.Message)
	}
}
