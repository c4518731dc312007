package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyComponent = "component"
	KeyVersion   = "version"
	KeyModule    = "module"
	KeyFamily    = "family"
	KeyRelative  = "relative"
	KeyID        = "id"
	KeyURL       = "url"
	KeyAddress   = "address"
	KeyStyle     = "style"
	KeyCount     = "count"
	KeyPath      = "path"
	KeyError     = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Component(name string) slog.Attr { return slog.String(KeyComponent, name) }
func Version(v string) slog.Attr      { return slog.String(KeyVersion, v) }
func Module(m string) slog.Attr       { return slog.String(KeyModule, m) }
func Family(f string) slog.Attr       { return slog.String(KeyFamily, f) }
func Relative(r string) slog.Attr     { return slog.String(KeyRelative, r) }
func ID(id string) slog.Attr          { return slog.String(KeyID, id) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Address(a string) slog.Attr      { return slog.String(KeyAddress, a) }
func Style(s string) slog.Attr        { return slog.String(KeyStyle, s) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
