package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRequestID  = "request_id"
	KeyRepoURL    = "repo_url"
	KeyRepoName   = "repo_name"
	KeyPath       = "path"
	KeyStage      = "stage"
	KeyModel      = "model"
	KeyLanguage   = "language"
	KeyFileCount  = "file_count"
	KeyDurationMS = "duration_ms"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyUserAgent  = "user_agent"
	KeyRemoteAddr = "remote_addr"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RequestID(id string) slog.Attr     { return slog.String(KeyRequestID, id) }
func RepoURL(u string) slog.Attr        { return slog.String(KeyRepoURL, u) }
func RepoName(n string) slog.Attr       { return slog.String(KeyRepoName, n) }
func Path(p string) slog.Attr           { return slog.String(KeyPath, p) }
func Stage(name string) slog.Attr       { return slog.String(KeyStage, name) }
func Model(m string) slog.Attr          { return slog.String(KeyModel, m) }
func Language(l string) slog.Attr       { return slog.String(KeyLanguage, l) }
func FileCount(n int) slog.Attr         { return slog.Int(KeyFileCount, n) }
func DurationMS(ms float64) slog.Attr   { return slog.Float64(KeyDurationMS, ms) }
func Method(m string) slog.Attr         { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr         { return slog.Int(KeyStatus, code) }
func UserAgent(ua string) slog.Attr     { return slog.String(KeyUserAgent, ua) }
func RemoteAddr(addr string) slog.Attr  { return slog.String(KeyRemoteAddr, addr) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
