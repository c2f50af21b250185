package resource

import (
	"os"
	"strings"

	"github.com/libstappler/libstappler-core-sub003/internal/container"
	"github.com/libstappler/libstappler-core-sub003/internal/pool"
)

// readEnvExt resolves a single variable name, including the synthetic
// EXEC_DIR/CWD names and the XDG_*_HOME defaults. execPath/homePath are
// the cached values initSystemPaths populates once at Initialize time.
func readEnvExt(key, execPath, homePath string) string {
	switch key {
	case "EXEC_DIR":
		return dirname(execPath)
	case "HOME":
		if homePath != "" {
			return homePath
		}
		return os.Getenv("HOME")
	case "CWD":
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		return wd
	case "XDG_DATA_HOME":
		if v := os.Getenv("XDG_DATA_HOME"); v != "" {
			return v
		}
		return mergePath(homePath, ".local/share")
	case "XDG_CONFIG_HOME":
		if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
			return v
		}
		return mergePath(homePath, ".config")
	case "XDG_STATE_HOME":
		if v := os.Getenv("XDG_STATE_HOME"); v != "" {
			return v
		}
		return mergePath(homePath, ".local/state")
	case "XDG_CACHE_HOME":
		if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
			return v
		}
		return mergePath(homePath, ".cache")
	case "XDG_RUNTIME_DIR":
		if v := os.Getenv("XDG_RUNTIME_DIR"); v != "" {
			return v
		}
		return "/run/user/" + uidString()
	default:
		return os.Getenv(key)
	}
}

func dirname(p string) string {
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return p
	}
	if i == 0 {
		return "/"
	}
	return p[:i]
}

// ReadVariable evaluates an XDG-style value expression against t's
// cached EXEC_DIR/HOME values: single/double quoted runs, `$VAR`
// substitutions (including the synthetic names above), with the result
// accumulated in a pool-aware buffer, interned into p, and trailing
// slashes stripped. A method on the owning Table rather than a
// package-level function since this module has no process-wide resource
// table.
func (t *Table) ReadVariable(p *pool.Pool, expr string) string {
	return evalVariable(t.execPath, t.homePath, expr, p)
}

func evalVariable(execPath, homePath, expr string, p *pool.Pool) string {
	out := container.NewBuffer(p)
	s := strings.TrimSpace(expr)
	for len(s) > 0 {
		switch s[0] {
		case '"':
			s = readDoubleQuoted(s, execPath, homePath, out)
		case '\'':
			s = readSingleQuoted(s, out)
		case '$':
			s = s[1:]
			name, rest := readVarName(s)
			s = rest
			if name != "" {
				out.AppendString(readEnvExt(name, execPath, homePath))
			}
		default:
			i := strings.IndexAny(s, "\"'$")
			if i < 0 {
				out.AppendString(s)
				s = ""
			} else {
				out.AppendString(s[:i])
				s = s[i:]
			}
		}
	}
	result := strings.TrimRight(out.String(), "/")
	if p == nil {
		return result
	}
	return p.Pstrdup(result)
}

// readVarName reads a $VAR name, stopping at quote, dollar, slash, or
// whitespace.
func readVarName(s string) (name, rest string) {
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '"' || c == '\'' || c == '$' || c == '/' || c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			break
		}
		i++
	}
	return s[:i], s[i:]
}

func readSingleQuoted(s string, out *container.Buffer) string {
	s = s[1:]
	for len(s) > 0 {
		i := strings.IndexAny(s, "'\\")
		if i < 0 {
			out.AppendString(s)
			return ""
		}
		out.AppendString(s[:i])
		switch s[i] {
		case '\\':
			if i+1 < len(s) {
				out.AppendByte(s[i+1])
				s = s[i+2:]
			} else {
				s = s[i+1:]
			}
		case '\'':
			return s[i+1:]
		}
	}
	return s
}

func readDoubleQuoted(s, execPath, homePath string, out *container.Buffer) string {
	s = s[1:]
	for len(s) > 0 {
		i := strings.IndexAny(s, "\"\\$'")
		if i < 0 {
			out.AppendString(s)
			return ""
		}
		out.AppendString(s[:i])
		s = s[i:]
		switch s[0] {
		case '\\':
			if len(s) > 1 {
				out.AppendByte(s[1])
				s = s[2:]
			} else {
				s = s[1:]
			}
		case '$':
			s = s[1:]
			name, rest := readVarName(s)
			s = rest
			if name != "" {
				out.AppendString(readEnvExt(name, execPath, homePath))
			}
		case '\'':
			s = readSingleQuoted(s, out)
		case '"':
			return s[1:]
		}
	}
	return s
}
