package argbind

import "strings"

const flagPrefix = "--"

// token is one scanned "--name[=value]" pair. The value either comes inline
// after '=' or from the argument following a bare flag.
type token struct {
	name     string
	value    string
	hasValue bool
}

// scanner walks the raw argument vector and produces tokens. The first
// argument is the program invocation name and is never inspected.
type scanner struct {
	argv []string
	pos  int
}

func newScanner(argv []string) *scanner {
	return &scanner{argv: argv, pos: 1}
}

// next returns the following token, or ok=false once the arguments are
// exhausted. An argument without the "--" prefix also ends the scan; nothing
// after it is looked at.
func (s *scanner) next() (tok token, ok bool) {
	if s.pos >= len(s.argv) {
		return token{}, false
	}
	arg := s.argv[s.pos]
	if !strings.HasPrefix(arg, flagPrefix) {
		return token{}, false
	}
	s.pos++

	name := arg[len(flagPrefix):]
	if i := strings.Index(name, "="); i >= 0 {
		return token{name: name[:i], value: name[i+1:], hasValue: true}, true
	}
	// No inline value: the next argument is consumed as the value even if it
	// starts with "--" itself.
	if s.pos < len(s.argv) {
		tok = token{name: name, value: s.argv[s.pos], hasValue: true}
		s.pos++
		return tok, true
	}
	return token{name: name}, true
}
