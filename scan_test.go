package argbind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want []token
	}{
		{
			name: "empty argv",
			argv: nil,
			want: nil,
		},
		{
			name: "invocation name alone",
			argv: []string{"prog"},
			want: nil,
		},
		{
			name: "inline value",
			argv: []string{"prog", "--host=example.com"},
			want: []token{{name: "host", value: "example.com", hasValue: true}},
		},
		{
			name: "value split at the first equals sign only",
			argv: []string{"prog", "--expr=a=b"},
			want: []token{{name: "expr", value: "a=b", hasValue: true}},
		},
		{
			name: "empty inline value is still a value",
			argv: []string{"prog", "--host="},
			want: []token{{name: "host", value: "", hasValue: true}},
		},
		{
			name: "two-token value",
			argv: []string{"prog", "--host", "example.com"},
			want: []token{{name: "host", value: "example.com", hasValue: true}},
		},
		{
			name: "bare flag at the end has no value",
			argv: []string{"prog", "--verbose"},
			want: []token{{name: "verbose"}},
		},
		{
			name: "bare flag consumes a following flag as its value",
			argv: []string{"prog", "--verbose", "--host=example.com"},
			want: []token{{name: "verbose", value: "--host=example.com", hasValue: true}},
		},
		{
			name: "non-flag token ends the scan",
			argv: []string{"prog", "positional", "--host=example.com"},
			want: nil,
		},
		{
			name: "single dash ends the scan",
			argv: []string{"prog", "-v", "--host=example.com"},
			want: nil,
		},
		{
			name: "mixed sequence",
			argv: []string{"prog", "--a=1", "--b", "2", "--c"},
			want: []token{
				{name: "a", value: "1", hasValue: true},
				{name: "b", value: "2", hasValue: true},
				{name: "c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScanner(tt.argv)
			var got []token
			for {
				tok, ok := s.next()
				if !ok {
					break
				}
				got = append(got, tok)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScannerStaysExhausted(t *testing.T) {
	s := newScanner([]string{"prog", "--a=1"})
	_, ok := s.next()
	assert.True(t, ok)
	_, ok = s.next()
	assert.False(t, ok)
	_, ok = s.next()
	assert.False(t, ok)
}
