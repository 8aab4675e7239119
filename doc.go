/*
Package argbind fills a configuration struct from the command line by matching
flag names to struct fields and converting the textual values to the fields'
declared types.

The configuration type provides its own defaults through a zero-argument
Default factory method:

	type params struct {
		Addr    string  `flag:"addr"`
		Port    uint16  `flag:"port"`
		Workers int     `flag:"workers"`
		Ratio   float64 `flag:"ratio"`
		Verbose bool    `flag:"verbose"`
		Tag     *string `flag:"tag"`
	}

	func (params) Default() params {
		return params{Addr: "127.0.0.1", Port: 8080, Workers: 4, Ratio: 0.5}
	}

	p, err := argbind.Parse[params]()

A flag is matched against the `flag` tag, or against the lowercased field name
when no tag is set. `flag:"-"` excludes a field, as does leaving it unexported.
Accepted forms are --name=value, --name value and a bare --name for booleans.
Pointer fields are optional: they keep the factory default unless a value
actually arrives.

Two scanning behaviors are intentional and worth knowing about: a flag that is
not part of the schema is silently skipped, and the first argument that does not
start with "--" silently ends the scan. Neither is reported as an error. A bare
flag without "=" also consumes the following argument as its value even when
that argument looks like another flag.
*/
package argbind
