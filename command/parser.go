// Package command parses the option grammar of the !status chat command.
//
//	!status [-vnf] [--verbose,online,offline] [Name[,Name...]]...
//
// Short options may be grouped (-va), long options are comma separated after a
// double dash, and every other token is a comma separated list of player names.
package command

import (
	"strings"
	"unicode"
)

const DefaultPrefix = "!status"

// Option is a display option of a status request.
type Option uint8

const (
	Verbose Option = 1 << iota
	ShowOnline
	ShowOffline
)

var optionNames = map[string]Option{
	"v":       Verbose,
	"verbose": Verbose,
	"n":       ShowOnline,
	"online":  ShowOnline,
	"f":       ShowOffline,
	"offline": ShowOffline,
}

// Request is a parsed status command.
type Request struct {
	Options Option
	// Targets are player names in the order given; empty means the whole roster.
	Targets []string
	// Unknown holds option names that were not recognised.
	Unknown []string
}

func (r *Request) Has(o Option) bool {
	return r.Options&o == o
}

// MatchCommand reports whether text is an invocation of the command named by
// prefix and returns its argument string.
func MatchCommand(text, prefix string) (string, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, prefix) {
		return "", false
	}
	rest := text[len(prefix):]
	if rest != "" && !unicode.IsSpace(rune(rest[0])) {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// Parse turns the argument string of a status command into a Request.
func Parse(args string) *Request {
	b := &builder{}
	for _, tok := range strings.Fields(args) {
		switch {
		case strings.HasPrefix(tok, "--"):
			for _, name := range strings.Split(tok[2:], ",") {
				b.option(name)
			}
		case strings.HasPrefix(tok, "-"):
			for _, r := range tok[1:] {
				b.option(string(r))
			}
		default:
			b.targets(tok)
		}
	}
	return b.build()
}

type builder struct {
	req Request
}

func (b *builder) option(name string) {
	if name == "" {
		return
	}
	o, ok := optionNames[name]
	if !ok {
		b.req.Unknown = append(b.req.Unknown, name)
		return
	}
	b.req.Options |= o
}

func (b *builder) targets(tok string) {
	for _, name := range strings.Split(tok, ",") {
		if name != "" {
			b.req.Targets = append(b.req.Targets, name)
		}
	}
}

func (b *builder) build() *Request {
	// show everybody unless the request narrowed it down
	if b.req.Options&(ShowOnline|ShowOffline) == 0 {
		b.req.Options |= ShowOnline | ShowOffline
	}
	req := b.req
	return &req
}
