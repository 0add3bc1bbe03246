// Package parser turns a line of user input into a ready-to-run command.
// Every argument is validated here so commands only see well-formed values.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/reservemate/commands"
)

var basicCommandFormat = regexp.MustCompile(`(?s)^(\S+)(.*)$`)

type parseFunc func(p *Parser, args string) (commands.Command, error)

var parsers = map[string]parseFunc{
	commands.AddConfig.Word:        (*Parser).parseAdd,
	commands.DeleteConfig.Word:     (*Parser).parseDelete,
	commands.EditConfig.Word:       (*Parser).parseEdit,
	commands.FindConfig.Word:       (*Parser).parseFind,
	commands.FilterConfig.Word:     (*Parser).parseFilter,
	commands.PreferenceConfig.Word: (*Parser).parsePreference,
	commands.ClearConfig.Word:      (*Parser).parseClear,
	commands.ListConfig.Word:       noArgs(func() commands.Command { return &commands.ListCommand{} }),
	commands.HelpConfig.Word:       noArgs(func() commands.Command { return &commands.HelpCommand{} }),
	commands.ExitConfig.Word:       noArgs(func() commands.Command { return &commands.ExitCommand{} }),
}

// Parser parses user input. The clock decides which reservation times
// count as past.
type Parser struct {
	now func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse selects the command by its leading word and parses the rest.
func (p *Parser) Parse(input string) (commands.Command, error) {
	match := basicCommandFormat.FindStringSubmatch(strings.TrimSpace(input))
	if match == nil {
		return nil, invalidFormat(commands.HelpConfig.Usage)
	}

	word, args := match[1], match[2]
	parse, ok := parsers[word]
	if !ok {
		return nil, &ParseError{Message: MessageUnknownCommand}
	}
	return parse(p, args)
}

// CommandWord returns the leading word of input, or "" if there is none.
func CommandWord(input string) string {
	match := basicCommandFormat.FindStringSubmatch(strings.TrimSpace(input))
	if match == nil {
		return ""
	}
	return match[1]
}

func noArgs(build func() commands.Command) parseFunc {
	return func(*Parser, string) (commands.Command, error) {
		return build(), nil
	}
}

// parseIndex accepts a non-zero unsigned integer.
func parseIndex(s string) (commands.Index, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return commands.Index{}, &ParseError{Message: MessageInvalidIndex}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return commands.Index{}, &ParseError{Message: MessageInvalidIndex}
	}
	return commands.IndexFromOneBased(n), nil
}

// parseConfirmedIndex handles "INDEX [cfm]".
func parseConfirmedIndex(args, usage string) (commands.Index, bool, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 || len(fields) > 2 {
		return commands.Index{}, false, invalidFormat(usage)
	}
	if len(fields) == 2 && fields[1] != commands.ConfirmKeyword {
		return commands.Index{}, false, invalidFormat(usage)
	}
	idx, err := parseIndex(fields[0])
	if err != nil {
		return commands.Index{}, false, err
	}
	return idx, len(fields) == 2, nil
}
