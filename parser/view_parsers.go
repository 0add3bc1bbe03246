package parser

import (
	"regexp"
	"strings"

	"github.com/c360studio/reservemate/commands"
	"github.com/c360studio/reservemate/reservation"
)

var (
	prefShowFormat = regexp.MustCompile(`^show\s+(\S+)$`)
	prefSaveFormat = regexp.MustCompile(`(?s)^save\s+(\S+)\s+(.+)$`)
)

func (p *Parser) parseDelete(args string) (commands.Command, error) {
	idx, confirmed, err := parseConfirmedIndex(args, commands.DeleteConfig.Usage)
	if err != nil {
		return nil, err
	}
	return &commands.DeleteCommand{Index: idx, Confirmed: confirmed}, nil
}

func (p *Parser) parseClear(args string) (commands.Command, error) {
	switch strings.TrimSpace(args) {
	case "":
		return &commands.ClearCommand{}, nil
	case commands.ConfirmKeyword:
		return &commands.ClearCommand{Confirmed: true}, nil
	default:
		return nil, invalidFormat(commands.ClearConfig.Usage)
	}
}

func (p *Parser) parseFind(args string) (commands.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(commands.FindConfig.Usage)
	}
	return &commands.FindCommand{Keywords: keywords}, nil
}

func (p *Parser) parseFilter(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixStartDate, PrefixEndDate, PrefixOccasion)
	if m.Preamble() != "" {
		return nil, invalidFormat(commands.FilterConfig.Usage)
	}
	if m.Has(PrefixStartDate) != m.Has(PrefixEndDate) {
		return nil, invalidFormat(commands.FilterConfig.Usage)
	}
	if !m.Has(PrefixStartDate) && !m.Has(PrefixOccasion) {
		return nil, invalidFormat(commands.FilterConfig.Usage)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixStartDate, PrefixEndDate); err != nil {
		return nil, err
	}

	cmd := &commands.FilterCommand{}
	if m.Has(PrefixStartDate) {
		rawStart, _ := m.Value(PrefixStartDate)
		start, err := reservation.ParseFilterDateTime(rawStart)
		if err != nil {
			return nil, fromValidation(err)
		}
		rawEnd, _ := m.Value(PrefixEndDate)
		end, err := reservation.ParseFilterDateTime(rawEnd)
		if err != nil {
			return nil, fromValidation(err)
		}
		if start.After(end) {
			return nil, &ParseError{Message: commands.MessageFilterRange}
		}
		cmd.Start, cmd.End = &start, &end
	}

	occasions, err := parseOccasions(m.AllValues(PrefixOccasion))
	if err != nil {
		return nil, err
	}
	if len(occasions) > 0 {
		cmd.Occasions = occasions
	}
	return cmd, nil
}

func (p *Parser) parsePreference(args string) (commands.Command, error) {
	args = strings.TrimSpace(args)

	if match := prefShowFormat.FindStringSubmatch(args); match != nil {
		idx, err := parseIndex(match[1])
		if err != nil {
			return nil, err
		}
		return &commands.PreferenceCommand{Index: idx, Show: true}, nil
	}

	if match := prefSaveFormat.FindStringSubmatch(args); match != nil {
		idx, err := parseIndex(match[1])
		if err != nil {
			return nil, err
		}
		pref, err := reservation.NewPreference(match[2])
		if err != nil {
			return nil, fromValidation(err)
		}
		return &commands.PreferenceCommand{Index: idx, Preference: pref}, nil
	}

	return nil, invalidFormat(commands.PreferenceConfig.Usage)
}
