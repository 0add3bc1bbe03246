package parser

import (
	"github.com/c360studio/reservemate/commands"
	"github.com/c360studio/reservemate/reservation"
)

var singleValuedReservationPrefixes = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixDiners, PrefixDateTime,
}

func (p *Parser) parseAdd(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixDiners, PrefixDateTime, PrefixOccasion)
	if !m.HasAll(singleValuedReservationPrefixes...) || m.Preamble() != "" {
		return nil, invalidFormat(commands.AddConfig.Usage)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(singleValuedReservationPrefixes...); err != nil {
		return nil, err
	}

	rawName, _ := m.Value(PrefixName)
	name, err := reservation.NewName(rawName)
	if err != nil {
		return nil, fromValidation(err)
	}
	rawPhone, _ := m.Value(PrefixPhone)
	phone, err := reservation.NewPhone(rawPhone)
	if err != nil {
		return nil, fromValidation(err)
	}
	rawEmail, _ := m.Value(PrefixEmail)
	email, err := reservation.NewEmail(rawEmail)
	if err != nil {
		return nil, fromValidation(err)
	}
	rawDiners, _ := m.Value(PrefixDiners)
	diners, err := reservation.NewDiners(rawDiners)
	if err != nil {
		return nil, fromValidation(err)
	}
	rawDateTime, _ := m.Value(PrefixDateTime)
	dateTime, err := reservation.ParseFutureDateTime(rawDateTime, p.now())
	if err != nil {
		return nil, fromValidation(err)
	}
	occasions, err := parseOccasions(m.AllValues(PrefixOccasion))
	if err != nil {
		return nil, err
	}

	r := reservation.New(name, phone, email, diners, dateTime, occasions, reservation.Preference{})
	return &commands.AddCommand{Reservation: r}, nil
}

func (p *Parser) parseEdit(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixDiners, PrefixDateTime, PrefixOccasion)
	if m.Preamble() == "" {
		return nil, invalidFormat(commands.EditConfig.Usage)
	}
	idx, err := parseIndex(m.Preamble())
	if err != nil {
		return nil, err
	}
	if err := m.VerifyNoDuplicatePrefixesFor(singleValuedReservationPrefixes...); err != nil {
		return nil, err
	}

	var d commands.EditDescriptor
	if raw, ok := m.Value(PrefixName); ok {
		name, err := reservation.NewName(raw)
		if err != nil {
			return nil, fromValidation(err)
		}
		d.Name = &name
	}
	if raw, ok := m.Value(PrefixPhone); ok {
		phone, err := reservation.NewPhone(raw)
		if err != nil {
			return nil, fromValidation(err)
		}
		d.Phone = &phone
	}
	if raw, ok := m.Value(PrefixEmail); ok {
		email, err := reservation.NewEmail(raw)
		if err != nil {
			return nil, fromValidation(err)
		}
		d.Email = &email
	}
	if raw, ok := m.Value(PrefixDiners); ok {
		diners, err := reservation.NewDiners(raw)
		if err != nil {
			return nil, fromValidation(err)
		}
		d.Diners = &diners
	}
	if raw, ok := m.Value(PrefixDateTime); ok {
		dateTime, err := reservation.ParseDateTime(raw)
		if err != nil {
			return nil, fromValidation(err)
		}
		d.DateTime = &dateTime
	}
	if m.Has(PrefixOccasion) {
		occasions, err := parseOccasionsForEdit(m.AllValues(PrefixOccasion))
		if err != nil {
			return nil, err
		}
		d.Occasions = &occasions
	}

	if !d.IsAnyFieldEdited() {
		return nil, &ParseError{Message: commands.MessageNotEdited}
	}
	return &commands.EditCommand{Index: idx, Descriptor: d}, nil
}

func parseOccasions(raw []string) ([]reservation.Occasion, error) {
	occasions := make([]reservation.Occasion, 0, len(raw))
	for _, s := range raw {
		o, err := reservation.NewOccasion(s)
		if err != nil {
			return nil, fromValidation(err)
		}
		occasions = append(occasions, o)
	}
	return occasions, nil
}

// parseOccasionsForEdit treats a single empty o/ as "remove all".
func parseOccasionsForEdit(raw []string) ([]reservation.Occasion, error) {
	if len(raw) == 1 && raw[0] == "" {
		return []reservation.Occasion{}, nil
	}
	return parseOccasions(raw)
}
