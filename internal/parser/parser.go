// Package parser turns chat command text into typed intents with resolved
// temporal arguments. Tokenization is whitespace-delimited; keywords,
// weekday and month names are case-insensitive.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"punchclock/internal/clock"
	"punchclock/internal/domain"
	"punchclock/internal/errors"
)

var (
	timeTokenRegex      = regexp.MustCompile(`^(\d{1,2})h(\d{1,2})$`)
	yearMonthTokenRegex = regexp.MustCompile(`^(\d{4})/(\d{1,2})$`)
	numberTokenRegex    = regexp.MustCompile(`^\d{1,2}$`)
)

var weekdayNames = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// clockTime is a parsed bare hour/minute token, not yet qualified to a day.
type clockTime struct {
	hour   int
	minute int
}

// Parser recognizes the command grammars and resolves their temporal
// arguments through the clock resolver.
type Parser struct {
	resolver *clock.Resolver
}

// NewParser creates a parser using the given resolver.
func NewParser(resolver *clock.Resolver) *Parser {
	return &Parser{resolver: resolver}
}

// Parse interprets command text relative to the reference instant. The
// grammars are tried in priority order; the first structural match wins.
// Text matching no grammar yields an UnrecognizedCommand parse error.
func (p *Parser) Parse(text string, now time.Time) (Intent, error) {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(tokens) == 0 {
		return nil, errors.NewUnrecognizedCommandError(text)
	}

	switch tokens[0] {
	case "enter":
		return p.parseEnter(tokens, now)
	case "leave":
		return p.parseLeave(tokens, now)
	case "clear":
		return p.parseClear(tokens, now)
	case "month":
		return p.parseCurrentMonth(tokens, now)
	}

	if intent, ok, err := p.parseSummary(tokens, now); ok {
		return intent, err
	}
	if intent, ok, err := p.parseSpan(tokens, now); ok {
		return intent, err
	}

	return nil, errors.NewUnrecognizedCommandError(text)
}

// parseEnter handles "enter", "enter <time>" and "enter <t1> leave <t2>".
func (p *Parser) parseEnter(tokens []string, now time.Time) (Intent, error) {
	switch len(tokens) {
	case 1:
		return EnterIntent{Instant: p.resolver.Normalize(now)}, nil
	case 2:
		instant, err := p.resolveTimeToken(tokens[1], now)
		if err != nil {
			return nil, err
		}
		return EnterIntent{Instant: instant}, nil
	case 4:
		if tokens[2] != "leave" {
			return nil, errors.NewUnrecognizedCommandError(strings.Join(tokens, " "))
		}
		enter, err := p.resolveTimeToken(tokens[1], now)
		if err != nil {
			return nil, err
		}
		leave, err := p.resolveTimeToken(tokens[3], now)
		if err != nil {
			return nil, err
		}
		return EnterLeaveIntent{Enter: enter, Leave: leave}, nil
	default:
		return nil, errors.NewUnrecognizedCommandError(strings.Join(tokens, " "))
	}
}

// parseLeave handles "leave" and "leave <time>".
func (p *Parser) parseLeave(tokens []string, now time.Time) (Intent, error) {
	switch len(tokens) {
	case 1:
		return LeaveIntent{Instant: p.resolver.Normalize(now)}, nil
	case 2:
		instant, err := p.resolveTimeToken(tokens[1], now)
		if err != nil {
			return nil, err
		}
		return LeaveIntent{Instant: instant}, nil
	default:
		return nil, errors.NewUnrecognizedCommandError(strings.Join(tokens, " "))
	}
}

// parseClear handles "clear" and "clear <weekday|dayOfMonth>".
func (p *Parser) parseClear(tokens []string, now time.Time) (Intent, error) {
	switch len(tokens) {
	case 1:
		return ClearIntent{Date: domain.DateOf(now.In(p.resolver.Location()))}, nil
	case 2:
		date, err := p.resolveDayToken(tokens[1], now)
		if err != nil {
			return nil, err
		}
		return ClearIntent{Date: date}, nil
	default:
		return nil, errors.NewUnrecognizedCommandError(strings.Join(tokens, " "))
	}
}

// parseCurrentMonth handles "month" with an optional format flag.
func (p *Parser) parseCurrentMonth(tokens []string, now time.Time) (Intent, error) {
	format, rest, err := p.takeFormat(tokens[1:])
	if err != nil || len(rest) != 0 {
		return nil, errors.NewUnrecognizedCommandError(strings.Join(tokens, " "))
	}
	local := now.In(p.resolver.Location())
	return SummaryIntent{Year: local.Year(), Month: local.Month(), Format: format}, nil
}

// parseSummary handles "<year>/<month>" and "<monthName>", each with an
// optional format flag. The boolean reports a structural match.
func (p *Parser) parseSummary(tokens []string, now time.Time) (Intent, bool, error) {
	if m := yearMonthTokenRegex.FindStringSubmatch(tokens[0]); m != nil {
		format, rest, err := p.takeFormat(tokens[1:])
		if err != nil || len(rest) != 0 {
			return nil, true, errors.NewUnrecognizedCommandError(strings.Join(tokens, " "))
		}
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return nil, true, errors.NewAmbiguousSpecError(tokens[0])
		}
		return SummaryIntent{Year: year, Month: time.Month(month), Format: format}, true, nil
	}

	if month, ok := monthNames[tokens[0]]; ok {
		format, rest, err := p.takeFormat(tokens[1:])
		if err != nil || len(rest) != 0 {
			return nil, true, errors.NewUnrecognizedCommandError(strings.Join(tokens, " "))
		}
		year, month := p.resolver.ResolveMonth(now, month)
		return SummaryIntent{Year: year, Month: month, Format: format}, true, nil
	}

	return nil, false, nil
}

// parseSpan handles "<t1> <t2>" and "<weekday|dayOfMonth> <t1> <t2>".
// The boolean reports a structural match.
func (p *Parser) parseSpan(tokens []string, now time.Time) (Intent, bool, error) {
	switch len(tokens) {
	case 2:
		if !isTimeToken(tokens[0]) || !isTimeToken(tokens[1]) {
			return nil, false, nil
		}
		enter, err := p.resolveTimeToken(tokens[0], now)
		if err != nil {
			return nil, true, err
		}
		leave, err := p.resolveTimeToken(tokens[1], now)
		if err != nil {
			return nil, true, err
		}
		return EnterLeaveIntent{Enter: enter, Leave: leave}, true, nil
	case 3:
		if !isTimeToken(tokens[1]) || !isTimeToken(tokens[2]) {
			return nil, false, nil
		}
		date, err := p.resolveDayToken(tokens[0], now)
		if err != nil {
			return nil, true, err
		}
		enter, err := p.timeTokenAt(tokens[1], date)
		if err != nil {
			return nil, true, err
		}
		leave, err := p.timeTokenAt(tokens[2], date)
		if err != nil {
			return nil, true, err
		}
		return EnterLeaveIntent{Enter: enter, Leave: leave}, true, nil
	default:
		return nil, false, nil
	}
}

// takeFormat consumes an optional trailing "pdf" flag.
func (p *Parser) takeFormat(tokens []string) (DocFormat, []string, error) {
	if len(tokens) == 0 {
		return FormatDefault, tokens, nil
	}
	if tokens[0] == "pdf" {
		return FormatPDF, tokens[1:], nil
	}
	return FormatDefault, tokens, errors.NewAmbiguousSpecError(tokens[0])
}

// resolveTimeToken parses an "<H>h<MM>" token and qualifies it to a full
// instant on now's day.
func (p *Parser) resolveTimeToken(token string, now time.Time) (time.Time, error) {
	ct, err := parseTimeToken(token)
	if err != nil {
		return time.Time{}, err
	}
	return p.resolver.ResolveTime(now, ct.hour, ct.minute)
}

// timeTokenAt parses a time token and places it on an already-resolved date.
func (p *Parser) timeTokenAt(token string, date domain.Date) (time.Time, error) {
	ct, err := parseTimeToken(token)
	if err != nil {
		return time.Time{}, err
	}
	return p.resolver.At(date, ct.hour, ct.minute)
}

// resolveDayToken interprets a weekday name or day-of-month number as the
// most recent matching date on or before now.
func (p *Parser) resolveDayToken(token string, now time.Time) (domain.Date, error) {
	if weekday, ok := weekdayNames[token]; ok {
		return p.resolver.ResolveWeekday(now, weekday), nil
	}
	if numberTokenRegex.MatchString(token) {
		day, _ := strconv.Atoi(token)
		return p.resolver.ResolveDayOfMonth(now, day)
	}
	return domain.Date{}, errors.NewAmbiguousSpecError(token)
}

func isTimeToken(token string) bool {
	return timeTokenRegex.MatchString(token)
}

func parseTimeToken(token string) (clockTime, error) {
	m := timeTokenRegex.FindStringSubmatch(token)
	if m == nil {
		return clockTime{}, errors.NewAmbiguousSpecError(token)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return clockTime{hour: hour, minute: minute}, nil
}
