// Package timefmt compiles user-supplied datetime format strings into
// specifier sequences that can be matched against inputs and used to
// render times back out.
package timefmt

import (
	"fmt"
	"strings"
	"time"
)

// Class describes how complete a moment matched by a format would be.
type Class int

const (
	// ClassZoneAware formats carry an explicit UTC offset.
	ClassZoneAware Class = iota
	// ClassNaive formats carry a full date and a time-of-day but no offset.
	ClassNaive
	// ClassDateOnly formats carry a calendar date and nothing else.
	ClassDateOnly
	// ClassIncomplete formats cannot yield a usable moment (e.g. a
	// time-of-day with no date). No parsing strategy applies to them.
	ClassIncomplete
)

func (c Class) String() string {
	switch c {
	case ClassZoneAware:
		return "timezone-aware"
	case ClassNaive:
		return "timezone-naive"
	case ClassDateOnly:
		return "date-only"
	default:
		return "incomplete"
	}
}

// TokenKind identifies a single specifier or literal run in a compiled format.
type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenYear              // %Y: 4-digit year
	TokenMonth             // %m: 01-12
	TokenDay               // %d: 01-31
	TokenHour              // %H: 00-23
	TokenMinute            // %M: 00-59
	TokenSecond            // %S: 00-60 (60 tolerates a leap second)
	TokenFraction          // %<N>f: exactly N sub-second digits
	TokenOffset            // %z: +HHMM / -HHMM
	TokenOffsetColon       // %:z: +HH:MM / -HH:MM
)

// Token is one element of a compiled format: either a literal text run or
// a datetime field specifier.
type Token struct {
	Kind  TokenKind
	Lit   string // literal text, TokenLiteral only
	Width int    // fraction digit count, TokenFraction only
}

// Spec is a compiled, immutable format. It is compiled once per run and is
// safe to share across concurrent parses.
type Spec struct {
	source string
	tokens []Token
	class  Class
}

// InvalidSpecifierError reports an unrecognized escape sequence in a format
// string. It is a configuration error: the whole run aborts before any
// input is parsed.
type InvalidSpecifierError struct {
	Specifier string
}

func (e *InvalidSpecifierError) Error() string {
	return fmt.Sprintf("format contains unknown specifier %q", e.Specifier)
}

// Compile validates a format string and compiles it into a specifier
// sequence. The only rejection reason is an unrecognized specifier.
func Compile(format string) (*Spec, error) {
	var tokens []Token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenLiteral, Lit: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			lit.WriteByte(c)
			continue
		}
		if i+1 >= len(format) {
			return nil, &InvalidSpecifierError{Specifier: "%"}
		}
		i++
		switch format[i] {
		case '%':
			lit.WriteByte('%')
			continue
		case 'Y':
			flush()
			tokens = append(tokens, Token{Kind: TokenYear})
		case 'm':
			flush()
			tokens = append(tokens, Token{Kind: TokenMonth})
		case 'd':
			flush()
			tokens = append(tokens, Token{Kind: TokenDay})
		case 'H':
			flush()
			tokens = append(tokens, Token{Kind: TokenHour})
		case 'M':
			flush()
			tokens = append(tokens, Token{Kind: TokenMinute})
		case 'S':
			flush()
			tokens = append(tokens, Token{Kind: TokenSecond})
		case 'z':
			flush()
			tokens = append(tokens, Token{Kind: TokenOffset})
		case ':':
			if i+1 >= len(format) || format[i+1] != 'z' {
				return nil, &InvalidSpecifierError{Specifier: "%:"}
			}
			i++
			flush()
			tokens = append(tokens, Token{Kind: TokenOffsetColon})
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if i+1 >= len(format) || format[i+1] != 'f' {
				return nil, &InvalidSpecifierError{Specifier: "%" + string(format[i])}
			}
			width := int(format[i] - '0')
			i++
			flush()
			tokens = append(tokens, Token{Kind: TokenFraction, Width: width})
		default:
			return nil, &InvalidSpecifierError{Specifier: "%" + string(format[i])}
		}
	}
	flush()

	return &Spec{
		source: format,
		tokens: tokens,
		class:  classify(tokens),
	}, nil
}

func classify(tokens []Token) Class {
	var hasOffset, hasTime bool
	var hasYear, hasMonth, hasDay bool
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenYear:
			hasYear = true
		case TokenMonth:
			hasMonth = true
		case TokenDay:
			hasDay = true
		case TokenHour, TokenMinute, TokenSecond, TokenFraction:
			hasTime = true
		case TokenOffset, TokenOffsetColon:
			hasOffset = true
		}
	}

	hasDate := hasYear && hasMonth && hasDay
	switch {
	case hasOffset:
		return ClassZoneAware
	case hasDate && hasTime:
		return ClassNaive
	case hasDate:
		return ClassDateOnly
	default:
		return ClassIncomplete
	}
}

// Class reports which completeness class a successful match would yield.
func (s *Spec) Class() Class { return s.class }

// Tokens returns the compiled specifier sequence.
func (s *Spec) Tokens() []Token { return s.tokens }

// String returns the original format text.
func (s *Spec) String() string { return s.source }

// Render formats t through the compiled specifier sequence.
func (s *Spec) Render(t time.Time) string {
	var b strings.Builder
	for _, tok := range s.tokens {
		switch tok.Kind {
		case TokenLiteral:
			b.WriteString(tok.Lit)
		case TokenYear:
			fmt.Fprintf(&b, "%04d", t.Year())
		case TokenMonth:
			fmt.Fprintf(&b, "%02d", int(t.Month()))
		case TokenDay:
			fmt.Fprintf(&b, "%02d", t.Day())
		case TokenHour:
			fmt.Fprintf(&b, "%02d", t.Hour())
		case TokenMinute:
			fmt.Fprintf(&b, "%02d", t.Minute())
		case TokenSecond:
			fmt.Fprintf(&b, "%02d", t.Second())
		case TokenFraction:
			b.WriteString(fmt.Sprintf("%09d", t.Nanosecond())[:tok.Width])
		case TokenOffset:
			b.WriteString(renderOffset(t, ""))
		case TokenOffsetColon:
			b.WriteString(renderOffset(t, ":"))
		}
	}
	return b.String()
}

func renderOffset(t time.Time, sep string) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s%02d%s%02d", sign, offset/3600, sep, offset%3600/60)
}
