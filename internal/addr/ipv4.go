package addr

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ipv4Rgx = regexp.MustCompile(fmt.Sprintf(
	`\A%[1]v(?:\.%[1]v){3}\z`,
	`(?:[0-9]|[1-9][0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])`, // Octet without leading zeros.
))

// ErrSyntax is reported for any text not in dotted-decimal notation.
var ErrSyntax = errors.New("invalid address syntax")

// ParseError describes a failure to parse an [IPv4] address.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse address %q: %v", e.Text, ErrSyntax)
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// ParseIPv4 parses an address in dotted-decimal notation, e.g. 192.168.0.1.
func ParseIPv4(text string) (IPv4, error) {
	if !ipv4Rgx.MatchString(text) {
		return IPv4{}, &ParseError{text}
	}

	var value uint32
	for _, octet := range strings.Split(text, ".") {
		// The regexp guarantees a decimal number in [0, 255]
		n, err := strconv.ParseUint(octet, 10, 8)
		if err != nil {
			return IPv4{}, &ParseError{text}
		}
		value = value<<8 | uint32(n)
	}

	return IPv4{text: text, value: value}, nil
}

// MustParseIPv4 is like [ParseIPv4], but panics if the address cannot be parsed.
func MustParseIPv4(text string) IPv4 {
	ip, err := ParseIPv4(text)
	if err != nil {
		panic(err)
	}
	return ip
}

// Compare orders addresses by their numeric value.
func Compare(a, b IPv4) int {
	return a.Compare(b)
}

// IPv4 is an IP version 4 address together with the text it was parsed from.
//
// Only the numeric value takes part in ordering, equality and hashing.
type IPv4 struct {
	text  string
	value uint32
}

// Value returns the address as a 32-bit number, most significant octet first.
func (ip IPv4) Value() uint32 {
	return ip.value
}

// String returns the dotted-decimal text the address was parsed from.
func (ip IPv4) String() string {
	return ip.text
}

// IsZero reports whether ip is the zero value, i.e. was never parsed.
func (ip IPv4) IsZero() bool {
	return ip.text == ""
}

func (ip IPv4) Compare(other IPv4) int {
	return cmp.Compare(ip.value, other.value)
}

func (ip IPv4) Equal(other IPv4) bool {
	return ip.Compare(other) == 0
}

// Hash returns a hash code consistent with [IPv4.Equal].
func (ip IPv4) Hash() uint64 {
	return uint64(ip.value)
}

func (ip IPv4) MarshalText() ([]byte, error) {
	return []byte(ip.String()), nil
}

func (ip *IPv4) UnmarshalText(text []byte) error {
	parsed, err := ParseIPv4(string(text))
	if err != nil {
		return err
	}
	*ip = parsed
	return nil
}
