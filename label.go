// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	defaultPrecision = 5

	// maxDecimals is the most fractional digits the grouping formatter
	// can render.
	maxDecimals = 9

	// Beyond this magnitude numbers no longer fit the grouping formatter's
	// integer part and are written in exponent form.
	maxGrouped = 1e15

	// axisTextField is the per-item data field that overrides a label.
	axisTextField = "axis_text"
)

// NumberFormat controls how numeric labels are written. The zero value
// behaves as DefaultNumberFormat.
type NumberFormat struct {
	Precision int    // significant digits when no fixed decimal count is given
	Decimal   string // decimal separator, a single character
	Thousands string // digit group separator, a single character or empty
}

// DefaultNumberFormat returns five significant digits with "." and ","
// separators.
func DefaultNumberFormat() NumberFormat {
	return NumberFormat{Precision: defaultPrecision, Decimal: ".", Thousands: ","}
}

// LocaleNumberFormat returns the separators used by a BCP 47 locale such as
// "de-DE" or "fr", with the default precision.
func LocaleNumberFormat(locale string) (NumberFormat, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return NumberFormat{}, fmt.Errorf("%w: locale %q: %w", ErrInvalidConfig, locale, err)
	}
	sample := []rune(message.NewPrinter(tag).Sprintf("%.1f", 1234567.5))

	nf := NumberFormat{Precision: defaultPrecision, Decimal: "."}
	dec := len(sample)
	for i := len(sample) - 1; i >= 0; i-- {
		if isSeparator(sample[i]) {
			dec = i
			nf.Decimal = string(sample[i])
			break
		}
	}
	for _, r := range sample[:dec] {
		if isSeparator(r) {
			nf.Thousands = string(r)
			break
		}
	}
	return nf, nf.validate()
}

func isSeparator(r rune) bool {
	return !unicode.IsDigit(r) && !unicode.Is(unicode.Cf, r) && r != '-'
}

func (nf NumberFormat) normalized() NumberFormat {
	if nf == (NumberFormat{}) {
		return DefaultNumberFormat()
	}
	if nf.Precision <= 0 {
		nf.Precision = defaultPrecision
	}
	if nf.Decimal == "" {
		nf.Decimal = "."
	}
	return nf
}

func (nf NumberFormat) validate() error {
	nf = nf.normalized()
	if !validSeparator(nf.Decimal) {
		return fmt.Errorf("%w: decimal separator %q", ErrInvalidConfig, nf.Decimal)
	}
	if nf.Thousands != "" && !validSeparator(nf.Thousands) {
		return fmt.Errorf("%w: thousands separator %q", ErrInvalidConfig, nf.Thousands)
	}
	return nil
}

func validSeparator(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return !unicode.IsDigit(r) && r != '#' && r != '+'
}

// pattern builds a go-humanize format directive for the given number of
// fractional digits.
func (nf NumberFormat) pattern(decimals int) string {
	var b strings.Builder
	b.WriteByte('#')
	b.WriteString(nf.Thousands)
	b.WriteString("###")
	b.WriteString(nf.Decimal)
	b.WriteString(strings.Repeat("#", decimals))
	return b.String()
}

// Format writes n with the given number of decimals. With decimals nil the
// number is written to nf.Precision significant digits, trailing fractional
// zeros are dropped, and values too small to show at that precision become
// zero.
func (nf NumberFormat) Format(n float64, decimals *int) string {
	nf = nf.normalized()

	var d int
	if decimals != nil {
		d = *decimals
	} else {
		e := math.Floor(math.Log10(math.Abs(n)))
		if -e > float64(nf.Precision) {
			n = 0
		}
		d = nf.Precision
		if e > 0 {
			d -= int(e)
		}
	}
	d = max(0, min(d, maxDecimals))

	if math.IsNaN(n) || math.IsInf(n, 0) || math.Abs(n) >= maxGrouped {
		return strings.Replace(strconv.FormatFloat(n, 'g', nf.Precision, 64), ".", nf.Decimal, 1)
	}

	var s string
	if nf.Thousands == "" {
		// humanize always groups digits
		s = strings.Replace(strconv.FormatFloat(n, 'f', d, 64), ".", nf.Decimal, 1)
	} else {
		s = humanize.FormatFloat(nf.pattern(d), n)
	}
	if decimals != nil || d == 0 {
		return s
	}
	i := strings.LastIndex(s, nf.Decimal)
	if i < 0 {
		return s
	}
	frac := strings.TrimRight(s[i+len(nf.Decimal):], "0")
	if frac == "" {
		return s[:i]
	}
	return s[:i+len(nf.Decimal)] + frac
}

// labeler produces the text of numeric grid points.
type labeler struct {
	before, after string
	digits        *int
	format        NumberFormat
	label         LabelFunc
	data          DataSource
}

func newLabeler(cfg *Config) labeler {
	return labeler{
		before: cfg.UnitsBefore,
		after:  cfg.UnitsAfter,
		digits: cfg.DecimalDigits,
		format: cfg.Format.normalized(),
		label:  cfg.Label,
		data:   cfg.Data,
	}
}

// text returns, in order of preference, the item's axis_text field, the
// label function's result, the item's associative key, or the decorated
// number.
func (l *labeler) text(value float64) string {
	var (
		key    string
		hasKey bool
	)
	if l.data != nil {
		index := int(math.Round(value))
		if s, ok := l.data.FieldFor(index, axisTextField); ok {
			return s
		}
		if l.data.AssociativeKeys() {
			key, hasKey = l.data.KeyAt(index)
		}
	}
	if l.label != nil {
		return l.label(value, key)
	}
	if hasKey {
		return key
	}
	return l.before + l.format.Format(value, l.digits) + l.after
}
