// seehuhn.de/go/chart - raster charts for run analytics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package chart

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fixed formats v with the given number of decimals, like JavaScript's
// Number.prototype.toFixed: the exact binary value of v is rounded, and
// exact halves round away from zero. Negative values keep their sign
// even if they round to zero. Non-finite values print as zero.
func Fixed(v float64, decimals int) string {
	if !finite(v) {
		v = 0
	}
	decimals = max(decimals, 0)
	if math.Abs(v) >= 1e21 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// y = v * 10^decimals is computed exactly; 4 bits per decimal digit
	// are enough for the power of ten
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	prec := uint(64 + 4*decimals)
	y := new(big.Float).SetPrec(prec).SetFloat64(v)
	y.Mul(y, new(big.Float).SetPrec(prec).SetInt(pow))

	n, _ := y.Int(nil)
	frac := new(big.Float).SetPrec(prec).SetInt(n)
	frac.Sub(y, frac)
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	if decimals == 0 {
		return sign + digits
	}
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals+1-len(digits)) + digits
	}
	k := len(digits) - decimals
	return sign + digits[:k] + "." + digits[k:]
}

// FormatAxis formats a grid label. Axes with a maximum below one use four
// decimals, all others none.
func FormatAxis(v, axisMax float64) string {
	if axisMax < 1 {
		return Fixed(v, 4)
	}
	return Fixed(v, 0)
}

// FormatUSD formats a dollar amount, for example "$0.0012".
func FormatUSD(v float64, decimals int) string {
	return "$" + Fixed(v, decimals)
}

// FormatPercent formats a value that is already scaled to percent.
func FormatPercent(v float64, decimals int) string {
	return Fixed(v, decimals) + "%"
}

var thousands = message.NewPrinter(language.English)

// FormatThousands formats n with comma digit grouping, for example
// "12,345".
func FormatThousands(n int64) string {
	return thousands.Sprintf("%d", n)
}

// labelEllipsis is appended to shortened labels.
const labelEllipsis = "…"

// TruncateLabel shortens s to n characters followed by an ellipsis, if it
// is longer than n characters.
func TruncateLabel(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos] + labelEllipsis
		}
		i++
	}
	return s
}
