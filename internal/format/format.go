// Package format holds pure display helpers for prices and deadlines.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency renders an amount as US dollars with locale-aware grouping,
// e.g. "$18,500". Cents are shown only when the amount is not a whole
// number.
func Currency(amount decimal.Decimal) string {
	value, _ := amount.Float64()
	if amount.IsInteger() {
		return printer.Sprintf("$%v", number.Decimal(value, number.MaxFractionDigits(0)))
	}
	return printer.Sprintf("$%v", number.Decimal(value,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Countdown is the decomposed time left until an auction deadline.
type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Ended   bool `json:"ended"`
}

// Remaining splits the interval between now and endDate into calendar-ish
// units. A deadline at or before now reports Ended with all units zero.
func Remaining(endDate, now time.Time) Countdown {
	diff := endDate.Sub(now)
	if diff <= 0 {
		return Countdown{Ended: true}
	}
	return Countdown{
		Days:    int(diff / (24 * time.Hour)),
		Hours:   int(diff % (24 * time.Hour) / time.Hour),
		Minutes: int(diff % time.Hour / time.Minute),
		Seconds: int(diff % time.Minute / time.Second),
	}
}

// TimeRemaining renders the countdown as a short human string such as
// "2d 5h remaining", or "Auction ended" once the deadline has passed.
func TimeRemaining(endDate, now time.Time) string {
	c := Remaining(endDate, now)
	switch {
	case c.Ended:
		return "Auction ended"
	case c.Days > 0:
		return fmt.Sprintf("%dd %dh remaining", c.Days, c.Hours)
	case c.Hours > 0:
		return fmt.Sprintf("%dh %dm remaining", c.Hours, c.Minutes)
	default:
		return fmt.Sprintf("%dm %ds remaining", c.Minutes, c.Seconds)
	}
}
