// Package utils provides small, dependency-light helpers shared across
// services and handlers. This file contains the display formatters for
// location keys and calendar days.
package utils

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HumanDayFormat renders a calendar day the way trip listings and overlap
// ranges display it, with no time component.
const HumanDayFormat = "Mon Jan 02 2006"

var titler = cases.Title(language.English)

// TitleLocation turns a canonical location key ("paris,france") into its
// display form ("Paris, France"). Inputs without a comma are titlecased
// as-is.
func TitleLocation(location string) string {
	city, country, ok := strings.Cut(location, ",")
	if !ok {
		return titler.String(strings.TrimSpace(location))
	}
	return titler.String(strings.TrimSpace(city)) + ", " + titler.String(strings.TrimSpace(country))
}

// HumanDay renders t's UTC calendar day for display.
func HumanDay(t time.Time) string {
	return t.UTC().Format(HumanDayFormat)
}
