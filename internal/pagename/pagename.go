// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagename converts source page file names such as "Cong2730.pdf"
// into published names such as "Con1Oct27P030.pdf" and back.
//
// Source names are an edition code, a two-digit day of month, a two-digit
// page number and a "pdf" or "PDF" extension. Published names are "Con",
// the edition number, a three-letter month, the day, "P0", the page and
// ".pdf".
package pagename

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/pdiddy/chronicle-rename/pkg/types"
)

var (
	// ErrPatternMismatch is returned for names that are not source page names.
	ErrPatternMismatch = errors.New("name does not match source page pattern")

	// ErrNotTarget is returned for names that are not published page names.
	ErrNotTarget = errors.New("name does not match published page pattern")
)

var (
	sourcePattern = regexp.MustCompile(`^(Cong|Bidd|Sand|Alsa)(\d{2})(\d{2})\.(pdf|PDF)$`)
	targetPattern = regexp.MustCompile(`^Con([1-4])(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)(\d{2})P0(\d{2})\.pdf$`)
)

// Months is the month code table, indexed from January = 0.
var Months = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Source is a parsed source page name.
type Source struct {
	Name    string
	Edition types.Edition
	Day     string
	Page    string
	Ext     string
}

// ParseSource decomposes name. It returns ErrPatternMismatch (wrapped with
// the name) when name is not a source page name.
func ParseSource(name string) (Source, error) {
	m := sourcePattern.FindStringSubmatch(name)
	if m == nil {
		return Source{}, fmt.Errorf("%q: %w", name, ErrPatternMismatch)
	}
	return Source{
		Name:    name,
		Edition: types.Edition(m[1]),
		Day:     m[2],
		Page:    m[3],
		Ext:     m[4],
	}, nil
}

// DayOfMonth returns the publication day as an integer.
func (s Source) DayOfMonth() int {
	d, _ := strconv.Atoi(s.Day)
	return d
}

// Target is a published page name split into its parts.
type Target struct {
	EditionNumber int
	Month         string
	Day           string
	Page          string
}

// Transform builds the published name for s using the run's month code.
func Transform(s Source, month string) Target {
	return Target{
		EditionNumber: s.Edition.Number(),
		Month:         month,
		Day:           s.Day,
		Page:          s.Page,
	}
}

// String returns the file name, e.g. "Con1Oct27P030.pdf".
func (t Target) String() string {
	return "Con" + strconv.Itoa(t.EditionNumber) + t.Month + t.Day + "P0" + t.Page + ".pdf"
}

// ParseTarget recovers the parts of a published name.
func ParseTarget(name string) (Target, error) {
	m := targetPattern.FindStringSubmatch(name)
	if m == nil {
		return Target{}, fmt.Errorf("%q: %w", name, ErrNotTarget)
	}
	n, _ := strconv.Atoi(m[1])
	return Target{
		EditionNumber: n,
		Month:         m[2],
		Day:           m[3],
		Page:          m[4],
	}, nil
}

// PublicationMonth returns the month code for a page published on day,
// given the current time now. A day earlier in the month than today is
// taken to belong to next month; December wraps to January.
func PublicationMonth(day int, now time.Time) string {
	m := int(now.Month()) - 1
	if day < now.Day() {
		m = (m + 1) % len(Months)
	}
	return Months[m]
}
