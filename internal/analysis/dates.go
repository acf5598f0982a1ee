package analysis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tanagerbot/tanager/internal/wiki"
)

// EntityType mirrors the MusicBrainz artist type IDs the bots consume.
type EntityType int

// Artist types as the candidate rows encode them.
const (
	EntityPerson EntityType = 1
	EntityGroup  EntityType = 2
)

// Date is a partial calendar date; zero components are unknown.
type Date struct {
	Year  int
	Month int
	Day   int
}

// IsZero reports whether no component is known.
func (d Date) IsZero() bool { return d.Year == 0 && d.Month == 0 && d.Day == 0 }

func (d Date) String() string {
	switch {
	case d.Year == 0:
		return ""
	case d.Month == 0:
		return fmt.Sprintf("%04d", d.Year)
	case d.Day == 0:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
}

// The date formats persondata values are tried against, in order. The
// matched format is recorded in the justification so an operator can see
// how the value was read.
var persondataLayouts = []struct {
	name   string
	layout string
}{
	{"month day, year", "January 2, 2006"},
	{"day month year", "2 January 2006"},
	{"year-month-day", "2006-01-02"},
}

// DateFromPersondata parses a date-valued persondata field. Values that
// match none of the known formats fall back to a bare-year parse; anything
// else yields empty evidence rather than an error.
func DateFromPersondata(page *wiki.Page, field string) (Date, []string) {
	value := page.Persondata[field]
	if value == "" {
		return Date{}, nil
	}
	for _, f := range persondataLayouts {
		t, err := time.Parse(f.layout, value)
		if err != nil {
			continue
		}
		reason := fmt.Sprintf("Persondata has %s %q (%s format).", field, value, f.name)
		return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, []string{reason}
	}
	if year, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		reason := fmt.Sprintf("Persondata has %s %q (bare year).", field, value)
		return Date{Year: year}, []string{reason}
	}
	return Date{}, nil
}

// dateFromTemplate matches an infobox date template such as
// {{Birth date|1950|5|2}} at the start of the field value. Month may be a
// number or a localized month name.
func (p *Profile) dateFromTemplate(page *wiki.Page, field string, re *regexp.Regexp) (Date, []string) {
	if field == "" || re == nil {
		return Date{}, nil
	}
	value := page.Infobox[field]
	m := re.FindStringSubmatch(value)
	if m == nil {
		return Date{}, nil
	}
	groups := map[string]string{}
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}
	date := Date{}
	date.Year, _ = strconv.Atoi(groups["year"])
	date.Day, _ = strconv.Atoi(groups["day"])
	if month, err := strconv.Atoi(groups["month"]); err == nil {
		date.Month = month
	} else {
		date.Month = p.Months[strings.ToLower(groups["month"])]
	}
	return date, []string{fmt.Sprintf("Infobox has %s.", value)}
}

// dateFromCategories matches a year-bearing category such as
// "1950 births" or "Musical groups established in 1985".
func dateFromCategories(page *wiki.Page, re *regexp.Regexp) (Date, []string) {
	if re == nil {
		return Date{}, nil
	}
	for _, category := range page.Categories {
		m := re.FindStringSubmatch(category)
		if m == nil {
			continue
		}
		year, _ := strconv.Atoi(m[1])
		return Date{Year: year}, []string{fmt.Sprintf("Belongs to category %q.", category)}
	}
	return Date{}, nil
}

// DetermineBeginDate infers an artist's begin date. For persons the
// persondata field is most trusted, then the infobox date template, then
// birth-year categories; the first rule to produce a year wins. Performance
// names carry the performer's dates on the wiki but not in the database,
// so they are skipped. Groups only have formation-year categories.
func DetermineBeginDate(page *wiki.Page, p *Profile, entity EntityType, performanceName bool) (Date, []string) {
	switch entity {
	case EntityPerson:
		if performanceName {
			return Date{}, nil
		}
		if date, reasons := DateFromPersondata(page, "date of birth"); date.Year != 0 {
			return date, reasons
		}
		if date, reasons := p.dateFromTemplate(page, p.BeginDateField, p.BeginTemplateRe); date.Year != 0 {
			return date, reasons
		}
		return dateFromCategories(page, p.PersonBirthRe)
	case EntityGroup:
		return dateFromCategories(page, p.GroupFormedRe)
	}
	return Date{}, nil
}

// DetermineEndDate infers an artist's end date, mirroring
// DetermineBeginDate with the death/disbanded counterparts.
func DetermineEndDate(page *wiki.Page, p *Profile, entity EntityType, performanceName bool) (Date, []string) {
	switch entity {
	case EntityPerson:
		if performanceName {
			return Date{}, nil
		}
		if date, reasons := DateFromPersondata(page, "date of death"); date.Year != 0 {
			return date, reasons
		}
		if date, reasons := p.dateFromTemplate(page, p.EndDateField, p.EndTemplateRe); date.Year != 0 {
			return date, reasons
		}
		return dateFromCategories(page, p.PersonDeathRe)
	case EntityGroup:
		return dateFromCategories(page, p.GroupDisbandedRe)
	}
	return Date{}, nil
}
