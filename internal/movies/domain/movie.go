package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field limits, counted in characters.
const (
	TitleMinLen    = 5
	TitleMaxLen    = 25
	OverviewMinLen = 6
	MinYear        = 1900
	CategoryMinLen = 2
	CategoryMaxLen = 55

	// MinMovieID and MaxMovieID bound the {id} path parameter.
	MinMovieID = 1
	MaxMovieID = 2000

	// Bounds of the ?category= filter.
	CategoryQueryMinLen = 3
	CategoryQueryMaxLen = 22
)

type Movie struct {
	ID       int      `json:"id" example:"1"`
	Title    string   `json:"title" example:"The Godfather: Part II"`
	Overview string   `json:"overview" example:"Write the description of your Movie"`
	Year     int      `json:"year" example:"1991"`
	Rating   *float64 `json:"rating" example:"8.9"`
	Category string   `json:"category" example:"Drama"`
}

// Validate checks every field and reports all problems at once.
func (m Movie) Validate() error {
	return m.validate(nil)
}

// validate reports absent fields as missing and checks the rest.
func (m Movie) validate(absent map[string]bool) error {
	var v ValidationError

	check := func(field string, fn func()) {
		if absent[field] {
			v.Add(MissingField("body", field))
			return
		}
		fn()
	}

	// Stored ids must stay addressable through /movies/{id}
	check("id", func() { v.checkRange("body", "id", m.ID, MinMovieID, MaxMovieID) })
	check("title", func() { v.checkLength("body", "title", m.Title, TitleMinLen, TitleMaxLen) })
	check("overview", func() { v.checkLength("body", "overview", m.Overview, OverviewMinLen, 0) })
	check("year", func() { v.checkRange("body", "year", m.Year, MinYear, 0) })
	check("category", func() { v.checkLength("body", "category", m.Category, CategoryMinLen, CategoryMaxLen) })

	return v.OrNil()
}

// MovieDraft is a movie body as sent by a client. Nil fields were absent
// or null.
type MovieDraft struct {
	ID       *int     `json:"id"`
	Title    *string  `json:"title"`
	Overview *string  `json:"overview"`
	Year     *int     `json:"year"`
	Rating   *float64 `json:"rating"`
	Category *string  `json:"category"`
}

// Movie returns the movie d describes. Every absent required field and
// every invalid one is reported in a single *ValidationError.
func (d MovieDraft) Movie() (Movie, error) {
	m := Movie{Rating: d.Rating}
	absent := make(map[string]bool)

	if d.ID != nil {
		m.ID = *d.ID
	} else {
		absent["id"] = true
	}
	if d.Title != nil {
		m.Title = *d.Title
	} else {
		absent["title"] = true
	}
	if d.Overview != nil {
		m.Overview = *d.Overview
	} else {
		absent["overview"] = true
	}
	if d.Year != nil {
		m.Year = *d.Year
	} else {
		absent["year"] = true
	}
	if d.Category != nil {
		m.Category = *d.Category
	} else {
		absent["category"] = true
	}

	if err := m.validate(absent); err != nil {
		return Movie{}, err
	}
	return m, nil
}

// ValidateMovieID checks an {id} path parameter.
func ValidateMovieID(id int) error {
	var v ValidationError
	v.checkRange("path", "id", id, MinMovieID, MaxMovieID)
	return v.OrNil()
}

// MissingField is the issue for a required input that was not sent.
func MissingField(loc, field string) FieldIssue {
	return FieldIssue{
		Location: []string{loc, field},
		Message:  "Field required",
		Type:     "missing",
	}
}

// ValidateCategoryQuery checks the ?category= filter.
func ValidateCategoryQuery(category string) error {
	var v ValidationError
	v.checkLength("query", "category", category, CategoryQueryMinLen, CategoryQueryMaxLen)
	return v.OrNil()
}

// FieldIssue is one problem with one input field.
type FieldIssue struct {
	Location []string `json:"loc"`
	Message  string   `json:"msg"`
	Type     string   `json:"type"`
}

// ValidationError collects field issues. Handlers answer it with 422.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, strings.Join(issue.Location, ".")+": "+issue.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Add(issue FieldIssue) {
	e.Issues = append(e.Issues, issue)
}

// OrNil returns e as an error if it holds any issue.
func (e *ValidationError) OrNil() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e
}

// checkRange appends an issue if value is outside [minVal, maxVal]. A zero
// maxVal means unbounded.
func (e *ValidationError) checkRange(loc, field string, value, minVal, maxVal int) {
	switch {
	case value < minVal:
		e.Add(FieldIssue{
			Location: []string{loc, field},
			Message:  fmt.Sprintf("Input should be greater than or equal to %d", minVal),
			Type:     "greater_than_equal",
		})
	case maxVal > 0 && value > maxVal:
		e.Add(FieldIssue{
			Location: []string{loc, field},
			Message:  fmt.Sprintf("Input should be less than or equal to %d", maxVal),
			Type:     "less_than_equal",
		})
	}
}

// checkLength appends an issue if value is outside [minLen, maxLen]. A zero
// maxLen means unbounded.
func (e *ValidationError) checkLength(loc, field, value string, minLen, maxLen int) {
	n := utf8.RuneCountInString(value)
	switch {
	case n < minLen:
		e.Add(FieldIssue{
			Location: []string{loc, field},
			Message:  fmt.Sprintf("String should have at least %d characters", minLen),
			Type:     "string_too_short",
		})
	case maxLen > 0 && n > maxLen:
		e.Add(FieldIssue{
			Location: []string{loc, field},
			Message:  fmt.Sprintf("String should have at most %d characters", maxLen),
			Type:     "string_too_long",
		})
	}
}
