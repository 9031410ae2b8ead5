package domain

import (
	"errors"
	"regexp"
	"strings"
)

// DvdGenre is the closed set of genres a catalogue item may carry.
type DvdGenre string

const (
	GenreAction         DvdGenre = "ACTION"
	GenreAdventure      DvdGenre = "ADVENTURE"
	GenreComedy         DvdGenre = "COMEDY"
	GenreDrama          DvdGenre = "DRAMA"
	GenreHorror         DvdGenre = "HORROR"
	GenreRomance        DvdGenre = "ROMANCE"
	GenreScienceFiction DvdGenre = "SCIENCE_FICTION"
	GenreThriller       DvdGenre = "THRILLER"
)

var genres = map[DvdGenre]struct{}{
	GenreAction:         {},
	GenreAdventure:      {},
	GenreComedy:         {},
	GenreDrama:          {},
	GenreHorror:         {},
	GenreRomance:        {},
	GenreScienceFiction: {},
	GenreThriller:       {},
}

var ErrInvalidDvd = errors.New("invalid dvd")
var ErrDvdNotFound = errors.New("dvd not found")
var ErrDuplicateTitle = errors.New("dvd already exists")

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	titleRe      = regexp.MustCompile(`[^a-zA-Z0-9\s+.':-]`)
)

// ParseGenre converts user-supplied input to a DvdGenre. Input is matched
// case-insensitively and inner whitespace maps to underscores, so
// "science fiction" and " SCIENCE_FICTION " both parse.
func ParseGenre(s string) (DvdGenre, error) {
	normalized := strings.ToUpper(whitespaceRe.ReplaceAllString(strings.TrimSpace(s), "_"))
	g := DvdGenre(normalized)
	if _, ok := genres[g]; !ok {
		return "", ErrInvalidDvd
	}
	return g, nil
}

// SanitizeTitle strips characters that are not alphanumeric, spaces,
// periods, pluses, colons, apostrophes or hyphens, and collapses runs of
// whitespace into a single space. "Harry  Potter" and "Harry Potter" are
// treated as the same title.
func SanitizeTitle(title string) string {
	title = strings.TrimSpace(title)
	title = titleRe.ReplaceAllString(title, "")
	return whitespaceRe.ReplaceAllString(title, " ")
}

// Dvd is the catalogue aggregate. ID is assigned by the store on create
// and immutable afterwards.
type Dvd struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Genre    DvdGenre `json:"genre"`
	Quantity int      `json:"quantity"`
}
