package cache

import "strings"

// Category identifies a logical kind of cached document. It doubles as
// the metrics label and the directory name in the filesystem store.
type Category string

const (
	CategorySchedule    Category = "schedule"
	CategoryGameFeed    Category = "game_feed"
	CategoryPostseason  Category = "postseason"
	CategoryStandings   Category = "standings"
	CategoryTeams       Category = "teams"
	CategoryTeamProfile Category = "team_profile"
	CategoryAffiliates  Category = "affiliates"
	CategoryRoster      Category = "roster"
)

// Key addresses one cache entry: a category plus its parameters
// (season, sport id, date window and so on), in a fixed order.
type Key struct {
	Category Category
	Params   []string
}

// NewKey constructs a Key for the category and parameters.
func NewKey(category Category, params ...string) Key {
	return Key{Category: category, Params: params}
}

// String renders the key as "category/param1_param2". Parameters are
// sanitized so the result is safe as a file name.
func (k Key) String() string {
	if len(k.Params) == 0 {
		return string(k.Category)
	}
	cleaned := make([]string, len(k.Params))
	for i, p := range k.Params {
		cleaned[i] = sanitizeParam(p)
	}
	return string(k.Category) + "/" + strings.Join(cleaned, "_")
}

func sanitizeParam(p string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '.':
			return r
		default:
			return '-'
		}
	}, p)
}
