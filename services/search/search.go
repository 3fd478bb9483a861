// Package search implements the combined user and drop search: a
// per-request substring match over the document store, an explicit
// field-weight ranking for users, and tag recommendations aggregated
// from the matched drops. Nothing is indexed or cached across
// requests; every call is a fresh scan.
package search

import (
	"sort"
	"strings"

	"github.com/Utkarsh123xd/Student-Sphere/db/docstore"
	"github.com/Utkarsh123xd/Student-Sphere/logger"
)

const (
	DefaultLimit = 10
	topTagCount  = 5
)

// matchFields are the profile fields a fragment is matched against.
// A user matches if ANY of these fields contains the fragment.
var matchFields = []string{
	docstore.FieldUsername,
	docstore.FieldProgram,
	docstore.FieldDept,
	docstore.FieldYear,
	docstore.FieldGraduation,
	docstore.FieldUndergradCollege,
	docstore.FieldSpecialization,
	docstore.FieldCG,
	docstore.FieldLinkedIn,
	docstore.FieldMajor,
}

// fieldWeights is the relevance weight per field. Fields that can
// cause a match but carry no weight (year, linkedin, ...) score 0;
// such users still appear in results. That asymmetry is deliberate.
var fieldWeights = []struct {
	field  string
	weight int
}{
	{docstore.FieldUsername, 3},
	{docstore.FieldProgram, 2},
	{docstore.FieldDept, 2},
	{docstore.FieldSpecialization, 1},
}

type Service struct {
	logger logger.Logger
	db     docstore.DB
}

// Result is one search response: the drop page, ranked users and tag
// recommendations, all computed from this request alone.
type Result struct {
	Users   []docstore.ScoredUser
	Drops   []docstore.DropView
	TopTags []string
}

func New(logger logger.Logger, db docstore.DB) *Service {
	return &Service{
		logger: logger,
		db:     db,
	}
}

func (s *Service) Search(fragment string, skip, limit int) (*Result, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	drops, err := s.db.FindDropsByBody(fragment, skip, limit)
	if err != nil {
		return nil, err
	}

	users, err := s.db.FindUsersMatching(fragment, matchFields)
	if err != nil {
		return nil, err
	}

	return &Result{
		Users:   rankUsers(users, fragment),
		Drops:   drops,
		TopTags: topTags(drops),
	}, nil
}

// rankUsers scores each matched user against the weight table and
// sorts by descending score. Equal scores keep the store's match
// order.
func rankUsers(users []docstore.UserProfile, fragment string) []docstore.ScoredUser {
	needle := strings.ToLower(fragment)

	scored := make([]docstore.ScoredUser, 0, len(users))
	for _, user := range users {
		score := 0
		for _, fw := range fieldWeights {
			if strings.Contains(strings.ToLower(user.Field(fw.field)), needle) {
				score += fw.weight
			}
		}
		scored = append(scored, docstore.ScoredUser{UserProfile: user, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// topTags counts tag occurrences over the current drop page and
// returns up to five labels by descending count. Equal counts keep
// first-seen order over the page.
func topTags(drops []docstore.DropView) []string {
	counts := map[string]int{}
	seen := []string{}
	for _, drop := range drops {
		if drop.Tag == "" {
			continue
		}
		if _, ok := counts[drop.Tag]; !ok {
			seen = append(seen, drop.Tag)
		}
		counts[drop.Tag]++
	}

	sort.SliceStable(seen, func(i, j int) bool {
		return counts[seen[i]] > counts[seen[j]]
	})

	if len(seen) > topTagCount {
		seen = seen[:topTagCount]
	}
	return seen
}
