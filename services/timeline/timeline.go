// Package timeline serves topic feeds: every drop carrying a given
// tag, most recent first. The event timeline is the "Event" topic.
package timeline

import (
	"github.com/Utkarsh123xd/Student-Sphere/db/docstore"
	"github.com/Utkarsh123xd/Student-Sphere/logger"
)

type Service struct {
	logger logger.Logger
	db     docstore.DB
}

func New(logger logger.Logger, db docstore.DB) *Service {
	return &Service{
		logger: logger,
		db:     db,
	}
}

// Topic returns all drops tagged with the given label, creation time
// descending. Tag comparison is case-insensitive and exact.
func (s *Service) Topic(tag string) ([]docstore.DropView, error) {
	return s.db.FindDropsByTag(tag)
}
