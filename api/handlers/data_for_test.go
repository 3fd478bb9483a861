package handlers

import (
	"fmt"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Utkarsh123xd/Student-Sphere/db/docstore"
)

var seedBase = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

var seedUsers = []docstore.UserProfile{
	{
		Handle: "clara",
		Avatar: "Avatar-1.png",
		Bio:    "hello there",
	},
	{
		Handle:    "algobot",
		Avatar:    "Avatar-2.png",
		Dept:      "Algorithms",
		Followers: []string{"devlin"},
	},
	{
		Handle:         "devlin",
		Avatar:         "Avatar-3.png",
		Specialization: "algorithm design",
	},
	{
		Handle:   "quietfan",
		Avatar:   "initial-avatar.png",
		LinkedIn: "https://linkedin.com/in/algofan",
	},
	{
		Handle: "brler",
		Avatar: "Avatar-4.png",
		Major:  "Biology",
	},
}

// seedStore writes the fixture users and drops. Twelve drops mention
// "algo", minutes apart, newest last in the loop; the newest page of
// ten carries tags ml (x3) and robotics (x2). One extra drop carries
// the Event tag and one is a reply.
func seedStore(assert *require.Assertions, db docstore.DB) {
	for i := range seedUsers {
		assert.NoError(db.SaveUser(&seedUsers[i]), "could not seed user")
	}

	tagFor := func(i int) string {
		switch {
		case i >= 10: // drops 10, 11, 12
			return "ml"
		case i >= 8: // drops 8, 9
			return "robotics"
		}
		return ""
	}

	for i := 1; i <= 12; i++ {
		drop := docstore.Drop{
			ID:        fmt.Sprintf("drop-%02d", i),
			Body:      fmt.Sprintf("thoughts on algo problem %d", i),
			Tag:       tagFor(i),
			Author:    "algobot",
			CreatedAt: seedBase.Add(time.Duration(i) * time.Minute),
		}
		if i == 12 {
			drop.ReplyIDs = []string{"reply-01"}
		}
		assert.NoError(db.SaveDrop(&drop), "could not seed drop")
	}

	assert.NoError(db.SaveDrop(&docstore.Drop{
		ID:        "reply-01",
		Body:      "nice one",
		Author:    "devlin",
		CreatedAt: seedBase.Add(13 * time.Minute),
	}), "could not seed reply")

	assert.NoError(db.SaveDrop(&docstore.Drop{
		ID:        "drop-event",
		Body:      "hackathon this friday",
		Tag:       "Event",
		Author:    "clara",
		CreatedAt: seedBase.Add(14 * time.Minute),
	}), "could not seed event drop")
}
