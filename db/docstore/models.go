package docstore

import "time"

// Profile attribute field names as they appear on the wire. These are
// the fields search matches against and update-profile may set.
const (
	FieldUsername         = "username"
	FieldBio              = "bio"
	FieldProgram          = "program"
	FieldDept             = "dept"
	FieldYear             = "year"
	FieldGraduation       = "graduation"
	FieldUndergradCollege = "undergradCollege"
	FieldSpecialization   = "specialization"
	FieldCG               = "cg"
	FieldLinkedIn         = "linkedin"
	FieldMajor            = "major"
)

type UserProfile struct {
	Handle    string   `json:"username"`
	Avatar    string   `json:"avatar"`
	Banner    string   `json:"banner,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Followers []string `json:"followers"`

	Program          string `json:"program,omitempty"`
	Dept             string `json:"dept,omitempty"`
	Year             string `json:"year,omitempty"`
	Graduation       string `json:"graduation,omitempty"`
	UndergradCollege string `json:"undergradCollege,omitempty"`
	Specialization   string `json:"specialization,omitempty"`
	CG               string `json:"cg,omitempty"`
	LinkedIn         string `json:"linkedin,omitempty"`
	Major            string `json:"major,omitempty"`
}

// Field returns the value of an attribute field by its wire name.
// Unknown names return the empty string, which never matches.
func (u *UserProfile) Field(name string) string {
	switch name {
	case FieldUsername:
		return u.Handle
	case FieldBio:
		return u.Bio
	case FieldProgram:
		return u.Program
	case FieldDept:
		return u.Dept
	case FieldYear:
		return u.Year
	case FieldGraduation:
		return u.Graduation
	case FieldUndergradCollege:
		return u.UndergradCollege
	case FieldSpecialization:
		return u.Specialization
	case FieldCG:
		return u.CG
	case FieldLinkedIn:
		return u.LinkedIn
	case FieldMajor:
		return u.Major
	}
	return ""
}

// SetField sets an attribute field by its wire name. The handle is not
// settable this way: it is the document key.
func (u *UserProfile) SetField(name, value string) error {
	switch name {
	case FieldBio:
		u.Bio = value
	case FieldProgram:
		u.Program = value
	case FieldDept:
		u.Dept = value
	case FieldYear:
		u.Year = value
	case FieldGraduation:
		u.Graduation = value
	case FieldUndergradCollege:
		u.UndergradCollege = value
	case FieldSpecialization:
		u.Specialization = value
	case FieldCG:
		u.CG = value
	case FieldLinkedIn:
		u.LinkedIn = value
	case FieldMajor:
		u.Major = value
	default:
		return &InvalidFieldError{Field: name}
	}
	return nil
}

// ScoredUser pairs a profile with its relevance score for one search
// response. It is never persisted.
type ScoredUser struct {
	UserProfile
	Score int `json:"score"`
}

// Drop is the stored form of a post.
type Drop struct {
	ID        string    `json:"id"`
	Body      string    `json:"content"`
	Tag       string    `json:"tag,omitempty"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	ReplyIDs  []string  `json:"replyIds,omitempty"`
}

// Author is the populated identity attached to a drop view.
type Author struct {
	Handle string `json:"username"`
	Avatar string `json:"avatar"`
}

// DropView is the wire form of a drop: author identity and avatar
// attached, replies inlined.
type DropView struct {
	ID        string     `json:"id"`
	Body      string     `json:"content"`
	Tag       string     `json:"tag,omitempty"`
	PostedBy  Author     `json:"postedBy"`
	CreatedAt time.Time  `json:"createdAt"`
	Replies   []DropView `json:"comments,omitempty"`
}
