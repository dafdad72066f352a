package models

// View is a caller-relative, read-only projection of an account.
type View struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	Username       string   `json:"username"`
	Avatar         string   `json:"avatar"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	JobTitle       string   `json:"job_title"`
	JobDescription string   `json:"job_description"`
	PhoneNumber    string   `json:"phone_number"`
	Activated      bool     `json:"activated"`
	Counters       Counters `json:"counters"`

	IsSelf     bool `json:"you"`
	IsFriend   bool `json:"friend"`
	IsFollower bool `json:"follower"`
	IsBlocked  bool `json:"blocked"`
}

// NewView copies the public fields of a. Relationship flags are left unset.
func NewView(a *Account) *View {
	return &View{
		ID:             a.ID,
		Email:          a.Email,
		Username:       a.Username,
		Avatar:         a.Avatar,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		JobTitle:       a.JobTitle,
		JobDescription: a.JobDescription,
		PhoneNumber:    a.PhoneNumber,
		Activated:      a.Activated,
		Counters:       a.Counters,
	}
}
