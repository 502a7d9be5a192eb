package model

type TeamMember struct {
	ID         string `json:"id"` // "tm1", "tm2", ...
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       Role   `json:"role"`
}
