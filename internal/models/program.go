package models

import "time"

type Program struct {
	ID          int64  `json:"id"`
	ProgramName string `json:"programName"`
	AuthorID    int64  `json:"-"`
	// AuthorUserName is resolved from the users table on reads. Nil when the
	// referenced user no longer exists.
	AuthorUserName *string   `json:"-"`
	Categories     []string  `json:"categories"`
	Schedule       Schedule  `json:"schedule"`
	CreatedAt      time.Time `json:"-"`
}
