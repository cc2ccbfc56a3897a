package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusInterview   ApplicationStatus = "interview"
	StatusAccepted    ApplicationStatus = "accepted"
	StatusRejected    ApplicationStatus = "rejected"
)

type JobApplication struct {
	UserID    uuid.UUID         `db:"user_id" json:"user_id"`
	JobID     uuid.UUID         `db:"job_id" json:"job_id"`
	Status    ApplicationStatus `db:"status" json:"status"`
	CreatedAt time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt time.Time         `db:"updated_at" json:"updated_at"`
}

// JobApplicationDetails is the joined row a recruiter sees: the application
// together with the candidate's profile summary and the job it targets.
type JobApplicationDetails struct {
	UserID    uuid.UUID         `db:"user_id" json:"user_id"`
	JobID     uuid.UUID         `db:"job_id" json:"job_id"`
	Status    ApplicationStatus `db:"status" json:"status"`
	CreatedAt time.Time         `db:"created_at" json:"created_at"`

	CandidateName  sql.NullString `db:"candidate_name" json:"candidate_name"`
	CandidateEmail sql.NullString `db:"candidate_email" json:"candidate_email"`
	Skills         sql.NullString `db:"skills" json:"skills"`
	Experience     sql.NullString `db:"experience" json:"experience"`
	CurrRole       sql.NullString `db:"curr_role" json:"curr_role"`
	Education      sql.NullString `db:"education" json:"education"`
	ResumeLink     sql.NullString `db:"resume_link" json:"resume_link"`

	JobTitle string `db:"job_title" json:"job_title"`
	Company  string `db:"company" json:"company"`
}
