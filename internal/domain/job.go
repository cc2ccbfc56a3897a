package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID                 uuid.UUID      `db:"id" json:"id"`
	RecruiterID        uuid.UUID      `db:"recruiter_id" json:"recruiter_id"`
	Company            string         `db:"company" json:"company"`
	JobTitle           string         `db:"job_title" json:"job_title"`
	Location           sql.NullString `db:"location" json:"location"`
	MinSalary          sql.NullInt64  `db:"min_salary" json:"min_salary"`
	MaxSalary          sql.NullInt64  `db:"max_salary" json:"max_salary"`
	JobType            sql.NullString `db:"job_type" json:"job_type"`
	JobDescription     sql.NullString `db:"job_description" json:"job_description"`
	Skills             sql.NullString `db:"skills" json:"skills"`
	MinExperience      sql.NullInt64  `db:"min_experience" json:"min_experience"`
	MaxExperience      sql.NullInt64  `db:"max_experience" json:"max_experience"`
	WorkMode           sql.NullString `db:"work_mode" json:"work_mode"`
	Industry           sql.NullString `db:"industry" json:"industry"`
	Qualification      sql.NullString `db:"qualification" json:"qualification"`
	Vacancies          sql.NullInt64  `db:"vacancies" json:"vacancies"`
	Requirements       sql.NullString `db:"requirements" json:"requirements"`
	Perks              sql.NullString `db:"perks" json:"perks"`
	CandidateProfile   sql.NullString `db:"candidate_profile" json:"candidate_profile"`
	AboutCompany       sql.NullString `db:"about_company" json:"about_company"`
	EmploymentCategory sql.NullString `db:"employment_category" json:"employment_category"`
	ExpiryDate         *time.Time     `db:"expiry_date" json:"expiry_date"`
	IsActive           bool           `db:"is_active" json:"is_active"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

// JobWithApplies decorates a recruiter's job with its application count.
type JobWithApplies struct {
	Job
	Applies int64 `db:"applies" json:"applies"`
}
