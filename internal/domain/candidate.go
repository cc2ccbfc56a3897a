package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// CandidateProfile maps the user_details row recruiters search over. Most
// columns are free text filled in by the candidate, including experience
// (e.g. "3.5 years"), which is why search filters it after the fetch.
type CandidateProfile struct {
	UserID               uuid.UUID      `db:"user_id" json:"user_id"`
	FullName             sql.NullString `db:"full_name" json:"full_name"`
	Phone                sql.NullString `db:"phone" json:"phone"`
	Email                sql.NullString `db:"email" json:"email"`
	Gender               sql.NullString `db:"gender" json:"gender"`
	DOB                  *time.Time     `db:"dob" json:"dob"`
	Address              sql.NullString `db:"address" json:"address"`
	PinCode              sql.NullString `db:"pin_code" json:"pin_code"`
	Education            sql.NullString `db:"education" json:"education"`
	EducationDetailed    sql.NullString `db:"education_detailed" json:"education_detailed"`
	FieldOfStudy         sql.NullString `db:"field_of_study" json:"field_of_study"`
	Institution          sql.NullString `db:"institution" json:"institution"`
	GraduationYear       sql.NullInt64  `db:"graduation_year" json:"graduation_year"`
	Skills               sql.NullString `db:"skills" json:"skills"`
	Experience           sql.NullString `db:"experience" json:"experience"`
	CurrRole             sql.NullString `db:"curr_role" json:"curr_role"`
	Company              sql.NullString `db:"company" json:"company"`
	JobType              sql.NullString `db:"job_type" json:"job_type"`
	Availability         sql.NullString `db:"availability" json:"availability"`
	PrefLocation         sql.NullString `db:"pref_location" json:"pref_location"`
	Languages            sql.NullString `db:"languages" json:"languages"`
	ResumeLink           sql.NullString `db:"resume_link" json:"resume_link"`
	ProfilePicture       sql.NullString `db:"profile_picture" json:"profile_picture"`
	PortfolioLinks       sql.NullString `db:"portfolio_links" json:"portfolio_links"`
	LinkedinSync         sql.NullString `db:"linkedin_sync" json:"linkedin_sync"`
	Internships          sql.NullString `db:"internships" json:"internships"`
	Projects             sql.NullString `db:"projects" json:"projects"`
	ProfileSummary       sql.NullString `db:"profile_summary" json:"profile_summary"`
	Accomplishments      sql.NullString `db:"accomplishments" json:"accomplishments"`
	CompetitiveExams     sql.NullString `db:"competitive_exams" json:"competitive_exams"`
	Employment           sql.NullString `db:"employment" json:"employment"`
	Achievements         sql.NullString `db:"achievements" json:"achievements"`
	AcademicAchievements sql.NullString `db:"academic_achievements" json:"academic_achievements"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}
