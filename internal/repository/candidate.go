package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/managejob/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CandidateFilters is the request-scoped set of optional search criteria.
// Empty fields impose no constraint. Gender accepts "All" and "Any" as
// wildcards (the two sentinels used by the two search endpoints).
type CandidateFilters struct {
	FullName          string
	Email             string
	Phone             string
	Skills            string
	AllSkillsRequired bool
	MinExperience     *float64
	MaxExperience     *float64
	CurrRole          string
	Company           string
	Education         string
	EducationDetailed string
	FieldOfStudy      string
	Institution       string
	GraduationYear    *int // exact match
	GraduationYearMin *int // threshold
	JobType           string
	JobTypes          []string // membership; "Any" disables the constraint
	Availability      string
	Location          string
	PrefLocation      string
	PinCode           string
	Gender            string
	MinAge            *int
	MaxAge            *int
	Languages         string
	Achievements      string
}

type predicateKind int

const (
	predicateSubstring predicateKind = iota
	predicateEquals
	predicateIn
	predicateGte
	predicateLte
)

type predicate struct {
	column string
	kind   predicateKind
	value  interface{}
	values []interface{}
}

const genderWildcardAll = "All"
const genderWildcardAny = "Any"

const jobTypeAny = "Any"

// predicates folds the present criteria into an ordered predicate list.
// The minimum-experience criterion is deliberately absent: the stored
// experience column is free text, so it is applied after the fetch.
func (f *CandidateFilters) predicates(now time.Time) []predicate {
	var preds []predicate

	substr := func(column, value string) {
		if value != "" {
			preds = append(preds, predicate{column: column, kind: predicateSubstring, value: value})
		}
	}
	equals := func(column, value string) {
		if value != "" {
			preds = append(preds, predicate{column: column, kind: predicateEquals, value: value})
		}
	}

	substr("full_name", f.FullName)
	substr("email", f.Email)
	equals("phone", f.Phone)

	if f.Skills != "" {
		if f.AllSkillsRequired {
			for _, skill := range strings.Split(f.Skills, ",") {
				substr("skills", strings.TrimSpace(skill))
			}
		} else {
			substr("skills", f.Skills)
		}
	}

	substr("curr_role", f.CurrRole)
	substr("company", f.Company)
	substr("education", f.Education)
	substr("education_detailed", f.EducationDetailed)
	substr("field_of_study", f.FieldOfStudy)
	substr("institution", f.Institution)
	substr("address", f.Location)
	substr("pref_location", f.PrefLocation)
	substr("languages", f.Languages)
	substr("achievements", f.Achievements)

	equals("pin_code", f.PinCode)
	equals("job_type", f.JobType)
	equals("availability", f.Availability)

	if len(f.JobTypes) > 0 && !containsString(f.JobTypes, jobTypeAny) {
		values := make([]interface{}, 0, len(f.JobTypes))
		for _, jt := range f.JobTypes {
			values = append(values, jt)
		}
		preds = append(preds, predicate{column: "job_type", kind: predicateIn, values: values})
	}

	if f.Gender != "" && f.Gender != genderWildcardAll && f.Gender != genderWildcardAny {
		preds = append(preds, predicate{column: "gender", kind: predicateEquals, value: f.Gender})
	}

	if f.GraduationYear != nil {
		preds = append(preds, predicate{column: "graduation_year", kind: predicateEquals, value: *f.GraduationYear})
	}
	if f.GraduationYearMin != nil {
		preds = append(preds, predicate{column: "graduation_year", kind: predicateGte, value: *f.GraduationYearMin})
	}

	// age bounds translate to a date-of-birth window against the current year
	if f.MinAge != nil {
		latest := fmt.Sprintf("%d-12-31", now.Year()-*f.MinAge)
		preds = append(preds, predicate{column: "dob", kind: predicateLte, value: latest})
	}
	if f.MaxAge != nil {
		earliest := fmt.Sprintf("%d-01-01", now.Year()-*f.MaxAge)
		preds = append(preds, predicate{column: "dob", kind: predicateGte, value: earliest})
	}

	return preds
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

const candidateColumns = `
			bin_to_uuid(user_id) as user_id,
			full_name,
			phone,
			email,
			gender,
			dob,
			address,
			pin_code,
			education,
			education_detailed,
			field_of_study,
			institution,
			graduation_year,
			skills,
			experience,
			curr_role,
			company,
			job_type,
			availability,
			pref_location,
			languages,
			resume_link,
			profile_picture,
			portfolio_links,
			linkedin_sync,
			internships,
			projects,
			profile_summary,
			accomplishments,
			competitive_exams,
			employment,
			achievements,
			academic_achievements,
			created_at,
			updated_at,
			deleted_at`

// buildSearchQuery folds the predicate list into a single WHERE clause.
func buildSearchQuery(filters *CandidateFilters, now time.Time) (string, []interface{}) {
	query := `SELECT ` + candidateColumns + `
		FROM user_details
		WHERE deleted_at IS NULL`

	args := []interface{}{}

	if filters == nil {
		return query, args
	}

	for _, p := range filters.predicates(now) {
		switch p.kind {
		case predicateSubstring:
			query += ` AND LOWER(` + p.column + `) LIKE ?`
			args = append(args, "%"+strings.ToLower(fmt.Sprintf("%v", p.value))+"%")
		case predicateEquals:
			query += ` AND ` + p.column + ` = ?`
			args = append(args, p.value)
		case predicateIn:
			query += ` AND ` + p.column + ` IN (?` + strings.Repeat(", ?", len(p.values)-1) + `)`
			args = append(args, p.values...)
		case predicateGte:
			query += ` AND ` + p.column + ` >= ?`
			args = append(args, p.value)
		case predicateLte:
			query += ` AND ` + p.column + ` <= ?`
			args = append(args, p.value)
		}
	}

	return query, args
}

// parseExperienceYears extracts the leading numeric portion of a free-text
// experience value: "3.5 years" -> 3.5, "2 years 6 months" -> 2, "" -> 0.
func parseExperienceYears(experience string) float64 {
	trimmed := strings.TrimSpace(experience)

	end := 0
	seenDot := false
	for end < len(trimmed) {
		ch := trimmed[end]
		if ch >= '0' && ch <= '9' {
			end++
			continue
		}
		if ch == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}

	if end == 0 {
		return 0
	}

	var years float64
	if _, err := fmt.Sscanf(trimmed[:end], "%f", &years); err != nil {
		return 0
	}
	return years
}

// filterByExperience is the final transform stage of a search: it runs after
// the composed query so every SQL predicate has already been applied.
func filterByExperience(profiles []domain.CandidateProfile, minYears float64) []domain.CandidateProfile {
	filtered := make([]domain.CandidateProfile, 0, len(profiles))
	for _, p := range profiles {
		if parseExperienceYears(p.Experience.String) >= minYears {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

type candidateRepository struct {
	db *sqlx.DB
}

func newCandidateRepository(db *sqlx.DB) *candidateRepository {
	return &candidateRepository{
		db: db,
	}
}

func (r *candidateRepository) Search(ctx context.Context, filters *CandidateFilters) ([]domain.CandidateProfile, error) {
	query, args := buildSearchQuery(filters, time.Now())

	var profiles []domain.CandidateProfile
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, fmt.Errorf("search candidates failed: %w", err)
	}

	if filters != nil && filters.MinExperience != nil {
		profiles = filterByExperience(profiles, *filters.MinExperience)
	}
	if filters != nil && filters.MaxExperience != nil {
		kept := make([]domain.CandidateProfile, 0, len(profiles))
		for _, p := range profiles {
			if parseExperienceYears(p.Experience.String) <= *filters.MaxExperience {
				kept = append(kept, p)
			}
		}
		profiles = kept
	}

	if profiles == nil {
		profiles = []domain.CandidateProfile{}
	}

	return profiles, nil
}

func (r *candidateRepository) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	const query = `
	INSERT INTO user_details (user_id, full_name, email)
	VALUES (uuid_to_bin(?), ?, ?);
	`

	if _, err := r.db.ExecContext(ctx, query, profile.UserID, profile.FullName.String, profile.Email.String); err != nil {
		return fmt.Errorf("db insert user details: %w", err)
	}

	return nil
}

func (r *candidateRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM user_details WHERE user_id = uuid_to_bin(?) AND deleted_at IS NULL`

	var profile domain.CandidateProfile
	if err := r.db.GetContext(ctx, &profile, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select user details by user id failed: %w", err)
	}

	return &profile, nil
}

func (r *candidateRepository) GetByEmail(ctx context.Context, email string) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM user_details WHERE email = ? AND deleted_at IS NULL`

	var profile domain.CandidateProfile
	if err := r.db.GetContext(ctx, &profile, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select user details by email failed: %w", err)
	}

	return &profile, nil
}

// UpdateDetailsInput carries the full edit form of the candidate dashboard.
type UpdateDetailsInput struct {
	FullName             *string
	Phone                *string
	Email                *string
	Gender               *string
	DOB                  *string
	Address              *string
	Education            *string
	Skills               *string
	CurrRole             *string
	ResumeLink           *string
	Languages            *string
	Internships          *string
	Projects             *string
	ProfileSummary       *string
	Accomplishments      *string
	CompetitiveExams     *string
	Employment           *string
	AcademicAchievements *string
}

// UpdateProfileInput carries the public profile edit form.
type UpdateProfileInput struct {
	FullName       *string
	Phone          *string
	Experience     *string
	Education      *string
	FieldOfStudy   *string
	Institution    *string
	GraduationYear *int
	Achievements   *string
	Skills         *string
	CurrRole       *string
	ResumeLink     *string
	ProfilePicture *string
	PortfolioLinks *string
	LinkedinSync   *string
}

func (r *candidateRepository) UpdateDetailsByUserID(ctx context.Context, userID uuid.UUID, details UpdateDetailsInput) (*domain.CandidateProfile, error) {
	assignments, args := buildAssignments(map[string]interface{}{
		"full_name":             details.FullName,
		"phone":                 details.Phone,
		"email":                 details.Email,
		"gender":                details.Gender,
		"dob":                   details.DOB,
		"address":               details.Address,
		"education":             details.Education,
		"skills":                details.Skills,
		"curr_role":             details.CurrRole,
		"resume_link":           details.ResumeLink,
		"languages":             details.Languages,
		"internships":           details.Internships,
		"projects":              details.Projects,
		"profile_summary":       details.ProfileSummary,
		"accomplishments":       details.Accomplishments,
		"competitive_exams":     details.CompetitiveExams,
		"employment":            details.Employment,
		"academic_achievements": details.AcademicAchievements,
	})
	if len(assignments) == 0 {
		return r.GetByUserID(ctx, userID)
	}

	query := `UPDATE user_details SET ` + strings.Join(assignments, ", ") + ` WHERE user_id = uuid_to_bin(?)`
	args = append(args, userID)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update user details failed: %w", err)
	}

	return r.GetByUserID(ctx, userID)
}

func (r *candidateRepository) UpdateProfileByEmail(ctx context.Context, email string, profile UpdateProfileInput) (*domain.CandidateProfile, error) {
	assignments, args := buildAssignments(map[string]interface{}{
		"full_name":       profile.FullName,
		"phone":           profile.Phone,
		"experience":      profile.Experience,
		"education":       profile.Education,
		"field_of_study":  profile.FieldOfStudy,
		"institution":     profile.Institution,
		"graduation_year": profile.GraduationYear,
		"achievements":    profile.Achievements,
		"skills":          profile.Skills,
		"curr_role":       profile.CurrRole,
		"resume_link":     profile.ResumeLink,
		"profile_picture": profile.ProfilePicture,
		"portfolio_links": profile.PortfolioLinks,
		"linkedin_sync":   profile.LinkedinSync,
	})
	if len(assignments) == 0 {
		return r.GetByEmail(ctx, email)
	}

	query := `UPDATE user_details SET ` + strings.Join(assignments, ", ") + ` WHERE email = ?`
	args = append(args, email)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	return r.GetByEmail(ctx, email)
}

// buildAssignments keeps only set (non-nil pointer) columns, in stable order.
func buildAssignments(columns map[string]interface{}) ([]string, []interface{}) {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	assignments := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, name := range names {
		switch v := columns[name].(type) {
		case *string:
			if v != nil {
				assignments = append(assignments, name+" = ?")
				args = append(args, *v)
			}
		case *int:
			if v != nil {
				assignments = append(assignments, name+" = ?")
				args = append(args, *v)
			}
		}
	}

	return assignments, args
}
