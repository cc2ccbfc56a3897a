package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/managejob/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func searchQueryAt(t *testing.T, filters *CandidateFilters) (string, []interface{}) {
	t.Helper()
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	return buildSearchQuery(filters, now)
}

func TestBuildSearchQueryNoCriteria(t *testing.T) {
	query, args := searchQueryAt(t, &CandidateFilters{})

	assert.Contains(t, query, "FROM user_details")
	assert.Contains(t, query, "WHERE deleted_at IS NULL")
	assert.NotContains(t, query, "AND")
	assert.Empty(t, args)
}

func TestBuildSearchQuerySubstring(t *testing.T) {
	query, args := searchQueryAt(t, &CandidateFilters{FullName: "Priya", Skills: "Go"})

	assert.Contains(t, query, "LOWER(full_name) LIKE ?")
	assert.Contains(t, query, "LOWER(skills) LIKE ?")
	assert.Equal(t, []interface{}{"%priya%", "%go%"}, args)
}

func TestBuildSearchQueryMandatorySkills(t *testing.T) {
	query, args := searchQueryAt(t, &CandidateFilters{
		Skills:            "Go, SQL, Redis",
		AllSkillsRequired: true,
	})

	// one AND'd LIKE per skill
	assert.Equal(t, 3, strings.Count(query, "LOWER(skills) LIKE ?"))
	assert.Equal(t, []interface{}{"%go%", "%sql%", "%redis%"}, args)
}

func TestBuildSearchQueryAgeRange(t *testing.T) {
	// year fixed to 2025 by searchQueryAt
	query, args := searchQueryAt(t, &CandidateFilters{MinAge: intPtr(25), MaxAge: intPtr(30)})

	assert.Contains(t, query, "dob <= ?")
	assert.Contains(t, query, "dob >= ?")
	assert.Equal(t, []interface{}{"2000-12-31", "1995-01-01"}, args)
}

func TestBuildSearchQueryGenderSentinels(t *testing.T) {
	for _, sentinel := range []string{"All", "Any", ""} {
		query, args := searchQueryAt(t, &CandidateFilters{Gender: sentinel})
		assert.NotContains(t, query, "gender = ?", "sentinel %q must impose no constraint", sentinel)
		assert.Empty(t, args)
	}

	query, args := searchQueryAt(t, &CandidateFilters{Gender: "Female"})
	assert.Contains(t, query, "gender = ?")
	assert.Equal(t, []interface{}{"Female"}, args)
}

func TestBuildSearchQueryJobTypeMembership(t *testing.T) {
	query, args := searchQueryAt(t, &CandidateFilters{JobTypes: []string{"Full-time", "Internship"}})
	assert.Contains(t, query, "job_type IN (?, ?)")
	assert.Equal(t, []interface{}{"Full-time", "Internship"}, args)

	// "Any" anywhere in the set disables the whole constraint
	query, args = searchQueryAt(t, &CandidateFilters{JobTypes: []string{"Full-time", "Any"}})
	assert.NotContains(t, query, "job_type IN")
	assert.Empty(t, args)
}

func TestBuildSearchQueryGraduationYear(t *testing.T) {
	query, args := searchQueryAt(t, &CandidateFilters{GraduationYearMin: intPtr(2020)})
	assert.Contains(t, query, "graduation_year >= ?")
	assert.Equal(t, []interface{}{2020}, args)

	query, args = searchQueryAt(t, &CandidateFilters{GraduationYear: intPtr(2021)})
	assert.Contains(t, query, "graduation_year = ?")
	assert.Equal(t, []interface{}{2021}, args)
}

func TestBuildSearchQueryEquality(t *testing.T) {
	query, args := searchQueryAt(t, &CandidateFilters{
		Phone:        "9876543210",
		PinCode:      "560001",
		JobType:      "Full-time",
		Availability: "Immediate",
	})

	assert.Contains(t, query, "phone = ?")
	assert.Contains(t, query, "pin_code = ?")
	assert.Contains(t, query, "job_type = ?")
	assert.Contains(t, query, "availability = ?")
	assert.Len(t, args, 4)
}

func TestBuildSearchQueryNilFilters(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	query, args := buildSearchQuery(nil, now)

	assert.Contains(t, query, "WHERE deleted_at IS NULL")
	assert.Empty(t, args)
}

func TestParseExperienceYears(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"3 years", 3},
		{"3.5 years", 3.5},
		{"2 years 6 months", 2},
		{"", 0},
		{"fresher", 0},
		{"  10+ years", 10},
		{"0.5", 0.5},
		{"7", 7},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, parseExperienceYears(tc.in), "input %q", tc.in)
	}
}

func TestFilterByExperience(t *testing.T) {
	profiles := []domain.CandidateProfile{
		candidateWithExperience("3.5 years"),
		candidateWithExperience("2 years 6 months"),
		candidateWithExperience(""),
		candidateWithExperience("5"),
	}

	filtered := filterByExperience(profiles, 3)

	require.Len(t, filtered, 2)
	assert.Equal(t, "3.5 years", filtered[0].Experience.String)
	assert.Equal(t, "5", filtered[1].Experience.String)
}

func TestFilterByExperienceZeroThresholdKeepsAll(t *testing.T) {
	profiles := []domain.CandidateProfile{
		candidateWithExperience(""),
		candidateWithExperience("1 year"),
	}

	assert.Len(t, filterByExperience(profiles, 0), 2)
}

func candidateWithExperience(experience string) domain.CandidateProfile {
	var p domain.CandidateProfile
	p.Experience.String = experience
	p.Experience.Valid = experience != ""
	return p
}
