package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID               uuid.UUID      `db:"id" json:"id"`
	Company          string         `db:"company" json:"company"`
	Department       sql.NullString `db:"department" json:"department"`
	Rating           float64        `db:"rating" json:"rating"`
	Review           string         `db:"review" json:"review"`
	WorkLifeBalance  sql.NullInt64  `db:"work_life_balance" json:"work_life_balance"`
	Salary           sql.NullInt64  `db:"salary" json:"salary"`
	Promotions       sql.NullInt64  `db:"promotions" json:"promotions"`
	JobSecurity      sql.NullInt64  `db:"job_security" json:"job_security"`
	SkillDevelopment sql.NullInt64  `db:"skill_development" json:"skill_development"`
	WorkSatisfaction sql.NullInt64  `db:"work_satisfaction" json:"work_satisfaction"`
	CompanyCulture   sql.NullInt64  `db:"company_culture" json:"company_culture"`
	Gender           sql.NullString `db:"gender" json:"gender"`
	Likes            int64          `db:"likes" json:"likes"`
	Dislikes         int64          `db:"dislikes" json:"dislikes"`
	Timestamp        time.Time      `db:"timestamp" json:"timestamp"`
}
