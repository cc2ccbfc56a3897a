package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	RoleJobSeeker = "Job Seeker"
	RoleRecruiter = "Recruiter"
)

// JobIDList is stored as a JSON array in the saved_jobs column.
type JobIDList []string

func (l JobIDList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *JobIDList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JobIDList: %T", value)
	}

	return json.Unmarshal(bytes, l)
}

func (l JobIDList) Contains(jobID string) bool {
	for _, id := range l {
		if id == jobID {
			return true
		}
	}
	return false
}

func (l JobIDList) Without(jobID string) JobIDList {
	out := make(JobIDList, 0, len(l))
	for _, id := range l {
		if id != jobID {
			out = append(out, id)
		}
	}
	return out
}

type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	Role      string    `db:"role" json:"role"`
	SavedJobs JobIDList `db:"saved_jobs" json:"saved_jobs"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}
