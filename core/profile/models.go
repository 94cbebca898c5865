package profile

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/user"
)

// Profile is the union of the role-specific profile records; only the fields of
// the profile's Role are set by the backend.
type Profile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Role       user.Role `json:"role"`
	Department string    `json:"department,omitempty"`

	// student
	RollNumber string  `json:"rollNumber,omitempty"`
	Batch      string  `json:"batch,omitempty"`
	Semester   int     `json:"semester,omitempty"`
	CGPA       float64 `json:"cgpa,omitempty"`

	// supervisor
	Designation         string   `json:"designation,omitempty"`
	Expertise           []string `json:"expertise,omitempty"`
	MaxStudents         int      `json:"maxStudents,omitempty"`
	CurrentStudentCount int      `json:"currentStudentCount,omitempty"`
	AvailableSlots      int      `json:"availableSlots,omitempty"`

	// coordinator
	Office string `json:"office,omitempty"`
}

// Capacity summarises a supervisor's load.
type Capacity struct {
	Max       int
	Current   int
	Available int
}

// UsedPercent is the share of capacity in use, capped at 100.
func (c Capacity) UsedPercent() int {
	if c.Max <= 0 {
		return 0
	}
	pct := c.Current * 100 / c.Max
	if pct > 100 {
		return 100
	}
	return pct
}

func (p Profile) Capacity() Capacity {
	available := p.AvailableSlots
	if available == 0 && p.MaxStudents > p.CurrentStudentCount {
		available = p.MaxStudents - p.CurrentStudentCount
	}
	return Capacity{Max: p.MaxStudents, Current: p.CurrentStudentCount, Available: available}
}

// UpdateProfile holds the contact fields a user may edit.
type UpdateProfile struct {
	Name  string `form:"name" json:"name" validate:"required,notblank"`
	Phone string `form:"phone" json:"phone,omitempty" validate:"omitempty,max=20"`
}

func (up *UpdateProfile) Validate(validate *validator.Validate, translator ut.Translator) error {
	up.Name = core.CleanString(up.Name)
	up.Phone = core.CleanString(up.Phone)
	return core.ValidateStruct(validate, translator, up)
}
