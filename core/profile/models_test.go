package profile

import (
	"strings"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/fyp/core"
)

func TestProfile_Capacity(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    Capacity
		wantPct int
	}{
		{
			name:    "backend slots",
			profile: Profile{MaxStudents: 8, CurrentStudentCount: 2, AvailableSlots: 5},
			want:    Capacity{Max: 8, Current: 2, Available: 5},
			wantPct: 25,
		},
		{
			name:    "slots derived from the load",
			profile: Profile{MaxStudents: 8, CurrentStudentCount: 6},
			want:    Capacity{Max: 8, Current: 6, Available: 2},
			wantPct: 75,
		},
		{
			name:    "over capacity",
			profile: Profile{MaxStudents: 4, CurrentStudentCount: 6},
			want:    Capacity{Max: 4, Current: 6},
			wantPct: 100,
		},
		{
			name:    "no maximum",
			profile: Profile{CurrentStudentCount: 3},
			want:    Capacity{Current: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.profile.Capacity()
			assert.Equal(t, tt.want, c)
			assert.Equal(t, tt.wantPct, c.UsedPercent())
		})
	}
}

func TestUpdateProfile_Validate(t *testing.T) {
	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)

	tests := []struct {
		name    string
		up      UpdateProfile
		want    UpdateProfile
		wantErr string
	}{
		{name: "valid", up: UpdateProfile{Name: "  Ali Raza ", Phone: " 0300 1234567 "}, want: UpdateProfile{Name: "Ali Raza", Phone: "0300 1234567"}},
		{name: "phone optional", up: UpdateProfile{Name: "Ali"}, want: UpdateProfile{Name: "Ali"}},
		{name: "blank name", up: UpdateProfile{Name: "   "}, wantErr: "name is required"},
		{name: "phone too long", up: UpdateProfile{Name: "Ali", Phone: strings.Repeat("9", 21)}, wantErr: "phone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.up.Validate(validate, translator)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, tt.up)
				return
			}
			if assert.Error(t, err) {
				assert.True(t, core.IsValidation(err))
				assert.Contains(t, core.UserMessage(err), tt.wantErr)
			}
		})
	}
}
