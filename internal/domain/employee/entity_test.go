package employee

import "testing"

func strPtr(s string) *string { return &s }

func TestFullName(t *testing.T) {
	cases := []struct {
		name     string
		employee Employee
		want     string
	}{
		{
			name:     "first and last only",
			employee: Employee{FirstName: "Juan", LastName: "Dela Cruz"},
			want:     "Juan Dela Cruz",
		},
		{
			name:     "middle initial with period",
			employee: Employee{FirstName: "Maria", MiddleName: strPtr("Santos"), LastName: "Reyes"},
			want:     "Maria S. Reyes",
		},
		{
			name:     "blank middle name ignored",
			employee: Employee{FirstName: "Ana", MiddleName: strPtr("   "), LastName: "Lim"},
			want:     "Ana Lim",
		},
		{
			name:     "extra whitespace trimmed",
			employee: Employee{FirstName: "  Jose ", LastName: " Rizal  "},
			want:     "Jose Rizal",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.employee.FullName()
			if got != c.want {
				t.Errorf("FullName() = %q, want %q", got, c.want)
			}
		})
	}
}
