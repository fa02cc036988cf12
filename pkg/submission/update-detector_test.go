package submission

import "testing"

func TestIsFormUpdated(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   bool
	}{
		{
			name:   "new submission",
			values: []string{"11/14/2025", "guest@example.org"},
			want:   false,
		},
		{
			name:   "email cleared by edit",
			values: []string{"11/14/2025", ""},
			want:   true,
		},
		{
			name:   "both empty",
			values: []string{"", ""},
			want:   false,
		},
		{
			name:   "email missing from sequence",
			values: []string{"11/14/2025"},
			want:   false,
		},
		{
			name:   "empty sequence",
			values: []string{},
			want:   false,
		},
		{
			// the other partial-update shape is not recognised
			name:   "timestamp cleared, email kept",
			values: []string{"", "guest@example.org"},
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFormUpdated(ExtractRecord(tt.values)); got != tt.want {
				t.Errorf("IsFormUpdated() = %v, want %v", got, tt.want)
			}
		})
	}
}
