package params

import "testing"

func TestStringOrList(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    []string
		wantErr bool
	}{
		{
			name:  "single string",
			input: "urgent",
			want:  []string{"urgent"},
		},
		{
			name:  "string slice",
			input: []string{"a", "b"},
			want:  []string{"a", "b"},
		},
		{
			name:  "decoded json array",
			input: []any{"a", "b", "c"},
			want:  []string{"a", "b", "c"},
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "empty any slice",
			input:   []any{},
			wantErr: true,
		},
		{
			name:    "empty string slice",
			input:   []string{},
			wantErr: true,
		},
		{
			name:    "non-string element",
			input:   []any{"a", 7},
			wantErr: true,
		},
		{
			name:    "empty element",
			input:   []any{"a", ""},
			wantErr: true,
		},
		{
			name:    "empty element in string slice",
			input:   []string{"a", ""},
			wantErr: true,
		},
		{
			name:    "wrong type",
			input:   42,
			wantErr: true,
		},
		{
			name:    "nil",
			input:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StringOrList(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("StringOrList() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("StringOrList() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("StringOrList()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
