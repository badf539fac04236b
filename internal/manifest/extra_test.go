package manifest

import "testing"

func TestExtraSupports_Simple(t *testing.T) {
	tests := []struct {
		name      string
		required  []string
		supported []string
		request   []string
		want      bool
	}{
		{"empty spec, empty request", nil, nil, nil, true},
		{"empty spec rejects any key", nil, nil, []string{"genre"}, false},
		{"supported key accepted", nil, []string{"genre"}, []string{"genre"}, true},
		{"unsupported key rejected", nil, []string{"genre"}, []string{"year"}, false},
		{"required key missing", []string{"genre"}, []string{"genre"}, nil, false},
		{"required key present", []string{"genre"}, []string{"genre", "year"}, []string{"genre"}, true},
		{"required present among others", []string{"genre"}, []string{"genre", "year"}, []string{"year", "genre"}, true},
		{"duplicate requested keys", nil, []string{"genre"}, []string{"genre", "genre"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := SimpleExtra(tt.required, tt.supported)
			if got := e.Supports(tt.request); got != tt.want {
				t.Errorf("Supports(%v) = %v, want %v", tt.request, got, tt.want)
			}
		})
	}
}

func TestExtraSupports_Full(t *testing.T) {
	tests := []struct {
		name    string
		props   []ExtraProp
		request []string
		want    bool
	}{
		{"no props, empty request", nil, nil, true},
		{"no props rejects any key", nil, []string{"genre"}, false},
		{"declared key accepted", []ExtraProp{{Name: "genre"}}, []string{"genre"}, true},
		{"undeclared key rejected", []ExtraProp{{Name: "genre"}}, []string{"year"}, false},
		{
			"required prop missing fails even when others match",
			[]ExtraProp{{Name: "search", IsRequired: true}, {Name: "genre"}},
			[]string{"genre"},
			false,
		},
		{
			"required prop present",
			[]ExtraProp{{Name: "search", IsRequired: true}, {Name: "genre"}},
			[]string{"search"},
			true,
		},
		{
			"values list is advisory, never enforced",
			[]ExtraProp{{Name: "genre", Values: []string{"Action"}}},
			[]string{"genre"},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := FullExtra(tt.props...)
			if got := e.Supports(tt.request); got != tt.want {
				t.Errorf("Supports(%v) = %v, want %v", tt.request, got, tt.want)
			}
		})
	}
}
