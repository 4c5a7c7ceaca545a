package constraint

import "testing"

func TestValidID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"number.integer", true},
		{"number.nonnegative", true},
		{"text.nonempty", true},
		{"unit<celsius>", true},
		{"unit<year>", true},
		{"a", true},
		{"a.b.c", true},
		{"snake_case.is_fine", true},
		{"", false},
		{"Number.Integer", false},
		{"number..integer", false},
		{".number", false},
		{"number.", false},
		{"unit<>", false},
		{"unit<a b>", false},
		{"unit<a<b>>", false},
		{"unit<celsius", false},
		{"9starts.with.digit", false},
		{"has space", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := ValidID(tt.id); got != tt.valid {
				t.Errorf("ValidID(%q) = %v, want %v", tt.id, got, tt.valid)
			}
		})
	}
}

func TestBaseAndParam(t *testing.T) {
	if got := Base("unit<celsius>"); got != "unit" {
		t.Errorf("Base(unit<celsius>) = %q, want unit", got)
	}
	if got := Base("number.integer"); got != "number.integer" {
		t.Errorf("Base(number.integer) = %q", got)
	}

	param, ok := Param("unit<celsius>")
	if !ok || param != "celsius" {
		t.Errorf("Param(unit<celsius>) = %q, %v", param, ok)
	}
	if _, ok := Param("number.integer"); ok {
		t.Error("Param(number.integer) should report no parameter")
	}
}

func TestParamID(t *testing.T) {
	if got := ParamID("unit", "year"); got != "unit<year>" {
		t.Errorf("ParamID = %q, want unit<year>", got)
	}
	if !ValidID(ParamID("unit", "year")) {
		t.Error("ParamID output should be a valid identifier")
	}
}

func TestDefinitionReason(t *testing.T) {
	withExplain := &Definition{
		ID:      "number.positive",
		Explain: func(v any) string { return "nope" },
	}
	if got := withExplain.Reason(0); got != "nope" {
		t.Errorf("Reason = %q, want nope", got)
	}

	// Without an explainer the reason defaults to the identifier.
	bare := &Definition{ID: "number.positive"}
	if got := bare.Reason(0); got != "number.positive" {
		t.Errorf("Reason = %q, want number.positive", got)
	}
}
