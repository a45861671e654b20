package layout

import "testing"

func TestDimension_Constructors(t *testing.T) {
	type tc struct {
		value     Dimension
		isAuto    bool
		isDefined bool
		unit      Unit
		amount    float32
	}

	tests := map[string]tc{
		"Undefined": {
			value: Undefined(),
			unit:  UnitUndefined,
		},
		"Auto": {
			value:  Auto(),
			isAuto: true,
			unit:   UnitAuto,
		},
		"Points": {
			value:     Points(100),
			isDefined: true,
			unit:      UnitPoints,
			amount:    100,
		},
		"Percent": {
			value:     Percent(50),
			isDefined: true,
			unit:      UnitPercent,
			amount:    50,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsAuto(); got != tt.isAuto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.isAuto)
			}
			if got := tt.value.IsDefined(); got != tt.isDefined {
				t.Errorf("IsDefined() = %v, want %v", got, tt.isDefined)
			}
			if tt.value.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", tt.value.Unit, tt.unit)
			}
			if tt.value.Value != tt.amount {
				t.Errorf("Value = %v, want %v", tt.value.Value, tt.amount)
			}
		})
	}
}

func TestDimension_Resolve(t *testing.T) {
	type tc struct {
		value     Dimension
		parent    float32
		expected  float32
		undefined bool
	}

	tests := map[string]tc{
		"points ignores parent": {
			value:    Points(50),
			parent:   100,
			expected: 50,
		},
		"points with undefined parent": {
			value:    Points(50),
			parent:   Undef,
			expected: 50,
		},
		"percent of parent": {
			value:    Percent(50),
			parent:   200,
			expected: 100,
		},
		"fractional percent": {
			value:    Percent(12.5),
			parent:   80,
			expected: 10,
		},
		"percent over one hundred": {
			value:    Percent(150),
			parent:   100,
			expected: 150,
		},
		"percent of undefined parent": {
			value:     Percent(50),
			parent:    Undef,
			undefined: true,
		},
		"auto is undefined": {
			value:     Auto(),
			parent:    100,
			undefined: true,
		},
		"undefined is undefined": {
			value:     Undefined(),
			parent:    100,
			undefined: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.value.Resolve(tt.parent)
			if tt.undefined {
				if !IsUndef(got) {
					t.Errorf("Resolve(%v) = %v, want Undef", tt.parent, got)
				}
				return
			}
			if got != tt.expected {
				t.Errorf("Resolve(%v) = %v, want %v", tt.parent, got, tt.expected)
			}
		})
	}
}

func TestUnit_String(t *testing.T) {
	tests := map[Unit]string{
		UnitUndefined: "undefined",
		UnitAuto:      "auto",
		UnitPoints:    "points",
		UnitPercent:   "percent",
	}

	for unit, want := range tests {
		if got := unit.String(); got != want {
			t.Errorf("Unit(%d).String() = %q, want %q", unit, got, want)
		}
	}
}

func TestClamp(t *testing.T) {
	type tc struct {
		v, minVal, maxVal float32
		expected          float32
	}

	tests := map[string]tc{
		"within bounds":     {v: 50, minVal: 10, maxVal: 100, expected: 50},
		"below min":         {v: 5, minVal: 10, maxVal: 100, expected: 10},
		"above max":         {v: 150, minVal: 10, maxVal: 100, expected: 100},
		"min wins conflict": {v: 50, minVal: 80, maxVal: 20, expected: 80},
		"undefined min":     {v: 5, minVal: Undef, maxVal: 100, expected: 5},
		"undefined max":     {v: 500, minVal: 10, maxVal: Undef, expected: 500},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := clamp(tt.v, tt.minVal, tt.maxVal); got != tt.expected {
				t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.minVal, tt.maxVal, got, tt.expected)
			}
		})
	}
}

func TestClamp_UndefinedValueStaysUndefined(t *testing.T) {
	if got := clamp(Undef, 10, 100); !IsUndef(got) {
		t.Errorf("clamp(Undef) = %v, want Undef", got)
	}
}
