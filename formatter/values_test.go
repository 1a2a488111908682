//go:build !integration

package formatter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{
		0:        "0.0",
		2:        "2.0",
		-1:       "-1.0",
		0.15:     "0.15",
		3.5:      "3.5",
		1e-4:     "0.0001",
		4e-05:    "4e-05",
		1e-5:     "1e-05",
		1e15:     "1000000000000000.0",
		1e16:     "1e+16",
		123.4567: "123.4567",
	}

	for value, expected := range tests {
		assert.Equal(t, expected, FormatFloat(value), "%v", value)
	}

	assert.Equal(t, "NaN", FormatFloat(math.NaN()))
	assert.Equal(t, "+Inf", FormatFloat(math.Inf(1)))
	assert.Equal(t, "2.5", Float(2.5).String())
}

func TestToInt(t *testing.T) {
	tests := map[string]struct {
		value       interface{}
		expected    int
		expectedErr error
	}{
		"int":            {value: 3, expected: 3},
		"int64 (toml)":   {value: int64(4), expected: 4},
		"uint8":          {value: uint8(5), expected: 5},
		"integral float": {value: float64(6), expected: 6},
		"fraction":       {value: 6.5, expectedErr: errNotInteger},
		"infinity":       {value: math.Inf(1), expectedErr: errNotInteger},
		"NaN":            {value: math.NaN(), expectedErr: errNotInteger},
		"float overflow": {value: 1e20, expectedErr: errOutOfRange},
		"float at 2^63":  {value: float64(math.MaxInt64), expectedErr: errOutOfRange},
		"float minimum":  {value: float64(math.MinInt), expected: math.MinInt},
		"uint64 max":     {value: uint64(math.MaxUint64), expectedErr: errOutOfRange},
		"uint max int":   {value: uint64(math.MaxInt), expected: math.MaxInt},
		"string":         {value: "7", expectedErr: errNotInteger},
		"bool":           {value: true, expectedErr: errNotInteger},
	}

	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			i, err := toInt(tt.value)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, i)
		})
	}
}

func TestParam_Convert(t *testing.T) {
	one := 1.0
	ten := 10.0

	tests := map[string]struct {
		param         Param
		value         interface{}
		expected      interface{}
		expectedError string
	}{
		"string": {
			param:    Param{Type: TypeString},
			value:    "wing.fsm",
			expected: "wing.fsm",
		},
		"string from number": {
			param:    Param{Type: TypeString},
			value:    1e-5,
			expected: "1e-05",
		},
		"string from bool": {
			param:         Param{Type: TypeString},
			value:         false,
			expectedError: "must be a string",
		},
		"enum": {
			param:    Param{Type: TypeEnum, Options: []string{"XY", "XZ"}},
			value:    "XZ",
			expected: "XZ",
		},
		"enum with integer options": {
			param:    Param{Type: TypeEnum, Options: []string{"1", "2", "3"}},
			value:    int64(2),
			expected: "2",
		},
		"enum not an option": {
			param:         Param{Type: TypeEnum, Options: []string{"XY", "XZ"}},
			value:         "YZ",
			expectedError: `must be one of [XY XZ], got "YZ"`,
		},
		"toggle": {
			param:    Param{Type: TypeToggle},
			value:    "DISABLE",
			expected: "DISABLE",
		},
		"toggle from bool": {
			param:    Param{Type: TypeToggle},
			value:    true,
			expected: "ENABLE",
		},
		"toggle lowercase": {
			param:         Param{Type: TypeToggle},
			value:         "enable",
			expectedError: `must be one of [ENABLE DISABLE], got "enable"`,
		},
		"int in range": {
			param:    Param{Type: TypeInt, Min: &one, Max: &ten},
			value:    10,
			expected: 10,
		},
		"int below min": {
			param:         Param{Type: TypeInt, Min: &one},
			value:         0,
			expectedError: "must be at least 1.0, got 0.0",
		},
		"int not positive": {
			param:         Param{Type: TypeInt, Positive: true},
			value:         0,
			expectedError: "must be greater than 0, got 0.0",
		},
		"float": {
			param:    Param{Type: TypeFloat},
			value:    2,
			expected: Float(2),
		},
		"float above max": {
			param:         Param{Type: TypeFloat, Max: &ten},
			value:         10.5,
			expectedError: "must be at most 10.0, got 10.5",
		},
		"float NaN": {
			param:         Param{Type: TypeFloat},
			value:         math.NaN(),
			expectedError: "must be a finite number",
		},
		"float NaN with bounds": {
			param:         Param{Type: TypeFloat, Min: &one, Max: &ten},
			value:         Float(math.NaN()),
			expectedError: "must be a finite number",
		},
		"float infinity": {
			param:         Param{Type: TypeFloat},
			value:         math.Inf(-1),
			expectedError: "must be a finite number",
		},
		"int overflowing float": {
			param:         Param{Type: TypeInt},
			value:         1e20,
			expectedError: "is out of the integer range",
		},
		"positive int from huge uint64": {
			param:         Param{Type: TypeInt, Positive: true},
			value:         uint64(math.MaxUint64),
			expectedError: "is out of the integer range",
		},
		"float list with NaN element": {
			param:         Param{Type: TypeFloatList},
			value:         []float64{0.5, math.NaN()},
			expectedError: "element 1: must be a finite number",
		},
		"float from string": {
			param:         Param{Type: TypeFloat},
			value:         "0.5",
			expectedError: "must be a number",
		},
		"int list": {
			param:    Param{Type: TypeIntList, Positive: true},
			value:    []interface{}{int64(1), 2, 5.0},
			expected: []int{1, 2, 5},
		},
		"int list with invalid element": {
			param:         Param{Type: TypeIntList, Positive: true},
			value:         []int{1, -2},
			expectedError: "element 1: must be greater than 0, got -2.0",
		},
		"int list from scalar": {
			param:         Param{Type: TypeIntList},
			value:         1,
			expectedError: "must be a list",
		},
		"float list": {
			param:    Param{Type: TypeFloatList, Length: 3},
			value:    []float64{0.5, 1, 2.3},
			expected: []Float{0.5, 1, 2.3},
		},
		"float list with wrong length": {
			param:         Param{Type: TypeFloatList, Length: 3},
			value:         []float64{0.5, 1},
			expectedError: "must have 3 elements, got 2",
		},
	}

	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			value, err := tt.param.convert(tt.value)
			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}
