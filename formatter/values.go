package formatter

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Float renders the way the application expects decimal values: integral
// values keep a trailing ".0" and very small or large ones use an exponent.
type Float float64

func (f Float) String() string {
	return FormatFloat(float64(f))
}

func FormatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}

	return s
}

var (
	errNotInteger = errors.New("must be an integer")
	errNotNumber  = errors.New("must be a number")
	errNotFinite  = errors.New("must be a finite number")
	errOutOfRange = errors.New("is out of the integer range")
	errNotString  = errors.New("must be a string")
	errNotList    = errors.New("must be a list")
)

func (p *Param) convert(v interface{}) (interface{}, error) {
	switch p.Type {
	case TypeString:
		return toString(v)
	case TypeEnum, TypeToggle:
		return p.convertOption(v)
	case TypeInt:
		i, err := toInt(v)
		if err != nil {
			return nil, err
		}

		return i, p.checkBounds(float64(i))
	case TypeFloat:
		f, err := toFloat(v)
		if err != nil {
			return nil, err
		}

		return Float(f), p.checkBounds(f)
	case TypeIntList, TypeFloatList:
		return p.convertList(v)
	}

	return nil, fmt.Errorf("unknown type %q", p.Type)
}

func (p *Param) convertOption(v interface{}) (interface{}, error) {
	if b, ok := v.(bool); ok && p.Type == TypeToggle {
		return lo.Ternary(b, "ENABLE", "DISABLE"), nil
	}

	var s string
	if i, err := toInt(v); err == nil {
		s = strconv.Itoa(i)
	} else if str, ok := v.(string); ok {
		s = str
	} else {
		return nil, errNotString
	}

	options := p.options()
	if !lo.Contains(options, s) {
		return nil, fmt.Errorf("must be one of %v, got %q", options, s)
	}

	return s, nil
}

func (p *Param) convertList(v interface{}) (interface{}, error) {
	items, err := toList(v)
	if err != nil {
		return nil, err
	}

	if p.Length > 0 && len(items) != p.Length {
		return nil, fmt.Errorf("must have %d elements, got %d", p.Length, len(items))
	}

	if p.Type == TypeIntList {
		list := make([]int, 0, len(items))
		for i, item := range items {
			n, err := toInt(item)
			if err == nil {
				err = p.checkBounds(float64(n))
			}
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}

			list = append(list, n)
		}

		return list, nil
	}

	list := make([]Float, 0, len(items))
	for i, item := range items {
		f, err := toFloat(item)
		if err == nil {
			err = p.checkBounds(f)
		}
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		list = append(list, Float(f))
	}

	return list, nil
}

// checkBounds is written with negated comparisons so that NaN fails every
// bound.
func (p *Param) checkBounds(f float64) error {
	if math.IsNaN(f) {
		return errNotFinite
	}

	if p.Positive && !(f > 0) {
		return fmt.Errorf("must be greater than 0, got %s", FormatFloat(f))
	}

	if p.Min != nil && !(f >= *p.Min) {
		return fmt.Errorf("must be at least %s, got %s", FormatFloat(*p.Min), FormatFloat(f))
	}

	if p.Max != nil && !(f <= *p.Max) {
		return fmt.Errorf("must be at most %s, got %s", FormatFloat(*p.Max), FormatFloat(f))
	}

	return nil
}

func toString(v interface{}) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return "", errNotString
	}

	if i, err := toInt(v); err == nil {
		return strconv.Itoa(i), nil
	}

	if f, err := toFloat(v); err == nil {
		return FormatFloat(f), nil
	}

	return "", errNotString
}

func toInt(v interface{}) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int8:
		return int(val), nil
	case int16:
		return int(val), nil
	case int32:
		return int(val), nil
	case int64:
		if val < math.MinInt || val > math.MaxInt {
			return 0, errOutOfRange
		}
		return int(val), nil
	case uint:
		return uintToInt(uint64(val))
	case uint8:
		return int(val), nil
	case uint16:
		return int(val), nil
	case uint32:
		return uintToInt(uint64(val))
	case uint64:
		return uintToInt(val)
	case float32:
		return floatToInt(float64(val))
	case float64:
		return floatToInt(val)
	}

	return 0, errNotInteger
}

func uintToInt(u uint64) (int, error) {
	if u > math.MaxInt {
		return 0, errOutOfRange
	}

	return int(u), nil
}

func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errNotInteger
	}

	// float64(math.MaxInt) rounds up to 2^63 on 64-bit platforms
	if f < math.MinInt || f >= math.MaxInt {
		return 0, errOutOfRange
	}

	return int(f), nil
}

// toFloat rejects NaN and infinities, the application can't parse them.
func toFloat(v interface{}) (float64, error) {
	var f float64

	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case Float:
		f = float64(val)
	default:
		i, err := toInt(v)
		if err != nil {
			return 0, errNotNumber
		}

		return float64(i), nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}

	return f, nil
}

func toList(v interface{}) ([]interface{}, error) {
	if v == nil {
		return nil, errNotList
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errNotList
	}

	items := make([]interface{}, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, nil
}
