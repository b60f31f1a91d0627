package homework

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jqs7/hwbot/pkg/model"
)

// Validate checks the decoded body of the statuses endpoint and converts it
// to a model.Response. Only the top level is checked; records are left to
// ParseStatus.
func Validate(body interface{}) (*model.Response, error) {
	m, ok := body.(map[string]interface{})
	if !ok {
		return nil, &SchemaError{Kind: NotAMapping, Got: typeName(body)}
	}
	rawHomeworks, hasHomeworks := m["homeworks"]
	rawDate, hasDate := m["current_date"]
	if !hasHomeworks || !hasDate {
		return nil, &SchemaError{Kind: MissingKeys}
	}
	homeworks, ok := rawHomeworks.([]interface{})
	if !ok {
		return nil, &SchemaError{Kind: WrongHomeworksType, Got: typeName(rawHomeworks)}
	}
	return &model.Response{
		Homeworks:   homeworks,
		CurrentDate: toInt64(rawDate),
	}, nil
}

func toInt64(v interface{}) *int64 {
	var i int64
	switch n := v.(type) {
	case json.Number:
		parsed, err := n.Int64()
		if err != nil {
			return nil
		}
		i = parsed
	case float64:
		// math.MaxInt64 rounds up to 2^63 as a float64, so >= excludes it.
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return nil
		}
		i = int64(n)
	case int64:
		i = n
	case int:
		i = int64(n)
	default:
		return nil
	}
	return &i
}

func typeName(v interface{}) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
