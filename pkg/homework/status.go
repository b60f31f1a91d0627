package homework

import (
	"fmt"

	"github.com/jqs7/hwbot/pkg/model"
)

// ParseStatus renders the chat message for one homework record.
// record is usually an element of model.Response.Homeworks.
func ParseStatus(record interface{}) (string, error) {
	hw, ok := asHomework(record)
	if !ok {
		return "", &RecordError{Reason: "record is not an object, got " + typeName(record)}
	}
	name, ok := hw["homework_name"]
	if !ok || name == nil {
		return "", &RecordError{Reason: "homework_name is missing"}
	}
	status, _ := hw["status"].(string)
	verdict, ok := model.Verdicts[status]
	if !ok {
		return "", &RecordError{Reason: fmt.Sprintf("unknown or missing status %v", hw["status"])}
	}
	return fmt.Sprintf(model.StatusChangedMsg, fmt.Sprint(name), verdict), nil
}

func asHomework(record interface{}) (model.Homework, bool) {
	switch r := record.(type) {
	case model.Homework:
		return r, true
	case map[string]interface{}:
		return r, true
	default:
		return nil, false
	}
}
