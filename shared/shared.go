package shared

import (
	"lembra/shared/dto"
)

// ParseBoolLiteral accepts only the literal strings "true" and "false",
// as the list query contract requires. Anything else reports no value.
func ParseBoolLiteral(value string) (*bool, bool) {
	switch value {
	case "":
		return nil, true
	case "true":
		v := true

		return &v, true
	case "false":
		v := false

		return &v, true
	default:
		return nil, false
	}
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
