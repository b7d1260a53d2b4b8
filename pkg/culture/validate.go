package culture

import "slices"

// Validate checks the enumerated parameters that are present. Each guard is
// independent; type is checked first, then format, then status, and the first
// violation is returned.
func (q *Query) Validate() error {
	err := q.guard(paramType, allowedTypes)
	if err != nil {
		return err
	}

	err = q.guard(paramFormat, allowedFormats)
	if err != nil {
		return err
	}

	return q.guard(paramStatus, allowedStatuses)
}

func (q *Query) guard(key string, allowed []string) error {
	values, ok := q.Get(key)
	if !ok {
		return nil
	}

	for _, value := range values {
		if !slices.Contains(allowed, value) {
			return &ValidationError{Field: key, Value: value, Allowed: append([]string(nil), allowed...)}
		}
	}

	return nil
}
