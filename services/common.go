package services

// resolveSortOrder honors an explicit order from the caller, otherwise
// asks the repository for max+1 among existing siblings
func resolveSortOrder(explicit *int, next func() (int, error)) (int, error) {
	if explicit != nil {
		return *explicit, nil
	}
	return next()
}

// resolveVisible defaults a new record to visible unless explicitly suppressed
func resolveVisible(explicit *bool) bool {
	if explicit != nil {
		return *explicit
	}
	return true
}

// setString adds a column value to a partial-update map when supplied
func setString(fields map[string]interface{}, column string, value *string) {
	if value != nil {
		fields[column] = *value
	}
}
