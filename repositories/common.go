package repositories

import "portfolio-backend/database"

// nextSortOrder computes max(sort_order)+1 for the given model. New records
// land after existing siblings without renumbering. The read-then-write is
// allowed to race: sort order is a display hint, not a uniqueness key.
func nextSortOrder(model interface{}) (int, error) {
	var max int
	err := database.DB.Model(model).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
