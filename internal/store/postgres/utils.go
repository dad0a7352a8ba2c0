package postgres

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var sortableColumns = []string{"created_at", "updated_at", "t_start_ms", "status"}

// addOrderBy applies an "column" or "column:direction" ordering expression,
// ignoring columns outside the allow-list.
func addOrderBy(db *gorm.DB, orderBy string) *gorm.DB {
	if orderBy == "" {
		return db
	}

	var column, order string
	expression := strings.Split(orderBy, ":")
	column = strings.ToLower(expression[0])
	if len(expression) == 2 {
		order = strings.ToLower(expression[1])
	}

	if !containsString(sortableColumns, column) {
		return db
	}
	if order == "asc" || order == "desc" {
		return db.Order(fmt.Sprintf(`"%s" %s`, column, order))
	}
	return db.Order(fmt.Sprintf(`"%s"`, column))
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
