// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// Window applies limit/offset pagination.
func Window(limit, offset int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(limit).Offset(offset)
	}
}

// OrderByID gives list queries a deterministic order.
func OrderByID() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}
}

// FoldCase returns the Unicode case-folded, NFC-normalised form of s.
// Columns searched with ContainsFold must hold text produced by FoldCase.
func FoldCase(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// ContainsFold matches rows where any of the folded columns contains term,
// ignoring case. The term is folded in Go, so the comparison does not rely
// on the database's LOWER(), which SQLite applies to ASCII only. LIKE
// wildcards in term are matched literally.
//
// Example usage:
//
//	db.Model(&BusinessModel{}).Scopes(db.ContainsFold("paws", "name_folded", "email_folded"))
func ContainsFold(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(columns) == 0 {
			return db
		}
		pattern := "%" + EscapeLike(FoldCase(term)) + "%"
		clauses := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, col := range columns {
			clauses = append(clauses, col+" LIKE ? ESCAPE '!'")
			args = append(args, pattern)
		}
		return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}

// EscapeLike escapes LIKE metacharacters with '!'. Backslash is avoided
// because MySQL treats it as a string-literal escape.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)
