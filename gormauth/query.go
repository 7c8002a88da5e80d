// Package gormauth integrates the authority engine with gorm. It provides a
// query wrapper so list queries resolve to their record type's policy, an
// ownership policy for the common owner-column check, and DSN helpers for
// opening the database the way the surrounding application does.
package gormauth

import (
	"gorm.io/gorm"
)

// Query pairs a gorm query under construction with the model it selects.
// It implements authority.ModelProvider, so a ConventionResolver resolves a
// Query to its record type's policy; scope handlers then refine Query.DB.
//
// A MapResolver keys on the wrapper type itself and cannot tell one model's
// query from another's, so queries should be resolved by convention.
type Query struct {
	DB    *gorm.DB
	model any
}

// NewQuery wraps db as a query over model (e.g. &models.Article{}).
func NewQuery(db *gorm.DB, model any) *Query {
	return &Query{DB: db.Model(model), model: model}
}

// Model implements authority.ModelProvider.
func (q *Query) Model() any { return q.model }

// Where refines the underlying gorm query in place and returns the same
// wrapper, so scope handlers preserve resource identity.
func (q *Query) Where(cond any, args ...any) *Query {
	q.DB = q.DB.Where(cond, args...)
	return q
}

// Find runs the query into dest.
func (q *Query) Find(dest any) error {
	return q.DB.Find(dest).Error
}

// Count returns the number of rows the query currently matches.
func (q *Query) Count() (int64, error) {
	var n int64
	err := q.DB.Count(&n).Error
	return n, err
}
