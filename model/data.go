// Package model contains the domain models, request inputs and response
// projections of the forum service.
package model

// tablePrefix is the default table prefix used by TableName.
// Repositories may override it (see adapters/relica).
const tablePrefix = "forumhub_"
