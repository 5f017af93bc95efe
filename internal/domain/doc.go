// Package domain contains the core domain model for Portions.
//
// The domain is transport- and persistence-agnostic: it does not depend on
// file parsing, the terminal, or the filesystem. Infra/adapters map into/from
// these types. All operations are pure functions over their inputs; the
// conversion and density tables are constructed once and never mutated.
package domain
