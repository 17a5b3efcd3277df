// Package domain defines the values and service contracts shared across the app.
// It contains plain types (parameters, keys, exchange transcripts) and
// interfaces only; the arithmetic lives in the leaf packages.
package domain
