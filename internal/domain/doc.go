// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (labels, statuses, money) and contracts (interfaces)
// only, plus the error kinds the services report.
package domain
