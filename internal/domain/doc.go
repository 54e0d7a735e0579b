// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (courses, plans, raw sheet records) and contracts
// (readers, stores, services) only.
package domain
