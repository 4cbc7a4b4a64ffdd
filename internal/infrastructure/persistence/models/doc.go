// Package models contains the GORM persistence models and their mapping to
// domain entities. Column sizes mirror the domain constraint tables.
package models
