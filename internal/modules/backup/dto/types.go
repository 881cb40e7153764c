package dto

import "time"

type StatusOutput struct {
	Status    string
	Dir       string
	LastSaved *time.Time
	LastError string
	Pending   bool
}

type ExportInput struct {
	Dir           string
	IncludeReport bool
}

type ExportOutput struct {
	Paths []string
}

type ImportOutput struct {
	Sessions     int
	Applications int
}
