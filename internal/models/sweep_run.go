package models

import "time"

// SweepRunStatus represents the lifecycle state of a sweep run
type SweepRunStatus string

const (
	SweepRunStatusRunning   SweepRunStatus = "running"
	SweepRunStatusCompleted SweepRunStatus = "completed"
	SweepRunStatusFailed    SweepRunStatus = "failed"
)

// SweepRun records one execution of the recurring obligation sweep,
// whether triggered by the background worker or over the API.
type SweepRun struct {
	Base
	Status           SweepRunStatus `gorm:"not null" json:"status"`
	Trigger          string         `gorm:"not null" json:"trigger"`
	StartedAt        time.Time      `gorm:"not null" json:"started_at"`
	FinishedAt       *time.Time     `json:"finished_at,omitempty"`
	RootsScanned     int            `json:"roots_scanned"`
	RootsFailed      int            `json:"roots_failed"`
	InstancesCreated int            `json:"instances_created"`
	Truncated        bool           `json:"truncated"`
	Error            string         `json:"error,omitempty"`
}
