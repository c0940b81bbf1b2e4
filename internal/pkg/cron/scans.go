package cron

import (
	"context"
	"time"
)

// MissedCheckoutScanner and CelebrationScanner are implemented by the
// attendance and employee services; the jobs here only supply timing.
type MissedCheckoutScanner interface {
	MissedCheckoutScan(ctx context.Context, date time.Time) (int, error)
}

type CelebrationScanner interface {
	CelebrationScan(ctx context.Context, date time.Time) (int, error)
}

type ScanJobs struct {
	attendance   MissedCheckoutScanner
	celebrations CelebrationScanner
}

func NewScanJobs(attendance MissedCheckoutScanner, celebrations CelebrationScanner) *ScanJobs {
	return &ScanJobs{
		attendance:   attendance,
		celebrations: celebrations,
	}
}

func (j *ScanJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("missed_checkout_scan", 1*time.Hour, j.RunMissedCheckoutScan)
	scheduler.AddJob("celebration_scan", 1*time.Hour, j.RunCelebrationScan)
}

// RunMissedCheckoutScan reminds employees with an open record for
// yesterday. Only fires in the evening window (20:00-20:59 local).
func (j *ScanJobs) RunMissedCheckoutScan(ctx context.Context) error {
	now := time.Now()
	if now.Hour() != 20 {
		return nil
	}
	_, err := j.attendance.MissedCheckoutScan(ctx, now)
	return err
}

// RunCelebrationScan sends birthday/anniversary greetings once a day,
// in the first hour of the morning.
func (j *ScanJobs) RunCelebrationScan(ctx context.Context) error {
	now := time.Now()
	if now.Hour() != 8 {
		return nil
	}
	_, err := j.celebrations.CelebrationScan(ctx, now)
	return err
}
