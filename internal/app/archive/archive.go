package archive

//go:generate mockgen -source=archive.go -destination=archive_mock.go -package=archive

import "context"

// Mission is a completed run kept for review
type Mission struct {
	ID       string
	Date     string
	Duration string
	Distance string
}

// Archive lists past missions and their log lines
type Archive interface {
	Missions(ctx context.Context) ([]Mission, error)
	Logs(ctx context.Context, id string) ([]string, error)
}
