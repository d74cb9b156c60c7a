package events

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/trend"
)

var ErrInvalidWeight = errors.New("invalid weight")

type WeightReport struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
	// Weight in kilos, unless Unit is "lb"
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit,omitempty"`
}

// Event (DB level type) is sent by the app clients. For now only weight reports
// are recorded, but the data map leaves room for other event kinds.
type Event struct {
	ID        int               `json:"id"`
	Type      EventType         `json:"type"`
	UserID    string            `json:"userId"`
	Timestamp time.Time         `json:"timestamp"`
	Data      map[string]string `json:"data"`
}

func NewWeightReportEvent(wr WeightReport) Event {
	return Event{
		ID:        wr.ID,
		Type:      EventTypeWeightReport,
		UserID:    wr.UserID,
		Timestamp: wr.Timestamp,
		Data: map[string]string{
			"weight": strconv.FormatFloat(wr.Weight, 'f', -1, 64),
		},
	}
}

// WeightSample converts a weight_report event into a trend sample.
func (e Event) WeightSample() (trend.Sample, error) {
	if e.Type != EventTypeWeightReport {
		return trend.Sample{}, fmt.Errorf("event %d is not a weight report: %s", e.ID, e.Type)
	}
	weight, err := strconv.ParseFloat(e.Data["weight"], 64)
	if err != nil {
		return trend.Sample{}, fmt.Errorf("event %d: %w: %w", e.ID, ErrInvalidWeight, err)
	}
	return trend.Sample{
		Date:  e.Timestamp,
		Value: weight,
	}, nil
}

type EventType string

const (
	EventTypeWeightReport EventType = "weight_report"
)

func (et EventType) String() string {
	return string(et)
}

func (et EventType) IsValid() bool {
	switch et {
	case EventTypeWeightReport:
		return true
	default:
		return false
	}
}
