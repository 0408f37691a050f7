package simulator

import (
	"encoding/json"
	"fmt"
	"time"
)

// Priority represents a patient's triage class. Higher values are served first.
type Priority int

const (
	PriorityNormal    Priority = 1
	PriorityUrgent    Priority = 2
	PriorityEmergency Priority = 3
)

// Valid reports whether p is one of the defined triage classes.
func (p Priority) Valid() bool {
	return p >= PriorityNormal && p <= PriorityEmergency
}

// String returns the string representation of Priority
func (p Priority) String() string {
	switch p {
	case PriorityNormal:
		return "normal"
	case PriorityUrgent:
		return "urgent"
	case PriorityEmergency:
		return "emergency"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ParsePriority parses a string into a Priority
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "normal":
		return PriorityNormal, nil
	case "urgent":
		return PriorityUrgent, nil
	case "emergency":
		return PriorityEmergency, nil
	default:
		return PriorityNormal, fmt.Errorf("invalid priority: %s (must be 'normal', 'urgent', or 'emergency')", s)
	}
}

// MarshalJSON implements json.Marshaler for Priority
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements json.Unmarshaler for Priority
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Arrival is a patient entering the system. Immutable once created.
// IDs are unique within a simulation run and never reused.
type Arrival struct {
	ID       int       `json:"id"`
	Time     time.Time `json:"time"`
	Priority Priority  `json:"priority"`
}

// ServiceRecord captures one patient's full pass through the server.
// It is created when the patient enters service and finalized when
// service completes.
type ServiceRecord struct {
	PatientID      int       `json:"patientId"`
	Priority       Priority  `json:"priority"`
	ArrivalTime    time.Time `json:"arrivalTime"`
	ServiceStart   time.Time `json:"serviceStart"`
	ServiceEnd     time.Time `json:"serviceEnd"`
	ServiceMinutes int       `json:"serviceMinutes"`
}

// WaitTime is the interval between arrival and the start of service.
// Non-negative by construction: service never starts before arrival.
func (r ServiceRecord) WaitTime() time.Duration {
	return r.ServiceStart.Sub(r.ArrivalTime)
}

// WaitMinutes returns the wait time in fractional minutes.
func (r ServiceRecord) WaitMinutes() float64 {
	return r.WaitTime().Minutes()
}
