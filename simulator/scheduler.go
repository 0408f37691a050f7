package simulator

import (
	"fmt"
	"sync"
	"time"
)

// SchedulerConfig holds the parameters of a live interactive run.
type SchedulerConfig struct {
	AvgServiceRate float64       `json:"avgServiceRate"` // Mean patients served per hour; mean service duration = 60/rate minutes
	MinuteScale    time.Duration `json:"-"`              // Real duration of one simulated minute (accelerated time; default 1s)
	IdleTick       time.Duration `json:"-"`              // Poll interval while the waiting set is empty
	RandomSeed     int64         `json:"randomSeed"`     // Random seed for reproducibility (0 = use time-based seed)
}

// DefaultSchedulerConfig returns a live clinic at 4 patients per hour with
// one simulated minute compressed into one real second.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		AvgServiceRate: 4.0,
		MinuteScale:    time.Second,
		IdleTick:       100 * time.Millisecond,
	}
}

// Validate checks if configuration values are reasonable
func (c *SchedulerConfig) Validate() error {
	if c.AvgServiceRate <= 0 {
		return ErrInvalidParameter("avgServiceRate must be > 0")
	}
	if c.MinuteScale < 0 {
		return ErrInvalidParameter("minuteScale must be >= 0")
	}
	if c.IdleTick <= 0 {
		return ErrInvalidParameter("idleTick must be > 0")
	}
	return nil
}

// QueueEntry is one row of a waiting-set snapshot, in service order.
type QueueEntry struct {
	ID                 int      `json:"id"`
	Priority           Priority `json:"priority"`
	ElapsedWaitMinutes float64  `json:"elapsedWaitMinutes"` // Simulated minutes waited so far
}

// LiveStatistics is the scheduler's best-effort statistics snapshot.
// It never fails: with no completed patients the wait fields stay zero.
type LiveStatistics struct {
	QueueSize        int     `json:"queueSize"`
	CurrentPatientID int     `json:"currentPatientId"` // 0 = server idle
	AvgWaitMinutes   float64 `json:"avgWaitMinutes"`
	MaxWaitMinutes   float64 `json:"maxWaitMinutes"`
	CompletedCount   int     `json:"completedCount"`
}

// Scheduler is the live single-server queue: a priority-ordered waiting set,
// one in-service slot, and an append-only completed set. All state belongs
// to the Scheduler instance; multiple independent schedulers can coexist.
//
// Mutations are serialized under one mutex by the service goroutine and the
// admission path; readers (QueueSnapshot, CurrentStatistics) copy out under
// a brief lock and may observe slightly stale, eventually-consistent views.
type Scheduler struct {
	config      SchedulerConfig
	src         *RandomSource
	serviceMean float64 // Mean service minutes, precomputed from AvgServiceRate

	mu         sync.Mutex
	waiting    *waitingQueue
	completed  []ServiceRecord
	current    *ServiceRecord // In-service patient, nil while idle
	nextID     int
	running    bool
	stopCh     chan struct{}
	generation int // Bumped by Reset; a timer from an older generation discards its record
	inFlight   int // Service timers started and not yet finalized (0 or 1 occupies the slot)

	// Injectable time hooks for tests.
	now   func() time.Time
	sleep func(d time.Duration)

	// Event logging callback (optional, for UI/debugging)
	LogEvent func(msg string)
}

// NewScheduler creates a stopped scheduler with an empty queue.
func NewScheduler(config SchedulerConfig) (*Scheduler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	mean, err := ServiceMeanMinutes(config.AvgServiceRate)
	if err != nil {
		return nil, err
	}
	return &Scheduler{
		config:      config,
		src:         NewRandomSource(config.RandomSeed),
		serviceMean: mean,
		waiting:     newWaitingQueue(),
		completed:   make([]ServiceRecord, 0),
		now:         time.Now,
		sleep:       time.Sleep,
	}, nil
}

// AddPatient admits a patient into the waiting set at the given priority and
// returns the assigned ID. Admission is safe to call from any goroutine at
// any time, never blocks beyond a brief lock, and never preempts a patient
// already in service.
func (s *Scheduler) AddPatient(priority Priority) (int, error) {
	if !priority.Valid() {
		return 0, ErrInvalidParameter(fmt.Sprintf("priority must be 1..3, got %d", int(priority)))
	}
	s.mu.Lock()
	s.nextID++
	a := Arrival{ID: s.nextID, Time: s.now(), Priority: priority}
	s.waiting.Push(a)
	queued := s.waiting.Len()
	s.mu.Unlock()

	s.logEvent("patient %d admitted (%s), %d waiting", a.ID, priority, queued)
	return a.ID, nil
}

// Start begins serving patients. Idempotent: starting a running scheduler is
// a no-op. Queue contents survive Start/Stop cycles.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	go s.serviceLoop(s.stopCh)
}

// Stop halts admission of waiting patients into service. Idempotent.
// Stop only gates whether the next patient is popped: a service timer
// already running completes independently and its record is still
// finalized. Elapsed service time is not preserved across Stop/Start
// beyond that; resumption semantics are deliberately undefined.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stopCh)
}

// Running reports whether the service loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Reset stops the scheduler and discards queue contents, completed records,
// and the ID counter. A service timer in flight when Reset is called still
// runs out, but its record belongs to the discarded run and is dropped on
// completion; the server slot stays occupied until that timer expires, so a
// post-Reset run can never put a second patient in service alongside it.
func (s *Scheduler) Reset() {
	s.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.waiting = newWaitingQueue()
	s.completed = make([]ServiceRecord, 0)
	s.current = nil
	s.nextID = 0
}

// serviceLoop is the single writer that moves patients from the waiting set
// through the in-service slot into the completed set.
func (s *Scheduler) serviceLoop(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}
		if s.serveNext() {
			continue
		}
		// Empty waiting set is the normal idle condition.
		select {
		case <-stop:
			return
		case <-time.After(s.config.IdleTick):
		}
	}
}

// serveNext pops one patient and runs their service to completion.
// Returns false when the waiting set was empty.
func (s *Scheduler) serveNext() bool {
	s.mu.Lock()
	if s.inFlight > 0 {
		// A timer from before a Stop/Start cycle or a Reset is still
		// running; the single server slot is occupied.
		s.mu.Unlock()
		return false
	}
	a, ok := s.waiting.Pop()
	if !ok {
		s.mu.Unlock()
		return false
	}
	minutes := s.src.serviceDraw(s.serviceMean)
	rec := ServiceRecord{
		PatientID:      a.ID,
		Priority:       a.Priority,
		ArrivalTime:    a.Time,
		ServiceStart:   s.now(),
		ServiceMinutes: minutes,
	}
	gen := s.generation
	s.inFlight++
	s.current = &rec
	s.mu.Unlock()

	s.logEvent("patient %d in service for %d min (waited %.1f min)",
		rec.PatientID, minutes, s.toSimMinutes(rec.WaitTime()))

	// The timer runs to completion even if Stop fires meanwhile; Stop only
	// gates the next pop.
	s.sleep(time.Duration(minutes) * s.config.MinuteScale)

	s.mu.Lock()
	s.inFlight--
	if gen != s.generation {
		// Reset discarded this run; drop the record. Reset already cleared
		// the in-service slot.
		s.mu.Unlock()
		return true
	}
	rec.ServiceEnd = s.now()
	s.completed = append(s.completed, rec)
	s.current = nil
	done := len(s.completed)
	s.mu.Unlock()

	s.logEvent("patient %d completed (%d total)", rec.PatientID, done)
	return true
}

// QueueSnapshot returns the waiting set in service order with each patient's
// elapsed wait, converted to simulated minutes. The copy is taken under a
// brief lock; the queue itself is never drained for display.
func (s *Scheduler) QueueSnapshot() []QueueEntry {
	s.mu.Lock()
	arrivals := s.waiting.Snapshot()
	now := s.now()
	s.mu.Unlock()

	entries := make([]QueueEntry, len(arrivals))
	for i, a := range arrivals {
		entries[i] = QueueEntry{
			ID:                 a.ID,
			Priority:           a.Priority,
			ElapsedWaitMinutes: s.toSimMinutes(now.Sub(a.Time)),
		}
	}
	return entries
}

// CurrentStatistics returns a best-effort view of the live run. An empty
// completed set degrades to zero placeholders rather than an error, so the
// display path can never halt the service task.
func (s *Scheduler) CurrentStatistics() LiveStatistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := LiveStatistics{
		QueueSize:      s.waiting.Len(),
		CompletedCount: len(s.completed),
	}
	if s.current != nil {
		stats.CurrentPatientID = s.current.PatientID
	}
	for _, rec := range s.completed {
		w := s.toSimMinutes(rec.WaitTime())
		stats.AvgWaitMinutes += w
		if w > stats.MaxWaitMinutes {
			stats.MaxWaitMinutes = w
		}
	}
	if len(s.completed) > 0 {
		stats.AvgWaitMinutes /= float64(len(s.completed))
	}
	return stats
}

// CompletedWaitTimes returns the wait time of every completed patient in
// completion order, in simulated minutes (for histogram rendering).
func (s *Scheduler) CompletedWaitTimes() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	waits := make([]float64, len(s.completed))
	for i, rec := range s.completed {
		waits[i] = s.toSimMinutes(rec.WaitTime())
	}
	return waits
}

// CompletedRecords returns a copy of the completed set, e.g. for
// SummarizeRecords.
func (s *Scheduler) CompletedRecords() []ServiceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ServiceRecord{}, s.completed...)
}

// toSimMinutes converts a real elapsed duration into simulated minutes
// according to MinuteScale.
func (s *Scheduler) toSimMinutes(d time.Duration) float64 {
	if s.config.MinuteScale <= 0 {
		return d.Minutes()
	}
	return float64(d) / float64(s.config.MinuteScale)
}

func (s *Scheduler) logEvent(format string, args ...interface{}) {
	if s.LogEvent != nil {
		s.LogEvent(fmt.Sprintf(format, args...))
	}
}
