// Package profiles holds the in-memory applicant registry. There is no
// persistence layer: profiles live for the lifetime of the process and are
// seeded with demo applicants on startup.
package profiles

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yashbhanu1/Alternate-Credit/internal/domain"
)

// ErrNotFound is returned when a profile ID is unknown.
var ErrNotFound = fmt.Errorf("profile not found")

// Registry is a mutex-guarded store of applicant raw-signal records.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]domain.RawSignals
	order    []string // insertion order, for stable listings
	log      zerolog.Logger
}

// NewRegistry creates a registry seeded with the demo applicants.
func NewRegistry(log zerolog.Logger) *Registry {
	r := &Registry{
		profiles: make(map[string]domain.RawSignals),
		log:      log.With().Str("component", "profile_registry").Logger(),
	}

	for _, p := range DemoProfiles() {
		r.profiles[p.ProfileID] = p
		r.order = append(r.order, p.ProfileID)
	}
	r.log.Info().Int("count", len(r.order)).Msg("Profile registry seeded with demo applicants")

	return r
}

// validate enforces the scoring core's preconditions at the boundary.
func validate(signals domain.RawSignals) error {
	if len(signals.Financial.Transactions) == 0 {
		return fmt.Errorf("profile must include at least one monthly transaction")
	}
	if signals.Utilities.OnTimePayments > signals.Utilities.TotalBills {
		return fmt.Errorf("on-time payments (%d) cannot exceed total bills (%d)",
			signals.Utilities.OnTimePayments, signals.Utilities.TotalBills)
	}
	return nil
}

// Add stores a new profile, assigning an ID when the caller did not set one.
func (r *Registry) Add(signals domain.RawSignals) (domain.RawSignals, error) {
	if err := validate(signals); err != nil {
		return domain.RawSignals{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if signals.ProfileID == "" {
		signals.ProfileID = uuid.New().String()
	}
	if _, exists := r.profiles[signals.ProfileID]; exists {
		return domain.RawSignals{}, fmt.Errorf("profile %q already exists", signals.ProfileID)
	}

	r.profiles[signals.ProfileID] = signals
	r.order = append(r.order, signals.ProfileID)
	r.log.Debug().Str("profile_id", signals.ProfileID).Str("name", signals.Name).Msg("Profile added")

	return signals, nil
}

// Get returns the profile for id, or ErrNotFound.
func (r *Registry) Get(id string) (domain.RawSignals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	signals, ok := r.profiles[id]
	if !ok {
		return domain.RawSignals{}, ErrNotFound
	}
	return signals, nil
}

// List returns all profiles in insertion order.
func (r *Registry) List() []domain.RawSignals {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.RawSignals, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.profiles[id])
	}
	return out
}

// IDs returns the known profile IDs, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.order))
	copy(ids, r.order)
	sort.Strings(ids)
	return ids
}
