package strategy

import (
	"fmt"
	"sort"
	"sync"

	domstrategy "github.com/salesboard/backend/internal/domain/sales/strategy"
	"github.com/salesboard/backend/internal/domain/shared"
)

// Registry manages named revenue and bonus strategy registrations.
// It is safe for concurrent use.
type Registry struct {
	mu                sync.RWMutex
	revenueStrategies map[string]domstrategy.RevenueStrategy
	bonusStrategies   map[string]domstrategy.BonusStrategy
	defaults          map[domstrategy.StrategyType]string
}

// NewRegistry creates an empty strategy registry
func NewRegistry() *Registry {
	return &Registry{
		revenueStrategies: make(map[string]domstrategy.RevenueStrategy),
		bonusStrategies:   make(map[string]domstrategy.BonusStrategy),
		defaults:          make(map[domstrategy.StrategyType]string),
	}
}

// RegisterRevenueStrategy registers a revenue strategy under its name
func (r *Registry) RegisterRevenueStrategy(s domstrategy.RevenueStrategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.Name()
	if _, exists := r.revenueStrategies[name]; exists {
		return fmt.Errorf("%w: revenue strategy '%s' already registered", shared.ErrAlreadyExists, name)
	}
	r.revenueStrategies[name] = s
	return nil
}

// RevenueStrategy returns a revenue strategy by name, or the default if name
// is empty
func (r *Registry) RevenueStrategy(name string) (domstrategy.RevenueStrategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		name = r.defaults[domstrategy.StrategyTypeRevenue]
		if name == "" {
			return nil, fmt.Errorf("%w: no default revenue strategy set", shared.ErrNotFound)
		}
	}

	s, exists := r.revenueStrategies[name]
	if !exists {
		return nil, fmt.Errorf("%w: revenue strategy '%s' not found", shared.ErrNotFound, name)
	}
	return s, nil
}

// ListRevenueStrategies returns all registered revenue strategy names
func (r *Registry) ListRevenueStrategies() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.revenueStrategies))
	for name := range r.revenueStrategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterBonusStrategy registers a bonus strategy under its name
func (r *Registry) RegisterBonusStrategy(s domstrategy.BonusStrategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.Name()
	if _, exists := r.bonusStrategies[name]; exists {
		return fmt.Errorf("%w: bonus strategy '%s' already registered", shared.ErrAlreadyExists, name)
	}
	r.bonusStrategies[name] = s
	return nil
}

// BonusStrategy returns a bonus strategy by name, or the default if name is
// empty
func (r *Registry) BonusStrategy(name string) (domstrategy.BonusStrategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		name = r.defaults[domstrategy.StrategyTypeBonus]
		if name == "" {
			return nil, fmt.Errorf("%w: no default bonus strategy set", shared.ErrNotFound)
		}
	}

	s, exists := r.bonusStrategies[name]
	if !exists {
		return nil, fmt.Errorf("%w: bonus strategy '%s' not found", shared.ErrNotFound, name)
	}
	return s, nil
}

// ListBonusStrategies returns all registered bonus strategy names
func (r *Registry) ListBonusStrategies() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.bonusStrategies))
	for name := range r.bonusStrategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetDefault sets the default strategy for a strategy type
func (r *Registry) SetDefault(strategyType domstrategy.StrategyType, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRegisteredLocked(strategyType, name) {
		return fmt.Errorf("%w: strategy '%s' of type '%s' not found", shared.ErrNotFound, name, strategyType)
	}

	r.defaults[strategyType] = name
	return nil
}

// Default returns the default strategy name for a strategy type
func (r *Registry) Default(strategyType domstrategy.StrategyType) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaults[strategyType]
}

// isRegisteredLocked checks registration without locking (caller must hold lock)
func (r *Registry) isRegisteredLocked(strategyType domstrategy.StrategyType, name string) bool {
	switch strategyType {
	case domstrategy.StrategyTypeRevenue:
		_, exists := r.revenueStrategies[name]
		return exists
	case domstrategy.StrategyTypeBonus:
		_, exists := r.bonusStrategies[name]
		return exists
	default:
		return false
	}
}
