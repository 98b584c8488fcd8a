// Package model provides core state management for estimators.
//
// Estimators compose a StateManager to track whether they have been
// trained and what data shape they were trained on:
//
//	type LeastSquares struct {
//	    State *model.StateManager
//	    // estimator-specific fields
//	}
//
//	func (ls *LeastSquares) Fit(x, y []float64) error {
//	    // training logic
//	    ls.State.SetFitted()
//	    ls.State.SetDimensions(1, len(x))
//	    return nil
//	}
//
// The fitted flag prevents usage of untrained models; all accessors are
// safe for concurrent use.
package model

import "sync"

// EstimatorState represents the learning state of a model.
type EstimatorState int

const (
	// NotFitted indicates the model is not yet trained.
	NotFitted EstimatorState = iota
	// Fitted indicates the model has been trained.
	Fitted
)

// StateManager tracks the fitted state and training dimensions of an
// estimator. The zero value is usable and reports NotFitted.
type StateManager struct {
	mu        sync.RWMutex
	state     EstimatorState
	nFeatures int
	nSamples  int
}

// NewStateManager creates a StateManager in the NotFitted state.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the estimator has been trained.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == Fitted
}

// SetFitted marks the estimator as trained. Called by estimator
// implementations after a successful Fit.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	s.state = Fitted
	s.mu.Unlock()
}

// Reset returns the estimator to its initial untrained state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	s.state = NotFitted
	s.nFeatures = 0
	s.nSamples = 0
	s.mu.Unlock()
}

// SetDimensions records the shape of the training data.
func (s *StateManager) SetDimensions(features, samples int) {
	s.mu.Lock()
	s.nFeatures = features
	s.nSamples = samples
	s.mu.Unlock()
}

// NFeatures returns the number of features seen during training.
func (s *StateManager) NFeatures() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nFeatures
}

// NSamples returns the number of samples seen during training.
func (s *StateManager) NSamples() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nSamples
}
