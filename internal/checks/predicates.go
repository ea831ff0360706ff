package checks

import (
	"fmt"
	"sync"

	"github.com/lessonpath/pathcheck/pkg/models"
)

// Predicate is an exercise-specific check that does not fit the fixed
// check taxonomy. It returns nil on pass, or an error describing why the
// project fails the check.
type Predicate func(ref models.ProjectRef) error

// PredicateRegistry holds custom predicates keyed by id. The registry is
// populated at startup and read-only while validation runs.
type PredicateRegistry struct {
	mu         sync.RWMutex
	predicates map[string]Predicate
}

// NewPredicateRegistry creates a registry preloaded with the built-in
// learning path predicates.
func NewPredicateRegistry() *PredicateRegistry {
	r := &PredicateRegistry{predicates: make(map[string]Predicate)}
	r.Register("book_struct", structPredicate("Book"))
	r.Register("library_struct", structPredicate("Library"))
	r.Register("thread_pool_struct", structPredicate("ThreadPool"))
	r.Register("async_main", asyncMainPredicate)
	return r
}

// Register adds or replaces a predicate.
func (r *PredicateRegistry) Register(id string, p Predicate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.predicates[id] = p
}

// Lookup returns the predicate for the given id.
func (r *PredicateRegistry) Lookup(id string) (Predicate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.predicates[id]
	return p, ok
}

// structPredicate builds a predicate that scans for a struct declaration.
func structPredicate(name string) Predicate {
	return func(ref models.ProjectRef) error {
		res, err := scanSources(ref.RootPath, "struct "+name)
		if err != nil {
			return err
		}
		if !res.found {
			return fmt.Errorf("struct '%s' not found in %d source files", name, res.scanned)
		}
		return nil
	}
}

// asyncMainPredicate checks for an async entry point, accepting either an
// explicit async main or a runtime attribute.
func asyncMainPredicate(ref models.ProjectRef) error {
	res, err := scanSources(ref.RootPath, "async fn main", "#[tokio::main]")
	if err != nil {
		return err
	}
	if !res.found {
		return fmt.Errorf("async main function not found in %d source files", res.scanned)
	}
	return nil
}
