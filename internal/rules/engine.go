package rules

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

// costLimit bounds a single evaluation so a bad catalog entry cannot stall a request
const costLimit = 100000

// Engine compiles per-scheme eligibility expressions once and evaluates them
// against profile facts. Safe for concurrent use after compilation.
type Engine struct {
	env      *cel.Env
	programs map[string]cel.Program // schemeID -> compiled program
	mu       sync.RWMutex
}

// NewEngine creates an engine whose environment declares every profile fact
func NewEngine() (*Engine, error) {
	env, err := cel.NewEnv(factDeclarations()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Engine{
		env:      env,
		programs: make(map[string]cel.Program),
	}, nil
}

// NewEngineForCatalog creates an engine and compiles every rule in schemes
func NewEngineForCatalog(schemes []domain.SchemeRecord) (*Engine, error) {
	en, err := NewEngine()
	if err != nil {
		return nil, err
	}
	if err := en.CompileCatalog(schemes); err != nil {
		return nil, err
	}
	return en, nil
}

// CompileRule compiles and type-checks one expression. Expressions must
// evaluate to a bool.
func (en *Engine) CompileRule(schemeID, expression string) error {
	ast, issues := en.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return fmt.Errorf("compile error: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return fmt.Errorf("rule must evaluate to bool, got %s", ast.OutputType())
	}

	prog, err := en.env.Program(ast, cel.CostLimit(costLimit))
	if err != nil {
		return fmt.Errorf("program creation error: %w", err)
	}

	en.mu.Lock()
	en.programs[schemeID] = prog
	en.mu.Unlock()
	return nil
}

// CompileCatalog compiles the rule of every scheme that carries one
func (en *Engine) CompileCatalog(schemes []domain.SchemeRecord) error {
	for _, s := range schemes {
		if s.EligibilityRule == "" {
			continue
		}
		if err := en.CompileRule(s.ID, s.EligibilityRule); err != nil {
			return fmt.Errorf("failed to compile rule for scheme %s: %w", s.ID, err)
		}
	}
	return nil
}

// Has reports whether a rule is compiled for schemeID
func (en *Engine) Has(schemeID string) bool {
	en.mu.RLock()
	defer en.mu.RUnlock()
	_, ok := en.programs[schemeID]
	return ok
}

// Allows evaluates the rule for schemeID. Schemes without a rule are allowed.
// Evaluation errors deny the scheme and are returned to the caller.
func (en *Engine) Allows(schemeID string, facts Facts) (bool, error) {
	en.mu.RLock()
	prog, exists := en.programs[schemeID]
	en.mu.RUnlock()
	if !exists {
		return true, nil
	}

	out, _, err := prog.Eval(map[string]any(facts))
	if err != nil {
		return false, fmt.Errorf("evaluate rule for scheme %s: %w", schemeID, err)
	}
	matched, ok := out.Value().(bool)
	return ok && matched, nil
}
