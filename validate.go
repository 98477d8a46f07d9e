package genhw

import "fmt"

// validateStages checks cross-stage and topology legality. It is a pure
// function of the active stage set and the topology; rules are checked in
// order and the first failure wins.
func validateStages(active StageFlags, topology Topology) error {
	if !active.Has(StageFlagVertex) {
		return fmt.Errorf("%w: vertex shader stage is required", ErrBadPipelineData)
	}

	// Tessellation control and evaluation must both have a shader defined
	// or neither should have one.
	if active.Has(StageFlagTessControl) != active.Has(StageFlagTessEval) {
		return fmt.Errorf("%w: tessellation control and evaluation stages must be used together", ErrBadPipelineData)
	}

	if active.Has(StageFlagCompute) && active&stageFlagGraphics != 0 {
		return fmt.Errorf("%w: compute stage cannot be combined with graphics stages", ErrBadPipelineData)
	}

	if active&(StageFlagTessControl|StageFlagTessEval) != 0 && topology != TopologyPatchList {
		return fmt.Errorf("%w: tessellation stages require patch-list topology, have %v", ErrBadPipelineData, topology)
	}

	if topology == TopologyPatchList && active&^(StageFlagTessControl|StageFlagTessEval) != 0 {
		return fmt.Errorf("%w: patch-list topology allows only tessellation stages, have %v", ErrBadPipelineData, active)
	}

	return nil
}
