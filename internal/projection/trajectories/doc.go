// Package trajectories provides the concrete Projector implementations for the
// projection engine.
//
// Each projector walks the national gap forward from TotalGap under one policy
// assumption (current trend, neglect, or the proposed strategy). Sample y holds
// the gap after y annual updates; its AnnualAddition is the net addition
// computed for that year's production.
package trajectories
