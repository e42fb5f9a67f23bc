// SPDX-License-Identifier: MIT
// Package: empyreus/builder
//
// constants.go — method tokens and named defaults.

package builder

// Method tokens prefix wrapped errors ("<Method>: ...") and tag log records.
const (
	// MethodBuild is the canonical name for Build.
	MethodBuild = "Build"
	// MethodVerify is the canonical name for Verify.
	MethodVerify = "Verify"
)

// Phase names, as they appear in log records and Report.String.
const (
	PhaseIslands = "islands"
	PhaseStitch  = "stitch"
	PhaseRelax   = "relax"
)

const (
	// DefaultHopBound is the largest hop distance allowed between two
	// grid-adjacent playable cells.
	DefaultHopBound = 3

	// minHopBound is the smallest bound WithHopBound accepts.
	minHopBound = 1

	// minWorkers is the smallest worker count WithWorkers accepts.
	minWorkers = 1
)
