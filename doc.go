// Package taskmatch is an in-memory toolkit for the assignment problem:
// matching agents to tasks one-to-one over a cost/time matrix, with an
// exact optimal solver and a fast greedy alternative.
//
// 🚀 What is taskmatch?
//
//	A small, deterministic library that brings together:
//		• Matrix primitives: dense row-major storage with strict shape checks
//		• Criterion transforms: optimize by cost, or by time via max-inversion
//		• Balancing: zero-padding of rectangular matrices to square
//		• Exact solving: self-contained O(n³) Hungarian (Kuhn–Munkres)
//		• Greedy solving: iterative minimum selection with elimination
//
// ✨ Why choose taskmatch?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – fixed tie-breaks, no randomness, no shared state
//   - Pure Go – no cgo, no numeric dependencies
//   - Honest errors – eager sentinel validation, never silent defaults
//
// Under the hood, everything is organized under two subpackages:
//
//	assign/ — criterion transform, balancing, exact & greedy solvers
//	matrix/ — the Matrix interface and the Dense implementation
//
// Quick ASCII example:
//
//	    agents ─┬─ a₀ ── t₁
//	            ├─ a₁ ── t₀
//	            └─ a₂ ── t₂
//
//	a minimum-cost bijection over a 3×3 cost matrix.
//
// A cobra-based CLI lives in cmd/taskmatch for file/stdin input and
// console output. Dive into the assign package examples for full
// walkthroughs of both strategies.
//
//	go get github.com/katalvlaran/taskmatch
package taskmatch
