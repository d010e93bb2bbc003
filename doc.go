// Package lvsearch is a small laboratory for state-space search: one
// algorithm template, twelve strategies, and two ready-made problem domains.
//
// 🚀 What is lvsearch?
//
//	A library and a command that bring together:
//		• Uninformed search: DFS, BFS, non-deterministic search, iterative deepening
//		• Heuristic search: hill climbing, greedy search, beam search
//		• Optimal search: uniform cost (plain, optimal, branch-and-bound),
//		  estimate-extended uniform cost, A*
//		• Domains: weighted graphs with per-vertex estimates, text mazes
//		• Traces: every iteration as a Step (removed path, new paths, queue)
//
// ✨ Why lvsearch?
//
//   - One template: strategies differ only in how they take, merge, prune
//     and accept paths, so their behaviour can be compared side by side
//   - Reproducible: stable sorts everywhere and an injectable random source
//   - Bring your own domain: implement space.State and space.Problem
//
// Under the hood, everything is organized under these subpackages:
//
//	space/        — State, Rule, Move, Problem contracts; Path and Frontier
//	search/       — Run, Strategy, options, Result and the strategy hooks
//	graphspace/   — undirected weighted graph as a search problem
//	gridspace/    — rectangular maze (* start, . free, # wall, o goal)
//	cmd/lvsearch/ — command-line runner for YAML problem files
//
// Quick ASCII example:
//
//	    S ─1─ A
//	     \    │
//	      5   1
//	       \  │
//	         G
//
//	BFS stops at S G (cost 5) because it accepts the first goal it generates;
//	A* returns S A G (cost 2).
//
//	go install github.com/katalvlaran/lvsearch/cmd/lvsearch@latest
package lvsearch
