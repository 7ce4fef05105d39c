package model

// BranchContext is the local git state a description is generated from
type BranchContext struct {
	CurrentBranch string // Branch checked out in the working tree
	Commits       string // "<short-hash> <subject>" lines, as printed by git log
	Diff          string // Unified diff between the merge base and the branch tip
}
