// Package promote sequences the git operations that move a range of
// development commits onto the delivery branch as a single signed commit.
// A run squashes the range on a transient branch with ignored paths
// stripped, cherry-picks the result onto a local mirror of the delivery
// branch, tags both branches, and pushes when enabled. Cherry-pick
// conflicts stop the run with resolution guidance; the operator resumes
// with the continue flag after fixing the conflicted files.
package promote
