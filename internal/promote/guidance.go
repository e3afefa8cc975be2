package promote

import (
	"fmt"
	"strings"
)

const (
	conflictHeadingTemplateConstant = "Cherry-pick onto %s stopped on conflicts.\n"
	conflictOutputHeadingConstant   = "Reported by git:\n"
	conflictGuidanceHeaderConstant  = "To finish the promotion:\n"
	conflictGuidanceStepTemplate    = "  %d. %s\n"
	conflictGuidanceTrailerConstant = "Transient branches are kept so the run can be resumed.\n"
)

// conflictGuidance renders operator instructions for resolving a stopped
// cherry-pick and resuming the promotion run.
func conflictGuidance(mirrorBranchName string, capturedOutput string) string {
	guidanceSteps := []string{
		fmt.Sprintf("resolve the conflicted files on %s", mirrorBranchName),
		"stage the resolved files with git add",
		"re-run the promotion with the --continue flag",
	}

	builder := &strings.Builder{}
	fmt.Fprintf(builder, conflictHeadingTemplateConstant, mirrorBranchName)
	trimmedOutput := strings.TrimSpace(capturedOutput)
	if len(trimmedOutput) > 0 {
		builder.WriteString(conflictOutputHeadingConstant)
		builder.WriteString(trimmedOutput)
		builder.WriteString("\n")
	}
	builder.WriteString(conflictGuidanceHeaderConstant)
	for stepIndex, stepDescription := range guidanceSteps {
		fmt.Fprintf(builder, conflictGuidanceStepTemplate, stepIndex+1, stepDescription)
	}
	builder.WriteString(conflictGuidanceTrailerConstant)
	return builder.String()
}
