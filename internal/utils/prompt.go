package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const commitMessagePromptTemplateConstant = "Commit message [%s]: "

// IOCommitMessagePrompter reads a squash commit message from an io.Reader,
// falling back to the offered default when the operator enters nothing.
type IOCommitMessagePrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewIOCommitMessagePrompter constructs a prompter from the provided reader and writer.
func NewIOCommitMessagePrompter(input io.Reader, output io.Writer) *IOCommitMessagePrompter {
	return &IOCommitMessagePrompter{reader: bufio.NewReader(input), writer: output}
}

// PromptCommitMessage writes the prompt and returns the operator's response.
func (prompter *IOCommitMessagePrompter) PromptCommitMessage(defaultMessage string) (string, error) {
	if prompter.writer != nil {
		if _, writeError := fmt.Fprintf(prompter.writer, commitMessagePromptTemplateConstant, defaultMessage); writeError != nil {
			return "", writeError
		}
	}

	response, readError := prompter.reader.ReadString('\n')
	if readError != nil && readError != io.EOF {
		return "", readError
	}

	trimmedResponse := strings.TrimSpace(response)
	if len(trimmedResponse) == 0 {
		return defaultMessage, nil
	}
	return trimmedResponse, nil
}
