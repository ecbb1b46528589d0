// Package parser turns typed inbound payloads into Slack messages. Parsers
// are stateless value objects; one instance of each is built at process start.
package parser

import (
	"fmt"
	"strings"

	"github.com/jon890/order-slack-relay/internal/domain/models"
)

func joinUserInputs(inputs []models.UserInput) string {
	if len(inputs) == 0 {
		return ""
	}

	texts := make([]string, 0, len(inputs))
	for _, input := range inputs {
		texts = append(texts, fmt.Sprintf("%s: %s", input.InputLabel, input.InputValue))
	}

	return strings.Join(texts, ", ")
}
