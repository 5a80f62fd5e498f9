package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jhillyerd/enmime"
)

func readEmail(content []byte) string {
	env, err := enmime.ReadEnvelope(bytes.NewReader(content))
	if err != nil {
		return "Email content could not be parsed."
	}

	parts := []string{
		fmt.Sprintf("Subject: %s", env.GetHeader("Subject")),
		fmt.Sprintf("From: %s", env.GetHeader("From")),
		env.Text,
	}
	return strings.Join(parts, "\n")
}
