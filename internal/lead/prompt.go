package lead

import (
	"strings"
)

const systemPrompt = "You are a precise and concise assistant."

// BuildPrompt embeds the transcript verbatim after a fixed instruction.
func BuildPrompt(transcript string) string {
	var b strings.Builder
	b.WriteString("Based on the following conversation transcript, determine if there is a chance the customer might become a lead in the future. ")
	b.WriteString("Respond ONLY with two lines:\n")
	b.WriteString("1) Possibility: True or Possibility: False\n")
	b.WriteString("2) Reason: A concise reason (1-2 sentences) explaining your decision.\n\n")
	b.WriteString("Transcript:\n")
	b.WriteString(transcript)
	b.WriteString("\n")
	return b.String()
}

// ParseVerdict reads the "Possibility:" and "Reason:" lines of a model reply.
// Later lines win. A flag other than true/false counts as missing.
func ParseVerdict(output string) (Verdict, error) {
	var (
		v         Verdict
		hasFlag   bool
		hasReason bool
	)

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		switch {
		case strings.HasPrefix(lower, "possibility:"):
			switch strings.ToLower(afterColon(line)) {
			case "true":
				v.Possibility, hasFlag = true, true
			case "false":
				v.Possibility, hasFlag = false, true
			}
		case strings.HasPrefix(lower, "reason:"):
			v.Reason = afterColon(line)
			hasReason = v.Reason != ""
		}
	}

	if !hasFlag || !hasReason {
		return Verdict{}, ErrUnparseable
	}
	return v, nil
}

func afterColon(line string) string {
	_, rest, _ := strings.Cut(line, ":")
	return strings.TrimSpace(rest)
}
