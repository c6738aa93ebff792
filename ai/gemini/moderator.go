package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aidconnect/aid-connect-api/ai"
)

const moderatorInstruction = `You are a content moderator for a community help platform. Analyze content for safety and appropriateness.

Return ONLY a JSON response:
{
    "approved": true/false,
    "confidence": number (0-1),
    "flags": ["spam", "inappropriate", "dangerous", "fake"] or [],
    "reasoning": "brief explanation"
}

Reject if content contains:
- Requests for money/payments
- Inappropriate sexual content
- Dangerous illegal activities
- Clear spam or fake requests
- Harmful or threatening language`

// Moderator asks Gemini whether content is fit for the platform
type Moderator struct {
	generator TextGenerator
}

func NewModerator(generator TextGenerator) *Moderator {
	return &Moderator{generator: generator}
}

// Moderate approves content unless the answer explicitly says otherwise
func (m *Moderator) Moderate(ctx context.Context, content string) (*ai.ModerationResult, error) {
	answer, err := m.generator.GenerateContent(ctx, moderatorInstruction, "Moderate this content: "+content)
	if err != nil {
		return nil, err
	}

	var decoded struct {
		Approved   *bool    `json:"approved"`
		Confidence float64  `json:"confidence"`
		Flags      []string `json:"flags"`
		Reasoning  string   `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(extractJSON(answer)), &decoded); err != nil {
		log.WithField("answer", answer).Debug("unparsable moderation")
		return nil, fmt.Errorf("decode moderation: %w", err)
	}

	result := ai.ModerationResult{
		Approved:   decoded.Approved == nil || *decoded.Approved,
		Confidence: decoded.Confidence,
		Flags:      decoded.Flags,
		Reasoning:  decoded.Reasoning,
	}
	if result.Flags == nil {
		result.Flags = []string{}
	}

	return &result, nil
}
