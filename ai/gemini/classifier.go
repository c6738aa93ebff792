package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aidconnect/aid-connect-api/ai"
	"github.com/aidconnect/aid-connect-api/schema"
)

const classifierInstruction = `You are an AI assistant specializing in analyzing help requests for urgency classification.

Analyze the request and return ONLY a JSON response with this exact format:
{
    "urgency_score": number (1-10, where 10 is life-threatening emergency),
    "category": "medical|food|shelter|transport|safety|education|elder_care|child_care|pet_care|other",
    "priority": "low|medium|high|emergency",
    "estimated_response_time": "within X minutes/hours",
    "reasoning": "brief explanation"
}

Consider these factors:
- Medical emergencies (unconscious, bleeding, heart attack): 9-10
- Safety emergencies (fire, accident, violence): 8-10
- Urgent needs (lost child, stranded): 6-8
- Important but not urgent (groceries, transport): 3-5
- General help (tutoring, companionship): 1-3

Keywords indicating high urgency: emergency, urgent, help, bleeding, unconscious, fire, accident, pain, dying, lost, stranded, immediate, asap`

// Classifier asks Gemini for the urgency of a help request
type Classifier struct {
	generator TextGenerator
}

func NewClassifier(generator TextGenerator) *Classifier {
	return &Classifier{generator: generator}
}

func classifyPrompt(title, description string, categoryHint schema.Category) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this help request:\nTitle: %s\nDescription: %s", title, description)
	if categoryHint != "" {
		fmt.Fprintf(&b, "\nSuggested Category: %s", categoryHint)
	}
	return b.String()
}

func (c *Classifier) Classify(ctx context.Context, title, description string, categoryHint schema.Category) (*ai.Classification, error) {
	answer, err := c.generator.GenerateContent(ctx, classifierInstruction, classifyPrompt(title, description, categoryHint))
	if err != nil {
		return nil, err
	}

	var result ai.Classification
	if err := json.Unmarshal([]byte(extractJSON(answer)), &result); err != nil {
		log.WithField("answer", answer).Debug("unparsable classification")
		return nil, fmt.Errorf("decode classification: %w", err)
	}

	return &result, nil
}
