package translate

import (
	"fmt"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
)

// ResponsePrompt builds the prompt for translating a chatbot response.
// Campus answers carry verified facts, so the prompt forbids additions.
func ResponsePrompt(text string, target i18n.Language) string {
	name := target.PromptName()
	return fmt.Sprintf(`Translate this verified college information to %s.

IMPORTANT: This is official college information. Translate accurately without adding or removing information.

English text:
%s

CRITICAL RULES:
1. Preserve exact meaning and all details
2. Do NOT add explanations or new information
3. Use professional terminology appropriate for college information
4. Maintain the structure and formatting of the original
5. Provide ONLY the translation, no explanations

%s translation:`, name, text, name)
}

// InputPrompt builds the prompt for translating a user query to English.
func InputPrompt(text string, source i18n.Language) string {
	name := source.PromptName()
	return fmt.Sprintf(`Translate this user query from %s to English.

User query in %s:
"%s"

CRITICAL RULES:
1. Preserve the exact meaning and intent
2. Do NOT add explanations or interpretations
3. Translate idioms to their English equivalents
4. Keep technical terms as they are (e.g., "semester", "fee")
5. Provide ONLY the English translation, nothing else

English translation:`, name, name, text)
}

// TimetableEntryPrompt builds the prompt for translating one class slot.
// The model must answer in "subject|faculty|venue" form so the three fields
// can be split back apart without structured output support.
func TimetableEntryPrompt(subject, faculty, venue string, target i18n.Language) string {
	return fmt.Sprintf(`Translate the following academic timetable information from English to %s.

IMPORTANT RULES:
1. Translate ALL subject names completely (e.g., "Basic Mechanical Engg" → full translation, not partial)
2. Translate venue types fully (e.g., "Engineering Graphics" → complete translation)
3. Keep room codes and building abbreviations (e.g., "LH-6", "TB-04", "CS-101") AS-IS
4. Faculty names stay as-is, only translate titles
5. Return response in EXACT format: subject|faculty|venue
6. Each field must have a translation (use original if cannot translate)

Fields to translate:
Subject: %s
Faculty: %s
Venue: %s

Response (ONLY the format "subject|faculty|venue", no explanations):`,
		target.PromptName(), subject, faculty, venue)
}
