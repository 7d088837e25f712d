package flow

import (
	"context"
	"strings"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
	"github.com/adityaraj161616/campus-chatbot-go/internal/intent"
	"github.com/adityaraj161616/campus-chatbot-go/internal/session"
	"github.com/adityaraj161616/campus-chatbot-go/internal/storage"
	"github.com/adityaraj161616/campus-chatbot-go/internal/stringutil"
)

// Keyword tables for the scholarship follow-up conversation. Declarative so
// a new phrasing is a one-line change.
var (
	listKeywords = []string{
		"available", "list", "what scholarships", "which scholarships",
		"show scholarships", "all scholarships",
	}
	eligibilityKeywords = []string{
		"eligibility", "eligible", "who can apply", "criteria", "qualify",
	}
	applicationKeywords = []string{
		"application", "how to apply", "process", "procedure",
	}

	// namePatterns map shorthand mentions to a fragment of the canonical
	// English scholarship name. Every pattern group must match.
	namePatterns = []struct {
		anyOf    [][]string
		fragment string
	}{
		{anyOf: [][]string{{"post-matric", "post matric"}}, fragment: "post-matric"},
		{anyOf: [][]string{{"merit"}, {"means"}}, fragment: "merit-cum-means"},
		{anyOf: [][]string{{"minority"}}, fragment: "minority"},
		{anyOf: [][]string{{"sc/st", "sc st"}}, fragment: "sc/st"},
	}
)

// handleScholarships runs the free-form scholarship conversation. Unlike the
// stepped flows it interprets each message fresh: list requests, a specific
// scholarship by name or shorthand, and eligibility/application follow-ups
// that resolve against the last scholarship discussed.
func (c *Controller) handleScholarships(ctx context.Context, state *session.State, message string) (*Reply, error) {
	scholarships, err := c.repo.ListActiveScholarships(ctx)
	if err != nil {
		return nil, err
	}
	if len(scholarships) == 0 {
		state.ClearFlow()
		return &Reply{Message: Translation("noScholarships", state.Language)}, nil
	}

	query := stringutil.Normalize(message)
	askingList := containsAnyKeyword(query, listKeywords) || query == "scholarships"
	askingEligibility := containsAnyKeyword(query, eligibilityKeywords)
	askingApplication := containsAnyKeyword(query, applicationKeywords)

	if askingList && state.LastScholarship == "" {
		openFollowup(state, "")
		return &Reply{
			Message:          allScholarshipsMessage(state.Language, scholarships),
			RequiresNextStep: true,
		}, nil
	}

	specific := findScholarship(scholarships, query, state.Language)
	if specific == nil && state.LastScholarship != "" {
		for i := range scholarships {
			if scholarships[i].NameEN == state.LastScholarship {
				specific = &scholarships[i]
				break
			}
		}
	}

	switch {
	case specific != nil && !askingEligibility && !askingApplication:
		openFollowup(state, specific.NameEN)
		return &Reply{
			Message:          singleScholarshipMessage(state.Language, *specific),
			RequiresNextStep: true,
		}, nil

	case askingEligibility && specific != nil:
		openFollowup(state, specific.NameEN)
		return &Reply{
			Message: scholarshipEligibilityMessage(state.Language, *specific) +
				"\n\n" + Translation("anythingElse", state.Language),
			RequiresNextStep: true,
		}, nil

	case askingApplication && specific != nil:
		// The application answer ends the conversation.
		state.ClearFlow()
		return &Reply{
			Message: scholarshipApplicationMessage(state.Language, *specific),
		}, nil

	default:
		openFollowup(state, "")
		return &Reply{
			Message:          allScholarshipsMessage(state.Language, scholarships),
			RequiresNextStep: true,
		}, nil
	}
}

// openFollowup keeps the scholarship conversation open, remembering which
// scholarship later bare follow-ups refer to.
func openFollowup(state *session.State, lastScholarship string) {
	state.StartFlow(intent.Scholarships, session.StepScholarshipFollowup)
	state.LastScholarship = lastScholarship
}

// findScholarship matches the query against scholarship names in English and
// the session language, then against the shorthand patterns.
func findScholarship(scholarships []storage.Scholarship, query string, lang i18n.Language) *storage.Scholarship {
	for i := range scholarships {
		s := &scholarships[i]
		nameEN := strings.ToLower(s.NameEN)
		nameLocal := strings.ToLower(s.Name.Get(lang))

		if strings.Contains(query, nameEN) || (nameLocal != "" && strings.Contains(query, nameLocal)) {
			return s
		}
		for _, p := range namePatterns {
			if strings.Contains(nameEN, p.fragment) && matchesAllGroups(query, p.anyOf) {
				return s
			}
		}
	}
	return nil
}

func matchesAllGroups(query string, groups [][]string) bool {
	for _, group := range groups {
		if !containsAnyKeyword(query, group) {
			return false
		}
	}
	return true
}

func containsAnyKeyword(query string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(query, k) {
			return true
		}
	}
	return false
}
