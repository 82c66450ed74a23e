// Package leads extracts contact details from conversation text and
// persists them for the CRM handoff.
package leads

import (
	"regexp"
	"strings"
	"time"
)

// Lead is one extracted contact record.
type Lead struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Company    string    `json:"company,omitempty"`
	Language   string    `json:"language"`
	SourceText string    `json:"source_text,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Empty reports whether extraction found nothing usable.
func (l Lead) Empty() bool {
	return l.Name == "" && l.Email == "" && l.Phone == "" && l.Company == ""
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// International or regional numbers with 8 to 14 digits, allowing
	// spaces and dashes as separators.
	phonePattern = regexp.MustCompile(`\+?\d[\d\s\-]{6,13}\d`)

	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b[Mm]y name is ([A-Z][A-Za-z'\-]*(?: [A-Z][A-Za-z'\-]*){0,2})`),
		regexp.MustCompile(`\b[Ii] am ([A-Z][A-Za-z'\-]*(?: [A-Z][A-Za-z'\-]*){0,2})\b`),
		regexp.MustCompile(`اسمي ([^\s.,!?]+(?: [^\s.,!?]+){0,2})`),
	}

	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:[Ii] work at|[Ww]e are from|[Oo]ur company is|[Ii]'m with|[Ii] am with) ([A-Z][A-Za-z0-9&.\-]*(?: [A-Z][A-Za-z0-9&.\-]*){0,4})`),
		regexp.MustCompile(`أعمل في (?:شركة )?([^\s.,!?]+(?: [^\s.,!?]+){0,3})`),
		regexp.MustCompile(`شركتنا (?:هي )?([^\s.,!?]+(?: [^\s.,!?]+){0,3})`),
	}
)

// Extract runs the fixed contact patterns over text. Missing fields stay
// empty; extraction is best effort and never fails.
func Extract(sessionID, language, text string) Lead {
	lead := Lead{
		SessionID: sessionID,
		Language:  language,
	}

	if m := emailPattern.FindString(text); m != "" {
		lead.Email = m
	}

	// Strip the email before phone matching so its digits never count.
	phoneSource := emailPattern.ReplaceAllString(text, " ")
	if m := phonePattern.FindString(phoneSource); m != "" {
		lead.Phone = strings.TrimSpace(m)
	}

	for _, p := range namePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			lead.Name = strings.TrimSpace(m[1])
			break
		}
	}
	for _, p := range companyPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			lead.Company = strings.TrimSpace(m[1])
			break
		}
	}

	if !lead.Empty() {
		lead.SourceText = text
	}
	return lead
}
