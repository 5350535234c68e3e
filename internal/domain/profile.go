package domain

import (
	"encoding/json"
	"time"
)

// UserProfile is the free-form self-portrait a user fills in before asking
// for career suggestions. There is exactly one per user; edits replace the
// whole record.
type UserProfile struct {
	UserID      string
	Traits      []string // 天赋、兴趣
	Platform    string   // 大学平台、专业空间
	Mentors     string   // 重要他人的期望或建议
	Serendipity string   // 产生特别影响的偶然经历
	UpdatedAt   time.Time
}

// promptProfile mirrors the JSON shape the personas were written against.
type promptProfile struct {
	PersonalUniqueness     []string `json:"personal_uniqueness"`
	UniversityPlatform     string   `json:"university_platform"`
	SignificantOthersInput string   `json:"significant_others_input"`
	Serendipity            string   `json:"serendipity"`
}

// PromptJSON serializes the profile into the JSON document embedded in
// persona prompts.
func (p *UserProfile) PromptJSON() string {
	doc := promptProfile{
		PersonalUniqueness:     p.Traits,
		UniversityPlatform:     p.Platform,
		SignificantOthersInput: p.Mentors,
		Serendipity:            p.Serendipity,
	}
	if doc.PersonalUniqueness == nil {
		doc.PersonalUniqueness = []string{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
