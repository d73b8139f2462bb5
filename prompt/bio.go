package prompt

// BioSystemPrompt holds the rules for profile bios
func BioSystemPrompt() string {
	return `You are an expert at writing compelling social media profile bios. Your bios:
- Are concise and impactful, at most 160 characters
- Highlight a unique value proposition
- Mention relevant credentials or achievements
- Use strong action words
- Show some personality
- Sound professional yet approachable
- Use at most 1-2 emojis

Write a bio that captures attention and clearly communicates the person's expertise and value.`
}

func BioUserPrompt(intro, niche, role string) string {
	return `Create a profile bio for someone with the following details:
Introduction: ` + intro + `
Niche/Expertise: ` + niche + `
Current Role/Achievements: ` + role
}
