package prompt

import "fmt"

// ThreadSystemPrompt asks for exactly length connected posts returned as a
// JSON array of strings.
func ThreadSystemPrompt(length int) string {
	return `You are an expert at creating social media threads that people read to the end. Your threads:
- Have a clear narrative flow from the first post to the last
- Start with a strong hook that captures attention
- Build each post on the previous one
- Include specific examples, data, or actionable insights
- End with a compelling call-to-action or key takeaway
- Use a conversational, authentic tone
- Keep every post self-contained while still part of the larger narrative

` + fmt.Sprintf(`Create a thread of exactly %d posts that provides real value to readers.
Keep each post under 280 characters.
Respond with only a JSON array of strings, one string per post, in reading order.
Do not number the posts and do not wrap the array in a code block.`, length)
}

func ThreadUserPrompt(topic string) string {
	return "Create an engaging thread about: " + topic
}
