package generative

import "fmt"

const segmentPrompt = `You are a transcript segmentation expert. Analyze the following transcript and divide it into logical topic-based segments.

For each segment:
1. Group related sentences together that discuss the same topic
2. Create a concise, descriptive title (3-10 words) that summarizes what this segment is about
   - The title should capture the MAIN IDEA or KEY POINT being discussed
   - Use clear, informative language (NOT generic like "Topic 1", "Introduction", etc.)
   - Examples of GOOD titles:
     * "AI's Impact on Healthcare Diagnosis"
     * "Benefits of Remote Work for Employees"
     * "Climate Change Effects on Agriculture"
   - Examples of BAD titles:
     * "Topic 1"
     * "Introduction"
     * "Discussion"

Format your response as JSON:
{
  "segments": [
    {
      "title": "Specific descriptive title summarizing the main point",
      "text": "Full text of this segment..."
    }
  ]
}

Transcript:
%s

Important:
- Keep the original text EXACTLY as is (don't modify, summarize, or translate)
- Each segment should be a coherent topic
- Titles MUST be specific and descriptive, not generic labels
- The number of segments should be 8-15
`

func buildPrompt(transcript string) string {
	return fmt.Sprintf(segmentPrompt, transcript)
}
