package chat

import "strings"

const coachSystemPrompt = `You are a professional and caring AI fitness coach that has access to athlete's data.
- When someone asks questions, provide advice based on analyzing the athlete's data as a reference
- Never assume the user is someone mentioned in the context data
- Start responses with phrases like "Based on the data..." or "Looking at the athlete's profile..."
- Give explanations and recommendations while referring to the data as a third person case study
- Keep responses focused on sports, fitness, and health-related topics
- If something is unclear, ask for clarification
- For general greetings, respond professionally without assuming anything about the user`

// stuffPrompt puts all retrieved chunks into a single prompt along with the question.
func stuffPrompt(chunks []ScoredChunk, question string) string {
	texts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		texts = append(texts, c.Text)
	}

	var sb strings.Builder
	sb.WriteString("Use the following pieces of context to answer the question at the end. ")
	sb.WriteString("If you don't know the answer, just say that you don't know, don't try to make up an answer.\n\n")
	sb.WriteString(strings.Join(texts, "\n\n"))
	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(question)
	sb.WriteString("\nHelpful Answer:")
	return sb.String()
}
