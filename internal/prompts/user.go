package prompts

// Fixed user-side prompts sent alongside the persona system prompts. Kept
// here so every piece of model-facing text lives in one package.
const (
	analyzeUserPrompt = `Analyze the following resume and return the structured JSON described in your instructions:

{{resume_text}}`

	summarizeUserPrompt = `Here is the text content of a job posting page. Extract it into the JSON structure described in your instructions:

{{listing_content}}`

	// Sent to the career coach persona when the caller asks for a one-shot
	// recommendation report instead of a chat turn.
	recommendationUserPrompt = `Based on my candidate profile, generate a personalized career development report covering: an assessment of my current position, recommended next career moves, skills I should develop with concrete learning suggestions, and a realistic 6-12 month action plan. Use clear section headings.`

	// Sent to the interviewer persona when the caller wants preparation
	// material rather than a live session.
	interviewQuestionsUserPrompt = `Do not start the interview. Instead, produce a preparation report for this candidate and job listing: list the questions you would ask in this interview, grouped by theme, and for each question add a short note on what a strong answer should cover.`

	// Opening turn that kicks off a live interview session.
	interviewOpeningUserPrompt = `I am ready. Please introduce yourself and ask your first question.`
)

// ResumeAnalysisPrompt builds the user message for a resume analysis run.
func ResumeAnalysisPrompt(resumeText string) (string, error) {
	return renderText(TemplateResumeAnalyzer, analyzeUserPrompt, map[string]string{
		"resume_text": resumeText,
	})
}

// SummarizePrompt builds the user message for a listing summarization run.
func SummarizePrompt(listingContent string) (string, error) {
	return renderText(TemplateJobSummarizer, summarizeUserPrompt, map[string]string{
		"listing_content": listingContent,
	})
}

// RecommendationPrompt returns the fixed report request for the career coach.
func RecommendationPrompt() string {
	return recommendationUserPrompt
}

// InterviewQuestionsPrompt returns the fixed preparation-report request for
// the interviewer personas.
func InterviewQuestionsPrompt() string {
	return interviewQuestionsUserPrompt
}

// InterviewOpeningPrompt returns the turn that starts a live interview.
func InterviewOpeningPrompt() string {
	return interviewOpeningUserPrompt
}
