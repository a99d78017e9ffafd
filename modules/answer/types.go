package answer

// ServiceAnswerQuestion is the request-reply service exposed by the module.
const ServiceAnswerQuestion = "answer-question"

// Source tells which tier produced an answer.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Answer is a single-word reply to a question.
type Answer struct {
	Text   string `json:"answer"`
	Source Source `json:"source"`
}

// QuestionRequest is the payload of the answer-question service.
type QuestionRequest struct {
	Question string `json:"question"`
}

// QuestionResponse is the reply of the answer-question service.
type QuestionResponse struct {
	Answer string `json:"answer"`
	Source Source `json:"source"`
}
