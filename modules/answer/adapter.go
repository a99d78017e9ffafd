package answer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AnswerPort defines the question-answering operation available to other
// modules.
type AnswerPort interface {
	Answer(ctx context.Context, question string) (Answer, error)
}

// answerAdapter implements AnswerPort on top of the service container.
type answerAdapter struct {
	container mono.ServiceContainer
}

// NewAnswerAdapter creates an AnswerPort backed by the answer module's
// service container.
func NewAnswerAdapter(container mono.ServiceContainer) AnswerPort {
	if container == nil {
		panic("answer adapter requires non-nil ServiceContainer")
	}
	return &answerAdapter{container: container}
}

// Answer calls the answer-question service. Errors come only from the
// transport; the service itself always answers.
func (a *answerAdapter) Answer(ctx context.Context, question string) (Answer, error) {
	req := QuestionRequest{Question: question}
	var resp QuestionResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceAnswerQuestion,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return Answer{}, fmt.Errorf("%s service call failed: %w", ServiceAnswerQuestion, err)
	}

	return Answer{Text: resp.Answer, Source: resp.Source}, nil
}
