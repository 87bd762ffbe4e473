package memo

import (
	"time"

	"github.com/arcadia-hr/hr-portal-go/internal/pkg/validator"
)

type PublishMemoRequest struct {
	AuthorID string `json:"-"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Priority string `json:"priority"`
	Audience string `json:"audience"` // "all" or a department id
}

func (r *PublishMemoRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	priorities := []string{string(PriorityNormal), string(PriorityImportant), string(PriorityUrgent)}
	if !validator.IsInSlice(r.Priority, priorities) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of: normal, important, urgent",
		})
	}

	if validator.IsEmpty(r.Audience) {
		errs = append(errs, validator.ValidationError{
			Field:   "audience",
			Message: "audience is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MemoFilter selects memos visible to an audience: organization-wide memos
// plus those addressed to the given department.
type MemoFilter struct {
	DepartmentID *string `json:"department_id,omitempty"`
}

type MemoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	AuthorID    string `json:"author_id"`
	Priority    string `json:"priority"`
	Audience    string `json:"audience"`
	PublishedAt string `json:"published_at"`
}

func (m Memo) ToResponse() MemoResponse {
	return MemoResponse{
		ID:          m.ID,
		Title:       m.Title,
		Body:        m.Body,
		AuthorID:    m.AuthorID,
		Priority:    string(m.Priority),
		Audience:    m.Audience,
		PublishedAt: m.PublishedAt.Format(time.RFC3339),
	}
}
