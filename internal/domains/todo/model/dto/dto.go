package dto

import (
	"lembra/internal/domains/todo/model"
	"lembra/shared"
	"lembra/shared/constant"
	gDto "lembra/shared/dto"
	"lembra/shared/failure"
	gModel "lembra/shared/model"
	"lembra/shared/timezone"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type CreateTodoRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	IsDone      *bool   `json:"isDone" validate:"omitempty"`
	Reminder    *string `json:"reminder" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (c *CreateTodoRequest) ToModel() model.Todo {
	now := timezone.Now()

	isDone := false
	if c.IsDone != nil {
		isDone = *c.IsDone
	}

	var reminder *time.Time
	if c.Reminder != nil {
		// Format already validated; parse cannot fail here.
		parsed, _ := timezone.Parse(constant.DateFormat, *c.Reminder)
		reminder = &parsed
	}

	return model.Todo{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		IsDone:      isDone,
		Reminder:    reminder,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// UpdateTodoRequest is a partial patch: a field left out of the body keeps
// its current value, an explicit null clears a nullable field.
type UpdateTodoRequest struct {
	Title       gDto.Optional[string] `json:"title"`
	Description gDto.Optional[string] `json:"description"`
	IsDone      gDto.Optional[bool]   `json:"isDone"`
	Reminder    gDto.Optional[string] `json:"reminder"`
}

// Dirty reports whether the patch carries at least one field.
func (u *UpdateTodoRequest) Dirty() bool {
	return u.Title.Set || u.Description.Set || u.IsDone.Set || u.Reminder.Set
}

// Validate checks every field present in the patch, collecting one detail
// entry per violated constraint in declaration order.
func (u *UpdateTodoRequest) Validate() error {
	details := []failure.FieldError{}

	if u.Title.Set {
		if u.Title.Null {
			details = append(details, failure.FieldError{Field: "title", Message: "title não pode ser nulo"})
		} else if u.Title.Value == "" {
			details = append(details, failure.FieldError{Field: "title", Message: "title é obrigatório"})
		} else if utf8.RuneCountInString(u.Title.Value) > 255 {
			details = append(details, failure.FieldError{Field: "title", Message: "title deve ter no máximo 255 caracteres"})
		}
	}

	if u.Description.Present() && utf8.RuneCountInString(u.Description.Value) > 1000 {
		details = append(details, failure.FieldError{Field: "description", Message: "description deve ter no máximo 1000 caracteres"})
	}

	if u.Reminder.Present() {
		if _, err := timezone.Parse(constant.DateFormat, u.Reminder.Value); err != nil {
			details = append(details, failure.FieldError{Field: "reminder", Message: "reminder deve ser uma data e hora válida (ISO-8601)"})
		}
	}

	if len(details) > 0 {
		return failure.Validation("Um ou mais campos são inválidos", details...) //nolint:wrapcheck
	}

	return nil
}

// Fields maps the patch to the columns it touches. Must only be called
// after Validate.
func (u *UpdateTodoRequest) Fields() map[string]any {
	fields := map[string]any{}

	if u.Title.Present() {
		fields[model.FieldTitle] = u.Title.Value
	}

	if u.Description.Set {
		if u.Description.Null {
			fields[model.FieldDescription] = nil
		} else {
			fields[model.FieldDescription] = u.Description.Value
		}
	}

	if u.IsDone.Present() {
		fields[model.FieldIsDone] = u.IsDone.Value
	}

	if u.Reminder.Set {
		if u.Reminder.Null {
			fields[model.FieldReminder] = nil
		} else {
			parsed, _ := timezone.Parse(constant.DateFormat, u.Reminder.Value)
			fields[model.FieldReminder] = parsed
		}
	}

	return fields
}

// ListTodosQuery is the validated query-string input of the list operation.
type ListTodosQuery struct {
	IsDone *bool
	Search string
}

// FromRequest populates the query from the HTTP request, rejecting any
// isDone value that is not the literal "true" or "false".
func (q *ListTodosQuery) FromRequest(r *http.Request) error {
	queryParams := r.URL.Query()

	isDone, ok := shared.ParseBoolLiteral(queryParams.Get(constant.RequestParamIsDone))
	if !ok {
		return failure.Validation( //nolint:wrapcheck
			"Um ou mais campos são inválidos",
			failure.FieldError{Field: constant.RequestParamIsDone, Message: `isDone deve ser "true" ou "false"`},
		)
	}

	q.IsDone = isDone
	q.Search = queryParams.Get(constant.RequestParamSearch)

	return nil
}

// Filter composes the list restrictions: exact completion match AND
// case-insensitive search over title or description.
func (q *ListTodosQuery) Filter() gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if q.IsDone != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsDone,
			Operator: gDto.FilterOperatorEq,
			Value:    *q.IsDone,
			Table:    model.TableName,
		})
	}

	if q.Search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					ArgName:  "search_title",
					Field:    model.FieldTitle,
					Operator: gDto.FilterOperatorLike,
					Value:    q.Search,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "search_description",
					Field:    model.FieldDescription,
					Operator: gDto.FilterOperatorLike,
					Value:    q.Search,
					Table:    model.TableName,
				},
			},
		})
	}

	return filterGroup
}

type TodoResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsDone      bool    `json:"isDone"`
	Reminder    *string `json:"reminder"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.IsDone = model.IsDone
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	r.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)

	if model.Reminder != nil {
		reminder := timezone.Format(*model.Reminder, constant.DateFormat)
		r.Reminder = &reminder
	}
}

func TodoResponses(models []model.Todo) []TodoResponse {
	responses := make([]TodoResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
