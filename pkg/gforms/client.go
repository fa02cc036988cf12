package gforms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"google.golang.org/api/forms/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var (
	ErrFormNotFound   = errors.New("form not found")
	ErrNoCheckboxItem = errors.New("form has no checkbox question")
)

const (
	CHOICE_TYPE_CHECKBOX = "CHECKBOX"

	choiceOptionsUpdateMask = "questionItem.question.choiceQuestion.options"
)

type Client struct {
	srv *forms.Service
}

func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	srv, err := forms.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{srv: srv}, nil
}

// SetCheckboxChoices replaces the choice list of the first checkbox question
// of the form with choices, in the given order.
func (c *Client) SetCheckboxChoices(ctx context.Context, formID string, choices []string) error {
	form, err := c.srv.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrFormNotFound, formID)
		}
		return err
	}

	index, item := firstCheckboxItem(form)
	if item == nil {
		return fmt.Errorf("%w: %s", ErrNoCheckboxItem, formID)
	}

	options := make([]*forms.Option, 0, len(choices))
	for _, choice := range choices {
		options = append(options, &forms.Option{Value: choice})
	}
	item.QuestionItem.Question.ChoiceQuestion.Options = options

	req := &forms.BatchUpdateFormRequest{
		Requests: []*forms.Request{
			{
				UpdateItem: &forms.UpdateItemRequest{
					Item: item,
					Location: &forms.Location{
						Index:           int64(index),
						ForceSendFields: []string{"Index"},
					},
					UpdateMask: choiceOptionsUpdateMask,
				},
			},
		},
	}
	if _, err := c.srv.Forms.BatchUpdate(formID, req).Context(ctx).Do(); err != nil {
		return err
	}
	slog.Info("checkbox choices updated", slog.String("formID", formID), slog.String("itemID", item.ItemId), slog.Int("choices", len(choices)))
	return nil
}

func firstCheckboxItem(form *forms.Form) (int, *forms.Item) {
	for i, item := range form.Items {
		if item == nil || item.QuestionItem == nil || item.QuestionItem.Question == nil {
			continue
		}
		cq := item.QuestionItem.Question.ChoiceQuestion
		if cq != nil && cq.Type == CHOICE_TYPE_CHECKBOX {
			return i, item
		}
	}
	return -1, nil
}
