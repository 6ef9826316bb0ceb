package controller

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"petcare-client/internal/api"
	"petcare-client/internal/model"
)

// ServiceScreen is the service management screen.
type ServiceScreen struct {
	List *List[model.Service, model.Service, model.ServiceID]
	Form *Form
}

func NewServiceScreen(client *api.Client, log *zap.Logger) *ServiceScreen {
	ep := Endpoints[model.Service, model.Service, model.ServiceID]{
		List:   client.ListServices,
		Insert: client.InsertService,
		Update: client.UpdateService,
		Delete: client.DeleteService,
	}
	return &ServiceScreen{
		List: NewList("services", ep, serviceFields, log),
		Form: NewForm(log),
	}
}

func serviceFields(s model.Service) []string {
	return []string{s.Category, strconv.FormatFloat(s.Price, 'f', 2, 64)}
}

// ServiceForm carries the raw inputs; Price stays a string until
// validation because the numeric keyboard guarantees nothing.
type ServiceForm struct {
	Category string
	Price    string
}

func (f ServiceForm) draft() (model.Service, error) {
	err := requireFields(
		[]string{"tipo de serviço", "valor"},
		[]string{f.Category, f.Price},
	)
	if err != nil {
		return model.Service{}, err
	}
	price, err := strconv.ParseFloat(f.Price, 64)
	if err != nil {
		return model.Service{}, &ValidationError{Missing: []string{"valor"}}
	}
	return model.Service{Category: f.Category, Price: price}, nil
}

func (s *ServiceScreen) SubmitAdd(ctx context.Context, form ServiceForm) error {
	draft, err := form.draft()
	if err != nil {
		return err
	}
	return s.Form.Submit(ctx, OpAdd, func(ctx context.Context) error {
		return s.List.Insert(ctx, draft)
	})
}

func (s *ServiceScreen) SubmitEdit(ctx context.Context, id model.ServiceID, form ServiceForm) error {
	draft, err := form.draft()
	if err != nil {
		return err
	}
	return s.Form.Submit(ctx, OpEdit, func(ctx context.Context) error {
		return s.List.Update(ctx, id, draft)
	})
}

func (s *ServiceScreen) SubmitDelete(ctx context.Context, id model.ServiceID) error {
	return s.Form.Submit(ctx, OpDelete, func(ctx context.Context) error {
		return s.List.Delete(ctx, id)
	})
}
