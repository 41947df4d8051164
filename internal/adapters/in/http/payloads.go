package http

import (
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/item"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderRequest is the payload for creating or replacing an order. Pointer
// fields distinguish an absent key from an explicit zero value. No field is
// required; the domain applies defaults for missing name, address, and date.
type OrderRequest struct {
	Name        *string       `json:"name"`
	Address     *string       `json:"address"`
	DateCreated *string       `json:"date_created"`
	Items       []ItemRequest `json:"items"`
}

// ItemRequest is the payload for creating or replacing a line item.
// ProductID, Price, and Status are required; Quantity defaults to 1.
type ItemRequest struct {
	ProductID *int     `json:"product_id"`
	Price     *float64 `json:"price"`
	Quantity  *int     `json:"quantity"`
	Status    *string  `json:"status"`
}

// OrderResponse is the serialized form of an order, items nested.
type OrderResponse struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	DateCreated string         `json:"date_created"`
	Items       []ItemResponse `json:"items"`
}

// ItemResponse is the serialized form of a line item.
type ItemResponse struct {
	ID        int     `json:"id"`
	ProductID int     `json:"product_id"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	OrderID   int     `json:"order_id"`
	Status    string  `json:"status"`
}

// toCreateOrderCommand converts the payload into a creation command.
func (r OrderRequest) toCreateOrderCommand() (commands.CreateOrderCommand, error) {
	date, err := r.parseDate()
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	specs := make([]commands.ItemSpec, 0, len(r.Items))
	for _, ir := range r.Items {
		spec, specErr := ir.toItemSpec()
		if specErr != nil {
			return commands.CreateOrderCommand{}, specErr
		}
		specs = append(specs, spec)
	}

	return commands.NewCreateOrderCommand(deref(r.Name), deref(r.Address), date, specs)
}

// toUpdateOrderCommand converts the payload into an update command for the
// given order. Nested items in the payload are ignored on update.
func (r OrderRequest) toUpdateOrderCommand(orderID int) (commands.UpdateOrderCommand, error) {
	date, err := r.parseDate()
	if err != nil {
		return commands.UpdateOrderCommand{}, err
	}

	return commands.NewUpdateOrderCommand(orderID, deref(r.Name), deref(r.Address), date)
}

func (r OrderRequest) parseDate() (time.Time, error) {
	if r.DateCreated == nil || *r.DateCreated == "" {
		return time.Time{}, nil
	}

	date, err := time.Parse(dateLayout, *r.DateCreated)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("date_created", err)
	}

	return date, nil
}

// toItemSpec validates presence of the required keys and builds a spec.
func (r ItemRequest) toItemSpec() (commands.ItemSpec, error) {
	if r.ProductID == nil {
		return commands.ItemSpec{}, errs.NewValueIsRequiredError("product_id")
	}
	if r.Price == nil {
		return commands.ItemSpec{}, errs.NewValueIsRequiredError("price")
	}
	if r.Status == nil || *r.Status == "" {
		return commands.ItemSpec{}, errs.NewValueIsRequiredError("status")
	}

	quantity := 0
	if r.Quantity != nil {
		quantity = *r.Quantity
	}

	return commands.ItemSpec{
		ProductID: *r.ProductID,
		Price:     *r.Price,
		Quantity:  quantity,
		Status:    *r.Status,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(aggregate.Items()))
	for _, it := range aggregate.Items() {
		items = append(items, itemResponseFromEntity(it))
	}

	return OrderResponse{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Address:     aggregate.Address(),
		DateCreated: aggregate.DateCreated().Format(dateLayout),
		Items:       items,
	}
}

func itemResponseFromEntity(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:        it.ID(),
		ProductID: it.ProductID(),
		Price:     it.Price(),
		Quantity:  it.Quantity(),
		OrderID:   it.OrderID(),
		Status:    it.Status(),
	}
}

func orderResponseFromReadModel(model queries.OrderReadModel) OrderResponse {
	items := make([]ItemResponse, 0, len(model.Items))
	for _, it := range model.Items {
		items = append(items, itemResponseFromReadModel(it))
	}

	return OrderResponse{
		ID:          model.ID,
		Name:        model.Name,
		Address:     model.Address,
		DateCreated: model.DateCreated.Format(dateLayout),
		Items:       items,
	}
}

func itemResponseFromReadModel(model queries.ItemReadModel) ItemResponse {
	return ItemResponse{
		ID:        model.ID,
		ProductID: model.ProductID,
		Price:     model.Price,
		Quantity:  model.Quantity,
		OrderID:   model.OrderID,
		Status:    model.Status,
	}
}

func orderResponsesFromReadModels(models []queries.OrderReadModel) []OrderResponse {
	responses := make([]OrderResponse, 0, len(models))
	for _, m := range models {
		responses = append(responses, orderResponseFromReadModel(m))
	}
	return responses
}

func itemResponsesFromReadModels(models []queries.ItemReadModel) []ItemResponse {
	responses := make([]ItemResponse, 0, len(models))
	for _, m := range models {
		responses = append(responses, itemResponseFromReadModel(m))
	}
	return responses
}
