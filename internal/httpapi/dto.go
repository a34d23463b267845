package httpapi

import (
	"time"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
	"github.com/vladislavdragonenkov/ministore/internal/service/orders"
)

type statusDTO struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
}

type statusesResponse struct {
	Order     []statusDTO `json:"order"`
	Payment   []statusDTO `json:"payment"`
	Logistics []statusDTO `json:"logistics"`
}

type orderDTO struct {
	ID           int64      `json:"id"`
	StoreID      int64      `json:"store_id"`
	TotalAmount  string     `json:"total_amount"`
	PayerEmail   string     `json:"payer_email"`
	Status       int        `json:"status"`
	StatusLabel  string     `json:"status_label"`
	SystemRtnMsg string     `json:"system_rtnmsg"`
	ShippedAt    *time.Time `json:"shipped_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type productDTO struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Link      string `json:"link"`
}

type paymentDTO struct {
	PaymentMethod string     `json:"payment_method"`
	PaymentNo     string     `json:"payment_no"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	Status        int        `json:"status"`
	StatusLabel   string     `json:"status_label"`
}

type logisticsDTO struct {
	LogisticsMethod string `json:"logistics_method"`
	LogisticsNo     string `json:"logistics_no"`
	RecipientName   string `json:"recipient_name"`
	CashOnDelivery  bool   `json:"cash_on_delivery"`
	Status          int    `json:"status"`
	StatusLabel     string `json:"status_label"`
}

type customFieldDTO struct {
	CustomFieldsID  int64  `json:"custom_fields_id"`
	CustomFieldName string `json:"custom_field_name"`
	CustomAnswer    string `json:"custom_answer"`
}

type detailsResponse struct {
	Order        orderDTO         `json:"order"`
	Products     []productDTO     `json:"products"`
	Payment      *paymentDTO      `json:"payment"`
	Logistics    *logisticsDTO    `json:"logistics"`
	BatchIDs     []string         `json:"batch_ids"`
	CustomFields []customFieldDTO `json:"custom_fields"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toStatusDTOs[S ~int](codes []S, label func(S) string) []statusDTO {
	out := make([]statusDTO, 0, len(codes))
	for _, code := range codes {
		out = append(out, statusDTO{Code: int(code), Label: label(code)})
	}
	return out
}

func toOrderDTO(o domain.Order) orderDTO {
	return orderDTO{
		ID:           o.ID,
		StoreID:      o.StoreID,
		TotalAmount:  o.TotalAmount.StringFixed(2),
		PayerEmail:   o.PayerEmail,
		Status:       int(o.Status),
		StatusLabel:  o.Status.Label(),
		SystemRtnMsg: o.SystemRtnMsg,
		ShippedAt:    o.ShippedAt,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func toOrderDTOs(list []domain.Order) []orderDTO {
	out := make([]orderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderDTO(o))
	}
	return out
}

func toDetailsResponse(d orders.Details) detailsResponse {
	resp := detailsResponse{
		Order:        toOrderDTO(d.Order),
		Products:     make([]productDTO, 0, len(d.Products)),
		BatchIDs:     make([]string, 0, len(d.Batches)),
		CustomFields: make([]customFieldDTO, 0, len(d.CustomFields)),
	}
	for _, p := range d.Products {
		resp.Products = append(resp.Products, productDTO{
			ID:        p.ID,
			ProductID: p.ProductID,
			Title:     p.Title,
			Price:     p.Price.StringFixed(2),
			Quantity:  p.Quantity,
			Link:      p.Link,
		})
	}
	if d.Payment != nil {
		resp.Payment = &paymentDTO{
			PaymentMethod: d.Payment.PaymentMethod,
			PaymentNo:     d.Payment.PaymentNo,
			PaymentDate:   d.Payment.PaymentDate,
			Status:        int(d.Payment.Status),
			StatusLabel:   d.Payment.Status.Label(),
		}
	}
	if d.Logistics != nil {
		resp.Logistics = &logisticsDTO{
			LogisticsMethod: d.Logistics.LogisticsMethod,
			LogisticsNo:     d.Logistics.LogisticsNo,
			RecipientName:   d.Logistics.RecipientName,
			CashOnDelivery:  d.Logistics.CashOnDelivery,
			Status:          int(d.Logistics.Status),
			StatusLabel:     d.Logistics.Status.Label(),
		}
	}
	for _, b := range d.Batches {
		resp.BatchIDs = append(resp.BatchIDs, b.BatchID)
	}
	for _, f := range d.CustomFields {
		resp.CustomFields = append(resp.CustomFields, customFieldDTO{
			CustomFieldsID:  f.CustomFieldsID,
			CustomFieldName: f.CustomFieldName,
			CustomAnswer:    f.CustomAnswer,
		})
	}
	return resp
}
