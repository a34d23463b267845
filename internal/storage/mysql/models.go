package mysql

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
)

// Строки таблиц в исходной схеме. Имена полей совпадают с доменными
// структурами, перенос значений делает copier.

type orderModel struct {
	ID                  int64              `gorm:"column:id;primaryKey;autoIncrement"`
	StoreID             int64              `gorm:"column:store_id"`
	MMID                int64              `gorm:"column:mmid"`
	HashCode            string             `gorm:"column:hash_code"`
	TotalAmount         decimal.Decimal    `gorm:"column:total_amount;type:decimal(12,2)"`
	Subtotal            decimal.Decimal    `gorm:"column:subtotal;type:decimal(12,2)"`
	ShippingDeliveryFee decimal.Decimal    `gorm:"column:shipping_delivery_fee;type:decimal(12,2)"`
	DeliveryFee         decimal.Decimal    `gorm:"column:delivery_fee;type:decimal(12,2)"`
	OrderDeliveryFee    decimal.Decimal    `gorm:"column:order_delivery_fee;type:decimal(12,2)"`
	Discount            decimal.Decimal    `gorm:"column:discount;type:decimal(12,2)"`
	DiscountInfo        string             `gorm:"column:discount_info"`
	Coupon              string             `gorm:"column:coupon"`
	PayerName           string             `gorm:"column:payer_name"`
	PayerMobile         string             `gorm:"column:payer_mobile"`
	PayerPhone          string             `gorm:"column:payer_phone"`
	PayerEmail          string             `gorm:"column:payer_email"`
	Remark              string             `gorm:"column:remark"`
	CustomFields        string             `gorm:"column:custom_fields"`
	SystemRtnMsg        string             `gorm:"column:system_rtnmsg"`
	UserComment         string             `gorm:"column:user_comment"`
	IPAddress           string             `gorm:"column:ip_address"`
	UserAgent           string             `gorm:"column:user_agent"`
	Status              domain.OrderStatus `gorm:"column:status"`
	Currency            string             `gorm:"column:currency"`
	PickingUpAt         *time.Time         `gorm:"column:picking_up_at"`
	ShippedAt           *time.Time         `gorm:"column:shipped_at"`
	DeletedAt           *time.Time         `gorm:"column:deleted_at"`
	CreatedAt           time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (orderModel) TableName() string { return "ministore_orders" }

type productModel struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID         int64           `gorm:"column:order_id"`
	ProductID       int64           `gorm:"column:product_id"`
	SpecificationID int64           `gorm:"column:specification_id"`
	MainSpecID      int64           `gorm:"column:main_spec_id"`
	SubSpecID       int64           `gorm:"column:sub_spec_id"`
	Title           string          `gorm:"column:title"`
	Image           string          `gorm:"column:image"`
	Price           decimal.Decimal `gorm:"column:price;type:decimal(12,2)"`
	Quantity        int             `gorm:"column:quantity"`
	Detail          string          `gorm:"column:detail"`
	GoogleCategory  string          `gorm:"column:google_category"`
	PrimarySpec     string          `gorm:"column:primary_spec"`
	SubSpec         string          `gorm:"column:sub_spec"`
	Conditions      string          `gorm:"column:conditions"`
	Availability    string          `gorm:"column:availability"`
	Link            string          `gorm:"column:link"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (productModel) TableName() string { return "ministore_order_products" }

type paymentModel struct {
	ID            int64                `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID       int64                `gorm:"column:order_id"`
	VendorID      int64                `gorm:"column:vendor_id"`
	PaymentMethod string               `gorm:"column:payment_method"`
	PaymentNo     string               `gorm:"column:payment_no"`
	PaymentDate   *time.Time           `gorm:"column:payment_date"`
	Status        domain.PaymentStatus `gorm:"column:status"`
	ExtraData     string               `gorm:"column:extra_data"`
	CreatedAt     time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

func (paymentModel) TableName() string { return "ministore_order_payment" }

type logisticsModel struct {
	ID                int64                  `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID           int64                  `gorm:"column:order_id"`
	VendorLogistics   int64                  `gorm:"column:vendor_logistics"`
	LogisticsMethod   string                 `gorm:"column:logistics_method"`
	LogisticsNo       string                 `gorm:"column:logistics_no"`
	LogisticsType     string                 `gorm:"column:logistics_type"`
	DeliveryDate      *time.Time             `gorm:"column:delivery_date"`
	DeliveryNo        string                 `gorm:"column:delivery_no"`
	RecipientName     string                 `gorm:"column:recipient_name"`
	RecipientMobile   string                 `gorm:"column:recipient_mobile"`
	RecipientPhone    string                 `gorm:"column:recipient_phone"`
	RecipientZipCode  string                 `gorm:"column:recipient_zip_code"`
	RecipientAddress  string                 `gorm:"column:recipient_address"`
	SenderName        string                 `gorm:"column:sender_name"`
	SenderMobile      string                 `gorm:"column:sender_mobile"`
	SenderPhone       string                 `gorm:"column:sender_phone"`
	SenderZipCode     string                 `gorm:"column:sender_zip_code"`
	SenderAddress     string                 `gorm:"column:sender_address"`
	CVSID             string                 `gorm:"column:cvs_id"`
	CVSName           string                 `gorm:"column:cvs_name"`
	CVSAddress        string                 `gorm:"column:cvs_address"`
	CVSDeliveryType   string                 `gorm:"column:cvs_delivery_type"`
	HomeTemperature   string                 `gorm:"column:home_temperature"`
	HomeDistance      string                 `gorm:"column:home_distance"`
	HomeSpecification string                 `gorm:"column:home_specification"`
	HomePickupTime    string                 `gorm:"column:home_pickup_time"`
	HomeDeliveryTime  string                 `gorm:"column:home_delivery_time"`
	CashOnDelivery    bool                   `gorm:"column:cash_on_delivery"`
	ExtraData         string                 `gorm:"column:extra_data"`
	Status            domain.LogisticsStatus `gorm:"column:status"`
	CreatedAt         time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

func (logisticsModel) TableName() string { return "ministore_order_logistics" }

type batchModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID   int64     `gorm:"column:order_id"`
	BatchID   string    `gorm:"column:batch_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (batchModel) TableName() string { return "ministore_order_batch" }

type customFieldModel struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID         int64     `gorm:"column:order_id"`
	CustomFieldsID  int64     `gorm:"column:custom_fields_id"`
	CustomFieldName string    `gorm:"column:custom_field_name"`
	CustomAnswer    string    `gorm:"column:custom_answer"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (customFieldModel) TableName() string { return "order_custom_fields" }

// convert переносит одноимённые поля из src в dst.
func convert[T any](src any) (T, error) {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		return dst, fmt.Errorf("copy %T: %w", src, err)
	}
	return dst, nil
}

// convertAll переносит срез строк в срез доменных записей; nil становится пустым срезом.
func convertAll[T, M any](rows []M) ([]T, error) {
	result := make([]T, 0, len(rows))
	if len(rows) == 0 {
		return result, nil
	}
	if err := copier.Copy(&result, &rows); err != nil {
		return nil, fmt.Errorf("copy %T: %w", rows, err)
	}
	return result, nil
}
