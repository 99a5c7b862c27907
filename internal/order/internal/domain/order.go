// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

type Status string

const (
	StatusProcessing  Status = "Processing"
	StatusReadyToShip Status = "Ready To Ship"
	StatusDelivered   Status = "Delivered"
)

// transitions 只允许向前流转
var transitions = map[Status][]Status{
	StatusProcessing:  {StatusReadyToShip, StatusDelivered},
	StatusReadyToShip: {StatusDelivered},
	StatusDelivered:   {},
}

// ParseStatus 只接受已知的状态
func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	_, ok := transitions[st]
	return st, ok
}

func (s Status) String() string {
	return string(s)
}

// IsFulfillment 进入履约阶段，需要扣减库存
func (s Status) IsFulfillment() bool {
	return s == StatusReadyToShip || s == StatusDelivered
}

func (s Status) CanTransitTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusSucceeded PaymentStatus = "Succeeded"
)

type Payment struct {
	// ID 第三方支付流水号
	ID     string
	Method string
	Status PaymentStatus
}

type Address struct {
	Country     string
	City        string
	Address1    string
	Address2    string
	ZipCode     string
	AddressType string
	Phone       string
}

type Item struct {
	ProductID     int64
	ShopID        int64
	Name          string
	Image         string
	Color         string
	Qty           int64
	OriginalPrice int64
	DiscountPrice int64
}

// UnitPrice 折扣价不为 0 时按折扣价
func (i Item) UnitPrice() int64 {
	if i.DiscountPrice != 0 {
		return i.DiscountPrice
	}
	return i.OriginalPrice
}

func (i Item) Subtotal() int64 {
	return i.UnitPrice() * i.Qty
}

// Order 一个卖家的订单
type Order struct {
	ID              int64
	SN              string
	BuyerID         int64
	ShopID          int64
	Items           []Item
	ShippingAddress Address
	// TotalPrice 创建时计算，之后不再变化
	TotalPrice int64
	Payment    Payment
	Status     Status
	// StockApplied 已经扣减过库存
	StockApplied bool
	// Settled 已经给卖家入账
	Settled     bool
	Version     int64
	DeliveredAt int64
	Ctime       int64
	Utime       int64
}

func (o Order) ComputeTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

type Cart struct {
	// RequestID 客户端生成，用于防止重复提交
	RequestID       string
	BuyerID         int64
	Items           []Item
	ShippingAddress Address
	Payment         Payment
}

// Split 按卖家拆单，卖家顺序为其商品在购物车中第一次出现的顺序
func (c Cart) Split() []Order {
	idx := make(map[int64]int, len(c.Items))
	res := make([]Order, 0, len(c.Items))
	for _, item := range c.Items {
		i, ok := idx[item.ShopID]
		if !ok {
			i = len(res)
			idx[item.ShopID] = i
			res = append(res, Order{
				BuyerID:         c.BuyerID,
				ShopID:          item.ShopID,
				ShippingAddress: c.ShippingAddress,
				Payment:         c.Payment,
				Status:          StatusProcessing,
			})
		}
		res[i].Items = append(res[i].Items, item)
	}
	for i := range res {
		res[i].TotalPrice = res[i].ComputeTotal()
		if res[i].Payment.Status == "" {
			res[i].Payment.Status = PaymentStatusPending
		}
	}
	return res
}

type OperatorRole uint8

const (
	OperatorBuyer OperatorRole = iota + 1
	OperatorSeller
	OperatorAdmin
)

// Operator 发起操作的人，卖家的 ID 是店铺 ID
type Operator struct {
	Role OperatorRole
	ID   int64
}

// CanView 买家和卖家只能看自己的订单
func (op Operator) CanView(o Order) bool {
	switch op.Role {
	case OperatorAdmin:
		return true
	case OperatorSeller:
		return o.ShopID == op.ID
	case OperatorBuyer:
		return o.BuyerID == op.ID
	default:
		return false
	}
}

// CanUpdateStatus 卖家只能修改自己店铺的订单，买家不能修改
func (op Operator) CanUpdateStatus(o Order) bool {
	switch op.Role {
	case OperatorAdmin:
		return true
	case OperatorSeller:
		return o.ShopID == op.ID
	default:
		return false
	}
}
