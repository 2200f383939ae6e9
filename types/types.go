// Package types defines the SeiMoney data model: accounts, payment links,
// gated files, employment contracts, analytics, and checkout products, plus
// the request parameter shapes each module sends over the wire.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Token is a fungible-asset descriptor. Immutable once fetched; embedded by
// value wherever an amount is specified.
type Token struct {
	Name         string  `json:"name" validate:"required"`
	Icon         string  `json:"icon"`
	Address      string  `json:"address" validate:"required,eth_addr"`
	Symbol       string  `json:"symbol" validate:"required"`
	Decimals     int     `json:"decimals" validate:"gte=0,lte=36"`
	AssetVersion string  `json:"assetVersion"`
	PriceUSD     float64 `json:"priceUSD"`
}

// Account holds profile data for an owner address. Accounts are read-only to
// this client once created.
type Account struct {
	Owner        string     `json:"owner"`
	Name         string     `json:"name,omitempty"`
	AvatarURL    string     `json:"avatarURL,omitempty"`
	EmailAddress string     `json:"emailAddress"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// CreateAccount are the parameters for account creation.
type CreateAccount struct {
	Owner        string `json:"owner" validate:"required,eth_addr"`
	Name         string `json:"name,omitempty"`
	AvatarURL    string `json:"avatarURL,omitempty"`
	EmailAddress string `json:"emailAddress" validate:"required,email"`
}

func (p CreateAccount) Validate() error {
	return validate.Struct(p)
}

// AuthorizedAccount is the authorize response: the account plus a bearer
// token the caller must install with SetToken for subsequent requests.
type AuthorizedAccount struct {
	Account
	Token string `json:"token"`
}

// Authorization are the parameters for the signature-based authorize call.
// The signature covers the message "AUTHORATION:<expiresAt>".
type Authorization struct {
	Owner     string `json:"owner" validate:"required,eth_addr"`
	Signature string `json:"signature" validate:"required"`
	ExpiresAt int64  `json:"expiresAt" validate:"required"`
}

func (p Authorization) Validate() error {
	return validate.Struct(p)
}

// LinkStatus is the lifecycle state of a payment link. Transitions are
// driven server-side except for client-initiated delete/fulfill requests.
type LinkStatus string

const (
	LinkStatusPending LinkStatus = "pending"
	LinkStatusPaid    LinkStatus = "paid"
	LinkStatusExpired LinkStatus = "expired"
	LinkStatusActive  LinkStatus = "active"
)

// Link is a payment link.
type Link struct {
	PaymentID        string            `json:"paymentId"`
	Description      string            `json:"description"`
	ImageURL         string            `json:"imageURL"`
	Attributes       map[string]string `json:"attributes"`
	Owner            string            `json:"owner"`
	RecipientAddress string            `json:"recipientAddress"`
	Amount           ERC20Amount       `json:"amount"`
	OneTime          bool              `json:"oneTime"`
	Nonce            int64             `json:"nonce"`
	Status           LinkStatus        `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        *time.Time        `json:"updatedAt,omitempty"`
	Network          Network           `json:"network"`
}

type CreatePaymentLink struct {
	Description      string            `json:"description" validate:"required"`
	Amount           ERC20Amount       `json:"amount"`
	Attributes       map[string]string `json:"attributes"`
	RecipientAddress string            `json:"recipientAddress,omitempty" validate:"omitempty,eth_addr"`
	OneTime          bool              `json:"oneTime"`
	Network          Network           `json:"network" validate:"required"`
}

func (p CreatePaymentLink) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	return p.Amount.Validate()
}

type DeletePaymentLink struct {
	PaymentID string `json:"paymentId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
	ExpiresAt int64  `json:"expiresAt" validate:"required"`
}

func (p DeletePaymentLink) Validate() error {
	return validate.Struct(p)
}

type FulfillPaymentLink struct {
	PaymentID string `json:"paymentId" validate:"required"`
}

// GatedFile is a file whose download is released only after a successful
// payment-gated request.
type GatedFile struct {
	FileID      string            `json:"fileId"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	PreviewURL  string            `json:"previewURL"`
	Metadata    map[string]string `json:"metadata"`
	Owner       string            `json:"owner"`
	Amount      ERC20Amount       `json:"amount"`
	Downloads   int               `json:"downloads"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   *time.Time        `json:"updatedAt,omitempty"`
	Network     Network           `json:"network"`
}

type UploadFile struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	PreviewURL  string            `json:"previewURL,omitempty"`
	Metadata    map[string]string `json:"metadata"`
	Amount      ERC20Amount       `json:"amount"`
	Network     Network           `json:"network" validate:"required"`
}

func (p UploadFile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	return p.Amount.Validate()
}

type DownloadFile struct {
	FileID    string `json:"fileId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
	ExpiresAt int64  `json:"expiresAt" validate:"required"`
}

func (p DownloadFile) Validate() error {
	return validate.Struct(p)
}

type DeleteFile struct {
	FileID    string `json:"fileId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
	ExpiresAt int64  `json:"expiresAt" validate:"required"`
}

func (p DeleteFile) Validate() error {
	return validate.Struct(p)
}

type FulfillFile struct {
	FileID string `json:"fileId" validate:"required"`
}

// FileURL is the download-URL response for a gated file.
type FileURL struct {
	URL string `json:"url"`
}

// FulfilledFile is the response of a paid file fulfillment: the released
// download URL and the settlement transaction reference.
type FulfilledFile struct {
	URL         string `json:"url"`
	Transaction string `json:"transaction"`
}

// PayrollFrequency is the payout cadence attached to a contract.
type PayrollFrequency string

const (
	PayrollHourly  PayrollFrequency = "hourly"
	Payroll12Hours PayrollFrequency = "12-hours"
	PayrollDaily   PayrollFrequency = "daily"
	PayrollWeekly  PayrollFrequency = "weekly"
	PayrollMonthly PayrollFrequency = "monthly"
)

type ContractRole struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Payroll struct {
	Frequency PayrollFrequency `json:"frequency"`
	Amount    ERC20Amount      `json:"amount"`
}

type ContractSignature struct {
	Status    bool  `json:"status"`
	Timestamp int64 `json:"timestamp,omitempty"`
}

// Contract is an employment contract with automated payroll. Lifecycle:
// create (optionally with an attached document), recipient countersign,
// and retried fulfillment of its on-chain deployment transaction.
type Contract struct {
	ContractID       string            `json:"contractId"`
	Address          string            `json:"address"`
	Name             string            `json:"name"`
	Role             ContractRole      `json:"role"`
	Owner            string            `json:"owner"`
	RecipientAddress string            `json:"recipientAddress"`
	Payroll          Payroll           `json:"payroll"`
	Metadata         map[string]string `json:"metadata"`
	Signed           ContractSignature `json:"signed"`
	Company          string            `json:"company"`
	Network          Network           `json:"network"`
	DocumentURL      string            `json:"documentURL,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        *time.Time        `json:"updatedAt,omitempty"`
}

type CreateContract struct {
	Name             string            `json:"name" validate:"required"`
	Role             ContractRole      `json:"role"`
	RecipientAddress string            `json:"recipientAddress,omitempty" validate:"omitempty,eth_addr"`
	Payroll          Payroll           `json:"payroll"`
	Metadata         map[string]string `json:"metadata"`
	Company          string            `json:"company" validate:"required"`
	DocumentURL      string            `json:"documentURL,omitempty"`
	Network          Network           `json:"network" validate:"required"`
}

func (p CreateContract) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	return p.Payroll.Amount.Validate()
}

type SignContract struct {
	ContractID string `json:"contractId" validate:"required"`
	Signature  string `json:"signature" validate:"required"`
	ExpiresAt  int64  `json:"expiresAt" validate:"required"`
}

func (p SignContract) Validate() error {
	return validate.Struct(p)
}

// ContractExtract is the AI-extracted draft returned by the contract
// document extractor. Every field is best-effort and may be empty.
type ContractExtract struct {
	Name             string            `json:"name,omitempty"`
	Role             ContractRole      `json:"role"`
	RecipientAddress string            `json:"recipientAddress,omitempty"`
	Payroll          ExtractedPayroll  `json:"payroll"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	Company          string            `json:"company,omitempty"`
}

type ExtractedPayroll struct {
	Frequency PayrollFrequency `json:"frequency,omitempty"`
	Amount    struct {
		Amount string `json:"amount,omitempty"`
	} `json:"amount"`
}

// ActivityType classifies which resource a payment event belongs to.
type ActivityType string

const (
	ActivityLink     ActivityType = "link"
	ActivityFile     ActivityType = "file"
	ActivityContract ActivityType = "contract"
)

// ActivityStatus is the terminal outcome of a payment event.
type ActivityStatus string

const (
	ActivityFailed  ActivityStatus = "failed"
	ActivitySuccess ActivityStatus = "success"
)

// Activity is an audit record of one payment-related event. Write-once,
// append-only from the client's perspective.
type Activity struct {
	Owner       string         `json:"owner"`
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Amount      ERC20Amount    `json:"amount"`
	Type        ActivityType   `json:"type"`
	Status      ActivityStatus `json:"status"`
	Transaction string         `json:"transaction,omitempty"`
	CreatedAt   *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time     `json:"updateAt,omitempty"`
}

// ResourceCounts is an active/inactive tally for one resource type.
type ResourceCounts struct {
	Active   int `json:"active"`
	InActive int `json:"inActive"`
}

// Analytics is an aggregate snapshot of an owner's payment activity.
// Histogram maps are keyed by time bucket, recent activities are ordered
// most-recent-first.
type Analytics struct {
	TotalRevenueUSD   float64            `json:"totalRevenueUSD"`
	TotalPaymentLinks ResourceCounts     `json:"totalPaymentLinks"`
	TotalFiles        ResourceCounts     `json:"totalFiles"`
	TotalContracts    ResourceCounts     `json:"totalContracts"`
	RecentActivities  []Activity         `json:"recentsActivities"`
	RecentRevenues    map[string]float64 `json:"recentRevenues"`
	ActiveContracts   map[string]float64 `json:"activeContracts"`
}

// Image is a hosted product image with an optional caption.
type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// Product belongs to exactly one checkout.
type Product struct {
	ProductID        string      `json:"productId"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	AvailableInStock int         `json:"availableInStock"`
	MaxQuantity      int         `json:"maxQuantity,omitempty"`
	IsFeatured       bool        `json:"isFeatured"`
	IsOnSale         bool        `json:"isOnSale"`
	Images           []Image     `json:"images"`
	Amount           ERC20Amount `json:"amount"`
	Owner            string      `json:"owner"`
	CheckoutID       string      `json:"checkoutId"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        *time.Time  `json:"updatedAt,omitempty"`
	Network          Network     `json:"network"`
}

type CreateProduct struct {
	Name             string      `json:"name" validate:"required"`
	Description      string      `json:"description"`
	AvailableInStock int         `json:"availableInStock" validate:"gte=0"`
	MaxQuantity      int         `json:"maxQuantity,omitempty"`
	IsFeatured       bool        `json:"isFeatured"`
	IsOnSale         bool        `json:"isOnSale"`
	Amount           ERC20Amount `json:"amount"`
	Network          Network     `json:"network" validate:"required"`
}

func (p CreateProduct) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	return p.Amount.Validate()
}

type FulfillProduct struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity,omitempty"`
}

// Schedule is a checkout's operating schedule. Working days are weekday
// numbers, Sunday = 0.
type Schedule struct {
	Timezone     string       `json:"timezone"`
	WorkingHours WorkingHours `json:"workingHours"`
	WorkingDays  []int        `json:"workingDays"`
}

type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Location struct {
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// Checkout is a merchant storefront profile that owns zero or more products.
type Checkout struct {
	CheckoutID string   `json:"checkoutId"`
	Owner      string   `json:"owner"`
	Name       string   `json:"name"`
	Tagline    string   `json:"tagline"`
	About      string   `json:"about"`
	Category   string   `json:"category"`
	LogoURL    string   `json:"logoURL"`
	Location   Location `json:"location"`
	Schedule   Schedule `json:"schedule"`
}

type CreateCheckout struct {
	Name     string   `json:"name" validate:"required"`
	Tagline  string   `json:"tagline"`
	About    string   `json:"about"`
	Category string   `json:"category" validate:"required"`
	LogoURL  string   `json:"logoURL,omitempty"`
	Location Location `json:"location"`
	Schedule Schedule `json:"schedule"`
}

func (p CreateCheckout) Validate() error {
	return validate.Struct(p)
}
