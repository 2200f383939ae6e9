package payment

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/seimoney/seimoney-go/types"
)

const (
	defaultValidityLeeway = 60 * time.Second
	defaultTimeoutSeconds = 300

	// Limit how much of a 402 body we will parse.
	maxRequiredBodyBytes = 1 << 20
)

// Error codes surfaced by the transport.
const (
	ErrNoSigner           = "no_signer"
	ErrNoAcceptableOption = "no_acceptable_payment_option"
	ErrAmountExceedsLimit = "amount_exceeds_limit"
	ErrSigningFailed      = "signing_failed"
	ErrBodyNotReplayable  = "body_not_replayable"
)

// Error is a payment-construction failure raised before the retried
// request is dispatched.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("x402 %s: %s", e.Code, e.Message)
}

// TransportOption configures a Transport.
type TransportOption func(*Transport)

// WithMaxAmount caps the atomic-unit amount the transport will authorize.
// Zero means no cap.
func WithMaxAmount(max decimal.Decimal) TransportOption {
	return func(t *Transport) { t.maxAmount = max }
}

// WithValidityLeeway sets how far into the past the authorization's
// validAfter is backdated to absorb clock skew.
func WithValidityLeeway(d time.Duration) TransportOption {
	return func(t *Transport) { t.leeway = d }
}

// WithLogger sets a logger for payment events.
func WithLogger(l *zap.Logger) TransportOption {
	return func(t *Transport) { t.logger = l }
}

// Transport is an http.RoundTripper that settles x402 payment challenges.
// A request is first dispatched unchanged; when the server answers 402 with
// a payment-requirements body, the transport signs an EIP-3009
// authorization with its signer, attaches it as the X-PAYMENT header, and
// retries the request exactly once. Any other response passes through
// untouched.
type Transport struct {
	base   http.RoundTripper
	signer Signer

	maxAmount decimal.Decimal
	leeway    time.Duration
	logger    *zap.Logger

	now func() time.Time
}

// NewTransport wraps base with payment handling bound to signer.
func NewTransport(base http.RoundTripper, signer Signer, opts ...TransportOption) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	t := &Transport{
		base:   base,
		signer: signer,
		leeway: defaultValidityLeeway,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !HasAccount(t.signer) {
		return nil, &Error{Code: ErrNoSigner, Message: "payment transport requires a signer with a bound account"}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusPaymentRequired {
		return resp, nil
	}

	required, err := decodeRequired(resp)
	if err != nil {
		return nil, err
	}

	header, err := t.buildPayment(required)
	if err != nil {
		return nil, err
	}

	retry, err := replayRequest(req)
	if err != nil {
		return nil, err
	}
	retry.Header.Set(PaymentHeader, header)

	t.logger.Debug("retrying request with payment",
		zap.String("url", req.URL.String()),
		zap.String("payer", t.signer.Address().Hex()),
	)

	return t.base.RoundTrip(retry)
}

// buildPayment selects an acceptable requirement and produces the
// X-PAYMENT header value.
func (t *Transport) buildPayment(required *Required) (string, error) {
	reqmt := selectRequirement(required.Accepts)
	if reqmt == nil {
		return "", &Error{
			Code:    ErrNoAcceptableOption,
			Message: fmt.Sprintf("server accepts none of this client's payment schemes: %s", required.Error),
		}
	}

	amount, err := decimal.NewFromString(reqmt.MaxAmountRequired)
	if err != nil || amount.IsNegative() {
		return "", &Error{
			Code:    ErrNoAcceptableOption,
			Message: fmt.Sprintf("invalid required amount %q", reqmt.MaxAmountRequired),
		}
	}
	if !t.maxAmount.IsZero() && amount.GreaterThan(t.maxAmount) {
		return "", &Error{
			Code: ErrAmountExceedsLimit,
			Message: fmt.Sprintf("required amount %s exceeds configured cap %s",
				amount.String(), t.maxAmount.String()),
		}
	}

	auth, err := t.newAuthorization(reqmt)
	if err != nil {
		return "", err
	}

	digest, err := AuthorizationDigest(domainFor(reqmt), auth)
	if err != nil {
		return "", &Error{Code: ErrSigningFailed, Message: err.Error()}
	}
	sig, err := t.signer.SignDigest(digest)
	if err != nil {
		return "", &Error{Code: ErrSigningFailed, Message: err.Error()}
	}

	inner := EvmPayload{
		Type: "eip3009",
		EIP3009: &EIP3009Payload{
			Signature:     "0x" + hex.EncodeToString(sig),
			Authorization: auth,
		},
	}
	innerJSON, err := json.Marshal(inner)
	if err != nil {
		return "", &Error{Code: ErrSigningFailed, Message: err.Error()}
	}

	envelope := Payload{
		X402Version: ProtocolVersion,
		Scheme:      reqmt.Scheme,
		Network:     reqmt.Network,
		Payload:     base64.StdEncoding.EncodeToString(innerJSON),
	}
	return envelope.Encode()
}

func (t *Transport) newAuthorization(reqmt *Requirements) (Authorization, error) {
	nonce := make([]byte, 32)
	if _, err := rand.Read(nonce); err != nil {
		return Authorization{}, &Error{Code: ErrSigningFailed, Message: err.Error()}
	}

	timeout := reqmt.MaxTimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	now := t.now()
	return Authorization{
		From:        t.signer.Address().Hex(),
		To:          reqmt.PayTo,
		Value:       reqmt.MaxAmountRequired,
		ValidAfter:  strconv.FormatInt(now.Add(-t.leeway).Unix(), 10),
		ValidBefore: strconv.FormatInt(now.Add(time.Duration(timeout)*time.Second).Unix(), 10),
		Nonce:       "0x" + hex.EncodeToString(nonce),
	}, nil
}

// selectRequirement picks the first exact-scheme requirement on a network
// this client can sign for.
func selectRequirement(accepts []Requirements) *Requirements {
	for i := range accepts {
		r := &accepts[i]
		if r.Scheme == SchemeExact && types.Network(r.Network).Supported() {
			return r
		}
	}
	return nil
}

// domainFor derives the EIP-712 domain from a requirement. The asset's
// contract name and version travel in the requirement extras.
func domainFor(reqmt *Requirements) Domain {
	d := Domain{
		ChainID:           types.Network(reqmt.Network).ChainID(),
		VerifyingContract: reqmt.Asset,
	}
	if name, ok := reqmt.Extra["name"].(string); ok {
		d.Name = name
	}
	if version, ok := reqmt.Extra["version"].(string); ok {
		d.Version = version
	}
	return d
}

func decodeRequired(resp *http.Response) (*Required, error) {
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRequiredBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read 402 body: %w", err)
	}

	var required Required
	if err := json.Unmarshal(data, &required); err != nil {
		return nil, fmt.Errorf("decode payment requirements: %w", err)
	}
	return &required, nil
}

// replayRequest clones req with a fresh body for the paid retry.
func replayRequest(req *http.Request) (*http.Request, error) {
	retry := req.Clone(req.Context())
	if req.Body == nil {
		return retry, nil
	}
	if req.GetBody == nil {
		return nil, &Error{Code: ErrBodyNotReplayable, Message: "request body cannot be replayed for payment retry"}
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, &Error{Code: ErrBodyNotReplayable, Message: err.Error()}
	}
	retry.Body = body
	return retry, nil
}
