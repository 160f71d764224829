package checkout

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sandeshcse/shopnearme/models"
	"github.com/sandeshcse/shopnearme/services/cart"
	"github.com/sandeshcse/shopnearme/services/notify"
)

type State string

const (
	StateIdle       State = "idle"
	StateFormEntry  State = "form"
	StateProcessing State = "processing"
	StateSuccess    State = "success"
)

const (
	PaymentMethodCard = "card"
	PaymentMethodCOD  = "cod"
)

const (
	FieldAddress              = "address"
	FieldCity                 = "city"
	FieldState                = "state"
	FieldZipCode              = "zipCode"
	FieldPhone                = "phone"
	FieldDeliveryInstructions = "deliveryInstructions"
	FieldCardNumber           = "cardNumber"
	FieldExpiryDate           = "expiryDate"
	FieldCVV                  = "cvv"
	FieldCardName             = "cardName"
)

var (
	ErrNotOpen              = errors.New("checkout is not open")
	ErrAlreadyOpen          = errors.New("checkout is already open")
	ErrUnknownField         = errors.New("unknown checkout field")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

var formFields = []string{
	FieldAddress, FieldCity, FieldState, FieldZipCode, FieldPhone,
	FieldDeliveryInstructions,
	FieldCardNumber, FieldExpiryDate, FieldCVV, FieldCardName,
}

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryDatePattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// Flow is the checkout state machine:
//
//	idle -> form -> processing -> success -> idle
//
// Validation failures keep the machine in form with the error map populated;
// the processing step cannot fail. The two delayed transitions hold a timer
// handle so an early Close can cancel them, and a generation counter guards
// against a cancelled timer callback that already fired.
type Flow struct {
	mu            sync.Mutex
	state         State
	form          map[string]string
	formErrors    map[string]string
	paymentMethod string

	cart     *cart.Store
	notifier *notify.Notifier
	logger   *zap.Logger

	processingDelay time.Duration
	successDelay    time.Duration

	timer     *time.Timer
	gen       int
	order     *models.Order
	lastOrder *models.Order
}

func NewFlow(store *cart.Store, notifier *notify.Notifier, logger *zap.Logger, processingDelay, successDelay time.Duration) *Flow {
	if notifier == nil {
		notifier = notify.NewNotifier(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Flow{
		state:         StateIdle,
		form:          make(map[string]string),
		formErrors:    make(map[string]string),
		paymentMethod: PaymentMethodCard,

		cart:     store,
		notifier: notifier,
		logger:   logger,

		processingDelay: processingDelay,
		successDelay:    successDelay,
	}
	for _, field := range formFields {
		f.form[field] = ""
	}
	return f
}

// Open moves idle -> form. The caller is responsible for only offering the
// action on a non-empty cart; Open itself does not re-check.
func (f *Flow) Open() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateIdle {
		return ErrAlreadyOpen
	}
	f.state = StateFormEntry
	f.logger.Info("checkout opened")
	return nil
}

// SetField updates one form value. If the field carried a validation error
// from a previous submit, only that error is cleared.
func (f *Flow) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateFormEntry {
		return ErrNotOpen
	}
	if _, ok := f.form[name]; !ok {
		return ErrUnknownField
	}
	f.form[name] = value
	delete(f.formErrors, name)
	return nil
}

func (f *Flow) SetPaymentMethod(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateFormEntry {
		return ErrNotOpen
	}
	if method != PaymentMethodCard && method != PaymentMethodCOD {
		return ErrInvalidPaymentMethod
	}
	f.paymentMethod = method
	return nil
}

// Submit runs validation and, when the error map comes back empty, moves
// form -> processing and starts the simulated payment. On failure the
// returned map holds the per-field messages and no transition happens.
func (f *Flow) Submit() (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateFormEntry {
		return nil, ErrNotOpen
	}

	errs := validateForm(f.form, f.paymentMethod)
	f.formErrors = errs
	if len(errs) > 0 {
		return copyMap(errs), nil
	}

	f.state = StateProcessing
	f.cart.Freeze()
	f.logger.Info("order processing started",
		zap.String("paymentMethod", f.paymentMethod),
		zap.Int("totalAmount", f.cart.Total()))

	gen := f.gen
	f.timer = time.AfterFunc(f.processingDelay, func() { f.finishProcessing(gen) })
	return nil, nil
}

// Close dismisses the checkout surface in any state. Pending timers are
// cancelled first so nothing fires afterwards. Closing during processing
// abandons the attempt and keeps the cart; closing during success applies
// the success side effects (clear cart, back to idle) immediately.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.gen++

	switch f.state {
	case StateIdle:
		return
	case StateProcessing:
		f.cart.Unfreeze()
		f.logger.Info("checkout dismissed during processing, order abandoned")
	case StateSuccess:
		f.completeLocked()
	}
	f.state = StateIdle
	f.order = nil
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) FormValues() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyMap(f.form)
}

func (f *Flow) FormErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyMap(f.formErrors)
}

func (f *Flow) PaymentMethod() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paymentMethod
}

// Order returns the confirmation while the machine is in success.
func (f *Flow) Order() (models.Order, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.order == nil {
		return models.Order{}, false
	}
	return *f.order, true
}

// LastOrder returns the most recently completed order, surviving the reset
// to idle.
func (f *Flow) LastOrder() (models.Order, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.lastOrder == nil {
		return models.Order{}, false
	}
	return *f.lastOrder, true
}

func (f *Flow) finishProcessing(gen int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateProcessing || gen != f.gen {
		return
	}

	order := models.Order{
		ID:          uuid.New().String(),
		Items:       f.cart.Items(),
		Subtotal:    f.cart.Subtotal(),
		DeliveryFee: f.cart.DeliveryFee(),
		Total:       f.cart.Total(),
		Address: models.DeliveryAddress{
			StreetAddress:        f.form[FieldAddress],
			City:                 f.form[FieldCity],
			State:                f.form[FieldState],
			ZipCode:              f.form[FieldZipCode],
			Phone:                f.form[FieldPhone],
			DeliveryInstructions: f.form[FieldDeliveryInstructions],
		},
		PaymentMethod: f.paymentMethod,
		PlacedAt:      time.Now(),
	}
	f.order = &order
	f.state = StateSuccess
	f.notifier.Push("Order Placed Successfully!", notify.SeveritySuccess)
	f.logger.Info("order placed", zap.String("orderId", order.ID))

	f.timer = time.AfterFunc(f.successDelay, func() { f.finishSuccess(gen) })
}

func (f *Flow) finishSuccess(gen int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateSuccess || gen != f.gen {
		return
	}
	f.completeLocked()
	f.state = StateIdle
	f.order = nil
	f.timer = nil
}

// completeLocked applies the success side effects: remember the order, clear
// the cart, lift the freeze.
func (f *Flow) completeLocked() {
	f.lastOrder = f.order
	f.cart.Clear()
	f.cart.Unfreeze()
}

// validateForm applies the submit gate. Address fields are always required;
// card fields only when paying by card. Format checks run independently of
// the required check and only on non-empty values.
func validateForm(form map[string]string, paymentMethod string) map[string]string {
	errs := make(map[string]string)

	requiredFields := []string{FieldAddress, FieldCity, FieldState, FieldZipCode, FieldPhone}
	if paymentMethod == PaymentMethodCard {
		requiredFields = append(requiredFields, FieldCardNumber, FieldExpiryDate, FieldCVV, FieldCardName)
	}
	for _, field := range requiredFields {
		if form[field] == "" {
			errs[field] = "This field is required"
		}
	}

	if paymentMethod == PaymentMethodCard {
		if v := form[FieldCardNumber]; v != "" && !cardNumberPattern.MatchString(stripSpaces(v)) {
			errs[FieldCardNumber] = "Invalid card number"
		}
		if v := form[FieldExpiryDate]; v != "" && !expiryDatePattern.MatchString(v) {
			errs[FieldExpiryDate] = "Invalid expiry date"
		}
		if v := form[FieldCVV]; v != "" && !cvvPattern.MatchString(v) {
			errs[FieldCVV] = "Invalid CVV"
		}
	}
	return errs
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
