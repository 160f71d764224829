package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeshcse/shopnearme/configs"
	locationController "github.com/sandeshcse/shopnearme/controllers/location"
	"github.com/sandeshcse/shopnearme/services/cart"
	"github.com/sandeshcse/shopnearme/services/catalog"
	"github.com/sandeshcse/shopnearme/services/checkout"
	"github.com/sandeshcse/shopnearme/services/notify"
)

type apiEnvelope struct {
	Status  int            `json:"status"`
	Message string         `json:"message"`
	Result  map[string]any `json:"result"`
}

type testAPI struct {
	app  *fiber.App
	flow *checkout.Flow
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	notifier := notify.NewNotifier(nil)
	catalogService := catalog.NewService(configs.LoadCatalog())
	cartStore := cart.NewStore(40, notifier)
	flow := checkout.NewFlow(cartStore, notifier, nil, 10*time.Millisecond, 10*time.Millisecond)
	t.Cleanup(flow.Close)

	app := fiber.New()
	ShopRoutes(app, catalogService)
	CartRoutes(app, cartStore, catalogService)
	CheckoutRoutes(app, flow, cartStore)
	LocationRoutes(app, locationController.NewStore())
	NotificationRoutes(app, notifier)

	return &testAPI{app: app, flow: flow}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) (int, apiEnvelope) {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestShopBrowsing(t *testing.T) {
	api := newTestAPI(t)

	code, env := api.do(t, http.MethodGet, "/api/shops", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Result["status"])
	assert.EqualValues(t, 3, env.Result["totalShops"])

	code, env = api.do(t, http.MethodGet, "/api/shops?q=hub", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, env.Result["totalShops"])

	code, env = api.do(t, http.MethodGet, "/api/shops?q=pharmacy", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "no shops found", env.Result["status"])

	code, env = api.do(t, http.MethodGet, "/api/shops/2/products?category=Audio", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, env.Result["totalProducts"])

	code, _ = api.do(t, http.MethodGet, "/api/shops/404/products", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env = api.do(t, http.MethodGet, "/api/shops/2/product-categories", nil)
	require.Equal(t, http.StatusOK, code)
	categories, ok := env.Result["categories"].([]any)
	require.True(t, ok)
	assert.Equal(t, "all", categories[0])
}

func TestCartEndpoints(t *testing.T) {
	api := newTestAPI(t)
	addBody := fiber.Map{"shopId": "2", "productId": "p201"}

	code, env := api.do(t, http.MethodPost, "/api/add-to-cart", addBody)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Successfully added to cart", env.Message)
	assert.EqualValues(t, 1, env.Result["cartCount"])

	// Same product again merges into one line with quantity 2.
	code, env = api.do(t, http.MethodPost, "/api/add-to-cart", addBody)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, env.Result["cartCount"])

	code, env = api.do(t, http.MethodGet, "/api/fetchCartItems", nil)
	require.Equal(t, http.StatusOK, code)
	shops, ok := env.Result["shops"].(map[string]any)
	require.True(t, ok)
	require.Len(t, shops, 1)
	lines, ok := shops["2"].([]any)
	require.True(t, ok)
	require.Len(t, lines, 1)

	code, env = api.do(t, http.MethodGet, "/api/getCartTotals", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 5998, env.Result["subtotal"])
	assert.EqualValues(t, 40, env.Result["deliveryFee"])
	assert.EqualValues(t, 6038, env.Result["grandTotal"])
	assert.Equal(t, "₹6,038", env.Result["grandTotalDisplay"])

	code, _ = api.do(t, http.MethodPost, "/api/add-to-cart", fiber.Map{"shopId": "2", "productId": "nope"})
	assert.Equal(t, http.StatusNotFound, code)

	code, env = api.do(t, http.MethodPost, "/api/remove-from-cart", addBody)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, env.Result["cartCount"])

	code, env = api.do(t, http.MethodGet, "/api/fetchCartItems", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "cart is empty", env.Result["status"])
}

func TestCheckoutRequiresNonEmptyCart(t *testing.T) {
	api := newTestAPI(t)

	code, env := api.do(t, http.MethodPost, "/api/checkout/open", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Cart is empty", env.Message)
}

func TestCheckoutHappyPathOverHTTP(t *testing.T) {
	api := newTestAPI(t)

	code, _ := api.do(t, http.MethodPost, "/api/add-to-cart", fiber.Map{"shopId": "2", "productId": "p201"})
	require.Equal(t, http.StatusOK, code)

	code, _ = api.do(t, http.MethodPost, "/api/checkout/open", nil)
	require.Equal(t, http.StatusOK, code)

	for name, value := range map[string]string{
		"address": "221B Baker Street",
		"city":    "Bengaluru",
		"state":   "Karnataka",
		"zipCode": "560001",
		"phone":   "9876543210",
	} {
		code, _ = api.do(t, http.MethodPost, "/api/checkout/field", fiber.Map{"name": name, "value": value})
		require.Equal(t, http.StatusOK, code)
	}

	// Card details are incomplete, so paying by card is rejected.
	code, env := api.do(t, http.MethodPost, "/api/checkout/submit", nil)
	require.Equal(t, http.StatusUnprocessableEntity, code)
	errs, ok := env.Result["errors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "This field is required", errs["cardNumber"])

	code, _ = api.do(t, http.MethodPost, "/api/checkout/payment-method", fiber.Map{"method": "cod"})
	require.Equal(t, http.StatusOK, code)

	code, env = api.do(t, http.MethodPost, "/api/checkout/submit", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "processing", env.Result["state"])

	// The cart is locked while the order settles.
	code, _ = api.do(t, http.MethodPost, "/api/add-to-cart", fiber.Map{"shopId": "2", "productId": "p202"})
	assert.Equal(t, http.StatusConflict, code)

	require.Eventually(t, func() bool {
		return api.flow.State() == checkout.StateIdle
	}, time.Second, 5*time.Millisecond)

	code, env = api.do(t, http.MethodGet, "/api/fetchCartItems", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "cart is empty", env.Result["status"])

	order, ok := api.flow.LastOrder()
	require.True(t, ok)
	assert.Equal(t, 3039, order.Total)

	// The success toast is waiting to be fetched.
	code, env = api.do(t, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, code)
	notifications, ok := env.Result["notifications"].([]any)
	require.True(t, ok)
	var sawPlaced bool
	for _, raw := range notifications {
		n, ok := raw.(map[string]any)
		require.True(t, ok)
		if n["message"] == "Order Placed Successfully!" {
			sawPlaced = true
		}
	}
	assert.True(t, sawPlaced)
}

func TestRegisterShopEndpoint(t *testing.T) {
	api := newTestAPI(t)

	code, env := api.do(t, http.MethodPost, "/api/register-shop", fiber.Map{"shopName": "Book Nook"})
	require.Equal(t, http.StatusUnprocessableEntity, code)
	errs, ok := env.Result["errors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "This field is required", errs["ownerName"])
	assert.NotContains(t, errs, "shopName")

	code, env = api.do(t, http.MethodPost, "/api/register-shop", fiber.Map{
		"shopName":  "Book Nook",
		"ownerName": "Meera",
		"email":     "meera@example.com",
		"phone":     "9876501234",
		"address":   "3 Church Street",
		"category":  "books",
	})
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, env.Result["registrationId"])
}

func TestLocationEndpoints(t *testing.T) {
	api := newTestAPI(t)

	code, _ := api.do(t, http.MethodPost, "/api/location", fiber.Map{"address": "   "})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env := api.do(t, http.MethodPost, "/api/location/current", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Current Location (Simulated)", env.Result["location"])

	code, env = api.do(t, http.MethodGet, "/api/location", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Current Location (Simulated)", env.Result["location"])
}
